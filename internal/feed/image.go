package feed

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultImagePattern is used when a profile has no image URL pattern.
const DefaultImagePattern = "/{sku}.jpg"

var nonDigits = regexp.MustCompile(`\D`)

// ImageURL builds the image URL for a single SKU from the profile's domain
// and pattern. Returns empty string when the SKU or domain is unset.
func (s Settings) ImageURL(sku string) string {
	if sku == "" || s.ImageDomain == "" {
		return ""
	}
	pattern := s.ImageURLPattern
	if pattern == "" {
		pattern = DefaultImagePattern
	}
	return strings.TrimRight(s.ImageDomain, "/") + strings.ReplaceAll(pattern, "{sku}", sku)
}

// ParentImageURLs builds the pipe-joined multi-image URL list for a parent
// listing: the base image for the parent key, then one image per synthetic
// sub-key "<key>_D1".."<key>_Dn" where n comes from the row's INDEX value.
//
// The index value may be noisy ("3 units"); everything but digits is
// stripped and an unparsable or blank value counts as zero. Empty URLs are
// skipped so the result never carries a dangling separator.
func (s Settings) ParentImageURLs(parentKey, indexValue string) string {
	if parentKey == "" || s.ImageDomain == "" {
		return ""
	}

	count := 0
	if digits := nonDigits.ReplaceAllString(indexValue, ""); digits != "" {
		if n, err := strconv.Atoi(digits); err == nil {
			count = n
		}
	}

	var urls []string
	if base := s.ImageURL(parentKey); base != "" {
		urls = append(urls, base)
	}
	for i := 1; i <= count; i++ {
		if u := s.ImageURL(fmt.Sprintf("%s_D%d", parentKey, i)); u != "" {
			urls = append(urls, u)
		}
	}

	return strings.Join(urls, "|")
}
