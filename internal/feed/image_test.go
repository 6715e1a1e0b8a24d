package feed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettingsImageURL(t *testing.T) {
	s := Settings{ImageDomain: "https://img.example.com/"}

	assert.Equal(t, "https://img.example.com/P1.jpg", s.ImageURL("P1"))

	s.ImageURLPattern = "/products/{sku}/main.png"
	assert.Equal(t, "https://img.example.com/products/P1/main.png", s.ImageURL("P1"))

	assert.Equal(t, "", s.ImageURL(""))
	assert.Equal(t, "", Settings{}.ImageURL("P1"))
}

func TestSettingsParentImageURLs(t *testing.T) {
	s := Settings{ImageDomain: "https://img.example.com"}

	t.Run("index adds sub-images", func(t *testing.T) {
		got := s.ParentImageURLs("P1", "2")
		urls := strings.Split(got, "|")
		assert.Equal(t, []string{
			"https://img.example.com/P1.jpg",
			"https://img.example.com/P1_D1.jpg",
			"https://img.example.com/P1_D2.jpg",
		}, urls)
	})

	t.Run("noisy index value", func(t *testing.T) {
		got := s.ParentImageURLs("P1", "3 units")
		assert.Len(t, strings.Split(got, "|"), 4)
	})

	t.Run("zero or unparsable index yields base only", func(t *testing.T) {
		base := "https://img.example.com/P1.jpg"
		assert.Equal(t, base, s.ParentImageURLs("P1", "0"))
		assert.Equal(t, base, s.ParentImageURLs("P1", ""))
		assert.Equal(t, base, s.ParentImageURLs("P1", "many"))
	})

	t.Run("no domain yields empty, never a separator", func(t *testing.T) {
		assert.Equal(t, "", Settings{}.ParentImageURLs("P1", "3"))
	})
}
