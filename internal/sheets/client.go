// Package sheets reads tabs from a Google spreadsheet through the CSV
// export endpoint. The endpoint needs no API client or credentials for
// link-shared sheets, and every tab comes back as plain CSV.
package sheets

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Tab names fixed by the source sheet template.
const (
	TabBulk       = "Bulk"
	TabCategories = "CAT"
)

// ErrTabNotFound marks a tab that does not exist in the spreadsheet.
// The category tab is optional, so callers can treat this separately from
// other access failures.
var ErrTabNotFound = errors.New("tab not found")

// AccessError wraps any failure to fetch or parse a spreadsheet tab.
// Access failures are fatal for a run and never retried here.
type AccessError struct {
	SheetID string
	Tab     string
	Err     error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("read sheet %s tab %q: %v", e.SheetID, e.Tab, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

// Client fetches spreadsheet tabs over HTTP.
type Client struct {
	http    *http.Client
	baseURL string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the Google Docs endpoint, used by tests to point
// the client at a local httptest server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// NewClient creates a Client with the given request timeout.
func NewClient(timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: "https://docs.google.com",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ReadTab fetches one tab as raw CSV records. The reader is tolerant of
// ragged rows and stray quotes, which sheets exported by hand tend to have.
func (c *Client) ReadTab(ctx context.Context, sheetID, tab string) ([][]string, error) {
	endpoint := fmt.Sprintf("%s/spreadsheets/d/%s/gviz/tq?tqx=out:csv&sheet=%s",
		c.baseURL, url.PathEscape(sheetID), url.QueryEscape(tab))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &AccessError{SheetID: sheetID, Tab: tab, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &AccessError{SheetID: sheetID, Tab: tab, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound:
		// The export endpoint answers 400 for an unknown tab name.
		return nil, &AccessError{SheetID: sheetID, Tab: tab, Err: ErrTabNotFound}
	case resp.StatusCode != http.StatusOK:
		return nil, &AccessError{SheetID: sheetID, Tab: tab,
			Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	r := csv.NewReader(resp.Body)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, &AccessError{SheetID: sheetID, Tab: tab, Err: err}
	}
	return records, nil
}
