// Package sheet fetches published spreadsheet CSV exports and parses them
// into row-objects keyed by column header.
package sheet

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ovacare/internal/analytics"
)

// Fetcher is what analytics consumers depend on; Client and CachedClient
// both satisfy it.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]analytics.Row, error)
}

// Client downloads and parses one CSV export per call. No retry, no partial
// results: a network or parse failure is returned as-is.
type Client struct {
	http *http.Client
}

func NewClient() *Client {
	return &Client{
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *Client) Fetch(ctx context.Context, url string) ([]analytics.Row, error) {
	if url == "" {
		return nil, fmt.Errorf("sheet url not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch sheet: unexpected status %d", resp.StatusCode)
	}

	return Parse(resp.Body)
}

// Parse reads CSV text with header-row semantics. The first record names the
// columns; every following record becomes a Row mapping header to trimmed
// cell value. Short records leave their trailing columns absent, long ones
// drop the extra cells. An empty body yields no rows.
func Parse(r io.Reader) ([]analytics.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("parse sheet header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []analytics.Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse sheet row: %w", err)
		}

		row := make(analytics.Row, len(header))
		for i, column := range header {
			if column == "" {
				continue
			}
			if i < len(record) {
				row[column] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
