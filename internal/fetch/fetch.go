// Package fetch resolves input table sources: local XLSX/CSV paths or
// http(s) URLs. Downloads go through the retrying HTTP helper and decode
// brotli- or gzip-encoded responses, which is how institution portals
// commonly serve workbook exports.
package fetch

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/andybalholm/brotli"

	"transfer-pathways/internal/httpx"
	"transfer-pathways/internal/tabular"
)

// Client wraps an http.Client with the retry policy used for input
// downloads.
type Client struct {
	HTTP  *http.Client
	Retry httpx.RetryConfig
}

func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &Client{
		HTTP: &http.Client{
			Timeout: timeout,
			// we negotiate encodings ourselves below
			Transport: &http.Transport{DisableCompression: true},
		},
		Retry: httpx.DefaultRetryConfig(),
	}
}

// IsURL reports whether a table source is remote.
func IsURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// Table loads a table from a local path or URL. CSV sources are detected
// by extension; everything else is read as an XLSX workbook. sheet applies
// to workbooks only ("" = first sheet).
func (c *Client) Table(ctx context.Context, src, sheet string) (tabular.Table, error) {
	if !IsURL(src) {
		if isCSV(src) {
			return tabular.ReadCSV(src)
		}
		return tabular.ReadSheet(src, sheet)
	}

	data, err := c.Download(ctx, src)
	if err != nil {
		return tabular.Table{}, err
	}
	if isCSV(src) {
		return tabular.ReadCSVBytes(data)
	}
	return tabular.ReadSheetBytes(data, sheet)
}

// Download fetches a URL and returns the decoded body.
func (c *Client) Download(ctx context.Context, rawURL string) ([]byte, error) {
	header := http.Header{}
	header.Set("Accept-Encoding", "br, gzip")

	resp, body, err := httpx.Get(ctx, c.HTTP, rawURL, header, c.Retry)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}

	switch strings.ToLower(resp.Header.Get("Content-Encoding")) {
	case "br":
		return io.ReadAll(brotli.NewReader(bytes.NewReader(body)))
	case "gzip":
		zr, err := gzip.NewReader(bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("fetch %s: gzip: %w", rawURL, err)
		}
		defer zr.Close()
		return io.ReadAll(zr)
	default:
		return body, nil
	}
}

func isCSV(src string) bool {
	p := src
	if u, err := url.Parse(src); err == nil && u.Path != "" {
		p = u.Path
	}
	return strings.EqualFold(path.Ext(p), ".csv")
}
