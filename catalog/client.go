// Package catalog fetches the marketplace extension catalog page by
// page and normalizes each product into an Extension record.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/use-agent/wooscrape/config"
	"github.com/use-agent/wooscrape/models"
)

// maxBodyBytes caps how much of a page response is read.
const maxBodyBytes = 10 * 1024 * 1024

// page is the decoded shape of one search response. products may be
// absent (treated as empty); total_pages may be absent (terminates the
// walk after the current page).
type page struct {
	Products   []map[string]any `json:"products"`
	TotalPages *int             `json:"total_pages"`
}

// Client walks the catalog search endpoint.
type Client struct {
	baseURL   string
	userAgent string
	timeout   time.Duration
	maxPages  int
	http      *http.Client
}

// NewClient creates a catalog client from the API configuration.
func NewClient(cfg config.APIConfig) *Client {
	return &Client{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		timeout:   cfg.Timeout,
		maxPages:  cfg.MaxPages,
		http:      &http.Client{Transport: newTransport()},
	}
}

// FetchAll retrieves every catalog page in order, starting at page 1,
// and returns the normalized records in page order, then within-page
// source order. Any transport or decode failure aborts the whole fetch;
// there is no retry and no partial result.
func (c *Client) FetchAll(ctx context.Context) ([]models.Extension, error) {
	var extensions []models.Extension
	pageNum := 1

	for {
		p, err := c.fetchPage(ctx, pageNum)
		if err != nil {
			return nil, err
		}

		for _, product := range p.Products {
			ext, err := buildExtension(product)
			if err != nil {
				return nil, err
			}
			extensions = append(extensions, ext)
		}
		slog.Debug("page processed", "page", pageNum, "products", len(p.Products))

		if p.TotalPages == nil || pageNum >= *p.TotalPages {
			break
		}
		if c.maxPages > 0 && pageNum >= c.maxPages {
			slog.Warn("page cap reached before catalog end",
				"page", pageNum,
				"totalPages", *p.TotalPages,
			)
			break
		}
		pageNum++
	}

	return extensions, nil
}

// fetchPage requests one page, bounded by the per-request timeout.
func (c *Client) fetchPage(ctx context.Context, pageNum int) (*page, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, models.NewCatalogError(models.ErrCodeTransport,
			fmt.Sprintf("page %d: build request", pageNum), err)
	}
	q := req.URL.Query()
	q.Set("page", strconv.Itoa(pageNum))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, models.NewCatalogError(models.ErrCodeTransport,
			fmt.Sprintf("page %d: request failed", pageNum), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, models.NewCatalogError(models.ErrCodeTransport,
			fmt.Sprintf("page %d: HTTP %d", pageNum, resp.StatusCode), nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, models.NewCatalogError(models.ErrCodeTransport,
			fmt.Sprintf("page %d: read body", pageNum), err)
	}

	var p page
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, models.NewCatalogError(models.ErrCodeMalformed,
			fmt.Sprintf("page %d: decode body", pageNum), err)
	}
	return &p, nil
}
