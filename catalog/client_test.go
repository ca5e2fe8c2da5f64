package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/use-agent/wooscrape/config"
	"github.com/use-agent/wooscrape/models"
)

func newTestClient(baseURL string) *Client {
	return NewClient(config.APIConfig{
		BaseURL:   baseURL,
		UserAgent: "test-agent/1.0",
		Timeout:   5 * time.Second,
		MaxPages:  500,
	})
}

func TestFetchAll_SinglePageWithoutTotalPages(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		fmt.Fprint(w, `{"products": [{"title": "Solo"}]}`)
	}))
	defer srv.Close()

	exts, err := newTestClient(srv.URL).FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if requests != 1 {
		t.Errorf("expected exactly 1 request without total_pages, got %d", requests)
	}
	if len(exts) != 1 || exts[0].Title != "Solo" {
		t.Errorf("unexpected records: %+v", exts)
	}
}

func TestFetchAll_MultiPageOrder(t *testing.T) {
	pages := map[string]string{
		"1": `{"total_pages": 3, "products": [{"title": "a1"}, {"title": "a2"}]}`,
		"2": `{"total_pages": 3, "products": [{"title": "b1"}]}`,
		"3": `{"total_pages": 3, "products": [{"title": "c1"}, {"title": "c2"}]}`,
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := pages[r.URL.Query().Get("page")]
		if !ok {
			t.Errorf("unexpected page request: %s", r.URL.RawQuery)
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, body)
	}))
	defer srv.Close()

	exts, err := newTestClient(srv.URL).FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}

	want := []string{"a1", "a2", "b1", "c1", "c2"}
	if len(exts) != len(want) {
		t.Fatalf("got %d records, want %d", len(exts), len(want))
	}
	for i, title := range want {
		if exts[i].Title != title {
			t.Errorf("record %d: Title = %q, want %q", i, exts[i].Title, title)
		}
	}
}

func TestFetchAll_TwoPageEndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "1":
			fmt.Fprint(w, `{
				"total_pages": 2,
				"products": [
					{"title": "First", "vendor_name": "Woo", "raw_price": 0, "rating": 4.1, "reviews_count": 12, "excerpt": "One"},
					{"title": "Second", "vendor": "Stripe", "raw_price": 19.999, "description": "<p>Two</p>"}
				]
			}`)
		case "2":
			fmt.Fprint(w, `{
				"total_pages": 2,
				"products": [{"title": "Third", "raw_price": 49}]
			}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	exts, err := newTestClient(srv.URL).FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(exts) != 3 {
		t.Fatalf("got %d records, want 3", len(exts))
	}

	first := exts[0]
	if first.Price != "Free" || first.Vendor != "Woo" || first.Description != "One" {
		t.Errorf("unexpected first record: %+v", first)
	}
	if first.Rating == nil || *first.Rating != 4.1 || first.ReviewsCount == nil || *first.ReviewsCount != 12 {
		t.Errorf("first record optionals: rating=%v reviews=%v", first.Rating, first.ReviewsCount)
	}

	second := exts[1]
	if second.Price != "$20.00" || second.Vendor != "Stripe" || second.Description != "Two" {
		t.Errorf("unexpected second record: %+v", second)
	}
	if second.Rating != nil || second.ReviewsCount != nil {
		t.Errorf("second record should have nil optionals: %+v", second)
	}

	if exts[2].Title != "Third" || exts[2].Price != "$49.00" {
		t.Errorf("unexpected third record: %+v", exts[2])
	}
}

func TestFetchAll_SendsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		fmt.Fprint(w, `{"products": []}`)
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).FetchAll(context.Background()); err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if gotUA != "test-agent/1.0" {
		t.Errorf("User-Agent = %q, want \"test-agent/1.0\"", gotUA)
	}
}

func TestFetchAll_EmptyProductsStillTerminates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	exts, err := newTestClient(srv.URL).FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(exts) != 0 {
		t.Errorf("expected no records, got %d", len(exts))
	}
}

func TestFetchAll_HTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broken", http.StatusInternalServerError)
	}))
	defer srv.Close()

	exts, err := newTestClient(srv.URL).FetchAll(context.Background())
	if err == nil {
		t.Fatal("expected an error for HTTP 500")
	}
	if exts != nil {
		t.Errorf("expected no partial records, got %d", len(exts))
	}
	var catErr *models.CatalogError
	if !errors.As(err, &catErr) || catErr.Code != models.ErrCodeTransport {
		t.Errorf("expected %s error, got %v", models.ErrCodeTransport, err)
	}
}

func TestFetchAll_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `this is not json`)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).FetchAll(context.Background())
	var catErr *models.CatalogError
	if !errors.As(err, &catErr) || catErr.Code != models.ErrCodeMalformed {
		t.Errorf("expected %s error, got %v", models.ErrCodeMalformed, err)
	}
}

func TestFetchAll_BadRecordAbortsBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"products": [{"title": "ok"}, {"title": "bad", "raw_price": "???"}]}`)
	}))
	defer srv.Close()

	exts, err := newTestClient(srv.URL).FetchAll(context.Background())
	if err == nil {
		t.Fatal("expected an error for a non-coercible raw_price")
	}
	if exts != nil {
		t.Errorf("expected no partial records, got %d", len(exts))
	}
	var catErr *models.CatalogError
	if !errors.As(err, &catErr) || catErr.Code != models.ErrCodePriceFormat {
		t.Errorf("expected %s error, got %v", models.ErrCodePriceFormat, err)
	}
}

func TestFetchAll_PageCapStopsRunawayCatalog(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		// total_pages never satisfies the terminator.
		fmt.Fprint(w, `{"total_pages": 100000, "products": [{"title": "x"}]}`)
	}))
	defer srv.Close()

	client := NewClient(config.APIConfig{
		BaseURL:   srv.URL,
		UserAgent: "test-agent/1.0",
		Timeout:   5 * time.Second,
		MaxPages:  3,
	})

	exts, err := client.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if requests != 3 {
		t.Errorf("expected the cap to stop after 3 requests, got %d", requests)
	}
	if len(exts) != 3 {
		t.Errorf("got %d records, want 3", len(exts))
	}
}
