package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/use-agent/wooscrape/cleaner"
	"github.com/use-agent/wooscrape/models"
)

// descriptionKeys lists the source fields tried for a description, most
// specific first. The search API is inconsistently shaped across items
// and versions, so the first usable candidate wins instead of assuming
// a schema.
var descriptionKeys = []string{
	"excerpt_html", "excerpt",
	"short_description", "short_description_html",
	"description", "description_html",
	"content", "content_html",
}

// SelectDescription returns the first candidate field holding a
// non-empty string, normalized to plain text, or "" when no candidate
// is usable.
func SelectDescription(product map[string]any) string {
	for _, key := range descriptionKeys {
		if s, ok := product[key].(string); ok && strings.TrimSpace(s) != "" {
			return cleaner.StripHTML(s)
		}
	}
	return ""
}

// FormatPrice renders a raw price for display. Zero means free.
// The currency argument is accepted but the output is always
// dollar-prefixed; the upstream catalog prices everything in USD.
func FormatPrice(raw float64, currency string) string {
	if raw == 0 {
		return "Free"
	}
	return fmt.Sprintf("$%.2f", raw)
}

// buildExtension normalizes one raw product object into a record.
// Every field ends up with a defined value; only a non-coercible
// raw_price fails.
func buildExtension(product map[string]any) (models.Extension, error) {
	rawPrice, err := toFloat(product["raw_price"])
	if err != nil {
		return models.Extension{}, models.NewCatalogError(models.ErrCodePriceFormat,
			fmt.Sprintf("product %q: raw_price", stringField(product, "title")), err)
	}

	currency := "USD"
	if s, ok := product["currency"].(string); ok && s != "" {
		currency = s
	}

	return models.Extension{
		Title:        stringField(product, "title"),
		Vendor:       firstString(product, "vendor_name", "vendor"),
		Price:        FormatPrice(rawPrice, currency),
		Rating:       floatField(product, "rating"),
		ReviewsCount: intField(product, "reviews_count"),
		Description:  SelectDescription(product),
	}, nil
}

func stringField(product map[string]any, key string) string {
	s, _ := product[key].(string)
	return strings.TrimSpace(s)
}

// firstString returns the first key holding a non-empty string, trimmed.
func firstString(product map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := product[key].(string); ok && s != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// floatField passes an optional numeric through, preserving absence.
func floatField(product map[string]any, key string) *float64 {
	if f, ok := product[key].(float64); ok {
		return &f
	}
	return nil
}

func intField(product map[string]any, key string) *int {
	if f, ok := product[key].(float64); ok {
		n := int(f)
		return &n
	}
	return nil
}

// toFloat coerces a raw_price value, which the API serves as a number,
// a numeric string, or not at all.
func toFloat(v any) (float64, error) {
	switch t := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return t, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", t)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}
