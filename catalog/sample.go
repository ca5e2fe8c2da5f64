package catalog

import "github.com/use-agent/wooscrape/models"

func ptr[T any](v T) *T { return &v }

// SampleExtensions returns a fixed offline dataset with the same shape
// as live records. It backs the offline toggle and doubles as a writer
// fixture in tests.
func SampleExtensions() []models.Extension {
	return []models.Extension{
		{
			Title:        "Google Analytics for WooCommerce",
			Vendor:       "Woo",
			Price:        "Free",
			Rating:       ptr(4.3),
			ReviewsCount: ptr(51),
			Description:  "Connect your store to Google Analytics to track eCommerce performance.",
		},
		{
			Title:        "WooCommerce Tax",
			Vendor:       "Woo",
			Price:        "Free",
			Rating:       ptr(4.0),
			ReviewsCount: ptr(14),
			Description:  "Automated tax calculations for WooCommerce with minimal setup.",
		},
		{
			Title:        "Stripe",
			Vendor:       "Stripe",
			Price:        "Free",
			Rating:       ptr(3.7),
			ReviewsCount: ptr(47),
			Description:  "Accept major cards and wallets via Stripe with secure checkout.",
		},
		{
			Title:        "Klaviyo",
			Vendor:       "Klaviyo",
			Price:        "Free",
			Rating:       ptr(3.9),
			ReviewsCount: ptr(26),
			Description:  "Email & SMS marketing automation synced with your Woo orders and customers.",
		},
		{
			Title:        "Mailchimp",
			Vendor:       "Mailchimp",
			Price:        "Free",
			Rating:       ptr(3.7),
			ReviewsCount: ptr(52),
			Description:  "Sync customers and purchases to Mailchimp for targeted campaigns.",
		},
		{
			Title:        "Jetpack",
			Vendor:       "Jetpack",
			Price:        "Free",
			Rating:       ptr(4.5),
			ReviewsCount: ptr(21),
			Description:  "Security, backups, and performance tools for your Woo store.",
		},
		{
			Title:        "Facebook",
			Vendor:       "Facebook",
			Price:        "Free",
			Rating:       ptr(2.6),
			ReviewsCount: ptr(120),
			Description:  "Sync products and run ads on Facebook and Instagram.",
		},
		{
			Title:        "WooPayments",
			Vendor:       "Woo",
			Price:        "Free",
			Rating:       ptr(3.9),
			ReviewsCount: ptr(139),
			Description:  "The only payment solution fully integrated with WooCommerce. Accept credit/debit cards and local payment options with no setup or monthly fees.",
		},
		{
			Title:        "Google for WooCommerce",
			Vendor:       "Woo",
			Price:        "Free",
			Rating:       ptr(4.2),
			ReviewsCount: ptr(144),
			Description:  "Connect your catalog to Google to reach shoppers across Search and Shopping.",
		},
	}
}
