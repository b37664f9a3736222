package shopping

import (
	"net/url"
	"strings"
)

const (
	retailer1SearchURL = "https://www.woolworths.com.au/shop/search/products?searchTerm="
	retailer2SearchURL = "https://www.coles.com.au/search?q="
)

// searchTerm trims a food name down to the segment before the first comma.
// Catalogue names like "Chicken Breast, Skinless, Raw" search poorly in full.
func searchTerm(foodName string) string {
	if idx := strings.Index(foodName, ","); idx >= 0 {
		foodName = foodName[:idx]
	}
	return strings.TrimSpace(foodName)
}

// RetailerSearchLinks returns the two retailer search URLs for a food name.
func RetailerSearchLinks(foodName string) (string, string) {
	term := url.QueryEscape(searchTerm(foodName))
	return retailer1SearchURL + term, retailer2SearchURL + term
}
