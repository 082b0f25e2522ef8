// Package catalog contains the pure filtering, sorting and spec-extraction
// logic of the product catalog. Nothing in this package performs I/O; the
// same input always yields the same output.
package catalog

import (
	"regexp"
	"sort"
	"strings"

	"storefront/internal/domain/entity"
)

// specPattern tags one attribute bucket with the regex that recognises it
// inside a free-text product description.
type specPattern struct {
	name string
	re   *regexp.Regexp
}

// The fixed pattern set. This is best-effort heuristic tagging, not a
// structured schema: the first match per bucket wins, and a product with no
// description yields no specs at all.
var specPatterns = []specPattern{
	{name: "RAM", re: regexp.MustCompile(`(?i)(\d+)\s*(GB|ГБ)\s*RAM`)},
	{name: "Storage", re: regexp.MustCompile(`(?i)(\d+)\s*(GB|ТБ|TB)\s*(SSD|HDD)?`)},
	{name: "Display", re: regexp.MustCompile(`(?i)(OLED|IPS|LCD|VA|TN)`)},
	{name: "Resolution", re: regexp.MustCompile(`(?i)(\d+p|4K|8K|FHD|QHD|UHD)`)},
	{name: "Processor", re: regexp.MustCompile(`(?i)(Intel|AMD|Snapdragon|Apple|M\d+|Core|Ryzen)`)},
	{name: "Battery", re: regexp.MustCompile(`(?i)(\d+)mAh|(\d+)h\s*battery`)},
	{name: "Refresh Rate", re: regexp.MustCompile(`(?i)(\d+)\s*Hz|(\d+)\s*FPS`)},
}

// ExtractSpecs scans a free-text description and collects the matched
// substring per attribute bucket. An empty description yields an empty map.
func ExtractSpecs(description string) map[string][]string {
	if description == "" {
		return map[string][]string{}
	}

	specs := make(map[string][]string)
	for _, pattern := range specPatterns {
		match := pattern.re.FindString(description)
		if match == "" {
			continue
		}
		specs[pattern.name] = append(specs[pattern.name], strings.TrimSpace(match))
	}

	return specs
}

// AllSpecs collects the distinct extracted spec values across a product
// list, per bucket, sorted for deterministic output. It drives the spec
// filter sidebar.
func AllSpecs(products []entity.Product) map[string][]string {
	seen := make(map[string]map[string]struct{})
	for _, product := range products {
		for name, values := range ExtractSpecs(product.Description) {
			if seen[name] == nil {
				seen[name] = make(map[string]struct{})
			}
			for _, value := range values {
				seen[name][value] = struct{}{}
			}
		}
	}

	result := make(map[string][]string, len(seen))
	for name, values := range seen {
		list := make([]string, 0, len(values))
		for value := range values {
			list = append(list, value)
		}
		sort.Strings(list)
		result[name] = list
	}

	return result
}

// matchesSpecFilter reports whether the product's extracted specs satisfy
// every non-empty desired value: the bucket must contain at least one value
// that case-insensitively contains the desired value as a substring.
// Products lacking a requested bucket are excluded.
func matchesSpecFilter(product entity.Product, filter map[string]string) bool {
	if len(filter) == 0 {
		return true
	}

	specs := ExtractSpecs(product.Description)
	for name, desired := range filter {
		if desired == "" {
			continue
		}

		found := false
		for _, value := range specs[name] {
			if strings.Contains(strings.ToLower(value), strings.ToLower(desired)) {
				found = true

				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
