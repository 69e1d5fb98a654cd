package scrape

import "strings"

// NormalizeURL canonicalizes a user-supplied address into a fetchable
// absolute URL. Inputs already carrying an http or https scheme pass
// through unchanged; everything else gets https prepended. Domain syntax
// is not validated here — a garbage host surfaces as a fetch failure.
func NormalizeURL(raw string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "https://" + raw
}
