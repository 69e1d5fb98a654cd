// Package extract derives a structured business profile from raw page HTML.
// Parsing is tolerant of malformed markup and never fails; missing fields
// degrade to sentinel values rather than errors.
package extract

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/sells-group/bizintel/internal/model"
)

// The contact patterns are deliberately permissive. The phone pattern in
// particular will match other long digit runs (dates, invoice numbers);
// that is accepted behavior, not something to tighten here.
var (
	emailRe = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phoneRe = regexp.MustCompile(`\+?\d[\d\s\-]{7,}\d`)
)

// Profile parses htmlBody and builds a BusinessProfile. elapsed is the
// wall-clock duration of the fetch+extract operation as observed by the
// caller.
func Profile(htmlBody string, elapsed time.Duration) *model.BusinessProfile {
	p := &model.BusinessProfile{
		Name:        model.UnknownBusiness,
		Description: model.NoDescription,
		Emails:      []string{},
		Phones:      []string{},
		ScrapeTime:  roundSeconds(elapsed),
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlBody))
	if err != nil {
		// html.Parse accepts arbitrary bytes; this only fires on reader
		// failures, which cannot happen with a strings.Reader.
		return p
	}

	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		p.Name = title
	}

	if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		if desc = strings.TrimSpace(desc); desc != "" {
			p.Description = desc
		}
	}

	text := flattenText(doc)
	p.Emails = dedupe(emailRe.FindAllString(text, -1))
	p.Phones = dedupe(phoneRe.FindAllString(text, -1))

	return p
}

// flattenText concatenates all visible text nodes with single-space
// separators. Script and style bodies are not visible text.
func flattenText(doc *goquery.Document) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "script", "style", "noscript":
				return
			}
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, root := range doc.Nodes {
		walk(root)
	}
	return strings.Join(parts, " ")
}

// dedupe removes repeats while keeping first-seen order.
func dedupe(matches []string) []string {
	out := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}
