package model

// Sentinel values used when a page carries no usable title or description.
const (
	UnknownBusiness = "Unknown Business"
	NoDescription   = "No description found"
)

// BusinessProfile is the structured record extracted from a scraped page.
// Emails and Phones are deduplicated; their order carries no meaning.
type BusinessProfile struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Emails      []string `json:"emails"`
	Phones      []string `json:"phones"`
	ScrapeTime  float64  `json:"scrape_time"`
}
