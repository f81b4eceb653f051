package normalize

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Metadata is what a page head tells us about a posting. Absent fields are
// empty strings.
type Metadata struct {
	Title       string
	Company     string
	Location    string
	Description string
	URL         string
}

// ReadMetadata recovers job-related metadata from standard head elements:
// Open Graph tags, plain meta names, the canonical link and the document
// title. It never raises; unparseable markup yields the zero Metadata.
func ReadMetadata(content string) Metadata {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return Metadata{}
	}

	var m Metadata
	m.Title = metaContent(doc, `meta[property="og:title"]`)
	if m.Title == "" {
		m.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	m.Company = metaContent(doc, `meta[name="company"]`, `meta[property="og:site_name"]`)
	m.Location = metaContent(doc, `meta[name="location"]`, `meta[name="geo.placename"]`)
	m.Description = metaContent(doc, `meta[name="description"]`, `meta[property="og:description"]`)
	m.URL = jobURL(doc)
	return m
}

// jobURL looks for the posting's own URL: canonical link first, then
// og:url, then the rarer url meta and base href.
func jobURL(doc *goquery.Document) string {
	if href, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href"); ok && strings.TrimSpace(href) != "" {
		return strings.TrimSpace(href)
	}
	if u := metaContent(doc, `meta[property="og:url"]`, `meta[name="url"]`); u != "" {
		return u
	}
	if href, ok := doc.Find("base[href]").First().Attr("href"); ok {
		return strings.TrimSpace(href)
	}
	return ""
}

func metaContent(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		if v, ok := doc.Find(sel).First().Attr("content"); ok {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	return ""
}
