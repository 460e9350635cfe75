package infographic

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Summary describes a generated slide without modifying it.
type Summary struct {
	Title    string
	Headings int
	Sections int
	Icons    int
	Tailwind bool
}

func Inspect(html string) (Summary, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Summary{}, fmt.Errorf("failed to parse generated html: %w", err)
	}

	s := Summary{
		Title:    strings.TrimSpace(doc.Find("title").First().Text()),
		Headings: doc.Find("h1, h2, h3").Length(),
		Sections: doc.Find("section").Length(),
		Icons:    doc.Find("[data-lucide]").Length(),
	}
	if s.Title == "" {
		s.Title = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	doc.Find("script[src], link[href]").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		ref := sel.AttrOr("src", sel.AttrOr("href", ""))
		if strings.Contains(strings.ToLower(ref), "tailwind") {
			s.Tailwind = true
			return false
		}
		return true
	})

	return s, nil
}
