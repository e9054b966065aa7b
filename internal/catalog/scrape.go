package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Alonso287/onthisday/internal/event"
	"github.com/PuerkitoBio/goquery"
)

const (
	// AnniversariesURL is the wiki page listing each day's selected events.
	AnniversariesURL = "https://en.wikipedia.org/wiki/Wikipedia:Selected_anniversaries"
	// ScrapeTimeout bounds a single page fetch. Wiki pages are heavier than
	// the feed, so this is more generous than the feed timeout.
	ScrapeTimeout = 30 * time.Second
)

// ScrapeSource extracts events from the "Selected anniversaries" wiki pages.
// It is a fallback for when the REST feed is unavailable; the page carries
// fewer events per day and no page descriptions.
type ScrapeSource struct {
	client  *http.Client
	baseURL string
}

// NewScrapeSource creates a scraper against the live wiki.
func NewScrapeSource() *ScrapeSource {
	return NewScrapeSourceWithBaseURL(AnniversariesURL)
}

// NewScrapeSourceWithBaseURL creates a scraper against a specific page root.
func NewScrapeSourceWithBaseURL(baseURL string) *ScrapeSource {
	return &ScrapeSource{
		client: &http.Client{
			Timeout: ScrapeTimeout,
		},
		baseURL: baseURL,
	}
}

// Events fetches and parses the anniversaries page for the given month/day.
func (s *ScrapeSource) Events(ctx context.Context, month, day int) ([]event.Event, error) {
	pageURL := fmt.Sprintf("%s/%s_%d", s.baseURL, time.Month(month).String(), day)

	req, err := http.NewRequestWithContext(ctx, "GET", pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return s.parseEvents(resp.Body)
}

// anniversaryLine matches entries like "1215 – King John seals Magna Carta".
// The separator varies between en dash, em dash and hyphen across revisions.
var anniversaryLine = regexp.MustCompile(`^(\d{1,4})\s*[–—-]\s*(.+)$`)

// parseEvents extracts events from the page HTML.
func (s *ScrapeSource) parseEvents(r io.Reader) ([]event.Event, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	events := make([]event.Event, 0)
	seen := make(map[string]bool)

	doc.Find("ul li").Each(func(i int, sel *goquery.Selection) {
		line := strings.TrimSpace(sel.Text())
		matches := anniversaryLine.FindStringSubmatch(line)
		if matches == nil {
			return
		}

		year, err := strconv.Atoi(matches[1])
		if err != nil || year < 1 {
			return
		}
		text := strings.TrimSpace(matches[2])
		if text == "" || seen[text] {
			return
		}
		seen[text] = true

		events = append(events, event.Event{
			Year:  year,
			Text:  text,
			Pages: extractPages(sel),
		})
	})

	if len(events) == 0 {
		return nil, fmt.Errorf("no events found on page")
	}

	return events, nil
}

// extractPages pulls linked article titles out of a list entry. Links back
// into project space (e.g. "Wikipedia:...") are not article references.
func extractPages(sel *goquery.Selection) []event.PageRef {
	pages := make([]event.PageRef, 0)
	seen := make(map[string]bool)

	sel.Find("a").Each(func(i int, a *goquery.Selection) {
		title, ok := a.Attr("title")
		if !ok || title == "" || strings.Contains(title, ":") {
			return
		}
		if seen[title] {
			return
		}
		seen[title] = true

		href, _ := a.Attr("href")
		pages = append(pages, event.PageRef{
			Title: title,
			URL:   href,
		})
	})

	if len(pages) == 0 {
		return nil
	}
	return pages
}
