package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Alonso287/onthisday/internal/event"
)

const (
	// DefaultBaseURL is the Wikipedia REST API root.
	DefaultBaseURL = "https://en.wikipedia.org/api/rest_v1"
	// UserAgent identifies this client to the Wikimedia servers.
	UserAgent = "onthisday-game/1.0 (github.com/Alonso287/onthisday)"
	// Timeout bounds a single feed request.
	Timeout = 10 * time.Second
)

// Source yields the historical events for a month/day. Implementations may
// fail; failures abort a game load and are surfaced to the caller.
type Source interface {
	Events(ctx context.Context, month, day int) ([]event.Event, error)
}

// RESTSource fetches events from the Wikipedia "on this day" REST feed.
type RESTSource struct {
	baseURL    string
	httpClient *http.Client
}

// NewRESTSource creates a feed client against the production API.
func NewRESTSource() *RESTSource {
	return NewRESTSourceWithBaseURL(DefaultBaseURL)
}

// NewRESTSourceWithBaseURL creates a feed client against a specific API root.
// Used by tests to point at a local server.
func NewRESTSourceWithBaseURL(baseURL string) *RESTSource {
	return &RESTSource{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: Timeout,
		},
	}
}

// feedResponse mirrors the events portion of the feed payload.
type feedResponse struct {
	Events []feedEvent `json:"events"`
}

type feedEvent struct {
	Text  string     `json:"text"`
	Year  int        `json:"year"`
	Pages []feedPage `json:"pages"`
}

type feedPage struct {
	Title  string `json:"title"`
	Titles struct {
		Normalized string `json:"normalized"`
		Display    string `json:"display"`
	} `json:"titles"`
	Description string `json:"description"`
	Thumbnail   struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

// Events fetches the day's events from the feed.
func (s *RESTSource) Events(ctx context.Context, month, day int) ([]event.Event, error) {
	reqURL := fmt.Sprintf("%s/feed/onthisday/events/%02d/%02d", s.baseURL, month, day)

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching events: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	var payload feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("parsing feed response: %w", err)
	}

	events := make([]event.Event, 0, len(payload.Events))
	for _, fe := range payload.Events {
		events = append(events, event.Event{
			Year:  fe.Year,
			Text:  fe.Text,
			Pages: convertPages(fe.Pages),
		})
	}
	return events, nil
}

func convertPages(pages []feedPage) []event.PageRef {
	if len(pages) == 0 {
		return nil
	}
	refs := make([]event.PageRef, 0, len(pages))
	for _, p := range pages {
		title := p.Titles.Normalized
		if title == "" {
			title = p.Title
		}
		refs = append(refs, event.PageRef{
			Title:        title,
			DisplayTitle: p.Titles.Display,
			Description:  p.Description,
			Thumbnail:    p.Thumbnail.Source,
			URL:          p.ContentURLs.Desktop.Page,
		})
	}
	return refs
}
