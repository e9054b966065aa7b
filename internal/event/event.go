package event

import (
	"regexp"
	"strings"
)

// PageRef is a reference page associated with an event. Titles use the
// canonical (underscore-free) form returned by the feed.
type PageRef struct {
	Title        string `json:"title"`
	DisplayTitle string `json:"displaytitle,omitempty"`
	Description  string `json:"description,omitempty"`
	Thumbnail    string `json:"thumbnail,omitempty"`
	URL          string `json:"url,omitempty"`
}

// Event represents a single historical occurrence for a month/day.
// Events are immutable once fetched.
type Event struct {
	Year  int       `json:"year"`
	Text  string    `json:"text"`
	Pages []PageRef `json:"pages,omitempty"`
}

// bareNumber matches a standalone 1-4 digit run, i.e. a year candidate that
// would leak the answer if it appeared in the question text.
var bareNumber = regexp.MustCompile(`\b\d{1,4}\b`)

// QuizEligible reports whether the event can be used as a quiz question.
// currentYear caps the accepted year range; events dated in the future (or
// before year 1) are rejected, as are events whose text mentions a bare
// 1-4 digit number.
func (e Event) QuizEligible(currentYear int) bool {
	if e.Year < 1 || e.Year > currentYear {
		return false
	}
	return !bareNumber.MatchString(e.Text)
}

// FilterEligible returns the events usable as quiz questions, preserving
// their original order.
func FilterEligible(events []Event, currentYear int) []Event {
	eligible := make([]Event, 0, len(events))
	for _, e := range events {
		if e.QuizEligible(currentYear) {
			eligible = append(eligible, e)
		}
	}
	return eligible
}

// PrimaryPages returns up to n of the event's reference pages.
func (e Event) PrimaryPages(n int) []PageRef {
	if n <= 0 || len(e.Pages) == 0 {
		return nil
	}
	if n > len(e.Pages) {
		n = len(e.Pages)
	}
	pages := make([]PageRef, n)
	copy(pages, e.Pages[:n])
	return pages
}

// DisplayName returns the page's display title when present, falling back to
// the canonical title.
func (p PageRef) DisplayName() string {
	if s := strings.TrimSpace(p.DisplayTitle); s != "" {
		return s
	}
	return p.Title
}
