// Package catalog fetches the historical events for a given month/day.
//
// Two sources are provided: a client for the Wikipedia REST feed
// (/feed/onthisday/events/{mm}/{dd}), which is the primary source, and a
// goquery-based scraper of the "Selected anniversaries" wiki pages as a
// fallback when the feed is unavailable. A TTL cache keyed by (month, day)
// can wrap either source so repeated loads on the same day do not refetch.
package catalog
