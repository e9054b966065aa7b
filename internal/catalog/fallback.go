package catalog

import (
	"context"

	"github.com/Alonso287/onthisday/internal/event"
	"github.com/Alonso287/onthisday/internal/logger"
)

// FallbackSource tries a primary source and falls back to a secondary when
// the primary fails. A cancelled context is not retried against the
// secondary.
type FallbackSource struct {
	primary   Source
	secondary Source
}

// NewFallbackSource chains two sources, primary first.
func NewFallbackSource(primary, secondary Source) *FallbackSource {
	return &FallbackSource{primary: primary, secondary: secondary}
}

// Events fetches from the primary source, retrying the secondary on failure.
func (s *FallbackSource) Events(ctx context.Context, month, day int) ([]event.Event, error) {
	events, err := s.primary.Events(ctx, month, day)
	if err == nil {
		return events, nil
	}
	if ctx.Err() != nil {
		return nil, err
	}

	logger.Warn("primary event source failed, trying fallback", logger.Fields{
		"month": month,
		"day":   day,
		"error": err.Error(),
	})
	return s.secondary.Events(ctx, month, day)
}
