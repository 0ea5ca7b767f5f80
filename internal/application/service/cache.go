package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/careercanvas/api/internal/domain/portfolio"
)

// PortfolioCache is a read-through cache for the public portfolio view.
// Get returns (nil, nil) on a miss. Like event publishing, cache failures are
// logged and swallowed: the store stays the source of truth.
type PortfolioCache interface {
	Get(ctx context.Context, id uuid.UUID) (*portfolio.Portfolio, error)
	Set(ctx context.Context, p *portfolio.Portfolio) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}
