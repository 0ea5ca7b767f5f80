package portfolio

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careercanvas/api/internal/domain/portfolio"
)

// GetOwn returns the caller's aggregate.
func (uc *PortfolioUseCase) GetOwn(ctx context.Context, accountID uuid.UUID) (*portfolio.Portfolio, error) {
	return uc.repo.GetByID(ctx, accountID)
}

// Create idempotently ensures the caller's aggregate exists. The aggregate is
// created at registration, so this always finds one and returns it unchanged.
// Recreating (and thereby resetting) an existing portfolio would silently
// discard data, so an existing aggregate is never touched.
func (uc *PortfolioUseCase) Create(ctx context.Context, accountID uuid.UUID) (*portfolio.Portfolio, error) {
	return uc.repo.GetByID(ctx, accountID)
}

// GetPublic returns any account's aggregate for the unauthenticated public
// view, through the read-through cache. Sensitive field stripping is the
// transport layer's job.
func (uc *PortfolioUseCase) GetPublic(ctx context.Context, accountID uuid.UUID) (*portfolio.Portfolio, error) {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, accountID)
		if err != nil {
			uc.logger.Warn("Public view cache read failed", zap.String("account_id", accountID.String()), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	p, err := uc.repo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, p); err != nil {
			uc.logger.Warn("Public view cache write failed", zap.String("account_id", accountID.String()), zap.Error(err))
		}
	}
	return p, nil
}
