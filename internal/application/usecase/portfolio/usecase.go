package portfolio

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careercanvas/api/internal/application/service"
	"github.com/careercanvas/api/internal/domain/portfolio"
	"github.com/careercanvas/api/pkg/logger"
)

// PortfolioUseCase implements every operation of the portfolio service. All
// mutations follow the same shape: load the caller's whole aggregate, mutate
// it in memory, save the whole aggregate back. The last save wins; there is
// no versioning, so concurrent sessions editing the same account can lose
// updates.
type PortfolioUseCase struct {
	repo     portfolio.Repository
	cache    service.PortfolioCache
	events   service.EventPublisher
	uploader service.Uploader
	logger   logger.Logger
}

func NewPortfolioUseCase(repo portfolio.Repository, cache service.PortfolioCache, events service.EventPublisher, uploader service.Uploader, log logger.Logger) *PortfolioUseCase {
	return &PortfolioUseCase{
		repo:     repo,
		cache:    cache,
		events:   events,
		uploader: uploader,
		logger:   log,
	}
}

// save persists the aggregate, drops the cached public view and emits a
// domain event. Cache and broker failures are logged and swallowed.
func (uc *PortfolioUseCase) save(ctx context.Context, p *portfolio.Portfolio, eventType string) error {
	p.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Save(ctx, p); err != nil {
		return err
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, p.ID); err != nil {
			uc.logger.Warn("Failed to invalidate public view cache", zap.String("account_id", p.ID.String()), zap.Error(err))
		}
	}

	uc.publish(ctx, eventType, p.ID)
	return nil
}

func (uc *PortfolioUseCase) publish(ctx context.Context, eventType string, accountID uuid.UUID) {
	if uc.events == nil {
		return
	}
	evt := service.Event{Type: eventType, AccountID: accountID, At: time.Now().UTC()}
	if err := uc.events.PublishPortfolioEvent(ctx, evt); err != nil {
		uc.logger.Warn("Failed to publish portfolio event",
			zap.String("type", eventType), zap.String("account_id", accountID.String()), zap.Error(err))
	}
}
