package portfolio

import (
	"context"

	"github.com/google/uuid"

	"github.com/careercanvas/api/internal/application/service"
	"github.com/careercanvas/api/internal/domain/portfolio"
)

type UpdateSocialLinksInput struct {
	AccountID uuid.UUID
	LinkedIn  string
	GitHub    string
}

// UpdateSocialLinks replaces the whole socialLinks structure with exactly the
// supplied values. A link the client leaves out becomes the empty string;
// nothing is preserved from the previous structure.
func (uc *PortfolioUseCase) UpdateSocialLinks(ctx context.Context, input UpdateSocialLinksInput) (portfolio.SocialLinks, error) {
	p, err := uc.repo.GetByID(ctx, input.AccountID)
	if err != nil {
		return portfolio.SocialLinks{}, err
	}

	p.SocialLinks = portfolio.SocialLinks{
		LinkedIn: input.LinkedIn,
		GitHub:   input.GitHub,
	}

	if err := uc.save(ctx, p, service.EventSocialLinksUpdated); err != nil {
		return portfolio.SocialLinks{}, err
	}
	return p.SocialLinks, nil
}
