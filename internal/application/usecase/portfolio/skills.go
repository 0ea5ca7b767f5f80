package portfolio

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/careercanvas/api/internal/application/service"
	"github.com/careercanvas/api/internal/domain/portfolio"
	"github.com/careercanvas/api/pkg/apperror"
)

type UpsertSkillInput struct {
	AccountID uuid.UUID
	Name      string
	Level     string
}

// UpsertSkill replaces the level of the caller's skill with the same name in
// place, or appends a new one. Returns the resulting skills sequence.
func (uc *PortfolioUseCase) UpsertSkill(ctx context.Context, input UpsertSkillInput) ([]portfolio.Skill, error) {
	p, err := uc.repo.GetByID(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	if _, err := p.UpsertSkill(input.Name, input.Level); err != nil {
		if errors.Is(err, portfolio.ErrEmptySkillName) {
			return nil, apperror.NewInvalidInput("skill name must not be empty", err)
		}
		return nil, err
	}

	if err := uc.save(ctx, p, service.EventSkillUpserted); err != nil {
		return nil, err
	}
	return p.Skills, nil
}

// DeleteSkill removes the skill with the given id from the caller's
// portfolio. An unknown id is a no-op and still returns the (unchanged)
// skills sequence.
func (uc *PortfolioUseCase) DeleteSkill(ctx context.Context, accountID, skillID uuid.UUID) ([]portfolio.Skill, error) {
	p, err := uc.repo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	p.RemoveSkill(skillID)

	if err := uc.save(ctx, p, service.EventSkillDeleted); err != nil {
		return nil, err
	}
	return p.Skills, nil
}
