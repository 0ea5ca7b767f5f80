package portfolio

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/careercanvas/api/internal/application/service"
	"github.com/careercanvas/api/internal/domain/portfolio"
	"github.com/careercanvas/api/pkg/apperror"
)

type AddProjectInput struct {
	AccountID    uuid.UUID
	Title        string
	Description  string
	Technologies []string
	GithubURL    string
}

// AddProject appends a project to the caller's portfolio and returns the
// resulting projects sequence. Duplicate titles are allowed.
func (uc *PortfolioUseCase) AddProject(ctx context.Context, input AddProjectInput) ([]portfolio.Project, error) {
	p, err := uc.repo.GetByID(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	if _, err := p.AddProject(input.Title, input.Description, input.Technologies, input.GithubURL); err != nil {
		if errors.Is(err, portfolio.ErrEmptyProjectTitle) || errors.Is(err, portfolio.ErrEmptyProjectDesc) {
			return nil, apperror.NewInvalidInput("project title and description must not be empty", err)
		}
		return nil, err
	}

	if err := uc.save(ctx, p, service.EventProjectAdded); err != nil {
		return nil, err
	}
	return p.Projects, nil
}

// DeleteProject removes the project with the given id; unknown ids are a
// no-op.
func (uc *PortfolioUseCase) DeleteProject(ctx context.Context, accountID, projectID uuid.UUID) ([]portfolio.Project, error) {
	p, err := uc.repo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	p.RemoveProject(projectID)

	if err := uc.save(ctx, p, service.EventProjectDeleted); err != nil {
		return nil, err
	}
	return p.Projects, nil
}
