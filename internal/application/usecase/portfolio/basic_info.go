package portfolio

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careercanvas/api/internal/application/service"
	"github.com/careercanvas/api/internal/domain/portfolio"
	"github.com/careercanvas/api/pkg/apperror"
)

type UpdateBasicInfoInput struct {
	AccountID         uuid.UUID
	ProfessionalTitle string
	Bio               string
	Location          string
	YearsOfExperience int
	ProfilePicture    string
}

// UpdateBasicInfo overwrites the five basic-info fields wholesale (a full
// replace, not a merge: a field the client leaves out arrives as its zero
// value and is stored as such), then recomputes and persists the completion
// score. This is the only path that refreshes ProfileCompletion.
func (uc *PortfolioUseCase) UpdateBasicInfo(ctx context.Context, input UpdateBasicInfoInput) (*portfolio.Portfolio, error) {
	if input.YearsOfExperience < 0 {
		return nil, apperror.NewInvalidInput("yearsOfExperience must not be negative", portfolio.ErrNegativeExperience)
	}

	p, err := uc.repo.GetByID(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	// Clearing the picture also destroys the uploaded asset, best-effort: the
	// URL may point at something we never stored, and a miss is harmless.
	if input.ProfilePicture == "" && p.ProfilePicture != "" && uc.uploader != nil {
		if err := uc.uploader.Delete(ctx, profilePictureFolder+"/"+input.AccountID.String()); err != nil {
			uc.logger.Warn("Failed to delete stored profile picture", zap.String("account_id", input.AccountID.String()), zap.Error(err))
		}
	}

	p.ProfessionalTitle = input.ProfessionalTitle
	p.Bio = input.Bio
	p.Location = input.Location
	p.YearsOfExperience = input.YearsOfExperience
	p.ProfilePicture = input.ProfilePicture
	p.ProfileCompletion = portfolio.Completion(p)

	if err := uc.save(ctx, p, service.EventBasicInfoUpdated); err != nil {
		return nil, err
	}
	return p, nil
}
