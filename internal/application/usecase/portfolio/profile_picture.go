package portfolio

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/careercanvas/api/internal/application/service"
	"github.com/careercanvas/api/internal/domain/portfolio"
	"github.com/careercanvas/api/pkg/apperror"
)

const profilePictureFolder = "careercanvas/profile-pictures"

// UploadProfilePicture stores the image with the media uploader and saves the
// returned URL on the aggregate. The account id doubles as the public id, so
// re-uploading replaces the previous picture. Completion carries no weight
// for the picture, so the stored score is untouched.
func (uc *PortfolioUseCase) UploadProfilePicture(ctx context.Context, accountID uuid.UUID, file io.Reader) (*portfolio.Portfolio, error) {
	if uc.uploader == nil {
		return nil, apperror.NewInternal("media uploader is not configured", nil)
	}

	p, err := uc.repo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	url, err := uc.uploader.Upload(ctx, file, profilePictureFolder, accountID.String())
	if err != nil {
		return nil, apperror.NewInternal("failed to upload profile picture", err)
	}

	p.ProfilePicture = url

	if err := uc.save(ctx, p, service.EventPictureUploaded); err != nil {
		return nil, err
	}
	return p, nil
}
