package auth

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/careercanvas/api/internal/domain/portfolio"
	"github.com/careercanvas/api/pkg/apperror"
	"github.com/careercanvas/api/pkg/auth"
	"github.com/careercanvas/api/pkg/logger"
)

var (
	ErrInvalidCredentials = errors.New("email or password is incorrect")
)

var tracer = otel.Tracer("auth_usecase")

type LoginUseCase struct {
	repo   portfolio.Repository
	jwtSvc *auth.JWTService
	logger logger.Logger
}

func NewLoginUseCase(repo portfolio.Repository, jwtSvc *auth.JWTService, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{
		repo:   repo,
		jwtSvc: jwtSvc,
		logger: log,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken string
	Account     *portfolio.Portfolio
}

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {

	ctx, span := tracer.Start(ctx, "Login")
	defer span.End()

	email := NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, apperror.NewUnauthorized("missing email or password", nil)
	}

	acct, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewUnauthorized("unknown email", ErrInvalidCredentials)
		}
		span.RecordError(err)
		return nil, err
	}

	if !auth.CheckPasswordHash(input.Password, acct.PasswordHash) {
		err := apperror.NewUnauthorized("incorrect password", ErrInvalidCredentials)
		span.RecordError(err)
		return nil, err
	}

	token, err := uc.jwtSvc.GenerateToken(acct.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("account_id", acct.ID.String()))
		err = apperror.NewInternal("failed to generate token", err)
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.String("account_id", acct.ID.String()))
	return &LoginOutput{AccessToken: token, Account: acct}, nil
}
