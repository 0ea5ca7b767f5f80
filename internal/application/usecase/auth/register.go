package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/careercanvas/api/internal/application/service"
	"github.com/careercanvas/api/internal/domain/portfolio"
	"github.com/careercanvas/api/pkg/apperror"
	"github.com/careercanvas/api/pkg/auth"
	"github.com/careercanvas/api/pkg/logger"
)

const minPasswordLength = 8

type RegisterUseCase struct {
	repo   portfolio.Repository
	jwtSvc *auth.JWTService
	events service.EventPublisher
	logger logger.Logger
}

func NewRegisterUseCase(repo portfolio.Repository, jwtSvc *auth.JWTService, events service.EventPublisher, log logger.Logger) *RegisterUseCase {
	return &RegisterUseCase{
		repo:   repo,
		jwtSvc: jwtSvc,
		events: events,
		logger: log,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type RegisterOutput struct {
	AccessToken string
	Account     *portfolio.Portfolio
}

// Execute registers a new account. The account row is the portfolio
// aggregate, so registration is also what brings the portfolio into
// existence: skills and projects empty, completion zero.
func (uc *RegisterUseCase) Execute(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {

	ctx, span := tracer.Start(ctx, "Register")
	defer span.End()

	name := strings.TrimSpace(input.Name)
	email := NormalizeEmail(input.Email)
	if name == "" {
		return nil, apperror.NewInvalidInput("name must not be empty", nil)
	}
	if email == "" {
		return nil, apperror.NewInvalidInput("email must not be empty", nil)
	}
	if len(strings.TrimSpace(input.Password)) < minPasswordLength {
		return nil, apperror.NewInvalidInput("password must have at least 8 characters", nil)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	acct := portfolio.New(name, email, hash)

	if err := uc.repo.Create(ctx, acct); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			return nil, apperror.NewDuplicateEmail(email)
		}
		span.RecordError(err)
		return nil, err
	}

	token, err := uc.jwtSvc.GenerateToken(acct.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("account_id", acct.ID.String()))
		return nil, apperror.NewInternal("failed to generate token", err)
	}

	if uc.events != nil {
		evt := service.Event{Type: service.EventAccountRegistered, AccountID: acct.ID, At: time.Now().UTC()}
		if err := uc.events.PublishAccountEvent(ctx, evt); err != nil {
			uc.logger.Warn("Failed to publish account event", zap.String("account_id", acct.ID.String()), zap.Error(err))
		}
	}

	span.SetAttributes(attribute.String("account_id", acct.ID.String()))
	return &RegisterOutput{AccessToken: token, Account: acct}, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
