package persistence

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/careercanvas/api/internal/domain/portfolio"
	"github.com/careercanvas/api/pkg/apperror"
	"github.com/careercanvas/api/pkg/logger"
)

// postgresPortfolioRepo stores each Account-Portfolio aggregate as one users
// row: identity fields as plain columns, the owned sequences (skills,
// projects) and socialLinks as JSONB documents. Save writes the whole
// document back; the last writer wins.
type postgresPortfolioRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresPortfolioRepo(db *pgxpool.Pool, logger logger.Logger) portfolio.Repository {
	return &postgresPortfolioRepo{db: db, logger: logger}
}

var psqlUsers = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{
	"id", "name", "email", "password_hash", "profile_picture",
	"professional_title", "bio", "location", "years_of_experience",
	"skills", "projects", "social_links", "profile_completion",
	"created_at", "updated_at",
}

func (r *postgresPortfolioRepo) scanPortfolio(row pgx.Row, identifier string) (*portfolio.Portfolio, error) {
	p := &portfolio.Portfolio{}
	var skillsBytes, projectsBytes, socialLinksBytes []byte

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Email,
		&p.PasswordHash,
		&p.ProfilePicture,
		&p.ProfessionalTitle,
		&p.Bio,
		&p.Location,
		&p.YearsOfExperience,
		&skillsBytes,
		&projectsBytes,
		&socialLinksBytes,
		&p.ProfileCompletion,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("portfolio", identifier)
		}
		return nil, apperror.NewStorageUnavailable("failed to scan portfolio row", err)
	}

	if err := json.Unmarshal(skillsBytes, &p.Skills); err != nil {
		r.logger.Warn("Failed to unmarshal skills", zap.String("account_id", p.ID.String()), zap.Error(err))
		p.Skills = []portfolio.Skill{}
	}
	if err := json.Unmarshal(projectsBytes, &p.Projects); err != nil {
		r.logger.Warn("Failed to unmarshal projects", zap.String("account_id", p.ID.String()), zap.Error(err))
		p.Projects = []portfolio.Project{}
	}
	if err := json.Unmarshal(socialLinksBytes, &p.SocialLinks); err != nil {
		r.logger.Warn("Failed to unmarshal social links", zap.String("account_id", p.ID.String()), zap.Error(err))
		p.SocialLinks = portfolio.SocialLinks{}
	}

	return p, nil
}

func (r *postgresPortfolioRepo) GetByID(ctx context.Context, id uuid.UUID) (*portfolio.Portfolio, error) {
	query, args, err := psqlUsers.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build portfolio query", err)
	}

	return r.scanPortfolio(r.db.QueryRow(ctx, query, args...), id.String())
}

func (r *postgresPortfolioRepo) GetByEmail(ctx context.Context, email string) (*portfolio.Portfolio, error) {
	query, args, err := psqlUsers.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build portfolio query", err)
	}

	return r.scanPortfolio(r.db.QueryRow(ctx, query, args...), email)
}

func (r *postgresPortfolioRepo) Create(ctx context.Context, p *portfolio.Portfolio) error {
	skillsBytes, projectsBytes, socialLinksBytes, err := marshalAggregate(p)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (id, name, email, password_hash, profile_picture,
			professional_title, bio, location, years_of_experience,
			skills, projects, social_links, profile_completion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err = r.db.Exec(ctx, query,
		p.ID, p.Name, p.Email, p.PasswordHash, p.ProfilePicture,
		p.ProfessionalTitle, p.Bio, p.Location, p.YearsOfExperience,
		skillsBytes, projectsBytes, socialLinksBytes, p.ProfileCompletion,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return apperror.NewDuplicateEmail(p.Email)
		}
		return apperror.NewStorageUnavailable("failed to create portfolio", err)
	}
	return nil
}

func (r *postgresPortfolioRepo) Save(ctx context.Context, p *portfolio.Portfolio) error {
	skillsBytes, projectsBytes, socialLinksBytes, err := marshalAggregate(p)
	if err != nil {
		return err
	}

	query := `
		UPDATE users SET
			name = $2, profile_picture = $3, professional_title = $4, bio = $5,
			location = $6, years_of_experience = $7, skills = $8, projects = $9,
			social_links = $10, profile_completion = $11, updated_at = $12
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.ProfilePicture, p.ProfessionalTitle, p.Bio,
		p.Location, p.YearsOfExperience, skillsBytes, projectsBytes,
		socialLinksBytes, p.ProfileCompletion, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewStorageUnavailable("failed to save portfolio", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("portfolio", p.ID.String())
	}
	return nil
}

func marshalAggregate(p *portfolio.Portfolio) (skills, projects, socialLinks []byte, err error) {
	if skills, err = json.Marshal(p.Skills); err != nil {
		return nil, nil, nil, apperror.NewInternal("failed to marshal skills", err)
	}
	if projects, err = json.Marshal(p.Projects); err != nil {
		return nil, nil, nil, apperror.NewInternal("failed to marshal projects", err)
	}
	if socialLinks, err = json.Marshal(p.SocialLinks); err != nil {
		return nil, nil, nil, apperror.NewInternal("failed to marshal social links", err)
	}
	return skills, projects, socialLinks, nil
}
