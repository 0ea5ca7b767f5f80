package portfolio

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Skill levels used by the client. The store does not constrain the value,
// so unknown levels pass through untouched.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelExpert       = "Expert"
)

var (
	ErrEmptySkillName     = errors.New("skill name must not be empty")
	ErrEmptyProjectTitle  = errors.New("project title must not be empty")
	ErrEmptyProjectDesc   = errors.New("project description must not be empty")
	ErrNegativeExperience = errors.New("years of experience must not be negative")
)

type Skill struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Level string    `json:"level"`
}

type Project struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	GithubURL    string    `json:"githubUrl"`
}

// SocialLinks has whole-structure replacement semantics: an update overwrites
// both fields, it never merges.
type SocialLinks struct {
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

// Portfolio is the Account-Portfolio aggregate: the account identity and the
// portfolio content live in one document, keyed by the account id.
type Portfolio struct {
	ID                uuid.UUID   `json:"id"`
	Name              string      `json:"name"`
	Email             string      `json:"email"`
	PasswordHash      string      `json:"-"`
	ProfilePicture    string      `json:"profilePicture"`
	ProfessionalTitle string      `json:"professionalTitle"`
	Bio               string      `json:"bio"`
	Location          string      `json:"location"`
	YearsOfExperience int         `json:"yearsOfExperience"`
	Skills            []Skill     `json:"skills"`
	Projects          []Project   `json:"projects"`
	SocialLinks       SocialLinks `json:"socialLinks"`
	ProfileCompletion int         `json:"profileCompletion"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

// New creates a fresh aggregate for a registered account. Skills and projects
// start empty and completion starts at zero.
func New(name, email, passwordHash string) *Portfolio {
	now := time.Now().UTC()
	return &Portfolio{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Skills:       []Skill{},
		Projects:     []Project{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// UpsertSkill replaces the level of an existing skill with the same name,
// keeping its id and position, or appends a new skill with a fresh id. Names
// are compared case-sensitively, so the skills sequence never holds two
// entries with the same name.
func (p *Portfolio) UpsertSkill(name, level string) (Skill, error) {
	if name == "" {
		return Skill{}, ErrEmptySkillName
	}
	for i, s := range p.Skills {
		if s.Name == name {
			p.Skills[i].Level = level
			return p.Skills[i], nil
		}
	}
	skill := Skill{ID: uuid.New(), Name: name, Level: level}
	p.Skills = append(p.Skills, skill)
	return skill, nil
}

// RemoveSkill deletes the skill with the given id. Removing an unknown id is
// a no-op, not an error.
func (p *Portfolio) RemoveSkill(skillID uuid.UUID) {
	kept := p.Skills[:0]
	for _, s := range p.Skills {
		if s.ID != skillID {
			kept = append(kept, s)
		}
	}
	p.Skills = kept
}

// AddProject appends a project with a fresh id. Duplicate titles are allowed.
func (p *Portfolio) AddProject(title, description string, technologies []string, githubURL string) (Project, error) {
	if title == "" {
		return Project{}, ErrEmptyProjectTitle
	}
	if description == "" {
		return Project{}, ErrEmptyProjectDesc
	}
	if technologies == nil {
		technologies = []string{}
	}
	project := Project{
		ID:           uuid.New(),
		Title:        title,
		Description:  description,
		Technologies: technologies,
		GithubURL:    githubURL,
	}
	p.Projects = append(p.Projects, project)
	return project, nil
}

// RemoveProject deletes the project with the given id; unknown ids are a no-op.
func (p *Portfolio) RemoveProject(projectID uuid.UUID) {
	kept := p.Projects[:0]
	for _, pr := range p.Projects {
		if pr.ID != projectID {
			kept = append(kept, pr)
		}
	}
	p.Projects = kept
}

// SplitTechnologies turns a comma-separated input into an ordered list,
// trimming each element and dropping empty ones.
func SplitTechnologies(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Repository is the aggregate store: keyed storage of whole documents with
// last-writer-wins saves. There is no optimistic locking; concurrent edits of
// the same aggregate clobber each other by contract.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Portfolio, error)
	GetByEmail(ctx context.Context, email string) (*Portfolio, error)
	Create(ctx context.Context, p *Portfolio) error
	Save(ctx context.Context, p *Portfolio) error
}
