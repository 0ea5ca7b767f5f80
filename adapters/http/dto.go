package http

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/careercanvas/api/internal/domain/portfolio"
)

// Field names stay camelCase on the wire for compatibility with the existing
// CareerCanvas client.

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SkillDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level string `json:"level"`
}

type ProjectDTO struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	GithubURL    string   `json:"githubUrl"`
}

type SocialLinksDTO struct {
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

// PortfolioDTO is the owner's view: everything except the password hash.
type PortfolioDTO struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Email             string         `json:"email"`
	ProfilePicture    string         `json:"profilePicture"`
	ProfessionalTitle string         `json:"professionalTitle"`
	Bio               string         `json:"bio"`
	Location          string         `json:"location"`
	YearsOfExperience int            `json:"yearsOfExperience"`
	Skills            []SkillDTO     `json:"skills"`
	Projects          []ProjectDTO   `json:"projects"`
	SocialLinks       SocialLinksDTO `json:"socialLinks"`
	ProfileCompletion int            `json:"profileCompletion"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

// PublicPortfolioDTO additionally omits the email: the key is absent from the
// JSON, not null.
type PublicPortfolioDTO struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	ProfilePicture    string         `json:"profilePicture"`
	ProfessionalTitle string         `json:"professionalTitle"`
	Bio               string         `json:"bio"`
	Location          string         `json:"location"`
	YearsOfExperience int            `json:"yearsOfExperience"`
	Skills            []SkillDTO     `json:"skills"`
	Projects          []ProjectDTO   `json:"projects"`
	SocialLinks       SocialLinksDTO `json:"socialLinks"`
	ProfileCompletion int            `json:"profileCompletion"`
}

// YearsField accepts a JSON number or a numeric string. Anything else is a
// hard unmarshal error, never a silently stored zero.
type YearsField int

func (y *YearsField) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*y = YearsField(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("yearsOfExperience must be an integer")
		}
		*y = YearsField(n)
		return nil
	}
	return fmt.Errorf("yearsOfExperience must be an integer")
}

// TechnologiesField accepts either an already-split array or a single
// comma-separated string; the string form is split, trimmed, and cleaned of
// empty elements.
type TechnologiesField []string

func (t *TechnologiesField) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*t = arr
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = portfolio.SplitTechnologies(s)
		return nil
	}
	return fmt.Errorf("technologies must be an array of strings or a comma-separated string")
}

type UpdateBasicInfoRequest struct {
	ProfessionalTitle string     `json:"professionalTitle"`
	Bio               string     `json:"bio"`
	Location          string     `json:"location"`
	YearsOfExperience YearsField `json:"yearsOfExperience"`
	ProfilePicture    string     `json:"profilePicture"`
}

type UpsertSkillRequest struct {
	Name  string `json:"name" binding:"required"`
	Level string `json:"level"`
}

type AddProjectRequest struct {
	Title        string            `json:"title" binding:"required"`
	Description  string            `json:"description" binding:"required"`
	Technologies TechnologiesField `json:"technologies"`
	GithubURL    string            `json:"githubUrl"`
}

type UpdateSocialLinksRequest struct {
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

func ToSkillDTOs(skills []portfolio.Skill) []SkillDTO {
	out := make([]SkillDTO, len(skills))
	for i, s := range skills {
		out[i] = SkillDTO{ID: s.ID.String(), Name: s.Name, Level: s.Level}
	}
	return out
}

func ToProjectDTOs(projects []portfolio.Project) []ProjectDTO {
	out := make([]ProjectDTO, len(projects))
	for i, p := range projects {
		techs := p.Technologies
		if techs == nil {
			techs = []string{}
		}
		out[i] = ProjectDTO{
			ID:           p.ID.String(),
			Title:        p.Title,
			Description:  p.Description,
			Technologies: techs,
			GithubURL:    p.GithubURL,
		}
	}
	return out
}

func ToSocialLinksDTO(l portfolio.SocialLinks) SocialLinksDTO {
	return SocialLinksDTO{LinkedIn: l.LinkedIn, GitHub: l.GitHub}
}

func ToPortfolioDTO(p *portfolio.Portfolio) PortfolioDTO {
	return PortfolioDTO{
		ID:                p.ID.String(),
		Name:              p.Name,
		Email:             p.Email,
		ProfilePicture:    p.ProfilePicture,
		ProfessionalTitle: p.ProfessionalTitle,
		Bio:               p.Bio,
		Location:          p.Location,
		YearsOfExperience: p.YearsOfExperience,
		Skills:            ToSkillDTOs(p.Skills),
		Projects:          ToProjectDTOs(p.Projects),
		SocialLinks:       ToSocialLinksDTO(p.SocialLinks),
		ProfileCompletion: p.ProfileCompletion,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func ToPublicPortfolioDTO(p *portfolio.Portfolio) PublicPortfolioDTO {
	return PublicPortfolioDTO{
		ID:                p.ID.String(),
		Name:              p.Name,
		ProfilePicture:    p.ProfilePicture,
		ProfessionalTitle: p.ProfessionalTitle,
		Bio:               p.Bio,
		Location:          p.Location,
		YearsOfExperience: p.YearsOfExperience,
		Skills:            ToSkillDTOs(p.Skills),
		Projects:          ToProjectDTOs(p.Projects),
		SocialLinks:       ToSocialLinksDTO(p.SocialLinks),
		ProfileCompletion: p.ProfileCompletion,
	}
}
