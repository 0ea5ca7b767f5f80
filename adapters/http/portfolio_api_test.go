package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	authUC "github.com/careercanvas/api/internal/application/usecase/auth"
	portfolioUC "github.com/careercanvas/api/internal/application/usecase/portfolio"
	domain "github.com/careercanvas/api/internal/domain/portfolio"
	"github.com/careercanvas/api/pkg/apperror"
	"github.com/careercanvas/api/pkg/auth"
	"github.com/careercanvas/api/pkg/logger"
)

// memRepo keeps the API test self-contained: same Repository contract as the
// postgres adapter, no container needed.
type memRepo struct {
	byID map[uuid.UUID]*domain.Portfolio
}

func (r *memRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Portfolio, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, apperror.NewNotFound("portfolio", id.String())
	}
	cp := *p
	return &cp, nil
}

func (r *memRepo) GetByEmail(_ context.Context, email string) (*domain.Portfolio, error) {
	for _, p := range r.byID {
		if p.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, apperror.NewNotFound("portfolio", email)
}

func (r *memRepo) Create(_ context.Context, p *domain.Portfolio) error {
	for _, existing := range r.byID {
		if existing.Email == p.Email {
			return apperror.NewDuplicateEmail(p.Email)
		}
	}
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *memRepo) Save(_ context.Context, p *domain.Portfolio) error {
	if _, ok := r.byID[p.ID]; !ok {
		return apperror.NewNotFound("portfolio", p.ID.String())
	}
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

type PortfolioAPITestSuite struct {
	suite.Suite
	router *gin.Engine
	repo   *memRepo
}

func (s *PortfolioAPITestSuite) SetupTest() {
	appLogger := logger.NewNopLogger()
	s.repo = &memRepo{byID: map[uuid.UUID]*domain.Portfolio{}}

	jwtSvc := auth.NewJWTService("api-test-secret", time.Hour)
	registerUseCase := authUC.NewRegisterUseCase(s.repo, jwtSvc, nil, appLogger)
	loginUseCase := authUC.NewLoginUseCase(s.repo, jwtSvc, appLogger)
	portfolioUseCase := portfolioUC.NewPortfolioUseCase(s.repo, nil, nil, nil, appLogger)

	authHandler := NewAuthHandler(registerUseCase, loginUseCase, appLogger)
	portfolioHandler := NewPortfolioHandler(portfolioUseCase, appLogger)
	authMiddleware := AuthMiddleware(jwtSvc, appLogger)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorMiddleware(appLogger))
	RegisterRoutes(router, authHandler, portfolioHandler, authMiddleware)
	s.router = router
}

func TestPortfolioAPI(t *testing.T) {
	suite.Run(t, new(PortfolioAPITestSuite))
}

func (s *PortfolioAPITestSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func (s *PortfolioAPITestSuite) register(email string) (token string, accountID string) {
	rr := s.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Ada",
		"email":    email,
		"password": "s3cret-pass",
	})
	s.Require().Equal(http.StatusCreated, rr.Code, rr.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
		User        struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	s.Require().NotEmpty(resp.AccessToken)
	return resp.AccessToken, resp.User.ID
}

func (s *PortfolioAPITestSuite) Test_Register_DuplicateEmailConflicts() {
	s.register("a@x.com")

	rr := s.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Eve",
		"email":    "a@x.com",
		"password": "another-pass",
	})
	s.Equal(http.StatusConflict, rr.Code)
}

func (s *PortfolioAPITestSuite) Test_Login_WrongPasswordRejected() {
	s.register("a@x.com")

	rr := s.do(http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "a@x.com",
		"password": "wrong",
	})
	s.Equal(http.StatusUnauthorized, rr.Code)
}

func (s *PortfolioAPITestSuite) Test_GetOwn_RequiresToken() {
	rr := s.do(http.MethodGet, "/api/portfolio/me", "", nil)
	s.Equal(http.StatusUnauthorized, rr.Code)
}

func (s *PortfolioAPITestSuite) Test_BasicInfo_CompletionFlow() {
	token, _ := s.register("a@x.com")

	// yearsOfExperience as a numeric string is accepted.
	rr := s.do(http.MethodPut, "/api/portfolio/basic-info", token, gin.H{
		"professionalTitle": "Engineer",
		"yearsOfExperience": "3",
	})
	s.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())

	var dto PortfolioDTO
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &dto))
	s.Equal(30, dto.ProfileCompletion)
	s.Equal(3, dto.YearsOfExperience)

	// A non-numeric value is a 400, never a silently stored zero.
	rr = s.do(http.MethodPut, "/api/portfolio/basic-info", token, gin.H{
		"professionalTitle": "Engineer",
		"yearsOfExperience": "three",
	})
	s.Equal(http.StatusBadRequest, rr.Code)

	// Adding a skill leaves the stored score stale at 30.
	rr = s.do(http.MethodPost, "/api/portfolio/skills", token, gin.H{"name": "Go", "level": "Expert"})
	s.Require().Equal(http.StatusOK, rr.Code)

	rr = s.do(http.MethodGet, "/api/portfolio/me", token, nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &dto))
	s.Equal(30, dto.ProfileCompletion)
	s.Len(dto.Skills, 1)
}

func (s *PortfolioAPITestSuite) Test_UpsertSkill_ReplacesInsteadOfAppending() {
	token, _ := s.register("a@x.com")

	rr := s.do(http.MethodPost, "/api/portfolio/skills", token, gin.H{"name": "Go", "level": "Beginner"})
	s.Require().Equal(http.StatusOK, rr.Code)
	var first []SkillDTO
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &first))
	s.Require().Len(first, 1)

	rr = s.do(http.MethodPost, "/api/portfolio/skills", token, gin.H{"name": "Go", "level": "Expert"})
	s.Require().Equal(http.StatusOK, rr.Code)
	var second []SkillDTO
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &second))
	s.Require().Len(second, 1)
	s.Equal(first[0].ID, second[0].ID)
	s.Equal("Expert", second[0].Level)
}

func (s *PortfolioAPITestSuite) Test_AddProject_CommaSeparatedTechnologies() {
	token, _ := s.register("a@x.com")

	rr := s.do(http.MethodPost, "/api/portfolio/projects", token, gin.H{
		"title":        "CareerCanvas",
		"description":  "Portfolio builder",
		"technologies": "Go, Rust,  , Python",
	})
	s.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())

	var projects []ProjectDTO
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &projects))
	s.Require().Len(projects, 1)
	s.Equal([]string{"Go", "Rust", "Python"}, projects[0].Technologies)
}

func (s *PortfolioAPITestSuite) Test_DeleteSkill_UnknownIDReturnsOK() {
	token, _ := s.register("a@x.com")

	rr := s.do(http.MethodDelete, fmt.Sprintf("/api/portfolio/skills/%s", uuid.New()), token, nil)
	s.Equal(http.StatusOK, rr.Code)
}

func (s *PortfolioAPITestSuite) Test_DeleteSkill_MalformedIDRejected() {
	token, _ := s.register("a@x.com")

	// A well-formed unknown id is a no-op (see above); a syntactically broken
	// one is a client error.
	rr := s.do(http.MethodDelete, "/api/portfolio/skills/not-a-uuid", token, nil)
	s.Equal(http.StatusBadRequest, rr.Code)

	rr = s.do(http.MethodDelete, "/api/portfolio/projects/not-a-uuid", token, nil)
	s.Equal(http.StatusBadRequest, rr.Code)
}

func (s *PortfolioAPITestSuite) Test_SocialLinks_WholeStructureReplace() {
	token, _ := s.register("a@x.com")

	rr := s.do(http.MethodPut, "/api/portfolio/social-links", token, gin.H{"linkedin": "https://linkedin.com/in/ada"})
	s.Require().Equal(http.StatusOK, rr.Code)

	rr = s.do(http.MethodPut, "/api/portfolio/social-links", token, gin.H{"github": "https://github.com/ada"})
	s.Require().Equal(http.StatusOK, rr.Code)

	var links SocialLinksDTO
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &links))
	s.Empty(links.LinkedIn)
	s.Equal("https://github.com/ada", links.GitHub)
}

func (s *PortfolioAPITestSuite) Test_PublicView_OmitsSensitiveKeys() {
	token, accountID := s.register("a@x.com")

	rr := s.do(http.MethodPost, "/api/portfolio/skills", token, gin.H{"name": "Go", "level": "Expert"})
	s.Require().Equal(http.StatusOK, rr.Code)

	// No Authorization header on purpose.
	rr = s.do(http.MethodGet, "/api/portfolio/"+accountID, "", nil)
	s.Require().Equal(http.StatusOK, rr.Code)

	var raw map[string]any
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &raw))

	_, hasEmail := raw["email"]
	s.False(hasEmail, "public view must omit the email key entirely")
	_, hasPassword := raw["password"]
	s.False(hasPassword)
	_, hasHash := raw["passwordHash"]
	s.False(hasHash)

	s.Equal("Ada", raw["name"])
}

func (s *PortfolioAPITestSuite) Test_PublicView_UnknownAccountIs404() {
	rr := s.do(http.MethodGet, "/api/portfolio/"+uuid.NewString(), "", nil)
	s.Equal(http.StatusNotFound, rr.Code)
}

func (s *PortfolioAPITestSuite) Test_Create_ReturnsExistingAggregate() {
	token, _ := s.register("a@x.com")

	rr := s.do(http.MethodPost, "/api/portfolio/skills", token, gin.H{"name": "Go", "level": "Expert"})
	s.Require().Equal(http.StatusOK, rr.Code)

	rr = s.do(http.MethodPost, "/api/portfolio", token, nil)
	s.Require().Equal(http.StatusOK, rr.Code)

	var dto PortfolioDTO
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &dto))
	s.Len(dto.Skills, 1, "create must not reset an existing portfolio")
}

func (s *PortfolioAPITestSuite) Test_LiteralRoutesNotShadowedByPublicView() {
	token, _ := s.register("a@x.com")

	// /me is a literal sub-path of /:userId; it must still resolve.
	rr := s.do(http.MethodGet, "/api/portfolio/me", token, nil)
	s.Equal(http.StatusOK, rr.Code)
}
