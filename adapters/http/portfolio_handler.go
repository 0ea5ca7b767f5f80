package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	portfolioUC "github.com/careercanvas/api/internal/application/usecase/portfolio"
	"github.com/careercanvas/api/pkg/apperror"
	"github.com/careercanvas/api/pkg/logger"
)

type PortfolioHandler struct {
	portfolioUseCase *portfolioUC.PortfolioUseCase
	logger           logger.Logger
}

func NewPortfolioHandler(uc *portfolioUC.PortfolioUseCase, log logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioUseCase: uc,
		logger:           log,
	}
}

// GetOwn handles GET /api/portfolio/me.
func (h *PortfolioHandler) GetOwn(c *gin.Context) {
	accountID, ok := GetAccountIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("accountID not found in context"))
		return
	}

	p, err := h.portfolioUseCase.GetOwn(c.Request.Context(), accountID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPortfolioDTO(p))
}

// Create handles POST /api/portfolio. Ensuring is idempotent: an existing
// aggregate is returned untouched.
func (h *PortfolioHandler) Create(c *gin.Context) {
	accountID, ok := GetAccountIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("accountID not found in context"))
		return
	}

	p, err := h.portfolioUseCase.Create(c.Request.Context(), accountID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPortfolioDTO(p))
}

// UpdateBasicInfo handles PUT /api/portfolio/basic-info.
func (h *PortfolioHandler) UpdateBasicInfo(c *gin.Context) {
	accountID, ok := GetAccountIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("accountID not found in context"))
		return
	}

	var req UpdateBasicInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for basic info update", err))
		return
	}

	input := portfolioUC.UpdateBasicInfoInput{
		AccountID:         accountID,
		ProfessionalTitle: req.ProfessionalTitle,
		Bio:               req.Bio,
		Location:          req.Location,
		YearsOfExperience: int(req.YearsOfExperience),
		ProfilePicture:    req.ProfilePicture,
	}
	p, err := h.portfolioUseCase.UpdateBasicInfo(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPortfolioDTO(p))
}

// UpsertSkill handles POST /api/portfolio/skills.
func (h *PortfolioHandler) UpsertSkill(c *gin.Context) {
	accountID, ok := GetAccountIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("accountID not found in context"))
		return
	}

	var req UpsertSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for skill", err))
		return
	}

	skills, err := h.portfolioUseCase.UpsertSkill(c.Request.Context(), portfolioUC.UpsertSkillInput{
		AccountID: accountID,
		Name:      req.Name,
		Level:     req.Level,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToSkillDTOs(skills))
}

// DeleteSkill handles DELETE /api/portfolio/skills/:skillId.
func (h *PortfolioHandler) DeleteSkill(c *gin.Context) {
	accountID, ok := GetAccountIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("accountID not found in context"))
		return
	}

	skillID, err := uuid.Parse(c.Param("skillId"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("skillId must be a valid id", err))
		return
	}

	skills, err := h.portfolioUseCase.DeleteSkill(c.Request.Context(), accountID, skillID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToSkillDTOs(skills))
}

// AddProject handles POST /api/portfolio/projects.
func (h *PortfolioHandler) AddProject(c *gin.Context) {
	accountID, ok := GetAccountIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("accountID not found in context"))
		return
	}

	var req AddProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for project", err))
		return
	}

	projects, err := h.portfolioUseCase.AddProject(c.Request.Context(), portfolioUC.AddProjectInput{
		AccountID:    accountID,
		Title:        req.Title,
		Description:  req.Description,
		Technologies: req.Technologies,
		GithubURL:    req.GithubURL,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProjectDTOs(projects))
}

// DeleteProject handles DELETE /api/portfolio/projects/:projectId.
func (h *PortfolioHandler) DeleteProject(c *gin.Context) {
	accountID, ok := GetAccountIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("accountID not found in context"))
		return
	}

	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("projectId must be a valid id", err))
		return
	}

	projects, err := h.portfolioUseCase.DeleteProject(c.Request.Context(), accountID, projectID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProjectDTOs(projects))
}

// UpdateSocialLinks handles PUT /api/portfolio/social-links. The structure is
// replaced wholesale; an omitted link becomes empty.
func (h *PortfolioHandler) UpdateSocialLinks(c *gin.Context) {
	accountID, ok := GetAccountIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("accountID not found in context"))
		return
	}

	var req UpdateSocialLinksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for social links", err))
		return
	}

	links, err := h.portfolioUseCase.UpdateSocialLinks(c.Request.Context(), portfolioUC.UpdateSocialLinksInput{
		AccountID: accountID,
		LinkedIn:  req.LinkedIn,
		GitHub:    req.GitHub,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToSocialLinksDTO(links))
}

// UploadProfilePicture handles POST /api/portfolio/profile-picture.
func (h *PortfolioHandler) UploadProfilePicture(c *gin.Context) {
	accountID, ok := GetAccountIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("accountID not found in context"))
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.Error(apperror.NewInvalidInput("image file is required", err))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInvalidInput("cannot read uploaded file", err))
		return
	}
	defer file.Close()

	p, err := h.portfolioUseCase.UploadProfilePicture(c.Request.Context(), accountID, file)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPortfolioDTO(p))
}

// GetPublic handles GET /api/portfolio/:userId, the unauthenticated public
// view. Registered after every literal sub-path so it cannot shadow them. A
// malformed id is reported as not found, the same as an unknown account.
func (h *PortfolioHandler) GetPublic(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.Error(apperror.NewNotFound("portfolio", c.Param("userId")))
		return
	}

	p, err := h.portfolioUseCase.GetPublic(c.Request.Context(), accountID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPublicPortfolioDTO(p))
}
