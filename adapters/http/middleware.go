package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careercanvas/api/pkg/apperror"
	"github.com/careercanvas/api/pkg/auth"
	"github.com/careercanvas/api/pkg/logger"
)

const (
	GinContextKeyAccountID = "accountID"
)

func AuthMiddleware(jwtSvc *auth.JWTService, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			log.Debug("Token rejected", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(GinContextKeyAccountID, claims.AccountID)

		c.Next()
	}
}

// ErrorMiddleware turns AppError values attached via c.Error into JSON
// responses with the right status. Anything else becomes a generic 500.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}

		var appErr *apperror.AppError
		if errors.As(last.Err, &appErr) {
			status := apperror.ToHTTPStatus(appErr)
			if status >= http.StatusInternalServerError {
				log.Error("Request failed", appErr, zap.String("path", c.Request.URL.Path))
			} else {
				log.Warn("Request rejected", zap.String("path", c.Request.URL.Path), zap.String("details", appErr.Details))
			}
			c.JSON(status, appErr.ToJSON())
			return
		}

		log.Error("Unhandled error", last.Err, zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func GetAccountIDFromGinContext(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(GinContextKeyAccountID)
	if !ok {
		return uuid.Nil, false
	}
	accountID, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return accountID, true
}
