package middleware

import (
	"net/http"
	"strings"

	"fundacoes_backoffice/internal/usecase"
	"fundacoes_backoffice/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	teamIDKey   = "field.team_id"
	teamNameKey = "field.team_name"
)

// FieldAuth validates the Bearer token of the field portal and stores the
// authenticated team in the gin context.
func FieldAuth(auth usecase.IFieldAuthUseCase, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			logger.Warn("[field][middleware] missing or malformed token", zap.String("path", c.Request.URL.Path))
			abortUnauthorized(c, "Token de autenticação não fornecido")
			return
		}

		claims, err := auth.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			logger.Warn("[field][middleware] invalid or expired token", zap.String("path", c.Request.URL.Path), zap.Error(err))
			abortUnauthorized(c, "Token inválido ou expirado")
			return
		}

		c.Set(teamIDKey, claims.Subject)
		c.Set(teamNameKey, claims.TeamName)
		c.Next()
	}
}

// TeamID returns the team authenticated by FieldAuth, or "".
func TeamID(c *gin.Context) string {
	return c.GetString(teamIDKey)
}

func TeamName(c *gin.Context) string {
	return c.GetString(teamNameKey)
}

func abortUnauthorized(c *gin.Context, detail string) {
	appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized).WithDetail(detail)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
