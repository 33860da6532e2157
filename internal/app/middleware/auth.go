package middleware

import (
	"context"

	"garage-backend/internal/app/config"
	"garage-backend/internal/app/ds"
	"garage-backend/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// TokenBlacklist - список отозванных JWT (Redis в бою, заглушка в тестах)
type TokenBlacklist interface {
	CheckJWTInBlacklist(ctx context.Context, jwtStr string) error
}

type AuthMiddleware struct {
	Blacklist TokenBlacklist
	Config    *config.Config
}

func NewAuthMiddleware(blacklist TokenBlacklist, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		Blacklist: blacklist,
		Config:    cfg,
	}
}

// WithPolicyCheck - единый middleware авторизации: находит правило
// в таблице Policies и проверяет JWT и роль пользователя
func (am *AuthMiddleware) WithPolicyCheck() gin.HandlerFunc {
	return gin.HandlerFunc(func(gCtx *gin.Context) {
		policy := PolicyFor(gCtx.Request.URL.Path)
		if policy.Public {
			gCtx.Next()
			return
		}

		jwtStr := gCtx.GetHeader("Authorization")
		if jwtStr == "" {
			gCtx.AbortWithStatus(401) // Unauthorized
			return
		}

		if len(jwtStr) > 7 && jwtStr[:7] == "Bearer " {
			jwtStr = jwtStr[7:]
		}

		// Токен в blacklist - значит пользователь вышел из системы
		err := am.Blacklist.CheckJWTInBlacklist(gCtx.Request.Context(), jwtStr)
		if err == nil {
			gCtx.AbortWithStatus(401)
			return
		}

		token, err := am.parseJWTToken(jwtStr)
		if err != nil {
			gCtx.AbortWithStatus(401)
			return
		}

		claims, ok := token.Claims.(*ds.JWTClaims)
		if !ok || !token.Valid {
			gCtx.AbortWithStatus(401)
			return
		}

		// Роль вне справочника не даёт доступа никуда
		if !claims.Role.Valid() {
			gCtx.AbortWithStatus(403)
			return
		}

		if len(policy.Roles) > 0 && !hasRequiredRole(claims.Role, policy.Roles) {
			gCtx.AbortWithStatus(403) // Forbidden
			return
		}

		gCtx.Set("userID", claims.UserID)
		gCtx.Set("userRole", claims.Role)

		gCtx.Next()
	})
}

// parseJWTToken парсит и валидирует JWT токен
func (am *AuthMiddleware) parseJWTToken(tokenString string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(am.Config.JWT.Token), nil
	})
}

func hasRequiredRole(userRole role.Role, requiredRoles []role.Role) bool {
	for _, requiredRole := range requiredRoles {
		if userRole == requiredRole {
			return true
		}
	}
	return false
}
