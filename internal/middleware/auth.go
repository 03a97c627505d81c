package middleware

import (
	"fmt"
	"strings"

	"creatorpay-be-svc/internal/models"
	"creatorpay-be-svc/internal/repository"
	"creatorpay-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Context keys set by the auth middleware
const (
	ContextUserID    = "user_id"
	ContextUserRole  = "user_role"
	ContextCompanyID = "company_id"
)

// Auth validates the bearer token, resolves the caller's profile and stores
// identity, role and company in the request context
func Auth(jwtSecret string, profileRepo repository.ProfileRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.UnauthorizedResponse(c, "Authorization header is required")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			utils.UnauthorizedResponse(c, "Authorization header must be a bearer token")
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			utils.UnauthorizedResponse(c, "Invalid or expired token")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.UnauthorizedResponse(c, "Invalid token claims")
			c.Abort()
			return
		}

		subject, err := claims.GetSubject()
		if err != nil || subject == "" {
			utils.UnauthorizedResponse(c, "Token subject is missing")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(subject)
		if err != nil {
			utils.UnauthorizedResponse(c, "Token subject is not a valid user ID")
			c.Abort()
			return
		}

		profile, err := profileRepo.GetProfileByID(userID)
		if err != nil {
			utils.UnauthorizedResponse(c, "User profile not found")
			c.Abort()
			return
		}

		c.Set(ContextUserID, profile.ID)
		c.Set(ContextUserRole, profile.Role)
		if profile.CompanyID != nil {
			c.Set(ContextCompanyID, *profile.CompanyID)
		}

		c.Next()
	}
}

// RequireCompanyAdmin allows only callers with the company admin role
func RequireCompanyAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		if role != models.RoleCompanyAdmin {
			utils.ForbiddenResponse(c, "Company admin role required")
			c.Abort()
			return
		}
		c.Next()
	}
}
