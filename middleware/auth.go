package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/liennt-dev/GlowCart/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// Context keys set by the auth middleware. The raw token is kept so handlers
// can pass it through to the commerce backend, which owns the user records.
const (
	ContextKeyUserID   = "userID"
	ContextKeyUserRole = "userRole"
	ContextKeyToken    = "token"
)

// RoleStaff marks customer-support accounts in the token claims.
const RoleStaff = "staff"

func parseBearerToken(c *gin.Context) (jwt.MapClaims, string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, "", fmt.Errorf("missing Authorization header")
	}

	tokenString := strings.Replace(authHeader, "Bearer ", "", 1)
	if tokenString == authHeader {
		return nil, "", fmt.Errorf("invalid Bearer token format")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, "", fmt.Errorf("JWT secret not configured")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, "", err
	}
	if !token.Valid {
		return nil, "", fmt.Errorf("token validation failed")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, "", fmt.Errorf("invalid token claims")
	}

	return claims, tokenString, nil
}

// AuthMiddleware validates the bearer token issued by the commerce backend and
// exposes the caller's identity plus the raw token for upstream calls. No
// local user lookup happens here; the backend is the source of truth.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.LogInfo("AuthMiddleware called")

		claims, tokenString, err := parseBearerToken(c)
		if err != nil {
			utils.LogError("Authentication failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
			c.Abort()
			return
		}

		userID, ok := claims["user_id"].(float64)
		if !ok {
			utils.LogError("User ID not found in token claims")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		role, _ := claims["role"].(string)

		c.Set(ContextKeyUserID, int64(userID))
		c.Set(ContextKeyUserRole, role)
		c.Set(ContextKeyToken, tokenString)
		utils.LogInfo("User %d authenticated successfully", int64(userID))
		c.Next()
	}
}

// StaffMiddleware gates the customer-support screens. It expects
// AuthMiddleware to have run first.
func StaffMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.LogInfo("StaffMiddleware called")

		role, exists := c.Get(ContextKeyUserRole)
		if !exists {
			utils.LogError("Role not found in context")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
			c.Abort()
			return
		}

		if role != RoleStaff {
			userID, _ := c.Get(ContextKeyUserID)
			utils.LogError("Non-staff user attempted support access: %v", userID)
			c.JSON(http.StatusForbidden, gin.H{"error": utils.ErrStaffOnly})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequestToken returns the raw bearer token stored by AuthMiddleware.
func RequestToken(c *gin.Context) string {
	token, _ := c.Get(ContextKeyToken)
	if s, ok := token.(string); ok {
		return s
	}
	return ""
}
