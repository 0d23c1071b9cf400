package utils

import (
	"fmt"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session keys used by the support screens.
const (
	SessionKeyReturnsFilter = "returns_filter"
)

func CheckSessionStore(c *gin.Context) error {
	session := sessions.Default(c)
	session.Set("test", "test")
	if err := session.Save(); err != nil {
		return fmt.Errorf("session store check failed: %v", err)
	}
	session.Delete("test")
	return session.Save()
}

// RememberReturnsFilter stores the staff member's last-used status filter so
// the returns screen reopens where they left it.
func RememberReturnsFilter(c *gin.Context, group string) {
	session := sessions.Default(c)
	session.Set(SessionKeyReturnsFilter, group)
	if err := session.Save(); err != nil {
		LogDebug("Failed to save returns filter to session: %v", err)
	}
}

// LastReturnsFilter returns the stored filter, or "" when none was saved.
func LastReturnsFilter(c *gin.Context) string {
	session := sessions.Default(c)
	if v, ok := session.Get(SessionKeyReturnsFilter).(string); ok {
		return v
	}
	return ""
}
