package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func rbacRouter(role, required string) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if role != "" {
			c.Set("role", role)
		}
		c.Next()
	})
	router.Use(RequireRole(required))
	router.GET("/resource", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		required string
		want     int
	}{
		{"exact role match", "MANAGER", "MANAGER", http.StatusOK},
		{"admin passes any check", "ADMIN", "MANAGER", http.StatusOK},
		{"insufficient role", "EMPLOYEE", "ADMIN", http.StatusForbidden},
		{"missing role", "", "ADMIN", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := rbacRouter(tt.role, tt.required)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/resource", nil)
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
