package app

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"expensedesk.io/approvalflow/internal/api/handlers"
	"expensedesk.io/approvalflow/internal/api/middleware"
	"expensedesk.io/approvalflow/internal/config"
)

// Public routes that do NOT require JWT authentication.
var publicPrefixes = []string{
	"/api/v1/auth/login",
	"/api/v1/health/",
}

// adminPrefixes are routes that require the ADMIN role.
var adminPrefixes = []string{
	"/api/v1/admin/",
}

func newRouter(cfg *config.Config, server *handlers.Server, signingKey []byte) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	router.Use(cors.New(buildCORSConfig(cfg)))
	router.Use(jwtSkipPublic(signingKey))
	router.Use(rbacAdminRoutes())

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", server.Login)
	v1.GET("/auth/me", server.GetCurrentUser)

	v1.GET("/health/live", server.GetLiveness)
	v1.GET("/health/ready", server.GetReadiness)

	v1.POST("/expenses", server.CreateExpense)
	v1.GET("/expenses", server.ListExpenses)
	v1.GET("/expenses/:expense_id", server.GetExpense)
	v1.PUT("/expenses/:expense_id", server.UpdateExpense)
	v1.DELETE("/expenses/:expense_id", server.DeleteExpense)
	v1.PUT("/expenses/:expense_id/submit", server.SubmitExpense)
	v1.GET("/expenses/:expense_id/approvals", server.ListExpenseApprovals)
	v1.GET("/expenses/:expense_id/chain", server.GetExpenseChain)

	v1.GET("/approvals/pending", server.ListPendingApprovals)
	v1.PUT("/approvals/:approval_id", server.DecideApproval)

	v1.GET("/notifications", server.ListNotifications)
	v1.GET("/notifications/unread-count", server.GetUnreadCount)
	v1.POST("/notifications/:notification_id/read", server.MarkNotificationRead)
	v1.POST("/notifications/read-all", server.MarkAllNotificationsRead)

	v1.GET("/admin/rules", server.ListRules)
	v1.POST("/admin/rules", server.CreateRule)
	v1.GET("/admin/rules/:rule_id", server.GetRule)
	v1.PUT("/admin/rules/:rule_id", server.UpdateRule)
	v1.DELETE("/admin/rules/:rule_id", server.DeleteRule)

	return router
}

// buildCORSConfig maps server config onto gin-contrib/cors. A wildcard origin
// switches to allow-all and drops credentials, since browsers reject the
// combination.
func buildCORSConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", middleware.RequestIDHeader)
	corsCfg.ExposeHeaders = append(corsCfg.ExposeHeaders, middleware.RequestIDHeader)

	origins := make([]string, 0, len(cfg.Server.CORSOrigins))
	allowAll := false
	for _, origin := range cfg.Server.CORSOrigins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		origins = append(origins, origin)
	}

	if allowAll && len(origins) == 0 {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
		return corsCfg
	}

	corsCfg.AllowOrigins = origins
	corsCfg.AllowCredentials = true
	return corsCfg
}

// jwtSkipPublic returns middleware that applies JWT auth only on non-public routes.
func jwtSkipPublic(signingKey []byte) gin.HandlerFunc {
	jwtMw := middleware.JWTAuth(signingKey)
	return func(c *gin.Context) {
		for _, prefix := range publicPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				c.Next()
				return
			}
		}
		jwtMw(c)
	}
}

// rbacAdminRoutes returns middleware enforcing the ADMIN role on admin endpoints.
func rbacAdminRoutes() gin.HandlerFunc {
	adminMw := middleware.RequireRole(middleware.RoleAdmin)
	return func(c *gin.Context) {
		for _, prefix := range adminPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				adminMw(c)
				return
			}
		}
		c.Next()
	}
}
