// Package handlers implements the HTTP handlers of the approval engine API.
//
// Route registration lives in internal/app; handlers do NOT register their
// own routes.
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"expensedesk.io/approvalflow/ent"
	"expensedesk.io/approvalflow/internal/api/middleware"
	"expensedesk.io/approvalflow/internal/governance/approval"
	"expensedesk.io/approvalflow/internal/governance/audit"
	"expensedesk.io/approvalflow/internal/service"
)

// Server implements all API handlers.
type Server struct {
	client      *ent.Client
	pool        *pgxpool.Pool
	jwtCfg      middleware.JWTConfig
	audit       *audit.Logger
	ruleService *service.RuleService
	gateway     *approval.Gateway
}

// ServerDeps holds all dependencies for creating a Server.
// Manual DI, no Wire/Dig.
type ServerDeps struct {
	EntClient   *ent.Client
	Pool        *pgxpool.Pool
	JWTCfg      middleware.JWTConfig
	Audit       *audit.Logger
	RuleService *service.RuleService
	Gateway     *approval.Gateway
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:      deps.EntClient,
		pool:        deps.Pool,
		jwtCfg:      deps.JWTCfg,
		audit:       deps.Audit,
		ruleService: deps.RuleService,
		gateway:     deps.Gateway,
	}
}

// actorFromCtx extracts the authenticated user ID from the gin context.
func actorFromCtx(c *gin.Context) string {
	if uid := c.GetString("user_id"); uid != "" {
		return uid
	}
	return "anonymous"
}

// companyFromCtx extracts the tenant company ID from the gin context. Empty
// only when JWTAuth did not run, which route registration prevents.
func companyFromCtx(c *gin.Context) string {
	return c.GetString("company_id")
}
