package handlers

import (
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/pkg/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// entity route registrations. Everything is scoped under a business.
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1")
	business := v1.Group("/businesses/:businessID")

	registerAccountRoutes(business, services.AccountSvc)
	registerPartyRoutes(business, services.PartySvc)
	registerItemRoutes(business, services.ItemSvc)
	registerPostingRoutes(business, services.PostingSvc)
	registerReversalRoutes(business, services.ReversalSvc)
	registerReconciliationRoutes(business, services.ReconciliationSvc)
	registerReportingRoutes(business, services.ReportingSvc)
}
