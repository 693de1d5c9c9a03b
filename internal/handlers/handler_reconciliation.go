package handlers

import (
	"log/slog"
	"net/http"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reconciliationHandler handles HTTP requests for consistency checks.
type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationSvcFacade
}

// newReconciliationHandler creates a new reconciliationHandler.
func newReconciliationHandler(reconciliationService portssvc.ReconciliationSvcFacade) *reconciliationHandler {
	return &reconciliationHandler{reconciliationService: reconciliationService}
}

// registerReconciliationRoutes wires the reconciliation endpoint into the
// business group.
func registerReconciliationRoutes(rg *gin.RouterGroup, reconciliationService portssvc.ReconciliationSvcFacade) {
	h := newReconciliationHandler(reconciliationService)
	rg.POST("/reconciliation/run", h.runReconciliation)
}

func (h *reconciliationHandler) runReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	scope := domain.ReconScope(c.DefaultQuery("scope", string(domain.ScopeAll)))
	switch scope {
	case domain.ScopeAll, domain.ScopeStock, domain.ScopeParties, domain.ScopeTrialBalance:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "scope must be one of ALL, STOCK, PARTIES, TRIAL_BALANCE"})
		return
	}

	actor := middleware.GetActor(c)
	report, err := h.reconciliationService.Reconcile(c.Request.Context(), businessID, scope, actor)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	logger.Info("Reconciliation run completed",
		slog.String("scope", string(scope)),
		slog.String("status", string(report.Status)))
	c.JSON(http.StatusOK, report)
}
