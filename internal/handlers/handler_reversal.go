package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
	"github.com/bizbooks/bizbooks_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reversalHandler handles HTTP requests for reversing transactions.
type reversalHandler struct {
	reversalService portssvc.ReversalSvcFacade
}

// newReversalHandler creates a new reversalHandler.
func newReversalHandler(reversalService portssvc.ReversalSvcFacade) *reversalHandler {
	return &reversalHandler{reversalService: reversalService}
}

// registerReversalRoutes wires the reversal endpoints into the business group.
func registerReversalRoutes(rg *gin.RouterGroup, reversalService portssvc.ReversalSvcFacade) {
	h := newReversalHandler(reversalService)
	txns := rg.Group("/transactions")
	{
		txns.POST("/:transactionID/reverse", h.reverseTransaction)
		txns.GET("/:transactionID/reversal", h.getReversalVoucher)
	}
}

func (h *reversalHandler) reverseTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	transactionID := c.Param("transactionID")

	var req dto.ReverseTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for reverseTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: reason is required"})
		return
	}

	actor := middleware.GetActor(c)
	voucher, err := h.reversalService.Reverse(c.Request.Context(), businessID, transactionID, req.Reason, actor)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	logger.Info("Transaction reversed successfully",
		slog.String("transaction_id", transactionID),
		slog.String("reversal_transaction_id", voucher.ReversalTransactionID))
	c.JSON(http.StatusCreated, dto.ToReversalVoucherResponse(voucher))
}

func (h *reversalHandler) getReversalVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	transactionID := c.Param("transactionID")

	voucher, err := h.reversalService.GetVoucher(c.Request.Context(), businessID, transactionID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReversalVoucherResponse(voucher))
}
