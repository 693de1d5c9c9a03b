package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
	"github.com/bizbooks/bizbooks_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// postingHandler handles HTTP requests for posting and reading transactions.
type postingHandler struct {
	postingService portssvc.PostingSvcFacade
}

// newPostingHandler creates a new postingHandler.
func newPostingHandler(postingService portssvc.PostingSvcFacade) *postingHandler {
	return &postingHandler{postingService: postingService}
}

// registerPostingRoutes wires the transaction endpoints into the business group.
func registerPostingRoutes(rg *gin.RouterGroup, postingService portssvc.PostingSvcFacade) {
	h := newPostingHandler(postingService)
	txns := rg.Group("/transactions")
	{
		txns.POST("", h.postTransaction)
		txns.GET("", h.listTransactions)
		txns.GET("/:transactionID", h.getTransaction)
	}
	rg.GET("/accounts/:accountID/entries", h.listAccountEntries)
}

func (h *postingHandler) postTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.PostTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for postTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actor := middleware.GetActor(c)
	posted, err := h.postingService.Post(c.Request.Context(), businessID, req, actor)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	logger.Info("Transaction posted successfully",
		slog.String("transaction_id", posted.Transaction.TransactionID),
		slog.String("type", string(posted.Transaction.Type)))
	c.JSON(http.StatusCreated, dto.ToPostedTransactionResponse(posted))
}

func (h *postingHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	transactionID := c.Param("transactionID")

	posted, err := h.postingService.GetTransaction(c.Request.Context(), businessID, transactionID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostedTransactionResponse(posted))
}

func (h *postingHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Error("Failed to bind query for listTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.postingService.ListTransactions(c.Request.Context(), businessID, params)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *postingHandler) listAccountEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	accountID := c.Param("accountID")

	var params dto.ListAccountEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Error("Failed to bind query for listAccountEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.postingService.ListAccountEntries(c.Request.Context(), businessID, accountID, params)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
