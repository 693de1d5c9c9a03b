package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
	"github.com/bizbooks/bizbooks_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests for the chart of accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(accountService portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountService: accountService}
}

// registerAccountRoutes wires the account endpoints into the business group.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)
	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountID", h.getAccount)
		accounts.DELETE("/:accountID", h.deactivateAccount)
	}
}

func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actor := middleware.GetActor(c)
	account, err := h.accountService.CreateAccount(c.Request.Context(), businessID, req, actor)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	logger.Info("Account created successfully", slog.String("account_id", account.AccountID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), businessID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accounts": dto.ToAccountResponses(accounts)})
}

func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	accountID := c.Param("accountID")

	account, err := h.accountService.GetAccountByID(c.Request.Context(), businessID, accountID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *accountHandler) deactivateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	accountID := c.Param("accountID")

	actor := middleware.GetActor(c)
	if err := h.accountService.DeactivateAccount(c.Request.Context(), businessID, accountID, actor); err != nil {
		respondServiceError(c, logger, err)
		return
	}

	logger.Info("Account deactivated successfully", slog.String("account_id", accountID))
	c.Status(http.StatusNoContent)
}
