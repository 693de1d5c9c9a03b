package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
	"github.com/bizbooks/bizbooks_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// itemHandler handles HTTP requests for the item catalog.
type itemHandler struct {
	itemService portssvc.ItemSvcFacade
}

// newItemHandler creates a new itemHandler.
func newItemHandler(itemService portssvc.ItemSvcFacade) *itemHandler {
	return &itemHandler{itemService: itemService}
}

// registerItemRoutes wires the item endpoints into the business group.
func registerItemRoutes(rg *gin.RouterGroup, itemService portssvc.ItemSvcFacade) {
	h := newItemHandler(itemService)
	items := rg.Group("/items")
	{
		items.POST("", h.createItem)
		items.GET("", h.listItems)
		items.GET("/:itemID", h.getItem)
	}
}

func (h *itemHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actor := middleware.GetActor(c)
	item, err := h.itemService.CreateItem(c.Request.Context(), businessID, req, actor)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	logger.Info("Item created successfully", slog.String("item_id", item.ItemID))
	c.JSON(http.StatusCreated, dto.ToItemResponse(item))
}

func (h *itemHandler) listItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	items, err := h.itemService.ListItems(c.Request.Context(), businessID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	out := make([]dto.ItemResponse, len(items))
	for i := range items {
		out[i] = dto.ToItemResponse(&items[i])
	}
	c.JSON(http.StatusOK, gin.H{"items": out})
}

func (h *itemHandler) getItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	itemID := c.Param("itemID")

	item, err := h.itemService.GetItemByID(c.Request.Context(), businessID, itemID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}
