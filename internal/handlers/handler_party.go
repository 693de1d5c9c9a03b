package handlers

import (
	"log/slog"
	"net/http"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
	"github.com/bizbooks/bizbooks_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// partyHandler handles HTTP requests for customers and suppliers.
type partyHandler struct {
	partyService portssvc.PartySvcFacade
}

// newPartyHandler creates a new partyHandler.
func newPartyHandler(partyService portssvc.PartySvcFacade) *partyHandler {
	return &partyHandler{partyService: partyService}
}

// registerPartyRoutes wires the party endpoints into the business group.
func registerPartyRoutes(rg *gin.RouterGroup, partyService portssvc.PartySvcFacade) {
	h := newPartyHandler(partyService)
	parties := rg.Group("/parties")
	{
		parties.POST("", h.createParty)
		parties.GET("", h.listParties)
		parties.GET("/:partyID", h.getParty)
	}
}

func (h *partyHandler) createParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createParty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actor := middleware.GetActor(c)
	party, err := h.partyService.CreateParty(c.Request.Context(), businessID, req, actor)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	logger.Info("Party created successfully", slog.String("party_id", party.PartyID))
	c.JSON(http.StatusCreated, dto.ToPartyResponse(party))
}

func (h *partyHandler) listParties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var kind *domain.PartyKind
	if k := c.Query("kind"); k != "" {
		pk := domain.PartyKind(k)
		if pk != domain.Customer && pk != domain.Supplier {
			c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be CUSTOMER or SUPPLIER"})
			return
		}
		kind = &pk
	}

	parties, err := h.partyService.ListParties(c.Request.Context(), businessID, kind)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	out := make([]dto.PartyResponse, len(parties))
	for i := range parties {
		out[i] = dto.ToPartyResponse(&parties[i])
	}
	c.JSON(http.StatusOK, gin.H{"parties": out})
}

func (h *partyHandler) getParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	partyID := c.Param("partyID")

	party, err := h.partyService.GetPartyByID(c.Request.Context(), businessID, partyID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}
