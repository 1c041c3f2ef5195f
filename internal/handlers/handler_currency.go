package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fxease/currency_exchange_app/internal/core/ports/services"
	"github.com/fxease/currency_exchange_app/internal/dto"
	"github.com/fxease/currency_exchange_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to the currency catalog.
type currencyHandler struct {
	currencyService portssvc.CurrencyReaderSvc
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencyReaderSvc) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// RegisterCurrencyRoutes registers routes related to the currency catalog.
func RegisterCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencyReaderSvc) {
	h := newCurrencyHandler(currencyService)

	rg.GET("/currencies", h.listCurrencies)
}

// listCurrencies godoc
// @Summary List all currencies
// @Description Retrieves the full currency catalog with display metadata
// @Tags currencies
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 500 {object} map[string]string "Failed to list currencies"
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currencies from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list currencies"})
		return
	}

	logger.Info("Currencies listed successfully", slog.Int("count", len(currencies)))
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}
