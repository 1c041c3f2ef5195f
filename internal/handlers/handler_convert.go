package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fxease/currency_exchange_app/internal/apperrors"
	portssvc "github.com/fxease/currency_exchange_app/internal/core/ports/services"
	"github.com/fxease/currency_exchange_app/internal/dto"
	"github.com/fxease/currency_exchange_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// convertHandler handles HTTP requests for currency conversion.
type convertHandler struct {
	conversionService portssvc.ConversionSvcFacade
}

// newConvertHandler creates a new convertHandler.
func newConvertHandler(cs portssvc.ConversionSvcFacade) *convertHandler {
	return &convertHandler{
		conversionService: cs,
	}
}

// RegisterConvertRoutes registers the conversion route.
func RegisterConvertRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvcFacade) {
	h := newConvertHandler(conversionService)

	rg.GET("/convert/:amount/:source/:target", h.convert)
}

// convert godoc
// @Summary Convert an amount between two currencies
// @Description Converts amount from source to target currency using the latest stored rates. The amount accepts '.' or ',' as decimal separator.
// @Tags conversion
// @Produce json
// @Param amount path string true "Amount to convert"
// @Param source path string true "Source currency code (3 letters)" MinLength(3) MaxLength(3)
// @Param target path string true "Target currency code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid amount or currency code"
// @Failure 500 {object} dto.ErrorResponse "Stored rate data is inconsistent"
// @Router /convert/{amount}/{source}/{target} [get]
func (h *convertHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ConvertPathParams
	if err := c.ShouldBindUri(&params); err != nil {
		logger.Warn("Failed to bind convert path params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:       true,
			Status:      http.StatusBadRequest,
			Message:     "invalid_currency",
			Description: "Invalid currency code - please try again",
		})
		return
	}

	logger = logger.With(
		slog.String("source", params.Source),
		slog.String("target", params.Target),
	)

	conversion, err := h.conversionService.Convert(c.Request.Context(), params.Amount, params.Source, params.Target)
	if err != nil {
		h.renderConvertError(c, logger, err)
		return
	}

	logger.Info("Conversion succeeded", slog.Int64("timestamp", conversion.Timestamp))
	c.JSON(http.StatusOK, dto.ToConvertResponse(conversion, c.Request.URL.Path))
}

// renderConvertError maps the conversion error taxonomy onto the fixed
// HTTP error shape. Client mistakes are 400s with a stable message tag;
// stored-data corruption is a 500 so clients can tell the two apart.
func (h *convertHandler) renderConvertError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidAmount):
		logger.Warn("Invalid conversion amount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:       true,
			Status:      http.StatusBadRequest,
			Message:     "invalid_amount",
			Description: "Invalid currency amount - please try again",
		})
	case errors.Is(err, apperrors.ErrInvalidCurrency):
		logger.Warn("Invalid currency code", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:       true,
			Status:      http.StatusBadRequest,
			Message:     "invalid_currency",
			Description: "Invalid currency code - please try again",
		})
	case errors.Is(err, apperrors.ErrDataInconsistency):
		logger.Error("Stored rate data is inconsistent", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:       true,
			Status:      http.StatusInternalServerError,
			Message:     "server data corruption",
			Description: "Invalid server data - please try again later",
		})
	default:
		logger.Error("Conversion failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:       true,
			Status:      http.StatusInternalServerError,
			Message:     "internal_error",
			Description: "Unexpected server error - please try again later",
		})
	}
}
