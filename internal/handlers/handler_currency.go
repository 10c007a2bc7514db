package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sokonihub/sokoni_gateway/internal/apperrors"
	"github.com/sokonihub/sokoni_gateway/internal/core/domain"
	portssvc "github.com/sokonihub/sokoni_gateway/internal/core/ports/services"
	"github.com/sokonihub/sokoni_gateway/internal/dto"
	"github.com/sokonihub/sokoni_gateway/internal/middleware"
)

// currencyHandler handles HTTP requests related to currencies and rates.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// RegisterCurrencyRoutes registers routes related to currencies and rates.
func RegisterCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
	}

	rates := rg.Group("/rates")
	{
		rates.GET("", h.getRateSnapshot)
		rates.POST("/refresh", h.refreshRates)
		rates.GET("/convert", h.convert)
	}

	prefs := rg.Group("/preferences")
	{
		prefs.GET("/currency", h.getCurrencyPreference)
		prefs.PUT("/currency", h.setCurrencyPreference)
	}
}

// listCurrencies godoc
// @Summary List supported currencies
// @Description Returns the static table of currencies the storefront can display
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(h.currencyService.ListCurrencies()))
}

// getCurrencyByCode godoc
// @Summary Get currency by code
// @Description Retrieves details for a specific currency by its code
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency code (e.g., USD)"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} map[string]string "Currency not found"
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	code := c.Param("code")
	curr, err := h.currencyService.GetCurrencyByCode(code)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnsupportedCurrency) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to get currency", slog.String("code", code), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve currency"})
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(curr))
}

// getRateSnapshot godoc
// @Summary Get the current rate snapshot
// @Description Returns the exchange rates conversions are currently served from, with staleness info
// @Tags rates
// @Produce  json
// @Success 200 {object} dto.RateSnapshotResponse
// @Router /rates [get]
func (h *currencyHandler) getRateSnapshot(c *gin.Context) {
	snap := h.currencyService.Snapshot()
	resp := dto.RateSnapshotResponse{
		BaseCode:  snap.BaseCode,
		Rates:     snap.Rates,
		FetchedAt: snap.FetchedAt,
		Stale:     h.currencyService.IsSnapshotStale(),
	}
	if err := h.currencyService.LastRefreshError(); err != nil {
		resp.LastError = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}

// refreshRates godoc
// @Summary Force a rate refresh
// @Description Fetches fresh exchange rates from the backend; the previous snapshot is kept on failure
// @Tags rates
// @Produce  json
// @Success 200 {object} dto.RateSnapshotResponse
// @Router /rates/refresh [post]
func (h *currencyHandler) refreshRates(c *gin.Context) {
	h.currencyService.RefreshRates(c.Request.Context())
	h.getRateSnapshot(c)
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Converts amount from one supported currency to another using the cached snapshot
// @Tags rates
// @Produce  json
// @Param   amount query number true "Amount to convert"
// @Param   from query string true "Source currency code"
// @Param   to query string true "Target currency code"
// @Param   compact query bool false "Compact formatting (4.5K, 2.6M)"
// @Param   showCode query bool false "Append the currency code to the formatted value"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid or missing parameters"
// @Router /rates/convert [get]
func (h *currencyHandler) convert(c *gin.Context) {
	amountStr := c.Query("amount")
	from := strings.ToUpper(c.Query("from"))
	to := strings.ToUpper(c.Query("to"))
	if amountStr == "" || from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount, from and to are required"})
		return
	}
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a number"})
		return
	}

	converted, err := h.currencyService.Convert(amount, from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnsupportedCurrency) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Conversion failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Conversion failed"})
		return
	}

	rate, err := h.currencyService.GetExchangeRate(from, to)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts := domain.FormatOptions{
		Compact:  c.Query("compact") == "true",
		ShowCode: c.Query("showCode") == "true",
	}
	formatted, err := h.currencyService.Format(converted, to, opts)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ConvertResponse{
		Amount:    amount,
		From:      from,
		To:        to,
		Converted: converted,
		Rate:      rate,
		Formatted: formatted,
	})
}

// getCurrencyPreference godoc
// @Summary Get the display currency preference
// @Tags preferences
// @Produce  json
// @Success 200 {object} dto.CurrencyPreferenceResponse
// @Router /preferences/currency [get]
func (h *currencyHandler) getCurrencyPreference(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CurrencyPreferenceResponse{
		CurrencyCode: h.currencyService.SelectedCurrency(),
	})
}

// setCurrencyPreference godoc
// @Summary Set the display currency preference
// @Description Persists the selected display currency; an unsupported code leaves the previous selection unchanged
// @Tags preferences
// @Accept  json
// @Produce  json
// @Param   preference body dto.SetCurrencyPreferenceRequest true "Preferred currency"
// @Success 200 {object} dto.CurrencyPreferenceResponse
// @Failure 400 {object} map[string]string "Invalid or unsupported currency code"
// @Router /preferences/currency [put]
func (h *currencyHandler) setCurrencyPreference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetCurrencyPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetCurrencyPreference", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.currencyService.SetSelectedCurrency(req.CurrencyCode); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.CurrencyPreferenceResponse{
		CurrencyCode: h.currencyService.SelectedCurrency(),
	})
}
