package api

import (
	"errors"
	"time"

	"CryptoNova/internal/domain/models"
	"CryptoNova/internal/usecase"
	xhttp "CryptoNova/pkg/http"
	xlogger "CryptoNova/pkg/logger"

	"github.com/labstack/echo/v4"
)

// signalTypes labels each signal for the status endpoint.
var signalTypes = map[string]string{
	"momentum": "Momentum / Mean Reversion",
	"rules":    "Rule Ensemble",
	"trend":    "Trend Extrapolation",
}

// ForecastEchoHandler exposes the forecasting pipeline over HTTP.
type ForecastEchoHandler struct {
	logger     *xlogger.Logger
	forecaster *usecase.Forecaster
}

func NewForecastEchoHandler(logger *xlogger.Logger, forecaster *usecase.Forecaster) *ForecastEchoHandler {
	return &ForecastEchoHandler{logger: logger, forecaster: forecaster}
}

func (h *ForecastEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/predict", h.Predict)
	g.GET("/price", h.Price)
	g.GET("/health", h.Health)
	g.GET("/models/status", h.ModelsStatus)
}

func (h *ForecastEchoHandler) Predict(c echo.Context) error {
	req := &models.PredictRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	forecast, err := h.forecaster.Forecast(c.Request().Context(), req.Symbol, req.Timeframe)
	if err != nil {
		if errors.Is(err, models.ErrInsufficientHistory) {
			return xhttp.AppErrorResponse(c, xhttp.BadRequestError("insufficient data for prediction").WithError(err))
		}
		h.logger.Error("predict usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}

	return xhttp.SuccessResponse(c, toPredictResponse(forecast))
}

func (h *ForecastEchoHandler) Price(c echo.Context) error {
	symbol := c.QueryParam("symbol")
	if symbol == "" {
		return xhttp.BadRequestResponse(c, []xhttp.ValidationError{{
			Code:    "ERR_REQUIRED",
			Field:   "symbol",
			Message: "symbol is required",
		}})
	}

	price, err := h.forecaster.Spot(c.Request().Context(), symbol)
	if err != nil {
		h.logger.Error("price usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}

	return xhttp.SuccessResponse(c, models.SpotResponse{Symbol: symbol, Price: price})
}

func (h *ForecastEchoHandler) Health(c echo.Context) error {
	sigs := h.forecaster.Signals()
	available := make(map[string]bool, len(sigs))
	for _, s := range sigs {
		available[s.Name()] = true
	}
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"status":    "healthy",
		"signals":   available,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *ForecastEchoHandler) ModelsStatus(c echo.Context) error {
	statuses := make(map[string]models.ModelStatus)
	for _, s := range h.forecaster.Signals() {
		statuses[s.Name()] = models.ModelStatus{
			Name:       s.Name(),
			Type:       signalTypes[s.Name()],
			Confidence: s.Confidence(),
			Available:  true,
		}
	}
	return xhttp.SuccessResponse(c, statuses)
}

func toPredictResponse(f *models.Forecast) models.PredictResponse {
	predictions := make(map[string]*float64, len(f.Predictions))
	confidences := make(map[string]*float64, len(f.Predictions))
	for name, p := range f.Predictions {
		if p == nil {
			predictions[name] = nil
			confidences[name] = nil
			continue
		}
		price, conf := p.Price, p.Confidence
		predictions[name] = &price
		confidences[name] = &conf
	}
	return models.PredictResponse{
		Symbol:            f.Symbol,
		CurrentPrice:      f.CurrentPrice,
		Predictions:       predictions,
		Confidences:       confidences,
		FuturePredictions: f.Future,
		Timestamp:         f.Timestamp.UTC().Format(time.RFC3339),
	}
}
