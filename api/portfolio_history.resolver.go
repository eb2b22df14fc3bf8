package api

import (
	"fmt"
	"net/http"
	"networthdash/internal/domain"
	l3_service "networthdash/internal/service/l3"
	"time"

	"github.com/gin-gonic/gin"
)

type portfolioHistoryRequest struct {
	UserID string `json:"userID"`
	Period string `json:"period"`
}

type historicalDataPointResponse struct {
	Timestamp string  `json:"timestamp"`
	Value     float64 `json:"value"`
}

type chartMetricsResponse struct {
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	PercentChange float64 `json:"percentChange"`
}

type portfolioHistoryResponse struct {
	Period     string                        `json:"period"`
	DataPoints []historicalDataPointResponse `json:"dataPoints"`
	Currency   string                        `json:"currency"`
	Metrics    *chartMetricsResponse         `json:"metrics,omitempty"`
}

func (m ApiHandler) portfolioHistory(c *gin.Context) {
	var requestBody portfolioHistoryRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	// unknown period literals are rejected here; the engine itself never
	// sees them
	period, err := domain.NewPeriod(requestBody.Period)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("could not parse period: %w", err), c, http.StatusBadRequest)
		return
	}

	userID, err := m.resolveUserID(c, requestBody.UserID)
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusUnauthorized)
		return
	}

	ctx := requestContext(c)
	series, err := m.PortfolioHistoryService.GenerateHistory(ctx, userID, *period)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	dataPoints := make([]historicalDataPointResponse, 0, len(series))
	for _, point := range series {
		dataPoints = append(dataPoints, historicalDataPointResponse{
			Timestamp: point.Timestamp.UTC().Format(time.RFC3339),
			Value:     point.Value.InexactFloat64(),
		})
	}

	response := portfolioHistoryResponse{
		Period:     string(*period),
		DataPoints: dataPoints,
		Currency:   "USD",
	}

	if len(series) > 0 {
		metrics, err := l3_service.ComputeChartMetrics(series)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		response.Metrics = &chartMetricsResponse{
			High:          metrics.High.InexactFloat64(),
			Low:           metrics.Low.InexactFloat64(),
			PercentChange: metrics.PercentChange,
		}
	}

	c.JSON(http.StatusOK, response)
}
