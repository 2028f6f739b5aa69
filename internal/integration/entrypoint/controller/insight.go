// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budgetwise/backend/internal/application/usecase/insight"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
)

// InsightController handles AI insight endpoints.
type InsightController struct {
	generateUseCase *insight.GenerateInsightUseCase
	listUseCase     *insight.ListInsightsUseCase
}

// NewInsightController creates a new insight controller instance.
func NewInsightController(
	generateUseCase *insight.GenerateInsightUseCase,
	listUseCase *insight.ListInsightsUseCase,
) *InsightController {
	return &InsightController{
		generateUseCase: generateUseCase,
		listUseCase:     listUseCase,
	}
}

// Generate handles POST /insights requests.
func (c *InsightController) Generate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.GenerateInsightRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && ctx.Request.ContentLength > 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidPeriod),
		})
		return
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), insight.GenerateInsightInput{
		UserID: userID,
		Period: req.Period,
	})
	if err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	status := http.StatusCreated
	if output.Cached {
		status = http.StatusOK
	}

	ctx.JSON(status, dto.ToInsightResponse(output.Insight, output.Cached))
}

// List handles GET /insights requests.
func (c *InsightController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), insight.ListInsightsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	insights := make([]dto.InsightResponse, len(output.Insights))
	for i, ins := range output.Insights {
		insights[i] = dto.ToInsightResponse(ins, false)
	}

	ctx.JSON(http.StatusOK, dto.InsightListResponse{Insights: insights})
}

// handleInsightError maps insight errors to HTTP responses.
func (c *InsightController) handleInsightError(ctx *gin.Context, err error) {
	var insightErr *domainerror.InsightError
	if errors.As(err, &insightErr) {
		statusCode := http.StatusBadRequest
		switch insightErr.Code {
		case domainerror.ErrCodeInsightsUnavailable:
			statusCode = http.StatusServiceUnavailable
		case domainerror.ErrCodeInsightGeneration:
			statusCode = http.StatusBadGateway
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: insightErr.Message,
			Code:  string(insightErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
