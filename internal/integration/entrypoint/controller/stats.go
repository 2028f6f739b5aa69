// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/budgetwise/backend/internal/application/usecase/stats"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
)

// defaultSeriesMonths is the lookback used when the query omits months.
const defaultSeriesMonths = 6

// StatsController handles aggregate statistics endpoints.
type StatsController struct {
	transactionStatsUseCase *stats.GetTransactionStatsUseCase
	budgetStatsUseCase      *stats.GetBudgetStatsUseCase
	goalStatsUseCase        *stats.GetGoalStatsUseCase
	monthlySeriesUseCase    *stats.GetMonthlySeriesUseCase
}

// NewStatsController creates a new stats controller instance.
func NewStatsController(
	transactionStatsUseCase *stats.GetTransactionStatsUseCase,
	budgetStatsUseCase *stats.GetBudgetStatsUseCase,
	goalStatsUseCase *stats.GetGoalStatsUseCase,
	monthlySeriesUseCase *stats.GetMonthlySeriesUseCase,
) *StatsController {
	return &StatsController{
		transactionStatsUseCase: transactionStatsUseCase,
		budgetStatsUseCase:      budgetStatsUseCase,
		goalStatsUseCase:        goalStatsUseCase,
		monthlySeriesUseCase:    monthlySeriesUseCase,
	}
}

// TransactionStats handles GET /stats/transactions requests.
func (c *StatsController) TransactionStats(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := stats.GetTransactionStatsInput{UserID: userID}

	if startStr := ctx.Query("start_date"); startStr != "" {
		start, err := time.Parse(dateLayout, startStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return
		}
		input.StartDate = &start
	}

	if endStr := ctx.Query("end_date"); endStr != "" {
		end, err := time.Parse(dateLayout, endStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end_date, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return
		}
		end = end.Add(24*time.Hour - time.Nanosecond)
		input.EndDate = &end
	}

	output, err := c.transactionStatsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleStatsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionStatsResponse(output.Summary))
}

// BudgetStats handles GET /stats/budgets requests.
func (c *StatsController) BudgetStats(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.budgetStatsUseCase.Execute(ctx.Request.Context(), stats.GetBudgetStatsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleStatsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetStatsResponse(output))
}

// GoalStats handles GET /stats/goals requests.
func (c *StatsController) GoalStats(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.goalStatsUseCase.Execute(ctx.Request.Context(), stats.GetGoalStatsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleStatsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalStatsResponse(output))
}

// MonthlySeries handles GET /stats/monthly requests.
func (c *StatsController) MonthlySeries(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	months := defaultSeriesMonths
	if monthsStr := ctx.Query("months"); monthsStr != "" {
		parsed, err := strconv.Atoi(monthsStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid months value",
				Code:  string(domainerror.ErrCodeInvalidLookback),
			})
			return
		}
		months = parsed
	}

	output, err := c.monthlySeriesUseCase.Execute(ctx.Request.Context(), stats.GetMonthlySeriesInput{
		UserID: userID,
		Months: months,
	})
	if err != nil {
		c.handleStatsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlySeriesResponse(output))
}

// handleStatsError maps stats errors to HTTP responses.
func (c *StatsController) handleStatsError(ctx *gin.Context, err error) {
	var statsErr *domainerror.StatsError
	if errors.As(err, &statsErr) {
		statusCode := http.StatusBadRequest
		if statsErr.Code == domainerror.ErrCodeStatsInternalError {
			statusCode = http.StatusInternalServerError
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: statsErr.Message,
			Code:  string(statsErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
