package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendview/backend/internal/application/usecase/chart"
	"github.com/spendview/backend/internal/domain/entity"
	domainerror "github.com/spendview/backend/internal/domain/error"
	"github.com/spendview/backend/internal/integration/entrypoint/dto"
)

// ChartController handles chart endpoints.
type ChartController struct {
	getChartUseCase *chart.GetChartUseCase
}

// NewChartController creates a new chart controller instance.
func NewChartController(getChartUseCase *chart.GetChartUseCase) *ChartController {
	return &ChartController{
		getChartUseCase: getChartUseCase,
	}
}

// GetChart handles GET /entries/chart requests.
func (c *ChartController) GetChart(ctx *gin.Context) {
	userID, groupID, ok := identityFromContext(ctx)
	if !ok {
		return
	}

	viewType := entity.ViewType(ctx.DefaultQuery("view", string(entity.ViewTypeWeek)))

	offset, err := parseOffsetParam(ctx)
	if err != nil {
		return
	}

	scheme := entity.BucketScheme(ctx.Query("scheme"))
	if scheme != "" && !scheme.IsValid() {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "scheme must be: weekday, day_of_month, hour_of_day, or week_of_month",
			Code:  string(domainerror.ErrCodeInvalidViewType),
		})
		return
	}

	showIncome, err := dto.ParseBoolParam(ctx.Query("show_income"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "show_income must be a boolean",
			Code:  string(domainerror.ErrCodeInvalidTypeFilter),
		})
		return
	}

	personalView, err := dto.ParseBoolParam(ctx.Query("personal_view"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "personal_view must be a boolean",
			Code:  string(domainerror.ErrCodeInvalidPersonalView),
		})
		return
	}

	input := chart.GetChartInput{
		GroupID:      groupID,
		UserID:       userID,
		PersonalView: personalView != nil && *personalView,
		ViewType:     viewType,
		Offset:       offset,
		Scheme:       scheme,
		Category:     ctx.Query("category"),
		ShowIncome:   showIncome,
	}

	output, err := c.getChartUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChartResponse(output))
}
