// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/spendview/backend/internal/application/usecase/entries"
	"github.com/spendview/backend/internal/application/usecase/filter"
	"github.com/spendview/backend/internal/application/usecase/window"
	"github.com/spendview/backend/internal/domain/entity"
	domainerror "github.com/spendview/backend/internal/domain/error"
	"github.com/spendview/backend/internal/integration/entrypoint/dto"
	"github.com/spendview/backend/internal/integration/entrypoint/middleware"
)

// EntriesController handles entry listing, search, range and sync endpoints.
type EntriesController struct {
	listEntriesUseCase   *entries.ListEntriesUseCase
	searchEntriesUseCase *entries.SearchEntriesUseCase
	syncEntriesUseCase   *entries.SyncEntriesUseCase
	getRangeUseCase      *window.GetRangeUseCase
}

// NewEntriesController creates a new entries controller instance.
func NewEntriesController(
	listEntriesUseCase *entries.ListEntriesUseCase,
	searchEntriesUseCase *entries.SearchEntriesUseCase,
	syncEntriesUseCase *entries.SyncEntriesUseCase,
	getRangeUseCase *window.GetRangeUseCase,
) *EntriesController {
	return &EntriesController{
		listEntriesUseCase:   listEntriesUseCase,
		searchEntriesUseCase: searchEntriesUseCase,
		syncEntriesUseCase:   syncEntriesUseCase,
		getRangeUseCase:      getRangeUseCase,
	}
}

// List handles GET /entries requests.
func (c *EntriesController) List(ctx *gin.Context) {
	userID, groupID, ok := identityFromContext(ctx)
	if !ok {
		return
	}

	viewType := entity.ViewType(ctx.DefaultQuery("view", string(entity.ViewTypeWeek)))

	offset, err := parseOffsetParam(ctx)
	if err != nil {
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

	input := entries.ListEntriesInput{
		GroupID:        groupID,
		UserID:         userID,
		PersonalView:   personalView != nil && *personalView,
		ViewType:       viewType,
		Offset:         offset,
		SelectedBucket: ctx.Query("bucket"),
		Category:       ctx.Query("category"),
		ShowIncome:     showIncome,
	}

	output, err := c.listEntriesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToListEntriesResponse(output))
}

// Search handles GET /entries/search requests.
func (c *EntriesController) Search(ctx *gin.Context) {
	userID, groupID, ok := identityFromContext(ctx)
	if !ok {
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

	input := entries.SearchEntriesInput{
		GroupID:      groupID,
		UserID:       userID,
		PersonalView: personalView != nil && *personalView,
		Query:        ctx.Query("q"),
		Category:     ctx.Query("category"),
		ShowIncome:   showIncome,
		AmountBand:   filter.AmountBand(ctx.Query("amount_band")),
		NamedRange:   filter.NamedRange(ctx.Query("date_range")),
	}

	output, err := c.searchEntriesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSearchEntriesResponse(output))
}

// GetRange handles GET /entries/range requests.
func (c *EntriesController) GetRange(ctx *gin.Context) {
	_, groupID, ok := identityFromContext(ctx)
	if !ok {
		return
	}

	viewType := entity.ViewType(ctx.DefaultQuery("view", string(entity.ViewTypeWeek)))

	offset, err := parseOffsetParam(ctx)
	if err != nil {
		return
	}

	input := window.GetRangeInput{
		GroupID:  groupID,
		ViewType: viewType,
		Offset:   offset,
	}

	output, err := c.getRangeUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRangeResponse(output))
}

// Sync handles PUT /entries requests.
func (c *EntriesController) Sync(ctx *gin.Context) {
	_, groupID, ok := identityFromContext(ctx)
	if !ok {
		return
	}

	var request dto.SyncEntriesRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidSyncPayload),
		})
		return
	}

	input := entries.SyncEntriesInput{
		GroupID: groupID,
		Entries: request.ToAllEntries(),
	}

	output, err := c.syncEntriesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSyncEntriesResponse(output))
}

// identityFromContext pulls the authenticated identity or writes a 401.
func identityFromContext(ctx *gin.Context) (userID, groupID string, ok bool) {
	userID, ok = middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return "", "", false
	}

	groupID, ok = middleware.GetGroupIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return "", "", false
	}

	return userID, groupID, true
}

// parseOffsetParam reads the window offset query parameter, writing a 400
// on malformed values.
func parseOffsetParam(ctx *gin.Context) (int, error) {
	offsetStr := ctx.DefaultQuery("offset", "0")
	offset, err := strconv.Atoi(offsetStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "offset must be an integer",
			Code:  string(domainerror.ErrCodeInvalidOffset),
		})
		return 0, err
	}
	return offset, nil
}

// handleEntryError maps domain errors to HTTP responses.
func handleEntryError(ctx *gin.Context, err error) {
	var entryErr *domainerror.EntryError
	if errors.As(err, &entryErr) {
		statusCode := http.StatusBadRequest
		if entryErr.Code == domainerror.ErrCodeEntryInternalError {
			statusCode = http.StatusInternalServerError
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: entryErr.Message,
			Code:  string(entryErr.Code),
		})
		return
	}

	var rangeErr *domainerror.RangeError
	if errors.As(err, &rangeErr) {
		statusCode := http.StatusBadRequest
		if rangeErr.Code == domainerror.ErrCodeRangeInternalError {
			statusCode = http.StatusInternalServerError
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: rangeErr.Message,
			Code:  string(rangeErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeEntryInternalError),
	})
}
