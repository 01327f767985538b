// Package window computes the active week/month viewing windows.
package window

import (
	"time"

	"github.com/spendview/backend/internal/domain/entity"
)

// ViewState is the navigation state machine over the two view axes:
// granularity and offset. The offset never goes above 0 (no future
// windows) and backward steps are gated so no window can land entirely
// before the oldest known entry.
type ViewState struct {
	viewType entity.ViewType
	offset   int
}

// NewViewState starts at the current week.
func NewViewState() ViewState {
	return ViewState{viewType: entity.ViewTypeWeek}
}

// ViewType returns the active granularity.
func (s *ViewState) ViewType() entity.ViewType {
	return s.viewType
}

// Offset returns the active window offset (0 or negative).
func (s *ViewState) Offset() int {
	return s.offset
}

// SetViewType switches granularity. Switching restarts at "now": the
// offset resets to 0 whenever the view type actually changes.
func (s *ViewState) SetViewType(viewType entity.ViewType) {
	if !viewType.IsValid() || viewType == s.viewType {
		return
	}
	s.viewType = viewType
	s.offset = 0
}

// StepBack moves one window into the past when allowed and reports
// whether it moved.
func (s *ViewState) StepBack(earliest *time.Time, now time.Time) bool {
	_, canGoBack := CalculateRange(s.viewType, s.offset, earliest, now)
	if !canGoBack {
		return false
	}
	s.offset--
	return true
}

// StepForward moves one window toward the present and reports whether it
// moved; navigation never goes past "now".
func (s *ViewState) StepForward() bool {
	if s.offset >= 0 {
		return false
	}
	s.offset++
	return true
}

// Range computes the window for the current state.
func (s *ViewState) Range(earliest *time.Time, now time.Time) (entity.DateRange, bool) {
	return CalculateRange(s.viewType, s.offset, earliest, now)
}
