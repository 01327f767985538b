// Package filter implements the fixed-precedence entry filter pipeline.
package filter

// Dimension names the primary filter dimension the user is working in.
type Dimension string

const (
	DimensionNone     Dimension = ""
	DimensionCategory Dimension = "category"
	DimensionType     Dimension = "type"
)

// State tracks the transient filter selections owned by the surrounding
// application. Switching the primary dimension discards any option
// accumulated under the previous one; clearing resets every option
// independently.
type State struct {
	dimension  Dimension
	category   string
	showIncome *bool
}

// SelectCategory switches to the category dimension, discarding any type
// selection made before.
func (s *State) SelectCategory(category string) {
	if s.dimension != DimensionCategory {
		s.showIncome = nil
	}
	s.dimension = DimensionCategory
	s.category = category
}

// SelectType switches to the type dimension, discarding any category
// selection made before.
func (s *State) SelectType(showIncome bool) {
	if s.dimension != DimensionType {
		s.category = ""
	}
	s.dimension = DimensionType
	income := showIncome
	s.showIncome = &income
}

// Clear resets every option independently.
func (s *State) Clear() {
	s.dimension = DimensionNone
	s.category = ""
	s.showIncome = nil
}

// Category returns the selected category, if any.
func (s *State) Category() string {
	return s.category
}

// ShowIncome returns the three-state type selection.
func (s *State) ShowIncome() *bool {
	return s.showIncome
}

// Apply copies the selections onto a set of pipeline options.
func (s *State) Apply(opts Options) Options {
	opts.Category = s.category
	opts.ShowIncome = s.showIncome
	return opts
}
