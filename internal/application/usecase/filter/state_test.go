package filter

import "testing"

func TestState_DimensionSwitching(t *testing.T) {
	t.Run("selecting a type discards the category", func(t *testing.T) {
		var s State
		s.SelectCategory("Food")
		s.SelectType(true)

		if s.Category() != "" {
			t.Errorf("expected category cleared, got %q", s.Category())
		}
		if s.ShowIncome() == nil || !*s.ShowIncome() {
			t.Error("expected show income true")
		}
	})

	t.Run("selecting a category discards the type", func(t *testing.T) {
		var s State
		s.SelectType(false)
		s.SelectCategory("Food")

		if s.ShowIncome() != nil {
			t.Error("expected type selection cleared")
		}
		if s.Category() != "Food" {
			t.Errorf("expected category Food, got %q", s.Category())
		}
	})

	t.Run("reselecting within a dimension keeps it", func(t *testing.T) {
		var s State
		s.SelectCategory("Food")
		s.SelectCategory("Housing")

		if s.Category() != "Housing" {
			t.Errorf("expected category Housing, got %q", s.Category())
		}
	})

	t.Run("clear resets everything", func(t *testing.T) {
		var s State
		s.SelectCategory("Food")
		s.Clear()

		if s.Category() != "" || s.ShowIncome() != nil {
			t.Error("expected cleared state")
		}
	})
}

func TestState_Apply(t *testing.T) {
	var s State
	s.SelectCategory("Food")

	opts := s.Apply(Options{SearchActive: true, SearchQuery: "coffee"})

	if opts.Category != "Food" {
		t.Errorf("expected category copied onto options, got %q", opts.Category)
	}
	if !opts.SearchActive || opts.SearchQuery != "coffee" {
		t.Error("expected unrelated options preserved")
	}
}
