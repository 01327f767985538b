package dto

import (
	"encoding/json"
	"testing"
)

func TestFlexString_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"string id", `"abc-123"`, "abc-123"},
		{"integer id", `42`, "42"},
		{"large integer keeps digits", `9007199254740993`, "9007199254740993"},
		{"decimal number", `12.5`, "12.5"},
		{"null is empty", `null`, ""},
		{"empty string", `""`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got FlexString
			if err := json.Unmarshal([]byte(tt.raw), &got); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got.String())
			}
		})
	}

	t.Run("rejects non-scalar values", func(t *testing.T) {
		var got FlexString
		if err := json.Unmarshal([]byte(`{"id":1}`), &got); err == nil {
			t.Error("expected error for object value")
		}
	})
}

func TestSyncEntriesRequest_ToAllEntries(t *testing.T) {
	payload := `{
		"expenses": [
			{
				"id": 7,
				"description": "Dinner",
				"date": "2025-07-10",
				"amount": "90",
				"category": {"id": "cat-1", "name": "🍕 Food"},
				"shares": [
					{"user_id": 101, "share_amount": "30"},
					{"user_id": "102", "share_amount": "60"}
				]
			}
		],
		"income": [
			{"id": "inc-1", "description": "Salary", "date": "2025-07-05", "amount": "3000"}
		]
	}`

	var request SyncEntriesRequest
	if err := json.Unmarshal([]byte(payload), &request); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := request.ToAllEntries()

	if len(entries.Expenses) != 1 || len(entries.Income) != 1 {
		t.Fatalf("expected 1/1 entries, got %d/%d", len(entries.Expenses), len(entries.Income))
	}

	expense := entries.Expenses[0]
	if expense.ID != "7" {
		t.Errorf("expected numeric id normalized to string, got %q", expense.ID)
	}
	if expense.Category == nil || expense.Category.Name != "🍕 Food" {
		t.Errorf("category mangled: %+v", expense.Category)
	}
	if len(expense.Shares) != 2 || expense.Shares[0].UserID != "101" || expense.Shares[1].UserID != "102" {
		t.Errorf("shares mangled: %+v", expense.Shares)
	}
	if entries.Income[0].ID != "inc-1" {
		t.Errorf("expected income id inc-1, got %q", entries.Income[0].ID)
	}
}

func TestParseBoolParam(t *testing.T) {
	if got, err := ParseBoolParam(""); err != nil || got != nil {
		t.Errorf("expected nil for absent param, got %v, %v", got, err)
	}

	got, err := ParseBoolParam("true")
	if err != nil || got == nil || !*got {
		t.Errorf("expected true, got %v, %v", got, err)
	}

	if _, err := ParseBoolParam("maybe"); err == nil {
		t.Error("expected error for malformed bool")
	}
}
