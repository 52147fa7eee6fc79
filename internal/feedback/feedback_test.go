package feedback

import (
	"math"
	"testing"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		label   string
		want    string
	}{
		{"Below 100", Scalar(99.9), "Square", "Operation: Square. Info: the result is less than 100"},
		{"Negative", Scalar(-500), "Cube", "Operation: Cube. Info: the result is less than 100"},
		{"Lower bound", Scalar(100), "Sum", "Operation: Sum. Info: the result is between 100 and 200"},
		{"Upper bound", Scalar(200), "Sum", "Operation: Sum. Info: the result is between 100 and 200"},
		{"Above 200", Scalar(200.5), "Factorial", "Operation: Factorial. Info: the result is greater than 200"},
		{"NaN", Scalar(math.NaN()), "Square root", "Operation: Square root. Info: the result is greater than 200"},
		{"List", List{1, 2, 3}, "Sort list", "Operation: Sort list. Processed list of values (3)"},
		{"Empty list", List{}, "Remove last", "Operation: Remove last. Processed list of values (0)"},
		{"Done", Done{}, "Chart", "Operation: Chart. Result ready"},
		{"Nil", nil, "Chart", "Operation: Chart. Result ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Describe(tt.outcome, tt.label); got != tt.want {
				t.Errorf("Describe() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorAndPending(t *testing.T) {
	if got := Error("Invalid input"); got != "Error: Invalid input" {
		t.Errorf("Error() = %q", got)
	}
	if got := Pending("add"); got != "Pending operation: add" {
		t.Errorf("Pending() = %q", got)
	}
}
