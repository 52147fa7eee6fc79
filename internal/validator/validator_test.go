package validator

import (
	"math"
	"reflect"
	"testing"
)

// TestValidate проверяет классификацию ввода
func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Result
	}{
		{name: "Empty string", raw: "", want: Empty{}},
		{name: "Only spaces", raw: "   \t", want: Empty{}},
		{name: "Integer", raw: "42", want: Number{Value: 42}},
		{name: "Signed decimal", raw: " -3.25 ", want: Number{Value: -3.25}},
		{name: "Decimal comma", raw: "3,5", want: Number{Value: 3.5}},
		{name: "Lone decimal comma is not a list", raw: "1,5", want: Number{Value: 1.5}},
		{name: "Leading comma", raw: ",5", want: Number{Value: 0.5}},
		{name: "Exponent", raw: "1e3", want: Number{Value: 1000}},
		{name: "List with spaces", raw: "3, 1, 2", want: NumericList{Values: []float64{3, 1, 2}}},
		{name: "Empty tokens are dropped", raw: "1,,2", want: NumericList{Values: []float64{1, 2}}},
		{name: "Three tokens", raw: "1,5,3", want: NumericList{Values: []float64{1, 5, 3}}},
		{name: "Trailing comma", raw: "7, 8,", want: NumericList{Values: []float64{7, 8}}},
		{name: "Only commas", raw: ",,,", want: Invalid{Reason: ReasonCSVEmpty}},
		{name: "Non numeric list", raw: "a,b", want: Invalid{Reason: ReasonCSVInvalid}},
		{name: "Partly numeric list", raw: "1, x, 3", want: Invalid{Reason: ReasonCSVInvalid}},
		{name: "Garbage", raw: "abc", want: Invalid{Reason: ReasonInvalid}},
		{name: "Two numbers without comma", raw: "1 2", want: Invalid{Reason: ReasonInvalid}},
		{name: "Infinity is rejected", raw: "Inf", want: Invalid{Reason: ReasonInvalid}},
		{name: "NaN is rejected", raw: "NaN", want: Invalid{Reason: ReasonInvalid}},
		{name: "Overflow is rejected", raw: "1e400", want: Invalid{Reason: ReasonInvalid}},
		{name: "Digit separator is rejected", raw: "1_0", want: Invalid{Reason: ReasonInvalid}},
		{name: "Hex float is rejected", raw: "0x1p3", want: Invalid{Reason: ReasonInvalid}},
		{name: "Signed hex is rejected", raw: "-0X_1p0", want: Invalid{Reason: ReasonInvalid}},
		{name: "Digit separator in list", raw: "1_0, 2", want: Invalid{Reason: ReasonCSVInvalid}},
		{name: "Hex in list", raw: "1, 0x10", want: Invalid{Reason: ReasonCSVInvalid}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Validate(%q) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}

// TestValidatePtr проверяет отсутствующее значение
func TestValidatePtr(t *testing.T) {
	if _, ok := ValidatePtr(nil).(Empty); !ok {
		t.Errorf("ValidatePtr(nil) should be Empty")
	}

	raw := "2,5"
	got, ok := ValidatePtr(&raw).(Number)
	if !ok || got.Value != 2.5 {
		t.Errorf("ValidatePtr(%q) = %#v, want Number(2.5)", raw, got)
	}
}

// TestValidateNegativeZero проверяет, что знак нуля сохраняется
func TestValidateNegativeZero(t *testing.T) {
	got, ok := Validate("-0, 0").(NumericList)
	if !ok {
		t.Fatalf("expected NumericList")
	}
	if len(got.Values) != 2 || !math.Signbit(got.Values[0]) || math.Signbit(got.Values[1]) {
		t.Errorf("unexpected values %v", got.Values)
	}
}

func TestInvalidMessage(t *testing.T) {
	tests := map[string]string{
		ReasonCSVEmpty:   "CSV list is empty",
		ReasonCSVInvalid: "CSV contains non-numeric values",
		ReasonInvalid:    "Invalid input",
		"unknown":        "Invalid input",
	}
	for reason, want := range tests {
		if got := (Invalid{Reason: reason}).Message(); got != want {
			t.Errorf("Invalid{%q}.Message() = %q, want %q", reason, got, want)
		}
	}
	if got := (Empty{}).Message(); got != "Empty input" {
		t.Errorf("Empty{}.Message() = %q", got)
	}
}
