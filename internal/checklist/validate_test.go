package checklist

import (
	"math"
	"testing"
)

func TestValidateCost(t *testing.T) {
	cases := []struct {
		name    string
		cost    float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"positive", 149.90, false},
		{"negative", -1, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCost(tc.cost)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidateCost(%v) error = %v, wantErr %v", tc.cost, err, tc.wantErr)
			}
		})
	}
}

func TestValidateItemName(t *testing.T) {
	if err := ValidateItemName("Vela de ignição"); err != nil {
		t.Fatalf("valid name rejected: %v", err)
	}
	if err := ValidateItemName("   "); err == nil {
		t.Fatalf("blank name accepted, want error")
	}
}

func TestCostWarnings(t *testing.T) {
	if msg := CostWarning("Pneu", 500); msg != "" {
		t.Fatalf("warning for reasonable cost: %q", msg)
	}
	if msg := CostWarning("Pneu", 2500); msg == "" {
		t.Fatalf("no warning for cost above limit")
	}
	if msg := TotalWarning(4999); msg != "" {
		t.Fatalf("warning for reasonable total: %q", msg)
	}
	if msg := TotalWarning(5001); msg == "" {
		t.Fatalf("no warning for total above limit")
	}
}

func TestValidateOdometer(t *testing.T) {
	cases := []struct {
		name     string
		odometer int
		previous int
		wantErr  bool
	}{
		{"first revision", 12000, -1, false},
		{"increasing", 15000, 12000, false},
		{"equal", 12000, 12000, false},
		{"negative", -5, -1, true},
		{"decreasing", 11000, 12000, true},
		{"implausible jump", 70000, 10000, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateOdometer(tc.odometer, tc.previous)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidateOdometer(%d, %d) error = %v, wantErr %v",
					tc.odometer, tc.previous, err, tc.wantErr)
			}
		})
	}
}
