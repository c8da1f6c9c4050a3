package checklist

import (
	"fmt"
	"math"
	"strings"
)

// Advisory thresholds carried over from the workshop's rules of thumb.
// Costs above these are accepted but flagged so a typo does not pass silently.
const (
	ItemCostWarnLimit  = 2000.0
	TotalCostWarnLimit = 5000.0
	OdometerJumpLimit  = 50000
)

// ValidateCost rejects costs that can never be stored: negative values and
// non-finite numbers. Returns nil for any acceptable value.
func ValidateCost(cost float64) error {
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return fmt.Errorf("custo inválido: %v", cost)
	}
	if cost < 0 {
		return fmt.Errorf("custo não pode ser negativo: %.2f", cost)
	}
	return nil
}

// ValidateItemName rejects blank item names.
func ValidateItemName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("nome do item é obrigatório")
	}
	return nil
}

// CostWarning returns an advisory message when an item cost exceeds the
// reasonable ceiling, empty otherwise. The edit is still accepted.
func CostWarning(name string, cost float64) string {
	if cost > ItemCostWarnLimit {
		return fmt.Sprintf("custo alto para %q: R$ %.2f (limite usual R$ %.2f)", name, cost, ItemCostWarnLimit)
	}
	return ""
}

// TotalWarning returns an advisory message when the estimated total exceeds
// the alert threshold, empty otherwise.
func TotalWarning(total float64) string {
	if total > TotalCostWarnLimit {
		return fmt.Sprintf("custo total estimado alto: R$ %.2f (alerta acima de R$ %.2f)", total, TotalCostWarnLimit)
	}
	return ""
}

// ValidateOdometer checks a new revision's odometer reading against the
// previous one. Negative readings and decreases are rejected; implausibly
// large jumps are rejected as likely typos. previous < 0 means no earlier
// revision exists.
func ValidateOdometer(odometer, previous int) error {
	if odometer < 0 {
		return fmt.Errorf("quilometragem não pode ser negativa")
	}
	if previous < 0 {
		return nil
	}
	if odometer < previous {
		return fmt.Errorf("quilometragem menor que a última revisão (%d km < %d km)", odometer, previous)
	}
	if odometer-previous > OdometerJumpLimit {
		return fmt.Errorf("diferença de quilometragem muito grande (%d km)", odometer-previous)
	}
	return nil
}
