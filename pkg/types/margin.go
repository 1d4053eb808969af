package types

import "fmt"

// MarginMode defines how collateral backs a position. Spot trading always
// settles in cash; leveraged contracts choose between a shared collateral
// pool (cross) and per-position collateral (isolated).
type MarginMode string

const (
	MarginModeCash     = MarginMode("cash")
	MarginModeCross    = MarginMode("cross")
	MarginModeIsolated = MarginMode("isolated")
)

func ValidMarginMode(a string) (MarginMode, error) {
	switch a {
	case "cash":
		return MarginModeCash, nil
	case "cross":
		return MarginModeCross, nil
	case "isolated":
		return MarginModeIsolated, nil
	}

	return "", fmt.Errorf("invalid margin mode: %s", a)
}
