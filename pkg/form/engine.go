package form

import (
	"github.com/quantmarket/hooktrader/pkg/types"
)

// ActivationSet is the derived view of which fields are currently editable.
// It is recomputed from FormState on every change and never stored; a
// renderer maps it straight onto control states.
type ActivationSet struct {
	SideEnabled       bool
	QuantityEnabled   bool
	MarginModeEnabled bool
	LeverageEnabled   bool
}

// ApplyTradeType switches the form to a new trade type and reconciles the
// dependent fields:
//
//   - a symbol that is not eligible under the new type falls back to the
//     first eligible trading pair
//   - margin mode and leverage always reset to the new profile's defaults,
//     even when switching between two margin-capable types, so a leverage
//     choice never leaks into a context where it was not made
func (s *FormState) ApplyTradeType(newType types.TradeType) error {
	profile, err := types.ProfileOf(newType)
	if err != nil {
		return err
	}

	s.TradeType = newType

	if !profile.Eligible(s.Symbol) {
		s.Symbol = profile.EligibleSymbols[0]
	}

	s.MarginMode = profile.DefaultMarginMode
	s.Leverage = profile.DefaultLeverage
	return nil
}

// SetClosePosition flips the close-position intent. Side and Quantity are
// left untouched; they simply stop being part of the valid state while the
// flag is on.
func (s *FormState) SetClosePosition(closing bool) {
	s.ClosePosition = closing
}

// Activation derives the current activation set. Pure function of the
// state: calling it twice without a mutation in between yields identical
// results.
func (s *FormState) Activation() ActivationSet {
	marginCapable := false
	if profile, err := types.ProfileOf(s.TradeType); err == nil {
		marginCapable = profile.MarginCapable
	}

	return ActivationSet{
		SideEnabled:       !s.ClosePosition,
		QuantityEnabled:   !s.ClosePosition,
		MarginModeEnabled: marginCapable,
		LeverageEnabled:   marginCapable,
	}
}
