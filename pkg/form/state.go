package form

import (
	"github.com/quantmarket/hooktrader/pkg/types"
)

// FormState holds the operator's current selections. It is pure data owned
// by a single session; all mutation goes through the engine operations in
// engine.go so the field dependencies stay consistent.
//
// Side and Quantity keep their values while ClosePosition is set. They are
// ignored by validation and payload construction in that case, so toggling
// close-position off restores the previous entry without loss.
type FormState struct {
	Exchange   types.ExchangeName
	TradeType  types.TradeType
	Symbol     string
	Side       types.SideType
	Quantity   string
	MarginMode types.MarginMode
	Leverage   int

	ClosePosition bool
}

// NewFormState returns the session-start defaults: okx spot with the first
// eligible trading pair, margin fields at the spot profile's values.
func NewFormState() *FormState {
	s := &FormState{
		Exchange: types.ExchangeOKX,
	}

	// spot is in the closed trade type set, ApplyTradeType can not fail here
	if err := s.ApplyTradeType(types.TradeTypeSpot); err != nil {
		panic(err)
	}

	return s
}

// Reset restores the session-start defaults, dropping every selection.
func (s *FormState) Reset() {
	*s = *NewFormState()
}
