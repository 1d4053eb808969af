package form

import (
	"github.com/quantmarket/hooktrader/pkg/types"
)

// BuildPayload maps a validated state into the wire document. Callers must
// have run Validate on the exact same state first; building from an
// unvalidated state is a programming error, not a recoverable path.
//
// The quantity text goes out verbatim, "50%" and "1.5" alike. Leverage is
// only present for leveraged trade types, and a closing order carries
// closePosition instead of side/qty. The auth token is left empty here.
func (s *FormState) BuildPayload() types.OrderPayload {
	payload := types.OrderPayload{
		Exchange:   s.Exchange,
		Symbol:     s.Symbol,
		Type:       s.TradeType,
		MarginMode: s.MarginMode,
	}

	if s.TradeType != types.TradeTypeSpot {
		payload.Leverage = s.Leverage
	}

	if s.ClosePosition {
		payload.ClosePosition = true
	} else {
		payload.Side = s.Side
		payload.Qty = s.Quantity
	}

	return payload
}
