package form

import (
	"github.com/pkg/errors"

	"github.com/quantmarket/hooktrader/pkg/types"
)

// RejectionReason is a stable code for one validation failure. The checks
// run in a fixed order and stop at the first failure, so the same invalid
// state always reports the same reason.
type RejectionReason string

const (
	ReasonMissingExchange       RejectionReason = "missingExchange"
	ReasonMissingTradeType      RejectionReason = "missingTradeType"
	ReasonMissingSymbol         RejectionReason = "missingSymbol"
	ReasonInvalidSymbol         RejectionReason = "invalidSymbol"
	ReasonMissingSide           RejectionReason = "missingSide"
	ReasonMissingQuantity       RejectionReason = "missingQuantity"
	ReasonInvalidPercentage     RejectionReason = "invalidPercentage"
	ReasonInvalidQuantity       RejectionReason = "invalidQuantity"
	ReasonInvalidQuantityFormat RejectionReason = "invalidQuantityFormat"
)

// ValidationError carries the rejection reason plus a message the operator
// can act on. These never reach the transport and are never retried.
type ValidationError struct {
	Reason  RejectionReason
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func reject(reason RejectionReason, message string) *ValidationError {
	return &ValidationError{Reason: reason, Message: message}
}

// Validate checks the state for submission. It returns nil on acceptance or
// the first failure as a *ValidationError. When ClosePosition is set, side
// and quantity are skipped entirely; closing needs only exchange, trade type
// and symbol.
func (s *FormState) Validate() error {
	if len(s.Exchange) == 0 {
		return reject(ReasonMissingExchange, "please select an exchange")
	}

	if len(s.TradeType) == 0 {
		return reject(ReasonMissingTradeType, "please select a trade type")
	}

	profile, err := types.ProfileOf(s.TradeType)
	if err != nil {
		// closed enumeration, only reachable through a caller bug
		return err
	}

	if len(s.Symbol) == 0 {
		return reject(ReasonMissingSymbol, "please select a trading pair")
	}

	if !profile.Eligible(s.Symbol) {
		return reject(ReasonInvalidSymbol, "trading pair "+s.Symbol+" is not available for "+s.TradeType.String())
	}

	if s.ClosePosition {
		return nil
	}

	if len(s.Side) == 0 {
		return reject(ReasonMissingSide, "please select a side")
	}

	if len(s.Quantity) == 0 {
		return reject(ReasonMissingQuantity, "please enter a quantity")
	}

	if _, err := types.ParseQuantity(s.Quantity); err != nil {
		switch {
		case errors.Is(err, types.ErrPercentageOutOfRange):
			return reject(ReasonInvalidPercentage, err.Error())
		case errors.Is(err, types.ErrQuantityNotPositive):
			return reject(ReasonInvalidQuantity, err.Error())
		default:
			return reject(ReasonInvalidQuantityFormat, err.Error())
		}
	}

	return nil
}
