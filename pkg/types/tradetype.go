package types

import (
	"github.com/pkg/errors"
)

// TradeType selects the product class of an order.
type TradeType string

const (
	TradeTypeSpot         = TradeType("spot")
	TradeTypePerps        = TradeType("perps")
	TradeTypeInversePerps = TradeType("invperps")
)

var SupportedTradeTypes = []TradeType{TradeTypeSpot, TradeTypePerps, TradeTypeInversePerps}

func (t TradeType) String() string {
	return string(t)
}

func ValidTradeType(a string) (TradeType, error) {
	switch a {
	case "spot":
		return TradeTypeSpot, nil
	case "perps", "perp":
		return TradeTypePerps, nil
	case "invperps", "invperp":
		return TradeTypeInversePerps, nil
	}

	return "", errors.Errorf("invalid trade type: %s", a)
}

// TradeTypeProfile describes the trading pairs and margin defaults of a trade
// type. Profiles are static; the catalog below is the single source of truth
// for which symbols a trade type accepts.
type TradeTypeProfile struct {
	EligibleSymbols   []string
	MarginCapable     bool
	DefaultMarginMode MarginMode
	DefaultLeverage   int
}

// Eligible reports whether symbol belongs to this profile's trading pairs.
func (p TradeTypeProfile) Eligible(symbol string) bool {
	for _, s := range p.EligibleSymbols {
		if s == symbol {
			return true
		}
	}

	return false
}

var tradeTypeProfiles = map[TradeType]TradeTypeProfile{
	TradeTypeSpot: {
		EligibleSymbols:   []string{"BTC-USDT", "ETH-USDT"},
		MarginCapable:     false,
		DefaultMarginMode: MarginModeCash,
		DefaultLeverage:   1,
	},
	TradeTypePerps: {
		EligibleSymbols:   []string{"BTC-USDT-SWAP", "ETH-USDT-SWAP", "BTC-USD-SWAP", "ETH-USD-SWAP"},
		MarginCapable:     true,
		DefaultMarginMode: MarginModeCross,
		DefaultLeverage:   10,
	},
	TradeTypeInversePerps: {
		EligibleSymbols:   []string{"BTC-USD-SWAP", "ETH-USD-SWAP"},
		MarginCapable:     true,
		DefaultMarginMode: MarginModeCross,
		DefaultLeverage:   10,
	},
}

// ErrUnknownTradeType is returned for a trade type outside the closed set.
// The enumeration is closed, so hitting this is a caller bug.
var ErrUnknownTradeType = errors.New("unknown trade type")

func ProfileOf(t TradeType) (TradeTypeProfile, error) {
	profile, ok := tradeTypeProfiles[t]
	if !ok {
		return TradeTypeProfile{}, errors.Wrapf(ErrUnknownTradeType, "trade type %q", t)
	}

	return profile, nil
}

// MustProfileOf is for call sites that already hold a validated trade type.
func MustProfileOf(t TradeType) TradeTypeProfile {
	profile, err := ProfileOf(t)
	if err != nil {
		panic(err)
	}

	return profile
}

// QuantityPresets are the common balance fractions offered to the operator.
var QuantityPresets = []string{"100%", "75%", "50%", "25%", "10%", "5%"}
