package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileOf(t *testing.T) {
	for _, tradeType := range SupportedTradeTypes {
		t.Run(string(tradeType), func(t *testing.T) {
			profile, err := ProfileOf(tradeType)
			require.NoError(t, err)
			assert.NotEmpty(t, profile.EligibleSymbols)
			assert.Positive(t, profile.DefaultLeverage)

			for _, symbol := range profile.EligibleSymbols {
				assert.True(t, profile.Eligible(symbol))
			}
		})
	}
}

func TestProfileOf_SpotInvariants(t *testing.T) {
	profile, err := ProfileOf(TradeTypeSpot)
	require.NoError(t, err)
	assert.False(t, profile.MarginCapable)
	assert.Equal(t, MarginModeCash, profile.DefaultMarginMode)
	assert.Equal(t, 1, profile.DefaultLeverage)
}

func TestProfileOf_LeveragedDefaults(t *testing.T) {
	for _, tradeType := range []TradeType{TradeTypePerps, TradeTypeInversePerps} {
		profile, err := ProfileOf(tradeType)
		require.NoError(t, err)
		assert.True(t, profile.MarginCapable)
		assert.Equal(t, MarginModeCross, profile.DefaultMarginMode)
		assert.Equal(t, 10, profile.DefaultLeverage)
	}
}

func TestProfileOf_Unknown(t *testing.T) {
	_, err := ProfileOf("options")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTradeType)
}

func TestValidTradeType(t *testing.T) {
	tradeType, err := ValidTradeType("perps")
	require.NoError(t, err)
	assert.Equal(t, TradeTypePerps, tradeType)

	_, err = ValidTradeType("margin")
	assert.Error(t, err)
}
