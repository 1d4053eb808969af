package form

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmarket/hooktrader/pkg/types"
)

func payloadKeys(t *testing.T, payload types.OrderPayload) map[string]interface{} {
	out, err := json.Marshal(payload)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &fields))
	return fields
}

func TestBuildPayload_SpotOpenOrder(t *testing.T) {
	s := validOpenState()
	require.NoError(t, s.Validate())

	payload := s.BuildPayload()
	fields := payloadKeys(t, payload)

	assert.Equal(t, "okx", fields["exchange"])
	assert.Equal(t, "BTC-USDT", fields["symbol"])
	assert.Equal(t, "spot", fields["type"])
	assert.Equal(t, "cash", fields["marginMode"])
	assert.Equal(t, "buy", fields["side"])
	assert.Equal(t, "50%", fields["qty"])

	assert.NotContains(t, fields, "leverage")
	assert.NotContains(t, fields, "closePosition")
	assert.NotContains(t, fields, "authToken")
}

func TestBuildPayload_PerpsCloseOrder(t *testing.T) {
	s := NewFormState()
	require.NoError(t, s.ApplyTradeType(types.TradeTypePerps))
	s.SetClosePosition(true)
	require.NoError(t, s.Validate())

	payload := s.BuildPayload()
	fields := payloadKeys(t, payload)

	assert.Equal(t, "perps", fields["type"])
	assert.Equal(t, "cross", fields["marginMode"])
	assert.Equal(t, float64(10), fields["leverage"])
	assert.Equal(t, true, fields["closePosition"])

	assert.NotContains(t, fields, "side")
	assert.NotContains(t, fields, "qty")
}

func TestBuildPayload_QuantityTextIsVerbatim(t *testing.T) {
	for _, qty := range []string{"50%", "1.5", "0.001"} {
		s := validOpenState()
		s.Quantity = qty
		require.NoError(t, s.Validate())

		payload := s.BuildPayload()
		assert.Equal(t, qty, payload.Qty)
	}
}

func TestBuildPayload_LeverageForInversePerps(t *testing.T) {
	s := NewFormState()
	require.NoError(t, s.ApplyTradeType(types.TradeTypeInversePerps))
	s.Side = types.SideTypeSell
	s.Quantity = "25%"
	s.Leverage = 20
	require.NoError(t, s.Validate())

	payload := s.BuildPayload()
	assert.Equal(t, 20, payload.Leverage)
	assert.Equal(t, types.SideTypeSell, payload.Side)
}
