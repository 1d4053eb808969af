package trader

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmarket/hooktrader/pkg/form"
	"github.com/quantmarket/hooktrader/pkg/service"
	"github.com/quantmarket/hooktrader/pkg/types"
	"github.com/quantmarket/hooktrader/pkg/webhook"
)

func TestSession_MarginFieldsLockedOnSpot(t *testing.T) {
	session := NewSession(webhook.NewClient(webhook.Config{}))

	assert.Error(t, session.SetMarginMode("isolated"))
	assert.Error(t, session.SetLeverage(10))

	require.NoError(t, session.SetTradeType("perps"))
	require.NoError(t, session.SetMarginMode("isolated"))
	require.NoError(t, session.SetLeverage(20))

	assert.Equal(t, types.MarginModeIsolated, session.State.MarginMode)
	assert.Equal(t, 20, session.State.Leverage)
}

func TestSession_SetSymbolChecksEligibility(t *testing.T) {
	session := NewSession(webhook.NewClient(webhook.Config{}))

	assert.Error(t, session.SetSymbol("BTC-USDT-SWAP"))
	require.NoError(t, session.SetSymbol("ETH-USDT"))

	require.NoError(t, session.SetTradeType("perps"))
	require.NoError(t, session.SetSymbol("BTC-USDT-SWAP"))
}

func TestSession_SetLeverageRejectsNonPositive(t *testing.T) {
	session := NewSession(webhook.NewClient(webhook.Config{}))
	require.NoError(t, session.SetTradeType("perps"))

	assert.Error(t, session.SetLeverage(0))
	assert.Error(t, session.SetLeverage(-5))
}

func TestSession_BuildPayloadRequiresValidState(t *testing.T) {
	session := NewSession(webhook.NewClient(webhook.Config{}))

	_, err := session.BuildPayload()
	require.Error(t, err)

	var v *form.ValidationError
	require.ErrorAs(t, err, &v)
	assert.Equal(t, form.ReasonMissingSide, v.Reason)
}

func TestSession_Submit(t *testing.T) {
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))
		io.WriteString(w, "accepted")
	}))
	defer server.Close()

	session := NewSession(webhook.NewClient(webhook.Config{URL: server.URL, AuthToken: "tok"}))
	require.NoError(t, session.SetTradeType("perps"))
	require.NoError(t, session.SetSide("buy"))
	session.SetQuantity("50%")

	response, err := session.Submit(context.Background())
	require.NoError(t, err)
	assert.True(t, response.OK())
	assert.Equal(t, "accepted", response.Body)

	assert.Equal(t, "tok", received["authToken"])
	assert.Equal(t, "perps", received["type"])
	assert.Equal(t, "BTC-USDT-SWAP", received["symbol"])
	assert.Equal(t, float64(10), received["leverage"])
}

func TestSession_SubmitValidationFailureNeverReachesTransport(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	session := NewSession(webhook.NewClient(webhook.Config{URL: server.URL}))
	// side and quantity are never set

	_, err := session.Submit(context.Background())
	require.Error(t, err)

	var v *form.ValidationError
	assert.ErrorAs(t, err, &v)
	assert.Equal(t, 0, requests)
}

func TestSession_SubmitRecordsOutcome(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "upstream down")
	}))
	defer server.Close()

	db := service.NewDatabaseService(":memory:")
	require.NoError(t, db.Connect())
	defer db.Close()

	session := NewSession(webhook.NewClient(webhook.Config{URL: server.URL, AuthToken: "tok"}))
	session.BindRequestLog(&service.RequestLogService{DB: db.DB})

	require.NoError(t, session.SetSide("sell"))
	session.SetQuantity("1.5")

	response, err := session.Submit(context.Background())
	require.Error(t, err, "non-2xx surfaces as an error with the body verbatim")
	assert.Contains(t, err.Error(), "upstream down")
	assert.Equal(t, http.StatusBadGateway, response.StatusCode)

	records, err := (&service.RequestLogService{DB: db.DB}).QueryLast(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, http.StatusBadGateway, records[0].StatusCode)
	assert.NotContains(t, records[0].Payload, "tok", "the recorded document must not carry the credential")
}
