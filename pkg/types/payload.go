package types

// OrderPayload is the wire document the webhook endpoint consumes. It is
// built once per accepted submission and discarded after the send.
//
// AuthToken is injected by the transport right before the request goes out;
// the form layer never sees the credential.
type OrderPayload struct {
	AuthToken string `json:"authToken,omitempty"`

	Exchange   ExchangeName `json:"exchange"`
	Symbol     string       `json:"symbol"`
	Type       TradeType    `json:"type"`
	MarginMode MarginMode   `json:"marginMode"`

	// Leverage is present for every trade type except spot.
	Leverage int `json:"leverage,omitempty"`

	// Side and Qty describe an opening order; both are absent when closing.
	// Qty carries the operator's raw text, e.g. "50%" or "1.5".
	Side SideType `json:"side,omitempty"`
	Qty  string   `json:"qty,omitempty"`

	ClosePosition bool `json:"closePosition,omitempty"`
}
