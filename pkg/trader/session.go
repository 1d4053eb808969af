package trader

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/quantmarket/hooktrader/pkg/form"
	"github.com/quantmarket/hooktrader/pkg/service"
	"github.com/quantmarket/hooktrader/pkg/types"
	"github.com/quantmarket/hooktrader/pkg/webhook"
)

// Session owns one FormState for the process's lifetime and is the only
// thing that mutates it. It wires the form core to the webhook transport and
// the request log; the core itself never talks to either.
type Session struct {
	State *form.FormState

	client     *webhook.Client
	requestLog *service.RequestLogService

	logger log.FieldLogger
}

func NewSession(client *webhook.Client) *Session {
	return &Session{
		State:  form.NewFormState(),
		client: client,
		logger: log.WithField("component", "session"),
	}
}

// BindRequestLog attaches the persistent request/response sink. Optional;
// without it the session only logs through logrus.
func (s *Session) BindRequestLog(requestLog *service.RequestLogService) {
	s.requestLog = requestLog
}

func (s *Session) SetExchange(name string) error {
	exchange, err := types.ValidExchangeName(name)
	if err != nil {
		return err
	}

	s.State.Exchange = exchange
	return nil
}

func (s *Session) SetTradeType(name string) error {
	tradeType, err := types.ValidTradeType(name)
	if err != nil {
		return err
	}

	return s.State.ApplyTradeType(tradeType)
}

func (s *Session) SetSymbol(symbol string) error {
	profile, err := types.ProfileOf(s.State.TradeType)
	if err != nil {
		return err
	}

	if !profile.Eligible(symbol) {
		return errors.Errorf("trading pair %s is not available for %s, choose one of %v",
			symbol, s.State.TradeType, profile.EligibleSymbols)
	}

	s.State.Symbol = symbol
	return nil
}

func (s *Session) SetSide(name string) error {
	side, err := types.ValidSideType(name)
	if err != nil {
		return err
	}

	s.State.Side = side
	return nil
}

// SetQuantity stores the raw quantity text. Format checking happens at
// validation time so a half-typed entry is not an error.
func (s *Session) SetQuantity(text string) {
	s.State.Quantity = text
}

func (s *Session) SetMarginMode(name string) error {
	if !s.State.Activation().MarginModeEnabled {
		return errors.Errorf("margin mode is fixed to %s for %s trading", s.State.MarginMode, s.State.TradeType)
	}

	mode, err := types.ValidMarginMode(name)
	if err != nil {
		return err
	}

	s.State.MarginMode = mode
	return nil
}

func (s *Session) SetLeverage(leverage int) error {
	if !s.State.Activation().LeverageEnabled {
		return errors.Errorf("leverage is fixed to %d for %s trading", s.State.Leverage, s.State.TradeType)
	}

	if leverage <= 0 {
		return errors.Errorf("leverage must be a positive integer, got %d", leverage)
	}

	s.State.Leverage = leverage
	return nil
}

func (s *Session) SetClosePosition(closing bool) {
	s.State.SetClosePosition(closing)
}

func (s *Session) Activation() form.ActivationSet {
	return s.State.Activation()
}

func (s *Session) Reset() {
	s.State.Reset()
}

// BuildPayload validates the current state and, on acceptance, builds the
// wire document. The document never contains the auth token.
func (s *Session) BuildPayload() (types.OrderPayload, error) {
	if err := s.State.Validate(); err != nil {
		return types.OrderPayload{}, err
	}

	return s.State.BuildPayload(), nil
}

// Submit validates, builds and dispatches the order, then records the
// outcome. A validation failure returns before anything leaves the process.
// A non-2xx response is returned as an error carrying the endpoint's body
// verbatim; no retry happens at this layer.
func (s *Session) Submit(ctx context.Context) (webhook.Response, error) {
	payload, err := s.BuildPayload()
	if err != nil {
		return webhook.Response{}, err
	}

	document, err := json.Marshal(payload)
	if err != nil {
		return webhook.Response{}, errors.Wrap(err, "can not marshal order payload")
	}

	s.logger.Infof("sending webhook: %s", document)

	response, err := s.client.Send(ctx, payload)
	if err != nil {
		s.record(ctx, document, webhook.Response{})
		return webhook.Response{}, err
	}

	s.logger.Infof("response status: %d", response.StatusCode)
	s.logger.Infof("response body: %s", response.Body)

	s.record(ctx, document, response)

	if !response.OK() {
		return response, errors.Errorf("failed to send order: %s", response.Body)
	}

	return response, nil
}

func (s *Session) record(ctx context.Context, document []byte, response webhook.Response) {
	if s.requestLog == nil {
		return
	}

	err := s.requestLog.Insert(ctx, service.WebhookRequestRecord{
		Payload:    string(document),
		StatusCode: response.StatusCode,
		Response:   response.Body,
	})
	if err != nil {
		s.logger.WithError(err).Warnf("can not record webhook request")
	}
}
