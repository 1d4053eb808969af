package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

type ExchangeName string

const (
	ExchangeOKX     = ExchangeName("okx")
	ExchangeBinance = ExchangeName("binance")
)

var SupportedExchanges = []ExchangeName{ExchangeOKX, ExchangeBinance}

func (n ExchangeName) String() string {
	return string(n)
}

func (n *ExchangeName) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	switch s {
	case "okx", "binance":
		*n = ExchangeName(s)
		return nil
	}

	return fmt.Errorf("unknown or unsupported exchange name: %s, valid names are: okx, binance", s)
}

func ValidExchangeName(a string) (ExchangeName, error) {
	switch strings.ToLower(a) {
	case "okx":
		return ExchangeOKX, nil
	case "binance", "bn":
		return ExchangeBinance, nil
	}

	return "", fmt.Errorf("invalid exchange name: %s", a)
}
