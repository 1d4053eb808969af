package types

import "fmt"

// SideType define side type of order
type SideType string

const (
	SideTypeBuy  = SideType("buy")
	SideTypeSell = SideType("sell")
)

func (side SideType) Reverse() SideType {
	switch side {
	case SideTypeBuy:
		return SideTypeSell

	case SideTypeSell:
		return SideTypeBuy
	}

	return side
}

func ValidSideType(a string) (SideType, error) {
	switch a {
	case "buy", "b":
		return SideTypeBuy, nil
	case "sell", "s":
		return SideTypeSell, nil
	}

	return "", fmt.Errorf("invalid side: %s", a)
}
