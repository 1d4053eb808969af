package types

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrInvalidQuantityFormat   = errors.New("invalid quantity format")
	ErrInvalidPercentageFormat = errors.New("invalid percentage format")
	ErrPercentageOutOfRange    = errors.New("percentage must be between 0 and 100")
	ErrQuantityNotPositive     = errors.New("quantity must be greater than 0")
)

// QuantitySpec is a parsed order size. A trailing % selects a percentage of
// the available balance or position, anything else is an absolute amount.
// Raw keeps the operator's text untouched; the wire document carries Raw
// verbatim, never a renormalized number.
type QuantitySpec struct {
	Raw        string
	Value      float64
	Percentage bool
}

func ParseQuantity(text string) (QuantitySpec, error) {
	if !strings.HasSuffix(text, "%") {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return QuantitySpec{}, ErrInvalidQuantityFormat
		}

		if v <= 0 {
			return QuantitySpec{}, ErrQuantityNotPositive
		}

		return QuantitySpec{Raw: text, Value: v}, nil
	}

	v, err := strconv.ParseFloat(strings.TrimSuffix(text, "%"), 64)
	if err != nil {
		return QuantitySpec{}, ErrInvalidPercentageFormat
	}

	if v <= 0 || v > 100 {
		return QuantitySpec{}, ErrPercentageOutOfRange
	}

	return QuantitySpec{Raw: text, Value: v, Percentage: true}, nil
}
