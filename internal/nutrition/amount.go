package nutrition

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/osse101/DietDiary_Go/internal/domain"
)

// Amount is a provider number that may arrive as a JSON string using a comma
// decimal separator ("12,5") or as a plain JSON number.
type Amount string

// UnmarshalJSON accepts both string and number encodings.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = Amount(n.String())
	return nil
}

// Int normalizes the separator, parses the value and truncates toward zero.
func (a Amount) Int() (int, error) {
	return ParseAmount(string(a))
}

// ParseAmount converts "12,5" or "12.5" to 12.
func ParseAmount(s string) (int, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, errors.New(ErrMsgEmptyAmount)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgMalformedAmount+": %w", s, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf(ErrMsgNegativeAmount, s)
	}
	if d.GreaterThan(decimal.NewFromInt(domain.MaxNutrientValue)) {
		return 0, fmt.Errorf(ErrMsgAmountTooLarge, s)
	}
	return int(d.IntPart()), nil
}
