package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Price is either a non-negative amount or the sentinel "free".
// It marshals to a JSON number, or to the string "free".
type Price struct {
	Amount float64
	Free   bool
}

// FreePrice returns the "free" price sentinel.
func FreePrice() Price {
	return Price{Free: true}
}

// PriceOf returns a paid price with the given amount.
func PriceOf(amount float64) Price {
	return Price{Amount: amount}
}

// MarshalJSON implements json.Marshaler.
func (p Price) MarshalJSON() ([]byte, error) {
	if p.Free {
		return json.Marshal("free")
	}
	return json.Marshal(p.Amount)
}

// UnmarshalJSON implements json.Unmarshaler. Accepts a number or "free".
func (p *Price) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "free" {
			return fmt.Errorf("invalid price %q", s)
		}
		*p = Price{Free: true}
		return nil
	}
	var amount float64
	if err := json.Unmarshal(data, &amount); err != nil {
		return fmt.Errorf("invalid price: %w", err)
	}
	if amount < 0 {
		return fmt.Errorf("price must be non-negative, got %v", amount)
	}
	*p = Price{Amount: amount}
	return nil
}

// SchemaValue returns the price as used in schema.org offers: "0" for free,
// otherwise the decimal amount.
func (p Price) SchemaValue() string {
	if p.Free {
		return "0"
	}
	return strconv.FormatFloat(p.Amount, 'f', -1, 64)
}
