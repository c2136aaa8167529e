package graph

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Decimal is the money scalar. It travels as a string on the wire to
// keep exact values; numeric literals are accepted on input for
// convenience.
type Decimal struct {
	decimal.Decimal
}

// NewDecimal wraps a decimal value for the API.
func NewDecimal(d decimal.Decimal) Decimal {
	return Decimal{Decimal: d}
}

// ImplementsGraphQLType marks Decimal as the "Decimal" scalar.
func (Decimal) ImplementsGraphQLType(name string) bool {
	return name == "Decimal"
}

// UnmarshalGraphQL parses a Decimal from a query literal or variable.
func (d *Decimal) UnmarshalGraphQL(input interface{}) error {
	switch v := input.(type) {
	case string:
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("invalid decimal value %q", v)
		}
		d.Decimal = parsed
	case float64:
		d.Decimal = decimal.NewFromFloat(v)
	case int32:
		d.Decimal = decimal.NewFromInt32(v)
	case int:
		d.Decimal = decimal.NewFromInt(int64(v))
	default:
		return fmt.Errorf("cannot unmarshal %T into Decimal", input)
	}
	return nil
}

// MarshalJSON emits the value as a JSON string.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.Decimal.String())), nil
}
