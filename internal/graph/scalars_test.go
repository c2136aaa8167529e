package graph

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDecimalUnmarshalGraphQL(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		want    string
		wantErr bool
	}{
		{name: "string", input: "2500.50", want: "2500.5"},
		{name: "float", input: float64(500), want: "500"},
		{name: "int32", input: int32(42), want: "42"},
		{name: "int", input: int(7), want: "7"},
		{name: "garbage string", input: "abc", wantErr: true},
		{name: "bool", input: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Decimal
			err := d.UnmarshalGraphQL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalGraphQL(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && d.Decimal.String() != tt.want {
				t.Errorf("value = %s, want %s", d.Decimal.String(), tt.want)
			}
		})
	}
}

func TestDecimalMarshalJSON(t *testing.T) {
	d := NewDecimal(decimal.RequireFromString("4500.00"))
	data, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if string(data) != `"4500"` {
		t.Errorf("MarshalJSON() = %s, want \"4500\"", data)
	}
}

func TestDecimalImplementsScalar(t *testing.T) {
	var d Decimal
	if !d.ImplementsGraphQLType("Decimal") {
		t.Error("ImplementsGraphQLType(Decimal) = false")
	}
	if d.ImplementsGraphQLType("Time") {
		t.Error("ImplementsGraphQLType(Time) = true")
	}
}
