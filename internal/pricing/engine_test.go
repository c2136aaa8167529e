package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"naija-aroma/internal/errs"
	"naija-aroma/internal/models"
)

func testCatalog() map[string]*models.MenuItem {
	return map[string]*models.MenuItem{
		"jollof": {ID: "jollof", Name: "Jollof Rice", Price: decimal.NewFromInt(2000), IsAvailable: true},
		"suya":   {ID: "suya", Name: "Suya Platter", Price: decimal.NewFromInt(1500), IsAvailable: true},
		"egusi":  {ID: "egusi", Name: "Egusi Soup", Price: decimal.NewFromInt(3000), IsAvailable: true},
		"moimoi": {ID: "moimoi", Name: "Moi Moi", Price: decimal.NewFromInt(500), IsAvailable: false},
	}
}

func newTestEngine() *Engine {
	return NewEngine(decimal.NewFromInt(5000), decimal.NewFromInt(500))
}

func TestComputeOrderTotal(t *testing.T) {
	tests := []struct {
		name      string
		lines     []LineRequest
		orderType models.OrderType
		wantTotal string
		wantFee   string
	}{
		{
			name:      "delivery below threshold pays flat fee",
			lines:     []LineRequest{{MenuItemID: "jollof", Quantity: 2}},
			orderType: models.OrderTypeDelivery,
			wantTotal: "4500",
			wantFee:   "500",
		},
		{
			name:      "delivery at threshold ships free",
			lines:     []LineRequest{{MenuItemID: "jollof", Quantity: 1}, {MenuItemID: "egusi", Quantity: 1}},
			orderType: models.OrderTypeDelivery,
			wantTotal: "5000",
			wantFee:   "0",
		},
		{
			name:      "delivery above threshold ships free",
			lines:     []LineRequest{{MenuItemID: "egusi", Quantity: 2}},
			orderType: models.OrderTypeDelivery,
			wantTotal: "6000",
			wantFee:   "0",
		},
		{
			name:      "multi line subtotal below threshold",
			lines:     []LineRequest{{MenuItemID: "jollof", Quantity: 1}, {MenuItemID: "suya", Quantity: 1}},
			orderType: models.OrderTypeDelivery,
			wantTotal: "4000",
			wantFee:   "500",
		},
		{
			name:      "pickup never pays a fee",
			lines:     []LineRequest{{MenuItemID: "jollof", Quantity: 1}},
			orderType: models.OrderTypePickup,
			wantTotal: "2000",
			wantFee:   "0",
		},
	}

	engine := newTestEngine()
	catalog := testCatalog()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := engine.ComputeOrderTotal(tt.lines, catalog, tt.orderType)
			if err != nil {
				t.Fatalf("ComputeOrderTotal() error = %v", err)
			}
			if got := quote.DeliveryFee.String(); got != tt.wantFee {
				t.Errorf("DeliveryFee = %s, want %s", got, tt.wantFee)
			}
			if got := quote.Total.String(); got != tt.wantTotal {
				t.Errorf("Total = %s, want %s", got, tt.wantTotal)
			}
			if len(quote.Lines) != len(tt.lines) {
				t.Errorf("len(Lines) = %d, want %d", len(quote.Lines), len(tt.lines))
			}
		})
	}
}

func TestComputeOrderTotal_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		lines []LineRequest
	}{
		{
			name:  "unknown menu item",
			lines: []LineRequest{{MenuItemID: "missing", Quantity: 1}},
		},
		{
			name:  "unavailable menu item",
			lines: []LineRequest{{MenuItemID: "moimoi", Quantity: 1}},
		},
		{
			name:  "unavailable item alongside valid ones",
			lines: []LineRequest{{MenuItemID: "jollof", Quantity: 1}, {MenuItemID: "moimoi", Quantity: 1}},
		},
		{
			name:  "zero quantity",
			lines: []LineRequest{{MenuItemID: "jollof", Quantity: 0}},
		},
	}

	engine := newTestEngine()
	catalog := testCatalog()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := engine.ComputeOrderTotal(tt.lines, catalog, models.OrderTypeDelivery)
			if err == nil {
				t.Fatalf("ComputeOrderTotal() expected error, got quote %+v", quote)
			}
			if !errs.Is(err, errs.CodeBadUserInput) {
				t.Errorf("error code = %s, want %s", errs.CodeOf(err), errs.CodeBadUserInput)
			}
		})
	}
}

func TestComputeOrderTotal_SnapshotsPrice(t *testing.T) {
	engine := newTestEngine()
	catalog := testCatalog()

	quote, err := engine.ComputeOrderTotal([]LineRequest{{MenuItemID: "suya", Quantity: 3}}, catalog, models.OrderTypePickup)
	if err != nil {
		t.Fatalf("ComputeOrderTotal() error = %v", err)
	}

	line := quote.Lines[0]
	if line.Price.String() != "1500" {
		t.Errorf("line price = %s, want 1500", line.Price.String())
	}
	if line.LineTotal.String() != "4500" {
		t.Errorf("line total = %s, want 4500", line.LineTotal.String())
	}
}
