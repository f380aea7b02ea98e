package pricing

import (
	"github.com/shopspring/decimal"
)

// listPrices maps each catalog model to its factory list price. Consulted only
// when a bike was received before purchase prices were tracked and therefore
// carries a zero PurchasePrice.
var listPrices = map[string]decimal.Decimal{
	"CD70":      decimal.NewFromInt(157900),
	"DREAM":     decimal.NewFromInt(168500),
	"PRIDOR":    decimal.NewFromInt(208500),
	"CG 125":    decimal.NewFromInt(234900),
	"CG125S.SE": decimal.NewFromInt(282900),
	"CB125F.SE": decimal.NewFromInt(396900),
	"CB150F":    decimal.NewFromInt(493900),
}

// Models returns the catalog in a stable order.
func Models() []string {
	return []string{"CD70", "DREAM", "PRIDOR", "CG 125", "CG125S.SE", "CB125F.SE", "CB150F"}
}

// KnownModel reports whether model is in the catalog. Delivery-order intake
// rejects models that are not.
func KnownModel(model string) bool {
	_, ok := listPrices[model]
	return ok
}

// CostBasis returns the cost to use for profit calculations: the recorded
// purchase price, or the list price when the recorded price is zero, or zero
// when the model is unknown. The zero fallback means profit equals the full
// sale price for such bikes; reports inherit that rather than guessing.
func CostBasis(model string, purchasePrice decimal.Decimal) decimal.Decimal {
	if purchasePrice.IsPositive() {
		return purchasePrice
	}
	if price, ok := listPrices[model]; ok {
		return price
	}
	return decimal.Zero
}
