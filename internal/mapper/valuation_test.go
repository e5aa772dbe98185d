package mapper_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rezonia/zatca-egs/internal/mapper"
	"github.com/rezonia/zatca-egs/internal/model"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func taxedLine(qty, unitPrice, rate string) model.Line {
	return model.Line{
		Qty:       d(qty),
		UnitPrice: d(unitPrice),
		TaxCode:   &model.TaxCode{Rate: d(rate)},
		Item:      &model.Item{Name: "Widget", UnitName: "pcs"},
	}
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, actual.Equal(d(expected)),
		"%s: got %s, want %s", field, actual.String(), expected)
}

func TestValueLine_TaxExclusive(t *testing.T) {
	line := taxedLine("2", "100", "15")

	lv := mapper.ValueLine(&line, false, false)

	assertDecimal(t, "2", lv.InvoicedQuantity, "InvoicedQuantity")
	assertDecimal(t, "100", lv.PriceAmount, "PriceAmount")
	assertDecimal(t, "200", lv.LineExtensionAmount, "LineExtensionAmount")
	assertDecimal(t, "30", lv.TaxAmount, "TaxAmount")
	assertDecimal(t, "230", lv.TaxInclusiveAmount(), "TaxInclusiveAmount")
}

func TestValueLine_TaxInclusive(t *testing.T) {
	// Gross 115 at 15% strips back to the same net price as the exclusive
	// case, so downstream totals are identical
	line := taxedLine("2", "115", "15")

	lv := mapper.ValueLine(&line, true, false)

	assertDecimal(t, "100", lv.PriceAmount, "PriceAmount")
	assertDecimal(t, "200", lv.LineExtensionAmount, "LineExtensionAmount")
	assertDecimal(t, "30", lv.TaxAmount, "TaxAmount")
}

func TestValueLine_Discount(t *testing.T) {
	line := taxedLine("2", "100", "15")
	line.DiscountAmount = d("20")

	// Discount flag off: discount ignored
	lv := mapper.ValueLine(&line, false, false)
	assertDecimal(t, "200", lv.LineExtensionAmount, "LineExtensionAmount without flag")

	// Discount flag on: absorbed into the unit price, (200-20)/2 = 90
	lv = mapper.ValueLine(&line, false, true)
	assertDecimal(t, "90", lv.PriceAmount, "PriceAmount")
	assertDecimal(t, "180", lv.LineExtensionAmount, "LineExtensionAmount")
	assertDecimal(t, "27", lv.TaxAmount, "TaxAmount")
}

func TestValueLine_ZeroQuantityDefaultsToOne(t *testing.T) {
	line := taxedLine("0", "50", "15")

	lv := mapper.ValueLine(&line, false, false)

	assertDecimal(t, "1", lv.InvoicedQuantity, "InvoicedQuantity")
	assertDecimal(t, "50", lv.LineExtensionAmount, "LineExtensionAmount")
	assertDecimal(t, "7.5", lv.TaxAmount, "TaxAmount")
}

func TestValueLine_QuantityRounding(t *testing.T) {
	line := taxedLine("1.23456", "10", "0")

	lv := mapper.ValueLine(&line, false, false)

	assertDecimal(t, "1.2346", lv.InvoicedQuantity, "InvoicedQuantity")
}

func TestValueLine_PrepaidLine(t *testing.T) {
	// Item-less line, no tax code: same formulas with an implicit zero rate
	line := model.Line{Qty: d("1"), UnitPrice: d("-500")}

	lv := mapper.ValueLine(&line, true, false)

	assertDecimal(t, "-500", lv.PriceAmount, "PriceAmount")
	assertDecimal(t, "-500", lv.LineExtensionAmount, "LineExtensionAmount")
	assertDecimal(t, "0", lv.TaxAmount, "TaxAmount")
}

func TestValueLine_TaxFormulaIndependentOfInclusiveFlag(t *testing.T) {
	// The flag only changes how PriceAmount is derived; the tax formula
	// over the derived extension is structurally the same
	tests := []struct {
		name              string
		unitPrice         string
		amountsIncludeTax bool
	}{
		{"exclusive", "100", false},
		{"inclusive", "115", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := taxedLine("3", tt.unitPrice, "15")
			lv := mapper.ValueLine(&line, tt.amountsIncludeTax, false)

			expectedTax := lv.LineExtensionAmount.Mul(d("15")).Div(d("100")).Round(2)
			assert.True(t, lv.TaxAmount.Equal(expectedTax),
				"tax %s, want %s", lv.TaxAmount, expectedTax)
		})
	}
}
