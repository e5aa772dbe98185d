package mapper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rezonia/zatca-egs/internal/model"
)

func TestLegalMonetaryTotal_SingleLine(t *testing.T) {
	doc := mapPayload(t, testPayload(taxedLine("2", "100", "15")), nil)

	totals := doc.LegalMonetaryTotal
	assertDecimal(t, "200", totals.LineExtensionAmount.Value, "LineExtensionAmount")
	assertDecimal(t, "200", totals.TaxExclusiveAmount.Value, "TaxExclusiveAmount")
	assertDecimal(t, "230", totals.TaxInclusiveAmount.Value, "TaxInclusiveAmount")
	assertDecimal(t, "0", totals.AllowanceTotalAmount.Value, "AllowanceTotalAmount")
	assertDecimal(t, "0", totals.PrepaidAmount.Value, "PrepaidAmount")
	assertDecimal(t, "230", totals.PayableAmount.Value, "PayableAmount")
}

func TestLegalMonetaryTotal_InclusivePricingRoundTrips(t *testing.T) {
	// Tax-inclusive pricing at 15% converts back to the same net, so the
	// totals match the exclusive case exactly
	data := testPayload(taxedLine("2", "115", "15"))
	data.ManagerInvoice.AmountsIncludeTax = true

	doc := mapPayload(t, data, nil)

	totals := doc.LegalMonetaryTotal
	assertDecimal(t, "200", totals.LineExtensionAmount.Value, "LineExtensionAmount")
	assertDecimal(t, "230", totals.TaxInclusiveAmount.Value, "TaxInclusiveAmount")
}

func TestLegalMonetaryTotal_PayableEqualsTaxInclusive(t *testing.T) {
	doc := mapPayload(t, testPayload(
		taxedLine("2", "100", "15"),
		taxedLine("3", "9.99", "5"),
		zeroRatedLine("50", "VATEX-SA-32"),
	), nil)

	totals := doc.LegalMonetaryTotal
	assert.True(t, totals.PayableAmount.Value.Equal(totals.TaxInclusiveAmount.Value),
		"payable %s, tax inclusive %s", totals.PayableAmount.Value, totals.TaxInclusiveAmount.Value)
}

func TestLegalMonetaryTotal_IncludesPrepaidLines(t *testing.T) {
	prepaid := model.Line{Qty: d("1"), UnitPrice: d("-50")}

	doc := mapPayload(t, testPayload(
		taxedLine("1", "100", "15"),
		prepaid,
	), nil)

	totals := doc.LegalMonetaryTotal
	assertDecimal(t, "50", totals.LineExtensionAmount.Value, "LineExtensionAmount")
	assertDecimal(t, "65", totals.TaxInclusiveAmount.Value, "TaxInclusiveAmount")
	assertDecimal(t, "65", totals.PayableAmount.Value, "PayableAmount")
}

func TestLegalMonetaryTotal_ReconcilesWithTaxBreakdown(t *testing.T) {
	// Tax portion of the inclusive total equals the summed subtotal taxes
	doc := mapPayload(t, testPayload(
		taxedLine("2", "100", "15"),
		taxedLine("7", "3.33", "5"),
		zeroRatedLine("50", "VATEX-SA-EDU"),
	), nil)

	taxPortion := doc.LegalMonetaryTotal.TaxInclusiveAmount.Value.
		Sub(doc.LegalMonetaryTotal.LineExtensionAmount.Value)

	summed := d("0")
	for _, sub := range doc.TaxTotal[1].TaxSubtotal {
		summed = summed.Add(sub.TaxAmount.Value)
	}

	assert.True(t, taxPortion.Equal(summed),
		"tax portion %s, summed subtotals %s", taxPortion, summed)
}
