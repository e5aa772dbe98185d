package mapper

import (
	"github.com/shopspring/decimal"

	dec "github.com/rezonia/zatca-egs/internal/decimal"
	"github.com/rezonia/zatca-egs/internal/ubl"
)

// categoryKey groups tax subtotals by VAT category and exemption reason.
// A composite key rules out separator collisions between category and code.
type categoryKey struct {
	CategoryID       string
	ExemptReasonCode string
}

// categorySummary accumulates taxable and tax amounts for one key. Rate and
// exemption fields are fixed at first insertion: later lines sharing the key
// add their amounts but never overwrite the classification fields, even if
// their rate disagrees.
type categorySummary struct {
	TaxableAmount    decimal.Decimal
	TaxAmount        decimal.Decimal
	Rate             decimal.Decimal
	ExemptReasonCode string
	ExemptReason     string
}

// taxTotals folds all tax-coded lines into the two-entry tax total report:
// entry one carries the grand tax amount converted into the tax reporting
// currency, entry two carries the unconverted amount with the per-category
// subtotal breakdown. Lines without a tax code are excluded entirely.
func (m *Mapper) taxTotals() ([]ubl.TaxTotal, error) {
	inv := &m.data.ManagerInvoice

	totalTax := dec.Zero
	summaries := make(map[categoryKey]*categorySummary)
	var order []categoryKey

	for i := range inv.Lines {
		line := &inv.Lines[i]
		if line.TaxCode == nil {
			continue
		}

		lv := ValueLine(line, inv.AmountsIncludeTax, inv.Discount)
		totalTax = totalTax.Add(lv.TaxAmount)

		vatInfo, err := classifyLine(line)
		if err != nil {
			return nil, err
		}

		rate := line.Rate()
		reasonCode := ""
		if rate.IsZero() {
			reasonCode = vatInfo.ExemptReasonCode
		}

		key := categoryKey{CategoryID: vatInfo.CategoryID, ExemptReasonCode: reasonCode}
		sum, ok := summaries[key]
		if !ok {
			sum = &categorySummary{
				Rate:             rate,
				ExemptReasonCode: reasonCode,
				ExemptReason:     vatInfo.ExemptReason,
			}
			summaries[key] = sum
			order = append(order, key)
		}
		sum.TaxableAmount = sum.TaxableAmount.Add(lv.LineExtensionAmount)
		sum.TaxAmount = sum.TaxAmount.Add(lv.TaxAmount)
	}

	exchangeRate := inv.ExchangeRate
	if exchangeRate.IsZero() {
		exchangeRate = DefaultExchangeRate
	}

	totals := make([]ubl.TaxTotal, 0, 2)

	totals = append(totals, ubl.TaxTotal{
		TaxAmount: ubl.NewAmount(TaxCurrency, totalTax.Mul(exchangeRate)),
	})

	subtotals := make([]ubl.TaxSubtotal, 0, len(order))
	for _, key := range order {
		sum := summaries[key]

		category := ubl.TaxCategory{
			ID:        taxCategoryID(key.CategoryID),
			Percent:   sum.Rate,
			TaxScheme: vatScheme(),
		}
		if sum.Rate.IsZero() {
			category.TaxExemptionReasonCode = sum.ExemptReasonCode
			category.TaxExemptionReason = sum.ExemptReason
		}

		subtotals = append(subtotals, ubl.TaxSubtotal{
			TaxableAmount: ubl.NewAmount(m.currency, sum.TaxableAmount),
			TaxAmount:     ubl.NewAmount(m.currency, sum.TaxAmount),
			TaxCategory:   category,
		})
	}

	totals = append(totals, ubl.TaxTotal{
		TaxAmount:   ubl.NewAmount(m.currency, totalTax),
		TaxSubtotal: subtotals,
	})

	return totals, nil
}
