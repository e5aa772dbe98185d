package mapper

import (
	dec "github.com/rezonia/zatca-egs/internal/decimal"
	"github.com/rezonia/zatca-egs/internal/ubl"
)

// legalMonetaryTotal folds every line, item-less prepaid lines included,
// into the document-level monetary summary. Sums run over already-rounded
// line values and are not re-rounded. Discounts are absorbed into unit
// prices, so the allowance total is always zero; the payable amount equals
// the tax-inclusive amount.
func (m *Mapper) legalMonetaryTotal() ubl.LegalMonetaryTotal {
	inv := &m.data.ManagerInvoice

	lineExtension := dec.Zero
	taxInclusive := dec.Zero

	for i := range inv.Lines {
		lv := ValueLine(&inv.Lines[i], inv.AmountsIncludeTax, inv.Discount)
		lineExtension = lineExtension.Add(lv.LineExtensionAmount)
		taxInclusive = taxInclusive.Add(lv.TaxInclusiveAmount())
	}

	return ubl.LegalMonetaryTotal{
		LineExtensionAmount:  ubl.NewAmount(m.currency, lineExtension),
		TaxExclusiveAmount:   ubl.NewAmount(m.currency, lineExtension),
		TaxInclusiveAmount:   ubl.NewAmount(m.currency, taxInclusive),
		AllowanceTotalAmount: ubl.NewAmount(m.currency, dec.Zero),
		PrepaidAmount:        ubl.NewAmount(m.currency, dec.Zero),
		PayableAmount:        ubl.NewAmount(m.currency, taxInclusive),
	}
}
