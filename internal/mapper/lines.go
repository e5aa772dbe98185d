package mapper

import (
	"strconv"

	"github.com/rezonia/zatca-egs/internal/ubl"
)

// invoiceLines builds the output line records. The ID counter increments
// once per source line in source order, whether or not the line carries an
// item, so line IDs stay aligned with source positions.
func (m *Mapper) invoiceLines() ([]ubl.InvoiceLine, error) {
	inv := &m.data.ManagerInvoice
	out := make([]ubl.InvoiceLine, 0, len(inv.Lines))

	for i := range inv.Lines {
		line := &inv.Lines[i]
		lv := ValueLine(line, inv.AmountsIncludeTax, inv.Discount)

		il := ubl.InvoiceLine{
			ID:    ubl.NewID(strconv.Itoa(i + 1)),
			Price: ubl.Price{PriceAmount: ubl.NewAmount(m.currency, lv.PriceAmount)},
		}

		if line.Item == nil {
			// prepaid-amount line: ID and price only
			out = append(out, il)
			continue
		}

		vatInfo, err := classifyLine(line)
		if err != nil {
			return nil, err
		}

		ext := ubl.NewAmount(m.currency, lv.LineExtensionAmount)
		rounding := ubl.NewAmount(m.currency, lv.TaxInclusiveAmount())

		il.InvoicedQuantity = &ubl.Quantity{UnitCode: line.Item.UnitName, Value: lv.InvoicedQuantity}
		il.LineExtensionAmount = &ext
		il.Item = &ubl.Item{
			Name: line.Item.DisplayName(),
			ClassifiedTaxCategory: &ubl.ClassifiedTaxCategory{
				ID:        taxCategoryID(vatInfo.CategoryID),
				Percent:   line.Rate(),
				TaxScheme: vatScheme(),
			},
		}
		il.TaxTotal = &ubl.TaxTotal{
			TaxAmount:      ubl.NewAmount(m.currency, lv.TaxAmount),
			RoundingAmount: &rounding,
		}

		out = append(out, il)
	}

	return out, nil
}
