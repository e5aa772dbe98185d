package mapper

import (
	"github.com/shopspring/decimal"

	dec "github.com/rezonia/zatca-egs/internal/decimal"
	"github.com/rezonia/zatca-egs/internal/model"
)

// LineValue holds the monetary figures derived from one source line. It is a
// pure function of the line plus the document-level pricing flags, so the
// same line always values to the same figures.
type LineValue struct {
	// InvoicedQuantity is the quantity rounded to 4 places, defaulted to 1
	// when the source records zero
	InvoicedQuantity decimal.Decimal

	// UnitPrice is the per-unit price net of any line discount, before the
	// tax-inclusive adjustment
	UnitPrice decimal.Decimal

	// PriceAmount is the unit price net of tax, rounded to 4 places
	PriceAmount decimal.Decimal

	// LineExtensionAmount is quantity times price, rounded to 2 places
	LineExtensionAmount decimal.Decimal

	// TaxAmount is the line extension times the rate, rounded to 2 places
	TaxAmount decimal.Decimal
}

// TaxInclusiveAmount is the line's gross value
func (v LineValue) TaxInclusiveAmount() decimal.Decimal {
	return v.LineExtensionAmount.Add(v.TaxAmount)
}

// ValueLine derives the monetary figures for one source line.
//
// The derivation order is fixed; rounding happens only where stated:
//
//	quantity  = round4(qty or 1)
//	discount  = discountAmount when the document discount flag is set, else 0
//	unitPrice = (rawUnitPrice*quantity - discount) / quantity
//	price     = round4(unitPrice / (1+rate/100) when amounts include tax, else unitPrice)
//	extension = round2(quantity * price)
//	tax       = round2(extension * rate/100)
//
// Item-less (prepaid) lines carry no tax code, so their rate is zero and the
// same formulas apply. Normalizing the quantity before any division is the
// guard that keeps the two divisions total.
func ValueLine(line *model.Line, amountsIncludeTax, hasDiscount bool) LineValue {
	rate := line.Rate()

	qty := line.Qty
	if qty.IsZero() {
		qty = dec.One
	}
	qty = dec.Round4(qty)

	discount := dec.Zero
	if hasDiscount {
		discount = line.DiscountAmount
	}

	unitPrice := line.UnitPrice.Mul(qty).Sub(discount).Div(qty)

	price := unitPrice
	if amountsIncludeTax {
		price = dec.NetOfTax(unitPrice, rate)
	}
	price = dec.Round4(price)

	extension := dec.Round2(qty.Mul(price))
	tax := dec.TaxOf(extension, rate)

	return LineValue{
		InvoicedQuantity:    qty,
		UnitPrice:           unitPrice,
		PriceAmount:         price,
		LineExtensionAmount: extension,
		TaxAmount:           tax,
	}
}
