// Package model defines the source-side data structures carried by a relay
// payload from the Manager bookkeeping application, plus the typed errors
// shared across the mapping pipeline.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ManagerInvoice is the source bookkeeping invoice record. It is read-only
// input: the mapper never mutates it.
type ManagerInvoice struct {
	Reference         string          `json:"Reference"`
	IssueDate         time.Time       `json:"IssueDate"`
	DueDateDate       time.Time       `json:"DueDateDate"`
	InvoiceParty      *InvoiceParty   `json:"InvoiceParty,omitempty"`
	RefInvoice        *RefInvoice     `json:"RefInvoice,omitempty"`
	AmountsIncludeTax bool            `json:"AmountsIncludeTax"`
	Discount          bool            `json:"Discount"`
	ExchangeRate      decimal.Decimal `json:"ExchangeRate"`
	Lines             []Line          `json:"Lines"`
}

// InvoiceParty carries the counterparty settings that matter to mapping,
// currently only the billing currency.
type InvoiceParty struct {
	Currency *Currency `json:"Currency,omitempty"`
}

// Currency is the source currency record
type Currency struct {
	Code string `json:"Code"`
}

// RefInvoice references a prior invoice (credit/debit note target)
type RefInvoice struct {
	Reference string `json:"Reference"`
}

// Line is one source invoice line
type Line struct {
	Qty            decimal.Decimal `json:"Qty"`
	UnitPrice      decimal.Decimal `json:"UnitPrice"`
	DiscountAmount decimal.Decimal `json:"DiscountAmount"`
	TaxCode        *TaxCode        `json:"TaxCode,omitempty"`
	Item           *Item           `json:"Item,omitempty"`
}

// Rate returns the line's tax rate percentage, zero when no tax code is set
func (l *Line) Rate() decimal.Decimal {
	if l.TaxCode == nil {
		return decimal.Zero
	}
	return l.TaxCode.Rate
}

// TaxCode is the source tax code attached to a line
type TaxCode struct {
	Rate decimal.Decimal `json:"Rate"`
}

// Item is the source item referenced by a line. Lines without an item are
// prepaid-amount lines.
type Item struct {
	Name         string       `json:"Name"`
	ItemName     string       `json:"ItemName"`
	UnitName     string       `json:"UnitName"`
	CustomFields CustomFields `json:"CustomFields2"`
}

// DisplayName returns the item name preferring the explicit ItemName
func (i *Item) DisplayName() string {
	if i.ItemName != "" {
		return i.ItemName
	}
	return i.Name
}

// TaxCategoryKey returns the opaque tax-category key stored in the item's
// custom fields, used to classify zero-rated lines
func (i *Item) TaxCategoryKey() (string, bool) {
	v, ok := i.CustomFields.Strings[FieldItemTaxCategory]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// CustomFields mirrors the CustomFields2 block on source objects
type CustomFields struct {
	Strings map[string]string `json:"Strings,omitempty"`
}
