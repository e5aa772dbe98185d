// Package zatcalib provides a public API for mapping Manager bookkeeping
// invoices to ZATCA-compliant UBL invoice documents.
//
// The package exposes the relay payload model, the mapping entry point and
// the document types ready for a downstream signer/submitter.
//
// Example usage:
//
//	doc, err := zatcalib.MapInvoice(&payload)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(doc.LegalMonetaryTotal.PayableAmount.Value)
package zatcalib

import (
	"github.com/rezonia/zatca-egs/internal/mapper"
	"github.com/rezonia/zatca-egs/internal/model"
	"github.com/rezonia/zatca-egs/internal/ubl"
)

// Re-export core types for public API
type (
	RelayData       = model.RelayData
	ManagerInvoice  = model.ManagerInvoice
	Line            = model.Line
	Item            = model.Item
	TaxCode         = model.TaxCode
	CertificateInfo = model.CertificateInfo
	PartyTaxInfo    = model.PartyTaxInfo
	FieldResolver   = model.FieldResolver

	Invoice            = ubl.Invoice
	InvoiceLine        = ubl.InvoiceLine
	TaxTotal           = ubl.TaxTotal
	TaxSubtotal        = ubl.TaxSubtotal
	LegalMonetaryTotal = ubl.LegalMonetaryTotal

	VATInfo = mapper.VATInfo
	Option  = mapper.Option
)

// Re-export error types
type (
	ClassificationError = model.ClassificationError
	MappingError        = model.MappingError
)

// Re-export invoice type codes
const (
	TypeStandardInvoice = mapper.TypeStandardInvoice
	TypeDebitNote       = mapper.TypeDebitNote
	TypeCreditNote      = mapper.TypeCreditNote
)

// Re-export mapper options
var (
	WithFieldResolver = mapper.WithFieldResolver
	WithCertificate   = mapper.WithCertificate
)

// MapInvoice maps one relay payload to an invoice document
func MapInvoice(data *RelayData, opts ...Option) (*Invoice, error) {
	m, err := mapper.New(data, opts...)
	if err != nil {
		return nil, err
	}
	return m.Invoice()
}

// ClassifyVAT resolves a zero-rate tax-category key to its VAT
// classification
func ClassifyVAT(key string) (VATInfo, error) {
	return mapper.ClassifyVAT(key)
}
