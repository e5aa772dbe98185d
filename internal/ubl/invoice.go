// Package ubl holds the UBL 2.1 shaped invoice document produced by the
// mapper, the form ZATCA's reporting API expects. The structs carry both XML
// and JSON tags so a downstream signer can serialize either way; this package
// performs no signing or submission.
package ubl

import "encoding/xml"

// UBL 2.1 invoice namespaces
const (
	NamespaceInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	NamespaceCAC     = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	NamespaceCBC     = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
)

// Invoice is the complete output document
type Invoice struct {
	XMLName xml.Name `xml:"Invoice" json:"-"`

	ProfileID            string          `xml:"ProfileID" json:"profileID"`
	ID                   ID              `xml:"ID" json:"id"`
	UUID                 string          `xml:"UUID" json:"uuid"`
	IssueDate            string          `xml:"IssueDate" json:"issueDate"`
	IssueTime            string          `xml:"IssueTime" json:"issueTime"`
	InvoiceTypeCode      InvoiceTypeCode `xml:"InvoiceTypeCode" json:"invoiceTypeCode"`
	DocumentCurrencyCode string          `xml:"DocumentCurrencyCode" json:"documentCurrencyCode"`
	TaxCurrencyCode      string          `xml:"TaxCurrencyCode" json:"taxCurrencyCode"`

	BillingReference            *BillingReference             `xml:"BillingReference,omitempty" json:"billingReference,omitempty"`
	AdditionalDocumentReference []AdditionalDocumentReference `xml:"AdditionalDocumentReference" json:"additionalDocumentReference"`

	AccountingSupplierParty AccountingSupplierParty `xml:"AccountingSupplierParty" json:"accountingSupplierParty"`
	AccountingCustomerParty AccountingCustomerParty `xml:"AccountingCustomerParty" json:"accountingCustomerParty"`

	Delivery     Delivery     `xml:"Delivery" json:"delivery"`
	PaymentMeans PaymentMeans `xml:"PaymentMeans" json:"paymentMeans"`

	InvoiceLine        []InvoiceLine      `xml:"InvoiceLine" json:"invoiceLine"`
	TaxTotal           []TaxTotal         `xml:"TaxTotal" json:"taxTotal"`
	LegalMonetaryTotal LegalMonetaryTotal `xml:"LegalMonetaryTotal" json:"legalMonetaryTotal"`
}
