package ubl

import (
	"github.com/shopspring/decimal"
)

// ID is a UBL identifier with optional code-list attributes
type ID struct {
	SchemeID       string `xml:"schemeID,attr,omitempty" json:"schemeID,omitempty"`
	SchemeAgencyID string `xml:"schemeAgencyID,attr,omitempty" json:"schemeAgencyID,omitempty"`
	Value          string `xml:",chardata" json:"value"`
}

// NewID creates a plain identifier without code-list attributes
func NewID(value string) ID {
	return ID{Value: value}
}

// NewSchemeID creates an identifier qualified by a code list and agency
func NewSchemeID(schemeID, agencyID, value string) ID {
	return ID{SchemeID: schemeID, SchemeAgencyID: agencyID, Value: value}
}

// Amount is a monetary amount in a named currency
type Amount struct {
	CurrencyID string          `xml:"currencyID,attr" json:"currencyID"`
	Value      decimal.Decimal `xml:",chardata" json:"value"`
}

// NewAmount creates an amount in the given currency
func NewAmount(currencyID string, value decimal.Decimal) Amount {
	return Amount{CurrencyID: currencyID, Value: value}
}

// Quantity is a quantity with its unit-of-measure code
type Quantity struct {
	UnitCode string          `xml:"unitCode,attr" json:"unitCode"`
	Value    decimal.Decimal `xml:",chardata" json:"value"`
}

// InvoiceTypeCode combines the UNTDID 1001 type code with the ZATCA
// subtype bitmap carried in the name attribute
type InvoiceTypeCode struct {
	Name  string `xml:"name,attr" json:"name"`
	Value int    `xml:",chardata" json:"value"`
}

// EmbeddedDocumentBinaryObject is an inline base64 attachment payload
type EmbeddedDocumentBinaryObject struct {
	MimeCode string `xml:"mimeCode,attr,omitempty" json:"mimeCode,omitempty"`
	Value    string `xml:",chardata" json:"value"`
}

// Attachment wraps an embedded binary object
type Attachment struct {
	EmbeddedDocumentBinaryObject EmbeddedDocumentBinaryObject `xml:"EmbeddedDocumentBinaryObject" json:"embeddedDocumentBinaryObject"`
}

// AdditionalDocumentReference is a document-level reference entry (ICV, PIH)
type AdditionalDocumentReference struct {
	ID         ID          `xml:"ID" json:"id"`
	UUID       string      `xml:"UUID,omitempty" json:"uuid,omitempty"`
	Attachment *Attachment `xml:"Attachment,omitempty" json:"attachment,omitempty"`
}

// BillingReference points at the prior invoice a credit or debit note amends
type BillingReference struct {
	InvoiceDocumentReference InvoiceDocumentReference `xml:"InvoiceDocumentReference" json:"invoiceDocumentReference"`
}

// InvoiceDocumentReference identifies a referenced invoice
type InvoiceDocumentReference struct {
	ID ID `xml:"ID" json:"id"`
}

// Country is a country identification block
type Country struct {
	IdentificationCode string `xml:"IdentificationCode" json:"identificationCode"`
}

// PostalAddress is a structured address
type PostalAddress struct {
	StreetName          string  `xml:"StreetName,omitempty" json:"streetName,omitempty"`
	BuildingNumber      string  `xml:"BuildingNumber,omitempty" json:"buildingNumber,omitempty"`
	CitySubdivisionName string  `xml:"CitySubdivisionName,omitempty" json:"citySubdivisionName,omitempty"`
	CityName            string  `xml:"CityName,omitempty" json:"cityName,omitempty"`
	PostalZone          string  `xml:"PostalZone,omitempty" json:"postalZone,omitempty"`
	Country             Country `xml:"Country" json:"country"`
}

// PartyIdentification is a scheme-qualified party identifier
type PartyIdentification struct {
	ID ID `xml:"ID" json:"id"`
}

// TaxScheme identifies a tax scheme (VAT)
type TaxScheme struct {
	ID ID `xml:"ID" json:"id"`
}

// PartyTaxScheme carries a party's tax registration
type PartyTaxScheme struct {
	CompanyID string    `xml:"CompanyID,omitempty" json:"companyID,omitempty"`
	TaxScheme TaxScheme `xml:"TaxScheme" json:"taxScheme"`
}

// PartyLegalEntity carries the registered legal name
type PartyLegalEntity struct {
	RegistrationName string `xml:"RegistrationName" json:"registrationName"`
}

// Party is a supplier or customer party block
type Party struct {
	PartyIdentification *PartyIdentification `xml:"PartyIdentification,omitempty" json:"partyIdentification,omitempty"`
	PostalAddress       PostalAddress        `xml:"PostalAddress" json:"postalAddress"`
	PartyTaxScheme      PartyTaxScheme       `xml:"PartyTaxScheme" json:"partyTaxScheme"`
	PartyLegalEntity    PartyLegalEntity     `xml:"PartyLegalEntity" json:"partyLegalEntity"`
}

// AccountingSupplierParty wraps the supplier party
type AccountingSupplierParty struct {
	Party Party `xml:"Party" json:"party"`
}

// AccountingCustomerParty wraps the customer party
type AccountingCustomerParty struct {
	Party Party `xml:"Party" json:"party"`
}

// Delivery carries the delivery date pair
type Delivery struct {
	ActualDeliveryDate string `xml:"ActualDeliveryDate,omitempty" json:"actualDeliveryDate,omitempty"`
	LatestDeliveryDate string `xml:"LatestDeliveryDate,omitempty" json:"latestDeliveryDate,omitempty"`
}

// PaymentMeans carries the payment method code and optional note
type PaymentMeans struct {
	PaymentMeansCode string `xml:"PaymentMeansCode" json:"paymentMeansCode"`
	InstructionNote  string `xml:"InstructionNote,omitempty" json:"instructionNote,omitempty"`
}

// TaxCategory is a subtotal-level VAT category with exemption details
type TaxCategory struct {
	ID                     ID              `xml:"ID" json:"id"`
	Percent                decimal.Decimal `xml:"Percent" json:"percent"`
	TaxExemptionReasonCode string          `xml:"TaxExemptionReasonCode,omitempty" json:"taxExemptionReasonCode,omitempty"`
	TaxExemptionReason     string          `xml:"TaxExemptionReason,omitempty" json:"taxExemptionReason,omitempty"`
	TaxScheme              TaxScheme       `xml:"TaxScheme" json:"taxScheme"`
}

// ClassifiedTaxCategory is a line-level VAT category
type ClassifiedTaxCategory struct {
	ID        ID              `xml:"ID" json:"id"`
	Percent   decimal.Decimal `xml:"Percent" json:"percent"`
	TaxScheme TaxScheme       `xml:"TaxScheme" json:"taxScheme"`
}

// TaxSubtotal is one (category, exemption) reporting bucket
type TaxSubtotal struct {
	TaxableAmount Amount      `xml:"TaxableAmount" json:"taxableAmount"`
	TaxAmount     Amount      `xml:"TaxAmount" json:"taxAmount"`
	TaxCategory   TaxCategory `xml:"TaxCategory" json:"taxCategory"`
}

// TaxTotal is a document-level tax total, optionally broken down by category
type TaxTotal struct {
	TaxAmount      Amount        `xml:"TaxAmount" json:"taxAmount"`
	RoundingAmount *Amount       `xml:"RoundingAmount,omitempty" json:"roundingAmount,omitempty"`
	TaxSubtotal    []TaxSubtotal `xml:"TaxSubtotal,omitempty" json:"taxSubtotal,omitempty"`
}

// Item is a line item description
type Item struct {
	Name                  string                 `xml:"Name" json:"name"`
	ClassifiedTaxCategory *ClassifiedTaxCategory `xml:"ClassifiedTaxCategory,omitempty" json:"classifiedTaxCategory,omitempty"`
}

// Price is a line unit price
type Price struct {
	PriceAmount Amount `xml:"PriceAmount" json:"priceAmount"`
}

// InvoiceLine is one output invoice line. Item-less lines carry only the ID
// and price (prepaid-amount form).
type InvoiceLine struct {
	ID                  ID        `xml:"ID" json:"id"`
	InvoicedQuantity    *Quantity `xml:"InvoicedQuantity,omitempty" json:"invoicedQuantity,omitempty"`
	LineExtensionAmount *Amount   `xml:"LineExtensionAmount,omitempty" json:"lineExtensionAmount,omitempty"`
	TaxTotal            *TaxTotal `xml:"TaxTotal,omitempty" json:"taxTotal,omitempty"`
	Item                *Item     `xml:"Item,omitempty" json:"item,omitempty"`
	Price               Price     `xml:"Price" json:"price"`
}

// LegalMonetaryTotal is the document-level monetary summary block
type LegalMonetaryTotal struct {
	LineExtensionAmount  Amount `xml:"LineExtensionAmount" json:"lineExtensionAmount"`
	TaxExclusiveAmount   Amount `xml:"TaxExclusiveAmount" json:"taxExclusiveAmount"`
	TaxInclusiveAmount   Amount `xml:"TaxInclusiveAmount" json:"taxInclusiveAmount"`
	AllowanceTotalAmount Amount `xml:"AllowanceTotalAmount" json:"allowanceTotalAmount"`
	PrepaidAmount        Amount `xml:"PrepaidAmount" json:"prepaidAmount"`
	PayableAmount        Amount `xml:"PayableAmount" json:"payableAmount"`
}
