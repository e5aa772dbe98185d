// Package mapper converts a relay payload from the source bookkeeping
// application into a ZATCA-compliant UBL invoice document: per-line monetary
// derivation, VAT classification, tax subtotal aggregation and the legal
// monetary totals, merged with the party and reference metadata the payload
// carries. The mapping is a pure in-memory transform; one Mapper maps one
// payload, and independent payloads can be mapped concurrently.
package mapper

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rezonia/zatca-egs/internal/customfield"
	"github.com/rezonia/zatca-egs/internal/model"
	"github.com/rezonia/zatca-egs/internal/relay"
	"github.com/rezonia/zatca-egs/internal/ubl"
)

// Named defaults applied at the mapping boundary
const (
	// ProfileReporting is the ZATCA reporting profile identifier
	ProfileReporting = "reporting:1.0"

	// DefaultCurrency is used when the invoice party carries no currency
	DefaultCurrency = "SAR"

	// TaxCurrency is the fixed tax reporting currency
	TaxCurrency = "SAR"

	// DefaultInvoiceSubtype is the subtype bitmap used when the custom
	// field is absent
	DefaultInvoiceSubtype = "0200000"

	// DefaultPaymentMeansCode is UNTDID 4461 code 30, credit transfer
	DefaultPaymentMeansCode = 30

	// SandboxCompanyID substitutes for the real company tax ID on every
	// environment except production
	SandboxCompanyID = "5900017383"

	// DeliveryCutoffYear: due dates from years before the ZATCA phase-2
	// waves are replaced by the issue date
	DeliveryCutoffYear = 2024

	midnightTime = "00:00:00"
	dateLayout   = "2006-01-02"
)

// DefaultExchangeRate is used when the source exchange rate is zero
var DefaultExchangeRate = decimal.NewFromInt(1)

// UNTDID 1001 invoice type codes accepted by ZATCA
const (
	TypeStandardInvoice = 388
	TypeDebitNote       = 383
	TypeCreditNote      = 381
)

// Code lists qualifying category and scheme identifiers
const (
	codeListCategory  = "UN/ECE 5305"
	codeListTaxScheme = "UN/ECE 5153"
	codeListAgency    = "6"
	taxSchemeVAT      = "VAT"
)

// natExemptReasonCodes are the exemption reasons that make the buyer's
// national identification mandatory (BT-46-1 = NAT)
var natExemptReasonCodes = map[string]bool{
	"VATEX-SA-EDU": true,
	"VATEX-SA-HEA": true,
}

// Mapper maps one relay payload to an invoice document
type Mapper struct {
	data     *model.RelayData
	cert     *model.CertificateInfo
	fields   model.FieldResolver
	currency string
}

// Option configures a Mapper
type Option func(*Mapper)

// WithFieldResolver overrides the custom-field resolver. By default fields
// are resolved from the payload's raw invoice JSON.
func WithFieldResolver(r model.FieldResolver) Option {
	return func(m *Mapper) {
		m.fields = r
	}
}

// WithCertificate supplies the certificate info directly, skipping the
// payload blob decode
func WithCertificate(cert *model.CertificateInfo) Option {
	return func(m *Mapper) {
		m.cert = cert
	}
}

// New creates a mapper for one relay payload
func New(data *model.RelayData, opts ...Option) (*Mapper, error) {
	m := &Mapper{data: data}

	for _, opt := range opts {
		opt(m)
	}

	if m.cert == nil {
		switch {
		case data.CertInfo != nil:
			m.cert = data.CertInfo
		case data.CertInfoString != "":
			cert, err := relay.DecodeCertificate(data.CertInfoString)
			if err != nil {
				return nil, err
			}
			m.cert = cert
		default:
			return nil, model.NewMappingError("CertInfo", "relay payload carries no certificate info", nil)
		}
	}

	if m.fields == nil {
		m.fields = customfield.NewResolver(data.InvoiceJSON)
	}

	m.currency = DefaultCurrency
	if p := data.ManagerInvoice.InvoiceParty; p != nil && p.Currency != nil && p.Currency.Code != "" {
		m.currency = p.Currency.Code
	}

	return m, nil
}

// Invoice assembles the output document. The computation is deterministic:
// mapping the same payload twice yields identical documents, except that a
// missing ZatcaUUID is freshly generated each time.
func (m *Mapper) Invoice() (*ubl.Invoice, error) {
	inv := &m.data.ManagerInvoice

	issueDate, issueTime := splitTimestamp(m.data.DateCreated, inv.IssueDate)

	doc := &ubl.Invoice{
		ProfileID: ProfileReporting,
		ID:        ubl.NewID(inv.Reference),
		UUID:      m.documentUUID(),
		IssueDate: issueDate,
		IssueTime: issueTime,
		InvoiceTypeCode: ubl.InvoiceTypeCode{
			Name:  m.invoiceSubtype(),
			Value: invoiceTypeCode(m.data.Referrer),
		},
		DocumentCurrencyCode:        m.currency,
		TaxCurrencyCode:             TaxCurrency,
		AdditionalDocumentReference: m.additionalDocumentReferences(),
		AccountingSupplierParty:     m.supplierParty(),
		AccountingCustomerParty:     m.customerParty(),
		Delivery:                    m.delivery(),
		PaymentMeans:                m.paymentMeans(),
	}

	if ref := inv.RefInvoice; ref != nil && ref.Reference != "" {
		doc.BillingReference = &ubl.BillingReference{
			InvoiceDocumentReference: ubl.InvoiceDocumentReference{ID: ubl.NewID(ref.Reference)},
		}
	}

	lines, err := m.invoiceLines()
	if err != nil {
		return nil, err
	}
	doc.InvoiceLine = lines

	taxTotals, err := m.taxTotals()
	if err != nil {
		return nil, err
	}
	doc.TaxTotal = taxTotals

	doc.LegalMonetaryTotal = m.legalMonetaryTotal()

	if requiresNationalID(taxTotals) {
		doc.AccountingCustomerParty.Party.PartyIdentification = &ubl.PartyIdentification{
			ID: ubl.ID{
				SchemeID: m.data.PartyInfo.IdentificationScheme,
				Value:    m.data.PartyInfo.IdentificationID,
			},
		}
	}

	return doc, nil
}

// invoiceTypeCode classifies the document from the relay referrer
func invoiceTypeCode(referrer string) int {
	switch {
	case strings.Contains(referrer, "debit-note"):
		return TypeDebitNote
	case strings.Contains(referrer, "credit-note"):
		return TypeCreditNote
	default:
		return TypeStandardInvoice
	}
}

func (m *Mapper) invoiceSubtype() string {
	if v, ok := m.fields.Lookup(model.FieldInvoiceSubType, model.FieldScopeRefInvoice); ok && v != "" {
		return v
	}
	return DefaultInvoiceSubtype
}

// documentUUID returns the relayed ZATCA UUID, generating one only when the
// payload carries none
func (m *Mapper) documentUUID() string {
	if m.data.ZatcaUUID != "" {
		return m.data.ZatcaUUID
	}
	return uuid.NewString()
}

// splitTimestamp splits the combined "date time" creation stamp. A stamp
// without a space is taken whole as the date with a midnight time; an empty
// stamp falls back to the source issue date.
func splitTimestamp(stamp string, fallback time.Time) (date, tm string) {
	if stamp == "" {
		return fallback.Format(dateLayout), midnightTime
	}
	if i := strings.IndexByte(stamp, ' '); i >= 0 {
		return stamp[:i], stamp[i+1:]
	}
	return stamp, midnightTime
}

// additionalDocumentReferences builds the two fixed reference entries every
// invoice carries: the incremented invoice counter and the previous invoice
// hash
func (m *Mapper) additionalDocumentReferences() []ubl.AdditionalDocumentReference {
	return []ubl.AdditionalDocumentReference{
		{
			ID:   ubl.NewID("ICV"),
			UUID: strconv.FormatInt(m.data.LastICV+1, 10),
		},
		{
			ID: ubl.NewID("PIH"),
			Attachment: &ubl.Attachment{
				EmbeddedDocumentBinaryObject: ubl.EmbeddedDocumentBinaryObject{Value: m.data.LastPIH},
			},
		},
	}
}

func (m *Mapper) supplierParty() ubl.AccountingSupplierParty {
	cert := m.cert

	companyID := cert.CompanyID
	if cert.EnvironmentType != model.EnvironmentProduction {
		companyID = SandboxCompanyID
	}

	return ubl.AccountingSupplierParty{
		Party: ubl.Party{
			PartyIdentification: &ubl.PartyIdentification{
				ID: ubl.ID{SchemeID: cert.IdentificationScheme, Value: cert.IdentificationID},
			},
			PostalAddress: ubl.PostalAddress{
				StreetName:          cert.StreetName,
				BuildingNumber:      cert.BuildingNumber,
				CitySubdivisionName: cert.CitySubdivisionName,
				CityName:            cert.CityName,
				PostalZone:          cert.PostalZone,
				Country:             ubl.Country{IdentificationCode: cert.CountryIdentificationCode},
			},
			PartyTaxScheme: ubl.PartyTaxScheme{
				CompanyID: companyID,
				TaxScheme: ubl.TaxScheme{ID: ubl.NewID(cert.TaxSchemeID)},
			},
			PartyLegalEntity: ubl.PartyLegalEntity{RegistrationName: cert.RegistrationName},
		},
	}
}

func (m *Mapper) customerParty() ubl.AccountingCustomerParty {
	info := &m.data.PartyInfo

	return ubl.AccountingCustomerParty{
		Party: ubl.Party{
			PostalAddress: ubl.PostalAddress{
				StreetName:          info.StreetName,
				BuildingNumber:      info.BuildingNumber,
				CitySubdivisionName: info.CitySubdivisionName,
				CityName:            info.CityName,
				PostalZone:          info.PostalZone,
				Country:             ubl.Country{IdentificationCode: info.CountryIdentificationCode},
			},
			PartyTaxScheme: ubl.PartyTaxScheme{
				CompanyID: info.CompanyID,
				TaxScheme: ubl.TaxScheme{ID: ubl.NewID(info.TaxSchemeID)},
			},
			PartyLegalEntity: ubl.PartyLegalEntity{RegistrationName: info.RegistrationName},
		},
	}
}

// delivery maps the delivery date pair. Due dates from before the cutoff
// year are transitional records; the issue date substitutes for them.
func (m *Mapper) delivery() ubl.Delivery {
	inv := &m.data.ManagerInvoice

	latest := inv.DueDateDate
	if latest.Year() < DeliveryCutoffYear {
		latest = inv.IssueDate
	}

	return ubl.Delivery{
		ActualDeliveryDate: inv.IssueDate.Format(dateLayout),
		LatestDeliveryDate: latest.Format(dateLayout),
	}
}

// paymentMeans maps the payment method. The custom field carries
// "code|description"; only a parseable leading code overrides the default.
func (m *Mapper) paymentMeans() ubl.PaymentMeans {
	code := DefaultPaymentMeansCode

	if v, ok := m.fields.Lookup(model.FieldPaymentMeansCode, model.FieldScopeRefInvoice); ok && v != "" {
		head, _, _ := strings.Cut(v, "|")
		if n, err := strconv.Atoi(strings.TrimSpace(head)); err == nil {
			code = n
		}
	}

	note, _ := m.fields.Lookup(model.FieldInstructionNote, model.FieldScopeRefInvoice)

	return ubl.PaymentMeans{
		PaymentMeansCode: strconv.Itoa(code),
		InstructionNote:  note,
	}
}

// requiresNationalID reports whether any subtotal carries an exemption
// reason from the reserved set that mandates the buyer's national ID
func requiresNationalID(totals []ubl.TaxTotal) bool {
	for _, total := range totals {
		for _, sub := range total.TaxSubtotal {
			if natExemptReasonCodes[sub.TaxCategory.TaxExemptionReasonCode] {
				return true
			}
		}
	}
	return false
}

func taxCategoryID(categoryID string) ubl.ID {
	return ubl.NewSchemeID(codeListCategory, codeListAgency, categoryID)
}

func vatScheme() ubl.TaxScheme {
	return ubl.TaxScheme{ID: ubl.NewSchemeID(codeListTaxScheme, codeListAgency, taxSchemeVAT)}
}
