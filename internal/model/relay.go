package model

// EnvironmentType identifies which ZATCA environment a certificate was
// onboarded against
type EnvironmentType string

// Environment types
const (
	EnvironmentNonProduction EnvironmentType = "NonProduction"
	EnvironmentSimulation    EnvironmentType = "Simulation"
	EnvironmentProduction    EnvironmentType = "Production"
)

// RelayData is the full payload relayed from the bookkeeping application for
// one invoice: the invoice record itself plus the ambient state the document
// needs (certificate, party info, counters, raw JSON for custom-field lookup).
type RelayData struct {
	Referrer       string           `json:"Referrer"`
	InvoiceJSON    string           `json:"InvoiceJson"`
	ZatcaUUID      string           `json:"ZatcaUUID"`
	DateCreated    string           `json:"DateCreated"`
	LastICV        int64            `json:"LastICV"`
	LastPIH        string           `json:"LastPIH"`
	CertInfoString string           `json:"CertInfoString,omitempty"`
	CertInfo       *CertificateInfo `json:"CertInfo,omitempty"`
	PartyInfo      PartyTaxInfo     `json:"PartyInfo"`
	ManagerInvoice ManagerInvoice   `json:"ManagerInvoice"`
}

// CertificateInfo is the supplier registration metadata captured during
// ZATCA onboarding
type CertificateInfo struct {
	IdentificationScheme      string          `json:"IdentificationScheme"`
	IdentificationID          string          `json:"IdentificationID"`
	StreetName                string          `json:"StreetName"`
	BuildingNumber            string          `json:"BuildingNumber"`
	CitySubdivisionName       string          `json:"CitySubdivisionName"`
	CityName                  string          `json:"CityName"`
	PostalZone                string          `json:"PostalZone"`
	CountryIdentificationCode string          `json:"CountryIdentificationCode"`
	CompanyID                 string          `json:"CompanyID"`
	TaxSchemeID               string          `json:"TaxSchemeID"`
	RegistrationName          string          `json:"RegistrationName"`
	EnvironmentType           EnvironmentType `json:"EnvironmentType"`
}

// PartyTaxInfo is the customer-side address and tax metadata
type PartyTaxInfo struct {
	IdentificationScheme      string `json:"IdentificationScheme"`
	IdentificationID          string `json:"IdentificationID"`
	StreetName                string `json:"StreetName"`
	BuildingNumber            string `json:"BuildingNumber"`
	CitySubdivisionName       string `json:"CitySubdivisionName"`
	CityName                  string `json:"CityName"`
	PostalZone                string `json:"PostalZone"`
	CountryIdentificationCode string `json:"CountryIdentificationCode"`
	CompanyID                 string `json:"CompanyID"`
	TaxSchemeID               string `json:"TaxSchemeID"`
	RegistrationName          string `json:"RegistrationName"`
}
