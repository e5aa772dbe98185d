package model

// Custom-field identifiers used by the Manager extension. Field values are
// stored under these opaque keys in the source document's CustomFields2
// blocks and looked up by a FieldResolver.
const (
	FieldTokenInfo       = "a1b2c3d4-e5f6-4abc-8def-abcdef000000"
	FieldCertificateInfo = "a1b2c3d4-e5f6-4abc-8def-abcdef000001"
	FieldLastICV         = "a1b2c3d4-e5f6-4abc-8def-abcdef000002"
	FieldLastPIH         = "a1b2c3d4-e5f6-4abc-8def-abcdef000003"

	FieldIdentificationScheme = "a1b2c3d4-e5f6-4abc-8def-abcdef000021"
	FieldIdentificationID     = "a1b2c3d4-e5f6-4abc-8def-abcdef000022"

	FieldStreetName                = "a1b2c3d4-e5f6-4abc-8def-abcdef000004"
	FieldBuildingNumber            = "a1b2c3d4-e5f6-4abc-8def-abcdef000005"
	FieldCitySubdivisionName       = "a1b2c3d4-e5f6-4abc-8def-abcdef000006"
	FieldCityName                  = "a1b2c3d4-e5f6-4abc-8def-abcdef000007"
	FieldPostalZone                = "a1b2c3d4-e5f6-4abc-8def-abcdef000008"
	FieldCountryIdentificationCode = "a1b2c3d4-e5f6-4abc-8def-abcdef000009"
	FieldCompanyID                 = "a1b2c3d4-e5f6-4abc-8def-abcdef000010"
	FieldTaxSchemeID               = "a1b2c3d4-e5f6-4abc-8def-abcdef000011"
	FieldRegistrationName          = "a1b2c3d4-e5f6-4abc-8def-abcdef000012"

	FieldInvoiceSubType   = "a1b2c3d4-e5f6-4abc-8def-abcdef000013"
	FieldPaymentMeansCode = "a1b2c3d4-e5f6-4abc-8def-abcdef000014"
	FieldInstructionNote  = "a1b2c3d4-e5f6-4abc-8def-abcdef000015"
	FieldApprovedInvoice  = "a1b2c3d4-e5f6-4abc-8def-abcdef000016"
	FieldZatcaUUID        = "a1b2c3d4-e5f6-4abc-8def-abcdef000017"
	FieldQrCode           = "a1b2c3d4-e5f6-4abc-8def-abcdef000018"

	FieldDateCreated = "a1b2c3d4-e5f6-4abc-8def-abcdef000020"

	FieldItemTaxCategory = "a1b2c3d4-e5f6-4abc-8def-abcdef000019"

	FieldEgsVersion = "a1b2c3d4-e5f6-4abc-8def-abcdef009999"
)

// FieldScopeRefInvoice is the subtree tag excluded from custom-field lookups
// so the referenced prior invoice's own fields never shadow the current one.
const FieldScopeRefInvoice = "RefInvoice"

// FieldResolver looks up a custom-field value by its opaque identifier.
// scopeTag names a subtree to exclude from the search. The second return is
// false when the field is absent.
type FieldResolver interface {
	Lookup(fieldID, scopeTag string) (string, bool)
}
