package mapper

import (
	"github.com/rezonia/zatca-egs/internal/model"
)

// VAT category codes from UN/ECE 5305 as used by ZATCA
const (
	CategoryStandard   = "S"
	CategoryZeroRated  = "Z"
	CategoryExempt     = "E"
	CategoryOutOfScope = "O"
)

// VATInfo is the classification outcome for one line: the category it
// reports under and, for zero-rated lines, why it is relieved of VAT.
type VATInfo struct {
	CategoryID       string
	ExemptReasonCode string
	ExemptReason     string
}

// standardVAT is the implicit classification for every line with a
// positive rate. ClassifyVAT is only ever consulted at rate zero.
var standardVAT = VATInfo{CategoryID: CategoryStandard}

// vatCategories maps the item tax-category key (the VATEX-SA code stored in
// the item's custom fields) to its classification. Reason texts follow the
// ZATCA VATEX code list.
var vatCategories = map[string]VATInfo{
	"VATEX-SA-29": {
		CategoryID:       CategoryExempt,
		ExemptReasonCode: "VATEX-SA-29",
		ExemptReason:     "Financial services mentioned in Article 29 of the VAT Regulations",
	},
	"VATEX-SA-29-7": {
		CategoryID:       CategoryExempt,
		ExemptReasonCode: "VATEX-SA-29-7",
		ExemptReason:     "Life insurance services mentioned in Article 29 of the VAT Regulations",
	},
	"VATEX-SA-30": {
		CategoryID:       CategoryExempt,
		ExemptReasonCode: "VATEX-SA-30",
		ExemptReason:     "Real estate transactions mentioned in Article 30 of the VAT Regulations",
	},
	"VATEX-SA-32": {
		CategoryID:       CategoryZeroRated,
		ExemptReasonCode: "VATEX-SA-32",
		ExemptReason:     "Export of goods",
	},
	"VATEX-SA-33": {
		CategoryID:       CategoryZeroRated,
		ExemptReasonCode: "VATEX-SA-33",
		ExemptReason:     "Export of services",
	},
	"VATEX-SA-34-1": {
		CategoryID:       CategoryZeroRated,
		ExemptReasonCode: "VATEX-SA-34-1",
		ExemptReason:     "The international transport of Goods",
	},
	"VATEX-SA-34-2": {
		CategoryID:       CategoryZeroRated,
		ExemptReasonCode: "VATEX-SA-34-2",
		ExemptReason:     "International transport of passengers",
	},
	"VATEX-SA-34-3": {
		CategoryID:       CategoryZeroRated,
		ExemptReasonCode: "VATEX-SA-34-3",
		ExemptReason:     "Services directly connected and incidental to a Supply of international passenger transport",
	},
	"VATEX-SA-34-4": {
		CategoryID:       CategoryZeroRated,
		ExemptReasonCode: "VATEX-SA-34-4",
		ExemptReason:     "Supply of a qualifying means of transport",
	},
	"VATEX-SA-34-5": {
		CategoryID:       CategoryZeroRated,
		ExemptReasonCode: "VATEX-SA-34-5",
		ExemptReason:     "Any services relating to Goods or passenger transportation as defined in article twenty five of these Regulations",
	},
	"VATEX-SA-35": {
		CategoryID:       CategoryZeroRated,
		ExemptReasonCode: "VATEX-SA-35",
		ExemptReason:     "Medicines and medical equipment",
	},
	"VATEX-SA-36": {
		CategoryID:       CategoryZeroRated,
		ExemptReasonCode: "VATEX-SA-36",
		ExemptReason:     "Qualifying metals",
	},
	"VATEX-SA-EDU": {
		CategoryID:       CategoryZeroRated,
		ExemptReasonCode: "VATEX-SA-EDU",
		ExemptReason:     "Private education to citizen",
	},
	"VATEX-SA-HEA": {
		CategoryID:       CategoryZeroRated,
		ExemptReasonCode: "VATEX-SA-HEA",
		ExemptReason:     "Private healthcare to citizen",
	},
	"VATEX-SA-OOS": {
		CategoryID:       CategoryOutOfScope,
		ExemptReasonCode: "VATEX-SA-OOS",
		ExemptReason:     "Not subject to VAT",
	},
}

// ClassifyVAT resolves a zero-rated line's tax-category key to its VAT
// classification. An unknown key is an error: defaulting here would
// misreport a legally zero-rated supply.
func ClassifyVAT(key string) (VATInfo, error) {
	info, ok := vatCategories[key]
	if !ok {
		return VATInfo{}, model.NewClassificationError(key, "unknown tax category key")
	}
	return info, nil
}

// classifyLine returns the VAT classification for one source line. Lines
// with a positive rate always report under the standard category; the
// lookup table is consulted only at rate zero.
func classifyLine(line *model.Line) (VATInfo, error) {
	if !line.Rate().IsZero() {
		return standardVAT, nil
	}
	if line.Item == nil {
		return standardVAT, nil
	}
	key, ok := line.Item.TaxCategoryKey()
	if !ok {
		return VATInfo{}, model.NewClassificationError("", "zero-rated item carries no tax category key")
	}
	return ClassifyVAT(key)
}
