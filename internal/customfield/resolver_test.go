package customfield_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rezonia/zatca-egs/internal/customfield"
	"github.com/rezonia/zatca-egs/internal/model"
)

const fieldID = model.FieldInvoiceSubType

func TestLookup_TopLevel(t *testing.T) {
	r := customfield.NewResolver(`{"CustomFields2":{"Strings":{"` + fieldID + `":"0100000"}}}`)

	v, ok := r.Lookup(fieldID, model.FieldScopeRefInvoice)
	assert.True(t, ok)
	assert.Equal(t, "0100000", v)
}

func TestLookup_Nested(t *testing.T) {
	doc := `{
		"Invoice": {
			"Lines": [
				{"Item": {"CustomFields2": {"Strings": {"` + fieldID + `": "0200000"}}}}
			]
		}
	}`
	r := customfield.NewResolver(doc)

	v, ok := r.Lookup(fieldID, model.FieldScopeRefInvoice)
	assert.True(t, ok)
	assert.Equal(t, "0200000", v)
}

func TestLookup_SkipsScopedSubtree(t *testing.T) {
	// The referenced prior invoice carries the same field; it must not
	// shadow the current document
	doc := `{
		"RefInvoice": {"CustomFields2": {"Strings": {"` + fieldID + `": "stale"}}},
		"CustomFields2": {"Strings": {"` + fieldID + `": "current"}}
	}`
	r := customfield.NewResolver(doc)

	v, ok := r.Lookup(fieldID, model.FieldScopeRefInvoice)
	assert.True(t, ok)
	assert.Equal(t, "current", v)
}

func TestLookup_OnlyInScopedSubtree(t *testing.T) {
	doc := `{"RefInvoice": {"CustomFields2": {"Strings": {"` + fieldID + `": "stale"}}}}`
	r := customfield.NewResolver(doc)

	_, ok := r.Lookup(fieldID, model.FieldScopeRefInvoice)
	assert.False(t, ok)
}

func TestLookup_Missing(t *testing.T) {
	r := customfield.NewResolver(`{"Reference": "INV-0042"}`)

	_, ok := r.Lookup(fieldID, model.FieldScopeRefInvoice)
	assert.False(t, ok)
}

func TestLookup_IgnoresNonStringValues(t *testing.T) {
	r := customfield.NewResolver(`{"` + fieldID + `": 42}`)

	_, ok := r.Lookup(fieldID, model.FieldScopeRefInvoice)
	assert.False(t, ok)
}
