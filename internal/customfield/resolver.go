// Package customfield resolves Manager custom-field values out of the raw
// invoice JSON blob carried by a relay payload. Fields are keyed by opaque
// GUID-like identifiers that can appear at any depth in the document.
package customfield

import (
	"github.com/tidwall/gjson"
)

// Resolver implements model.FieldResolver over a raw invoice JSON document
type Resolver struct {
	doc gjson.Result
}

// NewResolver creates a resolver over the given JSON document
func NewResolver(invoiceJSON string) *Resolver {
	return &Resolver{doc: gjson.Parse(invoiceJSON)}
}

// Lookup searches the document depth-first for a string value keyed by
// fieldID. Subtrees rooted at a key equal to scopeTag are skipped, so fields
// on a referenced prior invoice never shadow the current document's.
func (r *Resolver) Lookup(fieldID, scopeTag string) (string, bool) {
	return find(r.doc, fieldID, scopeTag)
}

func find(node gjson.Result, fieldID, scopeTag string) (string, bool) {
	var value string
	var found bool

	node.ForEach(func(key, child gjson.Result) bool {
		if scopeTag != "" && key.String() == scopeTag {
			return true
		}
		if key.String() == fieldID && child.Type == gjson.String {
			value = child.String()
			found = true
			return false
		}
		if child.IsObject() || child.IsArray() {
			if v, ok := find(child, fieldID, scopeTag); ok {
				value = v
				found = true
				return false
			}
		}
		return true
	})

	return value, found
}
