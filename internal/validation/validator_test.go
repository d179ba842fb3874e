package validation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/document-list-report/internal/document"
)

var fullHeader = []string{"id", "document_type", "partner", "items"}

func row(cells ...string) document.Document {
	return document.ParseRow(2, fullHeader, cells)
}

func rules(errs []*ValidationError) []string {
	out := make([]string, len(errs))
	for i, err := range errs {
		out[i] = err.Field + ":" + err.Rule
	}
	return out
}

func TestValidateDocument_Clean(t *testing.T) {
	doc := row("D1", "INVOICE", `{"id":5,"name":"Acme"}`, `[{"unit_price":10,"quantity":"2"}]`)

	require.Empty(t, NewValidator().ValidateDocument(doc))
}

func TestValidateDocument_MissingFields(t *testing.T) {
	doc := document.ParseRow(2, []string{"id", "document_type"}, []string{"D1", "INVOICE"})

	errs := NewValidator().ValidateDocument(doc)
	require.Equal(t, []string{"partner:required", "items:required"}, rules(errs))
	require.Equal(t, SeverityWarning, errs[0].Severity)
	require.Equal(t, "D1", errs[0].DocumentID)
}

func TestValidateDocument_Partner(t *testing.T) {
	tests := []struct {
		name    string
		partner string
		want    []string
	}{
		{"not an object", "Acme", []string{"partner:object"}},
		{"no id", `{"name":"Acme"}`, []string{"partner.id:required"}},
		{"zero id", `{"id":0}`, []string{"partner.id:required"}},
		{"ok", `{"id":"5"}`, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := row("D1", "INVOICE", tt.partner, "[]")
			require.Equal(t, tt.want, rules(NewValidator().ValidateDocument(doc)))
		})
	}
}

func TestValidateDocument_Items(t *testing.T) {
	tests := []struct {
		name  string
		items string
		want  []string
	}{
		{"not a list", `{"unit_price":1}`, []string{"items:list"}},
		{"null", "null", []string{}},
		{"item not an object", `[1]`, []string{"items[0]:object"}},
		{"text price", `[{"unit_price":"abc","quantity":1}]`, []string{"items[0].unit_price:numeric"}},
		{"list quantity", `[{"unit_price":1},{"unit_price":1,"quantity":[1]}]`, []string{"items[1].quantity:numeric"}},
		{"bool and null accepted", `[{"unit_price":true,"quantity":null}]`, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := row("D1", "INVOICE", `{"id":5}`, tt.items)
			require.Equal(t, tt.want, rules(NewValidator().ValidateDocument(doc)))
		})
	}
}

func TestValidateAll_Counts(t *testing.T) {
	docs := []document.Document{
		row("D1", "INVOICE", `{"id":5}`, "[]"),
		row("D2", "INVOICE", "x", "y"),
	}

	result := NewValidator().ValidateAll(docs)
	require.True(t, result.IsValid)
	require.Equal(t, 2, result.DocumentsValidated)
	require.Equal(t, 2, result.WarningCount)
	require.Zero(t, result.ErrorCount)

	strict := NewValidatorWithOptions(ValidationOptions{TreatWarningsAsErrors: true}).ValidateAll(docs)
	require.False(t, strict.IsValid)
	require.Equal(t, 2, strict.ErrorCount)
}

func TestFormatErrors(t *testing.T) {
	require.Equal(t, "No validation errors.", FormatErrors(nil))

	errs := Validate([]document.Document{row("D2", "INVOICE", "x", "[]")})
	require.Equal(t,
		"Validation completed with 1 problem(s):\n\n"+
			"1. [WARNING] Row 2, Document 'D2', Field 'partner': Partner is not an object (value: 'x')\n",
		FormatErrors(errs))
}
