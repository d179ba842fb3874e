// =============================================================================
// Document List Report - Document Validation
// =============================================================================
//
// This module checks loaded documents for shape problems that would make a
// document silently drop out of the report:
//   - Required fields missing from the header (id, document_type, partner,
//     items)
//   - A partner cell that is not an object, or has no id
//   - An items cell that is not a list
//   - Items that are not objects, or whose unit_price/quantity is not numeric
//
// VALIDATION STRATEGY:
//   Validation never stops the report. Problems are collected and returned
//   so the caller can log them; the filter and the total calculator apply
//   their own rules to whatever was loaded.
//
// SEVERITY:
//   Every problem is a warning by default. TreatWarningsAsErrors upgrades
//   them to errors, which makes the result invalid.
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/document-list-report/internal/document"
	"github.com/ginjaninja78/document-list-report/internal/value"
)

// Severity levels.
const (
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Rule names.
const (
	RuleRequired = "required"
	RuleObject   = "object"
	RuleList     = "list"
	RuleNumeric  = "numeric"
)

// =============================================================================
// VALIDATION ERROR TYPES
// =============================================================================

// ValidationError represents a single validation problem.
type ValidationError struct {
	// Severity is SeverityWarning or SeverityError.
	Severity string

	// Field is the name of the field that failed validation, e.g. "partner"
	// or "items[2].quantity".
	Field string

	// Value is the report text of the offending value.
	Value string

	// Rule is the validation rule that was violated.
	Rule string

	// Message is a human-readable error message.
	Message string

	// DocumentID is the text of the document's id field.
	DocumentID string

	// RowNumber is the input row the document was read from.
	RowNumber int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] Row %d, Document '%s', Field '%s': %s (value: '%s')",
		strings.ToUpper(e.Severity),
		e.RowNumber,
		e.DocumentID,
		e.Field,
		e.Message,
		e.Value,
	)
}

// =============================================================================
// VALIDATION RESULT
// =============================================================================

// ValidationResult contains the results of validation.
type ValidationResult struct {
	// IsValid is true if there are no errors.
	IsValid bool

	// Errors contains all validation problems (including warnings).
	Errors []*ValidationError

	// ErrorCount is the number of errors.
	ErrorCount int

	// WarningCount is the number of warnings.
	WarningCount int

	// DocumentsValidated is the number of documents checked.
	DocumentsValidated int
}

// =============================================================================
// VALIDATOR
// =============================================================================

// Validator checks documents.
type Validator struct {
	options ValidationOptions
}

// ValidationOptions contains options for validation.
type ValidationOptions struct {
	// RequiredFields must be present on every document.
	RequiredFields []string

	// TreatWarningsAsErrors reports every problem with SeverityError.
	TreatWarningsAsErrors bool
}

// DefaultValidationOptions returns the default validation options.
func DefaultValidationOptions() ValidationOptions {
	return ValidationOptions{
		RequiredFields: []string{
			document.FieldID,
			document.FieldDocumentType,
			document.FieldPartner,
			document.FieldItems,
		},
	}
}

// NewValidator creates a new Validator with the default options.
func NewValidator() *Validator {
	return NewValidatorWithOptions(DefaultValidationOptions())
}

// NewValidatorWithOptions creates a new Validator with custom options.
func NewValidatorWithOptions(options ValidationOptions) *Validator {
	return &Validator{options: options}
}

// =============================================================================
// MAIN VALIDATION FUNCTION
// =============================================================================

// Validate checks docs with the default options and returns every problem.
func Validate(docs []document.Document) []*ValidationError {
	return NewValidator().ValidateAll(docs).Errors
}

// ValidateAll validates all documents and returns a detailed result.
func (v *Validator) ValidateAll(docs []document.Document) *ValidationResult {
	result := &ValidationResult{
		IsValid:            true,
		Errors:             make([]*ValidationError, 0),
		DocumentsValidated: len(docs),
	}

	for i := range docs {
		for _, err := range v.ValidateDocument(docs[i]) {
			result.Errors = append(result.Errors, err)
			if err.Severity == SeverityError {
				result.ErrorCount++
				result.IsValid = false
			} else {
				result.WarningCount++
			}
		}
	}

	return result
}

// ValidateDocument validates a single document.
func (v *Validator) ValidateDocument(doc document.Document) []*ValidationError {
	var errors []*ValidationError

	report := func(field string, val value.Value, rule, message string) {
		errors = append(errors, v.newError(doc, field, val, rule, message))
	}

	for _, name := range v.options.RequiredFields {
		if _, ok := doc.Get(name); !ok {
			report(name, value.NullValue(), RuleRequired, fmt.Sprintf("Required field '%s' is missing", name))
		}
	}

	if raw, ok := doc.Get(document.FieldPartner); ok {
		switch {
		case raw.Kind() != value.Object:
			report(document.FieldPartner, raw, RuleObject, "Partner is not an object")
		case doc.Partner().ID().IsEmpty():
			report(document.FieldPartner+"."+document.FieldPartnerID, doc.Partner().ID(), RuleRequired, "Partner has no id")
		}
	}

	if items, ok := doc.Get(document.FieldItems); ok {
		errors = append(errors, v.validateItems(doc, items)...)
	}

	return errors
}

// validateItems checks the items field and every item in it.
func (v *Validator) validateItems(doc document.Document, items value.Value) []*ValidationError {
	var errors []*ValidationError

	switch items.Kind() {
	case value.Null:
		return nil
	case value.Array:
	default:
		return append(errors, v.newError(doc, document.FieldItems, items, RuleList, "Items is not a list"))
	}

	for i, raw := range items.Elements() {
		prefix := fmt.Sprintf("%s[%d]", document.FieldItems, i)

		if raw.Kind() != value.Object {
			errors = append(errors, v.newError(doc, prefix, raw, RuleObject, "Item is not an object"))
			continue
		}

		item := document.NewItem(raw)
		for _, field := range []struct {
			name string
			val  value.Value
		}{
			{document.FieldUnitPrice, item.UnitPrice()},
			{document.FieldQuantity, item.Quantity()},
		} {
			if msg := validateNumeric(field.val); msg != "" {
				errors = append(errors, v.newError(doc, prefix+"."+field.name, field.val, RuleNumeric, msg))
			}
		}
	}

	return errors
}

func (v *Validator) newError(doc document.Document, field string, val value.Value, rule, message string) *ValidationError {
	severity := SeverityWarning
	if v.options.TreatWarningsAsErrors {
		severity = SeverityError
	}
	return &ValidationError{
		Severity:   severity,
		Field:      field,
		Value:      val.Text(),
		Rule:       rule,
		Message:    message,
		DocumentID: doc.ID().Text(),
		RowNumber:  doc.RowNumber,
	}
}

// =============================================================================
// DATA TYPE VALIDATORS
// =============================================================================

// validateNumeric returns an error message if val cannot take part in a
// total. Null and booleans are accepted; they count as 0 and 1/0.
func validateNumeric(val value.Value) string {
	switch val.Kind() {
	case value.Null, value.Bool, value.Number:
		return ""
	case value.String:
		if _, err := val.Numeric(); err == nil {
			return ""
		}
		return "Value is not a number"
	default:
		return fmt.Sprintf("Value is a %s, expected a number", val.Kind())
	}
}

// =============================================================================
// ERROR FORMATTING
// =============================================================================

// FormatErrors formats validation errors for display or logging.
func FormatErrors(errors []*ValidationError) string {
	if len(errors) == 0 {
		return "No validation errors."
	}

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("Validation completed with %d problem(s):\n\n", len(errors)))

	for i, err := range errors {
		builder.WriteString(fmt.Sprintf("%d. %s\n", i+1, err.Error()))
	}

	return builder.String()
}
