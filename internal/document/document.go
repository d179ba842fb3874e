// =============================================================================
// Document List Report - Document Types
// =============================================================================
//
// This package contains the types shared by the loaders, the converter and
// the report writers. Keeping them here avoids import cycles between those
// packages.
//
// A Document is one data row of the input file. Its fields are keyed by the
// header row and kept in header order. The well-known fields are:
//
//   id              - document identifier, printed as-is
//   document_type   - e.g. INVOICE, ORDER
//   partner         - object with at least "id" and "name"
//   items           - array of objects with "unit_price" and "quantity"
//
// Documents are built once by a loader and never mutated afterwards.
//
// =============================================================================

package document

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/document-list-report/internal/value"
)

// =============================================================================
// FIELD NAMES
// =============================================================================

const (
	FieldID           = "id"
	FieldDocumentType = "document_type"
	FieldPartner      = "partner"
	FieldItems        = "items"

	FieldPartnerID   = "id"
	FieldPartnerName = "name"

	FieldUnitPrice = "unit_price"
	FieldQuantity  = "quantity"
)

// =============================================================================
// DOCUMENT STRUCTURE
// =============================================================================

// Field is a single named cell of a Document.
type Field struct {
	Name  string
	Value value.Value
}

// Document is one business record read from the input file.
type Document struct {
	// RowNumber is the 1-based line (CSV) or sheet row (XLSX) the record
	// starts on. Used in log messages only.
	RowNumber int

	fields []Field
	index  map[string]int
}

// New builds a Document from header names and their values. Names without
// a value read as Null. A repeated header overwrites the earlier value in
// its original position.
func New(rowNumber int, names []string, values []value.Value) Document {
	doc := Document{
		RowNumber: rowNumber,
		fields:    make([]Field, 0, len(names)),
		index:     make(map[string]int, len(names)),
	}
	for i, name := range names {
		var v value.Value
		if i < len(values) {
			v = values[i]
		}
		if pos, exists := doc.index[name]; exists {
			doc.fields[pos].Value = v
			continue
		}
		doc.index[name] = len(doc.fields)
		doc.fields = append(doc.fields, Field{Name: name, Value: v})
	}
	return doc
}

// CleanHeaders trims header names and names empty headers by their 1-based
// position, e.g. "Column_3".
func CleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))
	for i, header := range headers {
		header = strings.TrimSpace(header)
		if header == "" {
			header = fmt.Sprintf("Column_%d", i+1)
		}
		cleaned[i] = header
	}
	return cleaned
}

// ParseRow converts one raw data row into a Document. Each cell is decoded
// as a JSON literal when possible and kept as the raw string otherwise.
//
// A row shorter than the header reads Null for the missing columns; cells
// beyond the header are dropped. Callers compare len(cells) with
// len(headers) to report either case.
func ParseRow(rowNumber int, headers, cells []string) Document {
	values := make([]value.Value, len(headers))
	for i := range headers {
		if i < len(cells) {
			values[i] = value.Parse(cells[i])
		}
	}
	return New(rowNumber, headers, values)
}

// Names returns the field names in header order.
func (d Document) Names() []string {
	names := make([]string, len(d.fields))
	for i, f := range d.fields {
		names[i] = f.Name
	}
	return names
}

// Fields returns the fields in header order.
func (d Document) Fields() []Field {
	return d.fields
}

// Get returns the value of a field. Missing fields read as Null.
func (d Document) Get(name string) (value.Value, bool) {
	pos, ok := d.index[name]
	if !ok {
		return value.NullValue(), false
	}
	return d.fields[pos].Value, true
}

// Value is Get without the presence flag.
func (d Document) Value(name string) value.Value {
	v, _ := d.Get(name)
	return v
}

// ID returns the "id" field.
func (d Document) ID() value.Value { return d.Value(FieldID) }

// Type returns the "document_type" field.
func (d Document) Type() value.Value { return d.Value(FieldDocumentType) }

// Partner returns a view over the "partner" field.
func (d Document) Partner() Partner {
	return Partner{raw: d.Value(FieldPartner)}
}

// Items returns the "items" field. Use the converter to total it.
func (d Document) Items() value.Value { return d.Value(FieldItems) }

// =============================================================================
// PARTNER
// =============================================================================

// Partner is the counterparty of a Document. A partner cell that is not an
// object behaves like an empty mapping: it has neither id nor name.
type Partner struct {
	raw value.Value
}

// ID returns the partner id, Null when absent.
func (p Partner) ID() value.Value {
	v, _ := p.raw.Field(FieldPartnerID)
	return v
}

// Name returns the partner name, Null when absent.
func (p Partner) Name() value.Value {
	v, _ := p.raw.Field(FieldPartnerName)
	return v
}

// Raw returns the partner cell as loaded.
func (p Partner) Raw() value.Value { return p.raw }

// =============================================================================
// ITEM
// =============================================================================

// Item is one line entry of a Document.
type Item struct {
	raw value.Value
}

// NewItem wraps a decoded item value.
func NewItem(raw value.Value) Item {
	return Item{raw: raw}
}

// UnitPrice returns the "unit_price" field, Null when absent.
func (i Item) UnitPrice() value.Value {
	v, _ := i.raw.Field(FieldUnitPrice)
	return v
}

// Quantity returns the "quantity" field, Null when absent.
func (i Item) Quantity() value.Value {
	v, _ := i.raw.Field(FieldQuantity)
	return v
}

// Raw returns the item as loaded.
func (i Item) Raw() value.Value { return i.raw }
