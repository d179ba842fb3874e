// =============================================================================
// Document List Report - XML Writer
// =============================================================================
//
// This module renders the report rows as XML for systems that import the
// report instead of reading it. The structure is:
//
//   <?xml version="1.0" encoding="UTF-8"?>
//   <report run="..." document_type="INVOICE" partner_id="5" min_total="10">
//     <document n="1">
//       <id>D1</id>
//       <document_type>INVOICE</document_type>
//       <partner_name>Acme</partner_name>
//       <total>20</total>
//     </document>
//   </report>
//
// The run attribute is the run id that also appears in the logs, so an
// imported report can be traced back to its run.
//
// =============================================================================

package xmlwriter

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/ginjaninja78/document-list-report/internal/converter"
)

// =============================================================================
// GENERATION OPTIONS
// =============================================================================

// GenerateOptions contains options for XML generation.
type GenerateOptions struct {
	// Indent is the string used for one level of indentation.
	Indent string

	// IncludeXMLDeclaration adds the <?xml ...?> line.
	IncludeXMLDeclaration bool

	// XMLVersion and Encoding are written into the declaration.
	XMLVersion string
	Encoding   string

	// RootElement and DocumentElement name the two element levels.
	RootElement     string
	DocumentElement string

	// DocumentIndexAttribute carries the 1-based position of each document.
	DocumentIndexAttribute string
}

// DefaultGenerateOptions returns the default generation options.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Indent:                 "  ",
		IncludeXMLDeclaration:  true,
		XMLVersion:             "1.0",
		Encoding:               "UTF-8",
		RootElement:            "report",
		DocumentElement:        "document",
		DocumentIndexAttribute: "n",
	}
}

// =============================================================================
// MAIN GENERATION FUNCTIONS
// =============================================================================

// Generate renders result with the default options.
func Generate(result *converter.Result, runID string) ([]byte, error) {
	return GenerateWithOptions(result, runID, DefaultGenerateOptions())
}

// GenerateWithOptions renders result as an XML document.
func GenerateWithOptions(result *converter.Result, runID string, options GenerateOptions) ([]byte, error) {
	var buffer bytes.Buffer

	if options.IncludeXMLDeclaration {
		buffer.WriteString(fmt.Sprintf("<?xml version=\"%s\" encoding=\"%s\"?>\n",
			options.XMLVersion, options.Encoding))
	}

	root := buildDocument(result, runID, options)
	if err := writeElement(&buffer, root, options.Indent, 0); err != nil {
		return nil, fmt.Errorf("failed to marshal XML: %w", err)
	}

	return buffer.Bytes(), nil
}

// Writer writes XML reports to an io.Writer.
type Writer struct {
	w       io.Writer
	runID   string
	options GenerateOptions
}

// NewWriter creates a Writer that stamps every report with runID.
func NewWriter(w io.Writer, runID string) *Writer {
	return &Writer{w: w, runID: runID, options: DefaultGenerateOptions()}
}

// Write renders result and writes it in one call.
func (wr *Writer) Write(result *converter.Result) error {
	data, err := GenerateWithOptions(result, wr.runID, wr.options)
	if err != nil {
		return err
	}
	if _, err := wr.w.Write(data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// =============================================================================
// XML STRUCTURE
// =============================================================================

// XMLElement is one element of the output tree. An element carries either
// a text value or children, never both.
type XMLElement struct {
	XMLName    xml.Name
	Attributes []xml.Attr
	Value      string
	Children   []XMLElement
}

func buildDocument(result *converter.Result, runID string, options GenerateOptions) XMLElement {
	root := XMLElement{
		XMLName: xml.Name{Local: options.RootElement},
		Attributes: []xml.Attr{
			attr("run", runID),
			attr("document_type", result.Criteria.DocumentType),
			attr("partner_id", result.Criteria.PartnerID),
			attr("min_total", result.Criteria.MinTotal),
		},
	}

	for i, row := range result.Rows {
		root.Children = append(root.Children, buildRowElement(row, i+1, options))
	}

	return root
}

func buildRowElement(row converter.Row, index int, options GenerateOptions) XMLElement {
	return XMLElement{
		XMLName:    xml.Name{Local: options.DocumentElement},
		Attributes: []xml.Attr{attr(options.DocumentIndexAttribute, strconv.Itoa(index))},
		Children: []XMLElement{
			createSimpleElement("id", row.ID),
			createSimpleElement("document_type", row.DocumentType),
			createSimpleElement("partner_name", row.PartnerName),
			createSimpleElement("total", row.Total.String()),
		},
	}
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

func createSimpleElement(name, value string) XMLElement {
	return XMLElement{
		XMLName: xml.Name{Local: name},
		Value:   value,
	}
}

// writeElement writes element and its children, one element per line.
func writeElement(buffer *bytes.Buffer, element XMLElement, indent string, level int) error {
	for i := 0; i < level; i++ {
		buffer.WriteString(indent)
	}

	buffer.WriteString("<")
	buffer.WriteString(element.XMLName.Local)

	for _, a := range element.Attributes {
		buffer.WriteString(" ")
		buffer.WriteString(a.Name.Local)
		buffer.WriteString("=\"")
		if err := xml.EscapeText(buffer, []byte(a.Value)); err != nil {
			return err
		}
		buffer.WriteString("\"")
	}

	if len(element.Children) == 0 && element.Value == "" {
		buffer.WriteString("/>\n")
		return nil
	}

	buffer.WriteString(">")

	if element.Value != "" {
		if err := xml.EscapeText(buffer, []byte(element.Value)); err != nil {
			return err
		}
	} else {
		buffer.WriteString("\n")

		for _, child := range element.Children {
			if err := writeElement(buffer, child, indent, level+1); err != nil {
				return err
			}
		}

		for i := 0; i < level; i++ {
			buffer.WriteString(indent)
		}
	}

	buffer.WriteString("</")
	buffer.WriteString(element.XMLName.Local)
	buffer.WriteString(">\n")

	return nil
}
