// =============================================================================
// Document List Report - Converter Module
// =============================================================================
//
// This module contains the core report logic. It runs the whole pipeline
// for one input file, from loading to the rows that end up in the report.
//
// REPORT PIPELINE:
//   1. Load the input file (CSV or XLSX) into documents
//   2. Validate document shape (problems are logged, never fatal)
//   3. Filter by document type and partner id
//   4. Total every matched document and keep those above the threshold
//
// Writing the rows is left to the report and xmlwriter packages so the same
// Result can be rendered in either format.
//
// =============================================================================

package converter

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/document-list-report/internal/config"
	"github.com/ginjaninja78/document-list-report/internal/document"
	"github.com/ginjaninja78/document-list-report/internal/loader"
	"github.com/ginjaninja78/document-list-report/internal/validation"
)

// =============================================================================
// CRITERIA AND RESULT STRUCTURES
// =============================================================================

// Criteria are the three command line arguments of a report run.
type Criteria struct {
	// DocumentType must equal the document_type field, e.g. "INVOICE".
	DocumentType string

	// PartnerID must equal the partner's id. "5" matches 5 and "5".
	PartnerID string

	// MinTotal is the exclusive lower bound for a document's total.
	MinTotal string
}

// Row is one line of the report.
type Row struct {
	ID           string
	DocumentType string
	PartnerName  string
	Total        decimal.Decimal

	// RowNumber is the input row the document came from.
	RowNumber int
}

// Result represents the outcome of a report run.
type Result struct {
	// FilePath is the input file that was read.
	FilePath string

	// Criteria are the criteria the rows were selected with.
	Criteria Criteria

	// Rows are the selected documents in input order.
	Rows []Row

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the processing.
type ProcessingStats struct {
	// DocumentsLoaded is the number of documents read from the input.
	DocumentsLoaded int

	// DocumentsMatched passed the type and partner filter.
	DocumentsMatched int

	// DocumentsSkipped matched but could not be totalled.
	DocumentsSkipped int

	// RowsSelected is the number of rows above the threshold.
	RowsSelected int

	// ValidationWarnings is the number of shape problems found.
	ValidationWarnings int

	// ProcessingTime is the time taken by Run.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter runs a report over the configured input file.
type Converter struct {
	cfg       *config.ReportConfig
	validator *validation.Validator
	logger    *slog.Logger
}

// New creates a new Converter.
func New(cfg *config.ReportConfig, logger *slog.Logger) *Converter {
	return &Converter{
		cfg:       cfg,
		validator: validation.NewValidator(),
		logger:    logger,
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the report pipeline.
//
// RETURNS:
//   - The selected rows and statistics. A missing input file yields an
//     empty result.
//   - An error only if the input could be opened but not parsed.
func (c *Converter) Run(criteria Criteria) (*Result, error) {
	startTime := time.Now()
	result := &Result{
		FilePath: c.cfg.InputFile,
		Criteria: criteria,
		Rows:     []Row{},
	}

	c.logger.Debug("starting report",
		"file", c.cfg.InputFile,
		"document_type", criteria.DocumentType,
		"partner_id", criteria.PartnerID,
		"min_total", criteria.MinTotal,
	)

	// =========================================================================
	// STEP 1: LOAD
	// =========================================================================

	docs, err := loader.Load(c.cfg.InputFile, c.cfg.CSVSettings, c.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load documents: %w", err)
	}
	result.Stats.DocumentsLoaded = len(docs)

	// =========================================================================
	// STEP 2: VALIDATE
	// =========================================================================

	validationResult := c.validator.ValidateAll(docs)
	result.Stats.ValidationWarnings = validationResult.WarningCount + validationResult.ErrorCount
	for _, ve := range validationResult.Errors {
		c.logger.Info("document shape problem",
			"row", ve.RowNumber,
			"document", ve.DocumentID,
			"field", ve.Field,
			"rule", ve.Rule,
			"message", ve.Message,
		)
	}

	// =========================================================================
	// STEP 3: FILTER
	// =========================================================================

	matched := FilterDocuments(docs, criteria.DocumentType, criteria.PartnerID)
	result.Stats.DocumentsMatched = len(matched)

	// =========================================================================
	// STEP 4: TOTAL AND SELECT
	// =========================================================================

	threshold, err := ParseThreshold(criteria.MinTotal)
	if err != nil {
		c.logger.Warn("minimum total is not a number, no document can exceed it", "min_total", criteria.MinTotal)
	} else {
		result.Rows, result.Stats.DocumentsSkipped = c.selectRows(matched, threshold)
	}
	result.Stats.RowsSelected = len(result.Rows)

	result.Stats.ProcessingTime = time.Since(startTime)
	c.logger.Debug("report complete",
		"loaded", result.Stats.DocumentsLoaded,
		"matched", result.Stats.DocumentsMatched,
		"skipped", result.Stats.DocumentsSkipped,
		"selected", result.Stats.RowsSelected,
		"duration", result.Stats.ProcessingTime,
	)

	return result, nil
}

// selectRows totals docs and keeps those strictly above threshold. It
// returns the rows and the number of documents that could not be totalled.
func (c *Converter) selectRows(docs []document.Document, threshold decimal.Decimal) ([]Row, int) {
	rows := make([]Row, 0, len(docs))
	skipped := 0

	for _, doc := range docs {
		total, err := CalculateTotal(doc.Items())
		if err != nil {
			skipped++
			c.logger.Warn("skipping document, total cannot be calculated",
				"row", doc.RowNumber,
				"document", doc.ID().Text(),
				"error", err,
			)
			continue
		}

		if !total.GreaterThan(threshold) {
			continue
		}

		rows = append(rows, NewRow(doc, total))
	}

	return rows, skipped
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// NewRow builds a report row from a document and its total.
func NewRow(doc document.Document, total decimal.Decimal) Row {
	return Row{
		ID:           doc.ID().Text(),
		DocumentType: doc.Type().Text(),
		PartnerName:  doc.Partner().Name().Text(),
		Total:        total,
		RowNumber:    doc.RowNumber,
	}
}

// ParseThreshold reads the minimum total argument. Surrounding whitespace
// is ignored.
func ParseThreshold(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid minimum total %q: %w", s, err)
	}
	return d, nil
}
