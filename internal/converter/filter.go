package converter

import (
	"github.com/ginjaninja78/document-list-report/internal/document"
	"github.com/ginjaninja78/document-list-report/internal/value"
)

// FilterDocuments keeps the documents of the given type whose partner has
// a non-empty id equal to partnerID. Order is preserved and the input slice
// is not modified.
func FilterDocuments(docs []document.Document, documentType, partnerID string) []document.Document {
	matched := make([]document.Document, 0, len(docs))
	for _, doc := range docs {
		if Matches(doc, documentType, partnerID) {
			matched = append(matched, doc)
		}
	}
	return matched
}

// Matches reports whether a single document passes the filter.
func Matches(doc document.Document, documentType, partnerID string) bool {
	id := doc.Partner().ID()
	if id.IsEmpty() {
		return false
	}
	return value.LooseEquals(id, partnerID) && value.LooseEquals(doc.Type(), documentType)
}
