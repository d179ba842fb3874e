package converter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/document-list-report/internal/document"
)

var header = []string{"id", "document_type", "partner", "items"}

func doc(id, docType, partner string) document.Document {
	return document.ParseRow(2, header, []string{id, docType, partner, "[]"})
}

func ids(docs []document.Document) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.ID().Text()
	}
	return out
}

func TestFilterDocuments(t *testing.T) {
	docs := []document.Document{
		doc("D1", "INVOICE", `{"id":5,"name":"Acme"}`),
		doc("D2", "ORDER", `{"id":5,"name":"Acme"}`),
		doc("D3", "INVOICE", `{"id":"5","name":"Acme"}`),
		doc("D4", "INVOICE", `{"id":6,"name":"Beta"}`),
		doc("D5", "INVOICE", `{"name":"No Id"}`),
		doc("D6", "INVOICE", `Acme`),
		doc("D7", "INVOICE", `{"id":5.0,"name":"Acme"}`),
	}

	got := FilterDocuments(docs, "INVOICE", "5")
	require.Equal(t, []string{"D1", "D3", "D7"}, ids(got))
}

func TestFilterDocuments_Idempotent(t *testing.T) {
	docs := []document.Document{
		doc("D1", "INVOICE", `{"id":5}`),
		doc("D2", "ORDER", `{"id":5}`),
		doc("D3", "INVOICE", `{"id":7}`),
	}

	once := FilterDocuments(docs, "INVOICE", "5")
	twice := FilterDocuments(once, "INVOICE", "5")
	require.Equal(t, ids(once), ids(twice))
	require.Len(t, docs, 3)
}

func TestMatches_EmptyPartnerIDNeverMatches(t *testing.T) {
	require.False(t, Matches(doc("D1", "INVOICE", `{"id":0}`), "INVOICE", "0"))
	require.False(t, Matches(doc("D1", "INVOICE", `{"id":""}`), "INVOICE", ""))
}
