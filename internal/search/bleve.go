package search

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/custom"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	unicodetok "github.com/blevesearch/bleve/v2/analysis/tokenizer/unicode"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/gstanzl/gstanzl/internal/catalog"
)

const (
	// CatalogAnalyzerName is the analyzer applied to every indexed field and
	// to query text: unicode word boundaries, lowercased.
	CatalogAnalyzerName = "catalog_text"

	// maxFuzziness is the largest edit distance bleve accepts.
	maxFuzziness = 2
)

// BleveIndex matches query terms by prefix or bounded edit distance.
type BleveIndex struct {
	cat       catalog.Catalog
	index     bleve.Index
	threshold float64
}

// Ensure BleveIndex implements Index.
var _ Index = (*BleveIndex)(nil)

// NewBleveIndex builds an in-memory bleve index holding one document per record.
func NewBleveIndex(cat catalog.Catalog) (*BleveIndex, error) {
	indexMapping, err := createIndexMapping()
	if err != nil {
		return nil, fmt.Errorf("failed to create index mapping: %w", err)
	}

	idx, err := bleve.NewMemOnly(indexMapping)
	if err != nil {
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	batch := idx.NewBatch()
	for i := 0; i < cat.Len(); i++ {
		if err := batch.Index(docID(i), document(cat.At(i))); err != nil {
			_ = idx.Close()
			return nil, fmt.Errorf("failed to index record %d: %w", i, err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		_ = idx.Close()
		return nil, fmt.Errorf("failed to execute batch: %w", err)
	}

	return &BleveIndex{cat: cat, index: idx, threshold: DefaultThreshold}, nil
}

// createIndexMapping registers the catalog analyzer and makes it the default.
func createIndexMapping() (*mapping.IndexMappingImpl, error) {
	indexMapping := bleve.NewIndexMapping()

	err := indexMapping.AddCustomAnalyzer(CatalogAnalyzerName, map[string]interface{}{
		"type":          custom.Name,
		"tokenizer":     unicodetok.Name,
		"token_filters": []string{lowercase.Name},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add custom analyzer: %w", err)
	}

	indexMapping.DefaultAnalyzer = CatalogAnalyzerName
	return indexMapping, nil
}

// docID zero-pads the catalog position so sorting by _id keeps catalog order.
func docID(i int) string {
	return fmt.Sprintf("%08d", i)
}

func document(r catalog.Record) map[string]interface{} {
	doc := make(map[string]interface{}, len(DefaultFields))
	for _, f := range DefaultFields {
		doc[string(f)] = fieldValues(r, f)
	}
	return doc
}

// Search implements Index.
func (ix *BleveIndex) Search(queryStr string) []catalog.Record {
	terms := ix.terms(queryStr)
	if len(terms) == 0 || ix.cat.Len() == 0 {
		return []catalog.Record{}
	}

	req := bleve.NewSearchRequestOptions(ix.buildQuery(terms), ix.cat.Len(), 0, false)
	req.SortBy([]string{"-_score", "_id"})

	result, err := ix.index.Search(req)
	if err != nil {
		// In-memory searches over a fixed mapping do not fail in practice;
		// treat it as no match rather than surfacing an error.
		slog.Warn("bleve_search_failed",
			slog.String("query", queryStr),
			slog.String("error", err.Error()))
		return []catalog.Record{}
	}

	out := make([]catalog.Record, 0, len(result.Hits))
	for _, hit := range result.Hits {
		i, err := strconv.Atoi(hit.ID)
		if err != nil || i < 0 || i >= ix.cat.Len() {
			continue
		}
		out = append(out, ix.cat.At(i))
	}
	return out
}

// Close releases the underlying index.
func (ix *BleveIndex) Close() error {
	return ix.index.Close()
}

// terms analyzes the query with the same analyzer used at index time.
func (ix *BleveIndex) terms(queryStr string) []string {
	queryStr = strings.TrimSpace(queryStr)
	if queryStr == "" {
		return nil
	}

	analyzer := ix.index.Mapping().AnalyzerNamed(CatalogAnalyzerName)
	if analyzer == nil {
		return strings.Fields(strings.ToLower(queryStr))
	}

	var terms []string
	for _, tok := range analyzer.Analyze([]byte(queryStr)) {
		terms = append(terms, string(tok.Term))
	}
	return terms
}

// buildQuery requires every term to hit some field, by prefix or fuzzily.
func (ix *BleveIndex) buildQuery(terms []string) query.Query {
	perTerm := make([]query.Query, 0, len(terms))
	for _, term := range terms {
		fuzziness := fuzzinessFor(term, ix.threshold)

		disjuncts := make([]query.Query, 0, len(DefaultFields)*2)
		for _, f := range DefaultFields {
			prefix := bleve.NewPrefixQuery(term)
			prefix.SetField(string(f))

			fz := bleve.NewFuzzyQuery(term)
			fz.SetField(string(f))
			fz.SetFuzziness(fuzziness)

			disjuncts = append(disjuncts, prefix, fz)
		}
		perTerm = append(perTerm, bleve.NewDisjunctionQuery(disjuncts...))
	}

	if len(perTerm) == 1 {
		return perTerm[0]
	}
	return bleve.NewConjunctionQuery(perTerm...)
}

// fuzzinessFor derives the allowed edit distance for term from the
// looseness threshold, capped at what bleve supports.
func fuzzinessFor(term string, threshold float64) int {
	n := int(threshold * float64(len([]rune(term))))
	if n > maxFuzziness {
		return maxFuzziness
	}
	if n < 0 {
		return 0
	}
	return n
}
