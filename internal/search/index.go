// Package search provides free-text search over the dose diary: tags,
// notes, and product names. The index is held in memory and rebuilt
// from the store on startup; the diary is small enough that this takes
// milliseconds.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/clarityrx/clarity-server/internal/domain"
)

// DiaryIndex wraps a Bleve index of dose-log entries.
// All public methods are safe for concurrent use.
type DiaryIndex struct {
	index  bleve.Index
	logger *slog.Logger
	mu     sync.RWMutex
}

// diaryDocument is the indexed shape of a dose-log entry.
type diaryDocument struct {
	ProductName    string   `json:"product_name"`
	ProductSKU     string   `json:"product_sku"`
	DesiredOutcome string   `json:"desired_outcome"`
	Tags           []string `json:"tags"`
	Notes          string   `json:"notes"`
	Date           string   `json:"date"`
	QuickRating    int      `json:"quick_rating"`
}

// Hit is a single search result.
type Hit struct {
	ID          string  `json:"id"`
	Score       float64 `json:"score"`
	ProductName string  `json:"product_name"`
	Date        string  `json:"date"`
}

// Result is a completed diary search.
type Result struct {
	Query  string `json:"query"`
	Total  uint64 `json:"total"`
	TookMs int64  `json:"took_ms"`
	Hits   []Hit  `json:"hits"`
}

func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultAnalyzer = en.AnalyzerName

	docMapping := bleve.NewDocumentMapping()

	nameField := bleve.NewTextFieldMapping()
	nameField.Analyzer = en.AnalyzerName
	nameField.Store = true
	docMapping.AddFieldMappingsAt("product_name", nameField)

	tagsField := bleve.NewTextFieldMapping()
	tagsField.Analyzer = en.AnalyzerName
	tagsField.Store = true
	docMapping.AddFieldMappingsAt("tags", tagsField)

	notesField := bleve.NewTextFieldMapping()
	notesField.Analyzer = en.AnalyzerName
	notesField.Store = false
	docMapping.AddFieldMappingsAt("notes", notesField)

	// Exact-match fields
	skuField := bleve.NewTextFieldMapping()
	skuField.Analyzer = keyword.Name
	skuField.Store = true
	docMapping.AddFieldMappingsAt("product_sku", skuField)

	outcomeField := bleve.NewTextFieldMapping()
	outcomeField.Analyzer = keyword.Name
	outcomeField.Store = true
	docMapping.AddFieldMappingsAt("desired_outcome", outcomeField)

	dateField := bleve.NewTextFieldMapping()
	dateField.Analyzer = keyword.Name
	dateField.Store = true
	docMapping.AddFieldMappingsAt("date", dateField)

	indexMapping.DefaultMapping = docMapping
	return indexMapping
}

// NewDiaryIndex creates an empty in-memory diary index.
func NewDiaryIndex(logger *slog.Logger) (*DiaryIndex, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}
	return &DiaryIndex{index: index, logger: logger}, nil
}

// Index adds or replaces a dose-log entry in the index.
func (d *DiaryIndex) Index(entry *domain.DoseLogEntry) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc := diaryDocument{
		ProductName:    entry.ProductName,
		ProductSKU:     entry.ProductSKU,
		DesiredOutcome: string(entry.DesiredOutcome),
		Tags:           entry.Tags,
		Notes:          entry.Notes,
		Date:           entry.Date.Format("2006-01-02"),
		QuickRating:    entry.QuickRating,
	}
	if err := d.index.Index(entry.ID, doc); err != nil {
		return fmt.Errorf("index entry: %w", err)
	}
	return nil
}

// Delete removes an entry from the index.
func (d *DiaryIndex) Delete(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.index.Delete(id)
}

// Rebuild replaces the index contents with the given entries.
func (d *DiaryIndex) Rebuild(entries []*domain.DoseLogEntry) error {
	for _, e := range entries {
		if err := d.Index(e); err != nil {
			return err
		}
	}
	if d.logger != nil {
		d.logger.Info("diary search index built", "entries", len(entries))
	}
	return nil
}

// Search runs a free-text query over tags, notes, and product names.
// A fuzzy disjunct catches near-miss spellings like "grogy".
func (d *DiaryIndex) Search(ctx context.Context, queryString string, limit int) (*Result, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}

	match := bleve.NewMatchQuery(queryString)
	fuzzy := bleve.NewFuzzyQuery(queryString)
	fuzzy.SetFuzziness(1)
	fuzzy.SetBoost(0.8)

	req := bleve.NewSearchRequestOptions(bleve.NewDisjunctionQuery(match, fuzzy), limit, 0, false)
	req.Fields = []string{"product_name", "date"}

	res, err := d.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("execute search: %w", err)
	}

	result := &Result{
		Query:  queryString,
		Total:  res.Total,
		TookMs: res.Took.Milliseconds(),
		Hits:   make([]Hit, 0, len(res.Hits)),
	}
	for _, hit := range res.Hits {
		h := Hit{ID: hit.ID, Score: hit.Score}
		if name, ok := hit.Fields["product_name"].(string); ok {
			h.ProductName = name
		}
		if date, ok := hit.Fields["date"].(string); ok {
			h.Date = date
		}
		result.Hits = append(result.Hits, h)
	}
	return result, nil
}

// DocumentCount returns the number of indexed entries.
func (d *DiaryIndex) DocumentCount() (uint64, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.index.DocCount()
}

// Close releases the index.
func (d *DiaryIndex) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.index.Close()
}
