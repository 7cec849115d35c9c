package store

import (
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/clarityrx/clarity-server/internal/domain"
)

// Store wraps a Badger database holding the demo data: dose history,
// onboarding surveys, and assistant chat transcripts. The product
// catalog lives outside the store (it is static marketing content).
type Store struct {
	db     *badger.DB
	logger *slog.Logger

	DoseLogs *Entity[domain.DoseLogEntry]
	Surveys  *Entity[domain.SurveyResponse]
	ChatLogs *Entity[domain.ChatMessage]
}

// New opens the database at path and wires up the entities.
func New(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Badger's own logging is noisy
	opts.SyncWrites = true
	opts.CompactL0OnClose = true

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	s := &Store{
		db:     db,
		logger: logger,
	}

	s.DoseLogs = NewEntity[domain.DoseLogEntry](s, "dose:", func(e *domain.DoseLogEntry) string { return e.ID }).
		WithIndex("sku", func(e *domain.DoseLogEntry) []string {
			return []string{e.ProductSKU}
		}).
		WithIndex("outcome", func(e *domain.DoseLogEntry) []string {
			return []string{string(e.DesiredOutcome)}
		})

	s.Surveys = NewEntity[domain.SurveyResponse](s, "survey:", func(r *domain.SurveyResponse) string { return r.ID })

	s.ChatLogs = NewEntity[domain.ChatMessage](s, "chat:", func(m *domain.ChatMessage) string { return m.ID }).
		WithIndex("session", func(m *domain.ChatMessage) []string {
			return []string{m.SessionID}
		})

	if logger != nil {
		logger.Info("badger database opened", "path", path)
	}

	return s, nil
}

// Close gracefully closes the database.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("closing database")
	}
	return s.db.Close()
}

// DropAll wipes every key. Used by the seed generator to rebuild the
// demo history from scratch.
func (s *Store) DropAll() error {
	return s.db.DropAll()
}
