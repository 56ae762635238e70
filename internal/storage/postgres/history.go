package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/dungeon/internal/game/history"
)

// HistoryRepository persists character history logs. The log is saved as a
// whole: Save replaces every entry for the character, preserving order via
// an explicit position column.
type HistoryRepository struct {
	db *pgxpool.Pool
}

// NewHistoryRepository creates a HistoryRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewHistoryRepository(db *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Save replaces the stored history for the character with the given
// entries, atomically.
//
// Precondition: characterID must be > 0.
// Postcondition: Load returns exactly these entries in order, or the
// transaction rolled back and an error is returned.
func (r *HistoryRepository) Save(ctx context.Context, characterID int64, entries []history.Entry) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("beginning history save: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`DELETE FROM history_entries WHERE character_id = $1`, characterID); err != nil {
		return fmt.Errorf("clearing stored history: %w", err)
	}

	batch := &pgx.Batch{}
	for i, e := range entries {
		batch.Queue(`
			INSERT INTO history_entries
				(id, character_id, position, type, artifact, depth, char_level, turn, text)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
			e.ID, characterID, i, int(e.Type), e.Artifact, e.Depth, e.CharLevel, e.Turn, e.Text,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("inserting history entries: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing history save: %w", err)
	}
	return nil
}

// Load returns the character's stored history, oldest first. A character
// with no stored history yields an empty slice, not an error.
//
// Precondition: characterID must be > 0.
func (r *HistoryRepository) Load(ctx context.Context, characterID int64) ([]history.Entry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, type, artifact, depth, char_level, turn, text
		FROM history_entries WHERE character_id = $1 ORDER BY position ASC`,
		characterID,
	)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	defer rows.Close()

	entries := make([]history.Entry, 0)
	for rows.Next() {
		var e history.Entry
		var eventType int
		if err := rows.Scan(
			&e.ID, &eventType, &e.Artifact, &e.Depth, &e.CharLevel, &e.Turn, &e.Text,
		); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		e.Type = history.EventType(eventType)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete removes all stored history for the character.
//
// Precondition: characterID must be > 0.
func (r *HistoryRepository) Delete(ctx context.Context, characterID int64) error {
	if _, err := r.db.Exec(ctx,
		`DELETE FROM history_entries WHERE character_id = $1`, characterID); err != nil {
		return fmt.Errorf("deleting history: %w", err)
	}
	return nil
}
