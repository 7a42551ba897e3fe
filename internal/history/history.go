// Package history records searches in the SQLite database.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/VoxDroid/vff/internal/finder"
)

// Entry is one recorded search.
type Entry struct {
	ID            int64
	Target        string
	Algorithm     string
	LineCount     int
	CompleteCount int
	BestLine      sql.NullString
	BestDistance  sql.NullInt64
	Duration      time.Duration
	CreatedAt     string
}

// NewEntry summarises a search over lineCount lines whose ranked results are
// results.
func NewEntry(target, algorithm string, lineCount int, results []finder.Result, elapsed time.Duration) Entry {
	e := Entry{
		Target:        target,
		Algorithm:     algorithm,
		LineCount:     lineCount,
		CompleteCount: finder.CountComplete(results),
		Duration:      elapsed,
	}
	if len(results) > 0 {
		e.BestLine = sql.NullString{String: results[0].Line, Valid: true}
		e.BestDistance = sql.NullInt64{Int64: int64(results[0].Score.Distance), Valid: true}
	}
	return e
}

// Repository stores and queries recorded searches.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository using db.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Record inserts e and returns its ID.
func (r *Repository) Record(e Entry) (int64, error) {
	res, err := r.db.Exec(`INSERT INTO searches (target, algorithm, line_count, complete_count, best_line, best_distance, duration_us, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, datetime('now'))`,
		e.Target, e.Algorithm, e.LineCount, e.CompleteCount, e.BestLine, e.BestDistance, e.Duration.Microseconds())
	if err != nil {
		return 0, fmt.Errorf("insert search: %w", err)
	}
	return res.LastInsertId()
}

// List returns recorded searches, newest first. A limit of zero or less
// returns every entry.
func (r *Repository) List(limit int) ([]Entry, error) {
	q := `SELECT id, target, algorithm, line_count, complete_count, best_line, best_distance, duration_us, created_at
		FROM searches ORDER BY id DESC`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = r.db.Query(q+" LIMIT ?", limit)
	} else {
		rows, err = r.db.Query(q)
	}
	if err != nil {
		return nil, fmt.Errorf("list searches: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Entry
	for rows.Next() {
		var e Entry
		var us int64
		if err := rows.Scan(&e.ID, &e.Target, &e.Algorithm, &e.LineCount, &e.CompleteCount, &e.BestLine, &e.BestDistance, &us, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Duration = time.Duration(us) * time.Microsecond
		out = append(out, e)
	}
	return out, rows.Err()
}

// targets adapts entries to fuzzy.Source.
type targets []Entry

func (t targets) String(i int) string { return t[i].Target }
func (t targets) Len() int { return len(t) }

// Search returns entries whose target fuzzy-matches query, best match first.
// An empty query behaves like List.
func (r *Repository) Search(query string, limit int) ([]Entry, error) {
	if query == "" {
		return r.List(limit)
	}
	all, err := r.List(0)
	if err != nil {
		return nil, err
	}
	matches := fuzzy.FindFrom(query, targets(all))
	out := make([]Entry, 0, len(matches))
	for _, m := range matches {
		out = append(out, all[m.Index])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// Clear deletes every recorded search and returns how many were removed.
func (r *Repository) Clear() (int64, error) {
	res, err := r.db.Exec("DELETE FROM searches")
	if err != nil {
		return 0, fmt.Errorf("clear searches: %w", err)
	}
	return res.RowsAffected()
}

// Close closes the underlying DB connection used by the Repository.
func (r *Repository) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}
