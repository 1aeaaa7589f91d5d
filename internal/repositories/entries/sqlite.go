package entries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/apavlova/daybook/internal/dbx"
	"github.com/apavlova/daybook/internal/journal"
	"github.com/apavlova/daybook/internal/models"
)

// tagSeparator delimits tags in the denormalized tags column.
const tagSeparator = "|"

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, e *models.Entry) (int64, error) {
	query := `INSERT INTO entries (user_id, title, entry_date, mood, content, tags)
			VALUES (?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		e.UserID, e.Title, formatDay(e.Date), e.Mood, e.Content, joinTags(e.Tags))
	if err != nil {
		if isUniqueViolation(err) {
			return 0, journal.ErrDuplicateDate
		}
		return 0, fmt.Errorf("failed to insert entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted id: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, e *models.Entry) (bool, error) {
	query := `UPDATE entries
			SET title = ?, entry_date = ?, mood = ?, content = ?, tags = ?
			WHERE id = ? AND user_id = ?`

	res, err := r.db.ExecContext(ctx, query,
		e.Title, formatDay(e.Date), e.Mood, e.Content, joinTags(e.Tags), e.ID, e.UserID)
	if err != nil {
		if isUniqueViolation(err) {
			return false, journal.ErrDuplicateDate
		}
		return false, fmt.Errorf("failed to update entry: %w", err)
	}

	ra, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra > 0, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64, userID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete entry: %w", err)
	}

	ra, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra > 0, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64, userID string) (*models.Entry, error) {
	query := `SELECT id, user_id, title, entry_date, mood, content, tags
			FROM entries WHERE id = ? AND user_id = ?`

	return r.scanOne(r.db.QueryRowContext(ctx, query, id, userID))
}

func (r *SQLiteRepository) GetByDate(ctx context.Context, userID string, date time.Time) (*models.Entry, error) {
	// entry_date holds start-of-day values only, so the [startOfDay, endOfDay]
	// window collapses to an equality match on the day.
	query := `SELECT id, user_id, title, entry_date, mood, content, tags
			FROM entries WHERE user_id = ? AND entry_date = ?`

	return r.scanOne(r.db.QueryRowContext(ctx, query, userID, formatDay(date)))
}

func (r *SQLiteRepository) GetAllByUser(ctx context.Context, userID string) ([]models.Entry, error) {
	query := `SELECT id, user_id, title, entry_date, mood, content, tags
			FROM entries WHERE user_id = ?
			ORDER BY entry_date DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	var result []models.Entry
	for rows.Next() {
		item, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) scanOne(row *sql.Row) (*models.Entry, error) {
	e, err := scanEntry(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, journal.ErrNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return e, nil
}

func scanEntry(scan func(dest ...any) error) (*models.Entry, error) {
	e := &models.Entry{}
	var day, tags string
	if err := scan(&e.ID, &e.UserID, &e.Title, &day, &e.Mood, &e.Content, &tags); err != nil {
		return nil, err
	}

	date, err := time.ParseInLocation(journal.DayFormat, day, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid entry date %q: %w", day, err)
	}
	e.Date = date
	e.Tags = splitTags(tags)
	return e, nil
}

func formatDay(t time.Time) string {
	return journal.StartOfDay(t).Format(journal.DayFormat)
}

func joinTags(tags []string) string {
	clean := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			clean = append(clean, t)
		}
	}
	return strings.Join(clean, tagSeparator)
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, tagSeparator)
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
