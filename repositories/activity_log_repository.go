package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/blogem/rank-activity/database"
	"github.com/blogem/rank-activity/models"
)

// ActivityLogRepository is the append-only store of log entries
type ActivityLogRepository interface {
	Append(ctx context.Context, entry *models.LogEntry) error
	List(ctx context.Context, limit int) ([]models.LogEntry, error)
	Count(ctx context.Context) (int, error)
}

// StoreError wraps a failed read or write against the activity log
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("activity log %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// activityLogRepository implements ActivityLogRepository interface
type activityLogRepository struct {
	db      *sql.DB
	dialect database.Dialect
}

// NewActivityLogRepository creates a new activity log repository
func NewActivityLogRepository(db *sql.DB, dialect database.Dialect) ActivityLogRepository {
	return &activityLogRepository{db: db, dialect: dialect}
}

// Append inserts an entry and fills in the store-assigned ID and Timestamp
func (r *activityLogRepository) Append(ctx context.Context, entry *models.LogEntry) error {
	if errors := entry.Validate(); len(errors) > 0 {
		return &StoreError{Op: "append", Err: fmt.Errorf("validation failed: %s", strings.Join(errors, ", "))}
	}

	var raw interface{}
	if len(entry.Raw) > 0 {
		raw = string(entry.Raw)
	}

	insert := r.dialect.Rebind(`
		INSERT INTO activity_log (log_user, log_type, log_description, raw_data)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`)

	var id int64
	if err := r.db.QueryRowContext(ctx, insert, entry.User, string(entry.Type), entry.Description, raw).Scan(&id); err != nil {
		return &StoreError{Op: "append", Err: err}
	}

	// The timestamp is read back through the table so both drivers decode it
	// from the column type.
	query := r.dialect.Rebind("SELECT log_timestamp FROM activity_log WHERE id = ?")
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&entry.Timestamp); err != nil {
		return &StoreError{Op: "append", Err: fmt.Errorf("failed to read back entry %d: %w", id, err)}
	}

	entry.ID = id
	return nil
}

// List returns entries newest first. A limit <= 0 returns the whole log.
func (r *activityLogRepository) List(ctx context.Context, limit int) ([]models.LogEntry, error) {
	query := `
		SELECT id, log_user, log_type, log_timestamp, log_description
		FROM activity_log
		ORDER BY log_timestamp DESC, id DESC
	`

	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(query), args...)
	if err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}
	defer rows.Close()

	entries := make([]models.LogEntry, 0)
	for rows.Next() {
		var entry models.LogEntry
		var changeType string

		if err := rows.Scan(
			&entry.ID,
			&entry.User,
			&changeType,
			&entry.Timestamp,
			&entry.Description,
		); err != nil {
			return nil, &StoreError{Op: "list", Err: fmt.Errorf("failed to scan log entry: %w", err)}
		}

		entry.Type = models.ChangeType(changeType)
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}

	return entries, nil
}

// Count returns the number of entries in the log
func (r *activityLogRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM activity_log").Scan(&count); err != nil {
		return 0, &StoreError{Op: "count", Err: err}
	}
	return count, nil
}
