package repositories

import (
	"database/sql"

	"github.com/blogem/rank-activity/database"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	ActivityLog ActivityLogRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB, dialect database.Dialect) *Repositories {
	return &Repositories{
		ActivityLog: NewActivityLogRepository(db, dialect),
	}
}
