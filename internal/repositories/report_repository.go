package repositories

import (
	"database/sql"
	"sync"
	"time"

	"github.com/gitstandup/gitstandup/internal/models"
)

// ReportRepository handles database operations for generated reports
type ReportRepository struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create persists a generated report
func (r *ReportRepository) Create(record *models.ReportRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	query := `
		INSERT INTO reports (id, repo_owner, repo_name, username, days, report, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		record.ID,
		record.RepoOwner,
		record.RepoName,
		record.Username,
		record.Days,
		record.Report,
		record.CreatedAt,
	)
	return err
}

// GetRecent retrieves the most recently generated reports, newest first
func (r *ReportRepository) GetRecent(limit int) ([]*models.ReportRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := `
		SELECT id, repo_owner, repo_name, username, days, report, created_at
		FROM reports
		ORDER BY created_at DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.ReportRecord
	for rows.Next() {
		record := &models.ReportRecord{}
		err := rows.Scan(
			&record.ID,
			&record.RepoOwner,
			&record.RepoName,
			&record.Username,
			&record.Days,
			&record.Report,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// DeleteOlderThan removes reports generated before the cutoff and returns
// the number of rows deleted
func (r *ReportRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result, err := r.db.Exec(`DELETE FROM reports WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
