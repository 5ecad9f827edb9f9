package services

import (
	"fmt"
	"io"
	"time"

	"github.com/gitstandup/gitstandup/internal/models"
	"github.com/gitstandup/gitstandup/internal/repositories"
	"github.com/xuri/excelize/v2"
)

const defaultHistoryLimit = 20

// ReportHistoryService manages the history of generated reports
type ReportHistoryService struct {
	reportRepo *repositories.ReportRepository
}

func NewReportHistoryService(reportRepo *repositories.ReportRepository) *ReportHistoryService {
	return &ReportHistoryService{reportRepo: reportRepo}
}

// SaveReport records a successfully generated report
func (s *ReportHistoryService) SaveReport(repoOwner, repoName, username string, days int, report string) (*models.ReportRecord, error) {
	record := models.NewReportRecord(repoOwner, repoName, username, days, report)
	if err := s.reportRepo.Create(record); err != nil {
		return nil, fmt.Errorf("failed to save report: %w", err)
	}
	return record, nil
}

// GetRecentReports returns the latest generated reports, newest first
func (s *ReportHistoryService) GetRecentReports(limit int) ([]*models.ReportRecord, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	records, err := s.reportRepo.GetRecent(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return records, nil
}

// PruneOlderThan deletes reports older than the given number of days
func (s *ReportHistoryService) PruneOlderThan(days int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	return s.reportRepo.DeleteOlderThan(cutoff)
}

// WriteXLSX streams the report history as an Excel workbook
func (s *ReportHistoryService) WriteXLSX(w io.Writer, limit int) error {
	records, err := s.GetRecentReports(limit)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"Generated At", "Owner", "Repository", "Username", "Days", "Report"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}

	for rowIdx, record := range records {
		values := []interface{}{
			record.CreatedAt.Format("2006-01-02 15:04:05"),
			record.RepoOwner,
			record.RepoName,
			record.Username,
			record.Days,
			record.Report,
		}
		for colIdx, value := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}
