package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gitstandup/gitstandup/internal/models"
	"github.com/gitstandup/gitstandup/internal/services"
)

type ReportHandler struct {
	standupService    *services.StandupService
	repositoryService *services.RepositoryService
	historyService    *services.ReportHistoryService
}

func NewReportHandler(standupService *services.StandupService, repositoryService *services.RepositoryService, historyService *services.ReportHistoryService) *ReportHandler {
	return &ReportHandler{
		standupService:    standupService,
		repositoryService: repositoryService,
		historyService:    historyService,
	}
}

type generateReportRequest struct {
	RepoOwner string `json:"repo_owner"`
	RepoName  string `json:"repo_name"`
	Username  string `json:"username"`
	Days      int    `json:"days"`
}

type validateRepoRequest struct {
	RepoOwner string `json:"repo_owner"`
	RepoName  string `json:"repo_name"`
}

// GenerateReport handles POST /generate-report
func (h *ReportHandler) GenerateReport(c *gin.Context) {
	var req generateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	if field, ok := missingField(req); ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Missing required field: %s", field),
		})
		return
	}

	report, err := h.standupService.GenerateReport(c.Request.Context(), req.RepoOwner, req.RepoName, req.Username, req.Days)
	if err != nil {
		status, message := reportErrorResponse(err)
		c.JSON(status, gin.H{
			"success": false,
			"error":   message,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"report":  report,
		"metadata": gin.H{
			"repo_owner":   req.RepoOwner,
			"repo_name":    req.RepoName,
			"username":     req.Username,
			"days":         req.Days,
			"generated_at": time.Now().UTC().Format(time.RFC3339),
		},
	})
}

// ValidateRepo handles POST /validate-repo
func (h *ReportHandler) ValidateRepo(c *gin.Context) {
	var req validateRepoRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RepoOwner == "" || req.RepoName == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Repository owner and name are required",
		})
		return
	}

	info, err := h.repositoryService.GetRepository(c.Request.Context(), req.RepoOwner, req.RepoName)
	if err != nil {
		if errors.Is(err, models.ErrRepositoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Repository not found or not accessible",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Error validating repository: %s", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"repo_info": info,
	})
}

// ListReports handles GET /reports
func (h *ReportHandler) ListReports(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "limit must be an integer between 1 and 100",
		})
		return
	}

	reports, err := h.historyService.GetRecentReports(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	if reports == nil {
		reports = []*models.ReportRecord{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"reports": reports,
	})
}

// ExportReports handles GET /reports/export
func (h *ReportHandler) ExportReports(c *gin.Context) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="reports.xlsx"`)

	if err := h.historyService.WriteXLSX(c.Writer, 100); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
}

func missingField(req generateReportRequest) (string, bool) {
	switch {
	case req.RepoOwner == "":
		return "repo_owner", true
	case req.RepoName == "":
		return "repo_name", true
	case req.Username == "":
		return "username", true
	case req.Days == 0:
		return "days", true
	}
	return "", false
}

func reportErrorResponse(err error) (int, string) {
	var validationErr *models.ValidationError
	var configErr *models.ConfigurationError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, "Days must be between 1 and 30"
	case errors.As(err, &configErr):
		return http.StatusInternalServerError, fmt.Sprintf("Configuration error: %s", configErr)
	default:
		return http.StatusInternalServerError, fmt.Sprintf("Error generating activity report: %s", err)
	}
}
