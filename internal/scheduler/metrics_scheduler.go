package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"creatorpay-be-svc/internal/models"
	"creatorpay-be-svc/internal/repository"
	"creatorpay-be-svc/internal/service"
	"creatorpay-be-svc/pkg/logger"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// MetricsScheduler handles the scheduled video metrics refresh
type MetricsScheduler struct {
	metricsService   service.MetricsService
	schedulerLogRepo repository.SchedulerLogRepository
	logger           *logger.Logger
	cron             *cron.Cron
	cronExpression   string
}

// NewMetricsScheduler creates a new metrics scheduler
func NewMetricsScheduler(metricsService service.MetricsService, schedulerLogRepo repository.SchedulerLogRepository, logger *logger.Logger, cronExpression string) *MetricsScheduler {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &MetricsScheduler{
		metricsService:   metricsService,
		schedulerLogRepo: schedulerLogRepo,
		logger:           logger,
		cron:             c,
		cronExpression:   cronExpression,
	}
}

// Start initializes and starts all scheduled jobs
func (s *MetricsScheduler) Start() error {
	s.logger.Info("Starting metrics scheduler...")

	// Cron format: "seconds minutes hours day-of-month month day-of-week"
	s.logger.WithField("cron_expression", s.cronExpression).Info("Scheduling metrics refresh job")
	_, err := s.cron.AddFunc(s.cronExpression, s.refreshVideoMetrics)
	if err != nil {
		return fmt.Errorf("failed to schedule metrics refresh job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Metrics scheduler started successfully")

	return nil
}

// Stop gracefully stops the scheduler
func (s *MetricsScheduler) Stop() {
	s.logger.Info("Stopping metrics scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Metrics scheduler stopped successfully")
}

// refreshVideoMetrics is the scheduled job that refreshes engagement metrics
// for recent videos across all companies
func (s *MetricsScheduler) refreshVideoMetrics() {
	jobCode := "VIDEO_METRICS_REFRESH"
	docID := uuid.New().String()
	now := time.Now()

	s.logScheduler(jobCode, docID, "Starting scheduled video metrics refresh", "START", &now)

	s.logger.Info("Starting scheduled video metrics refresh...")

	s.logScheduler(jobCode, docID, "Scraping engagement metrics for recent videos", "RUNNING", &now)

	refreshResponse, err := s.metricsService.RefreshVideoMetrics(context.Background(), nil)
	if err != nil {
		failedMessage := fmt.Sprintf("Failed to refresh video metrics: %v", err)
		s.logScheduler(jobCode, docID, failedMessage, "FAILED", &now)
		s.logger.WithField("error", err).Error("Failed to refresh video metrics")
		return
	}

	responseJSON, _ := json.Marshal(refreshResponse)
	successMessage := fmt.Sprintf("Video metrics refreshed successfully: %s", string(responseJSON))
	s.logScheduler(jobCode, docID, successMessage, "SUCCESS", &now)

	s.logger.WithField("response", refreshResponse).Info("Scheduled video metrics refresh completed")
}

// logScheduler creates a new run log entry in the database
func (s *MetricsScheduler) logScheduler(jobCode, documentID, message, status string, createdAt *time.Time) {
	logEntry := &models.SchedulerLog{
		JobCode:    &jobCode,
		DocumentID: &documentID,
		Message:    &message,
		Status:     &status,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}

	if err := s.schedulerLogRepo.CreateSchedulerLog(logEntry); err != nil {
		s.logger.WithField("error", err).WithField("status", status).Error("Failed to create scheduler log entry")
	}
}
