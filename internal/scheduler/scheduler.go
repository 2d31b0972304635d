package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/agrogestor/backend/internal/config"
	"github.com/agrogestor/backend/internal/domain/models"
	"github.com/agrogestor/backend/pkg/clients/notify"
)

// AlertSource provides the alert list for the due-alert scan.
type AlertSource interface {
	ListAlerts(ctx context.Context) []models.Alert
}

// Reporter publishes the periodic summary.
type Reporter interface {
	PublishWeeklyReport(ctx context.Context) error
}

// Scheduler runs the two background jobs: the due-alert notification scan
// and the weekly report.
type Scheduler struct {
	cron     *cron.Cron
	alerts   AlertSource
	reporter Reporter
	notifier notify.Client
	cfg      config.Config
	logger   *zap.Logger
	now      func() time.Time
}

// NewScheduler creates a new scheduler instance. The notifier may be nil;
// due alerts are then only logged.
func NewScheduler(cfg config.Config, alerts AlertSource, reporter Reporter, notifier notify.Client, loc *time.Location, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.Local
	}

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		alerts:   alerts,
		reporter: reporter,
		notifier: notifier,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler")

	if _, err := s.cron.AddFunc(s.cfg.Alerts.CronSchedule, s.scanDueAlerts); err != nil {
		s.logger.Error("failed to schedule alert scan", zap.Error(err))
	}
	if _, err := s.cron.AddFunc(s.cfg.Reporting.CronSchedule, s.publishWeeklyReport); err != nil {
		s.logger.Error("failed to schedule weekly report", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) scanDueAlerts() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := s.now()
	due := DueAlerts(s.alerts.ListAlerts(ctx), now, s.cfg.Alerts.ScanWindow)
	if len(due) == 0 {
		return
	}

	for _, alert := range due {
		message := fmt.Sprintf("%s (%s) due at %s", alert.Title, alert.Type, alert.Date.Format(time.RFC3339))
		if s.notifier == nil {
			s.logger.Info("alert due", zap.String("alert", message))
			continue
		}
		n := notify.Notification{
			Title:   fmt.Sprintf("Alert: %s", alert.Title),
			Message: message,
		}
		if err := s.notifier.Send(ctx, n); err != nil {
			s.logger.Error("failed to send alert notification",
				zap.String("alert_id", alert.ID), zap.Error(err))
		}
	}
}

func (s *Scheduler) publishWeeklyReport() {
	s.logger.Info("publishing weekly report")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.reporter.PublishWeeklyReport(ctx); err != nil {
		s.logger.Error("failed to publish weekly report", zap.Error(err))
	}
}

// DueAlerts selects the alerts whose date fell inside the scan window
// ending at now and that asked for a system notification. Past-due alerts
// outside the window are never re-notified; they stay in the list until
// deleted.
func DueAlerts(alerts []models.Alert, now time.Time, window time.Duration) []models.Alert {
	var due []models.Alert
	for _, alert := range alerts {
		if !alert.NotifySystem {
			continue
		}
		if alert.Date.After(now) {
			continue
		}
		if alert.Date.Before(now.Add(-window)) {
			continue
		}
		due = append(due, alert)
	}
	return due
}
