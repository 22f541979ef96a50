// Package scheduler ежедневно обновляет окна расписания настроенных тенантов
package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/m04kA/SMC-ScheduleService/internal/usecase/refresh_window"
)

const (
	// DefaultSpec каждый день в 00:05
	DefaultSpec = "5 0 * * *"
	// DefaultTenantTimeout ограничение на обновление одного тенанта
	DefaultTenantTimeout = 2 * time.Minute
)

// Config параметры планировщика
type Config struct {
	Spec          string
	Tenants       []string
	RunOnStart    bool
	Location      *time.Location
	TenantTimeout time.Duration
	// JournalRetention сколько хранить журнал прогонов, 0 - не чистить
	JournalRetention time.Duration
}

// RunSummary итог одного прохода по тенантам
type RunSummary struct {
	Succeeded int
	Failed    int
}

// Scheduler cron-задача обновления окон
type Scheduler struct {
	cfg       Config
	cron      *cron.Cron
	refresher Refresher
	journal   JournalPruner
	logger    Logger
}

// New создает планировщик. Ошибка - если выражение расписания некорректно.
// journal может быть nil.
func New(cfg Config, refresher Refresher, journal JournalPruner, logger Logger) (*Scheduler, error) {
	if strings.TrimSpace(cfg.Spec) == "" {
		cfg.Spec = DefaultSpec
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.TenantTimeout <= 0 {
		cfg.TenantTimeout = DefaultTenantTimeout
	}

	cronLog := cronLogger{log: logger}
	s := &Scheduler{
		cfg: cfg,
		cron: cron.New(
			cron.WithLocation(cfg.Location),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		refresher: refresher,
		journal:   journal,
		logger:    logger,
	}

	if _, err := s.cron.AddFunc(cfg.Spec, func() { s.RunOnce(context.Background()) }); err != nil {
		return nil, fmt.Errorf("invalid scheduler spec %q: %w", cfg.Spec, err)
	}

	return s, nil
}

// Start запускает cron; при RunOnStart сразу выполняет проход в фоне
func (s *Scheduler) Start() {
	s.logger.Info("Scheduler: starting, spec=%q tenants=%v", s.cfg.Spec, s.cfg.Tenants)
	if s.cfg.RunOnStart {
		go s.RunOnce(context.Background())
	}
	s.cron.Start()
}

// Stop останавливает cron и ждет завершения текущего прохода
func (s *Scheduler) Stop(ctx context.Context) error {
	stopped := s.cron.Stop()
	select {
	case <-stopped.Done():
		s.logger.Info("Scheduler: stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunOnce обновляет окна всех тенантов по очереди.
// Ошибка одного тенанта логируется, проход продолжается.
func (s *Scheduler) RunOnce(ctx context.Context) RunSummary {
	var summary RunSummary

	for _, tenantID := range s.cfg.Tenants {
		if ctx.Err() != nil {
			s.logger.Warn("Scheduler: run interrupted before tenant=%s: %v", tenantID, ctx.Err())
			break
		}

		if err := s.refreshTenant(ctx, tenantID); err != nil {
			summary.Failed++
			s.logger.Error("Scheduler: refresh failed for tenant=%s: %v", tenantID, err)
			continue
		}
		summary.Succeeded++
	}

	s.pruneJournal(ctx)

	s.logger.Info("Scheduler: run finished, succeeded=%d failed=%d", summary.Succeeded, summary.Failed)
	return summary
}

func (s *Scheduler) pruneJournal(ctx context.Context) {
	if s.journal == nil || s.cfg.JournalRetention <= 0 || ctx.Err() != nil {
		return
	}

	deleted, err := s.journal.DeleteOlderThan(ctx, time.Now().Add(-s.cfg.JournalRetention))
	if err != nil {
		s.logger.Warn("Scheduler: failed to prune sweep journal: %v", err)
		return
	}
	if deleted > 0 {
		s.logger.Info("Scheduler: pruned %d sweep runs", deleted)
	}
}

func (s *Scheduler) refreshTenant(ctx context.Context, tenantID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.TenantTimeout)
	defer cancel()

	resp, err := s.refresher.Execute(ctx, &refresh_window.Request{TenantID: tenantID})
	if err != nil {
		return err
	}

	s.logger.Info("Scheduler: tenant=%s window %s..%s entries=%d full=%t",
		tenantID, resp.WindowStart, resp.WindowEnd, len(resp.Entries), resp.Full)
	return nil
}

// cronLogger адаптер Logger к cron.Logger
type cronLogger struct {
	log Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Info("cron: %s %v", msg, keysAndValues)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error("cron: %s: %v %v", msg, err, keysAndValues)
}
