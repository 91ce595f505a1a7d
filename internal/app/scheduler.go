package app

import (
	"context"
	"sync"
	"time"

	"github.com/Freeeeeet/tutoria_notifier/internal/model"
	"go.uber.org/zap"
)

// Sweeper проход по окну напоминаний
type Sweeper interface {
	Sweep(ctx context.Context, w model.ReminderWindow, now time.Time) (int, error)
}

// Scheduler управляет фоновыми задачами: по одному тикеру на окно напоминаний
type Scheduler struct {
	sweeper  Sweeper
	windows  []model.ReminderWindow
	now      func() time.Time
	logger   *zap.Logger
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewScheduler создаёт новый планировщик
func NewScheduler(sweeper Sweeper, windows []model.ReminderWindow, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		sweeper:  sweeper,
		windows:  windows,
		now:      time.Now,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start запускает фоновые задачи
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler", zap.Int("windows", len(s.windows)))

	for _, w := range s.windows {
		s.wg.Add(1)
		go s.runReminderTask(ctx, w)
	}
}

// Stop останавливает фоновые задачи и ждёт их завершения
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Info("Stopping background scheduler")
		close(s.stopChan)
	})
	s.wg.Wait()
}

// runReminderTask периодически запускает проход по окну
func (s *Scheduler) runReminderTask(ctx context.Context, w model.ReminderWindow) {
	defer s.wg.Done()

	// Первый запуск сразу при старте
	s.sweep(ctx, w)

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx, w)
		case <-s.stopChan:
			s.logger.Info("Reminder task stopped", zap.String("window", w.Name))
			return
		case <-ctx.Done():
			s.logger.Info("Reminder task cancelled", zap.String("window", w.Name))
			return
		}
	}
}

func (s *Scheduler) sweep(ctx context.Context, w model.ReminderWindow) {
	if _, err := s.sweeper.Sweep(ctx, w, s.now()); err != nil {
		s.logger.Error("Reminder sweep failed", zap.String("window", w.Name), zap.Error(err))
	}
}
