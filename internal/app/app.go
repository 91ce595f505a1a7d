package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/Freeeeeet/tutoria_notifier/internal/config"
	"github.com/Freeeeeet/tutoria_notifier/internal/controller/events"
	"github.com/Freeeeeet/tutoria_notifier/internal/controller/httpapi"
	"github.com/Freeeeeet/tutoria_notifier/internal/event"
	"github.com/Freeeeeet/tutoria_notifier/internal/event/fswatch"
	"github.com/Freeeeeet/tutoria_notifier/internal/event/pgnotify"
	"github.com/Freeeeeet/tutoria_notifier/internal/model"
	"github.com/Freeeeeet/tutoria_notifier/internal/push"
	"github.com/Freeeeeet/tutoria_notifier/internal/repository"
	"github.com/Freeeeeet/tutoria_notifier/internal/repository/fsstore"
	"github.com/Freeeeeet/tutoria_notifier/internal/service"
	"github.com/Freeeeeet/tutoria_notifier/migrations"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const shutdownTimeout = 10 * time.Second

// App собранный сервис уведомлений
type App struct {
	cfg       *config.Config
	logger    *zap.Logger
	source    event.Source
	router    *events.Router
	scheduler *Scheduler
	server    *httpapi.Server
	closers   []func()
}

// New создаёт все зависимости по конфигу
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	a := &App{cfg: cfg, logger: logger}

	if err := a.build(ctx); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) build(ctx context.Context) error {
	var fbApp *firebase.App
	if a.cfg.NeedsFirebase() {
		var err error
		if fbApp, err = a.initFirebase(ctx); err != nil {
			return err
		}
	}

	store, err := a.initStore(ctx, fbApp)
	if err != nil {
		return err
	}

	pusher, err := a.initPusher(ctx, fbApp)
	if err != nil {
		return err
	}

	dispatcher := service.NewDispatcher(store, store, pusher, a.cfg.AndroidChannelID, a.logger.Named("dispatcher"))
	transitions := service.NewTransitions(dispatcher, store, a.cfg.Timezone, a.logger.Named("transitions"))
	reminders := service.NewReminders(store, store, dispatcher, a.logger.Named("reminders"))
	manual := service.NewManualSender(store, dispatcher, a.logger.Named("manual"))

	a.router = events.NewRouter(transitions, a.logger.Named("events"))
	a.scheduler = NewScheduler(reminders, []model.ReminderWindow{
		model.DayBeforeWindow(a.cfg.ReminderDayInterval),
		model.SoonWindow(a.cfg.ReminderSoonInterval),
	}, a.logger.Named("scheduler"))

	if !a.cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	if a.cfg.JWTSecret == "" {
		a.logger.Warn("JWT_SECRET is not set, manual notifications are disabled")
	}
	a.server = httpapi.NewServer(a.cfg.HTTPPort, manual, a.cfg.JWTSecret, a.logger.Named("http"))

	return nil
}

func (a *App) initFirebase(ctx context.Context) (*firebase.App, error) {
	var opts []option.ClientOption
	if a.cfg.FirebaseCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(a.cfg.FirebaseCredentialsFile))
	}

	var fbConfig *firebase.Config
	if a.cfg.FirebaseProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: a.cfg.FirebaseProjectID}
	}

	fbApp, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}
	return fbApp, nil
}

func (a *App) initStore(ctx context.Context, fbApp *firebase.App) (service.Store, error) {
	switch a.cfg.StoreDriver {
	case config.StoreDriverFirestore:
		client, err := fbApp.Firestore(ctx)
		if err != nil {
			return nil, fmt.Errorf("get firestore client: %w", err)
		}
		a.closers = append(a.closers, func() { closeFirestore(client, a.logger) })
		a.source = fswatch.NewWatcher(client, a.logger.Named("fswatch"))
		a.logger.Info("Using Firestore store")
		return fsstore.New(client), nil

	default:
		pool, err := pgxpool.New(ctx, a.cfg.GetDBDSN())
		if err != nil {
			return nil, fmt.Errorf("create pgx pool: %w", err)
		}
		a.closers = append(a.closers, pool.Close)

		if err := pool.Ping(ctx); err != nil {
			return nil, fmt.Errorf("ping database: %w", err)
		}

		migrator, err := NewMigrator(pool, migrations.FS, a.logger.Named("migrator"))
		if err != nil {
			return nil, err
		}
		defer migrator.Close()
		if err := migrator.Run(ctx); err != nil {
			return nil, err
		}

		a.source = pgnotify.NewListener(pool, a.logger.Named("pgnotify"))
		a.logger.Info("Using Postgres store")
		return repository.NewStore(pool), nil
	}
}

func (a *App) initPusher(ctx context.Context, fbApp *firebase.App) (push.Sender, error) {
	switch a.cfg.PushDriver {
	case config.PushDriverFCM:
		return push.NewFCMSender(ctx, fbApp)
	case config.PushDriverTelegram:
		return push.NewTelegramSender(a.cfg.TelegramToken)
	default:
		a.logger.Warn("Push driver is log, notifications will not be delivered")
		return push.NewLogSender(a.logger.Named("push")), nil
	}
}

// Run запускает планировщик, HTTP и источник событий и ждёт отмены контекста
func (a *App) Run(ctx context.Context) error {
	a.scheduler.Start(ctx)
	defer a.scheduler.Stop()

	a.server.Start()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("Failed to stop HTTP server", zap.Error(err))
		}
	}()

	a.logger.Info("Notifier started",
		zap.String("store", a.cfg.StoreDriver),
		zap.String("push", a.cfg.PushDriver))

	if err := a.source.Run(ctx, a.router.Handle); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("event source: %w", err)
	}
	return nil
}

// Close освобождает соединения в обратном порядке
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func closeFirestore(client *firestore.Client, logger *zap.Logger) {
	if err := client.Close(); err != nil {
		logger.Error("Failed to close firestore client", zap.Error(err))
	}
}
