package app

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Astemirdum/lending-service/lending/config"
	"github.com/Astemirdum/lending-service/lending/internal/handler"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/repository"
	"github.com/Astemirdum/lending-service/lending/internal/server"
	"github.com/Astemirdum/lending-service/lending/internal/service"
	"github.com/Astemirdum/lending-service/lending/migrations"
	"github.com/Astemirdum/lending-service/pkg/circuit_breaker"
	"github.com/Astemirdum/lending-service/pkg/kafka"
	"github.com/Astemirdum/lending-service/pkg/logger"
	"github.com/Astemirdum/lending-service/pkg/notify"
	"github.com/Astemirdum/lending-service/pkg/postgres"
	"github.com/Astemirdum/lending-service/pkg/sqlite"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gocloud.dev/blob/fileblob"
	"golang.org/x/sync/errgroup"
)

type App struct {
	cfg     config.Config
	log     *zap.Logger
	svc     *service.Service
	async   *notify.Async
	closers []func() error
}

// New opens the document backend and the notification transport and loads
// every collection.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		log: logger.NewLogger(cfg.Log, "lending"),
	}
	io, err := a.openStorage(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	sender, err := a.openSender()
	if err != nil {
		a.Close()
		return nil, err
	}
	a.async = notify.NewAsync(sender, cfg.Notify.Buffer, a.log)
	a.svc = service.NewService(ctx, io, a.async, service.Settings{BcryptCost: cfg.Auth.BcryptCost}, a.log)
	return a, nil
}

func (a *App) openStorage(ctx context.Context) (repository.DocumentIO, error) {
	st := a.cfg.Storage
	a.log.Info("storage", zap.String("driver", st.Driver))
	switch st.Driver {
	case config.DriverPostgres:
		db, err := postgres.NewPostgresDB(ctx, &a.cfg.Database, migrations.Postgres())
		if err != nil {
			return nil, errors.Wrap(err, "postgres")
		}
		a.closers = append(a.closers, db.Close)
		return repository.NewSQLIO(db, repository.DialectPostgres, a.log), nil
	case config.DriverSQLite:
		db, err := sqlite.NewSQLiteDB(ctx, &a.cfg.SQLite, migrations.SQLite())
		if err != nil {
			return nil, errors.Wrap(err, "sqlite")
		}
		a.closers = append(a.closers, db.Close)
		return repository.NewSQLIO(db, repository.DialectSQLite, a.log), nil
	default:
		if st.BucketURL != "" {
			io, err := repository.OpenBlobIO(ctx, st.BucketURL)
			if err != nil {
				return nil, err
			}
			a.closers = append(a.closers, io.Close)
			return io, nil
		}
		if err := os.MkdirAll(st.DataDir, 0o755); err != nil {
			return nil, errors.Wrap(err, "create data dir")
		}
		bucket, err := fileblob.OpenBucket(st.DataDir, nil)
		if err != nil {
			return nil, errors.Wrapf(err, "open data dir %q", st.DataDir)
		}
		io := repository.NewBlobIO(bucket)
		a.closers = append(a.closers, io.Close)
		return io, nil
	}
}

func (a *App) openSender() (notify.Sender, error) {
	if a.cfg.Notify.Mode != config.NotifyKafka {
		return notify.NewLogSender(a.log), nil
	}
	producer, err := kafka.NewProducer(a.cfg.Kafka)
	if err != nil {
		return nil, errors.Wrap(err, "kafka.NewProducer")
	}
	a.closers = append(a.closers, producer.Close)
	cb := circuit_breaker.New(circuit_breaker.Settings{
		RecordLength:     10,
		Timeout:          30 * time.Second,
		Percentile:       0.5,
		RecoveryRequests: 3,
	})
	return notify.NewKafkaSender(producer, a.cfg.Notify.Topic, cb), nil
}

func (a *App) Service() *service.Service { return a.svc }

// Run serves HTTP and the reminder loop until ctx is done or a signal arrives.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	h := handler.New(a.svc, a.log)
	srv := server.NewServer(a.cfg.Server, h.NewRouter())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.Info("http server start ON: ", zap.String("addr", srv.Addr()))
		return errors.Wrap(srv.Run(), "server run")
	})
	g.Go(func() error {
		a.remindLoop(ctx)
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		a.log.Debug("Graceful shutdown", zap.Error(context.Cause(ctx)))

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return errors.Wrap(srv.Stop(closeCtx), "srv.Stop")
	})

	err := g.Wait()
	a.log.Info("Graceful shutdown finished")
	return err
}

func (a *App) remindLoop(ctx context.Context) {
	interval := a.cfg.Reminder.Interval
	if interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			a.Remind(ctx, a.cfg.Reminder.DaysBefore)
		}
	}
}

// Remind runs one reminder pass. Messages are queued; Close flushes them.
func (a *App) Remind(ctx context.Context, daysBefore int) service.ReminderReport {
	r := a.svc.SendReminders(ctx, daysBefore)
	a.log.Info("reminders queued",
		zap.Int("overdue", r.Overdue),
		zap.Int("return", r.Return),
	)
	return r
}

// SetRole changes the role of the user registered under email and returns the
// stored role.
func (a *App) SetRole(ctx context.Context, email, role string) (string, error) {
	accounts := a.svc.Accounts()
	u, err := accounts.UserByEmail(email)
	if err != nil {
		return "", err
	}
	u, err = accounts.SetRole(ctx, u.ID, model.Role(strings.ToUpper(strings.TrimSpace(role))))
	if err != nil {
		return "", err
	}
	return string(u.Role), nil
}

// Close drains pending notifications and releases the backends in reverse
// order of opening.
func (a *App) Close() error {
	if a.async != nil {
		a.async.Close()
	}
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.Error("close", zap.Error(err))
			if first == nil {
				first = err
			}
		}
	}
	a.closers = nil
	_ = a.log.Sync()
	return first
}
