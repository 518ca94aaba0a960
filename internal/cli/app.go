package cli

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-list/internal/config"
	"github.com/BuzzLyutic/task-list/internal/logging"
	"github.com/BuzzLyutic/task-list/internal/model"
	"github.com/BuzzLyutic/task-list/internal/repo"
	"github.com/BuzzLyutic/task-list/internal/service"
	"github.com/BuzzLyutic/task-list/internal/store"
	"github.com/BuzzLyutic/task-list/internal/view"
)

// app is everything a command needs: config, logger, the opened repository
// and a service over the loaded store.
type app struct {
	cfg     config.Config
	logger  *zap.Logger
	repo    repo.KeyValueRepository
	service *service.TaskService
}

func newApp(ctx context.Context, interactive bool) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.New(cfg, interactive)
	if err != nil {
		return nil, err
	}

	r, err := openRepo(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("storage opened", zap.String("driver", cfg.StorageDriver), zap.String("key", cfg.StorageKey))

	st := store.New(r, cfg.StorageKey, logger)
	if err := st.Load(ctx); err != nil {
		r.Close()
		return nil, err
	}

	return &app{
		cfg:     cfg,
		logger:  logger,
		repo:    r,
		service: service.NewTaskService(st, logger),
	}, nil
}

func (a *app) Close() {
	if err := a.repo.Close(); err != nil {
		a.logger.Warn("failed to close storage", zap.Error(err))
	}
	_ = a.logger.Sync()
}

func openRepo(ctx context.Context, cfg config.Config) (repo.KeyValueRepository, error) {
	switch cfg.StorageDriver {
	case config.DriverFile:
		return repo.OpenFile(cfg.DataDir)
	case config.DriverPostgres:
		return repo.OpenPostgres(ctx, cfg.DatabaseURL)
	case config.DriverMySQL:
		return repo.OpenMySQL(ctx, cfg.MySQLDSN)
	case config.DriverMemory:
		return repo.NewMemoryRepo(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// printOnChange re-renders the list and the progress to out after every mutation.
func (a *app) printOnChange(out io.Writer) {
	text := view.NewTextRenderer()
	a.service.OnChange(func(tasks []model.Task) {
		if err := render(out, text, tasks); err != nil {
			a.logger.Warn("failed to print tasks", zap.Error(err))
		}
	})
}

func render(out io.Writer, text *view.TextRenderer, tasks []model.Task) error {
	if err := text.RenderList(out, view.BuildRows(tasks, nil, nil)); err != nil {
		return fmt.Errorf("rendering list: %w", err)
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}
	if err := text.RenderProgress(out, tasks); err != nil {
		return fmt.Errorf("rendering progress: %w", err)
	}
	return nil
}
