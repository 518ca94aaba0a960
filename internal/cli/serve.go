package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-list/internal/config"
	"github.com/BuzzLyutic/task-list/internal/handler"
	"github.com/BuzzLyutic/task-list/internal/view"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the task page and the JSON API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	cmd.Flags().String("port", "", "Port to listen on (PORT)")
	_ = viper.BindPFlag(config.KeyPort, cmd.Flags().Lookup("port"))
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer a.Close()

	html, err := view.NewHTMLRenderer()
	if err != nil {
		return err
	}
	h := handler.NewTaskHandler(a.service, html, a.logger)

	srv := http.Server{ // Создаем сервер
		Addr:         ":" + a.cfg.Port,
		Handler:      handler.NewRouter(h),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() { // Запуск сервера и обработка ошибок
		a.logger.Info("Server started", zap.String("addr", srv.Addr), zap.String("storage", a.cfg.StorageDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serveErr:
		if ok {
			a.logger.Error("Server failed", zap.Error(err))
			return err
		}
		return nil
	case <-quit:
	}

	a.logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		a.logger.Error("Shutdown error", zap.Error(err))
		return err
	}
	a.logger.Info("Server stopped successfully")
	return nil
}
