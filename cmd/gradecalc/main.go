package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alexanderramin/gradecalc/internal/cli"
	"github.com/alexanderramin/gradecalc/internal/config"
	"github.com/alexanderramin/gradecalc/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Values from ./.env never override the real environment.
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	app := &cli.App{
		Config:   cfg,
		Prompt:   cli.NewFormPrompter(),
		OpenFile: cli.OpenFile,
		Setup:    wireServices,
	}

	// Detect interactive terminal for the class form and weight confirm.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}

// wireServices builds the services once flags are parsed, so --verbose can
// switch on use-case logging.
func wireServices(app *cli.App) error {
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if app.Config.Log.Enabled {
		observer = service.NewSlogUseCaseObserver(newLogger(os.Stderr, app.Config.Log))
	}

	app.Schemes = service.NewSchemeService()
	app.Workbooks = service.NewWorkbookService(observer)
	app.Scores = service.NewScoreService(observer)
	return nil
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.JSON() {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
