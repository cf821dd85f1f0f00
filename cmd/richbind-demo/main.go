package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/iw2rmb/richbind"
	"github.com/iw2rmb/richbind/config"
)

const appName = "richbind-demo"

type envKey struct{}

// env is the program state shared by commands.
type env struct {
	cfg   *config.Config
	log   *zap.Logger
	start time.Time
}

func envFromContext(ctx context.Context) *env {
	if e, ok := ctx.Value(envKey{}).(*env); ok {
		return e
	}
	return &env{log: zap.NewNop()}
}

func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	e := &env{start: time.Now()}
	configFile := cmd.String("config")
	if e.cfg, err = config.Load(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if e.log, err = e.cfg.Logging.Prepare(); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	e.log.Debug("Program started", zap.Strings("args", os.Args), zap.String("ver", richbind.Version()), zap.String("runtime", runtime.Version()))
	if len(configFile) == 0 {
		e.log.Info("Using defaults (no configuration file)")
	}
	return context.WithValue(ctx, envKey{}, e), nil
}

func destroyAppContext(ctx context.Context, _ *cli.Command) error {
	e := envFromContext(ctx)
	e.log.Debug("Program ended", zap.Duration("elapsed", time.Since(e.start)))
	_ = e.log.Sync()
	return nil
}

func runForm(ctx context.Context, cmd *cli.Command) error {
	e := envFromContext(ctx)

	f := newForm(e.cfg, e.log, cmd.String("value"), cmd.String("loaded"), cmd.Duration("load-after"))
	p := tea.NewProgram(f, tea.WithContext(ctx), tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("form ended with error: %w", err)
	}
	if fm, ok := final.(form); ok {
		fmt.Fprintf(cmd.Root().Writer, "description: %s\nnotes: %s\n", fm.product.Description, fm.product.Notes)
	}
	return nil
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {
	var (
		data []byte
		err  error
	)
	if cmd.Bool("default") {
		data = config.Defaults()
	} else if data, err = config.Dump(envFromContext(ctx).cfg); err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}
	_, err = cmd.Root().Writer.Write(data)
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            appName,
		Usage:           "product form with two controlled rich-text editors",
		Version:         richbind.Version() + " (" + runtime.Version() + ")",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		Action:          runForm,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.StringFlag{Name: "value", Value: "<p>Red running shoes.</p>", Usage: "initial description `HTML`"},
			&cli.StringFlag{Name: "loaded", Value: "<p>Red running shoes, size 9.</p><p>Ships in two days.</p>", Usage: "description `HTML` delivered by the simulated product load"},
			&cli.DurationFlag{Name: "load-after", Usage: "simulate an asynchronous product load after `DURATION` (0 disables)"},
		},
		Commands: []*cli.Command{
			{
				Name:   "dumpconfig",
				Usage:  "Dumps either default or actual configuration (YAML)",
				Action: outputConfiguration,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
			},
		},
	}

	err := app.Run(ctx, os.Args)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
		os.Exit(1)
	}
}
