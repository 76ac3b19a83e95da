// cmd/howitzer/main.go
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-howitzer/pkg/audio"
	"github.com/opd-ai/go-howitzer/pkg/config"
	"github.com/opd-ai/go-howitzer/pkg/engine"
	"github.com/opd-ai/go-howitzer/pkg/logging"
	"github.com/opd-ai/go-howitzer/pkg/render"
	engorender "github.com/opd-ai/go-howitzer/pkg/render/engo"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is main with an exit code, so deferred cleanup finishes before the
// process exits.
func run(args []string) int {
	flags := flag.NewFlagSet("howitzer", flag.ContinueOnError)
	configPath := flags.String("config", "howitzer.json", "Path to configuration file")
	createDefault := flags.Bool("default", false, "Create default configuration file")
	renderer := flags.String("renderer", "terminal", "Renderer type: 'terminal' or 'engo'")
	logPath := flags.String("log", "", "Log file (terminal renderer logs nowhere by default)")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger, closeLog, err := openLogger(*logPath, *renderer)
	if err != nil {
		logging.NewLogger().Error(ctx, "Failed to open log file", err, "log_path", *logPath)
		return 1
	}
	defer closeLog()

	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			return 1
		}
		logger.Info(ctx, "Created default configuration file", "config_path", *configPath)
		return 0
	}

	cfg, err := loadConfig(*configPath, logger)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err, "config_path", *configPath)
		return 1
	}

	sim := engine.NewSimulator(cfg, nil, logger)

	if cfg.Display.Sound {
		sound := audio.NewSoundManager(logger)
		if err := sound.Initialize(); err != nil {
			// the game runs fine without sound
			logger.Warn(ctx, "Audio unavailable", "error", err.Error())
		} else {
			sound.Subscribe(sim.EventBus)
			defer sound.Cleanup()
		}
	}

	switch *renderer {
	case "engo":
		engorender.Run(sim, logger)
	case "terminal":
		if err := runTerminal(ctx, sim); err != nil {
			logger.Error(ctx, "Terminal renderer failed", err)
			return 1
		}
	default:
		logger.Error(ctx, "Unknown renderer", nil, "renderer", *renderer)
		return 2
	}

	logger.Info(ctx, "Session over", "shots", sim.Shots, "hits", sim.Hits)
	return 0
}

// openLogger picks the log destination. tcell owns the terminal, so the
// terminal renderer only logs when given a file.
func openLogger(path, renderer string) (*logging.Logger, func(), error) {
	if path == "" {
		if renderer == "terminal" {
			return logging.NewLoggerWithWriter(io.Discard), func() {}, nil
		}
		return logging.NewLogger(), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return logging.NewLoggerWithWriter(f), func() { f.Close() }, nil
}

// loadConfig reads path if it exists, falls back to defaults otherwise, and
// applies HOWITZER_* environment overrides either way.
func loadConfig(path string, logger *logging.Logger) (*config.SimulationConfig, error) {
	cfg := config.DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info(context.Background(), "Configuration file not found, using default configuration",
			"config_path", path,
		)
	} else {
		cfg, err = config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
	}
	if err := config.ApplyEnvironmentOverrides(cfg); err != nil {
		return nil, logging.WrapError(err, "environment overrides")
	}
	return cfg, nil
}

func runTerminal(ctx context.Context, sim *engine.Simulator) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return logging.WrapError(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return logging.WrapError(err, "init screen")
	}
	defer screen.Fini()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := render.NewKeyboardInput()
	go keys.Listen(ctx, screen)

	r := render.NewTerminalRenderer(screen, sim.Zoom(), sim.Config.Screen.Width, sim.Config.Screen.Height)
	return engine.Run(ctx, sim.Config.Display.FrameRate, func() error {
		if keys.Quit() {
			return engine.ErrStop
		}
		sim.Tick(keys.Take())
		sim.Draw(r)
		return nil
	})
}
