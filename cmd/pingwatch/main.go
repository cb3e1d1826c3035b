package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"pingwatch/internal/config"
	"pingwatch/internal/monitor"
	"pingwatch/internal/notify"
	"pingwatch/internal/probe"
	"pingwatch/internal/ui"
)

func main() {
	godotenv.Load(".env")

	var (
		configPath   = flag.String("config", config.DefaultPath(), "path to the configuration file")
		addTarget    = flag.String("add", "", "add a target to the configuration and exit")
		removeTarget = flag.String("remove", "", "remove a target from the configuration and exit")
		listTargets  = flag.Bool("list", false, "print configured targets and exit")
	)
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	store := config.NewStore(*configPath, logger)

	// Editor surface: mutate the target list and exit. The running monitor
	// picks changes up on its next cycle since it reloads every pass.
	if *addTarget != "" || *removeTarget != "" || *listTargets {
		if err := runEditor(store, *addTarget, *removeTarget, *listTargets); err != nil {
			logger.Fatal("edit configuration", zap.Error(err))
		}
		return
	}

	cfg := store.Load()

	client := probeClient(cfg)
	prober := newProber(client, cfg, logger)

	coord := monitor.NewCoordinator(
		prober.Probe,
		monitor.NewDebouncer(cfg.Monitoring.FailThreshold),
		cfg.Monitoring.Workers,
		logger,
	)
	loop := monitor.NewLoop(
		storeSource{store: store},
		coord,
		buildNotifier(cfg, logger),
		nil, // wall clock
		cfg.Monitoring.IntervalDur,
		logger,
	)

	addr := cfg.Server.Addr
	if env := os.Getenv("PINGWATCH_ADDR"); env != "" {
		addr = env
	}
	router := ui.NewRouter(&menuActions{configPath: *configPath, logger: logger}, logger)
	go func() {
		logger.Info("ui listening", zap.String("addr", addr))
		if err := http.ListenAndServe(addr, router); err != nil {
			logger.Error("ui server stopped", zap.Error(err))
		}
	}()

	logger.Info("monitor starting",
		zap.Int("targets", len(cfg.Targets)),
		zap.Duration("interval", cfg.Monitoring.IntervalDur))
	loop.Run(context.Background())
}

// storeSource adapts the config store to the loop's per-cycle reload.
type storeSource struct {
	store *config.Store
}

func (s storeSource) Targets() []probe.Target {
	return probe.ClassifyAll(s.store.Load().Targets)
}

// menuActions implements the side-effecting menu actions. Configure hands
// the config file to the desktop's opener as a separate process; Quit ends
// the process directly.
type menuActions struct {
	configPath string
	logger     *zap.Logger
}

func (a *menuActions) Configure() error {
	cmd := exec.Command("xdg-open", a.configPath)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch editor: %w", err)
	}
	go cmd.Wait()
	return nil
}

func (a *menuActions) Quit() {
	a.logger.Info("quit requested")
	a.logger.Sync()
	os.Exit(0)
}

func probeClient(cfg *config.Config) *http.Client {
	return probe.NewHTTPClient(probe.HTTPClientConfig{
		Timeout:         cfg.Monitoring.HTTPTimeoutDur,
		UserAgent:       cfg.Monitoring.UserAgent,
		MaxIdleConns:    100,
		IdleConnTimeout: 90 * time.Second,
	})
}

func newProber(client *http.Client, cfg *config.Config, logger *zap.Logger) *probe.Prober {
	return probe.NewProber(client, probe.ProberConfig{
		PingAttempts:   cfg.Monitoring.PingAttempts,
		PingRetryDelay: cfg.Monitoring.PingRetryDelayDur,
	}, logger)
}

func buildNotifier(cfg *config.Config, logger *zap.Logger) notify.Notifier {
	var sinks notify.Multi

	if cfg.Notifications.DesktopEnabled() {
		sinks = append(sinks, notify.NewDesktop())
	}

	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	chatID := cfg.Notifications.TelegramChatID
	if raw := os.Getenv("TELEGRAM_CHAT_ID"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			chatID = id
		} else {
			logger.Warn("invalid TELEGRAM_CHAT_ID", zap.String("value", raw))
		}
	}
	if token != "" && chatID != 0 {
		tg, err := notify.NewTelegram(token, chatID)
		if err != nil {
			logger.Warn("telegram notifier disabled", zap.Error(err))
		} else {
			sinks = append(sinks, tg)
		}
	}

	return sinks
}

func runEditor(store *config.Store, add, remove string, list bool) error {
	switch {
	case add != "":
		t, ok := probe.Classify(add)
		if !ok {
			return errors.New("target is empty")
		}
		targets := append(store.Load().Targets, t.Name)
		if err := store.Save(targets); err != nil {
			return err
		}
		fmt.Printf("added %s (%d targets)\n", t.Name, len(targets))

	case remove != "":
		current := store.Load().Targets
		kept := make([]string, 0, len(current))
		for _, t := range current {
			if t != remove {
				kept = append(kept, t)
			}
		}
		if len(kept) == len(current) {
			return fmt.Errorf("target %q not found", remove)
		}
		if err := store.Save(kept); err != nil {
			return err
		}
		fmt.Printf("removed %s (%d targets)\n", remove, len(kept))
	}

	if list {
		for _, t := range store.Load().Targets {
			fmt.Println(t)
		}
	}
	return nil
}
