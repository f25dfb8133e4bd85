package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/l1jgo/asteroids/internal/config"
	"github.com/l1jgo/asteroids/internal/game"
	"github.com/l1jgo/asteroids/internal/input"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func printBanner(cfg *config.Config) {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m                ASTEROIDS                  \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
	fmt.Printf("  \033[32m▶\033[0m tick %s, boundary %.1f\n", cfg.Simulation.TickRate, cfg.Simulation.BoundaryRadius)
	fmt.Println("  \033[32m▶\033[0m type held keys per line (e.g. \"w space\"), empty line releases all")
	fmt.Println()
}

func run() error {
	// 1. Load config
	cfgPath := "config/asteroids.toml"
	explicit := false
	if p := os.Getenv("ASTEROIDS_CONFIG"); p != "" {
		cfgPath = p
		explicit = true
	}
	var (
		cfg *config.Config
		err error
	)
	if explicit {
		cfg, err = config.Load(cfgPath)
	} else {
		cfg, err = config.LoadOrDefault(cfgPath)
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner(cfg)

	// 3. Build the simulation
	g, err := game.New(cfg, log)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	defer g.Close()

	// 4. Run the key feed and the game loop until quit or signal
	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	keys := make(chan []input.Key, 8)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return feedKeys(ctx, os.Stdin, keys, log)
	})
	eg.Go(func() error {
		defer cancel()
		return loop(ctx, g, cfg.Simulation.TickRate, keys, log)
	})
	return eg.Wait()
}

// loop ticks the game at a fixed rate. The last reported key set stays held
// until a new one arrives.
func loop(ctx context.Context, g *game.Game, tick time.Duration, keys <-chan []input.Key, log *zap.Logger) error {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	hudEvery := uint64(time.Second / tick)
	if hudEvery == 0 {
		hudEvery = 1
	}
	var held []input.Key
	for {
		select {
		case <-ctx.Done():
			log.Info("shutting down", zap.Uint64("ticks", g.Ticks()))
			return nil
		case <-ticker.C:
		drain:
			for {
				select {
				case k := <-keys:
					held = k
				default:
					break drain
				}
			}
			g.Tick(tick, held)
			if g.QuitRequested() {
				log.Info("quit requested", zap.Uint64("ticks", g.Ticks()))
				return nil
			}
			if g.Ticks()%hudEvery == 0 {
				hud := g.HUD()
				log.Info("hud",
					zap.Stringer("state", hud.State),
					zap.Float64("score", hud.Score),
					zap.Bool("player", hud.HasPlayer),
					zap.String("health", fmt.Sprintf("%.1f%%", hud.HealthPercent)),
					zap.Int("asteroids", hud.Asteroids),
					zap.Int("entities", hud.Entities),
				)
			}
		}
	}
}

// feedKeys reads one held-key set per input line.
func feedKeys(ctx context.Context, r io.Reader, out chan<- []input.Key, log *zap.Logger) error {
	lines := scanLines(ctx, r)
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			held, err := input.ParseKeys(line)
			if err != nil {
				log.Warn("ignored input line", zap.String("line", line), zap.Error(err))
				continue
			}
			select {
			case out <- held:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// scanLines streams lines from r until EOF or ctx ends. A read blocked on r
// is only released by the next line or EOF.
func scanLines(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

// newLogger builds the process logger, named after the simulation and
// tagged with the configured tick.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("logging.level: %w", err)
	}

	var zapCfg zap.Config
	switch cfg.Logging.Format {
	case "json":
		zapCfg = zap.NewProductionConfig()
		zapCfg.EncoderConfig.TimeKey = "time"
		zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	case "", "console":
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		zapCfg.EncoderConfig.EncodeName = zapcore.FullNameEncoder
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	default:
		return nil, fmt.Errorf("logging.format: unknown format %q", cfg.Logging.Format)
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.InitialFields = map[string]any{
		"tick": cfg.Simulation.TickRate.String(),
	}

	log, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}
	return log.Named("asteroids"), nil
}
