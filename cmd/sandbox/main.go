package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/annel0/tile-sandbox/internal/config"
	"github.com/annel0/tile-sandbox/internal/logging"
	"github.com/annel0/tile-sandbox/internal/metrics"
	"github.com/annel0/tile-sandbox/internal/observability"
	"github.com/annel0/tile-sandbox/internal/sim"
)

// reportEvery: раз во сколько тиков в лог пишется сводка
const reportEvery = 600

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигурации (по умолчанию $SANDBOX_CONFIG)")
	ticks := flag.Int("ticks", -1, "число тиков; 0: до Ctrl+C (по умолчанию из конфигурации)")
	metricsAddr := flag.String("metrics", "", "адрес Prometheus /metrics, например :2112")
	otelEnabled := flag.Bool("otel", false, "включить экспорт трейсов OTLP/HTTP")
	seed := flag.Int64("seed", 0, "сид мира (0: из конфигурации)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}
	if *ticks >= 0 {
		cfg.Sim.MaxTicks = *ticks
	}
	if *otelEnabled {
		cfg.Telemetry.Enabled = true
	}
	if *seed != 0 {
		cfg.World.Seed = *seed
	}

	if err := setupLogging(cfg.Logging); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()
	defer logging.GetLoggerManager().CloseAll()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, resolveMetricsAddr(*metricsAddr, cfg)); err != nil {
		logging.Error("❌ Симуляция завершилась с ошибкой: %v", err)
		os.Exit(1)
	}
	logging.Info("✅ Симуляция завершена")
}

func run(ctx context.Context, cfg *config.Config, metricsAddr string) error {
	shutdown, err := observability.InitTelemetry(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("инициализация телеметрии: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logging.Warn("Ошибка остановки телеметрии: %v", err)
		}
	}()

	logging.Info("🎮 Генерация мира %dx%d (seed=%d)...", cfg.World.Width, cfg.World.Height, cfg.World.Seed)
	simulation, err := sim.New(ctx, cfg)
	if err != nil {
		return err
	}

	if metricsAddr != "" {
		reg := prometheus.NewRegistry()
		simulation.AttachRecorder(metrics.NewRecorder(reg))

		sampler, err := metrics.NewProcessSampler(reg)
		if err != nil {
			logging.Warn("Статистика процесса недоступна: %v", err)
		} else {
			go sampler.Run(ctx, 5*time.Second)
		}

		exporter := metrics.StartHTTP(metricsAddr, reg)
		defer func() {
			if err := exporter.Stop(context.Background()); err != nil {
				logging.Warn("Ошибка остановки /metrics: %v", err)
			}
		}()
	}

	logging.Info("▶️ Запуск автопилота: %d тиков/с, лимит %d", cfg.Sim.TickRate, cfg.Sim.MaxTicks)
	err = simulation.Run(ctx, sim.NewAutopilot(cfg.Sim.MaxTicks), sim.FrameSinkFunc(report))
	if errors.Is(err, context.Canceled) {
		logging.Info("🛑 Получен сигнал остановки")
		return nil
	}
	return err
}

// report пишет в лог сводку о состоянии симуляции
func report(snap *sim.Snapshot) {
	if snap.Tick%reportEvery != 0 {
		return
	}
	total := 0
	for _, n := range snap.Player.Inventory {
		total += n
	}
	logging.Info("Тик %d: игрок (%.0f, %.0f), блоков в инвентаре %d, предметов в мире %d",
		snap.Tick, snap.Player.Pos.X, snap.Player.Pos.Y, total, len(snap.Drops))
}

// setupLogging применяет секцию logging конфигурации
func setupLogging(cfg config.LoggingConfig) error {
	consoleLevel, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	fileLevel, err := logging.ParseLevel(cfg.FileLevel)
	if err != nil {
		return err
	}

	logging.Configure(logging.Options{
		Dir:          cfg.Dir,
		ConsoleLevel: consoleLevel,
		FileLevel:    fileLevel,
		JSON:         cfg.JSON,
	})
	return logging.InitDefaultLogger("sandbox")
}

// resolveMetricsAddr выбирает адрес /metrics: флаг, затем порт из конфигурации или
// SANDBOX_METRICS_PORT. Пустая строка выключает экспорт.
func resolveMetricsAddr(flagValue string, cfg *config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg.Server.MetricsPort > 0 || os.Getenv("SANDBOX_METRICS_PORT") != "" {
		return fmt.Sprintf(":%d", cfg.Server.GetMetricsPort())
	}
	return ""
}
