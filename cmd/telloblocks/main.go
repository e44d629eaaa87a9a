package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"tello-block-adapter/internal/adapters/input/http"
	mqttadapter "tello-block-adapter/internal/adapters/input/mqtt"
	"tello-block-adapter/internal/adapters/output/metrics"
	"tello-block-adapter/internal/adapters/output/persistence"
	"tello-block-adapter/internal/adapters/output/tello"
	"tello-block-adapter/internal/config"
	"tello-block-adapter/internal/domain/mission"
	"tello-block-adapter/internal/domain/model"
	"tello-block-adapter/internal/domain/service"
	"tello-block-adapter/internal/logging"
)

const usage = `usage:
  telloblocks                   serve the block API (and MQTT bridge when MQTT_BROKER is set)
  telloblocks run <mission.yaml> fly one mission and print its report
  telloblocks blocks [locale]   print the block surface as JSON`

func main() {
	if err := config.LoadEnv(".env"); err != nil {
		logrus.WithError(err).Warn("Could not load .env")
	}

	defaults := config.FromEnv()
	configRepo := persistence.NewJSONConfigRepository(config.Path(), defaults)

	persisted, err := configRepo.Get(context.Background())
	if err != nil {
		logrus.WithError(err).Warn("Could not read persisted config, using environment")
		persisted = nil
	}
	cfg := config.Merge(persisted, defaults)

	log := logging.NewLogger(cfg.LogLevel, cfg.LogFile)
	if err := configRepo.Save(context.Background(), cfg); err != nil {
		log.WithError(err).Warn("Could not persist config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	args := os.Args[1:]
	mode := "serve"
	if len(args) > 0 {
		mode = args[0]
	}

	switch mode {
	case "serve":
		err = serve(ctx, cfg, configRepo, log)
	case "run":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		err = runMission(ctx, args[1], cfg, configRepo, log)
	case "blocks":
		locale := ""
		if len(args) > 1 {
			locale = args[1]
		}
		svc := service.NewBlockService(tello.NewClient(cfg.DroneAddr, cfg.LocalAddr, cfg.StateAddr, log), configRepo, log)
		err = printJSON(svc.GetInfo(ctx, locale))
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		log.Fatal(err)
	}
}

func startTransport(ctx context.Context, cfg *model.Config, log *logrus.Logger) (*tello.Client, error) {
	client := tello.NewClient(cfg.DroneAddr, cfg.LocalAddr, cfg.StateAddr, log.WithField("component", "tello"))
	if err := client.Start(ctx); err != nil {
		return nil, fmt.Errorf("start tello link: %w", err)
	}
	log.WithField("drone", cfg.DroneAddr).Info("Tello link started")
	return client, nil
}

func serve(ctx context.Context, cfg *model.Config, configRepo *persistence.JSONConfigRepository, log *logrus.Logger) error {
	client, err := startTransport(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer client.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	transport := metrics.NewInstrumentedTransport(client, reg)

	blockService := service.NewBlockService(transport, configRepo, log)

	if cfg.MQTTBroker != "" {
		mqttClient, err := mqttadapter.New(cfg.MQTTBroker, "telloblocks-"+uuid.NewString()[:8], log)
		if err != nil {
			return err
		}
		defer mqttClient.Disconnect()

		interval, err := time.ParseDuration(cfg.TelemetryInterval)
		if err != nil {
			log.WithError(err).Warnf("Invalid telemetry interval %q, using 1s", cfg.TelemetryInterval)
			interval = time.Second
		}
		bridge := mqttadapter.NewBridge(mqttClient, blockService, cfg.MQTTPrefix, interval, log)
		go func() {
			if err := bridge.Run(ctx); err != nil {
				log.WithError(err).Error("MQTT bridge stopped")
			}
		}()
	}

	api := http.NewServer(blockService, log,
		http.WithStatus(func() interface{} { return client.Status() }),
		http.WithMetrics(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
	)
	log.WithField("addr", cfg.ListenAddr).Info("HTTP Server listening")
	return api.ListenAndServe(ctx, cfg.ListenAddr)
}

func runMission(ctx context.Context, path string, cfg *model.Config, configRepo *persistence.JSONConfigRepository, log *logrus.Logger) error {
	m, err := persistence.LoadMission(path)
	if err != nil {
		return err
	}
	if err := mission.Validate(m); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	client, err := startTransport(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer client.Close()

	blockService := service.NewBlockService(client, configRepo, log)
	report, err := mission.NewRunner(blockService, log).Run(ctx, m)
	if report != nil {
		if perr := printJSON(report); perr != nil {
			log.WithError(perr).Warn("Could not print report")
		}
	}
	return err
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
