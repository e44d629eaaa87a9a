package config

import (
	"os"

	"github.com/joho/godotenv"
	"tello-block-adapter/internal/domain/model"
)

const (
	DefaultDroneAddr = "192.168.10.1:8889"
	DefaultLocalAddr = ":9000"
	DefaultStateAddr = ":8890"
	DefaultListen    = ":8080"
	DefaultPrefix    = "tello"
	DefaultInterval  = "1s"
	DefaultPath      = "config.json"
)

// LoadEnv reads an optional .env file into the process environment. A missing
// file is not an error.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return err
		}
	}
	return nil
}

// FromEnv builds a configuration from environment variables with defaults.
func FromEnv() *model.Config {
	return &model.Config{
		Locale:            getEnv("LOCALE", string(model.LocaleEnglish)),
		DroneAddr:         getEnv("TELLO_ADDR", DefaultDroneAddr),
		LocalAddr:         getEnv("TELLO_LOCAL_ADDR", DefaultLocalAddr),
		StateAddr:         getEnv("TELLO_STATE_ADDR", DefaultStateAddr),
		ListenAddr:        getEnv("LISTEN_ADDR", DefaultListen),
		MQTTBroker:        getEnv("MQTT_BROKER", ""),
		MQTTPrefix:        getEnv("MQTT_PREFIX", DefaultPrefix),
		TelemetryInterval: getEnv("TELEMETRY_INTERVAL", DefaultInterval),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFile:           getEnv("LOG_FILE", ""),
	}
}

// Merge fills empty fields of cfg from fallback. Set environment variables win
// over persisted values.
func Merge(cfg, fallback *model.Config) *model.Config {
	out := *fallback
	if cfg == nil {
		return &out
	}
	pick := func(dst *string, key, persisted string) {
		if os.Getenv(key) == "" && persisted != "" {
			*dst = persisted
		}
	}
	pick(&out.Locale, "LOCALE", cfg.Locale)
	pick(&out.DroneAddr, "TELLO_ADDR", cfg.DroneAddr)
	pick(&out.LocalAddr, "TELLO_LOCAL_ADDR", cfg.LocalAddr)
	pick(&out.StateAddr, "TELLO_STATE_ADDR", cfg.StateAddr)
	pick(&out.ListenAddr, "LISTEN_ADDR", cfg.ListenAddr)
	pick(&out.MQTTBroker, "MQTT_BROKER", cfg.MQTTBroker)
	pick(&out.MQTTPrefix, "MQTT_PREFIX", cfg.MQTTPrefix)
	pick(&out.TelemetryInterval, "TELEMETRY_INTERVAL", cfg.TelemetryInterval)
	pick(&out.LogLevel, "LOG_LEVEL", cfg.LogLevel)
	pick(&out.LogFile, "LOG_FILE", cfg.LogFile)
	return &out
}

// Path is where the JSON configuration is persisted.
func Path() string {
	return getEnv("CONFIG_PATH", DefaultPath)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
