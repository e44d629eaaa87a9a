package ports

import (
	"tello-block-adapter/internal/domain/model"
)

// Transport owns the link to the vehicle. Send must not make the caller wait for
// delivery and State must return the latest observed value without blocking.
type Transport interface {
	Send(line model.CommandLine)
	State(key model.TelemetryKey) string
}
