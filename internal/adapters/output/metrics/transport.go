package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"tello-block-adapter/internal/domain/model"
	"tello-block-adapter/internal/ports"
)

// InstrumentedTransport counts traffic through another transport.
type InstrumentedTransport struct {
	next       ports.Transport
	commands   *prometheus.CounterVec
	stateReads *prometheus.CounterVec
}

func NewInstrumentedTransport(next ports.Transport, reg prometheus.Registerer) *InstrumentedTransport {
	t := &InstrumentedTransport{
		next: next,
		commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tello_commands_sent_total",
				Help: "Command lines handed to the transport, by verb.",
			},
			[]string{"verb"},
		),
		stateReads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tello_state_reads_total",
				Help: "Telemetry reads, by state key.",
			},
			[]string{"key"},
		),
	}
	reg.MustRegister(t.commands, t.stateReads)
	return t
}

func (t *InstrumentedTransport) Send(line model.CommandLine) {
	verb, _, _ := strings.Cut(string(line), " ")
	t.commands.WithLabelValues(verb).Inc()
	t.next.Send(line)
}

func (t *InstrumentedTransport) State(key model.TelemetryKey) string {
	t.stateReads.WithLabelValues(string(key)).Inc()
	return t.next.State(key)
}
