package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"tello-block-adapter/internal/domain/model"
)

type recordingTransport struct {
	sent  []model.CommandLine
	state map[model.TelemetryKey]string
}

func (r *recordingTransport) Send(line model.CommandLine) { r.sent = append(r.sent, line) }

func (r *recordingTransport) State(key model.TelemetryKey) string { return r.state[key] }

func TestInstrumentedTransport(t *testing.T) {
	inner := &recordingTransport{state: map[model.TelemetryKey]string{"h": "42"}}
	reg := prometheus.NewRegistry()
	tr := NewInstrumentedTransport(inner, reg)

	tr.Send("up 20")
	tr.Send("up 30")
	tr.Send("takeoff")
	assert.Equal(t, "42", tr.State("h"))

	assert.Equal(t, []model.CommandLine{"up 20", "up 30", "takeoff"}, inner.sent)
	assert.Equal(t, 2.0, testutil.ToFloat64(tr.commands.WithLabelValues("up")))
	assert.Equal(t, 1.0, testutil.ToFloat64(tr.commands.WithLabelValues("takeoff")))
	assert.Equal(t, 1.0, testutil.ToFloat64(tr.stateReads.WithLabelValues("h")))

	n, err := testutil.GatherAndCount(reg, "tello_commands_sent_total")
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
}
