package mqtt

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/sirupsen/logrus"
	"tello-block-adapter/internal/domain/model"
	"tello-block-adapter/internal/ports"
)

// Bridge maps <prefix>/command/<opcode> messages onto block dispatches and
// publishes reporter values to <prefix>/telemetry/<opcode>.
type Bridge struct {
	client   ClientAPI
	blocks   ports.BlockPort
	prefix   string
	interval time.Duration
	log      logrus.FieldLogger
}

func NewBridge(client ClientAPI, blocks ports.BlockPort, prefix string, interval time.Duration, log logrus.FieldLogger) *Bridge {
	if interval <= 0 {
		interval = time.Second
	}
	return &Bridge{
		client:   client,
		blocks:   blocks,
		prefix:   strings.TrimSuffix(prefix, "/"),
		interval: interval,
		log:      log.WithField("component", "mqtt_bridge"),
	}
}

func (b *Bridge) commandTopic() string { return b.prefix + "/command/+" }

func (b *Bridge) telemetryTopic(op model.Opcode) string {
	return b.prefix + "/telemetry/" + string(op)
}

// Run subscribes to command topics and publishes telemetry until ctx ends.
func (b *Bridge) Run(ctx context.Context) error {
	topic := b.commandTopic()
	if err := b.client.Subscribe(topic, func(_ paho.Client, msg Message) {
		b.handleCommand(ctx, msg)
	}); err != nil {
		return err
	}
	defer func() {
		if err := b.client.Unsubscribe(topic); err != nil {
			b.log.WithError(err).Warn("unsubscribe failed")
		}
	}()

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	b.publishTelemetry(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			b.publishTelemetry(ctx)
		}
	}
}

func (b *Bridge) handleCommand(ctx context.Context, msg Message) {
	topic := msg.Topic()
	op := model.Opcode(topic[strings.LastIndex(topic, "/")+1:])
	log := b.log.WithField("opcode", op)

	var args map[string]interface{}
	if payload := msg.Payload(); len(strings.TrimSpace(string(payload))) > 0 {
		if err := json.Unmarshal(payload, &args); err != nil {
			log.WithError(err).Warn("invalid command payload")
			return
		}
	}
	if err := b.blocks.Dispatch(ctx, op, args); err != nil {
		log.WithError(err).Warn("command rejected")
	}
}

func (b *Bridge) publishTelemetry(ctx context.Context) {
	snapshot := b.blocks.Snapshot(ctx)
	ops := make([]model.Opcode, 0, len(snapshot))
	for op := range snapshot {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })

	for _, op := range ops {
		if err := b.client.Publish(b.telemetryTopic(op), []byte(snapshot[op])); err != nil {
			b.log.WithError(err).WithField("opcode", op).Warn("telemetry publish failed")
			return
		}
	}
}
