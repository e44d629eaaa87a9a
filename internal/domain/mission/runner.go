package mission

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Knetic/govaluate"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"tello-block-adapter/internal/domain/catalog"
	"tello-block-adapter/internal/domain/model"
	"tello-block-adapter/internal/ports"
)

// ExpressionPrefix marks an argument value as an expression over telemetry,
// e.g. "= 100 - height".
const ExpressionPrefix = "="

var ErrEmptyMission = errors.New("mission has no steps")

type Runner struct {
	blocks ports.BlockPort
	log    logrus.FieldLogger
}

func NewRunner(blocks ports.BlockPort, log logrus.FieldLogger) *Runner {
	return &Runner{blocks: blocks, log: log}
}

// Validate checks every step names a known block and every expression compiles,
// so a bad file fails before the vehicle leaves the ground.
func Validate(m *model.Mission) error {
	if m == nil || len(m.Steps) == 0 {
		return ErrEmptyMission
	}
	for i, step := range m.Steps {
		if _, ok := catalog.Lookup(step.Block); !ok {
			return fmt.Errorf("step %d: unknown block %q", i+1, step.Block)
		}
		for name, v := range step.Args {
			expr, ok := expression(v)
			if !ok {
				continue
			}
			if _, err := govaluate.NewEvaluableExpression(expr); err != nil {
				return fmt.Errorf("step %d: argument %s: %w", i+1, name, err)
			}
		}
	}
	return nil
}

// Run executes the mission step by step. It stops at the first failing step or
// when ctx is cancelled; the report covers the steps completed so far.
func (r *Runner) Run(ctx context.Context, m *model.Mission) (*model.MissionReport, error) {
	if err := Validate(m); err != nil {
		return nil, err
	}

	report := &model.MissionReport{RunID: uuid.NewString(), Mission: m.Name}
	log := r.log.WithFields(logrus.Fields{"run_id": report.RunID, "mission": m.Name})
	log.WithField("steps", len(m.Steps)).Info("mission started")

	for i, step := range m.Steps {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		stepLog := log.WithFields(logrus.Fields{"step": i + 1, "block": step.Block})

		spec, _ := catalog.Lookup(step.Block)
		switch spec.Kind {
		case model.BlockKindReporter:
			v, err := r.blocks.Query(ctx, step.Block)
			if err != nil {
				return report, fmt.Errorf("step %d: %w", i+1, err)
			}
			report.Readings = append(report.Readings, model.Reading{Step: i + 1, Opcode: step.Block, Value: v})
			stepLog.WithField("value", v).Info("reading")
		default:
			args, err := r.resolveArgs(ctx, step.Args)
			if err != nil {
				return report, fmt.Errorf("step %d: %w", i+1, err)
			}
			if err := r.blocks.Dispatch(ctx, step.Block, args); err != nil {
				return report, fmt.Errorf("step %d: %w", i+1, err)
			}
			stepLog.Debug("dispatched")
		}
		report.Completed++

		if step.Wait > 0 {
			select {
			case <-ctx.Done():
				return report, ctx.Err()
			case <-time.After(step.Wait):
			}
		}
	}

	log.Info("mission finished")
	return report, nil
}

func (r *Runner) resolveArgs(ctx context.Context, args map[string]interface{}) (map[string]interface{}, error) {
	if len(args) == 0 {
		return args, nil
	}
	out := make(map[string]interface{}, len(args))
	var params map[string]interface{}
	for name, v := range args {
		expr, ok := expression(v)
		if !ok {
			out[name] = v
			continue
		}
		if params == nil {
			params = telemetryParams(r.blocks.Snapshot(ctx))
		}
		val, err := evaluate(expr, params)
		if err != nil {
			return nil, fmt.Errorf("argument %s: %w", name, err)
		}
		out[name] = val
	}
	return out, nil
}

func expression(v interface{}) (string, bool) {
	s, ok := v.(string)
	if !ok || !strings.HasPrefix(s, ExpressionPrefix) {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(s, ExpressionPrefix)), true
}

func evaluate(expr string, params map[string]interface{}) (interface{}, error) {
	compiled, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		return nil, err
	}
	return compiled.Evaluate(params)
}

// telemetryParams exposes reporter values as expression variables. Values that
// do not parse as numbers read as 0.
func telemetryParams(snapshot map[model.Opcode]string) map[string]interface{} {
	params := make(map[string]interface{}, len(snapshot))
	for op, raw := range snapshot {
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			f = 0
		}
		params[string(op)] = f
	}
	return params
}
