package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"tello-block-adapter/internal/domain/catalog"
	"tello-block-adapter/internal/domain/locale"
	"tello-block-adapter/internal/domain/model"
)

type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Send(line model.CommandLine) {
	m.Called(line)
}

func (m *MockTransport) State(key model.TelemetryKey) string {
	args := m.Called(key)
	return args.String(0)
}

type MockConfigRepo struct {
	mock.Mock
}

func (m *MockConfigRepo) Get(ctx context.Context) (*model.Config, error) {
	args := m.Called(ctx)
	cfg, _ := args.Get(0).(*model.Config)
	return cfg, args.Error(1)
}

func (m *MockConfigRepo) Save(ctx context.Context, cfg *model.Config) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newService(tr *MockTransport, locale string) (*BlockService, *MockConfigRepo) {
	repo := new(MockConfigRepo)
	repo.On("Get", mock.Anything).Return(&model.Config{Locale: locale}, nil).Maybe()
	return NewBlockService(tr, repo, quietLogger()), repo
}

func TestBlockService_GetInfo(t *testing.T) {
	s, _ := newService(new(MockTransport), "")
	ctx := context.Background()

	for _, l := range locale.Supported() {
		info := s.GetInfo(ctx, string(l))
		assert.Equal(t, l, info.Locale)
		assert.Equal(t, "tello", info.ID)
		assert.True(t, info.ShowStatusButton)
		require.Len(t, info.Blocks, len(catalog.All()))

		seen := map[model.Opcode]int{}
		for _, b := range info.Blocks {
			seen[b.Opcode]++
			assert.NotEmpty(t, b.Text, "%s/%s", l, b.Opcode)
		}
		for _, spec := range catalog.All() {
			assert.Equal(t, 1, seen[spec.Opcode], spec.Opcode)
		}
	}

	info := s.GetInfo(ctx, "ja")
	assert.Equal(t, "離陸する", info.Blocks[0].Text)
	assert.Equal(t, []string{"Forward", "Back", "Left", "Right"}, info.Menus["takeput"])
}

func TestBlockService_GetInfoArguments(t *testing.T) {
	s, _ := newService(new(MockTransport), "")
	info := s.GetInfo(context.Background(), "en")

	byOp := map[model.Opcode]model.BlockDescriptor{}
	for _, b := range info.Blocks {
		byOp[b.Opcode] = b
	}

	up := byOp[model.OpUp]
	assert.Equal(t, model.BlockKindCommand, up.BlockType)
	assert.Equal(t, model.ArgumentTypeNumber, up.Arguments["X"].Type)
	assert.Equal(t, 20, up.Arguments["X"].DefaultValue)

	flip := byOp[model.OpFlip]
	assert.Equal(t, model.ArgumentTypeString, flip.Arguments["TAKEPUT"].Type)
	assert.Equal(t, "Forward", flip.Arguments["TAKEPUT"].DefaultValue)
	assert.Equal(t, "takeput", flip.Arguments["TAKEPUT"].Menu)

	assert.Nil(t, byOp[model.OpTakeoff].Arguments)
	assert.Equal(t, model.BlockKindReporter, byOp[model.OpHeight].BlockType)
	assert.Equal(t, "height from takeoff point", byOp[model.OpHeight].Text)
}

func TestBlockService_GetInfoFallsBack(t *testing.T) {
	s, _ := newService(new(MockTransport), "zh-cn")
	ctx := context.Background()

	assert.Equal(t, model.LocaleSimplifiedChinese, s.GetInfo(ctx, "").Locale)
	assert.Equal(t, model.LocaleEnglish, s.GetInfo(ctx, "fr").Locale)
}

func TestBlockService_GetInfoIdempotent(t *testing.T) {
	s, _ := newService(new(MockTransport), "")
	ctx := context.Background()
	assert.Equal(t, s.GetInfo(ctx, "ja-Hira"), s.GetInfo(ctx, "ja-Hira"))
}

func TestBlockService_GetInfoWithoutConfig(t *testing.T) {
	repo := new(MockConfigRepo)
	repo.On("Get", mock.Anything).Return(nil, errors.New("boom"))
	s := NewBlockService(new(MockTransport), repo, quietLogger())
	assert.Equal(t, model.LocaleEnglish, s.GetInfo(context.Background(), "").Locale)
}

func TestBlockService_Dispatch(t *testing.T) {
	tr := new(MockTransport)
	tr.On("Send", mock.Anything).Return()
	s, _ := newService(tr, "")
	ctx := context.Background()

	assert.NoError(t, s.Dispatch(ctx, model.OpUp, map[string]interface{}{"X": 20}))
	assert.NoError(t, s.Dispatch(ctx, model.OpSpeed, map[string]interface{}{"X": 50}))
	assert.NoError(t, s.Dispatch(ctx, model.OpTakeoff, nil))
	assert.NoError(t, s.Dispatch(ctx, model.OpFlip, map[string]interface{}{"TAKEPUT": "Left"}))
	assert.NoError(t, s.Dispatch(ctx, model.OpFlip, map[string]interface{}{"TAKEPUT": "sideways"}))

	tr.AssertCalled(t, "Send", model.CommandLine("up 20"))
	tr.AssertCalled(t, "Send", model.CommandLine("speed 50"))
	tr.AssertCalled(t, "Send", model.CommandLine("takeoff"))
	tr.AssertCalled(t, "Send", model.CommandLine("flip l"))
	tr.AssertCalled(t, "Send", model.CommandLine("flip r"))
	tr.AssertNumberOfCalls(t, "Send", 5)
}

func TestBlockService_DispatchRejectsMisuse(t *testing.T) {
	tr := new(MockTransport)
	s, _ := newService(tr, "")
	ctx := context.Background()

	err := s.Dispatch(ctx, "hover", nil)
	assert.True(t, errors.Is(err, ErrUnknownOpcode))

	err = s.Dispatch(ctx, model.OpBat, nil)
	assert.True(t, errors.Is(err, ErrNotCommand))

	tr.AssertNotCalled(t, "Send", mock.Anything)
}

func TestBlockService_Query(t *testing.T) {
	tr := new(MockTransport)
	tr.On("State", model.TelemetryKey("h")).Return("120")
	tr.On("State", model.TelemetryKey("pitch")).Return("-3")
	s, _ := newService(tr, "")
	ctx := context.Background()

	v, err := s.Query(ctx, model.OpHeight)
	assert.NoError(t, err)
	assert.Equal(t, "120", v)

	v, err = s.Query(ctx, model.OpPitch)
	assert.NoError(t, err)
	assert.Equal(t, "-3", v)

	_, err = s.Query(ctx, model.OpTakeoff)
	assert.True(t, errors.Is(err, ErrNotReporter))
	_, err = s.Query(ctx, "altitude")
	assert.True(t, errors.Is(err, ErrUnknownOpcode))

	tr.AssertNotCalled(t, "State", model.TelemetryKey("height"))
}

func TestBlockService_Snapshot(t *testing.T) {
	tr := new(MockTransport)
	tr.On("State", model.TelemetryKey("h")).Return("80")
	tr.On("State", mock.Anything).Return("")
	s, _ := newService(tr, "")

	snap := s.Snapshot(context.Background())
	assert.Len(t, snap, len(catalog.Reporters()))
	assert.Equal(t, "80", snap[model.OpHeight])
	assert.Equal(t, "", snap[model.OpBat])
}

func TestBlockService_UpdateConfig(t *testing.T) {
	s, repo := newService(new(MockTransport), "en")
	cfg := &model.Config{Locale: "ja"}
	repo.On("Save", mock.Anything, cfg).Return(nil)

	ctx := context.Background()
	require.NoError(t, s.UpdateConfig(ctx, cfg))
	assert.Equal(t, model.LocaleJapanese, s.GetInfo(ctx, "").Locale)

	got, err := s.GetConfig(ctx)
	assert.NoError(t, err)
	assert.Equal(t, cfg, got)
	repo.AssertExpectations(t)
}
