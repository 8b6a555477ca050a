package simulation_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/coverage-planner/internal/config"
	"github.com/coverage-planner/internal/domain"
	"github.com/coverage-planner/internal/pkg/errors"
	"github.com/coverage-planner/internal/usecase/dto"
	"github.com/coverage-planner/internal/worker/simulation"
)

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	args := m.Called(ctx, stream, group, messageIDs)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// MockSimulator is a mock of usecase.Simulator
type MockSimulator struct {
	mock.Mock
}

func (m *MockSimulator) Simulate(ctx context.Context, req dto.SimulateRequest) (*dto.SimulateResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SimulateResponse), args.Error(1)
}

// MockScenarioRunner is a mock of ScenarioRunner
type MockScenarioRunner struct {
	mock.Mock
}

func (m *MockScenarioRunner) Simulate(ctx context.Context, id uuid.UUID, opts dto.SimulateRequest) (*dto.SimulateResponse, error) {
	args := m.Called(ctx, id, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SimulateResponse), args.Error(1)
}

var workerConfig = config.WorkerConfig{
	ConsumerGroup: "test-group",
	BatchSize:     5,
	MaxRetries:    1,
}

func message(t *testing.T, id string, event interface{}) domain.StreamMessage {
	t.Helper()
	data, err := json.Marshal(event)
	require.NoError(t, err)
	return domain.StreamMessage{ID: id, Data: string(data)}
}

func sampleInput() *domain.SimulationInput {
	return &domain.SimulationInput{
		TechnologyID: domain.TechnologyWiFi,
		Building:     domain.Building{LengthM: 50, WidthM: 30, FloorHeightM: 3, FloorCount: 1},
		Link:         domain.LinkParameters{TxPowerDbm: 20, TargetRssiDbm: -70, SafetyMarginDb: 10},
	}
}

func TestSimulationWorker_Name(t *testing.T) {
	w := simulation.NewSimulationWorker(&MockStreamRepository{}, &MockSimulator{}, nil, workerConfig, zap.NewNop())
	assert.Equal(t, "coverage-simulation", w.Name())
	assert.Equal(t, "test-group", w.ConsumerGroup())
}

func TestSimulationWorker_ProcessBatch_EmptyQueue(t *testing.T) {
	stream := &MockStreamRepository{}
	w := simulation.NewSimulationWorker(stream, &MockSimulator{}, nil, workerConfig, zap.NewNop())

	stream.On("ConsumeBatch", mock.Anything, domain.StreamCoverageSimulate, "test-group", mock.Anything, 5).
		Return([]domain.StreamMessage{}, nil)

	n, err := w.ProcessBatch(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	stream.AssertNotCalled(t, "AckMessages", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSimulationWorker_ProcessBatch_PublishesResultsAndAcks(t *testing.T) {
	stream := &MockStreamRepository{}
	sim := &MockSimulator{}
	w := simulation.NewSimulationWorker(stream, sim, nil, workerConfig, zap.NewNop())

	requestID := uuid.New()
	stream.On("ConsumeBatch", mock.Anything, domain.StreamCoverageSimulate, "test-group", mock.Anything, 5).
		Return([]domain.StreamMessage{
			message(t, "1-0", domain.SimulationRequestEvent{RequestID: requestID, Input: sampleInput()}),
		}, nil)

	sim.On("Simulate", mock.Anything, mock.MatchedBy(func(req dto.SimulateRequest) bool {
		return req.OmitGrid && req.Building.LengthM == 50
	})).Return(&dto.SimulateResponse{
		RecommendedAPs: 1,
		LinkBudget:     domain.LinkBudget{AvailablePathLossDb: 80, MaxCoverageRadiusM: 99.4},
		Horizontal:     dto.HeatmapResult{Summary: domain.HeatmapSummary{CoveragePercent: 100}},
	}, nil)

	stream.On("PublishToStream", mock.Anything, domain.StreamCoverageDone, mock.MatchedBy(func(e *domain.SimulationDoneEvent) bool {
		return e.RequestID == requestID && e.RecommendedAPs == 1 && e.Summary != nil &&
			e.Summary.CoveragePercent == 100 && e.ErrorCode == ""
	})).Return(nil)
	stream.On("AckMessages", mock.Anything, domain.StreamCoverageSimulate, "test-group", []string{"1-0"}).Return(nil)

	n, err := w.ProcessBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	stream.AssertExpectations(t)
	sim.AssertExpectations(t)
}

func TestSimulationWorker_ProcessBatch_MalformedMessagesAreAckedAndSkipped(t *testing.T) {
	stream := &MockStreamRepository{}
	sim := &MockSimulator{}
	w := simulation.NewSimulationWorker(stream, sim, nil, workerConfig, zap.NewNop())

	scenarioID := uuid.New()
	stream.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{
			{ID: "1-0", Data: "not json"},
			message(t, "2-0", domain.SimulationRequestEvent{Input: sampleInput()}),
			message(t, "3-0", domain.SimulationRequestEvent{RequestID: uuid.New()}),
			message(t, "4-0", domain.SimulationRequestEvent{RequestID: uuid.New(), ScenarioID: &scenarioID, Input: sampleInput()}),
		}, nil)
	stream.On("AckMessage", mock.Anything, domain.StreamCoverageSimulate, "test-group", mock.Anything).Return(nil)

	n, err := w.ProcessBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	stream.AssertNumberOfCalls(t, "AckMessage", 4)
	stream.AssertNotCalled(t, "PublishToStream", mock.Anything, mock.Anything, mock.Anything)
	sim.AssertNotCalled(t, "Simulate", mock.Anything, mock.Anything)
}

func TestSimulationWorker_ProcessBatch_SimulationErrorIsReported(t *testing.T) {
	stream := &MockStreamRepository{}
	sim := &MockSimulator{}
	w := simulation.NewSimulationWorker(stream, sim, nil, workerConfig, zap.NewNop())

	requestID := uuid.New()
	stream.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{
			message(t, "1-0", domain.SimulationRequestEvent{RequestID: requestID, Input: sampleInput()}),
		}, nil)
	sim.On("Simulate", mock.Anything, mock.Anything).Return(nil, errors.ErrInfeasibleLinkBudget)
	stream.On("PublishToStream", mock.Anything, domain.StreamCoverageDone, mock.MatchedBy(func(e *domain.SimulationDoneEvent) bool {
		return e.RequestID == requestID && e.ErrorCode == "INFEASIBLE_LINK_BUDGET" && e.Summary == nil
	})).Return(nil)
	stream.On("AckMessages", mock.Anything, mock.Anything, mock.Anything, []string{"1-0"}).Return(nil)

	_, err := w.ProcessBatch(context.Background())
	require.NoError(t, err)
	stream.AssertExpectations(t)
}

func TestSimulationWorker_ProcessBatch_Scenario(t *testing.T) {
	stream := &MockStreamRepository{}
	runner := &MockScenarioRunner{}
	w := simulation.NewSimulationWorker(stream, &MockSimulator{}, runner, workerConfig, zap.NewNop())

	scenarioID := uuid.New()
	stream.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{
			message(t, "1-0", domain.SimulationRequestEvent{RequestID: uuid.New(), ScenarioID: &scenarioID}),
		}, nil)
	runner.On("Simulate", mock.Anything, scenarioID, mock.Anything).
		Return(&dto.SimulateResponse{RecommendedAPs: 3}, nil)
	stream.On("PublishToStream", mock.Anything, domain.StreamCoverageDone, mock.MatchedBy(func(e *domain.SimulationDoneEvent) bool {
		return e.ScenarioID != nil && *e.ScenarioID == scenarioID && e.RecommendedAPs == 3
	})).Return(nil)
	stream.On("AckMessages", mock.Anything, mock.Anything, mock.Anything, []string{"1-0"}).Return(nil)

	_, err := w.ProcessBatch(context.Background())
	require.NoError(t, err)
	runner.AssertExpectations(t)
	stream.AssertExpectations(t)
}

func TestSimulationWorker_ProcessBatch_ScenarioWithoutStorage(t *testing.T) {
	stream := &MockStreamRepository{}
	w := simulation.NewSimulationWorker(stream, &MockSimulator{}, nil, workerConfig, zap.NewNop())

	scenarioID := uuid.New()
	stream.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{
			message(t, "1-0", domain.SimulationRequestEvent{RequestID: uuid.New(), ScenarioID: &scenarioID}),
		}, nil)
	stream.On("PublishToStream", mock.Anything, domain.StreamCoverageDone, mock.MatchedBy(func(e *domain.SimulationDoneEvent) bool {
		return e.ErrorCode == "INVALID_REQUEST"
	})).Return(nil)
	stream.On("AckMessages", mock.Anything, mock.Anything, mock.Anything, []string{"1-0"}).Return(nil)

	_, err := w.ProcessBatch(context.Background())
	require.NoError(t, err)
	stream.AssertExpectations(t)
}

func TestSimulationWorker_ProcessBatch_PublishFailureLeavesMessagePending(t *testing.T) {
	stream := &MockStreamRepository{}
	sim := &MockSimulator{}
	w := simulation.NewSimulationWorker(stream, sim, nil, workerConfig, zap.NewNop())

	stream.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{
			message(t, "1-0", domain.SimulationRequestEvent{RequestID: uuid.New(), Input: sampleInput()}),
		}, nil)
	sim.On("Simulate", mock.Anything, mock.Anything).Return(&dto.SimulateResponse{}, nil)
	stream.On("PublishToStream", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	_, err := w.ProcessBatch(context.Background())
	require.NoError(t, err)

	// MaxRetries = 1: первая попытка и один повтор
	stream.AssertNumberOfCalls(t, "PublishToStream", 2)
	stream.AssertNotCalled(t, "AckMessages", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSimulationWorker_StartStops(t *testing.T) {
	stream := &MockStreamRepository{}
	w := simulation.NewSimulationWorker(stream, &MockSimulator{}, nil, workerConfig, zap.NewNop())

	stream.On("CreateConsumerGroup", mock.Anything, domain.StreamCoverageSimulate, "test-group").Return(nil)
	stream.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{}, nil)

	done := make(chan error, 1)
	go func() { done <- w.Start(context.Background()) }()

	require.NoError(t, w.Stop())
	assert.NoError(t, <-done)
}
