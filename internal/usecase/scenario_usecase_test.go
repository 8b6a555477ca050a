package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/coverage-planner/internal/domain"
	"github.com/coverage-planner/internal/domain/repository"
	"github.com/coverage-planner/internal/pkg/errors"
	"github.com/coverage-planner/internal/usecase"
	"github.com/coverage-planner/internal/usecase/dto"
)

func scenarioRequest() dto.ScenarioRequest {
	return dto.ScenarioRequest{
		Name: "Office",
		Tags: []string{"office"},
		Input: domain.SimulationInput{
			TechnologyID: domain.TechnologyWiFi,
			Building:     domain.Building{LengthM: 50, WidthM: 30, FloorHeightM: 3, FloorCount: 1},
			Link:         domain.LinkParameters{FrequencyMHz: 2400, TxPowerDbm: 20, TargetRssiDbm: -70, SafetyMarginDb: 10},
		},
	}
}

func TestScenarioUseCase_Create(t *testing.T) {
	repo := &MockScenarioRepository{}
	uc := usecase.NewScenarioUseCase(repo, &MockSimulator{}, zap.NewNop())

	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Scenario) bool {
		return s.Name == "Office" && s.Input.Building.LengthM == 50
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Scenario).ID = uuid.New()
	}).Return(nil)

	resp, err := uc.Create(context.Background(), scenarioRequest())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, []string{"office"}, resp.Tags)

	repo.AssertExpectations(t)
}

func TestScenarioUseCase_Create_RejectsInvalidInput(t *testing.T) {
	repo := &MockScenarioRepository{}
	uc := usecase.NewScenarioUseCase(repo, &MockSimulator{}, zap.NewNop())

	tests := []struct {
		name   string
		mutate func(r *dto.ScenarioRequest)
		want   error
	}{
		{"unknown technology", func(r *dto.ScenarioRequest) { r.Input.TechnologyID = "wimax" }, errors.ErrUnknownTechnology},
		{"zero width", func(r *dto.ScenarioRequest) { r.Input.Building.WidthM = 0 }, errors.ErrInvalidDimension},
		{"obstacle on missing floor", func(r *dto.ScenarioRequest) {
			r.Input.Obstacles = []domain.Obstacle{{ID: "o", MaterialID: "wood", Width: 1, Height: 1, FloorLevel: 4}}
		}, errors.ErrUnresolvedReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := scenarioRequest()
			tt.mutate(&req)
			_, err := uc.Create(context.Background(), req)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestScenarioUseCase_List(t *testing.T) {
	repo := &MockScenarioRepository{}
	uc := usecase.NewScenarioUseCase(repo, &MockSimulator{}, zap.NewNop())

	filter := repository.ScenarioFilter{Tags: []string{"office"}, Limit: 5}
	repo.On("List", mock.Anything, filter).Return([]*domain.Scenario{
		{ID: uuid.New(), Name: "A"},
		{ID: uuid.New(), Name: "B"},
	}, 12, nil)

	resp, err := uc.List(context.Background(), dto.ScenarioListRequest{Tags: []string{"office"}, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, 12, resp.Total)
	require.Len(t, resp.Scenarios, 2)
	assert.Equal(t, []string{}, resp.Scenarios[0].Tags)
}

func TestScenarioUseCase_Update_NotFound(t *testing.T) {
	repo := &MockScenarioRepository{}
	uc := usecase.NewScenarioUseCase(repo, &MockSimulator{}, zap.NewNop())

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, errors.ErrScenarioNotFound)

	_, err := uc.Update(context.Background(), id, scenarioRequest())
	assert.ErrorIs(t, err, errors.ErrScenarioNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestScenarioUseCase_Update(t *testing.T) {
	repo := &MockScenarioRepository{}
	uc := usecase.NewScenarioUseCase(repo, &MockSimulator{}, zap.NewNop())

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(&domain.Scenario{ID: id, Name: "old"}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(s *domain.Scenario) bool {
		return s.ID == id && s.Name == "Office"
	})).Return(nil)

	resp, err := uc.Update(context.Background(), id, scenarioRequest())
	require.NoError(t, err)
	assert.Equal(t, "Office", resp.Name)
	repo.AssertExpectations(t)
}

func TestScenarioUseCase_Simulate(t *testing.T) {
	repo := &MockScenarioRepository{}
	sim := &MockSimulator{}
	uc := usecase.NewScenarioUseCase(repo, sim, zap.NewNop())

	id := uuid.New()
	stored := scenarioRequest().Input
	repo.On("GetByID", mock.Anything, id).Return(&domain.Scenario{ID: id, Input: stored}, nil)
	sim.On("Simulate", mock.Anything, mock.MatchedBy(func(req dto.SimulateRequest) bool {
		return req.Building == stored.Building && req.Resolution == 20
	})).Return(&dto.SimulateResponse{RecommendedAPs: 1}, nil)

	resp, err := uc.Simulate(context.Background(), id, dto.SimulateRequest{Resolution: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.RecommendedAPs)
	sim.AssertExpectations(t)
}

func TestScenarioUseCase_Delete(t *testing.T) {
	repo := &MockScenarioRepository{}
	uc := usecase.NewScenarioUseCase(repo, &MockSimulator{}, zap.NewNop())

	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(nil)

	require.NoError(t, uc.Delete(context.Background(), id))
	repo.AssertExpectations(t)
}
