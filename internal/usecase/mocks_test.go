package usecase_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/coverage-planner/internal/domain"
	"github.com/coverage-planner/internal/domain/repository"
	"github.com/coverage-planner/internal/usecase/dto"
)

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// MockScenarioRepository is a mock of ScenarioRepository
type MockScenarioRepository struct {
	mock.Mock
}

func (m *MockScenarioRepository) Create(ctx context.Context, scenario *domain.Scenario) error {
	args := m.Called(ctx, scenario)
	return args.Error(0)
}

func (m *MockScenarioRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Scenario, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Scenario), args.Error(1)
}

func (m *MockScenarioRepository) List(ctx context.Context, filter repository.ScenarioFilter) ([]*domain.Scenario, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*domain.Scenario), args.Int(1), args.Error(2)
}

func (m *MockScenarioRepository) Update(ctx context.Context, scenario *domain.Scenario) error {
	args := m.Called(ctx, scenario)
	return args.Error(0)
}

func (m *MockScenarioRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSimulator is a mock of Simulator
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
