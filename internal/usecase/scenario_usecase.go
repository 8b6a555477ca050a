package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/coverage-planner/internal/domain"
	"github.com/coverage-planner/internal/domain/repository"
	"github.com/coverage-planner/internal/engine"
	"github.com/coverage-planner/internal/usecase/dto"
)

// ScenarioUseCase - сохранённые входные данные и их повторный расчёт
type ScenarioUseCase struct {
	scenarioRepo repository.ScenarioRepository
	simulator    Simulator
	logger       *zap.Logger
}

func NewScenarioUseCase(
	scenarioRepo repository.ScenarioRepository,
	simulator Simulator,
	logger *zap.Logger,
) *ScenarioUseCase {
	return &ScenarioUseCase{
		scenarioRepo: scenarioRepo,
		simulator:    simulator,
		logger:       logger,
	}
}

func (uc *ScenarioUseCase) Create(ctx context.Context, req dto.ScenarioRequest) (*dto.ScenarioResponse, error) {
	if err := validateInput(req.Input); err != nil {
		return nil, err
	}

	scenario := &domain.Scenario{
		Name:        req.Name,
		Description: req.Description,
		Tags:        req.Tags,
		Input:       req.Input,
	}
	if err := uc.scenarioRepo.Create(ctx, scenario); err != nil {
		return nil, err
	}

	uc.logger.Info("Scenario created",
		zap.String("id", scenario.ID.String()),
		zap.String("name", scenario.Name))

	resp := dto.NewScenarioResponse(scenario)
	return &resp, nil
}

func (uc *ScenarioUseCase) Get(ctx context.Context, id uuid.UUID) (*dto.ScenarioResponse, error) {
	scenario, err := uc.scenarioRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewScenarioResponse(scenario)
	return &resp, nil
}

func (uc *ScenarioUseCase) List(ctx context.Context, req dto.ScenarioListRequest) (*dto.ScenarioListResponse, error) {
	filter := repository.ScenarioFilter{
		Tags:   req.Tags,
		Limit:  req.Limit,
		Offset: req.Offset,
	}

	scenarios, total, err := uc.scenarioRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ScenarioListResponse{
		Scenarios: make([]dto.ScenarioResponse, 0, len(scenarios)),
		Total:     total,
		Limit:     req.Limit,
		Offset:    req.Offset,
	}
	for _, s := range scenarios {
		resp.Scenarios = append(resp.Scenarios, dto.NewScenarioResponse(s))
	}
	return resp, nil
}

func (uc *ScenarioUseCase) Update(ctx context.Context, id uuid.UUID, req dto.ScenarioRequest) (*dto.ScenarioResponse, error) {
	if err := validateInput(req.Input); err != nil {
		return nil, err
	}

	existing, err := uc.scenarioRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Tags = req.Tags
	existing.Input = req.Input

	if err := uc.scenarioRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	resp := dto.NewScenarioResponse(existing)
	return &resp, nil
}

func (uc *ScenarioUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.scenarioRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("Scenario deleted", zap.String("id", id.String()))
	return nil
}

// Simulate загружает сценарий и запускает полный расчёт.
// Параметры сетки и срезов берутся из opts, входные данные - из сценария.
func (uc *ScenarioUseCase) Simulate(ctx context.Context, id uuid.UUID, opts dto.SimulateRequest) (*dto.SimulateResponse, error) {
	scenario, err := uc.scenarioRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	opts.SimulationInput = scenario.Input
	return uc.simulator.Simulate(ctx, opts)
}

// validateInput не даёт сохранить сценарий, который заведомо не посчитается
func validateInput(in domain.SimulationInput) error {
	if _, _, err := resolveTechnology(in.TechnologyID, in.Band); err != nil {
		return err
	}
	if err := engine.ValidateBuilding(in.Building); err != nil {
		return err
	}
	if _, err := engine.ValidateObstacles(in.Building, in.Obstacles, domain.DefaultMaterialTable()); err != nil {
		return err
	}
	return nil
}
