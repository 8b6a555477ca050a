package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/coverage-planner/internal/config"
	"github.com/coverage-planner/internal/domain"
	"github.com/coverage-planner/internal/domain/repository"
	"github.com/coverage-planner/internal/engine"
	"github.com/coverage-planner/internal/observability"
	"github.com/coverage-planner/internal/pkg/errors"
	"github.com/coverage-planner/internal/usecase/dto"
)

// Operation names used in cache keys, metrics and spans
const (
	OpLinkBudget = "link_budget"
	OpPlan       = "plan"
	OpSignal     = "signal"
	OpHeatmap    = "heatmap"
	OpSimulate   = "simulate"
)

// Simulator - полный расчёт покрытия
type Simulator interface {
	Simulate(ctx context.Context, req dto.SimulateRequest) (*dto.SimulateResponse, error)
}

type CoverageUseCase struct {
	cacheRepo  repository.CacheRepository
	metrics    *observability.Collector
	logger     *zap.Logger
	cfg        config.SimulationConfig
	resultTTL  time.Duration
	heatmapTTL time.Duration
}

// NewCoverageUseCase создаёт usecase расчёта. cacheRepo и metrics могут быть nil.
func NewCoverageUseCase(
	cacheRepo repository.CacheRepository,
	metrics *observability.Collector,
	logger *zap.Logger,
	simCfg config.SimulationConfig,
	cacheCfg config.CacheConfig,
) *CoverageUseCase {
	if simCfg.GridResolution <= 0 {
		simCfg.GridResolution = engine.DefaultGridResolution
	}
	if simCfg.MaxGridResolution < simCfg.GridResolution {
		simCfg.MaxGridResolution = simCfg.GridResolution
	}
	if simCfg.OverlapFactor <= 0 {
		simCfg.OverlapFactor = engine.DefaultOverlapFactor
	}
	return &CoverageUseCase{
		cacheRepo:  cacheRepo,
		metrics:    metrics,
		logger:     logger,
		cfg:        simCfg,
		resultTTL:  cacheCfg.SimulationCacheTTL,
		heatmapTTL: cacheCfg.HeatmapCacheTTL,
	}
}

// ComputeLinkBudget считает допустимые потери и радиус покрытия
func (uc *CoverageUseCase) ComputeLinkBudget(ctx context.Context, req dto.LinkBudgetRequest) (*dto.LinkBudgetResponse, error) {
	_, span := observability.Tracer().Start(ctx, "coverage.link_budget")
	defer span.End()

	start := time.Now()
	budget := engine.ComputeLinkBudget(req.ToDomain())
	uc.metrics.ObserveSimulation(OpLinkBudget, nil, time.Since(start))

	span.SetAttributes(attribute.Float64("coverage.radius_m", budget.MaxCoverageRadiusM))

	return &dto.LinkBudgetResponse{
		LinkBudget:   budget,
		FrequencyMHz: req.FrequencyMHz,
	}, nil
}

// PlanAccessPoints считает бюджет и расставляет точки доступа по этажам
func (uc *CoverageUseCase) PlanAccessPoints(ctx context.Context, req dto.PlanRequest) (*dto.PlanResponse, error) {
	ctx, span := observability.Tracer().Start(ctx, "coverage.plan")
	defer span.End()

	return withCache(ctx, uc, OpPlan, req, uc.resultTTL, func(ctx context.Context) (*dto.PlanResponse, error) {
		budget := engine.ComputeLinkBudget(req.Link.ToDomain())

		opts := uc.placementOptions(req.TechnologyID, req.Link.FrequencyMHz, req.Link.TxPowerDbm)
		if req.OverlapFactor != nil {
			opts.OverlapFactor = *req.OverlapFactor
		}
		if req.MountHeightM != nil {
			opts.MountHeightM = *req.MountHeightM
		}

		plan, err := engine.PlanAccessPoints(req.Building, budget, opts)
		if err != nil {
			return nil, err
		}
		return &dto.PlanResponse{LinkBudget: budget, Plan: plan}, nil
	})
}

// ComputeSignalStrength - уровень сигнала в каждой из переданных точек
func (uc *CoverageUseCase) ComputeSignalStrength(ctx context.Context, req dto.SignalRequest) (*dto.SignalResponse, error) {
	ctx, span := observability.Tracer().Start(ctx, "coverage.signal")
	defer span.End()
	span.SetAttributes(attribute.Int("coverage.points", len(req.Points)))

	return withCache(ctx, uc, OpSignal, req, uc.resultTTL, func(ctx context.Context) (*dto.SignalResponse, error) {
		if err := engine.ValidateAccessPoints(req.Building, req.AccessPoints); err != nil {
			return nil, err
		}
		p, err := uc.newPropagator(req.Building, req.Obstacles)
		if err != nil {
			return nil, err
		}

		results := make([]dto.SignalResult, len(req.Points))
		for i, pt := range req.Points {
			results[i] = dto.SignalResult{
				Point3D:           pt,
				SignalStrengthDbm: p.SignalStrength(pt, req.AccessPoints),
			}
		}
		return &dto.SignalResponse{Results: results}, nil
	})
}

// SampleHeatmap строит тепловую карту одного среза
func (uc *CoverageUseCase) SampleHeatmap(ctx context.Context, req dto.HeatmapRequest) (*dto.HeatmapResult, error) {
	ctx, span := observability.Tracer().Start(ctx, "coverage.heatmap")
	defer span.End()

	resolution, err := uc.resolution(req.Resolution)
	if err != nil {
		return nil, err
	}
	req.Resolution = resolution

	return withCache(ctx, uc, OpHeatmap, req, uc.heatmapTTL, func(ctx context.Context) (*dto.HeatmapResult, error) {
		if err := engine.ValidateAccessPoints(req.Building, req.AccessPoints); err != nil {
			return nil, err
		}
		p, err := uc.newPropagator(req.Building, req.Obstacles)
		if err != nil {
			return nil, err
		}
		return sampleView(ctx, p, req.View, req.AccessPoints, resolution, req.TargetRssiDbm)
	})
}

// Simulate - полный конвейер: бюджет, расстановка (или ручные точки доступа),
// горизонтальный и вертикальный срезы, сводки и оценка ёмкости
func (uc *CoverageUseCase) Simulate(ctx context.Context, req dto.SimulateRequest) (*dto.SimulateResponse, error) {
	ctx, span := observability.Tracer().Start(ctx, "coverage.simulate")
	defer span.End()

	resolution, err := uc.resolution(req.Resolution)
	if err != nil {
		return nil, err
	}
	req.Resolution = resolution

	return withCache(ctx, uc, OpSimulate, req, uc.resultTTL, func(ctx context.Context) (*dto.SimulateResponse, error) {
		return uc.simulate(ctx, req)
	})
}

func (uc *CoverageUseCase) simulate(ctx context.Context, req dto.SimulateRequest) (*dto.SimulateResponse, error) {
	span := trace.SpanFromContext(ctx)
	in := req.SimulationInput

	tech, band, err := resolveTechnology(in.TechnologyID, in.Band)
	if err != nil {
		return nil, err
	}

	link := in.Link
	if link.FrequencyMHz == 0 {
		link.FrequencyMHz = band.FrequencyMHz
	}
	if link.TargetRssiDbm == 0 {
		link.TargetRssiDbm = tech.MinRssiDbm
	}

	p, err := uc.newPropagator(in.Building, in.Obstacles)
	if err != nil {
		return nil, err
	}

	budget := engine.ComputeLinkBudget(link)
	resp := &dto.SimulateResponse{
		TechnologyID: tech.ID,
		Band:         band.Band,
		Link:         link,
		LinkBudget:   budget,
	}

	if len(in.AccessPoints) > 0 {
		resp.AccessPoints = manualAccessPoints(in.AccessPoints, tech.ID, link, budget)
		if err := engine.ValidateAccessPoints(in.Building, resp.AccessPoints); err != nil {
			return nil, err
		}
	} else {
		plan, err := engine.PlanAccessPoints(in.Building, budget, uc.placementOptions(tech.ID, link.FrequencyMHz, link.TxPowerDbm))
		if err != nil {
			return nil, err
		}
		resp.Plan = plan
		resp.AccessPoints = plan.AccessPoints
	}
	resp.RecommendedAPs = len(resp.AccessPoints)

	span.SetAttributes(
		attribute.String("coverage.technology", tech.ID),
		attribute.Int("coverage.floors", in.Building.FloorCount),
		attribute.Int("coverage.access_points", resp.RecommendedAPs),
		attribute.Int("coverage.resolution", req.Resolution),
	)

	receiverHeight := uc.cfg.ReceiverHeightM
	if receiverHeight >= in.Building.FloorHeightM {
		receiverHeight = in.Building.FloorHeightM / 2
	}
	if req.ReceiverHeightM != nil {
		receiverHeight = *req.ReceiverHeightM
	}
	slice := uc.cfg.VerticalSlicePercent
	if req.SlicePercent != nil {
		slice = *req.SlicePercent
	}

	horizontalView := domain.HeatmapView{Kind: domain.ViewHorizontal, FloorLevel: req.FloorLevel, HeightM: receiverHeight}
	verticalView := domain.HeatmapView{Kind: domain.ViewVertical, SlicePercent: slice}

	g, gctx := errgroup.WithContext(ctx)
	var horizontal, vertical *dto.HeatmapResult
	g.Go(func() error {
		var err error
		horizontal, err = sampleView(gctx, p, horizontalView, resp.AccessPoints, req.Resolution, link.TargetRssiDbm)
		return err
	})
	g.Go(func() error {
		var err error
		vertical, err = sampleView(gctx, p, verticalView, resp.AccessPoints, req.Resolution, link.TargetRssiDbm)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp.Horizontal = *horizontal
	resp.Vertical = *vertical
	if req.OmitGrid {
		resp.Horizontal.Grid = nil
		resp.Vertical.Grid = nil
	}

	if link.UserDensityPer100m2 > 0 {
		estimate := engine.EstimateCapacity(in.Building, link.UserDensityPer100m2, tech.MaxClientsPerAP)
		resp.Capacity = &estimate
	}

	uc.logger.Debug("Simulation computed",
		zap.String("technology", tech.ID),
		zap.String("band", band.Band),
		zap.Float64("radius_m", budget.MaxCoverageRadiusM),
		zap.Int("access_points", resp.RecommendedAPs),
		zap.Float64("coverage_percent", resp.Horizontal.Summary.CoveragePercent))

	return resp, nil
}

func sampleView(
	ctx context.Context,
	p *engine.Propagator,
	view domain.HeatmapView,
	aps []domain.AccessPoint,
	resolution int,
	target float64,
) (*dto.HeatmapResult, error) {
	_, span := observability.Tracer().Start(ctx, "coverage.heatmap."+string(view.Kind))
	defer span.End()

	grid, err := p.SampleHeatmap(view, aps, engine.HeatmapOptions{
		Resolution:    resolution,
		TargetRssiDbm: target,
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return &dto.HeatmapResult{
		View:       view,
		Resolution: resolution,
		Grid:       grid,
		Summary:    engine.SummarizeHeatmap(grid, target),
	}, nil
}

func (uc *CoverageUseCase) newPropagator(b domain.Building, obstacles []domain.Obstacle) (*engine.Propagator, error) {
	return engine.NewPropagator(b, obstacles, engine.PropagationOptions{
		InterFloorAttenuationDb: uc.cfg.InterFloorAttenuationDb,
	})
}

func (uc *CoverageUseCase) placementOptions(technologyID string, frequencyMHz, txPowerDbm float64) engine.PlacementOptions {
	return engine.PlacementOptions{
		OverlapFactor: uc.cfg.OverlapFactor,
		MountHeightM:  uc.cfg.MountHeightM,
		Technology:    technologyID,
		FrequencyMHz:  frequencyMHz,
		TxPowerDbm:    txPowerDbm,
	}
}

func (uc *CoverageUseCase) resolution(requested int) (int, error) {
	if requested == 0 {
		return uc.cfg.GridResolution, nil
	}
	if requested < 1 || requested > uc.cfg.MaxGridResolution {
		return 0, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"resolution":     requested,
			"max_resolution": uc.cfg.MaxGridResolution,
		})
	}
	return requested, nil
}

// resolveTechnology ищет технологию и диапазон; пустой диапазон - первый из каталога
func resolveTechnology(technologyID, bandLabel string) (domain.TechnologyProfile, domain.FrequencyBand, error) {
	tech, ok := domain.FindTechnology(technologyID)
	if !ok {
		return domain.TechnologyProfile{}, domain.FrequencyBand{}, errors.ErrUnknownTechnology.WithDetails(map[string]interface{}{
			"technology_id": technologyID,
		})
	}
	if bandLabel == "" {
		return tech, tech.Bands[0], nil
	}
	band, ok := tech.FindBand(bandLabel)
	if !ok {
		return domain.TechnologyProfile{}, domain.FrequencyBand{}, errors.ErrUnknownTechnology.WithDetails(map[string]interface{}{
			"technology_id": technologyID,
			"band":          bandLabel,
		})
	}
	return tech, band, nil
}

// manualAccessPoints дополняет заданные вручную точки доступа параметрами линии.
// Точка без частоты получает частоту и мощность линии.
func manualAccessPoints(aps []domain.AccessPoint, technologyID string, link domain.LinkParameters, budget domain.LinkBudget) []domain.AccessPoint {
	result := make([]domain.AccessPoint, len(aps))
	for i, ap := range aps {
		if ap.ID == "" {
			ap.ID = fmt.Sprintf("ap-manual-%d", i+1)
		}
		if ap.Technology == "" {
			ap.Technology = technologyID
		}
		if ap.FrequencyMHz == 0 {
			ap.FrequencyMHz = link.FrequencyMHz
			ap.TxPowerDbm = link.TxPowerDbm
		}
		if ap.CoverageRadiusM == 0 {
			ap.CoverageRadiusM = budget.MaxCoverageRadiusM
		}
		result[i] = ap
	}
	return result
}

// cacheKey - "coverage:<op>:" + md5 канонического JSON входа и констант модели
func (uc *CoverageUseCase) cacheKey(op string, input interface{}) (string, error) {
	payload, err := json.Marshal(struct {
		Input     interface{}             `json:"input"`
		Constants config.SimulationConfig `json:"constants"`
	}{input, uc.cfg})
	if err != nil {
		return "", fmt.Errorf("marshal cache key: %w", err)
	}
	return fmt.Sprintf("coverage:%s:%x", op, md5.Sum(payload)), nil
}

// withCache оборачивает расчёт кешем, метриками и статусом спана.
// Ошибки кеша логируются и не прерывают расчёт.
func withCache[T any](
	ctx context.Context,
	uc *CoverageUseCase,
	op string,
	input interface{},
	ttl time.Duration,
	compute func(ctx context.Context) (*T, error),
) (*T, error) {
	span := trace.SpanFromContext(ctx)

	key, keyErr := uc.cacheKey(op, input)
	if keyErr != nil {
		uc.logger.Warn("Failed to build cache key", zap.String("operation", op), zap.Error(keyErr))
	}

	if uc.cacheRepo != nil && keyErr == nil {
		cached, err := uc.cacheRepo.Get(ctx, key)
		switch {
		case err != nil:
			uc.metrics.ObserveCache(op, observability.CacheError)
			uc.logger.Warn("Cache lookup failed", zap.String("key", key), zap.Error(err))
		case cached != nil:
			var result T
			if err := json.Unmarshal(cached, &result); err == nil {
				uc.metrics.ObserveCache(op, observability.CacheHit)
				span.SetAttributes(attribute.Bool("coverage.cache_hit", true))
				return &result, nil
			}
			uc.metrics.ObserveCache(op, observability.CacheError)
			uc.logger.Warn("Failed to decode cached result", zap.String("key", key))
		default:
			uc.metrics.ObserveCache(op, observability.CacheMiss)
		}
	}

	start := time.Now()
	result, err := compute(ctx)
	uc.metrics.ObserveSimulation(op, err, time.Since(start))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if uc.cacheRepo != nil && keyErr == nil && ttl > 0 {
		data, err := json.Marshal(result)
		if err != nil {
			uc.logger.Warn("Failed to encode result for cache", zap.String("key", key), zap.Error(err))
		} else if err := uc.cacheRepo.Set(ctx, key, data, ttl); err != nil {
			uc.logger.Warn("Failed to cache result", zap.String("key", key), zap.Error(err))
		}
	}

	return result, nil
}
