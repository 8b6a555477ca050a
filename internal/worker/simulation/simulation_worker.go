package simulation

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/coverage-planner/internal/config"
	"github.com/coverage-planner/internal/domain"
	"github.com/coverage-planner/internal/domain/repository"
	"github.com/coverage-planner/internal/pkg/errors"
	"github.com/coverage-planner/internal/usecase"
	"github.com/coverage-planner/internal/usecase/dto"
	"github.com/coverage-planner/internal/worker"
)

const (
	defaultBatchSize = 10
	maxParallel      = 4
	emptyQueueSleep  = 100 * time.Millisecond
	errorSleep       = time.Second
	publishBackoff   = 200 * time.Millisecond
)

// ScenarioRunner - расчёт по сохранённому сценарию
type ScenarioRunner interface {
	Simulate(ctx context.Context, id uuid.UUID, opts dto.SimulateRequest) (*dto.SimulateResponse, error)
}

// SimulationWorker читает заявки из stream:coverage:simulate и публикует
// результаты в stream:coverage:done
type SimulationWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	simulator    usecase.Simulator
	scenarios    ScenarioRunner
	consumerName string
	batchSize    int
	maxRetries   int
}

// NewSimulationWorker создает новый SimulationWorker.
// scenarios может быть nil, тогда заявки по ScenarioID завершаются ошибкой.
func NewSimulationWorker(
	streamRepo repository.StreamRepository,
	simulator usecase.Simulator,
	scenarios ScenarioRunner,
	cfg config.WorkerConfig,
	logger *zap.Logger,
) *SimulationWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	return &SimulationWorker{
		BaseWorker:   worker.NewBaseWorker("coverage-simulation", cfg.ConsumerGroup, logger),
		streamRepo:   streamRepo,
		simulator:    simulator,
		scenarios:    scenarios,
		consumerName: consumerName,
		batchSize:    batchSize,
		maxRetries:   cfg.MaxRetries,
	}
}

// Start запускает воркер
func (w *SimulationWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting SimulationWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamCoverageSimulate, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()
		default:
		}

		processed, err := w.ProcessBatch(ctx)
		switch {
		case err != nil:
			logger.Error("Failed to process batch", zap.Error(err))
			w.Pause(ctx, errorSleep)
		case processed == 0:
			w.Pause(ctx, emptyQueueSleep)
		}
	}
}

// ProcessBatch читает и обрабатывает пачку заявок.
// Возвращает количество прочитанных сообщений.
func (w *SimulationWorker) ProcessBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamCoverageSimulate,
		w.ConsumerGroup(),
		w.consumerName,
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}
	if len(messages) == 0 {
		return 0, nil
	}

	logger.Debug("Processing batch", zap.Int("message_count", len(messages)))

	var (
		mu    sync.Mutex
		acked = make([]string, 0, len(messages))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)

	for _, msg := range messages {
		event, err := parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// битое сообщение подтверждаем, чтобы не застревало
			_ = w.streamRepo.AckMessage(ctx, domain.StreamCoverageSimulate, w.ConsumerGroup(), msg.ID)
			continue
		}

		g.Go(func() error {
			done := w.handleEvent(gctx, event)
			if err := w.publish(gctx, done); err != nil {
				logger.Error("Failed to publish done event",
					zap.String("request_id", event.RequestID.String()),
					zap.Error(err))
				// не подтверждаем: сообщение останется в PEL
				return nil
			}

			mu.Lock()
			acked = append(acked, msg.ID)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if len(acked) > 0 {
		if err := w.streamRepo.AckMessages(ctx, domain.StreamCoverageSimulate, w.ConsumerGroup(), acked); err != nil {
			logger.Error("Failed to ack messages", zap.Error(err))
		}
	}

	logger.Info("Batch processed",
		zap.Int("received", len(messages)),
		zap.Int("acked", len(acked)))

	return len(messages), nil
}

// handleEvent считает заявку. Ошибка расчёта не ломает пачку,
// а уходит в SimulationDoneEvent.
func (w *SimulationWorker) handleEvent(ctx context.Context, event *domain.SimulationRequestEvent) *domain.SimulationDoneEvent {
	done := &domain.SimulationDoneEvent{
		RequestID:  event.RequestID,
		ScenarioID: event.ScenarioID,
	}

	resp, err := w.simulate(ctx, event)
	if err != nil {
		w.Logger().Warn("Simulation failed",
			zap.String("request_id", event.RequestID.String()),
			zap.Error(err))

		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			done.ErrorCode = appErr.Code
			done.Error = appErr.Message
		} else {
			done.ErrorCode = errors.ErrInternalServer.Code
			done.Error = err.Error()
		}
		return done
	}

	budget := resp.LinkBudget
	summary := resp.Horizontal.Summary
	done.LinkBudget = &budget
	done.RecommendedAPs = resp.RecommendedAPs
	done.AccessPoints = resp.AccessPoints
	done.Summary = &summary
	return done
}

func (w *SimulationWorker) simulate(ctx context.Context, event *domain.SimulationRequestEvent) (*dto.SimulateResponse, error) {
	opts := dto.SimulateRequest{OmitGrid: true}

	if event.ScenarioID != nil {
		if w.scenarios == nil {
			return nil, errors.ErrInvalidRequest.WithMessage("Scenario storage is disabled")
		}
		return w.scenarios.Simulate(ctx, *event.ScenarioID, opts)
	}

	opts.SimulationInput = *event.Input
	return w.simulator.Simulate(ctx, opts)
}

// publish повторяет публикацию до maxRetries раз
func (w *SimulationWorker) publish(ctx context.Context, done *domain.SimulationDoneEvent) error {
	var err error
	for attempt := 0; attempt <= w.maxRetries; attempt++ {
		if attempt > 0 {
			w.Pause(ctx, publishBackoff*time.Duration(attempt))
		}
		if err = w.streamRepo.PublishToStream(ctx, domain.StreamCoverageDone, done); err == nil {
			return nil
		}
	}
	return err
}

// parseMessage парсит сообщение из стрима в SimulationRequestEvent
func parseMessage(msg domain.StreamMessage) (*domain.SimulationRequestEvent, error) {
	var event domain.SimulationRequestEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.RequestID == uuid.Nil {
		return nil, fmt.Errorf("missing request_id")
	}
	if (event.ScenarioID == nil) == (event.Input == nil) {
		return nil, fmt.Errorf("exactly one of scenario_id and input is required")
	}

	return &event, nil
}
