package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/coverage-planner/internal/pkg/errors"
	"github.com/coverage-planner/internal/usecase/dto"
)

// envelope - общий формат ответа API: data при успехе, error при ошибке
type envelope struct {
	Data  json.RawMessage  `json:"data"`
	Error *errors.AppError `json:"error"`
}

// CoverageClient - HTTP клиент сервиса расчёта покрытия
type CoverageClient struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

// NewCoverageClient создаёт клиента для baseURL (например http://localhost:8080)
func NewCoverageClient(baseURL string, timeout time.Duration, logger *zap.Logger) *CoverageClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(2*time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &CoverageClient{
		httpClient: client,
		logger:     logger,
	}
}

// Simulate - POST /api/v1/simulate
func (c *CoverageClient) Simulate(ctx context.Context, req dto.SimulateRequest) (*dto.SimulateResponse, error) {
	var result dto.SimulateResponse
	if err := c.post(ctx, "/api/v1/simulate", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// LinkBudget - POST /api/v1/link-budget
func (c *CoverageClient) LinkBudget(ctx context.Context, req dto.LinkBudgetRequest) (*dto.LinkBudgetResponse, error) {
	var result dto.LinkBudgetResponse
	if err := c.post(ctx, "/api/v1/link-budget", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Technologies - GET /api/v1/technologies
func (c *CoverageClient) Technologies(ctx context.Context) (*dto.TechnologiesResponse, error) {
	var result dto.TechnologiesResponse
	if err := c.do(c.httpClient.R().SetContext(ctx), "GET", "/api/v1/technologies", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *CoverageClient) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(c.httpClient.R().SetContext(ctx).SetBody(body), "POST", path, out)
}

// do выполняет запрос и раскладывает конверт. Ошибка API возвращается как *errors.AppError
// с кодом сервера, так что errors.Is работает с sentinel-значениями.
func (c *CoverageClient) do(req *resty.Request, method, path string, out interface{}) error {
	var env envelope
	resp, err := req.
		SetResult(&env).
		SetError(&env).
		Execute(method, path)
	if err != nil {
		c.logger.Error("Coverage API call failed",
			zap.String("path", path),
			zap.Error(err))
		return fmt.Errorf("failed to call coverage API: %w", err)
	}

	if resp.IsError() {
		if env.Error != nil {
			env.Error.StatusCode = resp.StatusCode()
			c.logger.Warn("Coverage API returned error",
				zap.String("path", path),
				zap.Int("status", resp.StatusCode()),
				zap.String("code", env.Error.Code))
			return env.Error
		}
		return fmt.Errorf("coverage API %s %s: unexpected status %d", method, path, resp.StatusCode())
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s response: %w", path, err)
	}
	return nil
}
