package domain

import "github.com/google/uuid"

// Stream names
const (
	StreamCoverageSimulate = "stream:coverage:simulate"
	StreamCoverageDone     = "stream:coverage:done"
)

// SimulationRequestEvent - входящая заявка на расчёт.
// Либо ScenarioID (сохранённый сценарий), либо Input.
type SimulationRequestEvent struct {
	RequestID  uuid.UUID        `json:"request_id"`
	ScenarioID *uuid.UUID       `json:"scenario_id,omitempty"`
	Input      *SimulationInput `json:"input,omitempty"`
}

// SimulationDoneEvent - результат расчёта для stream:coverage:done
type SimulationDoneEvent struct {
	RequestID      uuid.UUID       `json:"request_id"`
	ScenarioID     *uuid.UUID      `json:"scenario_id,omitempty"`
	LinkBudget     *LinkBudget     `json:"link_budget,omitempty"`
	RecommendedAPs int             `json:"recommended_aps,omitempty"`
	AccessPoints   []AccessPoint   `json:"access_points,omitempty"`
	Summary        *HeatmapSummary `json:"summary,omitempty"`
	ErrorCode      string          `json:"error_code,omitempty"`
	Error          string          `json:"error,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
