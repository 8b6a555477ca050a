package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/coverage-planner/internal/domain"
	"github.com/coverage-planner/internal/domain/repository"
	"github.com/coverage-planner/internal/pkg/errors"
)

const (
	// DefaultScenarioLimit - размер страницы списка по умолчанию
	DefaultScenarioLimit = 50
	// MaxScenarioLimit - максимальный размер страницы
	MaxScenarioLimit = 200
)

const scenarioColumns = `
	id, name, description, tags, technology_id, band,
	building, obstacles, link, access_points, created_at, updated_at`

// scenarioRow - строка таблицы scenarios; вложенные структуры хранятся в JSONB
type scenarioRow struct {
	ID           uuid.UUID      `db:"id"`
	Name         string         `db:"name"`
	Description  string         `db:"description"`
	Tags         pq.StringArray `db:"tags"`
	TechnologyID string         `db:"technology_id"`
	Band         string         `db:"band"`
	Building     []byte         `db:"building"`
	Obstacles    []byte         `db:"obstacles"`
	Link         []byte         `db:"link"`
	AccessPoints []byte         `db:"access_points"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (row *scenarioRow) toDomain() (*domain.Scenario, error) {
	s := &domain.Scenario{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Tags:        []string(row.Tags),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
		Input: domain.SimulationInput{
			TechnologyID: row.TechnologyID,
			Band:         row.Band,
		},
	}

	if err := json.Unmarshal(row.Building, &s.Input.Building); err != nil {
		return nil, fmt.Errorf("unmarshal building: %w", err)
	}
	if err := json.Unmarshal(row.Link, &s.Input.Link); err != nil {
		return nil, fmt.Errorf("unmarshal link: %w", err)
	}
	if len(row.Obstacles) > 0 {
		if err := json.Unmarshal(row.Obstacles, &s.Input.Obstacles); err != nil {
			return nil, fmt.Errorf("unmarshal obstacles: %w", err)
		}
	}
	if len(row.AccessPoints) > 0 {
		if err := json.Unmarshal(row.AccessPoints, &s.Input.AccessPoints); err != nil {
			return nil, fmt.Errorf("unmarshal access points: %w", err)
		}
	}

	return s, nil
}

func newScenarioRow(s *domain.Scenario) (*scenarioRow, error) {
	building, err := json.Marshal(s.Input.Building)
	if err != nil {
		return nil, fmt.Errorf("marshal building: %w", err)
	}
	link, err := json.Marshal(s.Input.Link)
	if err != nil {
		return nil, fmt.Errorf("marshal link: %w", err)
	}

	obstacles := s.Input.Obstacles
	if obstacles == nil {
		obstacles = []domain.Obstacle{}
	}
	obstaclesJSON, err := json.Marshal(obstacles)
	if err != nil {
		return nil, fmt.Errorf("marshal obstacles: %w", err)
	}

	aps := s.Input.AccessPoints
	if aps == nil {
		aps = []domain.AccessPoint{}
	}
	apsJSON, err := json.Marshal(aps)
	if err != nil {
		return nil, fmt.Errorf("marshal access points: %w", err)
	}

	tags := s.Tags
	if tags == nil {
		tags = []string{}
	}

	return &scenarioRow{
		ID:           s.ID,
		Name:         s.Name,
		Description:  s.Description,
		Tags:         pq.StringArray(tags),
		TechnologyID: s.Input.TechnologyID,
		Band:         s.Input.Band,
		Building:     building,
		Obstacles:    obstaclesJSON,
		Link:         link,
		AccessPoints: apsJSON,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}, nil
}

type scenarioRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewScenarioRepository(db *DB) repository.ScenarioRepository {
	return &scenarioRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *scenarioRepository) Create(ctx context.Context, scenario *domain.Scenario) error {
	if scenario.ID == uuid.Nil {
		scenario.ID = uuid.New()
	}
	now := time.Now().UTC()
	scenario.CreatedAt = now
	scenario.UpdatedAt = now

	row, err := newScenarioRow(scenario)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO scenarios (` + scenarioColumns + `)
		VALUES (:id, :name, :description, :tags, :technology_id, :band,
			:building, :obstacles, :link, :access_points, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		r.logger.Error("Failed to create scenario",
			zap.String("id", scenario.ID.String()),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	r.logger.Debug("Scenario created", zap.String("id", scenario.ID.String()))
	return nil
}

func (r *scenarioRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Scenario, error) {
	query := `SELECT ` + scenarioColumns + ` FROM scenarios WHERE id = $1`

	var row scenarioRow
	err := r.db.GetContext(ctx, &row, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrScenarioNotFound.WithDetails(map[string]interface{}{
			"id": id.String(),
		})
	}
	if err != nil {
		r.logger.Error("Failed to get scenario by ID", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	scenario, err := row.toDomain()
	if err != nil {
		r.logger.Error("Failed to decode scenario", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return scenario, nil
}

// List возвращает страницу сценариев и общее число подходящих записей.
// Фильтр по тегам требует наличия всех переданных тегов.
func (r *scenarioRepository) List(ctx context.Context, filter repository.ScenarioFilter) ([]*domain.Scenario, int, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultScenarioLimit
	}
	if limit > MaxScenarioLimit {
		limit = MaxScenarioLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	var where []string
	var args []interface{}
	argIdx := 1

	if len(filter.Tags) > 0 {
		where = append(where, fmt.Sprintf("tags @> $%d", argIdx))
		args = append(args, pq.Array(filter.Tags))
		argIdx++
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM scenarios`+whereClause, args...); err != nil {
		r.logger.Error("Failed to count scenarios", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	query := `SELECT ` + scenarioColumns + ` FROM scenarios` + whereClause +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, offset)

	var rows []scenarioRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.logger.Error("Failed to list scenarios", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	scenarios := make([]*domain.Scenario, 0, len(rows))
	for i := range rows {
		s, err := rows[i].toDomain()
		if err != nil {
			r.logger.Warn("Skipping undecodable scenario",
				zap.String("id", rows[i].ID.String()),
				zap.Error(err))
			continue
		}
		scenarios = append(scenarios, s)
	}

	return scenarios, total, nil
}

func (r *scenarioRepository) Update(ctx context.Context, scenario *domain.Scenario) error {
	scenario.UpdatedAt = time.Now().UTC()

	row, err := newScenarioRow(scenario)
	if err != nil {
		return err
	}

	query := `
		UPDATE scenarios SET
			name = :name,
			description = :description,
			tags = :tags,
			technology_id = :technology_id,
			band = :band,
			building = :building,
			obstacles = :obstacles,
			link = :link,
			access_points = :access_points,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, row)
	if err != nil {
		r.logger.Error("Failed to update scenario", zap.String("id", scenario.ID.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return r.expectAffected(result, scenario.ID)
}

func (r *scenarioRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM scenarios WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete scenario", zap.String("id", id.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return r.expectAffected(result, id)
}

func (r *scenarioRepository) expectAffected(result sql.Result, id uuid.UUID) error {
	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read affected rows", zap.String("id", id.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrScenarioNotFound.WithDetails(map[string]interface{}{
			"id": id.String(),
		})
	}
	return nil
}
