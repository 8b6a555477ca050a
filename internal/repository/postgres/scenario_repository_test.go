package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/coverage-planner/internal/domain"
	"github.com/coverage-planner/internal/domain/repository"
	"github.com/coverage-planner/internal/pkg/errors"
	"github.com/coverage-planner/internal/repository/postgres"
)

var scenarioColumns = []string{
	"id", "name", "description", "tags", "technology_id", "band",
	"building", "obstacles", "link", "access_points", "created_at", "updated_at",
}

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, repository.ScenarioRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "pgx")
	return mock, postgres.NewScenarioRepository(postgres.NewWithDB(sqlxDB, zap.NewNop()))
}

func addScenarioRow(rows *sqlmock.Rows, id uuid.UUID, name string, createdAt time.Time) *sqlmock.Rows {
	return rows.AddRow(
		id.String(), name, "ground floor", "{office,wifi}", "wifi", "2.4GHz",
		[]byte(`{"length_m":50,"width_m":30,"floor_height_m":3,"floor_count":1}`),
		[]byte(`[{"id":"w1","material_id":"brick","x":10,"y":0,"width":0.2,"height":30,"floor_level":0}]`),
		[]byte(`{"frequency_mhz":2400,"tx_power_dbm":20,"target_rssi_dbm":-70,"safety_margin_db":10}`),
		[]byte(`[]`),
		createdAt, createdAt,
	)
}

func TestScenarioRepository_GetByID_Success(t *testing.T) {
	mock, repo := setupMockDB(t)

	id := uuid.New()
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rows := addScenarioRow(sqlmock.NewRows(scenarioColumns), id, "Office", createdAt)

	mock.ExpectQuery(`SELECT (.+) FROM scenarios WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(rows)

	s, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, id, s.ID)
	assert.Equal(t, "Office", s.Name)
	assert.Equal(t, []string{"office", "wifi"}, s.Tags)
	assert.Equal(t, "wifi", s.Input.TechnologyID)
	assert.Equal(t, 50.0, s.Input.Building.LengthM)
	assert.Equal(t, 1, s.Input.Building.FloorCount)
	require.Len(t, s.Input.Obstacles, 1)
	assert.Equal(t, "brick", s.Input.Obstacles[0].MaterialID)
	assert.Equal(t, -70.0, s.Input.Link.TargetRssiDbm)
	assert.Empty(t, s.Input.AccessPoints)
	assert.Equal(t, createdAt, s.CreatedAt)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScenarioRepository_GetByID_NotFound(t *testing.T) {
	mock, repo := setupMockDB(t)

	id := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM scenarios WHERE id = \$1`).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	s, err := repo.GetByID(context.Background(), id)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, errors.ErrScenarioNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScenarioRepository_GetByID_DatabaseError(t *testing.T) {
	mock, repo := setupMockDB(t)

	id := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM scenarios`).
		WithArgs(id).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, errors.ErrDatabaseError)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScenarioRepository_Create(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectExec(`INSERT INTO scenarios`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s := &domain.Scenario{
		Name: "Warehouse",
		Input: domain.SimulationInput{
			TechnologyID: domain.TechnologyWiFi,
			Band:         "5GHz",
			Building:     domain.Building{LengthM: 80, WidthM: 40, FloorHeightM: 6, FloorCount: 1},
			Link:         domain.LinkParameters{FrequencyMHz: 5000, TxPowerDbm: 23, TargetRssiDbm: -67, SafetyMarginDb: 8},
		},
	}

	require.NoError(t, repo.Create(context.Background(), s))
	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.False(t, s.CreatedAt.IsZero())
	assert.Equal(t, s.CreatedAt, s.UpdatedAt)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScenarioRepository_List_WithTags(t *testing.T) {
	mock, repo := setupMockDB(t)

	createdAt := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM scenarios WHERE tags @> \$1`).
		WithArgs(`{"office"}`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	rows := sqlmock.NewRows(scenarioColumns)
	addScenarioRow(rows, uuid.New(), "A", createdAt)
	addScenarioRow(rows, uuid.New(), "B", createdAt)

	mock.ExpectQuery(`SELECT (.+) FROM scenarios WHERE tags @> \$1 ORDER BY created_at DESC LIMIT \$2 OFFSET \$3`).
		WithArgs(`{"office"}`, 10, 0).
		WillReturnRows(rows)

	list, total, err := repo.List(context.Background(), repository.ScenarioFilter{Tags: []string{"office"}, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0].Name)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScenarioRepository_List_DefaultLimit(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM scenarios`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT (.+) FROM scenarios ORDER BY created_at DESC LIMIT \$1 OFFSET \$2`).
		WithArgs(postgres.DefaultScenarioLimit, 0).
		WillReturnRows(sqlmock.NewRows(scenarioColumns))

	list, total, err := repo.List(context.Background(), repository.ScenarioFilter{})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, list)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScenarioRepository_Update_NotFound(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectExec(`UPDATE scenarios SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &domain.Scenario{ID: uuid.New(), Name: "missing"})
	assert.ErrorIs(t, err, errors.ErrScenarioNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScenarioRepository_Delete(t *testing.T) {
	mock, repo := setupMockDB(t)

	id := uuid.New()
	mock.ExpectExec(`DELETE FROM scenarios WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), id))
	require.NoError(t, mock.ExpectationsWereMet())
}
