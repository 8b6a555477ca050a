package usecase_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/coverage-planner/internal/pkg/errors"
	"github.com/coverage-planner/internal/usecase"
	"github.com/coverage-planner/internal/usecase/dto"
)

func TestExportUseCase_ExportWorkbook(t *testing.T) {
	coverage, _ := newCoverageUseCase(t, nil)
	uc := usecase.NewExportUseCase(coverage, zap.NewNop())

	req := officeRequest()
	req.OmitGrid = true

	data, err := uc.ExportWorkbook(context.Background(), req)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{usecase.SheetSummary, usecase.SheetAccessPoints, usecase.SheetHeatmap}, f.GetSheetList())

	tech, err := f.GetCellValue(usecase.SheetSummary, "B2")
	require.NoError(t, err)
	assert.Equal(t, "wifi", tech)

	apRows, err := f.GetRows(usecase.SheetAccessPoints)
	require.NoError(t, err)
	require.Len(t, apRows, 2)
	assert.Equal(t, "ap-f0-1", apRows[1][0])
	assert.Equal(t, "25", apRows[1][2])

	// сетка 10×10 плюс строка и столбец координат
	heatRows, err := f.GetRows(usecase.SheetHeatmap)
	require.NoError(t, err)
	assert.Len(t, heatRows, 11)
	assert.Len(t, heatRows[0], 11)
}

func TestExportUseCase_PropagatesSimulationError(t *testing.T) {
	sim := &MockSimulator{}
	uc := usecase.NewExportUseCase(sim, zap.NewNop())

	sim.On("Simulate", mock.Anything, mock.Anything).Return(nil, errors.ErrInfeasibleLinkBudget)

	_, err := uc.ExportWorkbook(context.Background(), dto.SimulateRequest{})
	assert.ErrorIs(t, err, errors.ErrInfeasibleLinkBudget)
}
