package usecase

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/coverage-planner/internal/usecase/dto"
)

// Sheet names
const (
	SheetSummary      = "Summary"
	SheetAccessPoints = "Access Points"
	SheetHeatmap      = "Heatmap"
)

// ExportUseCase выгружает результат расчёта в XLSX
type ExportUseCase struct {
	simulator Simulator
	logger    *zap.Logger
}

func NewExportUseCase(simulator Simulator, logger *zap.Logger) *ExportUseCase {
	return &ExportUseCase{
		simulator: simulator,
		logger:    logger,
	}
}

// ExportWorkbook запускает расчёт и возвращает книгу XLSX
func (uc *ExportUseCase) ExportWorkbook(ctx context.Context, req dto.SimulateRequest) ([]byte, error) {
	req.OmitGrid = false

	resp, err := uc.simulator.Simulate(ctx, req)
	if err != nil {
		return nil, err
	}

	data, err := BuildWorkbook(resp)
	if err != nil {
		uc.logger.Error("Failed to build workbook", zap.Error(err))
		return nil, err
	}

	uc.logger.Debug("Workbook exported", zap.Int("bytes", len(data)))
	return data, nil
}

// BuildWorkbook пишет листы Summary, Access Points и Heatmap (горизонтальный срез, dBm)
func BuildWorkbook(resp *dto.SimulateResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetAccessPoints); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetHeatmap); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeSummarySheet(f, resp, headerStyle); err != nil {
		return nil, err
	}
	if err := writeAccessPointsSheet(f, resp, headerStyle); err != nil {
		return nil, err
	}
	if err := writeHeatmapSheet(f, resp); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write to buffer: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummarySheet(f *excelize.File, resp *dto.SimulateResponse, headerStyle int) error {
	h := resp.Horizontal.Summary
	v := resp.Vertical.Summary
	rows := [][]interface{}{
		{"Parameter", "Value"},
		{"Technology", resp.TechnologyID},
		{"Band", resp.Band},
		{"Frequency, MHz", resp.Link.FrequencyMHz},
		{"Tx power, dBm", resp.Link.TxPowerDbm},
		{"Target RSSI, dBm", resp.Link.TargetRssiDbm},
		{"Safety margin, dB", resp.Link.SafetyMarginDb},
		{"Available path loss, dB", resp.LinkBudget.AvailablePathLossDb},
		{"Max coverage radius, m", resp.LinkBudget.MaxCoverageRadiusM},
		{"Access points", resp.RecommendedAPs},
		{"Horizontal coverage, %", h.CoveragePercent},
		{"Horizontal min / mean / max, dBm", fmt.Sprintf("%.1f / %.1f / %.1f", h.MinDbm, h.MeanDbm, h.MaxDbm)},
		{"Vertical coverage, %", v.CoveragePercent},
		{"Vertical min / mean / max, dBm", fmt.Sprintf("%.1f / %.1f / %.1f", v.MinDbm, v.MeanDbm, v.MaxDbm)},
	}
	if resp.Capacity != nil {
		rows = append(rows,
			[]interface{}{"Users per floor", resp.Capacity.UsersPerFloor},
			[]interface{}{"Access points for capacity", resp.Capacity.APsForCapacity},
		)
	}

	if err := writeRows(f, SheetSummary, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetSummary, "A1", "B1", headerStyle); err != nil {
		return fmt.Errorf("failed to set header style: %w", err)
	}
	return f.SetColWidth(SheetSummary, "A", "A", 34)
}

func writeAccessPointsSheet(f *excelize.File, resp *dto.SimulateResponse, headerStyle int) error {
	rows := [][]interface{}{
		{"ID", "Floor", "X, m", "Y, m", "Z, m", "Frequency, MHz", "Tx power, dBm", "Radius, m"},
	}
	for _, ap := range resp.AccessPoints {
		rows = append(rows, []interface{}{
			ap.ID, ap.FloorLevel, ap.X, ap.Y, ap.Z, ap.FrequencyMHz, ap.TxPowerDbm, ap.CoverageRadiusM,
		})
	}

	if err := writeRows(f, SheetAccessPoints, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetAccessPoints, "A1", "H1", headerStyle); err != nil {
		return fmt.Errorf("failed to set header style: %w", err)
	}
	return f.SetPanes(SheetAccessPoints, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// writeHeatmapSheet: первая строка - координаты x, первый столбец - координаты y
func writeHeatmapSheet(f *excelize.File, resp *dto.SimulateResponse) error {
	grid := resp.Horizontal.Grid
	if len(grid) == 0 {
		return nil
	}

	header := make([]interface{}, 0, len(grid[0])+1)
	header = append(header, "y \\ x")
	for _, s := range grid[0] {
		header = append(header, s.X)
	}

	rows := make([][]interface{}, 0, len(grid)+1)
	rows = append(rows, header)
	for _, row := range grid {
		if len(row) == 0 {
			continue
		}
		line := make([]interface{}, 0, len(row)+1)
		line = append(line, row[0].Y)
		for _, s := range row {
			line = append(line, s.SignalStrengthDbm)
		}
		rows = append(rows, line)
	}

	return writeRows(f, SheetHeatmap, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+1, sheet, err)
		}
	}
	return nil
}
