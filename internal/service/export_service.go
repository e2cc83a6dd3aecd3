package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hapitzutzia/internal/models"

	"github.com/xuri/excelize/v2"
)

const repairExportSheet = "Repairs"

var repairExportHeaders = []string{
	"ID", "Customer", "Phone", "Board type", "Description", "Urgency", "Delivery",
	"Status", "Price", "Created at", "Started at", "Ready at", "Archived at",
}

// ExportService 维修单导出服务
type ExportService struct {
	repairService *RepairService
	now           func() time.Time
}

// NewExportService 创建导出服务
func NewExportService(repairService *RepairService) *ExportService {
	return &ExportService{repairService: repairService, now: time.Now}
}

// ExportRepairs 按筛选条件导出维修单为 xlsx（忽略分页）
func (s *ExportService) ExportRepairs(ctx context.Context, input RepairListInput) (*excelize.File, string, error) {
	input.Page = 0
	input.PageSize = 0
	repairs, _, err := s.repairService.List(ctx, input)
	if err != nil {
		return nil, "", err
	}

	f, err := buildRepairWorkbook(repairs)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	filename := fmt.Sprintf("repairs_%s.xlsx", s.now().Format("20060102_150405"))
	return f, filename, nil
}

func formatExportTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

func buildRepairWorkbook(repairs []models.Repair) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", repairExportSheet); err != nil {
		_ = f.Close()
		return nil, err
	}

	// 表头样式: 加粗
	boldStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	for i, h := range repairExportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		_ = f.SetCellValue(repairExportSheet, cell, h)
		_ = f.SetCellStyle(repairExportSheet, cell, cell, boldStyle)
	}

	for rowIdx, repair := range repairs {
		row := rowIdx + 2
		customerName, phone := "", ""
		if repair.Customer != nil {
			customerName = repair.Customer.Name
			phone = repair.Customer.Phone
		}
		delivery := repair.DeliveryLocation
		if repair.DeliveryOther != nil && *repair.DeliveryOther != "" {
			delivery += " (" + *repair.DeliveryOther + ")"
		}
		values := []interface{}{
			repair.ID, customerName, phone, repair.BoardType, repair.Description, repair.Urgency,
			delivery, repair.Status, nil, repair.CreatedAt.Format("2006-01-02 15:04"),
			formatExportTime(repair.StartedAt), formatExportTime(repair.ReadyAt), formatExportTime(repair.ArchivedAt),
		}
		if repair.Price.Valid {
			values[8] = repair.Price.Money.InexactFloat64()
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(repairExportSheet, cell, &values); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	_ = f.SetColWidth(repairExportSheet, "B", "B", 20)
	_ = f.SetColWidth(repairExportSheet, "E", "E", 40)
	return f, nil
}
