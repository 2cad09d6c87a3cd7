package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/korn-WK/assetskorn1/internal/model"
	"github.com/korn-WK/assetskorn1/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 将资产台账（含部门/负责人/地点联查名称）导出为 Excel (.xlsx)
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportAssets 导出资产台账为 Excel，返回内容、建议文件名
	ExportAssets(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// 台账列头（与资产联查行字段一一对应）
var exportHeaders = []string{
	"Asset Code", "Name", "Description", "Status",
	"Department", "Owner", "Location", "Acquired Date", "Created At",
}

func (s *exportService) ExportAssets(ctx context.Context) (*bytes.Buffer, string, error) {
	rows, err := s.repo.Asset.List(ctx)
	if err != nil {
		s.logger.Error("查询资产列表失败", zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Assets"
	f.SetSheetName("Sheet1", sheet)

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			s.logger.Error("写入表头失败", zap.Error(err))
			return nil, "", ErrExportGenerateFail
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.AssetCode,
			row.Name,
			strOrEmpty(row.Description),
			row.Status,
			strOrEmpty(row.DepartmentName),
			strOrEmpty(row.OwnerName),
			locationText(&row),
			dateOrEmpty(row.AcquiredDate),
			row.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				s.logger.Error("写入数据行失败", zap.Int("row", i+2), zap.Error(err))
				return nil, "", ErrExportGenerateFail
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("序列化 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("assets_%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}

// ── 内部辅助方法 ──

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// locationText 优先取地点表名称，缺失时回落到资产上的自由文本地点
func locationText(row *model.AssetRow) string {
	if row.LocationName != nil && *row.LocationName != "" {
		return *row.LocationName
	}
	return strOrEmpty(row.Location)
}

func dateOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
