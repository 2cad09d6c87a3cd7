package service

import (
	"context"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/korn-WK/assetskorn1/internal/dto"
	"github.com/korn-WK/assetskorn1/internal/model"
	"github.com/korn-WK/assetskorn1/internal/repository"
)

// ── 测试辅助 ──

func setupTestExportService() (ExportService, AssetService, *mockAssetRepo) {
	assetRepo := newMockAssetRepo()
	repo := &repository.Repository{
		Asset:      assetRepo,
		Department: newMockDeptRepo(),
		Location:   newMockLocationRepo(),
		User:       newMockUserRepo(),
	}
	logger := zap.NewNop()
	return NewExportService(repo, logger), NewAssetService(repo, logger), assetRepo
}

// ── ExportAssets 测试 ──

func TestExportService_ExportAssets_EmptyRegister(t *testing.T) {
	svc, _, _ := setupTestExportService()

	buf, filename, err := svc.ExportAssets(context.Background())
	if err != nil {
		t.Fatalf("空台账导出应成功: %v", err)
	}
	if filename == "" {
		t.Error("期望返回建议文件名")
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("导出内容应是合法 xlsx: %v", err)
	}
	defer f.Close()

	// 仅表头行
	v, err := f.GetCellValue("Assets", "A1")
	if err != nil {
		t.Fatalf("读取单元格失败: %v", err)
	}
	if v != "Asset Code" {
		t.Errorf("期望表头 Asset Code，实际=%s", v)
	}
}

func TestExportService_ExportAssets_RowsMatchRegister(t *testing.T) {
	svc, assetSvc, assetRepo := setupTestExportService()
	assetRepo.deptNames[1] = "ฝ่ายไอที"

	_, _ = assetSvc.Create(context.Background(), &dto.CreateAssetRequest{
		AssetCode:    "PC-001",
		Name:         "Laptop",
		Status:       model.StatusBroken,
		DepartmentID: int64Ptr(1),
	})

	buf, _, err := svc.ExportAssets(context.Background())
	if err != nil {
		t.Fatalf("导出应成功: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("导出内容应是合法 xlsx: %v", err)
	}
	defer f.Close()

	code, _ := f.GetCellValue("Assets", "A2")
	if code != "PC-001" {
		t.Errorf("期望 A2=PC-001，实际=%s", code)
	}
	status, _ := f.GetCellValue("Assets", "D2")
	if status != model.StatusBroken {
		t.Errorf("期望 D2=broken，实际=%s", status)
	}
	dept, _ := f.GetCellValue("Assets", "E2")
	if dept != "ฝ่ายไอที" {
		t.Errorf("期望 E2=ฝ่ายไอที，实际=%s", dept)
	}
}
