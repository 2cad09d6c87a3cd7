package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/korn-WK/assetskorn1/internal/dto"
	"github.com/korn-WK/assetskorn1/internal/model"
	"github.com/korn-WK/assetskorn1/internal/repository"
)

// ── 资产模块业务错误 ──

var (
	ErrAssetNotFound   = errors.New("资产不存在")
	ErrAssetCodeExists = errors.New("资产编号已存在")
	ErrInvalidStatus   = errors.New("资产状态不在枚举范围内")
	ErrInvalidDate     = errors.New("购置日期格式无效")
)

// AssetService 资产业务接口
type AssetService interface {
	List(ctx context.Context) ([]model.AssetRow, error)
	GetByID(ctx context.Context, id int64) (*model.AssetRow, error)
	// ListByStatus 不校验状态枚举：未知状态返回空列表而非错误
	ListByStatus(ctx context.Context, status string) ([]model.AssetRow, error)
	Create(ctx context.Context, req *dto.CreateAssetRequest) (*dto.CreateAssetResponse, error)
	// Update 全量替换语义：未提供的可选字段被置为 NULL
	Update(ctx context.Context, id int64, req *dto.UpdateAssetRequest) error
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*dto.AssetStatsResponse, error)
}

type assetService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAssetService 创建 AssetService 实例
func NewAssetService(repo *repository.Repository, logger *zap.Logger) AssetService {
	return &assetService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *assetService) List(ctx context.Context) ([]model.AssetRow, error) {
	rows, err := s.repo.Asset.List(ctx)
	if err != nil {
		s.logger.Error("查询资产列表失败", zap.Error(err))
		return nil, err
	}
	return rows, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *assetService) GetByID(ctx context.Context, id int64) (*model.AssetRow, error) {
	row, err := s.repo.Asset.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}
		s.logger.Error("查询资产失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return row, nil
}

// ────────────────────── ListByStatus ──────────────────────

func (s *assetService) ListByStatus(ctx context.Context, status string) ([]model.AssetRow, error) {
	rows, err := s.repo.Asset.ListByStatus(ctx, status)
	if err != nil {
		s.logger.Error("按状态查询资产失败", zap.String("status", status), zap.Error(err))
		return nil, err
	}
	return rows, nil
}

// ────────────────────── Create ──────────────────────

func (s *assetService) Create(ctx context.Context, req *dto.CreateAssetRequest) (*dto.CreateAssetResponse, error) {
	status := req.Status
	if status == "" {
		status = model.StatusActive
	}
	if !model.IsValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	// 资产编号唯一性预检（数据库 UNIQUE 约束兜底）
	existing, err := s.repo.Asset.GetByCode(ctx, req.AssetCode)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询资产编号失败", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, ErrAssetCodeExists
	}

	acquiredDate, err := parseAssetDate(req.AcquiredDate)
	if err != nil {
		return nil, err
	}

	asset := &model.Asset{
		AssetCode:    req.AssetCode,
		Name:         req.Name,
		Description:  req.Description,
		LocationID:   req.LocationID,
		Location:     req.Location,
		Status:       status,
		DepartmentID: req.DepartmentID,
		OwnerID:      req.OwnerID,
		ImageURL:     req.ImageURL,
		AcquiredDate: acquiredDate,
	}

	if err := s.repo.Asset.Create(ctx, asset); err != nil {
		s.logger.Error("创建资产失败", zap.String("asset_code", req.AssetCode), zap.Error(err))
		return nil, err
	}

	return &dto.CreateAssetResponse{ID: asset.ID}, nil
}

// ────────────────────── Update ──────────────────────

func (s *assetService) Update(ctx context.Context, id int64, req *dto.UpdateAssetRequest) error {
	if !model.IsValidStatus(req.Status) {
		return ErrInvalidStatus
	}

	// 编号被改为其他资产已占用的值时拒绝
	existing, err := s.repo.Asset.GetByCode(ctx, req.AssetCode)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询资产编号失败", zap.Error(err))
		return err
	}
	if existing != nil && existing.ID != id {
		return ErrAssetCodeExists
	}

	acquiredDate, err := parseAssetDate(req.AcquiredDate)
	if err != nil {
		return err
	}

	asset := &model.Asset{
		AssetCode:    req.AssetCode,
		Name:         req.Name,
		Description:  req.Description,
		LocationID:   req.LocationID,
		Location:     req.Location,
		Status:       req.Status,
		DepartmentID: req.DepartmentID,
		OwnerID:      req.OwnerID,
		ImageURL:     req.ImageURL,
		AcquiredDate: acquiredDate,
	}

	affected, err := s.repo.Asset.Update(ctx, id, asset)
	if err != nil {
		s.logger.Error("更新资产失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	if affected == 0 {
		return ErrAssetNotFound
	}

	return nil
}

// ────────────────────── Delete ──────────────────────

func (s *assetService) Delete(ctx context.Context, id int64) error {
	affected, err := s.repo.Asset.Delete(ctx, id)
	if err != nil {
		s.logger.Error("删除资产失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	if affected == 0 {
		return ErrAssetNotFound
	}
	return nil
}

// ────────────────────── Stats ──────────────────────

func (s *assetService) Stats(ctx context.Context) (*dto.AssetStatsResponse, error) {
	total, err := s.repo.Asset.Count(ctx)
	if err != nil {
		s.logger.Error("统计资产总数失败", zap.Error(err))
		return nil, err
	}

	byStatus, err := s.repo.Asset.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("按状态统计资产失败", zap.Error(err))
		return nil, err
	}

	byDept, err := s.repo.Asset.CountByDepartment(ctx)
	if err != nil {
		s.logger.Error("按部门统计资产失败", zap.Error(err))
		return nil, err
	}

	resp := &dto.AssetStatsResponse{
		Total:        total,
		ByStatus:     make([]dto.StatusCount, 0, len(byStatus)),
		ByDepartment: make([]dto.DepartmentCount, 0, len(byDept)),
	}
	for _, t := range byStatus {
		resp.ByStatus = append(resp.ByStatus, dto.StatusCount{Status: t.Status, Count: t.Count})
	}
	for _, t := range byDept {
		resp.ByDepartment = append(resp.ByDepartment, dto.DepartmentCount{
			DepartmentID:   t.DepartmentID,
			DepartmentName: t.DepartmentName,
			Count:          t.Count,
		})
	}

	return resp, nil
}

// ── 内部辅助方法 ──

// parseAssetDate 解析 YYYY-MM-DD 格式的购置日期；nil 或空串返回 nil
func parseAssetDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &t, nil
}
