package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/korn-WK/assetskorn1/internal/model"
)

// StatusTally 按状态分组统计的扫描结果
type StatusTally struct {
	Status string
	Count  int64
}

// DepartmentTally 按部门分组统计的扫描结果
type DepartmentTally struct {
	DepartmentID   *int64
	DepartmentName *string
	Count          int64
}

// AssetRepository 资产数据访问接口
type AssetRepository interface {
	List(ctx context.Context) ([]model.AssetRow, error)
	GetByID(ctx context.Context, id int64) (*model.AssetRow, error)
	GetByCode(ctx context.Context, code string) (*model.Asset, error)
	ListByStatus(ctx context.Context, status string) ([]model.AssetRow, error)
	Create(ctx context.Context, asset *model.Asset) error
	// Update 全列覆盖更新并刷新 updated_at，返回受影响行数
	Update(ctx context.Context, id int64, asset *model.Asset) (int64, error)
	// Delete 物理删除，返回受影响行数
	Delete(ctx context.Context, id int64) (int64, error)
	CountByStatus(ctx context.Context) ([]StatusTally, error)
	CountByDepartment(ctx context.Context) ([]DepartmentTally, error)
	Count(ctx context.Context) (int64, error)
}

type assetRepo struct {
	db *gorm.DB
}

// NewAssetRepo 创建 AssetRepository 实例
func NewAssetRepo(db *gorm.DB) AssetRepository {
	return &assetRepo{db: db}
}

// joined 资产联查基础查询：LEFT JOIN 三张参照表取展示名称
func (r *assetRepo) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("assets AS a").
		Select("a.*, d.name_th AS department_name, u.name AS owner_name, al.name AS location_name").
		Joins("LEFT JOIN departments d ON a.department_id = d.id").
		Joins("LEFT JOIN users u ON a.owner_id = u.id").
		Joins("LEFT JOIN asset_locations al ON a.location_id = al.id")
}

func (r *assetRepo) List(ctx context.Context) ([]model.AssetRow, error) {
	var rows []model.AssetRow
	err := r.joined(ctx).
		Order("a.created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *assetRepo) GetByID(ctx context.Context, id int64) (*model.AssetRow, error) {
	var row model.AssetRow
	err := r.joined(ctx).
		Where("a.id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *assetRepo) GetByCode(ctx context.Context, code string) (*model.Asset, error) {
	var asset model.Asset
	err := r.db.WithContext(ctx).
		Where("asset_code = ?", code).
		Take(&asset).Error
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *assetRepo) ListByStatus(ctx context.Context, status string) ([]model.AssetRow, error) {
	var rows []model.AssetRow
	err := r.joined(ctx).
		Where("a.status = ?", status).
		Order("a.created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *assetRepo) Create(ctx context.Context, asset *model.Asset) error {
	return r.db.WithContext(ctx).Create(asset).Error
}

func (r *assetRepo) Update(ctx context.Context, id int64, asset *model.Asset) (int64, error) {
	// 全量替换：每一列都被覆盖（含 NULL），与部分更新语义明确区分
	tx := r.db.WithContext(ctx).
		Model(&model.Asset{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"asset_code":    asset.AssetCode,
			"name":          asset.Name,
			"description":   asset.Description,
			"location_id":   asset.LocationID,
			"location":      asset.Location,
			"status":        asset.Status,
			"department_id": asset.DepartmentID,
			"owner_id":      asset.OwnerID,
			"image_url":     asset.ImageURL,
			"acquired_date": asset.AcquiredDate,
			"updated_at":    time.Now(),
		})
	return tx.RowsAffected, tx.Error
}

func (r *assetRepo) Delete(ctx context.Context, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Asset{})
	return tx.RowsAffected, tx.Error
}

func (r *assetRepo) CountByStatus(ctx context.Context) ([]StatusTally, error) {
	var tallies []StatusTally
	err := r.db.WithContext(ctx).
		Model(&model.Asset{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&tallies).Error
	return tallies, err
}

func (r *assetRepo) CountByDepartment(ctx context.Context) ([]DepartmentTally, error) {
	var tallies []DepartmentTally
	err := r.db.WithContext(ctx).
		Table("assets AS a").
		Select("a.department_id, d.name_th AS department_name, COUNT(*) AS count").
		Joins("LEFT JOIN departments d ON a.department_id = d.id").
		Group("a.department_id, d.name_th").
		Scan(&tallies).Error
	return tallies, err
}

func (r *assetRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Asset{}).
		Count(&count).Error
	return count, err
}
