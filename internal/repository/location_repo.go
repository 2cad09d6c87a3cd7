package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/korn-WK/assetskorn1/internal/model"
)

// LocationRepository 地点数据访问接口
type LocationRepository interface {
	List(ctx context.Context) ([]model.Location, error)
}

type locationRepo struct {
	db *gorm.DB
}

// NewLocationRepo 创建 LocationRepository 实例
func NewLocationRepo(db *gorm.DB) LocationRepository {
	return &locationRepo{db: db}
}

func (r *locationRepo) List(ctx context.Context) ([]model.Location, error) {
	var locations []model.Location
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&locations).Error
	return locations, err
}
