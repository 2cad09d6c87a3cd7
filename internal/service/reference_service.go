package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/korn-WK/assetskorn1/internal/model"
	"github.com/korn-WK/assetskorn1/internal/repository"
)

// ── 参照数据缓存键 ──

const (
	cacheKeyDepartments = "departments"
	cacheKeyLocations   = "locations"
	cacheKeyUsers       = "users:active"
)

// RefCache 参照数据缓存抽象（pkg/redis.Client 满足该接口）
type RefCache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}) error
	Invalidate(ctx context.Context, keys ...string) error
}

// ReferenceService 参照数据业务接口
// 部门/地点/用户列表被多个页面共享，统一走按资源类型键控的读穿缓存，
// 避免每个视图各自打满数据库
type ReferenceService interface {
	ListDepartments(ctx context.Context) ([]model.Department, error)
	ListLocations(ctx context.Context) ([]model.Location, error)
	ListActiveUsers(ctx context.Context) ([]model.User, error)
	// InvalidateAll 参照数据变更后显式失效全部缓存键
	InvalidateAll(ctx context.Context)
}

type referenceService struct {
	repo   *repository.Repository
	cache  RefCache // 可为 nil：Redis 不可用时降级为直查数据库
	logger *zap.Logger
}

// NewReferenceService 创建 ReferenceService 实例
func NewReferenceService(repo *repository.Repository, cache RefCache, logger *zap.Logger) ReferenceService {
	return &referenceService{repo: repo, cache: cache, logger: logger}
}

func (s *referenceService) ListDepartments(ctx context.Context) ([]model.Department, error) {
	if s.cache != nil {
		var cached []model.Department
		if err := s.cache.GetJSON(ctx, cacheKeyDepartments, &cached); err == nil {
			return cached, nil
		}
	}

	depts, err := s.repo.Department.List(ctx)
	if err != nil {
		s.logger.Error("查询部门列表失败", zap.Error(err))
		return nil, err
	}

	s.store(ctx, cacheKeyDepartments, depts)
	return depts, nil
}

func (s *referenceService) ListLocations(ctx context.Context) ([]model.Location, error) {
	if s.cache != nil {
		var cached []model.Location
		if err := s.cache.GetJSON(ctx, cacheKeyLocations, &cached); err == nil {
			return cached, nil
		}
	}

	locations, err := s.repo.Location.List(ctx)
	if err != nil {
		s.logger.Error("查询地点列表失败", zap.Error(err))
		return nil, err
	}

	s.store(ctx, cacheKeyLocations, locations)
	return locations, nil
}

func (s *referenceService) ListActiveUsers(ctx context.Context) ([]model.User, error) {
	if s.cache != nil {
		var cached []model.User
		if err := s.cache.GetJSON(ctx, cacheKeyUsers, &cached); err == nil {
			return cached, nil
		}
	}

	users, err := s.repo.User.ListActive(ctx)
	if err != nil {
		s.logger.Error("查询用户列表失败", zap.Error(err))
		return nil, err
	}

	s.store(ctx, cacheKeyUsers, users)
	return users, nil
}

func (s *referenceService) InvalidateAll(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, cacheKeyDepartments, cacheKeyLocations, cacheKeyUsers); err != nil {
		s.logger.Warn("参照数据缓存失效失败", zap.Error(err))
	}
}

// store 缓存写入失败只记日志，不影响主流程
func (s *referenceService) store(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, key, value); err != nil {
		s.logger.Warn("参照数据缓存写入失败", zap.String("key", key), zap.Error(err))
	}
}
