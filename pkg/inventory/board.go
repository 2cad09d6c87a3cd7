package inventory

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/korn-WK/assetskorn1/pkg/client"
)

// Board 资产清单视图状态：持有一次加载的资产与参照数据集合。
// 集合归视图实例独占，不跨实例共享。
type Board struct {
	api *client.Client

	// IncludeUsers 管理员视图额外加载用户列表
	IncludeUsers bool

	Assets      []client.Asset
	Departments []client.Department
	Locations   []client.Location
	Users       []client.User
}

// NewBoard 创建资产清单视图
func NewBoard(api *client.Client, includeUsers bool) *Board {
	return &Board{api: api, IncludeUsers: includeUsers}
}

// Load 并发拉取资产/部门/地点（及管理员视图的用户）并等待全部完成。
// 全有或全无：任一请求失败则整体返回错误，本地状态保持不变。
func (b *Board) Load(ctx context.Context) error {
	var (
		assets []client.Asset
		depts  []client.Department
		locs   []client.Location
		users  []client.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		assets, err = b.api.ListAssets(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		depts, err = b.api.ListDepartments(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		locs, err = b.api.ListLocations(gctx)
		return err
	})
	if b.IncludeUsers {
		g.Go(func() error {
			var err error
			users, err = b.api.ListUsers(gctx)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	b.Assets = assets
	b.Departments = depts
	b.Locations = locs
	b.Users = users
	return nil
}

// Filtered 返回满足过滤条件的资产子集
func (b *Board) Filtered(f Filter) []client.Asset {
	return Apply(b.Assets, f)
}

// StatusCount 统计指定状态的资产数（基于已加载的完整集合）
func (b *Board) StatusCount(status string) int {
	return CountByStatus(b.Assets, status)
}

// DepartmentCount 统计指定部门的资产数
func (b *Board) DepartmentCount(departmentID int64) int {
	return CountByDepartment(b.Assets, departmentID)
}

// DeleteAsset 删除资产：服务端删除成功后从本地集合剔除该条目，不重新拉取；
// 失败时本地状态保持不变，错误原样返回给调用方展示
func (b *Board) DeleteAsset(ctx context.Context, id int64) error {
	if err := b.api.DeleteAsset(ctx, id); err != nil {
		return err
	}

	remaining := make([]client.Asset, 0, len(b.Assets))
	for i := range b.Assets {
		if b.Assets[i].ID != id {
			remaining = append(remaining, b.Assets[i])
		}
	}
	b.Assets = remaining
	return nil
}
