package dto

// ── 资产模块 DTO ──

// CreateAssetRequest 创建资产请求
// Status 省略或为空时默认 active
type CreateAssetRequest struct {
	AssetCode    string  `json:"asset_code"    binding:"required,max=100"`
	Name         string  `json:"name"          binding:"required,max=255"`
	Description  *string `json:"description"`
	LocationID   *int64  `json:"location_id"`
	Location     *string `json:"location"      binding:"omitempty,max=255"`
	Status       string  `json:"status"`
	DepartmentID *int64  `json:"department_id"`
	OwnerID      *int64  `json:"owner_id"`
	ImageURL     *string `json:"image_url"     binding:"omitempty,max=500"`
	AcquiredDate *string `json:"acquired_date"` // YYYY-MM-DD
}

// UpdateAssetRequest 更新资产请求
// 全量替换语义：未提供的可选字段会被置为 NULL，而非保留原值
type UpdateAssetRequest struct {
	AssetCode    string  `json:"asset_code"    binding:"required,max=100"`
	Name         string  `json:"name"          binding:"required,max=255"`
	Description  *string `json:"description"`
	LocationID   *int64  `json:"location_id"`
	Location     *string `json:"location"      binding:"omitempty,max=255"`
	Status       string  `json:"status"        binding:"required"`
	DepartmentID *int64  `json:"department_id"`
	OwnerID      *int64  `json:"owner_id"`
	ImageURL     *string `json:"image_url"     binding:"omitempty,max=500"`
	AcquiredDate *string `json:"acquired_date"` // YYYY-MM-DD
}

// CreateAssetResponse 创建资产响应
type CreateAssetResponse struct {
	ID int64 `json:"id"`
}

// ── 统计 DTO ──

// StatusCount 按状态统计
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// DepartmentCount 按部门统计
type DepartmentCount struct {
	DepartmentID   *int64  `json:"department_id"`
	DepartmentName *string `json:"department_name,omitempty"`
	Count          int64   `json:"count"`
}

// AssetStatsResponse 资产统计响应
type AssetStatsResponse struct {
	Total        int64             `json:"total"`
	ByStatus     []StatusCount     `json:"by_status"`
	ByDepartment []DepartmentCount `json:"by_department"`
}
