package user

import (
	"time"
)

// Role 用户角色
type Role string

const (
	// RoleAdmin 管理员(图书馆管理员)
	RoleAdmin Role = "ADMIN"
	// RoleStudent 学生
	RoleStudent Role = "STUDENT"
)

// Valid 角色是否合法
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStudent
}

// User 用户实体(聚合根)
// 设计说明:
// 1. 密码只存bcrypt哈希,实体不暴露明文
// 2. 用户名唯一性由数据库UNIQUE索引保证,仓储层转换重复错误
type User struct {
	ID        uint
	Username  string // 用户名(数据库唯一索引)
	Password  string // bcrypt哈希值
	Role      Role   // ADMIN | STUDENT
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户(工厂方法)
// hashedPassword必须是bcrypt加密后的密码
func NewUser(username, hashedPassword string, role Role) *User {
	now := time.Now()
	return &User{
		Username:  username,
		Password:  hashedPassword,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsAdmin 是否管理员
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
