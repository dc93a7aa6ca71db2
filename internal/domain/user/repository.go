package user

import (
	"context"
)

// Repository 用户仓储接口
// 接口定义在domain层(依赖倒置),具体实现在infrastructure/persistence/mysql层
type Repository interface {
	// Create 创建用户
	// 用户名已存在时返回ErrUsernameDuplicate
	Create(ctx context.Context, user *User) error

	// FindByID 根据ID查找用户
	// 不存在时返回ErrUserNotFound
	FindByID(ctx context.Context, id uint) (*User, error)

	// FindByUsername 根据用户名查找用户
	// 不存在时返回ErrUserNotFound(启动种子数据检查依赖此语义)
	FindByUsername(ctx context.Context, username string) (*User, error)
}
