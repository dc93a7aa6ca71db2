package user

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/xiebiao/library/internal/domain/user"
	"github.com/xiebiao/library/internal/infrastructure/config"
)

// SeedUseCase 启动种子数据用例
// 设计说明：
// 1. 应用启动时创建默认管理员与默认学生账号,保证系统开箱可用
// 2. 幂等:按用户名检查,已存在则跳过,重复启动不报错
// 3. 默认口令来自配置文件,生产环境通过环境变量覆盖
type SeedUseCase struct {
	userRepo    user.Repository
	userService user.Service
	cfg         *config.Config
}

// NewSeedUseCase 创建种子数据用例
func NewSeedUseCase(userRepo user.Repository, userService user.Service, cfg *config.Config) *SeedUseCase {
	return &SeedUseCase{
		userRepo:    userRepo,
		userService: userService,
		cfg:         cfg,
	}
}

// Execute 执行种子数据初始化
func (uc *SeedUseCase) Execute(ctx context.Context) error {
	seeds := []struct {
		username string
		password string
		role     user.Role
	}{
		{uc.cfg.Seed.AdminUsername, uc.cfg.Seed.AdminPassword, user.RoleAdmin},
		{uc.cfg.Seed.StudentUsername, uc.cfg.Seed.StudentPassword, user.RoleStudent},
	}

	for _, seed := range seeds {
		if err := uc.ensureUser(ctx, seed.username, seed.password, seed.role); err != nil {
			return err
		}
	}
	return nil
}

// ensureUser 确保账号存在(不存在则创建)
func (uc *SeedUseCase) ensureUser(ctx context.Context, username, password string, role user.Role) error {
	_, err := uc.userRepo.FindByUsername(ctx, username)
	if err == nil {
		logrus.WithField("username", username).Debug("种子账号已存在,跳过创建")
		return nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return err
	}

	if _, err := uc.userService.Register(ctx, username, password, role); err != nil {
		// 并发启动多个实例时可能撞上唯一索引,同样视为已存在
		if errors.Is(err, user.ErrUsernameDuplicate) {
			return nil
		}
		return err
	}

	logrus.WithFields(logrus.Fields{
		"username": username,
		"role":     string(role),
	}).Info("种子账号创建成功")
	return nil
}
