package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/domain/user"
	"github.com/xiebiao/library/internal/infrastructure/config"
)

type fakeUserRepo struct {
	users  map[string]*user.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*user.User), nextID: 1}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	if _, ok := r.users[u.Username]; ok {
		return user.ErrUsernameDuplicate
	}
	u.ID = r.nextID
	r.nextID++
	r.users[u.Username] = u
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uint) (*user.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func seedConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Seed.AdminUsername = "admin"
	cfg.Seed.AdminPassword = "password"
	cfg.Seed.StudentUsername = "user"
	cfg.Seed.StudentPassword = "userpassword"
	return cfg
}

func TestSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("首次启动创建管理员与学生账号", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := user.NewService(repo)
		uc := NewSeedUseCase(repo, svc, seedConfig())

		require.NoError(t, uc.Execute(ctx))

		admin, err := repo.FindByUsername(ctx, "admin")
		require.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, admin.Role)
		assert.NotEqual(t, "password", admin.Password, "密码必须加密存储")

		stu, err := repo.FindByUsername(ctx, "user")
		require.NoError(t, err)
		assert.Equal(t, user.RoleStudent, stu.Role)

		// 种子账号密码可用于登录
		_, err = svc.Login(ctx, "admin", "password")
		assert.NoError(t, err)
	})

	t.Run("重复执行幂等:不报错且不覆盖已有账号", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := user.NewService(repo)
		uc := NewSeedUseCase(repo, svc, seedConfig())

		require.NoError(t, uc.Execute(ctx))
		adminBefore, _ := repo.FindByUsername(ctx, "admin")

		require.NoError(t, uc.Execute(ctx))
		adminAfter, _ := repo.FindByUsername(ctx, "admin")

		assert.Equal(t, adminBefore.ID, adminAfter.ID)
		assert.Equal(t, adminBefore.Password, adminAfter.Password, "已有账号不应被覆盖")
		assert.Len(t, repo.users, 2)
	})
}
