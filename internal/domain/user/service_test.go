package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

type memoryRepo struct {
	users  map[string]*User
	nextID uint
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{users: make(map[string]*User), nextID: 1}
}

func (r *memoryRepo) Create(ctx context.Context, u *User) error {
	if _, ok := r.users[u.Username]; ok {
		return ErrUsernameDuplicate
	}
	u.ID = r.nextID
	r.nextID++
	r.users[u.Username] = u
	return nil
}

func (r *memoryRepo) FindByID(ctx context.Context, id uint) (*User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *memoryRepo) FindByUsername(ctx context.Context, username string) (*User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func TestService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemoryRepo())

	u, err := svc.Register(ctx, "admin", "password", RoleAdmin)
	require.NoError(t, err)
	assert.NotEqual(t, "password", u.Password, "密码必须bcrypt加密")

	t.Run("正确密码登录成功", func(t *testing.T) {
		logged, err := svc.Login(ctx, "admin", "password")
		require.NoError(t, err)
		assert.Equal(t, u.ID, logged.ID)
		assert.True(t, logged.IsAdmin())
	})

	t.Run("错误密码登录失败", func(t *testing.T) {
		_, err := svc.Login(ctx, "admin", "wrong-password")
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	})

	t.Run("用户不存在与密码错误返回相同错误", func(t *testing.T) {
		// 避免通过错误信息探测用户名是否已注册
		_, err := svc.Login(ctx, "nobody", "password")
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	})
}

func TestService_Register_InvalidInput(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemoryRepo())

	t.Run("非法角色被拒绝", func(t *testing.T) {
		_, err := svc.Register(ctx, "x", "password", Role("SUPERUSER"))
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("空用户名或密码被拒绝", func(t *testing.T) {
		_, err := svc.Register(ctx, "", "password", RoleAdmin)
		assert.ErrorIs(t, err, apperrors.ErrInvalidParams)
	})

	t.Run("用户名重复被拒绝", func(t *testing.T) {
		_, err := svc.Register(ctx, "dup", "password", RoleAdmin)
		require.NoError(t, err)
		_, err = svc.Register(ctx, "dup", "password", RoleAdmin)
		assert.ErrorIs(t, err, ErrUsernameDuplicate)
	})
}
