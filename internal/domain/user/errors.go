package user

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 用户领域错误定义
var (
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = apperrors.New(apperrors.ErrCodeUserNotFound, "用户不存在")

	// ErrUsernameDuplicate 用户名已存在
	ErrUsernameDuplicate = apperrors.New(apperrors.ErrCodeUsernameDuplicate, "用户名已存在")

	// ErrInvalidRole 非法角色
	ErrInvalidRole = apperrors.New(apperrors.ErrCodeInvalidParams, "非法的用户角色")
)
