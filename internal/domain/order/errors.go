package order

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 借阅领域错误定义
var (
	// ErrOrderNotFound 借阅记录不存在
	ErrOrderNotFound = apperrors.New(apperrors.ErrCodeOrderNotFound, "借阅记录不存在")

	// ErrAlreadyReturned 记录已归还,不允许重复归还
	ErrAlreadyReturned = apperrors.New(apperrors.ErrCodeAlreadyReturned, "该借阅记录已归还")
)
