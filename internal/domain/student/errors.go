package student

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 学生领域错误定义
var (
	// ErrStudentNotFound 学生不存在
	ErrStudentNotFound = apperrors.New(apperrors.ErrCodeStudentNotFound, "学生不存在")

	// ErrStudentNoDuplicate 学号已存在(数据库唯一索引保证)
	ErrStudentNoDuplicate = apperrors.New(apperrors.ErrCodeStudentNoConflict, "学号已存在")
)
