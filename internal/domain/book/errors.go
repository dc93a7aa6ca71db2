package book

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrOutOfStock 图书已无库存
	// 说明:借书时用Newf携带书名,按错误码比较(errors.Is)
	ErrOutOfStock = apperrors.New(apperrors.ErrCodeOutOfStock, "图书已无库存")

	// ErrNoAuthorsSelected 未选择有效作者
	// 作者ID列表解析后为空时,拒绝保存无作者的图书
	ErrNoAuthorsSelected = apperrors.New(apperrors.ErrCodeNoAuthorsSelected, "未选择有效作者")

	// ErrInvalidStock 无效的库存
	ErrInvalidStock = apperrors.New(apperrors.ErrCodeInvalidParams, "库存不能为负数")
)
