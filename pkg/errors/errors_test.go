package errors

import (
	"errors"
	"fmt"
	"testing"
)

// TestAppError_Is 测试按Code比较业务错误
func TestAppError_Is(t *testing.T) {
	base := New(ErrCodeOutOfStock, "图书已无库存")
	withTitle := Newf(ErrCodeOutOfStock, "图书《%s》已无库存", "Go语言实战")

	if !errors.Is(withTitle, base) {
		t.Error("期望同码错误匹配，实际不匹配")
	}

	other := New(ErrCodeBookNotFound, "图书不存在")
	if errors.Is(withTitle, other) {
		t.Error("期望不同码错误不匹配，实际匹配")
	}
}

// TestAppError_Unwrap 测试错误链
func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("connection refused")
	wrapped := Wrap(inner, "数据库错误")

	if !errors.Is(wrapped, inner) {
		t.Error("期望能通过errors.Is找到内部错误")
	}

	if wrapped.Code != ErrCodeInternal {
		t.Errorf("期望错误码%d，实际%d", ErrCodeInternal, wrapped.Code)
	}
}

// TestGetAppError 测试错误提取
func TestGetAppError(t *testing.T) {
	// AppError原样返回
	appErr := New(ErrCodeForbidden, "无权限访问")
	got := GetAppError(appErr)
	if got.Code != ErrCodeForbidden {
		t.Errorf("期望错误码%d，实际%d", ErrCodeForbidden, got.Code)
	}

	// 普通error包装为Internal
	got = GetAppError(errors.New("boom"))
	if got.Code != ErrCodeInternal {
		t.Errorf("期望错误码%d，实际%d", ErrCodeInternal, got.Code)
	}
}
