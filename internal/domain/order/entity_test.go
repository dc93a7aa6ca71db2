package order

import (
	"errors"
	"testing"
	"time"
)

// TestNewOrder 测试借阅记录创建
func TestNewOrder(t *testing.T) {
	before := time.Now()
	o := NewOrder(1, 2)

	if o.StudentID != 1 || o.BookID != 2 {
		t.Errorf("期望StudentID=1 BookID=2,实际%d/%d", o.StudentID, o.BookID)
	}
	if o.Returned() {
		t.Error("新建记录不应处于已归还状态")
	}
	if o.BorrowedAt.Before(before) {
		t.Error("借出时间应不早于创建时刻")
	}
}

// TestOrder_Return 测试归还
func TestOrder_Return(t *testing.T) {
	o := NewOrder(1, 2)

	if err := o.Return(); err != nil {
		t.Fatalf("期望归还成功,实际失败: %v", err)
	}
	if !o.Returned() {
		t.Error("归还后Returned()应为true")
	}
	if o.ReturnedAt == nil || o.ReturnedAt.Before(o.BorrowedAt) {
		t.Error("归还时间应不早于借出时间")
	}
}

// TestOrder_ReturnTwice 测试重复归还被拒绝
// 重复归还会导致库存被重复加回
func TestOrder_ReturnTwice(t *testing.T) {
	o := NewOrder(1, 2)

	if err := o.Return(); err != nil {
		t.Fatalf("第一次归还期望成功,实际失败: %v", err)
	}

	first := *o.ReturnedAt
	err := o.Return()
	if !errors.Is(err, ErrAlreadyReturned) {
		t.Errorf("期望ErrAlreadyReturned,实际%v", err)
	}
	if !o.ReturnedAt.Equal(first) {
		t.Error("重复归还不应修改归还时间")
	}
}
