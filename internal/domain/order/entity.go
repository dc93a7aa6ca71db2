package order

import (
	"time"
)

// Order 借阅记录实体(聚合根)
// 设计说明:
// 1. 一条记录对应一次借书:BorrowedAt在创建时写入且不可变
// 2. ReturnedAt为nil表示图书仍在借出中,归还后写入归还时间
// 3. 只保存StudentID/BookID外键,不持有对象引用
//    (学生姓名、书名由调用方显式查询拼装)
// 4. 借阅记录只通过借书流程创建,通过还书流程关闭,正常运行中不删除
type Order struct {
	ID         uint
	StudentID  uint       // 借书学生ID
	BookID     uint       // 图书ID
	BorrowedAt time.Time  // 借出时间(创建时写入,不可变)
	ReturnedAt *time.Time // 归还时间(nil=未归还)
}

// NewOrder 创建新借阅记录(工厂方法)
// 初始状态:未归还
func NewOrder(studentID, bookID uint) *Order {
	return &Order{
		StudentID:  studentID,
		BookID:     bookID,
		BorrowedAt: time.Now(),
		ReturnedAt: nil,
	}
}

// Returned 是否已归还
func (o *Order) Returned() bool {
	return o.ReturnedAt != nil
}

// Return 归还(领域行为)
// 业务规则:同一条记录不允许重复归还
// (重复归还会导致库存被重复加回,库存虚高)
func (o *Order) Return() error {
	if o.Returned() {
		return ErrAlreadyReturned
	}
	now := time.Now()
	o.ReturnedAt = &now
	return nil
}
