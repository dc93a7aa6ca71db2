package mysql

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/library/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	logrus.Info("数据库连接成功")

	// 自动迁移表结构（开发环境）
	// 注意：生产环境应使用专门的迁移工具（如golang-migrate）
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&AuthorModel{},
		&CategoryModel{},
		&StudentModel{},
		&BookModel{},
		&OrderModel{},
	)
}

// UserModel GORM用户模型
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/user/entity.go是领域实体，不依赖GORM
// 3. Repository负责两者之间的转换
type UserModel struct {
	ID        uint           `gorm:"primaryKey"`
	Username  string         `gorm:"uniqueIndex;size:50;not null;comment:用户名"`
	Password  string         `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	Role      string         `gorm:"size:10;not null;comment:角色(ADMIN/STUDENT)"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间（软删除）"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// AuthorModel GORM作者模型
type AuthorModel struct {
	ID        uint           `gorm:"primaryKey"`
	Name      string         `gorm:"size:100;not null;comment:作者姓名"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// CategoryModel GORM分类模型
// 分类名有唯一索引,重复插入由数据库拒绝
type CategoryModel struct {
	ID        uint           `gorm:"primaryKey"`
	Name      string         `gorm:"uniqueIndex;size:100;not null;comment:分类名"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (CategoryModel) TableName() string {
	return "categories"
}

// StudentModel GORM学生模型
type StudentModel struct {
	ID        uint           `gorm:"primaryKey"`
	Name      string         `gorm:"size:50;not null;comment:姓名"`
	StudentNo string         `gorm:"uniqueIndex;size:20;not null;comment:学号"`
	Email     string         `gorm:"size:100;comment:邮箱"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (StudentModel) TableName() string {
	return "students"
}

// BookModel GORM图书模型
// 设计说明:
// 1. Stock由原子UPDATE(stock + ? >= 0)保证不为负
// 2. 与作者多对多,join表book_authors由GORM维护
// 3. CategoryID多对一关联分类表
type BookModel struct {
	ID         uint           `gorm:"primaryKey"`
	Title      string         `gorm:"index;size:200;not null;comment:书名"`
	Stock      int            `gorm:"not null;default:0;comment:库存数量"`
	CoverURL   string         `gorm:"size:500;comment:封面图片URL"`
	CategoryID uint           `gorm:"index;not null;comment:分类ID"`
	Authors    []AuthorModel  `gorm:"many2many:book_authors"` // 多对多关联
	CreatedAt  time.Time      `gorm:"comment:创建时间"`
	UpdatedAt  time.Time      `gorm:"comment:更新时间"`
	DeletedAt  gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// OrderModel GORM借阅记录模型
// 设计说明:
// 1. BorrowedAt创建时写入,之后不再修改
// 2. ReturnedAt为NULL表示未归还
// 3. 借阅记录不做软删除(历史记录正常运行中不删除)
type OrderModel struct {
	ID         uint       `gorm:"primaryKey"`
	StudentID  uint       `gorm:"index;not null;comment:学生ID"`
	BookID     uint       `gorm:"index;not null;comment:图书ID"`
	BorrowedAt time.Time  `gorm:"index;not null;comment:借出时间"`
	ReturnedAt *time.Time `gorm:"index;comment:归还时间(NULL=未归还)"`
}

// TableName 指定表名
func (OrderModel) TableName() string {
	return "orders"
}
