package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"gastos/config"
	"gastos/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrUnavailable 数据库不可用（连接未建立且重连失败）
var ErrUnavailable = errors.New("数据库服务不可用")

// Store 数据库客户端
// 通过构造函数注入到各处使用，不提供包级单例。
// 启动时数据库不可用不会阻止服务启动：连接在首次使用时按需重建。
type Store struct {
	cfg *config.Config

	mu sync.Mutex
	db *gorm.DB
}

// New 创建未连接的 Store，连接在 Connect 或首次 DB 调用时建立
func New(cfg *config.Config) *Store {
	return &Store{cfg: cfg}
}

// NewWithDB 用现成的 gorm 连接构造 Store（测试注入用）
func NewWithDB(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Connect 建立连接并完成表迁移与初始数据
func (s *Store) Connect() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connectLocked()
}

func (s *Store) connectLocked() error {
	if s.db != nil {
		return nil
	}

	// 构建 MySQL DSN 连接字符串
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		s.cfg.Database.Username,
		s.cfg.Database.Password,
		s.cfg.Database.Host,
		s.cfg.Database.Port,
		s.cfg.Database.DBName,
		s.cfg.Database.Charset,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// 唯一索引冲突等翻译为 gorm.ErrDuplicatedKey，由存储层仲裁并发重名创建
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("连接数据库失败: %w", err)
	}

	// 设置连接池参数
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	// 自动迁移数据库表
	if err := db.AutoMigrate(
		&models.Category{},
		&models.PaymentType{},
		&models.Expense{},
	); err != nil {
		return err
	}

	seedDefaults(db)

	s.db = db
	log.Println("数据库初始化成功")
	return nil
}

// DB 返回绑定了 ctx 的 gorm 句柄；连接不存在时按需重连
func (s *Store) DB(ctx context.Context) (*gorm.DB, error) {
	s.mu.Lock()
	if s.db == nil {
		if err := s.connectLocked(); err != nil {
			s.mu.Unlock()
			log.Printf("按需重连数据库失败: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}
	db := s.db
	s.mu.Unlock()
	return db.WithContext(ctx), nil
}

// Ping 健康检查，连接不存在时同样触发按需重连
func (s *Store) Ping(ctx context.Context) error {
	db, err := s.DB(ctx)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Connected 当前是否已建立连接（不触发重连）
func (s *Store) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db != nil
}

// Close 关闭底层连接
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	s.db = nil
	return sqlDB.Close()
}

// seedDefaults 初始化默认分类和支付方式（仅当表为空时）
func seedDefaults(db *gorm.DB) {
	var catCount int64
	db.Model(&models.Category{}).Count(&catCount)
	if catCount == 0 {
		cats := []models.Category{
			{Name: "Alimentação", Color: "#e74c3c"},
			{Name: "Transporte", Color: "#3498db"},
			{Name: "Moradia", Color: "#16a085"},
			{Name: "Saúde", Color: "#2ecc71"},
			{Name: "Educação", Color: "#f39c12"},
			{Name: "Lazer", Color: "#9b59b6"},
			{Name: "Outros", Color: "#95a5a6"},
		}
		_ = db.Create(&cats).Error
	}

	var tpCount int64
	db.Model(&models.PaymentType{}).Count(&tpCount)
	if tpCount == 0 {
		tps := []models.PaymentType{
			{Name: "Dinheiro", Icon: "💵", Color: "#27ae60"},
			{Name: "Cartão de Crédito", Icon: "💳", Color: "#2980b9"},
			{Name: "Cartão de Débito", Icon: "🏧", Color: "#8e44ad"},
			{Name: "Pix", Icon: "📱", Color: "#1abc9c"},
		}
		_ = db.Create(&tps).Error
	}
}
