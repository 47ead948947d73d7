package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gastos/database"
	"gastos/models"

	"gorm.io/gorm"
)

// Reference 分类与支付方式的引用数据存取
//
// 两类记录共用同一组规则：名称唯一、按名称升序列出、
// 被消费记录快照引用时禁止删除。
type Reference struct {
	store *database.Store
}

func NewReference(store *database.Store) *Reference {
	return &Reference{store: store}
}

func (r *Reference) db(ctx context.Context) (*gorm.DB, error) {
	db, err := r.store.DB(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return db, nil
}

// ListCategories 列出所有分类，按名称升序
func (r *Reference) ListCategories(ctx context.Context) ([]models.Category, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]models.Category, 0)
	if err := db.Order("nome ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// CreateCategory 创建分类
// 名称重名返回 ErrDuplicateName；颜色缺省时使用默认颜色。
// 并发重名创建由数据库唯一索引仲裁，落败方同样观察到 ErrDuplicateName。
func (r *Reference) CreateCategory(ctx context.Context, name, color string) (*models.Category, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	// 唯一性预检查（大小写敏感的精确匹配）
	var existing models.Category
	if err := db.Where("nome = ?", name).First(&existing).Error; err == nil {
		return nil, ErrDuplicateName
	}

	if color == "" {
		color = models.DefaultColor
	}
	cat := models.Category{Name: name, Color: color}
	if err := db.Create(&cat).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return &cat, nil
}

// DeleteCategory 删除分类，返回删除条数
// 仍有消费记录的分类快照引用该 id 时返回 InUseError，不存在返回 ErrCategoryNotFound。
func (r *Reference) DeleteCategory(ctx context.Context, id uint) (int64, error) {
	db, err := r.db(ctx)
	if err != nil {
		return 0, err
	}

	var inUse int64
	if err := db.Model(&models.Expense{}).Where("categoria_id = ?", id).Count(&inUse).Error; err != nil {
		return 0, err
	}
	if inUse > 0 {
		return 0, &InUseError{Resource: "分类", Count: inUse}
	}

	res := db.Delete(&models.Category{}, id)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrCategoryNotFound
	}
	return res.RowsAffected, nil
}

// ListPaymentTypes 列出所有支付方式，按名称升序
func (r *Reference) ListPaymentTypes(ctx context.Context) ([]models.PaymentType, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]models.PaymentType, 0)
	if err := db.Order("nome ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// CreatePaymentType 创建支付方式，重名/默认值规则与 CreateCategory 相同
func (r *Reference) CreatePaymentType(ctx context.Context, name, icon, color string) (*models.PaymentType, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	var existing models.PaymentType
	if err := db.Where("nome = ?", name).First(&existing).Error; err == nil {
		return nil, ErrDuplicateName
	}

	if icon == "" {
		icon = models.DefaultIcon
	}
	if color == "" {
		color = models.DefaultColor
	}
	tp := models.PaymentType{Name: name, Icon: icon, Color: color}
	if err := db.Create(&tp).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return &tp, nil
}

// DeletePaymentType 删除支付方式，规则与 DeleteCategory 相同（作用于支付方式快照）
func (r *Reference) DeletePaymentType(ctx context.Context, id uint) (int64, error) {
	db, err := r.db(ctx)
	if err != nil {
		return 0, err
	}

	var inUse int64
	if err := db.Model(&models.Expense{}).Where("tipo_pagamento_id = ?", id).Count(&inUse).Error; err != nil {
		return 0, err
	}
	if inUse > 0 {
		return 0, &InUseError{Resource: "支付方式", Count: inUse}
	}

	res := db.Delete(&models.PaymentType{}, id)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrPaymentTypeNotFound
	}
	return res.RowsAffected, nil
}
