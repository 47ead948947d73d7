package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gastos/database"
	"gastos/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expenses 消费记录存取
//
// 每条消费记录嵌入创建/更新时刻的分类与支付方式快照。
// 解析引用和写入记录是两次独立的数据库请求，中间不加锁：
// 引用在两步之间被删除的窄竞态是设计上接受的代价。
type Expenses struct {
	store *database.Store
}

func NewExpenses(store *database.Store) *Expenses {
	return &Expenses{store: store}
}

// ExpenseInput 创建/更新消费记录的输入（更新是全量替换，不是局部修改）
type ExpenseInput struct {
	Description   string
	Amount        decimal.Decimal
	CategoryID    uint
	PaymentTypeID uint
	ExpenseDate   string
}

func (s *Expenses) db(ctx context.Context) (*gorm.DB, error) {
	db, err := s.store.DB(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return db, nil
}

// MonthRange 返回某年某月的 [月初, 下月初) 规范日期字符串区间
// 十二月翻转到下一年一月。规范格式零填充且年月日序，字符串比较即日期比较。
func MonthRange(year, month int) (start, end string) {
	start = fmt.Sprintf("%04d-%02d-01", year, month)
	if month == 12 {
		end = fmt.Sprintf("%04d-01-01", year+1)
	} else {
		end = fmt.Sprintf("%04d-%02d-01", year, month+1)
	}
	return start, end
}

// canonicalDate 校验并规范化消费日期
func canonicalDate(s string) (string, error) {
	t, err := time.Parse(models.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return "", ErrInvalidDate
	}
	return t.Format(models.DateLayout), nil
}

// List 列出消费记录，按日期倒序
// month 和 year 同时给出时才过滤到 [月初, 下月初)；只给出其中一个时不过滤
// （沿用既有行为，见 DESIGN.md）。
func (s *Expenses) List(ctx context.Context, month, year int) ([]models.Expense, error) {
	db, err := s.db(ctx)
	if err != nil {
		return nil, err
	}

	q := db.Order("data_gasto DESC")
	if month > 0 && year > 0 {
		start, end := MonthRange(year, month)
		q = q.Where("data_gasto >= ? AND data_gasto < ?", start, end)
	}

	list := make([]models.Expense, 0)
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// resolveRefs 解析分类和支付方式引用，返回此刻的记录用于生成快照
func (s *Expenses) resolveRefs(db *gorm.DB, categoryID, paymentTypeID uint) (*models.Category, *models.PaymentType, error) {
	var cat models.Category
	if err := db.First(&cat, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrCategoryNotFound
		}
		return nil, nil, err
	}

	var tp models.PaymentType
	if err := db.First(&tp, paymentTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrPaymentTypeNotFound
		}
		return nil, nil, err
	}

	return &cat, &tp, nil
}

// Create 创建消费记录
// 解析 categoria_id 和 tipo_pagamento_id，把解析到的记录拷贝为嵌入快照后落库。
func (s *Expenses) Create(ctx context.Context, in ExpenseInput) (*models.Expense, error) {
	db, err := s.db(ctx)
	if err != nil {
		return nil, err
	}

	date, err := canonicalDate(in.ExpenseDate)
	if err != nil {
		return nil, err
	}

	cat, tp, err := s.resolveRefs(db, in.CategoryID, in.PaymentTypeID)
	if err != nil {
		return nil, err
	}

	exp := models.Expense{
		Description: in.Description,
		Amount:      in.Amount,
		ExpenseDate: date,
		Category: models.CategorySnapshot{
			ID:    cat.ID,
			Name:  cat.Name,
			Color: cat.Color,
		},
		PaymentType: models.PaymentTypeSnapshot{
			ID:    tp.ID,
			Name:  tp.Name,
			Icon:  tp.Icon,
			Color: tp.Color,
		},
	}
	if err := db.Create(&exp).Error; err != nil {
		return nil, err
	}
	return &exp, nil
}

// Update 全量替换消费记录并重新生成快照，设置 atualizado_em
// 引用解析失败与记录不存在分别返回对应错误，返回更新后的记录。
func (s *Expenses) Update(ctx context.Context, id uint, in ExpenseInput) (*models.Expense, error) {
	db, err := s.db(ctx)
	if err != nil {
		return nil, err
	}

	date, err := canonicalDate(in.ExpenseDate)
	if err != nil {
		return nil, err
	}

	// 与创建相同的解析顺序：先分类、后支付方式，再定位记录本身
	cat, tp, err := s.resolveRefs(db, in.CategoryID, in.PaymentTypeID)
	if err != nil {
		return nil, err
	}

	var exp models.Expense
	if err := db.First(&exp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	now := time.Now()
	updates := map[string]interface{}{
		"descricao":            in.Description,
		"valor":                in.Amount,
		"data_gasto":           date,
		"categoria_id":         cat.ID,
		"categoria_nome":       cat.Name,
		"categoria_cor":        cat.Color,
		"tipo_pagamento_id":    tp.ID,
		"tipo_pagamento_nome":  tp.Name,
		"tipo_pagamento_icone": tp.Icon,
		"tipo_pagamento_cor":   tp.Color,
		"atualizado_em":        now,
	}
	if err := db.Model(&exp).Updates(updates).Error; err != nil {
		return nil, err
	}

	// 重新获取更新后的记录
	if err := db.First(&exp, exp.ID).Error; err != nil {
		return nil, err
	}
	return &exp, nil
}

// Delete 删除消费记录，返回删除条数；记录不存在返回 ErrNotFound
func (s *Expenses) Delete(ctx context.Context, id uint) (int64, error) {
	db, err := s.db(ctx)
	if err != nil {
		return 0, err
	}

	res := db.Delete(&models.Expense{}, id)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrNotFound
	}
	return res.RowsAffected, nil
}
