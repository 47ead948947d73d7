package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"gastos/database"
	"gastos/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Reports 报表引擎
// 每次调用都是对当前消费记录集合的纯聚合计算，不持有状态。
type Reports struct {
	store *database.Store
}

func NewReports(store *database.Store) *Reports {
	return &Reports{store: store}
}

// CategoryTotal 月度报表中单个分类的聚合结果
type CategoryTotal struct {
	Name  string          `json:"nome"`
	Total decimal.Decimal `json:"total"`
	Count int64           `json:"quantidade"`
	Color string          `json:"cor"`
}

// MonthlyReport 月度报表
type MonthlyReport struct {
	Month      int              `json:"mes"`
	Year       int              `json:"ano"`
	Total      decimal.Decimal  `json:"total"`
	ByCategory []CategoryTotal  `json:"por_categoria"`
	Expenses   []models.Expense `json:"gastos"`
}

// MonthTotal 年度报表中单个月份的聚合结果
type MonthTotal struct {
	Month int             `json:"mes"`
	Total decimal.Decimal `json:"total"`
	Count int64           `json:"quantidade"`
}

// AnnualReport 年度报表，没有消费的月份不出现在列表里
type AnnualReport struct {
	Year   int          `json:"ano"`
	Months []MonthTotal `json:"meses"`
}

func (r *Reports) db(ctx context.Context) (*gorm.DB, error) {
	db, err := r.store.DB(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return db, nil
}

// Monthly 计算某年某月的报表
// 总额为区间内所有记录的金额之和（无记录时为 0）；
// 按分类快照名称分组求和计数，分组颜色取自然扫描顺序（id 升序）里
// 首次出现的快照颜色；分组按总额降序，明细与 /gastos 列表同为日期倒序。
func (r *Reports) Monthly(ctx context.Context, year, month int) (*MonthlyReport, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}

	start, end := MonthRange(year, month)

	var matched []models.Expense
	if err := db.Where("data_gasto >= ? AND data_gasto < ?", start, end).
		Order("id ASC").
		Find(&matched).Error; err != nil {
		return nil, err
	}

	total := decimal.Zero
	byName := make(map[string]*CategoryTotal)
	order := make([]string, 0)
	for _, e := range matched {
		total = total.Add(e.Amount)

		g, ok := byName[e.Category.Name]
		if !ok {
			g = &CategoryTotal{Name: e.Category.Name, Color: e.Category.Color}
			byName[e.Category.Name] = g
			order = append(order, e.Category.Name)
		}
		g.Total = g.Total.Add(e.Amount)
		g.Count++
	}

	byCategory := make([]CategoryTotal, 0, len(order))
	for _, name := range order {
		byCategory = append(byCategory, *byName[name])
	}
	sort.SliceStable(byCategory, func(i, j int) bool {
		return byCategory[i].Total.GreaterThan(byCategory[j].Total)
	})

	expenses := make([]models.Expense, 0, len(matched))
	if err := db.Where("data_gasto >= ? AND data_gasto < ?", start, end).
		Order("data_gasto DESC").
		Find(&expenses).Error; err != nil {
		return nil, err
	}

	return &MonthlyReport{
		Month:      month,
		Year:       year,
		Total:      total,
		ByCategory: byCategory,
		Expenses:   expenses,
	}, nil
}

// Annual 计算某年的逐月汇总
// 月份直接取规范日期串的第 [5,7) 个字符解析为整数，依赖 YYYY-MM-DD 格式。
func (r *Reports) Annual(ctx context.Context, year int) (*AnnualReport, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}

	start := fmt.Sprintf("%04d-01-01", year)
	end := fmt.Sprintf("%04d-01-01", year+1)

	var matched []models.Expense
	if err := db.Where("data_gasto >= ? AND data_gasto < ?", start, end).
		Find(&matched).Error; err != nil {
		return nil, err
	}

	byMonth := make(map[int]*MonthTotal)
	for _, e := range matched {
		if len(e.ExpenseDate) < 7 {
			return nil, fmt.Errorf("无法从日期 %q 提取月份", e.ExpenseDate)
		}
		m, err := strconv.Atoi(e.ExpenseDate[5:7])
		if err != nil {
			return nil, fmt.Errorf("无法从日期 %q 提取月份: %w", e.ExpenseDate, err)
		}

		g, ok := byMonth[m]
		if !ok {
			g = &MonthTotal{Month: m}
			byMonth[m] = g
		}
		g.Total = g.Total.Add(e.Amount)
		g.Count++
	}

	months := make([]MonthTotal, 0, len(byMonth))
	for _, g := range byMonth {
		months = append(months, *g)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })

	return &AnnualReport{Year: year, Months: months}, nil
}
