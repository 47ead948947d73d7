package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyReport(t *testing.T) {
	store, mock := setupMockStore(t)
	reports := NewReports(store)

	// 分组扫描按 id 升序：同一分类出现两次，颜色不同，分组色取首次出现的
	mock.ExpectQuery("SELECT \\* FROM `gastos` WHERE data_gasto >= \\? AND data_gasto < \\? ORDER BY id ASC").
		WithArgs("2024-03-01", "2024-04-01").
		WillReturnRows(sqlmock.NewRows(expenseColumns).
			AddRow(1, "Almoço", "10.00", "2024-03-10", 1, "Alimentação", "#e74c3c", 1, "Pix", "📱", "#1abc9c", nil, nil).
			AddRow(2, "Uber", "25.00", "2024-03-12", 2, "Transporte", "#3498db", 1, "Pix", "📱", "#1abc9c", nil, nil).
			AddRow(3, "Café", "5.00", "2024-03-20", 1, "Alimentação", "#ffffff", 1, "Pix", "📱", "#1abc9c", nil, nil))
	mock.ExpectQuery("SELECT \\* FROM `gastos` WHERE data_gasto >= \\? AND data_gasto < \\? ORDER BY data_gasto DESC").
		WithArgs("2024-03-01", "2024-04-01").
		WillReturnRows(sqlmock.NewRows(expenseColumns).
			AddRow(3, "Café", "5.00", "2024-03-20", 1, "Alimentação", "#ffffff", 1, "Pix", "📱", "#1abc9c", nil, nil).
			AddRow(2, "Uber", "25.00", "2024-03-12", 2, "Transporte", "#3498db", 1, "Pix", "📱", "#1abc9c", nil, nil).
			AddRow(1, "Almoço", "10.00", "2024-03-10", 1, "Alimentação", "#e74c3c", 1, "Pix", "📱", "#1abc9c", nil, nil))

	rep, err := reports.Monthly(context.Background(), 2024, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Month)
	assert.Equal(t, 2024, rep.Year)
	assert.Equal(t, "40", rep.Total.String())

	// 分组按总额降序
	require.Len(t, rep.ByCategory, 2)
	assert.Equal(t, "Transporte", rep.ByCategory[0].Name)
	assert.Equal(t, "25", rep.ByCategory[0].Total.String())
	assert.Equal(t, int64(1), rep.ByCategory[0].Count)
	assert.Equal(t, "Alimentação", rep.ByCategory[1].Name)
	assert.Equal(t, "15", rep.ByCategory[1].Total.String())
	assert.Equal(t, int64(2), rep.ByCategory[1].Count)
	// 颜色取首次出现的快照色，后出现的 #ffffff 被忽略
	assert.Equal(t, "#e74c3c", rep.ByCategory[1].Color)

	// 明细按日期倒序
	require.Len(t, rep.Expenses, 3)
	assert.Equal(t, "2024-03-20", rep.Expenses[0].ExpenseDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMonthlyReportEmpty(t *testing.T) {
	store, mock := setupMockStore(t)
	reports := NewReports(store)

	mock.ExpectQuery("SELECT \\* FROM `gastos` WHERE data_gasto >= \\? AND data_gasto < \\? ORDER BY id ASC").
		WithArgs("2024-12-01", "2025-01-01").
		WillReturnRows(sqlmock.NewRows(expenseColumns))
	mock.ExpectQuery("SELECT \\* FROM `gastos` WHERE data_gasto >= \\? AND data_gasto < \\? ORDER BY data_gasto DESC").
		WithArgs("2024-12-01", "2025-01-01").
		WillReturnRows(sqlmock.NewRows(expenseColumns))

	rep, err := reports.Monthly(context.Background(), 2024, 12)
	require.NoError(t, err)
	assert.True(t, rep.Total.IsZero())
	assert.NotNil(t, rep.ByCategory)
	assert.Len(t, rep.ByCategory, 0)
	assert.NotNil(t, rep.Expenses)
	assert.Len(t, rep.Expenses, 0)
}

func TestAnnualReport(t *testing.T) {
	store, mock := setupMockStore(t)
	reports := NewReports(store)

	mock.ExpectQuery("SELECT \\* FROM `gastos` WHERE data_gasto >= \\? AND data_gasto < \\?").
		WithArgs("2024-01-01", "2025-01-01").
		WillReturnRows(sqlmock.NewRows(expenseColumns).
			AddRow(1, "a", "10.00", "2024-12-31", 1, "Outros", "#95a5a6", 1, "Pix", "📱", "#1abc9c", nil, nil).
			AddRow(2, "b", "20.00", "2024-01-15", 1, "Outros", "#95a5a6", 1, "Pix", "📱", "#1abc9c", nil, nil).
			AddRow(3, "c", "5.00", "2024-01-20", 1, "Outros", "#95a5a6", 1, "Pix", "📱", "#1abc9c", nil, nil).
			AddRow(4, "d", "7.50", "2024-03-02", 1, "Outros", "#95a5a6", 1, "Pix", "📱", "#1abc9c", nil, nil))

	rep, err := reports.Annual(context.Background(), 2024)
	require.NoError(t, err)
	assert.Equal(t, 2024, rep.Year)

	// 只有有消费的月份出现，按月份升序
	require.Len(t, rep.Months, 3)
	assert.Equal(t, 1, rep.Months[0].Month)
	assert.Equal(t, "25", rep.Months[0].Total.String())
	assert.Equal(t, int64(2), rep.Months[0].Count)
	assert.Equal(t, 3, rep.Months[1].Month)
	assert.Equal(t, "7.5", rep.Months[1].Total.String())
	assert.Equal(t, 12, rep.Months[2].Month)
}

func TestAnnualReportMalformedDate(t *testing.T) {
	store, mock := setupMockStore(t)
	reports := NewReports(store)

	mock.ExpectQuery("SELECT \\* FROM `gastos` WHERE data_gasto >= \\? AND data_gasto < \\?").
		WithArgs("2024-01-01", "2025-01-01").
		WillReturnRows(sqlmock.NewRows(expenseColumns).
			AddRow(1, "a", "10.00", "bad", 1, "Outros", "#95a5a6", 1, "Pix", "📱", "#1abc9c", nil, nil))

	_, err := reports.Annual(context.Background(), 2024)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "月份")
}
