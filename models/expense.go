package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// valor 在 JSON 中输出为数字而非字符串
	decimal.MarshalJSONWithoutQuotes = true
}

// DateLayout 消费日期的规范格式（零填充、年月日序，可按字符串比较排序）
const DateLayout = "2006-01-02"

// CategorySnapshot 嵌入在消费记录里的分类快照
// 创建/更新消费时拷贝分类当时的字段，之后分类被修改也不回写（读取无需联表）
type CategorySnapshot struct {
	ID    uint   `json:"id" gorm:"column:id;index"`
	Name  string `json:"nome" gorm:"column:nome;size:100;index"`
	Color string `json:"cor" gorm:"column:cor;size:20"`
}

// PaymentTypeSnapshot 嵌入在消费记录里的支付方式快照，规则同 CategorySnapshot
type PaymentTypeSnapshot struct {
	ID    uint   `json:"id" gorm:"column:id;index"`
	Name  string `json:"nome" gorm:"column:nome;size:100;index"`
	Icon  string `json:"icone" gorm:"column:icone;size:50"`
	Color string `json:"cor" gorm:"column:cor;size:20"`
}

// Expense 消费记录模型
type Expense struct {
	ID          uint                `json:"id" gorm:"primaryKey"`
	Description string              `json:"descricao" gorm:"column:descricao;size:255;not null"`
	Amount      decimal.Decimal     `json:"valor" gorm:"column:valor;type:decimal(12,2);not null"`
	ExpenseDate string              `json:"data_gasto" gorm:"column:data_gasto;type:char(10);not null;index"`
	Category    CategorySnapshot    `json:"categoria" gorm:"embedded;embeddedPrefix:categoria_"`
	PaymentType PaymentTypeSnapshot `json:"tipo_pagamento" gorm:"embedded;embeddedPrefix:tipo_pagamento_"`
	CreatedAt   time.Time           `json:"criado_em" gorm:"column:criado_em"`
	// 仅在更新时写入，创建后保持为空
	UpdatedAt *time.Time `json:"atualizado_em,omitempty" gorm:"column:atualizado_em;autoUpdateTime:false"`
}

func (Expense) TableName() string {
	return "gastos"
}
