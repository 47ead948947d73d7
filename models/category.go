package models

import "time"

// DefaultColor 分类与支付方式的默认颜色
const DefaultColor = "#3498db"

// Category 消费分类（后台维护，名称唯一）
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"nome" gorm:"column:nome;size:100;not null;uniqueIndex"`
	Color     string    `json:"cor" gorm:"column:cor;size:20;default:#3498db"` // 颜色代码，如 #3498db
	CreatedAt time.Time `json:"criado_em" gorm:"column:criado_em"`
}

func (Category) TableName() string {
	return "categorias"
}
