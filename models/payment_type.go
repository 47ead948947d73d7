package models

import "time"

// DefaultIcon 支付方式的默认图标
const DefaultIcon = "💳"

// PaymentType 支付方式（后台维护，名称唯一）
type PaymentType struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"nome" gorm:"column:nome;size:100;not null;uniqueIndex"`
	Icon      string    `json:"icone" gorm:"column:icone;size:50"` // 图标，如 💳
	Color     string    `json:"cor" gorm:"column:cor;size:20;default:#3498db"`
	CreatedAt time.Time `json:"criado_em" gorm:"column:criado_em"`
}

func (PaymentType) TableName() string {
	return "tipos_pagamento"
}
