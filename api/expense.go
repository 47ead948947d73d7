package api

import (
	"strconv"

	"gastos/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ExpenseHandler 消费记录管理
type ExpenseHandler struct {
	expenses *service.Expenses
}

func NewExpenseHandler(expenses *service.Expenses) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

// ExpenseRequest 创建和更新共用的请求体（更新是全量替换）
type ExpenseRequest struct {
	Description   string          `json:"descricao" binding:"required,max=255" example:"Almoço"`
	Amount        decimal.Decimal `json:"valor" swaggertype:"number" example:"12.50"`
	CategoryID    uint            `json:"categoria_id" binding:"required" example:"1"`
	PaymentTypeID uint            `json:"tipo_pagamento_id" binding:"required" example:"1"`
	ExpenseDate   string          `json:"data_gasto" binding:"required" example:"2024-03-15"`
}

// ExpenseListRequest 消费记录列表请求
type ExpenseListRequest struct {
	Month int `form:"mes" binding:"omitempty,min=1,max=12" example:"3"`
	Year  int `form:"ano" binding:"omitempty,min=1" example:"2024"`
}

func (r ExpenseRequest) toInput() service.ExpenseInput {
	return service.ExpenseInput{
		Description:   r.Description,
		Amount:        r.Amount,
		CategoryID:    r.CategoryID,
		PaymentTypeID: r.PaymentTypeID,
		ExpenseDate:   r.ExpenseDate,
	}
}

// List 获取消费记录列表
// @Summary 获取消费记录列表
// @Description 获取消费记录，按日期倒序。mes 和 ano 同时给出时过滤到该月；只给出其中一个时不过滤（沿用既有行为）
// @Tags 消费记录
// @Produce json
// @Param mes query int false "月份 1-12"
// @Param ano query int false "年份"
// @Success 200 {array} models.Expense "消费记录列表"
// @Failure 400 {object} ErrorResponse "参数错误"
// @Router /gastos [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	var req ExpenseListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, KindValidation, SafeErrorMessage(err, "参数错误"))
		return
	}

	list, err := h.expenses.List(c.Request.Context(), req.Month, req.Year)
	if err != nil {
		RenderServiceError(c, err)
		return
	}
	Success(c, list)
}

// Create 创建消费记录
// @Summary 创建消费记录
// @Description 创建消费记录并嵌入此刻的分类与支付方式快照
// @Tags 消费记录
// @Accept json
// @Produce json
// @Param request body ExpenseRequest true "消费记录信息"
// @Success 200 {object} models.Expense "创建成功"
// @Failure 400 {object} ErrorResponse "参数错误"
// @Failure 404 {object} ErrorResponse "分类或支付方式不存在"
// @Router /gastos [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, KindValidation, SafeErrorMessage(err, "参数错误"))
		return
	}

	exp, err := h.expenses.Create(c.Request.Context(), req.toInput())
	if err != nil {
		RenderServiceError(c, err)
		return
	}
	Success(c, exp)
}

// Update 更新消费记录
// @Summary 更新消费记录
// @Description 全量替换指定消费记录并重新生成快照
// @Tags 消费记录
// @Accept json
// @Produce json
// @Param id path int true "消费记录ID"
// @Param request body ExpenseRequest true "消费记录信息"
// @Success 200 {object} models.Expense "更新后的记录"
// @Failure 400 {object} ErrorResponse "参数错误"
// @Failure 404 {object} ErrorResponse "记录、分类或支付方式不存在"
// @Router /gastos/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, KindValidation, "无效的ID")
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, KindValidation, SafeErrorMessage(err, "参数错误"))
		return
	}

	exp, err := h.expenses.Update(c.Request.Context(), uint(id), req.toInput())
	if err != nil {
		RenderServiceError(c, err)
		return
	}
	Success(c, exp)
}

// Delete 删除消费记录
// @Summary 删除消费记录
// @Description 删除指定消费记录
// @Tags 消费记录
// @Produce json
// @Param id path int true "消费记录ID"
// @Success 200 {object} map[string]int64 "{\"deleted\": 1}"
// @Failure 404 {object} ErrorResponse "记录不存在"
// @Router /gastos/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, KindValidation, "无效的ID")
		return
	}

	deleted, err := h.expenses.Delete(c.Request.Context(), uint(id))
	if err != nil {
		RenderServiceError(c, err)
		return
	}
	Success(c, gin.H{"deleted": deleted})
}
