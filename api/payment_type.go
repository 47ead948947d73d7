package api

import (
	"strconv"

	"gastos/service"

	"github.com/gin-gonic/gin"
)

// PaymentTypeHandler 支付方式管理，规则与分类管理对称
type PaymentTypeHandler struct {
	ref *service.Reference
}

func NewPaymentTypeHandler(ref *service.Reference) *PaymentTypeHandler {
	return &PaymentTypeHandler{ref: ref}
}

type PaymentTypeCreateRequest struct {
	Name  string `json:"nome" binding:"required,min=1,max=100"`
	Icon  string `json:"icone" binding:"omitempty,max=50"` // 图标，缺省为 💳
	Color string `json:"cor" binding:"omitempty,max=20"`
}

// List 获取支付方式列表
// @Summary 获取支付方式列表
// @Description 获取所有支付方式，按名称升序排列
// @Tags 支付方式
// @Produce json
// @Success 200 {array} models.PaymentType "支付方式列表"
// @Failure 503 {object} ErrorResponse "数据库不可用"
// @Router /tipos-pagamento [get]
func (h *PaymentTypeHandler) List(c *gin.Context) {
	list, err := h.ref.ListPaymentTypes(c.Request.Context())
	if err != nil {
		RenderServiceError(c, err)
		return
	}
	Success(c, list)
}

// Create 创建支付方式
// @Summary 创建支付方式
// @Description 创建新的支付方式，名称唯一
// @Tags 支付方式
// @Accept json
// @Produce json
// @Param request body PaymentTypeCreateRequest true "支付方式信息"
// @Success 200 {object} models.PaymentType "创建成功"
// @Failure 400 {object} ErrorResponse "参数错误或名称已存在"
// @Router /tipos-pagamento [post]
func (h *PaymentTypeHandler) Create(c *gin.Context) {
	var req PaymentTypeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, KindValidation, SafeErrorMessage(err, "参数错误"))
		return
	}

	tp, err := h.ref.CreatePaymentType(c.Request.Context(), req.Name, req.Icon, req.Color)
	if err != nil {
		RenderServiceError(c, err)
		return
	}
	Success(c, tp)
}

// Delete 删除支付方式
// @Summary 删除支付方式
// @Description 删除指定支付方式；仍被消费记录引用的支付方式不可删除
// @Tags 支付方式
// @Produce json
// @Param id path int true "支付方式ID"
// @Success 200 {object} map[string]int64 "{\"deleted\": 1}"
// @Failure 400 {object} ErrorResponse "无效的ID或支付方式仍被引用"
// @Failure 404 {object} ErrorResponse "支付方式不存在"
// @Router /tipos-pagamento/{id} [delete]
func (h *PaymentTypeHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, KindValidation, "无效的ID")
		return
	}

	deleted, err := h.ref.DeletePaymentType(c.Request.Context(), uint(id))
	if err != nil {
		RenderServiceError(c, err)
		return
	}
	Success(c, gin.H{"deleted": deleted})
}
