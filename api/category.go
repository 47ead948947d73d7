package api

import (
	"strconv"

	"gastos/service"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 消费分类管理
type CategoryHandler struct {
	ref *service.Reference
}

func NewCategoryHandler(ref *service.Reference) *CategoryHandler {
	return &CategoryHandler{ref: ref}
}

type CategoryCreateRequest struct {
	Name  string `json:"nome" binding:"required,min=1,max=100"`
	Color string `json:"cor" binding:"omitempty,max=20"` // 颜色代码，如 #3498db
}

// List 获取分类列表
// @Summary 获取分类列表
// @Description 获取所有消费分类，按名称升序排列
// @Tags 分类
// @Produce json
// @Success 200 {array} models.Category "分类列表"
// @Failure 503 {object} ErrorResponse "数据库不可用"
// @Router /categorias [get]
func (h *CategoryHandler) List(c *gin.Context) {
	list, err := h.ref.ListCategories(c.Request.Context())
	if err != nil {
		RenderServiceError(c, err)
		return
	}
	Success(c, list)
}

// Create 创建分类
// @Summary 创建分类
// @Description 创建新的消费分类，名称唯一，颜色缺省为 #3498db
// @Tags 分类
// @Accept json
// @Produce json
// @Param request body CategoryCreateRequest true "分类信息"
// @Success 200 {object} models.Category "创建成功"
// @Failure 400 {object} ErrorResponse "参数错误或名称已存在"
// @Router /categorias [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, KindValidation, SafeErrorMessage(err, "参数错误"))
		return
	}

	cat, err := h.ref.CreateCategory(c.Request.Context(), req.Name, req.Color)
	if err != nil {
		RenderServiceError(c, err)
		return
	}
	Success(c, cat)
}

// Delete 删除分类
// @Summary 删除分类
// @Description 删除指定分类；仍被消费记录引用的分类不可删除
// @Tags 分类
// @Produce json
// @Param id path int true "分类ID"
// @Success 200 {object} map[string]int64 "{\"deleted\": 1}"
// @Failure 400 {object} ErrorResponse "无效的ID或分类仍被引用"
// @Failure 404 {object} ErrorResponse "分类不存在"
// @Router /categorias/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, KindValidation, "无效的ID")
		return
	}

	deleted, err := h.ref.DeleteCategory(c.Request.Context(), uint(id))
	if err != nil {
		RenderServiceError(c, err)
		return
	}
	Success(c, gin.H{"deleted": deleted})
}
