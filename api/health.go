package api

import (
	"net/http"
	"time"

	"gastos/database"
	"gastos/models"

	"github.com/gin-gonic/gin"
)

// HealthHandler 服务状态与健康检查
// 数据库不可用时服务仍然启动并响应探针，这里负责如实上报降级状态。
type HealthHandler struct {
	store *database.Store
}

func NewHealthHandler(store *database.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// Root 服务信息
// @Summary 服务信息
// @Description 服务名称、版本与数据库连接状态
// @Tags 健康检查
// @Produce json
// @Success 200 {object} map[string]interface{} "服务信息"
// @Router / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	dbStatus := "conectado"
	if err := h.store.Ping(c.Request.Context()); err != nil {
		dbStatus = "desconectado"
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "API de Controle de Gastos",
		"version":      "2.0.0",
		"database":     dbStatus,
		"docs":         "/swagger/index.html",
		"health_check": "/health",
	})
}

// Health 健康检查
// @Summary 健康检查
// @Description 探活端点；数据库不可用时仍返回 200，状态字段标记 degraded/unhealthy
// @Tags 健康检查
// @Produce json
// @Success 200 {object} map[string]interface{} "健康状态"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()
	now := time.Now().Format(time.RFC3339)

	if err := h.store.Ping(ctx); err != nil {
		status := "degraded"
		dbState := "error: " + err.Error()
		if !h.store.Connected() {
			status = "unhealthy"
			dbState = "disconnected"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":    status,
			"database":  dbState,
			"timestamp": now,
		})
		return
	}

	// 统计分类数，顺带验证读路径可用
	var count int64
	if db, err := h.store.DB(ctx); err == nil {
		db.Model(&models.Category{}).Count(&count)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"database":   "connected",
		"categorias": count,
		"timestamp":  now,
	})
}
