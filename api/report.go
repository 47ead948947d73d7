package api

import (
	"strconv"

	"gastos/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler 报表查询
type ReportHandler struct {
	reports *service.Reports
}

func NewReportHandler(reports *service.Reports) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Monthly 月度报表
// @Summary 月度报表
// @Description 某年某月的消费总额、按分类的聚合（总额降序）以及明细列表（日期倒序）
// @Tags 报表
// @Produce json
// @Param ano path int true "年份"
// @Param mes path int true "月份 1-12"
// @Success 200 {object} service.MonthlyReport "月度报表"
// @Failure 400 {object} ErrorResponse "参数错误"
// @Router /relatorio/mensal/{ano}/{mes} [get]
func (h *ReportHandler) Monthly(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("ano"))
	if err != nil {
		BadRequest(c, KindValidation, "无效的年份")
		return
	}
	month, err := strconv.Atoi(c.Param("mes"))
	if err != nil {
		BadRequest(c, KindValidation, "无效的月份")
		return
	}

	rep, err := h.reports.Monthly(c.Request.Context(), year, month)
	if err != nil {
		RenderServiceError(c, err)
		return
	}
	Success(c, rep)
}

// Annual 年度报表
// @Summary 年度报表
// @Description 某年的逐月消费总额与记录数，按月份升序；没有消费的月份不出现
// @Tags 报表
// @Produce json
// @Param ano path int true "年份"
// @Success 200 {object} service.AnnualReport "年度报表"
// @Failure 400 {object} ErrorResponse "参数错误"
// @Router /relatorio/anual/{ano} [get]
func (h *ReportHandler) Annual(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("ano"))
	if err != nil {
		BadRequest(c, KindValidation, "无效的年份")
		return
	}

	rep, err := h.reports.Annual(c.Request.Context(), year)
	if err != nil {
		RenderServiceError(c, err)
		return
	}
	Success(c, rep)
}
