package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"gastos/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器，导出某个月的消费记录
type ExportHandler struct {
	expenses *service.Expenses
}

func NewExportHandler(expenses *service.Expenses) *ExportHandler {
	return &ExportHandler{expenses: expenses}
}

// monthParams 解析导出接口必填的 mes/ano 参数
func monthParams(c *gin.Context) (month, year int, ok bool) {
	monthStr := c.Query("mes")
	yearStr := c.Query("ano")
	if monthStr == "" || yearStr == "" {
		BadRequest(c, KindValidation, "请提供 mes 和 ano 参数")
		return 0, 0, false
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		BadRequest(c, KindValidation, "mes 参数错误，应为 1-12")
		return 0, 0, false
	}
	year, err = strconv.Atoi(yearStr)
	if err != nil || year <= 0 {
		BadRequest(c, KindValidation, "ano 参数错误")
		return 0, 0, false
	}
	return month, year, true
}

// ExportCSV 导出消费记录为 CSV
// @Summary 导出消费记录为 CSV
// @Description 导出某个月的消费记录为 CSV 文件
// @Tags 导出
// @Produce text/csv
// @Param mes query int true "月份 1-12"
// @Param ano query int true "年份"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} ErrorResponse "参数错误"
// @Router /exportar/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	month, year, ok := monthParams(c)
	if !ok {
		return
	}

	expenses, err := h.expenses.List(c.Request.Context(), month, year)
	if err != nil {
		RenderServiceError(c, err)
		return
	}

	buf := new(bytes.Buffer)
	// 添加 BOM 以兼容 Excel 打开
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	headers := []string{"ID", "Descrição", "Valor", "Data", "Categoria", "Tipo de Pagamento", "Criado em"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	for _, expense := range expenses {
		row := []string{
			fmt.Sprintf("%d", expense.ID),
			expense.Description,
			expense.Amount.StringFixed(2),
			expense.ExpenseDate,
			expense.Category.Name,
			expense.PaymentType.Name,
			expense.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	filename := fmt.Sprintf("gastos_%04d-%02d.csv", year, month)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportJSON 导出消费记录为 JSON
// @Summary 导出消费记录为 JSON
// @Description 导出某个月的消费记录及汇总为 JSON
// @Tags 导出
// @Produce json
// @Param mes query int true "月份 1-12"
// @Param ano query int true "年份"
// @Success 200 {object} map[string]interface{} "导出结果"
// @Failure 400 {object} ErrorResponse "参数错误"
// @Router /exportar/json [get]
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	month, year, ok := monthParams(c)
	if !ok {
		return
	}

	expenses, err := h.expenses.List(c.Request.Context(), month, year)
	if err != nil {
		RenderServiceError(c, err)
		return
	}

	total := decimal.Zero
	for _, expense := range expenses {
		total = total.Add(expense.Amount)
	}

	Success(c, gin.H{
		"mes":        month,
		"ano":        year,
		"quantidade": len(expenses),
		"total":      total,
		"gastos":     expenses,
	})
}

// ExportExcel 导出消费记录为 Excel
// @Summary 导出消费记录为 Excel
// @Description 导出某个月的消费记录为 xlsx 文件，末尾附汇总行
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param mes query int true "月份 1-12"
// @Param ano query int true "年份"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} ErrorResponse "参数错误"
// @Router /exportar/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	month, year, ok := monthParams(c)
	if !ok {
		return
	}

	expenses, err := h.expenses.List(c.Request.Context(), month, year)
	if err != nil {
		RenderServiceError(c, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Gastos"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 30)
	f.SetColWidth(sheetName, "C", "C", 12)
	f.SetColWidth(sheetName, "D", "D", 12)
	f.SetColWidth(sheetName, "E", "E", 18)
	f.SetColWidth(sheetName, "F", "F", 18)
	f.SetColWidth(sheetName, "G", "G", 20)

	headers := []string{"ID", "Descrição", "Valor", "Data", "Categoria", "Tipo de Pagamento", "Criado em"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	total := decimal.Zero
	for i, expense := range expenses {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), expense.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), expense.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), expense.Amount.InexactFloat64())
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), expense.ExpenseDate)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), expense.Category.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), expense.PaymentType.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), expense.CreatedAt.Format("2006-01-02 15:04:05"))

		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("G%d", row), dataStyle)
		total = total.Add(expense.Amount)
	}

	// 汇总行
	summaryRow := len(expenses) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "Total")
	f.MergeCell(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("B%d", summaryRow))
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", summaryRow), total.InexactFloat64())
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", summaryRow), fmt.Sprintf("%d registros", len(expenses)))
	f.MergeCell(sheetName, fmt.Sprintf("D%d", summaryRow), fmt.Sprintf("G%d", summaryRow))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("G%d", summaryRow), summaryStyle)

	filename := fmt.Sprintf("gastos_%04d-%02d.xlsx", year, month)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", filename))

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}
}
