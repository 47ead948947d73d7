package router

import (
	"time"

	"gastos/api"
	"gastos/config"
	"gastos/database"
	_ "gastos/docs"
	"gastos/middleware"
	"gastos/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, store *database.Store) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	ref := service.NewReference(store)
	expenses := service.NewExpenses(store)
	reports := service.NewReports(store)

	categoryHandler := api.NewCategoryHandler(ref)
	paymentTypeHandler := api.NewPaymentTypeHandler(ref)
	expenseHandler := api.NewExpenseHandler(expenses)
	reportHandler := api.NewReportHandler(reports)
	exportHandler := api.NewExportHandler(expenses)
	healthHandler := api.NewHealthHandler(store)

	// 写接口限流
	writeLimit := middleware.WriteRateLimit(60, time.Minute)

	// 服务状态与健康检查
	r.GET("/", healthHandler.Root)
	r.GET("/health", healthHandler.Health)

	// 分类
	r.GET("/categorias", categoryHandler.List)
	r.POST("/categorias", writeLimit, categoryHandler.Create)
	r.DELETE("/categorias/:id", writeLimit, categoryHandler.Delete)

	// 支付方式
	r.GET("/tipos-pagamento", paymentTypeHandler.List)
	r.POST("/tipos-pagamento", writeLimit, paymentTypeHandler.Create)
	r.DELETE("/tipos-pagamento/:id", writeLimit, paymentTypeHandler.Delete)

	// 消费记录
	r.GET("/gastos", expenseHandler.List)
	r.POST("/gastos", writeLimit, expenseHandler.Create)
	r.PUT("/gastos/:id", writeLimit, expenseHandler.Update)
	r.DELETE("/gastos/:id", writeLimit, expenseHandler.Delete)

	// 报表
	r.GET("/relatorio/mensal/:ano/:mes", reportHandler.Monthly)
	r.GET("/relatorio/anual/:ano", reportHandler.Annual)

	// 导出
	r.GET("/exportar/csv", exportHandler.ExportCSV)
	r.GET("/exportar/json", exportHandler.ExportJSON)
	r.GET("/exportar/excel", exportHandler.ExportExcel)

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
