package main

import (
	"flag"
	"log"
	"strings"

	"gastos/config"
	"gastos/database"
	"gastos/router"
)

// @title Controle de Gastos API
// @version 2.0
// @description 个人消费管理后端：分类、支付方式、消费记录与月度/年度报表
// @host localhost:8000
// @BasePath /

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 8000 或 :8000")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("Controle de Gastos v2.0.0")
		return
	}

	// 加载配置（内置配置 + 可选的外部配置覆盖）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 命令行参数覆盖端口配置
	if port != "" {
		// 自动添加冒号前缀
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("命令行指定端口: %s", port)
	}

	// 打印配置信息
	config.PrintConfig()

	// 初始化数据库客户端
	// 连接失败不阻止启动：服务以降级模式运行，首次使用时自动重连
	store := database.New(cfg)
	if err := store.Connect(); err != nil {
		log.Printf("数据库暂不可用，服务以降级模式启动: %v", err)
	}

	// 设置路由
	r := router.SetupRouter(cfg, store)

	// 启动服务器
	log.Printf("==========================================")
	log.Printf("  💰 Controle de Gastos 已启动")
	log.Printf("==========================================")
	log.Printf("  API:      http://localhost%s/", cfg.Server.Port)
	log.Printf("  Swagger:  http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("  健康检查: http://localhost%s/health", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("服务器启动失败: %v", err)
	}
}
