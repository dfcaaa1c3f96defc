package main

import (
	"context"
	"log"
	"os"

	"farmfresh/classifier"
	"farmfresh/config"
	"farmfresh/market"
	"farmfresh/middleware"
	"farmfresh/routes"
	"farmfresh/store"
)

func main() {
	configPath := os.Getenv("FARMFRESH_CONFIG")
	if configPath == "" {
		configPath = "farmfresh.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化数据库连接
	config.InitDB(cfg)

	// JWT密钥
	middleware.SetSecret(cfg.JWTSecret)

	// 外部服务客户端
	marketClient := market.NewHTTPClient(cfg.Market.BaseURL, cfg.MarketTimeout())
	classifierClient := classifier.NewHTTPClient(cfg.Classifier.BaseURL, cfg.ClassifierTimeout())

	// 启动天气快照轮询
	poller := market.NewPoller(marketClient, cfg.PollInterval())
	poller.Start(context.Background())

	// 购物车和订单持久化
	kv := store.NewMySQLKV(config.DB)

	// 设置路由
	r := routes.SetupRouter(config.DB, kv, marketClient, poller, classifierClient, cfg)

	// 启动服务器
	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
