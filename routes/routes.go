package routes

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"farmfresh/classifier"
	"farmfresh/config"
	"farmfresh/controllers"
	"farmfresh/market"
	"farmfresh/middleware"
	"farmfresh/store"
)

// SetupRouter 配置所有路由
func SetupRouter(db *sql.DB, kv store.KV, marketClient market.Client, poller *market.Poller,
	classifierClient classifier.Client, cfg *config.Config) *gin.Engine {

	r := gin.Default()

	// 创建控制器实例
	authController := controllers.NewAuthController(db, cfg.JWTSecret)
	productController := controllers.NewProductController(db)
	cartController := controllers.NewCartController(db, kv)
	orderController := controllers.NewOrderController(db, kv)
	advisorController := controllers.NewAdvisorController()
	marketController := controllers.NewMarketController(marketClient, poller)
	predictController := controllers.NewPredictController(classifierClient, cfg.UploadDir)

	// 公共路由
	public := r.Group("/")
	{
		// 用户认证相关路由
		public.POST("/register", authController.Register)
		public.POST("/api/login", authController.Login)

		// 商品目录
		public.GET("/products", productController.GetProducts)
		public.GET("/products/:id", productController.GetProduct)

		// 行情和天气
		public.GET("/cities", marketController.GetCities)
		public.GET("/market/prices", marketController.GetMarketPrices)
		public.GET("/weather_snapshot", marketController.GetWeatherSnapshot)

		// 土壤分析
		public.POST("/soil/analyze", advisorController.AnalyzeSoil)

		// 图像新鲜度识别
		public.POST("/predict", predictController.Predict)
		public.GET("/predict_uploaded", predictController.PredictUploaded)
	}

	// 需要认证的路由
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		// 购物车相关路由
		protected.GET("/cart", cartController.GetCart)
		protected.POST("/cart/add", cartController.AddToCart)
		protected.POST("/cart/quantity", cartController.SetQuantity)
		protected.POST("/cart/remove", cartController.RemoveFromCart)
		protected.POST("/cart/clear", cartController.ClearCart)

		// 订单相关路由
		protected.POST("/orders/checkout", orderController.Checkout)
		protected.GET("/orders/current", orderController.CurrentOrder)
		protected.GET("/orders", orderController.GetOrders)
	}

	return r
}
