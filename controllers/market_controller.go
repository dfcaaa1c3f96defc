package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"farmfresh/config"
	"farmfresh/market"
	"farmfresh/models"
	"farmfresh/utils"
)

// MarketController 处理行情和天气相关的请求
type MarketController struct {
	Client market.Client
	Poller *market.Poller
}

// NewMarketController 创建一个新的MarketController实例
func NewMarketController(client market.Client, poller *market.Poller) *MarketController {
	return &MarketController{Client: client, Poller: poller}
}

// GetCities 获取支持的城市列表
func (c *MarketController) GetCities(ctx *gin.Context) {
	ctx.JSON(200, config.CityList())
}

// GetMarketPrices 获取行情快照：逐作物请求价格预测并合并天气数据
func (c *MarketController) GetMarketPrices(ctx *gin.Context) {
	location := ctx.DefaultQuery("location", config.CityList()[0])
	buyerQty, err := strconv.ParseFloat(ctx.DefaultQuery("buyer_qty", "1"), 64)
	if err != nil {
		utils.BadRequest(ctx, "invalid buyer_qty")
		return
	}
	sellerQty, err := strconv.ParseFloat(ctx.DefaultQuery("seller_qty", "5"), 64)
	if err != nil {
		utils.BadRequest(ctx, "invalid seller_qty")
		return
	}

	predictions := make([]*models.PricePrediction, 0, len(market.TrackedCrops))
	for _, crop := range market.TrackedCrops {
		prediction, err := c.Client.PredictPrice(ctx.Request.Context(), market.PredictRequest{
			Crop:      crop,
			City:      location,
			BuyerQty:  buyerQty,
			SellerQty: sellerQty,
		})
		if err != nil {
			c.serviceError(ctx, err)
			return
		}
		predictions = append(predictions, prediction)
	}

	snapshot := market.BuildSnapshot(predictions, c.Poller.WeatherByCity(), location, buyerQty, sellerQty)
	utils.Success(ctx, snapshot)
}

// GetWeatherSnapshot 获取全城市天气快照，优先用轮询缓存
func (c *MarketController) GetWeatherSnapshot(ctx *gin.Context) {
	if snapshot, ok := c.Poller.Latest(); ok {
		ctx.JSON(200, snapshot)
		return
	}

	// 轮询尚未拉到数据时直接请求一次
	snapshot, err := c.Client.WeatherSnapshot(ctx.Request.Context())
	if err != nil {
		c.serviceError(ctx, err)
		return
	}
	ctx.JSON(200, snapshot)
}

// serviceError 外部服务错误统一处理：解析失败按网络错误展示
func (c *MarketController) serviceError(ctx *gin.Context, err error) {
	var netErr *models.NetworkError
	var parseErr *models.ParseError
	if errors.As(err, &netErr) || errors.As(err, &parseErr) {
		utils.BadGateway(ctx, "Unable to refresh live prices right now. Please try again in a minute.")
		return
	}
	utils.InternalServerError(ctx, err.Error())
}
