package models

// WeatherReading 单城市天气数据，外部服务返回的数值字段都按可缺失处理
type WeatherReading struct {
	TemperatureC        *float64 `json:"temperature_c"`
	RainChancePct       *float64 `json:"rain_chance_pct"`
	HumidityPct         *float64 `json:"humidity_pct"`
	WindSpeedKph        *float64 `json:"wind_speed_kph"`
	WeatherQualityIndex *float64 `json:"weather_quality_index"`
	Timestamp           string   `json:"timestamp"`
}

// PricePrediction 价格预测服务响应
type PricePrediction struct {
	Crop                string                 `json:"crop"`
	City                string                 `json:"city"`
	BasePrice           *float64               `json:"base_price"`
	PredictedPrice      *float64               `json:"predicted_price"`
	Multiplier          *float64               `json:"multiplier"`
	WeatherQualityIndex *float64               `json:"weather_quality_index"`
	Weather             *WeatherReading        `json:"weather"`
	BuyerQty            float64                `json:"buyer_qty"`
	SellerQty           float64                `json:"seller_qty"`
	DatasetMeta         map[string]interface{} `json:"dataset_meta,omitempty"`
	Timestamp           string                 `json:"timestamp"`
}

// CityWeather 天气快照中的单城市条目
type CityWeather struct {
	City    string          `json:"city"`
	Weather *WeatherReading `json:"weather"`
}

// WeatherSnapshot 全城市天气快照服务响应
type WeatherSnapshot struct {
	Locations          []CityWeather          `json:"locations"`
	AvailableLocations []string               `json:"available_locations"`
	GeneratedAt        string                 `json:"generated_at"`
	DatasetMeta        map[string]interface{} `json:"dataset_meta,omitempty"`
	BaseMarket         string                 `json:"base_market,omitempty"`
}

// 行情趋势分类
const (
	TrendRising  = "rising"
	TrendFalling = "falling"
	TrendStable  = "stable"
)

// MarketSnapshotEntry 单作物行情展示条目，由外部响应派生不持久化
type MarketSnapshotEntry struct {
	Crop                string          `json:"crop"`
	Category            string          `json:"category"`
	Price               float64         `json:"price"`
	PredictedPrice      float64         `json:"predicted_price"`
	BasePrice           float64         `json:"base_price"`
	Trend               string          `json:"trend"`
	Delta               float64         `json:"delta"`
	TrendDelta          float64         `json:"trend_delta"`
	WeatherQualityIndex float64         `json:"weather_quality_index"`
	Multiplier          float64         `json:"multiplier"`
	Weather             *WeatherReading `json:"weather"`
	Market              string          `json:"market"`
	BuyerTotal          float64         `json:"buyer_total"`
	SellerTotal         float64         `json:"seller_total"`
}

// MarketSummary 行情汇总统计
type MarketSummary struct {
	CropsTracked  int `json:"crops_tracked"`
	PricesRising  int `json:"prices_rising"`
	PricesFalling int `json:"prices_falling"`
	PricesStable  int `json:"prices_stable"`
}

// MarketSnapshot 行情快照视图
type MarketSnapshot struct {
	Crops       []MarketSnapshotEntry `json:"crops"`
	Summary     MarketSummary         `json:"summary"`
	LastUpdated string                `json:"last_updated"`
}
