package market

import (
	"time"

	"farmfresh/models"
)

// TrackedCrops 行情页跟踪的作物
var TrackedCrops = []string{"Tomato", "Carrot", "Potato", "Onion", "Capsicum"}

// Trend 按乘数分类趋势，缺失时视为stable
func Trend(multiplier *float64) string {
	if multiplier == nil {
		return models.TrendStable
	}
	switch {
	case *multiplier > 1:
		return models.TrendRising
	case *multiplier < 1:
		return models.TrendFalling
	default:
		return models.TrendStable
	}
}

// PlaceholderWeather 天气数据缺失时的占位展示值
func PlaceholderWeather() *models.WeatherReading {
	zero := 0.0
	return &models.WeatherReading{
		TemperatureC:        &zero,
		RainChancePct:       &zero,
		HumidityPct:         &zero,
		WindSpeedKph:        &zero,
		WeatherQualityIndex: &zero,
	}
}

// BuildSnapshot 把各作物预测结果和天气数据合并为行情视图
// 外部响应的数值字段都可能缺失，缺失按0处理，天气缺失用占位值
func BuildSnapshot(predictions []*models.PricePrediction, weatherByCity map[string]*models.WeatherReading,
	location string, buyerQty, sellerQty float64) *models.MarketSnapshot {

	cityWeather := weatherByCity[location]

	entries := make([]models.MarketSnapshotEntry, 0, len(predictions))
	summary := models.MarketSummary{}
	for i, p := range predictions {
		if p == nil {
			continue
		}
		crop := p.Crop
		if crop == "" && i < len(TrackedCrops) {
			crop = TrackedCrops[i]
		}

		predicted := floatOrZero(p.PredictedPrice)
		base := floatOrZero(p.BasePrice)
		delta := predicted - base

		weather := cityWeather
		if weather == nil {
			weather = p.Weather
		}
		if weather == nil {
			weather = PlaceholderWeather()
		}

		entry := models.MarketSnapshotEntry{
			Crop:                crop,
			Category:            "Vegetables",
			Price:               predicted,
			PredictedPrice:      predicted,
			BasePrice:           base,
			Trend:               Trend(p.Multiplier),
			Delta:               delta,
			TrendDelta:          delta,
			WeatherQualityIndex: floatOrZero(p.WeatherQualityIndex),
			Multiplier:          floatOrZero(p.Multiplier),
			Weather:             weather,
			Market:              location,
			BuyerTotal:          predicted * buyerQty,
			SellerTotal:         predicted * sellerQty,
		}
		entries = append(entries, entry)

		switch entry.Trend {
		case models.TrendRising:
			summary.PricesRising++
		case models.TrendFalling:
			summary.PricesFalling++
		default:
			summary.PricesStable++
		}
	}
	summary.CropsTracked = len(entries)

	return &models.MarketSnapshot{
		Crops:       entries,
		Summary:     summary,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
