package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmfresh/models"
)

func f(v float64) *float64 { return &v }

func TestTrendClassification(t *testing.T) {
	tests := []struct {
		name       string
		multiplier *float64
		want       string
	}{
		{"rising", f(1.2), models.TrendRising},
		{"falling", f(0.8), models.TrendFalling},
		{"exactly one", f(1.0), models.TrendStable},
		{"missing", nil, models.TrendStable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Trend(tt.multiplier))
		})
	}
}

func TestBuildSnapshotEntries(t *testing.T) {
	weather := &models.WeatherReading{TemperatureC: f(28), WeatherQualityIndex: f(72)}
	predictions := []*models.PricePrediction{
		{Crop: "Tomato", PredictedPrice: f(42.5), BasePrice: f(40), Multiplier: f(1.0625), WeatherQualityIndex: f(72)},
		{Crop: "Carrot", PredictedPrice: f(28), BasePrice: f(30), Multiplier: f(0.93)},
		{Crop: "Potato", PredictedPrice: f(32), BasePrice: f(32), Multiplier: f(1.0)},
	}

	snapshot := BuildSnapshot(predictions, map[string]*models.WeatherReading{"Coimbatore": weather},
		"Coimbatore", 2, 7)

	require.Len(t, snapshot.Crops, 3)

	tomato := snapshot.Crops[0]
	assert.Equal(t, models.TrendRising, tomato.Trend)
	assert.InDelta(t, 2.5, tomato.Delta, 1e-9)
	assert.InDelta(t, 85.0, tomato.BuyerTotal, 1e-9)
	assert.InDelta(t, 297.5, tomato.SellerTotal, 1e-9)
	assert.Equal(t, weather, tomato.Weather)
	assert.Equal(t, "Coimbatore", tomato.Market)

	assert.Equal(t, models.TrendFalling, snapshot.Crops[1].Trend)
	assert.Equal(t, models.TrendStable, snapshot.Crops[2].Trend)

	assert.Equal(t, 3, snapshot.Summary.CropsTracked)
	assert.Equal(t, 1, snapshot.Summary.PricesRising)
	assert.Equal(t, 1, snapshot.Summary.PricesFalling)
	assert.Equal(t, 1, snapshot.Summary.PricesStable)
	assert.NotEmpty(t, snapshot.LastUpdated)
}

func TestBuildSnapshotMissingNumerics(t *testing.T) {
	// 外部响应的数值字段可能全部缺失，缺失按0处理
	predictions := []*models.PricePrediction{
		{Crop: "Onion"},
	}
	snapshot := BuildSnapshot(predictions, nil, "Salem", 1, 5)

	require.Len(t, snapshot.Crops, 1)
	entry := snapshot.Crops[0]
	assert.Equal(t, 0.0, entry.PredictedPrice)
	assert.Equal(t, 0.0, entry.BasePrice)
	assert.Equal(t, 0.0, entry.Delta)
	assert.Equal(t, 0.0, entry.BuyerTotal)
	assert.Equal(t, models.TrendStable, entry.Trend)
}

func TestBuildSnapshotWeatherFallback(t *testing.T) {
	predictionWeather := &models.WeatherReading{TemperatureC: f(31)}

	// 城市天气缺失时退回预测响应里带的天气
	snapshot := BuildSnapshot([]*models.PricePrediction{
		{Crop: "Capsicum", PredictedPrice: f(60), Weather: predictionWeather},
	}, nil, "Erode", 1, 5)
	require.Len(t, snapshot.Crops, 1)
	assert.Equal(t, predictionWeather, snapshot.Crops[0].Weather)

	// 两者都缺失时使用占位值，保证展示层拿到的不是nil
	snapshot = BuildSnapshot([]*models.PricePrediction{
		{Crop: "Capsicum", PredictedPrice: f(60)},
	}, nil, "Erode", 1, 5)
	require.Len(t, snapshot.Crops, 1)
	require.NotNil(t, snapshot.Crops[0].Weather)
	assert.Equal(t, 0.0, *snapshot.Crops[0].Weather.TemperatureC)
}

func TestBuildSnapshotSkipsNilPredictions(t *testing.T) {
	snapshot := BuildSnapshot([]*models.PricePrediction{nil, {Crop: "Tomato", PredictedPrice: f(40)}}, nil, "Karur", 1, 5)
	assert.Len(t, snapshot.Crops, 1)
	assert.Equal(t, 1, snapshot.Summary.CropsTracked)
}
