package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"farmfresh/models"
)

func TestHealthScoreWorkedExample(t *testing.T) {
	reading := models.SoilReading{
		Nitrogen:    30,
		Phosphorus:  20,
		Potassium:   40,
		PH:          5.5,
		Temperature: 30,
		Rainfall:    150,
		Humidity:    60,
		SoilType:    "Clay",
	}

	// 100-20-20-15-15 = 30
	assert.Equal(t, 30, HealthScore(reading))

	rec := Recommend(reading)
	assert.Equal(t, "Poor - Significant soil improvement required before farming", rec.SoilHealth)

	// pH<6.0 的推荐作物
	assert.Contains(t, rec.BestCrops, "Potatoes")
	assert.Contains(t, rec.BestCrops, "Blueberries")
	assert.Contains(t, rec.BestCrops, "Raspberries")
	// 温度>25且降雨>100 的推荐作物
	assert.Contains(t, rec.BestCrops, "Rice")
	assert.Contains(t, rec.BestCrops, "Corn")
	assert.Contains(t, rec.BestCrops, "Sugarcane")
	assert.Contains(t, rec.BestCrops, "Cotton")
	// Clay 土壤的推荐作物
	assert.Contains(t, rec.BestCrops, "Wheat")
	assert.Contains(t, rec.BestCrops, "Cabbage")
	assert.Contains(t, rec.BestCrops, "Broccoli")
}

func TestHealthScoreBands(t *testing.T) {
	healthy := models.SoilReading{
		Nitrogen: 100, Phosphorus: 50, Potassium: 100,
		PH: 6.5, Temperature: 25, Rainfall: 80, Humidity: 50, SoilType: "Loam",
	}
	assert.Equal(t, 100, HealthScore(healthy))
	assert.Contains(t, Recommend(healthy).SoilHealth, "Excellent")

	good := healthy
	good.Nitrogen = 30 // -20
	assert.Equal(t, 80, HealthScore(good))
	assert.Contains(t, Recommend(good).SoilHealth, "Excellent")

	fair := good
	fair.Phosphorus = 10 // -20
	assert.Equal(t, 60, HealthScore(fair))
	assert.Contains(t, Recommend(fair).SoilHealth, "Good")

	poor := fair
	poor.Potassium = 10 // -15
	poor.PH = 8.0       // -15
	assert.Equal(t, 30, HealthScore(poor))
	assert.Contains(t, Recommend(poor).SoilHealth, "Poor")
}

func TestHealthScoreFlooredAtZero(t *testing.T) {
	reading := models.SoilReading{
		Nitrogen: 0, Phosphorus: 0, Potassium: 0,
		PH: 3.0, Temperature: 50, Rainfall: 0, Humidity: 0, SoilType: "Silt",
	}
	// 所有扣分项总和是80，不会为负；扣分上限不超过下限0
	assert.Equal(t, 20, HealthScore(reading))
}

func TestRecommendNitrogenRules(t *testing.T) {
	low := models.SoilReading{
		Nitrogen: 30, Phosphorus: 50, Potassium: 100,
		PH: 6.5, Temperature: 22, Rainfall: 80, Humidity: 50, SoilType: "Silt",
	}
	rec := Recommend(low)
	assert.Contains(t, rec.Suggestions, "Low nitrogen levels detected. Consider adding organic fertilizers or legume cover crops.")
	assert.Contains(t, rec.RiskFactors, "Nitrogen deficiency may limit crop growth")

	// 高氮只加提醒，不加风险项
	high := low
	high.Nitrogen = 250
	rec = Recommend(high)
	assert.Contains(t, rec.Suggestions, "High nitrogen levels. Avoid excessive fertilizer application.")
	assert.Empty(t, rec.RiskFactors)
}

func TestRecommendPHRules(t *testing.T) {
	base := models.SoilReading{
		Nitrogen: 100, Phosphorus: 50, Potassium: 100,
		Temperature: 22, Rainfall: 80, Humidity: 50, SoilType: "Silt",
	}

	acidic := base
	acidic.PH = 5.0
	rec := Recommend(acidic)
	assert.Contains(t, rec.Suggestions, "Soil is acidic. Consider liming to raise pH levels.")
	assert.Contains(t, rec.BestCrops, "Blueberries")

	alkaline := base
	alkaline.PH = 8.0
	rec = Recommend(alkaline)
	assert.Contains(t, rec.Suggestions, "Soil is alkaline. Consider sulfur applications to lower pH.")
	assert.Contains(t, rec.BestCrops, "Asparagus")
	assert.Contains(t, rec.BestCrops, "Beans")

	neutral := base
	neutral.PH = 7.0
	rec = Recommend(neutral)
	assert.Contains(t, rec.BestCrops, "Most crops will grow well in neutral pH soil")
}

func TestRecommendTemperatureRainfallGap(t *testing.T) {
	// 温度和降雨都不满足两个区间时不加任何温度相关作物
	reading := models.SoilReading{
		Nitrogen: 100, Phosphorus: 50, Potassium: 100,
		PH: 6.5, Temperature: 22, Rainfall: 80, Humidity: 50, SoilType: "Silt",
	}
	rec := Recommend(reading)
	assert.NotContains(t, rec.BestCrops, "Rice")
	assert.NotContains(t, rec.BestCrops, "Wheat")

	cool := reading
	cool.Temperature = 15
	cool.Rainfall = 30
	rec = Recommend(cool)
	assert.Contains(t, rec.BestCrops, "Wheat")
	assert.Contains(t, rec.BestCrops, "Barley")
	assert.Contains(t, rec.BestCrops, "Oats")
	assert.Contains(t, rec.BestCrops, "Peas")
}

func TestRecommendSoilTypes(t *testing.T) {
	base := models.SoilReading{
		Nitrogen: 100, Phosphorus: 50, Potassium: 100,
		PH: 6.5, Temperature: 22, Rainfall: 80, Humidity: 50,
	}

	tests := []struct {
		soilType   string
		wantCrop   string
		suggestion bool
	}{
		{"Clay", "Cabbage", true},
		{"clay", "Cabbage", true}, // 大小写不敏感
		{"Loam", "Most crops grow well in loam soil", true},
		{"Sandy", "Root vegetables", true},
		{"Black Soil", "Soybeans", true},
		{"Red Soil", "Groundnuts", true},
	}
	for _, tt := range tests {
		t.Run(tt.soilType, func(t *testing.T) {
			reading := base
			reading.SoilType = tt.soilType
			rec := Recommend(reading)
			assert.Contains(t, rec.BestCrops, tt.wantCrop)
		})
	}

	// silt/laterite/mountain 没有对应条目
	for _, soilType := range []string{"Silt", "Laterite", "Mountain"} {
		t.Run(soilType, func(t *testing.T) {
			reading := base
			reading.SoilType = soilType
			rec := Recommend(reading)
			// 只有pH中性提示一条
			assert.Equal(t, []string{"Most crops will grow well in neutral pH soil"}, rec.BestCrops)
			assert.Empty(t, rec.Suggestions)
		})
	}
}

func TestRecommendModerateAndAvoidAlwaysEmpty(t *testing.T) {
	rec := Recommend(models.SoilReading{
		Nitrogen: 100, Phosphorus: 50, Potassium: 100,
		PH: 6.5, Temperature: 22, Rainfall: 80, Humidity: 50, SoilType: "Clay",
	})
	assert.Empty(t, rec.ModerateCrops)
	assert.Empty(t, rec.AvoidCrops)
	assert.NotNil(t, rec.ModerateCrops)
	assert.NotNil(t, rec.AvoidCrops)
}

func TestRecommendIsDeterministic(t *testing.T) {
	reading := models.SoilReading{
		Nitrogen: 30, Phosphorus: 20, Potassium: 40,
		PH: 5.5, Temperature: 30, Rainfall: 150, Humidity: 60, SoilType: "Clay",
	}
	first := Recommend(reading)
	second := Recommend(reading)
	assert.Equal(t, first, second)
}
