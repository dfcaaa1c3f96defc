// Package advisor 根据土壤检测数据生成种植建议
package advisor

import (
	"strings"

	"farmfresh/models"
)

// Recommend 根据土壤数据生成推荐，纯函数无副作用
// 调用方需保证输入字段齐全，这里不做必填校验
func Recommend(reading models.SoilReading) models.Recommendation {
	rec := models.Recommendation{
		BestCrops:     []string{},
		ModerateCrops: []string{},
		AvoidCrops:    []string{},
		Suggestions:   []string{},
		RiskFactors:   []string{},
	}

	// 氮分析
	if reading.Nitrogen < 50 {
		rec.Suggestions = append(rec.Suggestions, "Low nitrogen levels detected. Consider adding organic fertilizers or legume cover crops.")
		rec.RiskFactors = append(rec.RiskFactors, "Nitrogen deficiency may limit crop growth")
	} else if reading.Nitrogen > 200 {
		rec.Suggestions = append(rec.Suggestions, "High nitrogen levels. Avoid excessive fertilizer application.")
	}

	// 磷分析
	if reading.Phosphorus < 30 {
		rec.Suggestions = append(rec.Suggestions, "Low phosphorus levels. Consider bone meal or rock phosphate applications.")
		rec.RiskFactors = append(rec.RiskFactors, "Phosphorus deficiency affects root development")
	}

	// pH分析
	if reading.PH < 6.0 {
		rec.Suggestions = append(rec.Suggestions, "Soil is acidic. Consider liming to raise pH levels.")
		rec.BestCrops = append(rec.BestCrops, "Potatoes", "Blueberries", "Raspberries")
	} else if reading.PH > 7.5 {
		rec.Suggestions = append(rec.Suggestions, "Soil is alkaline. Consider sulfur applications to lower pH.")
		rec.BestCrops = append(rec.BestCrops, "Asparagus", "Beans", "Broccoli")
	} else {
		rec.BestCrops = append(rec.BestCrops, "Most crops will grow well in neutral pH soil")
	}

	// 温度和降雨分析，两个条件各自独立判断，都不满足时不加作物
	if reading.Temperature > 25 && reading.Rainfall > 100 {
		rec.BestCrops = append(rec.BestCrops, "Rice", "Corn", "Sugarcane", "Cotton")
	}
	if reading.Temperature < 20 && reading.Rainfall < 50 {
		rec.BestCrops = append(rec.BestCrops, "Wheat", "Barley", "Oats", "Peas")
	}

	// 土壤类型，silt/laterite/mountain 没有对应条目
	switch strings.ToLower(reading.SoilType) {
	case "clay":
		rec.BestCrops = append(rec.BestCrops, "Rice", "Wheat", "Cabbage", "Broccoli")
		rec.Suggestions = append(rec.Suggestions, "Clay soil retains water well but may need organic matter for better drainage.")
	case "loam":
		rec.BestCrops = append(rec.BestCrops, "Most crops grow well in loam soil")
		rec.Suggestions = append(rec.Suggestions, "Loam soil is ideal for farming. Maintain organic matter content.")
	case "sandy":
		rec.BestCrops = append(rec.BestCrops, "Root vegetables", "Carrots", "Potatoes", "Onions")
		rec.Suggestions = append(rec.Suggestions, "Sandy soil drains quickly. Add organic matter to improve water retention.")
	case "black soil":
		rec.BestCrops = append(rec.BestCrops, "Cotton", "Sugarcane", "Wheat", "Soybeans")
		rec.Suggestions = append(rec.Suggestions, "Black soil is rich in minerals. Monitor for proper drainage.")
	case "red soil":
		rec.BestCrops = append(rec.BestCrops, "Groundnuts", "Millets", "Pulses")
		rec.Suggestions = append(rec.Suggestions, "Red soil may need pH adjustment and organic matter addition.")
	}

	// 综合健康评估
	score := HealthScore(reading)
	switch {
	case score >= 80:
		rec.SoilHealth = "Excellent - Your soil is in great condition for farming"
	case score >= 60:
		rec.SoilHealth = "Good - Minor improvements can enhance crop yields"
	case score >= 40:
		rec.SoilHealth = "Fair - Several improvements needed for optimal farming"
	default:
		rec.SoilHealth = "Poor - Significant soil improvement required before farming"
	}

	return rec
}

// HealthScore 计算土壤健康分，满分100按固定扣分项递减，下限0
func HealthScore(reading models.SoilReading) int {
	score := 100
	if reading.Nitrogen < 50 {
		score -= 20
	}
	if reading.Phosphorus < 30 {
		score -= 20
	}
	if reading.Potassium < 50 {
		score -= 15
	}
	if reading.PH < 6.0 || reading.PH > 7.5 {
		score -= 15
	}
	if reading.Temperature < 15 || reading.Temperature > 35 {
		score -= 10
	}
	if score < 0 {
		score = 0
	}
	return score
}
