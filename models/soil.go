package models

// SoilReading 土壤检测数据，只作输入不持久化
type SoilReading struct {
	Nitrogen    float64 `json:"nitrogen"`    // ppm
	Phosphorus  float64 `json:"phosphorus"`  // ppm
	Potassium   float64 `json:"potassium"`   // ppm
	PH          float64 `json:"ph"`
	Temperature float64 `json:"temperature"` // °C
	Rainfall    float64 `json:"rainfall"`    // mm/月
	Humidity    float64 `json:"humidity"`    // %
	SoilType    string  `json:"soilType"`
}

// SoilTypes 支持的土壤类型
var SoilTypes = []string{
	"Clay", "Loam", "Sandy", "Silt", "Black Soil", "Red Soil", "Laterite", "Mountain",
}

// Recommendation 土壤分析推荐结果，派生数据不持久化
type Recommendation struct {
	BestCrops     []string `json:"bestCrops"`
	ModerateCrops []string `json:"moderateCrops"`
	AvoidCrops    []string `json:"avoidCrops"`
	SoilHealth    string   `json:"soilHealth"`
	Suggestions   []string `json:"suggestions"`
	RiskFactors   []string `json:"riskFactors"`
}
