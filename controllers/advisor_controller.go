package controllers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"farmfresh/advisor"
	"farmfresh/models"
	"farmfresh/utils"
)

// AdvisorController 处理土壤分析推荐相关的请求
type AdvisorController struct{}

// NewAdvisorController 创建一个新的AdvisorController实例
func NewAdvisorController() *AdvisorController {
	return &AdvisorController{}
}

// AnalyzeRequest 土壤分析请求，字段全部必填
// 数值用指针区分缺失和零值
type AnalyzeRequest struct {
	Nitrogen    *float64 `json:"nitrogen"`
	Phosphorus  *float64 `json:"phosphorus"`
	Potassium   *float64 `json:"potassium"`
	PH          *float64 `json:"ph"`
	Temperature *float64 `json:"temperature"`
	Rainfall    *float64 `json:"rainfall"`
	Humidity    *float64 `json:"humidity"`
	SoilType    string   `json:"soilType"`
}

// missingFields 返回缺失的必填字段名
func (r *AnalyzeRequest) missingFields() []string {
	missing := []string{}
	if r.Nitrogen == nil {
		missing = append(missing, "nitrogen")
	}
	if r.Phosphorus == nil {
		missing = append(missing, "phosphorus")
	}
	if r.Potassium == nil {
		missing = append(missing, "potassium")
	}
	if r.PH == nil {
		missing = append(missing, "ph")
	}
	if r.Temperature == nil {
		missing = append(missing, "temperature")
	}
	if r.Rainfall == nil {
		missing = append(missing, "rainfall")
	}
	if r.Humidity == nil {
		missing = append(missing, "humidity")
	}
	if r.SoilType == "" {
		missing = append(missing, "soilType")
	}
	return missing
}

// AnalyzeSoil 土壤分析，返回种植推荐和健康分
func (c *AdvisorController) AnalyzeSoil(ctx *gin.Context) {
	var req AnalyzeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	if missing := req.missingFields(); len(missing) > 0 {
		utils.BadRequest(ctx, fmt.Sprintf("Please fill in all required fields: %s", strings.Join(missing, ", ")))
		return
	}

	reading := models.SoilReading{
		Nitrogen:    *req.Nitrogen,
		Phosphorus:  *req.Phosphorus,
		Potassium:   *req.Potassium,
		PH:          *req.PH,
		Temperature: *req.Temperature,
		Rainfall:    *req.Rainfall,
		Humidity:    *req.Humidity,
		SoilType:    req.SoilType,
	}

	utils.Success(ctx, gin.H{
		"recommendations": advisor.Recommend(reading),
		"healthScore":     advisor.HealthScore(reading),
	})
}
