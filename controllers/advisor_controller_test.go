package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmfresh/utils"
)

func advisorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/soil/analyze", NewAdvisorController().AnalyzeSoil)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyzeSoilSuccess(t *testing.T) {
	r := advisorRouter()
	w := postJSON(t, r, "/soil/analyze", gin.H{
		"nitrogen": 30, "phosphorus": 20, "potassium": 40,
		"ph": 5.5, "temperature": 30, "rainfall": 150, "humidity": 60,
		"soilType": "Clay",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Code int    `json:"code"`
		Data struct {
			HealthScore     int `json:"healthScore"`
			Recommendations struct {
				BestCrops  []string `json:"bestCrops"`
				SoilHealth string   `json:"soilHealth"`
			} `json:"recommendations"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 30, resp.Data.HealthScore)
	assert.Contains(t, resp.Data.Recommendations.SoilHealth, "Poor")
	assert.Contains(t, resp.Data.Recommendations.BestCrops, "Rice")
}

func TestAnalyzeSoilMissingFields(t *testing.T) {
	r := advisorRouter()

	// 缺nitrogen和soilType
	w := postJSON(t, r, "/soil/analyze", gin.H{
		"phosphorus": 20, "potassium": 40,
		"ph": 5.5, "temperature": 30, "rainfall": 150, "humidity": 60,
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "Please fill in all required fields")
	assert.Contains(t, resp.Message, "nitrogen")
	assert.Contains(t, resp.Message, "soilType")
}

func TestAnalyzeSoilZeroIsNotMissing(t *testing.T) {
	r := advisorRouter()

	// 数值字段显式传0属于有效输入
	w := postJSON(t, r, "/soil/analyze", gin.H{
		"nitrogen": 0, "phosphorus": 0, "potassium": 0,
		"ph": 0, "temperature": 0, "rainfall": 0, "humidity": 0,
		"soilType": "Loam",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAnalyzeSoilMalformedBody(t *testing.T) {
	r := advisorRouter()
	req := httptest.NewRequest(http.MethodPost, "/soil/analyze", bytes.NewReader([]byte(`{"nitrogen":`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
