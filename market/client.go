// Package market 对接外部价格预测和天气快照服务，并组装行情展示视图
package market

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"farmfresh/models"
)

// PredictRequest 价格预测请求参数
type PredictRequest struct {
	Crop      string  `json:"crop"`
	City      string  `json:"city"`
	BuyerQty  float64 `json:"buyer_qty"`
	SellerQty float64 `json:"seller_qty"`
}

// Client 行情服务客户端接口，测试注入假实现
type Client interface {
	PredictPrice(ctx context.Context, req PredictRequest) (*models.PricePrediction, error)
	WeatherSnapshot(ctx context.Context) (*models.WeatherSnapshot, error)
}

// HTTPClient 行情服务HTTP客户端
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient 创建行情服务客户端
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// PredictPrice 请求单作物价格预测
func (c *HTTPClient) PredictPrice(ctx context.Context, req PredictRequest) (*models.PricePrediction, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict_price", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &models.NetworkError{Service: "price", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &models.NetworkError{Service: "price", Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var prediction models.PricePrediction
	if err := decodeJSON(resp.Body, &prediction); err != nil {
		return nil, &models.ParseError{Service: "price", Err: err}
	}
	return &prediction, nil
}

// WeatherSnapshot 请求全城市天气快照
func (c *HTTPClient) WeatherSnapshot(ctx context.Context) (*models.WeatherSnapshot, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/weather_snapshot", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &models.NetworkError{Service: "weather", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &models.NetworkError{Service: "weather", Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var snapshot models.WeatherSnapshot
	if err := decodeJSON(resp.Body, &snapshot); err != nil {
		return nil, &models.ParseError{Service: "weather", Err: err}
	}
	return &snapshot, nil
}

func decodeJSON(r io.Reader, v interface{}) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
