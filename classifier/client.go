// Package classifier 对接外部图像分类（新鲜度识别）服务
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"farmfresh/models"
)

// Result 分类结果
type Result struct {
	Prediction string  `json:"prediction"`
	Confidence float64 `json:"confidence"`
}

// Client 图像分类客户端接口，测试注入假实现
type Client interface {
	Predict(ctx context.Context, imagePath string) (*Result, error)
}

// HTTPClient 图像分类服务HTTP客户端
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient 创建图像分类客户端
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Predict 把本地图片文件转发给分类服务
func (c *HTTPClient) Predict(ctx context.Context, imagePath string) (*Result, error) {
	file, err := os.Open(imagePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", filepath.Base(imagePath))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &models.NetworkError{Service: "classifier", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &models.NetworkError{Service: "classifier", Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &models.ParseError{Service: "classifier", Err: err}
	}
	return &result, nil
}
