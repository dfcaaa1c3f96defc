package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 应用配置，支持yaml文件覆盖默认值
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Database struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Hostname string `yaml:"hostname"`
		DBName   string `yaml:"dbname"`
	} `yaml:"database"`
	JWTSecret string `yaml:"jwtSecret"`
	Market    struct {
		BaseURL         string `yaml:"baseURL"`
		PollIntervalSec int    `yaml:"pollIntervalSec"`
		TimeoutSec      int    `yaml:"timeoutSec"`
	} `yaml:"market"`
	Classifier struct {
		BaseURL    string `yaml:"baseURL"`
		TimeoutSec int    `yaml:"timeoutSec"`
	} `yaml:"classifier"`
	UploadDir string `yaml:"uploadDir"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Server.Addr = ":8080"
	cfg.Database.Username = "root"
	cfg.Database.Password = "root"
	cfg.Database.Hostname = "127.0.0.1:3306"
	cfg.Database.DBName = "farmfresh"
	cfg.JWTSecret = "farmfresh_secret_key"
	cfg.Market.BaseURL = "http://localhost:5000"
	cfg.Market.PollIntervalSec = 300
	cfg.Market.TimeoutSec = 10
	cfg.Classifier.BaseURL = "http://localhost:5001"
	cfg.Classifier.TimeoutSec = 30
	cfg.UploadDir = "uploads"
	return cfg
}

// Load 加载配置文件，文件不存在时使用默认值
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// PollInterval 行情轮询间隔
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Market.PollIntervalSec) * time.Second
}

// MarketTimeout 行情服务请求超时
func (c *Config) MarketTimeout() time.Duration {
	return time.Duration(c.Market.TimeoutSec) * time.Second
}

// ClassifierTimeout 图像分类服务请求超时
func (c *Config) ClassifierTimeout() time.Duration {
	return time.Duration(c.Classifier.TimeoutSec) * time.Second
}
