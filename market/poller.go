package market

import (
	"context"
	"log"
	"sync"
	"time"

	"farmfresh/models"
)

// Poller 周期性拉取天气快照
// 每次请求带递增的代数，只有最新代的响应才会被保存，
// 并发的轮询请求乱序完成时不会用旧数据覆盖新数据
type Poller struct {
	client   Client
	interval time.Duration

	mu     sync.Mutex
	gen    uint64
	latest *models.WeatherSnapshot
}

// NewPoller 创建天气快照轮询器
func NewPoller(client Client, interval time.Duration) *Poller {
	return &Poller{client: client, interval: interval}
}

// Start 启动后台轮询，ctx取消时停止
func (p *Poller) Start(ctx context.Context) {
	go func() {
		p.Refresh(ctx)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				// 不等上一次请求完成，过期响应由代数判断丢弃
				go p.Refresh(ctx)
			}
		}
	}()
}

// Refresh 立即发起一次快照拉取
func (p *Poller) Refresh(ctx context.Context) {
	p.mu.Lock()
	p.gen++
	gen := p.gen
	p.mu.Unlock()

	snapshot, err := p.client.WeatherSnapshot(ctx)
	if err != nil {
		log.Printf("weather snapshot refresh failed: %v", err)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen == p.gen {
		p.latest = snapshot
	}
}

// Latest 返回最近一次成功拉取的快照，尚未拉取到时第二个返回值为false
func (p *Poller) Latest() (*models.WeatherSnapshot, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.latest, p.latest != nil
}

// WeatherByCity 把最新快照整理为城市到天气的映射
func (p *Poller) WeatherByCity() map[string]*models.WeatherReading {
	byCity := make(map[string]*models.WeatherReading)
	snapshot, ok := p.Latest()
	if !ok {
		return byCity
	}
	for _, loc := range snapshot.Locations {
		if loc.City != "" {
			byCity[loc.City] = loc.Weather
		}
	}
	return byCity
}
