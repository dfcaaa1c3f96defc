package market

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmfresh/models"
)

// gatedClient 可控的假行情客户端，每次快照请求都阻塞到测试放行
type gatedClient struct {
	mu    sync.Mutex
	calls []chan *models.WeatherSnapshot
	ready chan struct{}
}

func newGatedClient() *gatedClient {
	return &gatedClient{ready: make(chan struct{}, 8)}
}

func (g *gatedClient) PredictPrice(ctx context.Context, req PredictRequest) (*models.PricePrediction, error) {
	return nil, errors.New("not implemented")
}

func (g *gatedClient) WeatherSnapshot(ctx context.Context) (*models.WeatherSnapshot, error) {
	reply := make(chan *models.WeatherSnapshot)
	g.mu.Lock()
	g.calls = append(g.calls, reply)
	g.mu.Unlock()
	g.ready <- struct{}{}
	snapshot := <-reply
	if snapshot == nil {
		return nil, errors.New("service down")
	}
	return snapshot, nil
}

func (g *gatedClient) release(i int, snapshot *models.WeatherSnapshot) {
	g.mu.Lock()
	reply := g.calls[i]
	g.mu.Unlock()
	reply <- snapshot
}

func TestPollerRefreshStoresLatest(t *testing.T) {
	client := newGatedClient()
	p := NewPoller(client, time.Hour)

	done := make(chan struct{})
	go func() {
		p.Refresh(context.Background())
		close(done)
	}()
	<-client.ready
	client.release(0, &models.WeatherSnapshot{GeneratedAt: "first"})
	<-done

	latest, ok := p.Latest()
	require.True(t, ok)
	assert.Equal(t, "first", latest.GeneratedAt)
}

func TestPollerDiscardsStaleResponse(t *testing.T) {
	client := newGatedClient()
	p := NewPoller(client, time.Hour)

	var wg sync.WaitGroup
	wg.Add(2)

	// 第一次轮询发出后挂起
	go func() {
		defer wg.Done()
		p.Refresh(context.Background())
	}()
	<-client.ready

	// 第二次轮询在第一次完成前发出
	go func() {
		defer wg.Done()
		p.Refresh(context.Background())
	}()
	<-client.ready

	// 新请求先返回，旧请求后返回：旧响应必须被丢弃
	client.release(1, &models.WeatherSnapshot{GeneratedAt: "new"})
	client.release(0, &models.WeatherSnapshot{GeneratedAt: "old"})
	wg.Wait()

	latest, ok := p.Latest()
	require.True(t, ok)
	assert.Equal(t, "new", latest.GeneratedAt)
}

func TestPollerKeepsLatestOnError(t *testing.T) {
	client := newGatedClient()
	p := NewPoller(client, time.Hour)

	done := make(chan struct{})
	go func() {
		p.Refresh(context.Background())
		close(done)
	}()
	<-client.ready
	client.release(0, &models.WeatherSnapshot{GeneratedAt: "good"})
	<-done

	// 失败的拉取不覆盖已有快照
	done = make(chan struct{})
	go func() {
		p.Refresh(context.Background())
		close(done)
	}()
	<-client.ready
	client.release(1, nil)
	<-done

	latest, ok := p.Latest()
	require.True(t, ok)
	assert.Equal(t, "good", latest.GeneratedAt)
}

func TestPollerWeatherByCity(t *testing.T) {
	client := newGatedClient()
	p := NewPoller(client, time.Hour)

	// 还没有快照时返回空映射
	assert.Empty(t, p.WeatherByCity())

	weather := &models.WeatherReading{TemperatureC: f(27)}
	done := make(chan struct{})
	go func() {
		p.Refresh(context.Background())
		close(done)
	}()
	<-client.ready
	client.release(0, &models.WeatherSnapshot{
		Locations: []models.CityWeather{
			{City: "Coimbatore", Weather: weather},
			{City: "Salem", Weather: nil},
		},
	})
	<-done

	byCity := p.WeatherByCity()
	assert.Equal(t, weather, byCity["Coimbatore"])
	_, ok := byCity["Salem"]
	assert.True(t, ok)
}
