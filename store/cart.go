package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"farmfresh/models"
)

// CartStore 购物车存储，每次变更都同步整体序列化写回KV后才返回
// 因此完成的操作在重新加载后不会丢失
type CartStore struct {
	mu  sync.Mutex
	kv  KV
	key string
}

// NewCartStore 创建绑定到指定KV键的购物车存储
func NewCartStore(kv KV, key string) *CartStore {
	return &CartStore{kv: kv, key: key}
}

// Items 返回当前购物车条目快照
func (s *CartStore) Items() (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Add 添加商品到购物车，要求 1 <= quantity <= 库存
// 商品已存在时累加数量而不是新增条目
func (s *CartStore) Add(product models.Product, quantity int) error {
	if quantity < 1 || quantity > product.Stock {
		return models.NewValidationError("quantity",
			fmt.Sprintf("Please enter a valid quantity (1-%d)", product.Stock))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.load()
	if err != nil {
		return err
	}
	if i := cart.Find(product.ID); i >= 0 {
		cart[i].Quantity += quantity
	} else {
		cart = append(cart, models.CartItem{Product: product, Quantity: quantity})
	}
	return s.save(cart)
}

// SetQuantity 设置商品数量，数量<=0时等同于移除
// 商品不在购物车时不做任何操作
func (s *CartStore) SetQuantity(productID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.load()
	if err != nil {
		return err
	}
	i := cart.Find(productID)
	if i < 0 {
		return nil
	}
	if quantity <= 0 {
		cart = append(cart[:i], cart[i+1:]...)
	} else {
		cart[i].Quantity = quantity
	}
	return s.save(cart)
}

// Remove 移除商品，商品不存在时不做任何操作
func (s *CartStore) Remove(productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.load()
	if err != nil {
		return err
	}
	i := cart.Find(productID)
	if i < 0 {
		return nil
	}
	cart = append(cart[:i], cart[i+1:]...)
	return s.save(cart)
}

// Total 计算购物车总价，保留两位小数
func (s *CartStore) Total() (float64, error) {
	cart, err := s.Items()
	if err != nil {
		return 0, err
	}
	return cart.Total(), nil
}

// Clear 清空购物车，结算成功后调用
func (s *CartStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kv.Delete(s.key)
}

func (s *CartStore) load() (models.Cart, error) {
	raw, ok, err := s.kv.Read(s.key)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return models.Cart{}, nil
	}
	var cart models.Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return nil, fmt.Errorf("cart data corrupted: %v", err)
	}
	return cart, nil
}

func (s *CartStore) save(cart models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.kv.Write(s.key, string(data))
}
