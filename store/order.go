package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"farmfresh/models"
)

// OrderStore 订单聚合器，把结算时刻的购物车快照和收货信息
// 组装为不可变订单并持久化为当前订单
type OrderStore struct {
	kv   KV
	key  string
	cart *CartStore
}

// NewOrderStore 创建订单存储
func NewOrderStore(kv KV, key string, cart *CartStore) *OrderStore {
	return &OrderStore{kv: kv, key: key, cart: cart}
}

// PlaceOrder 下单：校验购物车非空和收货信息完整，生成订单并清空购物车
// 先持久化订单再清空购物车，保证读取方不会看到购物车已清而订单未落的状态
func (o *OrderStore) PlaceOrder(info models.CustomerInfo) (*models.Order, error) {
	cart, err := o.cart.Items()
	if err != nil {
		return nil, err
	}
	if len(cart) == 0 {
		return nil, models.NewValidationError("cart", "Your cart is empty")
	}
	if err := validateCustomerInfo(info); err != nil {
		return nil, err
	}

	now := time.Now()
	order := &models.Order{
		OrderID:      fmt.Sprintf("ORD-%d", now.UnixMilli()),
		Cart:         cart,
		CustomerInfo: info,
		Total:        cart.Total(),
		OrderDate:    now.UTC().Format(time.RFC3339),
	}

	data, err := json.Marshal(order)
	if err != nil {
		return nil, err
	}
	if err := o.kv.Write(o.key, string(data)); err != nil {
		return nil, err
	}
	if err := o.cart.Clear(); err != nil {
		return nil, err
	}
	return order, nil
}

// CurrentOrder 读取当前订单，没有时第二个返回值为false
func (o *OrderStore) CurrentOrder() (*models.Order, bool, error) {
	raw, ok, err := o.kv.Read(o.key)
	if err != nil || !ok {
		return nil, false, err
	}
	var order models.Order
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		return nil, false, fmt.Errorf("order data corrupted: %v", err)
	}
	return &order, true, nil
}

// validateCustomerInfo 校验收货信息全部必填
func validateCustomerInfo(info models.CustomerInfo) error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", info.Name},
		{"email", info.Email},
		{"phone", info.Phone},
		{"address", info.Address},
		{"city", info.City},
		{"pincode", info.Pincode},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return models.NewValidationError(f.name, f.name+" is required")
		}
	}
	return nil
}
