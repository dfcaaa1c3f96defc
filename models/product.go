package models

import "math"

// Product 商品目录条目，目录加载时创建，客户端不会修改
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Crop        string  `json:"crop"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit"`
	Farmer      string  `json:"farmer"`
	Rating      float64 `json:"rating"`
	Image       string  `json:"image"`
	ImageFile   string  `json:"imageFile"`
	Description string  `json:"description"`
	Stock       int     `json:"stock"`
	Location    string  `json:"location"`
	HarvestDate string  `json:"harvestDate"`
	IsFresh     bool    `json:"isFresh"`
}

// CartItem 购物车条目，商品字段加可变数量，按商品ID去重
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Cart 购物车，按商品ID唯一的有序条目序列
type Cart []CartItem

// Total 计算购物车总价，保留两位小数
func (c Cart) Total() float64 {
	var total float64
	for _, item := range c {
		total += item.Price * float64(item.Quantity)
	}
	return Round2(total)
}

// Find 按商品ID查找条目下标，未找到返回-1
func (c Cart) Find(productID int) int {
	for i, item := range c {
		if item.ID == productID {
			return i
		}
	}
	return -1
}

// Round2 金额四舍五入到两位小数
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
