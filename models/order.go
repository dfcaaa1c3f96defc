package models

// CustomerInfo 收货信息，下单时全部必填
type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
}

// Order 订单记录，创建后不可变
// Cart 是下单时刻购物车的快照，Total 只在创建时计算一次
type Order struct {
	OrderID      string       `json:"orderId"`
	Cart         Cart         `json:"cart"`
	CustomerInfo CustomerInfo `json:"customerInfo"`
	Total        float64      `json:"total"`
	OrderDate    string       `json:"orderDate"`
}
