package controllers

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"farmfresh/models"
	"farmfresh/store"
	"farmfresh/utils"
)

// OrderController 处理结算和订单相关的请求
type OrderController struct {
	DB *sql.DB
	KV store.KV
}

// NewOrderController 创建一个新的OrderController实例
func NewOrderController(db *sql.DB, kv store.KV) *OrderController {
	return &OrderController{DB: db, KV: kv}
}

// orderKey 每个用户独立的当前订单键
func orderKey(userID int) string {
	return fmt.Sprintf("currentOrder:%d", userID)
}

// Checkout 结算下单
func (c *OrderController) Checkout(ctx *gin.Context) {
	userID := ctx.GetInt("userID")

	var info models.CustomerInfo
	if err := ctx.ShouldBindJSON(&info); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	cart := store.NewCartStore(c.KV, cartKey(userID))
	orders := store.NewOrderStore(c.KV, orderKey(userID), cart)

	order, err := orders.PlaceOrder(info)
	if err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			utils.BadRequest(ctx, vErr.Message)
		} else {
			utils.InternalServerError(ctx, "下单失败")
		}
		return
	}

	// 订单历史落库
	if err := c.saveOrderHistory(userID, order); err != nil {
		utils.InternalServerError(ctx, "保存订单失败")
		return
	}

	ctx.JSON(201, gin.H{
		"code": 201,
		"msg":  "ok",
		"data": order,
	})
}

// saveOrderHistory 把订单和明细写入数据库
func (c *OrderController) saveOrderHistory(userID int, order *models.Order) error {
	tx, err := c.DB.Begin()
	if err != nil {
		return err
	}

	result, err := tx.Exec(`
		INSERT INTO orders (order_id, user_id, customer_name, customer_email, customer_phone,
			customer_address, customer_city, customer_pincode, total, order_date)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		order.OrderID, userID, order.CustomerInfo.Name, order.CustomerInfo.Email,
		order.CustomerInfo.Phone, order.CustomerInfo.Address, order.CustomerInfo.City,
		order.CustomerInfo.Pincode, order.Total, order.OrderDate,
	)
	if err != nil {
		tx.Rollback()
		return err
	}

	orderRowID, err := result.LastInsertId()
	if err != nil {
		tx.Rollback()
		return err
	}

	// 插入订单明细
	for _, item := range order.Cart {
		_, err := tx.Exec(`
			INSERT INTO order_items (order_id, product_id, product_name, unit, farmer, price, quantity)
			VALUES (?,?,?,?,?,?,?)`,
			orderRowID, item.ID, item.Name, item.Unit, item.Farmer, item.Price, item.Quantity,
		)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// CurrentOrder 获取当前订单（最近一次结算的回执）
func (c *OrderController) CurrentOrder(ctx *gin.Context) {
	userID := ctx.GetInt("userID")

	orders := store.NewOrderStore(c.KV, orderKey(userID), nil)
	order, ok, err := orders.CurrentOrder()
	if err != nil {
		utils.InternalServerError(ctx, "读取订单失败")
		return
	}
	if !ok {
		utils.NotFound(ctx, "订单不存在")
		return
	}
	utils.Success(ctx, order)
}

// GetOrders 获取订单历史列表
func (c *OrderController) GetOrders(ctx *gin.Context) {
	userID := ctx.GetInt("userID")

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	rows, err := c.DB.Query(`
		SELECT id, order_id, customer_name, customer_email, customer_phone,
		       customer_address, customer_city, customer_pincode, total, order_date
		FROM orders WHERE user_id = ?
		ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		userID, pageSize, (page-1)*pageSize,
	)
	if err != nil {
		utils.InternalServerError(ctx, "查询订单失败")
		return
	}
	defer rows.Close()

	type orderRow struct {
		rowID int
		order models.Order
	}

	orderRows := []orderRow{}
	for rows.Next() {
		var r orderRow
		err := rows.Scan(
			&r.rowID, &r.order.OrderID,
			&r.order.CustomerInfo.Name, &r.order.CustomerInfo.Email,
			&r.order.CustomerInfo.Phone, &r.order.CustomerInfo.Address,
			&r.order.CustomerInfo.City, &r.order.CustomerInfo.Pincode,
			&r.order.Total, &r.order.OrderDate,
		)
		if err != nil {
			utils.InternalServerError(ctx, err.Error())
			return
		}
		orderRows = append(orderRows, r)
	}

	// 逐单加载明细
	orderList := make([]models.Order, 0, len(orderRows))
	for _, r := range orderRows {
		itemRows, err := c.DB.Query(`
			SELECT product_id, product_name, unit, farmer, price, quantity
			FROM order_items WHERE order_id = ?`, r.rowID,
		)
		if err != nil {
			utils.InternalServerError(ctx, "查询订单明细失败")
			return
		}
		cart := models.Cart{}
		for itemRows.Next() {
			var item models.CartItem
			if err := itemRows.Scan(&item.ID, &item.Name, &item.Unit, &item.Farmer, &item.Price, &item.Quantity); err != nil {
				itemRows.Close()
				utils.InternalServerError(ctx, err.Error())
				return
			}
			cart = append(cart, item)
		}
		itemRows.Close()
		r.order.Cart = cart
		orderList = append(orderList, r.order)
	}

	var totalCount int
	if err := c.DB.QueryRow("SELECT COUNT(*) FROM orders WHERE user_id = ?", userID).Scan(&totalCount); err != nil {
		utils.InternalServerError(ctx, "获取总记录数失败")
		return
	}

	utils.SuccessWithPagination(ctx, orderList, totalCount, page, pageSize)
}
