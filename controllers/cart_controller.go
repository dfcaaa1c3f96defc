package controllers

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"farmfresh/models"
	"farmfresh/store"
	"farmfresh/utils"
)

// CartController 处理购物车相关的请求
type CartController struct {
	DB *sql.DB
	KV store.KV
}

// NewCartController 创建一个新的CartController实例
func NewCartController(db *sql.DB, kv store.KV) *CartController {
	return &CartController{DB: db, KV: kv}
}

// cartKey 每个用户独立的购物车键
func cartKey(userID int) string {
	return fmt.Sprintf("cart:%d", userID)
}

// cartStore 构建当前用户的购物车存储
func (c *CartController) cartStore(ctx *gin.Context) *store.CartStore {
	userID := ctx.GetInt("userID")
	return store.NewCartStore(c.KV, cartKey(userID))
}

// AddToCartRequest 加购请求
type AddToCartRequest struct {
	ProductID int `json:"productId" binding:"required"`
	Quantity  int `json:"quantity"`
}

// SetQuantityRequest 修改数量请求
type SetQuantityRequest struct {
	ProductID int `json:"productId" binding:"required"`
	Quantity  int `json:"quantity"`
}

// GetCart 获取购物车内容和总价
func (c *CartController) GetCart(ctx *gin.Context) {
	cart := c.cartStore(ctx)
	items, err := cart.Items()
	if err != nil {
		utils.InternalServerError(ctx, "读取购物车失败")
		return
	}
	utils.Success(ctx, gin.H{
		"items": items,
		"total": items.Total(),
	})
}

// AddToCart 添加商品到购物车，按商品当前库存校验数量
func (c *CartController) AddToCart(ctx *gin.Context) {
	var req AddToCartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	product, err := loadProduct(c.DB, req.ProductID)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.NotFound(ctx, "商品不存在")
		} else {
			utils.InternalServerError(ctx, err.Error())
		}
		return
	}

	cart := c.cartStore(ctx)
	if err := cart.Add(product, req.Quantity); err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			utils.BadRequest(ctx, vErr.Message)
		} else {
			utils.InternalServerError(ctx, "保存购物车失败")
		}
		return
	}

	items, err := cart.Items()
	if err != nil {
		utils.InternalServerError(ctx, "读取购物车失败")
		return
	}
	utils.Success(ctx, gin.H{
		"items": items,
		"total": items.Total(),
	})
}

// SetQuantity 修改购物车中商品数量，数量<=0时移除
func (c *CartController) SetQuantity(ctx *gin.Context) {
	var req SetQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	cart := c.cartStore(ctx)
	if err := cart.SetQuantity(req.ProductID, req.Quantity); err != nil {
		utils.InternalServerError(ctx, "保存购物车失败")
		return
	}

	items, err := cart.Items()
	if err != nil {
		utils.InternalServerError(ctx, "读取购物车失败")
		return
	}
	utils.Success(ctx, gin.H{
		"items": items,
		"total": items.Total(),
	})
}

// RemoveFromCart 从购物车移除商品
func (c *CartController) RemoveFromCart(ctx *gin.Context) {
	var req struct {
		ProductID int `json:"productId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	cart := c.cartStore(ctx)
	if err := cart.Remove(req.ProductID); err != nil {
		utils.InternalServerError(ctx, "保存购物车失败")
		return
	}

	items, err := cart.Items()
	if err != nil {
		utils.InternalServerError(ctx, "读取购物车失败")
		return
	}
	utils.Success(ctx, gin.H{
		"items": items,
		"total": items.Total(),
	})
}

// ClearCart 清空购物车
func (c *CartController) ClearCart(ctx *gin.Context) {
	cart := c.cartStore(ctx)
	if err := cart.Clear(); err != nil {
		utils.InternalServerError(ctx, "清空购物车失败")
		return
	}
	utils.Success(ctx, gin.H{
		"items": models.Cart{},
		"total": 0,
	})
}
