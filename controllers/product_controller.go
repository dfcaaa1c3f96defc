package controllers

import (
	"database/sql"
	"strconv"

	"github.com/gin-gonic/gin"

	"farmfresh/models"
	"farmfresh/utils"
)

// ProductController 处理商品目录相关的请求
type ProductController struct {
	DB *sql.DB
}

// NewProductController 创建一个新的ProductController实例
func NewProductController(db *sql.DB) *ProductController {
	return &ProductController{DB: db}
}

// GetProducts 获取商品列表，支持分类/地区/搜索筛选和排序
func (c *ProductController) GetProducts(ctx *gin.Context) {
	// 获取查询参数
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "20"))
	category := ctx.Query("category")
	region := ctx.Query("region")
	search := ctx.Query("search")
	sortBy := ctx.DefaultQuery("sortBy", "name")

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	// 构建基础查询
	query := `
		SELECT id, name, crop, category, price, unit, farmer, rating, image, image_file,
		       description, stock, location, harvest_date, is_fresh
		FROM products WHERE 1=1
	`
	queryParams := []interface{}{}

	// 添加筛选条件
	if category != "" && category != "all" {
		query += " AND category = ?"
		queryParams = append(queryParams, category)
	}

	if region != "" {
		query += " AND location LIKE ?"
		queryParams = append(queryParams, "%"+region+"%")
	}

	if search != "" {
		query += " AND (name LIKE ? OR farmer LIKE ? OR category LIKE ?)"
		queryParams = append(queryParams, "%"+search+"%", "%"+search+"%", search+"%")
	}

	// 排序字段白名单
	switch sortBy {
	case "price-low":
		query += " ORDER BY price ASC"
	case "price-high":
		query += " ORDER BY price DESC"
	case "rating":
		query += " ORDER BY rating DESC"
	default:
		query += " ORDER BY name ASC"
	}

	query += " LIMIT ? OFFSET ?"
	queryParams = append(queryParams, pageSize, (page-1)*pageSize)

	// 执行查询
	rows, err := c.DB.Query(query, queryParams...)
	if err != nil {
		utils.InternalServerError(ctx, "查询商品失败")
		return
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		err := rows.Scan(
			&p.ID, &p.Name, &p.Crop, &p.Category, &p.Price, &p.Unit, &p.Farmer,
			&p.Rating, &p.Image, &p.ImageFile, &p.Description, &p.Stock,
			&p.Location, &p.HarvestDate, &p.IsFresh,
		)
		if err != nil {
			utils.InternalServerError(ctx, err.Error())
			return
		}
		products = append(products, p)
	}

	// 获取总记录数
	countQuery := "SELECT COUNT(*) FROM products WHERE 1=1"
	countParams := []interface{}{}

	if category != "" && category != "all" {
		countQuery += " AND category = ?"
		countParams = append(countParams, category)
	}

	if region != "" {
		countQuery += " AND location LIKE ?"
		countParams = append(countParams, "%"+region+"%")
	}

	if search != "" {
		countQuery += " AND (name LIKE ? OR farmer LIKE ? OR category LIKE ?)"
		countParams = append(countParams, "%"+search+"%", "%"+search+"%", search+"%")
	}

	var totalCount int
	if err := c.DB.QueryRow(countQuery, countParams...).Scan(&totalCount); err != nil {
		utils.InternalServerError(ctx, "获取总记录数失败")
		return
	}

	utils.SuccessWithPagination(ctx, products, totalCount, page, pageSize)
}

// GetProduct 获取单个商品
func (c *ProductController) GetProduct(ctx *gin.Context) {
	id := ctx.Param("id")

	var p models.Product
	err := c.DB.QueryRow(`
		SELECT id, name, crop, category, price, unit, farmer, rating, image, image_file,
		       description, stock, location, harvest_date, is_fresh
		FROM products WHERE id = ?`, id,
	).Scan(
		&p.ID, &p.Name, &p.Crop, &p.Category, &p.Price, &p.Unit, &p.Farmer,
		&p.Rating, &p.Image, &p.ImageFile, &p.Description, &p.Stock,
		&p.Location, &p.HarvestDate, &p.IsFresh,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			utils.NotFound(ctx, "商品不存在")
		} else {
			utils.InternalServerError(ctx, err.Error())
		}
		return
	}

	utils.Success(ctx, p)
}

// loadProduct 按ID加载商品，供购物车校验库存使用
func loadProduct(db *sql.DB, productID int) (models.Product, error) {
	var p models.Product
	err := db.QueryRow(`
		SELECT id, name, crop, category, price, unit, farmer, rating, image, image_file,
		       description, stock, location, harvest_date, is_fresh
		FROM products WHERE id = ?`, productID,
	).Scan(
		&p.ID, &p.Name, &p.Crop, &p.Category, &p.Price, &p.Unit, &p.Farmer,
		&p.Rating, &p.Image, &p.ImageFile, &p.Description, &p.Stock,
		&p.Location, &p.HarvestDate, &p.IsFresh,
	)
	return p, err
}
