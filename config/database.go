package config

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "github.com/go-sql-driver/mysql"
)

var (
	DB   *sql.DB
	once sync.Once
)

// ConnectDB 连接数据库
func ConnectDB(cfg *Config) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&charset=utf8mb4",
		cfg.Database.Username, cfg.Database.Password, cfg.Database.Hostname, cfg.Database.DBName)
	return sql.Open("mysql", dsn)
}

// InitDB 初始化数据库连接
func InitDB(cfg *Config) {
	once.Do(func() {
		var err error
		DB, err = ConnectDB(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err = DB.Ping(); err != nil {
			log.Fatalf("Failed to ping database: %v", err)
		}

		// 自动迁移数据库
		if err = autoMigrate(DB); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}

		log.Println("Database connected and migrated successfully")
	})
}

// autoMigrate 自动迁移数据库
func autoMigrate(db *sql.DB) error {
	// 创建 migrations 表用于跟踪迁移状态
	if err := createMigrationsTable(db); err != nil {
		return fmt.Errorf("failed to create migrations table: %v", err)
	}

	// 运行所有迁移
	migrations := getMigrations()
	for _, migration := range migrations {
		if err := runMigrationIfNotExists(db, migration); err != nil {
			return fmt.Errorf("failed to run migration %s: %v", migration.Name, err)
		}
	}

	return nil
}

// Migration 迁移结构
type Migration struct {
	Name string
	SQL  string
}

// createMigrationsTable 创建迁移表
func createMigrationsTable(db *sql.DB) error {
	createSQL := `
	CREATE TABLE IF NOT EXISTS migrations (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		executed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)
	`
	_, err := db.Exec(createSQL)
	return err
}

// getMigrations 获取所有迁移
func getMigrations() []Migration {
	return []Migration{
		{
			Name: "001_create_users_table",
			SQL: `
			CREATE TABLE IF NOT EXISTS users (
				id INT AUTO_INCREMENT PRIMARY KEY,
				email VARCHAR(255) NOT NULL UNIQUE,
				password VARCHAR(255) NOT NULL,
				first_name VARCHAR(255),
				last_name VARCHAR(255),
				user_type VARCHAR(20) DEFAULT 'customer',
				phone VARCHAR(20),
				address TEXT,
				farm_name VARCHAR(255),
				farm_size VARCHAR(50),
				soil_type VARCHAR(50),
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				INDEX idx_email (email)
			)
			`,
		},
		{
			Name: "002_create_products_table",
			SQL: `
			CREATE TABLE IF NOT EXISTS products (
				id INT AUTO_INCREMENT PRIMARY KEY,
				name VARCHAR(255) NOT NULL,
				crop VARCHAR(100),
				category VARCHAR(100),
				price DECIMAL(10,2) NOT NULL,
				unit VARCHAR(20),
				farmer VARCHAR(255),
				rating DECIMAL(3,1) DEFAULT 0,
				image VARCHAR(16),
				image_file VARCHAR(255),
				description TEXT,
				stock INT NOT NULL DEFAULT 0,
				location VARCHAR(255),
				harvest_date VARCHAR(20),
				is_fresh BOOLEAN DEFAULT TRUE,
				INDEX idx_category (category),
				INDEX idx_crop (crop)
			)
			`,
		},
		{
			Name: "003_seed_products",
			SQL: `
			INSERT INTO products (id, name, crop, category, price, unit, farmer, rating, image, image_file, description, stock, location, harvest_date, is_fresh) VALUES
			(1, 'Apple Batch A', 'apple', 'Fruits', 150, 'kg', 'Demo Orchard', 4.8, '🍎', 'a_f002.png', 'Handpicked apples from our demo orchard', 20, 'Coimbatore, Tamil Nadu', '2024-01-15', TRUE),
			(2, 'Apple Batch B', 'apple', 'Fruits', 90, 'kg', 'Demo Orchard', 3.8, '🍎', 'a_r002.png', 'Another lot of apples from a different batch', 10, 'Pollachi, Tamil Nadu', '2024-01-10', TRUE),
			(3, 'Banana Bunch A', 'banana', 'Fruits', 60, 'dozen', 'Demo Grove', 4.7, '🍌', 'b_f002.png', 'Sweet yellow bananas from demo grove', 25, 'Tiruppur, Tamil Nadu', '2024-01-14', TRUE),
			(4, 'Banana Bunch B', 'banana', 'Fruits', 35, 'dozen', 'Demo Grove', 3.6, '🍌', 'b_r002.png', 'Another banana batch suitable for shakes and baking', 12, 'Erode, Tamil Nadu', '2024-01-08', TRUE),
			(5, 'Orange Lot A', 'orange', 'Fruits', 80, 'kg', 'Demo Orchard', 4.6, '🍊', 'orange.png', 'Oranges from the main orchard lot', 22, 'Salem, Tamil Nadu', '2024-01-13', TRUE),
			(6, 'Orange Lot B', 'orange', 'Fruits', 45, 'kg', 'Demo Orchard', 3.7, '🍊', 'o_r001.png', 'Alternate orange lot ideal for juicing', 8, 'Madurai, Tamil Nadu', '2024-01-07', TRUE),
			(7, 'Capsicum Crate', 'capsicum', 'Vegetables', 70, 'kg', 'Demo Farm', 4.7, '🫑', 'c_f003.png', 'Mixed colour capsicums from demo farm', 30, 'Karur, Tamil Nadu', '2024-01-12', TRUE),
			(8, 'Cucumber Lot', 'cucumber', 'Vegetables', 40, 'kg', 'Demo Farm', 4.6, '🥒', 'cucumberrrr.png', 'Field-fresh cucumbers harvested this week', 26, 'Dindigul, Tamil Nadu', '2024-01-11', TRUE),
			(9, 'Potato Sack', 'potato', 'Vegetables', 32, 'kg', 'Demo Farm', 4.5, '🥔', 'potato.jpeg', 'Table potatoes suitable for everyday cooking', 40, 'Nilgiris, Tamil Nadu', '2024-01-10', TRUE),
			(10, 'Mixed Veg Pack', 'mixed', 'Vegetables', 20, 'kg', 'Demo Farm', 3.2, '⚠️', 'rot.jpeg', 'Assorted vegetables from mixed lot', 15, 'Udumalpet, Tamil Nadu', '2024-01-05', TRUE),
			(11, 'Fresh Tomatoes', 'tomato', 'Vegetables', 35, 'kg', 'Rajesh Patel', 4.8, '🍅', 'download.jpeg', 'Fresh, red tomatoes harvested this morning', 50, 'Coimbatore, Tamil Nadu', '2024-01-15', TRUE),
			(12, 'Organic Spinach', 'spinach', 'Vegetables', 40, 'kg', 'Priya Singh', 4.9, '🥬', '', 'Organic spinach grown without pesticides', 25, 'Pollachi, Tamil Nadu', '2024-01-14', TRUE),
			(13, 'Sweet Corn', 'corn', 'Vegetables', 25, 'kg', 'Suresh Reddy', 4.7, '🌽', '', 'Sweet and juicy corn kernels', 40, 'Tiruppur, Tamil Nadu', '2024-01-13', TRUE),
			(14, 'Fresh Carrots', 'carrot', 'Vegetables', 30, 'kg', 'Lakshmi Devi', 4.6, '🥕', 'download (1).jpeg', 'Orange carrots rich in vitamins', 35, 'Erode, Tamil Nadu', '2024-01-12', TRUE),
			(15, 'Bananas', 'banana', 'Fruits', 52, 'dozen', 'Ramesh Kumar', 4.5, '🍌', 'b_f002.png', 'Yellow bananas, perfect for daily consumption', 30, 'Salem, Tamil Nadu', '2024-01-11', TRUE),
			(16, 'Apples', 'apple', 'Fruits', 150, 'kg', 'Anita Sharma', 4.8, '🍎', 'a_f002.png', 'Red apples from Kashmir region', 20, 'Madurai, Tamil Nadu', '2024-01-10', TRUE),
			(17, 'Wheat', 'wheat', 'Grains', 25, 'kg', 'Bharat Patel', 4.4, '🌾', '', 'Whole wheat grains for healthy cooking', 100, 'Karur, Tamil Nadu', '2024-01-09', TRUE),
			(18, 'Rice', 'rice', 'Grains', 40, 'kg', 'Vijay Singh', 4.6, '🍚', '', 'Basmati rice with long grains', 80, 'Dindigul, Tamil Nadu', '2024-01-08', TRUE),
			(19, 'Lentils', 'lentil', 'Pulses', 97, 'kg', 'Sunita Devi', 4.7, '🫘', '', 'Red lentils rich in protein', 45, 'Nilgiris, Tamil Nadu', '2024-01-07', TRUE),
			(20, 'Chickpeas', 'chickpea', 'Pulses', 75, 'kg', 'Raj Kumar', 4.5, '🫘', '', 'White chickpeas for various dishes', 60, 'Udumalpet, Tamil Nadu', '2024-01-06', TRUE)
			`,
		},
		{
			Name: "004_create_kv_store_table",
			SQL: `
			CREATE TABLE IF NOT EXISTS kv_store (
				store_key VARCHAR(255) PRIMARY KEY,
				store_value LONGTEXT NOT NULL,
				updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
			)
			`,
		},
		{
			Name: "005_create_orders_tables",
			SQL: `
			CREATE TABLE IF NOT EXISTS orders (
				id INT AUTO_INCREMENT PRIMARY KEY,
				order_id VARCHAR(64) NOT NULL UNIQUE,
				user_id INT NOT NULL,
				customer_name VARCHAR(255),
				customer_email VARCHAR(255),
				customer_phone VARCHAR(20),
				customer_address TEXT,
				customer_city VARCHAR(100),
				customer_pincode VARCHAR(20),
				total DECIMAL(10,2) NOT NULL,
				order_date VARCHAR(40),
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				INDEX idx_user_id (user_id),
				INDEX idx_order_id (order_id),
				FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
			)
			`,
		},
		{
			Name: "006_create_order_items_table",
			SQL: `
			CREATE TABLE IF NOT EXISTS order_items (
				id INT AUTO_INCREMENT PRIMARY KEY,
				order_id INT NOT NULL,
				product_id INT NOT NULL,
				product_name VARCHAR(255),
				unit VARCHAR(20),
				farmer VARCHAR(255),
				price DECIMAL(10,2) NOT NULL,
				quantity INT NOT NULL,
				INDEX idx_order_id (order_id),
				FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE
			)
			`,
		},
	}
}

// runMigrationIfNotExists 如果迁移不存在则运行
func runMigrationIfNotExists(db *sql.DB, migration Migration) error {
	// 检查迁移是否已执行
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM migrations WHERE name = ?", migration.Name).Scan(&count)
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	// 执行迁移
	log.Printf("Running migration: %s", migration.Name)
	if _, err := db.Exec(migration.SQL); err != nil {
		return err
	}

	// 记录迁移已执行
	_, err = db.Exec("INSERT INTO migrations (name) VALUES (?)", migration.Name)
	return err
}
