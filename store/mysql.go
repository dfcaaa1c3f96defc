package store

import "database/sql"

// MySQLKV 基于kv_store表的键值存储
type MySQLKV struct {
	DB *sql.DB
}

// NewMySQLKV 创建MySQL键值存储
func NewMySQLKV(db *sql.DB) *MySQLKV {
	return &MySQLKV{DB: db}
}

func (m *MySQLKV) Read(key string) (string, bool, error) {
	var value string
	err := m.DB.QueryRow("SELECT store_value FROM kv_store WHERE store_key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (m *MySQLKV) Write(key, value string) error {
	_, err := m.DB.Exec(
		"INSERT INTO kv_store (store_key, store_value) VALUES (?, ?) ON DUPLICATE KEY UPDATE store_value = VALUES(store_value)",
		key, value,
	)
	return err
}

func (m *MySQLKV) Delete(key string) error {
	_, err := m.DB.Exec("DELETE FROM kv_store WHERE store_key = ?", key)
	return err
}
