package store

// KV 键值持久化端口，购物车和订单以JSON字符串形式整体读写
// 读到的值永远是某次完整写入的结果，后写覆盖先写
type KV interface {
	// Read 读取键值，第二个返回值表示键是否存在
	Read(key string) (string, bool, error)
	// Write 整体写入键值
	Write(key, value string) error
	// Delete 删除键，键不存在时不报错
	Delete(key string) error
}
