package models

// User 用户模型，注册时创建
type User struct {
	ID        int     `json:"id"`
	Email     string  `json:"email"`
	Password  string  `json:"-"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	UserType  string  `json:"userType"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	FarmName  *string `json:"farmName"`
	FarmSize  *string `json:"farmSize"`
	SoilType  *string `json:"soilType"`
	CreatedAt string  `json:"createdAt"`
}

// 用户类型常量
const (
	UserTypeCustomer = "customer"
	UserTypeFarmer   = "farmer"
)

// IsFarmer 检查用户是否为农户
func (u *User) IsFarmer() bool {
	return u.UserType == UserTypeFarmer
}
