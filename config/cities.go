package config

// City 地区配置项
type City struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// CoimbatoreRegionCities 哥印拜陀地区支持的城市列表，顺序即规范顺序
var CoimbatoreRegionCities = []City{
	{Name: "Coimbatore", Lat: 11.0168, Lon: 76.9558},
	{Name: "Pollachi", Lat: 10.6686, Lon: 77.0064},
	{Name: "Tiruppur", Lat: 11.1085, Lon: 77.3411},
	{Name: "Erode", Lat: 11.3410, Lon: 77.7172},
	{Name: "Salem", Lat: 11.6643, Lon: 78.1460},
	{Name: "Madurai", Lat: 9.9252, Lon: 78.1198},
	{Name: "Karur", Lat: 10.9603, Lon: 78.0766},
	{Name: "Dindigul", Lat: 10.3676, Lon: 77.9800},
	{Name: "Nilgiris", Lat: 11.4000, Lon: 76.7000},
	{Name: "Udumalpet", Lat: 10.9450, Lon: 77.2800},
}

// CityList 返回所有城市名称
func CityList() []string {
	names := make([]string, 0, len(CoimbatoreRegionCities))
	for _, c := range CoimbatoreRegionCities {
		names = append(names, c.Name)
	}
	return names
}

// CityCoords 按名称查找城市坐标
func CityCoords(name string) (City, bool) {
	for _, c := range CoimbatoreRegionCities {
		if c.Name == name {
			return c, true
		}
	}
	return City{}, false
}
