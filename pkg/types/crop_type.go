// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// CropType 定义作物的种类
type CropType int

const (
	// CropUnknown 未知作物
	CropUnknown CropType = iota
	// CropCorn 玉米
	CropCorn
	// CropTomato 番茄
	CropTomato
	// CropLettuce 生菜
	CropLettuce
	// CropCarrot 胡萝卜
	CropCarrot
)

// AllCropTypes 是作物网格随机抽取的候选集合
var AllCropTypes = []CropType{CropCorn, CropTomato, CropLettuce, CropCarrot}

// String 返回作物种类的字符串表示
func (c CropType) String() string {
	switch c {
	case CropCorn:
		return "corn"
	case CropTomato:
		return "tomato"
	case CropLettuce:
		return "lettuce"
	case CropCarrot:
		return "carrot"
	default:
		return "unknown"
	}
}

// AnimalType 定义牲畜的种类
type AnimalType int

const (
	// AnimalUnknown 未知牲畜
	AnimalUnknown AnimalType = iota
	// AnimalCow 奶牛
	AnimalCow
	// AnimalChicken 鸡
	AnimalChicken
)

// String 返回牲畜种类的字符串表示
func (a AnimalType) String() string {
	switch a {
	case AnimalCow:
		return "cow"
	case AnimalChicken:
		return "chicken"
	default:
		return "unknown"
	}
}

// ParseAnimalType 将配置文件中的名称转换为 AnimalType
func ParseAnimalType(name string) AnimalType {
	switch name {
	case "cow":
		return AnimalCow
	case "chicken":
		return AnimalChicken
	default:
		return AnimalUnknown
	}
}
