package config

import (
	"fmt"
	"path"

	"github.com/gonewx/farmview/pkg/embedded"
	"github.com/gonewx/farmview/pkg/types"
	"gopkg.in/yaml.v3"
)

// SceneConfig 场景配置数据结构
// 描述一个关卡的环境参数（天空、太阳装饰、土壤纹理）以及实体群体的生成参数
type SceneConfig struct {
	ID    string      `yaml:"id"`    // 配置ID，与关卡名一致，如 "field"
	Level types.Level `yaml:"level"` // 关卡编号 1-3

	Sky      SkyConfig       `yaml:"sky"`      // 天空渐变
	Ornament OrnamentConfig  `yaml:"ornament"` // 太阳/月亮装饰
	Soil     SoilConfig      `yaml:"soil"`     // 土壤带
	Crops    *CropGridConfig `yaml:"crops"`    // 作物网格，无作物的关卡为 nil
	Herd     []HerdConfig    `yaml:"herd"`     // 牲畜群体，按物种配置
	Wander   WanderConfig    `yaml:"wander"`   // 牲畜游荡区域
}

// GradientStop 渐变色标
type GradientStop struct {
	Offset float64  `yaml:"offset"` // 0.0 ~ 1.0，对应画面顶部到底部
	Color  HexColor `yaml:"color"`
}

// SkyConfig 天空渐变配置
type SkyConfig struct {
	Stops []GradientStop `yaml:"stops"`
}

// OrnamentKind 天空装饰类型
type OrnamentKind string

const (
	// OrnamentRays 带放射光线的太阳
	OrnamentRays OrnamentKind = "rays"
	// OrnamentHalo 带光晕的太阳
	OrnamentHalo OrnamentKind = "halo"
	// OrnamentReservoir 太阳 + 蓄水池图标
	OrnamentReservoir OrnamentKind = "reservoir"
)

// OrnamentConfig 太阳装饰配置
type OrnamentConfig struct {
	Kind        OrnamentKind `yaml:"kind"`
	SunColor    HexColor     `yaml:"sunColor"`
	Radius      float64      `yaml:"radius"`      // 太阳半径
	AccentColor HexColor     `yaml:"accentColor"` // 光线/光晕/水池颜色
}

// SoilTexture 土壤纹理类型
type SoilTexture string

const (
	// SoilFlecks 散落的深色土粒
	SoilFlecks SoilTexture = "flecks"
	// SoilGrass 随风摆动的草叶
	SoilGrass SoilTexture = "grass"
	// SoilFurrows 犁沟 + 水滴（灌溉田）
	SoilFurrows SoilTexture = "furrows"
)

// SoilConfig 土壤带配置
type SoilConfig struct {
	Color        HexColor    `yaml:"color"`
	Texture      SoilTexture `yaml:"texture"`
	TextureColor HexColor    `yaml:"textureColor"`
	AccentColor  HexColor    `yaml:"accentColor"` // 犁沟纹理中的水滴颜色
	Density      int         `yaml:"density"`     // 纹理元素数量
}

// CropGridConfig 作物网格配置
type CropGridConfig struct {
	Rows     int     `yaml:"rows"`
	Cols     int     `yaml:"cols"`
	StartX   float64 `yaml:"startX"`   // 第一列的屏幕X
	SpacingX float64 `yaml:"spacingX"` // 列间距
	SpacingY float64 `yaml:"spacingY"` // 行间距

	SwaySpeedMin   float64 `yaml:"swaySpeedMin"`   // 摇摆角速度下限（弧度/帧）
	SwaySpeedRange float64 `yaml:"swaySpeedRange"` // 摇摆角速度随机范围
}

// HerdConfig 单个物种的牲畜群体配置
type HerdConfig struct {
	Species  string  `yaml:"species"`  // "cow" / "chicken"
	Count    int     `yaml:"count"`    // 数量
	Speed    float64 `yaml:"speed"`    // 每帧移动速度
	StartX   float64 `yaml:"startX"`   // 第一只的初始X
	SpacingX float64 `yaml:"spacingX"` // 相邻个体的初始X间距
	MinY     float64 `yaml:"minY"`     // 初始Y下限
	RangeY   float64 `yaml:"rangeY"`   // 初始Y随机范围
}

// AnimalType 返回物种对应的类型
func (h HerdConfig) AnimalType() types.AnimalType {
	return types.ParseAnimalType(h.Species)
}

// WanderConfig 牲畜游荡区域配置
// 区域纵向位于土壤带内：[soilTop+OffsetY, soilTop+OffsetY+RangeY)
type WanderConfig struct {
	MinX        float64 `yaml:"minX"`
	MarginRight float64 `yaml:"marginRight"` // 右边界 = 画面宽度 - MarginRight
	OffsetY     float64 `yaml:"offsetY"`
	RangeY      float64 `yaml:"rangeY"`
}

// HerdSize 返回所有物种的牲畜总数
func (c *SceneConfig) HerdSize() int {
	total := 0
	for _, h := range c.Herd {
		total += h.Count
	}
	return total
}

// CropCount 返回作物网格的格子数
func (c *SceneConfig) CropCount() int {
	if c.Crops == nil {
		return 0
	}
	return c.Crops.Rows * c.Crops.Cols
}

// LoadSceneConfig 从YAML文件加载场景配置
// 参数：
//
//	filePath - 配置文件路径，如 "data/scenes/field.yaml"
//
// 返回：
//
//	*SceneConfig - 解析后的场景配置
//	error - 如果文件读取、解析或验证失败
func LoadSceneConfig(filePath string) (*SceneConfig, error) {
	data, err := embedded.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config file %s: %w", filePath, err)
	}

	cfg, err := ParseSceneConfig(data)
	if err != nil {
		return nil, fmt.Errorf("scene config %s: %w", filePath, err)
	}
	return cfg, nil
}

// ParseSceneConfig 解析YAML数据并应用默认值与验证
func ParseSceneConfig(data []byte) (*SceneConfig, error) {
	var cfg SceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene config YAML: %w", err)
	}

	applySceneDefaults(&cfg)

	if err := validateSceneConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid scene config: %w", err)
	}
	return &cfg, nil
}

// LoadSceneConfigs 加载目录下全部三个关卡的场景配置
// 文件名必须为 <level>.yaml（field.yaml / pasture.yaml / farm.yaml）
func LoadSceneConfigs(dir string) (map[types.Level]*SceneConfig, error) {
	configs := make(map[types.Level]*SceneConfig, len(types.AllLevels))
	for _, level := range types.AllLevels {
		cfg, err := LoadSceneConfig(path.Join(dir, level.String()+".yaml"))
		if err != nil {
			return nil, err
		}
		if cfg.Level != level {
			return nil, fmt.Errorf("scene config %s.yaml declares level %d, want %d", level, cfg.Level, level)
		}
		configs[level] = cfg
	}
	return configs, nil
}

// applySceneDefaults 为缺失的可选字段设置默认值
func applySceneDefaults(cfg *SceneConfig) {
	if cfg.Ornament.Radius == 0 {
		cfg.Ornament.Radius = 30
	}

	if cfg.Soil.Density == 0 {
		switch cfg.Soil.Texture {
		case SoilFlecks:
			cfg.Soil.Density = 50
		case SoilGrass:
			cfg.Soil.Density = 100
		case SoilFurrows:
			cfg.Soil.Density = 20
		}
	}

	if cfg.Crops != nil {
		if cfg.Crops.SwaySpeedMin == 0 {
			cfg.Crops.SwaySpeedMin = 0.02
		}
		if cfg.Crops.SwaySpeedRange == 0 {
			cfg.Crops.SwaySpeedRange = 0.02
		}
	}

	if cfg.Wander.MinX == 0 {
		cfg.Wander.MinX = 50
	}
	if cfg.Wander.MarginRight == 0 {
		cfg.Wander.MarginRight = 100
	}
}

// validateSceneConfig 验证场景配置的完整性和合法性
func validateSceneConfig(cfg *SceneConfig) error {
	if cfg.ID == "" {
		return fmt.Errorf("scene id is required")
	}
	if !cfg.Level.Valid() {
		return fmt.Errorf("level must be between 1 and 3, got %d", cfg.Level)
	}

	if len(cfg.Sky.Stops) < 2 {
		return fmt.Errorf("sky gradient needs at least 2 stops, got %d", len(cfg.Sky.Stops))
	}
	prev := -1.0
	for i, stop := range cfg.Sky.Stops {
		if stop.Offset < 0 || stop.Offset > 1 {
			return fmt.Errorf("sky.stops[%d]: offset must be within [0, 1], got %v", i, stop.Offset)
		}
		if stop.Offset < prev {
			return fmt.Errorf("sky.stops[%d]: offsets must be ascending", i)
		}
		prev = stop.Offset
	}

	switch cfg.Ornament.Kind {
	case OrnamentRays, OrnamentHalo, OrnamentReservoir:
	default:
		return fmt.Errorf("ornament.kind must be one of: rays, halo, reservoir, got %q", cfg.Ornament.Kind)
	}

	switch cfg.Soil.Texture {
	case SoilFlecks, SoilGrass, SoilFurrows:
	default:
		return fmt.Errorf("soil.texture must be one of: flecks, grass, furrows, got %q", cfg.Soil.Texture)
	}

	// 作物网格与关卡类型必须一致
	if cfg.Level.HasCrops() {
		if cfg.Crops == nil {
			return fmt.Errorf("level %s requires a crops section", cfg.Level)
		}
		if cfg.Crops.Rows < 1 || cfg.Crops.Cols < 1 {
			return fmt.Errorf("crops: rows and cols must be at least 1, got %dx%d", cfg.Crops.Rows, cfg.Crops.Cols)
		}
	} else if cfg.Crops != nil {
		return fmt.Errorf("level %s must not declare crops", cfg.Level)
	}

	if cfg.Level.HasAnimals() && len(cfg.Herd) == 0 {
		return fmt.Errorf("level %s requires at least one herd", cfg.Level)
	}
	if !cfg.Level.HasAnimals() && len(cfg.Herd) > 0 {
		return fmt.Errorf("level %s must not declare herds", cfg.Level)
	}
	for i, h := range cfg.Herd {
		if h.AnimalType() == types.AnimalUnknown {
			return fmt.Errorf("herd[%d]: unknown species %q", i, h.Species)
		}
		if h.Count < 0 {
			return fmt.Errorf("herd[%d]: count cannot be negative, got %d", i, h.Count)
		}
		if h.Speed <= 0 {
			return fmt.Errorf("herd[%d]: speed must be positive, got %v", i, h.Speed)
		}
	}

	if cfg.Level.HasAnimals() && cfg.Wander.RangeY <= 0 {
		return fmt.Errorf("wander.rangeY must be positive, got %v", cfg.Wander.RangeY)
	}

	return nil
}
