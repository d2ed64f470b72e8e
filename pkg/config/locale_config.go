package config

import (
	"fmt"
	"path"
	"strings"

	"github.com/gonewx/farmview/pkg/embedded"
	"github.com/gonewx/farmview/pkg/types"
	"gopkg.in/yaml.v3"
)

// LabelSet 界面文本集合
// HUD 原样使用其中的字符串，引擎本身不做本地化
type LabelSet struct {
	Language    string            `yaml:"language"`    // 语言代码，如 "en"、"es"
	Views       map[string]string `yaml:"views"`       // 关卡名 -> 视图标题
	Month       string            `yaml:"month"`       // "Month"
	Health      string            `yaml:"health"`      // "Health"
	Crops       string            `yaml:"crops"`       // 作物状态行前缀
	Animals     string            `yaml:"animals"`     // 牲畜状态行前缀
	PlantsNoun  string            `yaml:"plantsNoun"`  // 数量行中的 "plants"
	AnimalsNoun string            `yaml:"animalsNoun"` // 数量行中的 "animals"
	Status      map[string]string `yaml:"status"`      // 健康分级键 -> 显示名
	Alerts      map[string]string `yaml:"alerts"`      // 提示横幅键 -> 文本
}

// 提示横幅键
const (
	AlertCorrect  = "correct"
	AlertWrong    = "wrong"
	AlertCritical = "critical"
	AlertComplete = "complete"
	AlertFailed   = "failed"
)

// DefaultLabelSet 返回内置英文文本（语言包缺失时的后备）
func DefaultLabelSet() *LabelSet {
	return &LabelSet{
		Language: "en",
		Views: map[string]string{
			"field":   "Field View",
			"pasture": "Pasture View",
			"farm":    "Farm View",
		},
		Month:       "Month",
		Health:      "Health",
		Crops:       "Crops",
		Animals:     "Animals",
		PlantsNoun:  "plants",
		AnimalsNoun: "animals",
		Status: map[string]string{
			"excellent": "Excellent",
			"good":      "Good",
			"fair":      "Fair",
			"poor":      "Poor",
			"critical":  "Critical",
		},
		Alerts: map[string]string{
			AlertCorrect:  "Good decision!",
			AlertWrong:    "Wrong decision: health -15, sustainability -10",
			AlertCritical: "CRITICAL HEALTH ALERT",
			AlertComplete: "Season complete: level passed",
			AlertFailed:   "Season over: health too low",
		},
	}
}

// LoadLabelSet 从YAML文件加载语言包
// 参数：
//   - filePath: 语言包路径，如 "data/locales/es.yaml"
//
// 返回：
//   - *LabelSet: 语言包（缺失的键用内置英文补齐）
//   - error: 如果文件读取或解析失败
func LoadLabelSet(filePath string) (*LabelSet, error) {
	data, err := embedded.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read label set %s: %w", filePath, err)
	}
	labels, err := ParseLabelSet(data)
	if err != nil {
		return nil, fmt.Errorf("label set %s: %w", filePath, err)
	}
	return labels, nil
}

// ParseLabelSet 解析YAML语言包，缺失的键回退到内置英文
func ParseLabelSet(data []byte) (*LabelSet, error) {
	var labels LabelSet
	if err := yaml.Unmarshal(data, &labels); err != nil {
		return nil, fmt.Errorf("failed to parse label set YAML: %w", err)
	}
	if labels.Language == "" {
		return nil, fmt.Errorf("language is required")
	}
	labels.fillFrom(DefaultLabelSet())
	return &labels, nil
}

// fillFrom 用 fallback 补齐空字段
func (ls *LabelSet) fillFrom(fallback *LabelSet) {
	ls.Views = fillMap(ls.Views, fallback.Views)
	ls.Status = fillMap(ls.Status, fallback.Status)
	ls.Alerts = fillMap(ls.Alerts, fallback.Alerts)

	fill := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}
	fill(&ls.Month, fallback.Month)
	fill(&ls.Health, fallback.Health)
	fill(&ls.Crops, fallback.Crops)
	fill(&ls.Animals, fallback.Animals)
	fill(&ls.PlantsNoun, fallback.PlantsNoun)
	fill(&ls.AnimalsNoun, fallback.AnimalsNoun)
}

func fillMap(dst, fallback map[string]string) map[string]string {
	if dst == nil {
		dst = make(map[string]string, len(fallback))
	}
	for k, v := range fallback {
		if dst[k] == "" {
			dst[k] = v
		}
	}
	return dst
}

// LoadLabelSets 加载目录下所有语言包，按语言代码索引
func LoadLabelSets(dir string) (map[string]*LabelSet, error) {
	files, err := embedded.Glob(path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list label sets in %s: %w", dir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no label sets found in %s", dir)
	}

	sets := make(map[string]*LabelSet, len(files))
	for _, file := range files {
		labels, err := LoadLabelSet(file)
		if err != nil {
			return nil, err
		}
		lang := strings.ToLower(labels.Language)
		if _, dup := sets[lang]; dup {
			return nil, fmt.Errorf("duplicate label set for language %q (%s)", lang, file)
		}
		sets[lang] = labels
	}
	return sets, nil
}

// AlertText 返回提示横幅文本
func (ls *LabelSet) AlertText(key string) string {
	if text, ok := ls.Alerts[key]; ok {
		return text
	}
	return key
}

// ViewTitle 返回关卡的视图标题
func (ls *LabelSet) ViewTitle(level types.Level) string {
	if title, ok := ls.Views[level.String()]; ok {
		return title
	}
	return level.String()
}

// StatusName 返回健康分级的显示名
func (ls *LabelSet) StatusName(band types.HealthBand) string {
	if name, ok := ls.Status[band.Key()]; ok {
		return name
	}
	return band.Key()
}
