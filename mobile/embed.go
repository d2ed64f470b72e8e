//go:build mobile

// embed.go - 移动端场景配置与文案的嵌入声明
//
// go:embed 不能引用上级目录，所以 make prepare-mobile 先把
// data/scenes 和 data/locales 复制到 mobile/data/，再以 -tags mobile 构建。
package mobile

import "embed"

//go:embed data/scenes data/locales
var dataFS embed.FS
