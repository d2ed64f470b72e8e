//go:build mobile

package utils

// IsMobile 使用 -tags mobile 构建时恒为 true，启用触摸操作和移动端提示
func IsMobile() bool {
	return true
}
