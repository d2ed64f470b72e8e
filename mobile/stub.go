//go:build !mobile

// stub.go - 桌面构建时的占位文件
//
// 农场视图的移动端绑定只在 -tags mobile 时编译（见 mobile.go），
// 普通构建下本包仅保留 Dummy，使 go build ./... 和 go vet ./... 能覆盖到它。
package mobile

// Dummy 占位导出函数
func Dummy() {}
