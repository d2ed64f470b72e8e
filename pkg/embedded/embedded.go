// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的配置与语言包。
//
// 未调用 Init() 时所有函数直接读取本地文件系统，
// 单元测试和 cmd/ 下的工具因此可以使用相对路径加载仓库中的 data/ 文件。
package embedded

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	dataFS      fs.FS
	initialized bool
)

// Init 设置嵌入的数据文件系统
// 必须在 main() 开始时、任何资源加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// Reset 清除嵌入文件系统，恢复为读取本地文件（测试用）
func Reset() {
	dataFS = nil
	initialized = false
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 标准化路径：正斜杠、去掉 "./" 前缀
func normalize(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}

// checkPrefix 嵌入模式下路径必须以 "data/" 开头
func checkPrefix(path string) error {
	if !strings.HasPrefix(path, "data/") {
		return fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return nil
}

// Open 打开资源文件
func Open(path string) (fs.File, error) {
	if !initialized {
		return os.Open(path)
	}
	path = normalize(path)
	if err := checkPrefix(path); err != nil {
		return nil, err
	}
	return dataFS.Open(path)
}

// ReadFile 读取资源文件内容
func ReadFile(path string) ([]byte, error) {
	if !initialized {
		return os.ReadFile(path)
	}
	path = normalize(path)
	if err := checkPrefix(path); err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, path)
}

// Exists 检查资源文件是否存在
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// Glob 匹配资源文件
func Glob(pattern string) ([]string, error) {
	if !initialized {
		return filepath.Glob(pattern)
	}
	pattern = normalize(pattern)
	if err := checkPrefix(pattern); err != nil {
		return nil, err
	}
	return fs.Glob(dataFS, pattern)
}
