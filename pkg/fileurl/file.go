package fileurl

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// IsFile determines if the given path is a file
// IsFile 判断所给路径是否为文件
func IsFile(path string) bool {
	return !IsDir(path)
}

// IsDir determines if the given path is a directory
// IsDir 判断所给路径是否为文件夹
func IsDir(path string) bool {
	s, err := os.Stat(path)
	if err != nil {
		return false
	}
	return s.IsDir()
}

// GetFileExt gets file extension
// GetFileExt 获取文件后缀
func GetFileExt(name string) string {
	return path.Ext(name)
}

// GetBaseName gets the file base name without extension
// GetBaseName 获取不含后缀的文件名
func GetBaseName(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, path.Ext(base))
}

// IsExist determines whether the path exists
// IsExist 判断路径是否存在
func IsExist(dst string) bool {
	_, err := os.Stat(dst) // os.Stat gets file info
	// os.Stat获取文件信息
	if err != nil {
		return os.IsExist(err)
	}
	return true
}

// CreatePath creates the parent directory for the given path
// CreatePath 为所给路径创建父目录
func CreatePath(dst string, perm os.FileMode) error {
	dir := filepath.Dir(dst)
	err := os.MkdirAll(dir, perm)
	if err != nil {
		return err
	}
	return nil
}

// PathSuffixCheckAdd appends suffix if missing
// PathSuffixCheckAdd 检查并补齐路径后缀
func PathSuffixCheckAdd(path string, suffix string) string {
	if !strings.HasSuffix(path, suffix) {
		path = path + suffix
	}
	return path
}

// IsAbsPath determines whether the path is absolute
// IsAbsPath 判断是否为绝对路径
func IsAbsPath(path string) bool {
	return filepath.IsAbs(path)
}
