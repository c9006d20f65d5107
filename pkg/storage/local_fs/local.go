// Package local_fs 基于本地文件系统实现笔记仓库存储
package local_fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Config local vault storage configuration
// Config 本地仓库存储配置
type Config struct {
	// Path 仓库根目录
	Path string `yaml:"path" default:"vault"`
	// NoteExt 笔记文件后缀
	NoteExt string `yaml:"note-ext" default:".md"`
}

// LocalFS 本地文件系统仓库
type LocalFS struct {
	root    string
	noteExt string
}

// NewClient creates a local vault client rooted at cfg.Path
// NewClient 创建以 cfg.Path 为根的本地仓库客户端
func NewClient(cfg *Config) (*LocalFS, error) {
	root, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, errors.Wrap(err, "resolve vault path failed")
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrap(err, "vault path not accessible")
	}
	if !info.IsDir() {
		return nil, errors.Errorf("vault path is not a directory: %s", root)
	}

	noteExt := cfg.NoteExt
	if noteExt == "" {
		noteExt = ".md"
	}
	if !strings.HasPrefix(noteExt, ".") {
		noteExt = "." + noteExt
	}

	return &LocalFS{root: root, noteExt: noteExt}, nil
}

// Root 返回仓库根目录的绝对路径
func (l *LocalFS) Root() string {
	return l.root
}

// NoteExt 返回笔记文件后缀
func (l *LocalFS) NoteExt() string {
	return l.noteExt
}

// abs resolves a vault-relative path, rejecting escapes from the root
// abs 解析仓库相对路径，拒绝越出根目录的路径
func (l *LocalFS) abs(path string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(path))
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) || filepath.IsAbs(cleaned) {
		return "", errors.Errorf("path escapes vault root: %s", path)
	}
	return filepath.Join(l.root, cleaned), nil
}
