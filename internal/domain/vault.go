// Package domain 定义领域模型和接口
package domain

import "time"

// NoteFile 仓库内笔记文件句柄
type NoteFile struct {
	// Path 相对于仓库根目录的路径
	Path string
	// Mtime 最后修改时间
	Mtime time.Time
	// Size 文件大小（字节）
	Size int64
}

// VaultFS 笔记仓库存储能力接口
// 核心服务只依赖该接口，不依赖任何具体存储实现
type VaultFS interface {
	// Get 根据路径获取文件句柄，不存在时返回 (nil, nil)
	Get(path string) (*NoteFile, error)

	// Read 读取文件全文
	Read(path string) (string, error)

	// Overwrite 覆盖写入文件全文
	Overwrite(path string, content string) error

	// Append 追加文本到文件末尾
	Append(path string, content string) error

	// Create 以初始内容创建文件，按需创建父目录
	Create(path string, content string) error

	// ListNotes 列出仓库内所有笔记文件（按配置的笔记后缀过滤）
	ListNotes() ([]*NoteFile, error)
}
