package local_fs

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/haierkeys/daily-note-link-service/internal/domain"
	"github.com/haierkeys/daily-note-link-service/pkg/fileurl"

	"github.com/pkg/errors"
)

// Get 根据路径获取文件句柄，不存在时返回 (nil, nil)
func (l *LocalFS) Get(path string) (*domain.NoteFile, error) {
	target, err := l.abs(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "stat failed")
	}
	if info.IsDir() {
		return nil, nil
	}

	return &domain.NoteFile{
		Path:  path,
		Mtime: info.ModTime(),
		Size:  info.Size(),
	}, nil
}

// Read 读取文件全文
func (l *LocalFS) Read(path string) (string, error) {
	target, err := l.abs(path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(target)
	if err != nil {
		return "", errors.Wrap(err, "read failed")
	}
	return string(data), nil
}

// Overwrite 覆盖写入文件全文
func (l *LocalFS) Overwrite(path string, content string) error {
	target, err := l.abs(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(target, []byte(content), 0644); err != nil {
		return errors.Wrap(err, "overwrite failed")
	}
	return nil
}

// Append 追加文本到文件末尾
func (l *LocalFS) Append(path string, content string) error {
	target, err := l.abs(path)
	if err != nil {
		return err
	}
	file, err := os.OpenFile(target, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrap(err, "open for append failed")
	}
	defer file.Close()
	if _, err := file.WriteString(content); err != nil {
		return errors.Wrap(err, "append failed")
	}
	return nil
}

// Create 以初始内容创建文件，按需创建父目录
func (l *LocalFS) Create(path string, content string) error {
	target, err := l.abs(path)
	if err != nil {
		return err
	}
	if err := fileurl.CreatePath(target, os.ModePerm); err != nil {
		return errors.Wrap(err, "create parent directory failed")
	}
	if err := os.WriteFile(target, []byte(content), 0644); err != nil {
		return errors.Wrap(err, "create failed")
	}
	return nil
}

// ListNotes 列出仓库内所有笔记文件
// 跳过点号开头的目录（如 .obsidian、.git）
func (l *LocalFS) ListNotes() ([]*domain.NoteFile, error) {
	var notes []*domain.NoteFile

	err := filepath.WalkDir(l.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != l.root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), l.noteExt) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(l.root, path)
		if err != nil {
			return err
		}

		notes = append(notes, &domain.NoteFile{
			Path:  filepath.ToSlash(rel),
			Mtime: info.ModTime(),
			Size:  info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "walk vault failed")
	}

	return notes, nil
}
