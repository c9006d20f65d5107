// Package tracker 维护自上次写入以来被修改的笔记集合
package tracker

import (
	"sort"
	"strings"
	"sync"
)

// Tracker 被修改笔记的内存集合
// 监听协程调用 Record，写入命令调用 Drain，内部用互斥锁保证
// Drain 的快照加清空是一个原子操作
type Tracker struct {
	mu      sync.Mutex
	noteExt string
	files   map[string]struct{}
}

// New 创建 Tracker 实例
func New(noteExt string) *Tracker {
	if !strings.HasPrefix(noteExt, ".") {
		noteExt = "." + noteExt
	}
	return &Tracker{
		noteExt: noteExt,
		files:   make(map[string]struct{}),
	}
}

// Record 记录一个被修改的文件
// 仅记录以笔记后缀结尾的路径，其余路径为无操作；返回是否被记录
func (t *Tracker) Record(path string) bool {
	if !strings.HasSuffix(path, t.noteExt) {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.files[path] = struct{}{}
	return true
}

// Drain 取出当前集合的所有成员并清空集合
// 返回值按路径排序，保证日记内链接顺序稳定
func (t *Tracker) Drain() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	paths := make([]string, 0, len(t.files))
	for path := range t.files {
		paths = append(paths, path)
	}
	t.files = make(map[string]struct{})

	sort.Strings(paths)
	return paths
}

// Snapshot 返回当前集合的排序副本，不清空集合
func (t *Tracker) Snapshot() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	paths := make([]string, 0, len(t.files))
	for path := range t.files {
		paths = append(paths, path)
	}

	sort.Strings(paths)
	return paths
}

// Len 返回当前集合大小
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.files)
}
