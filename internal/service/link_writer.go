package service

import (
	"path"
	"strings"
)

// DefaultMarker 链接块的默认标记行
const DefaultMarker = "<!-- Today you worked on: -->"

// LinkWriter 负责在日记正文内维护标记链接块
// 块的范围是标记行加上紧随其后的连续链接行，定位采用
// 显式的行扫描而不是正则，避免贪婪多行匹配的歧义
type LinkWriter struct {
	marker string
}

// NewLinkWriter 创建 LinkWriter 实例，marker 为空时使用默认标记
func NewLinkWriter(marker string) *LinkWriter {
	if marker == "" {
		marker = DefaultMarker
	}
	return &LinkWriter{marker: marker}
}

// Marker 返回标记行
func (w *LinkWriter) Marker() string {
	return w.marker
}

// HasBlock 判断正文内是否已有链接块
func (w *LinkWriter) HasBlock(text string) bool {
	_, _, ok := w.blockSpan(text)
	return ok
}

// Block 构造完整的链接块文本
// links 为空时块退化为只有标记行，表示当天没有记录到修改
func (w *LinkWriter) Block(links []string) string {
	var b strings.Builder
	b.WriteString(w.marker)
	for _, l := range links {
		b.WriteString("\n- [[")
		b.WriteString(l)
		b.WriteString("]]")
	}
	return b.String()
}

// Merge 把链接块合入正文并返回新正文
// 已有块被整体替换，没有块时在末尾追加，同一正文最多保留一个块
func (w *LinkWriter) Merge(text string, links []string) string {
	block := w.Block(links)

	start, end, ok := w.blockSpan(text)
	if !ok {
		return text + "\n\n" + block
	}
	return text[:start] + block + "\n" + text[end:]
}

// blockSpan 定位已有链接块在正文内的字节区间
// 返回区间含标记行和其后连续的链接行，包括末尾换行符
func (w *LinkWriter) blockSpan(text string) (start int, end int, ok bool) {
	offset := 0
	inBlock := false

	for offset <= len(text) {
		lineEnd := strings.IndexByte(text[offset:], '\n')
		next := len(text)
		if lineEnd >= 0 {
			next = offset + lineEnd + 1
		}
		line := strings.TrimSuffix(text[offset:next], "\n")
		trimmed := strings.TrimSpace(line)

		if !inBlock {
			if trimmed == w.marker {
				start = offset
				end = next
				inBlock = true
				ok = true
			}
		} else {
			if !isLinkLine(trimmed) {
				return start, end, true
			}
			end = next
		}

		if lineEnd < 0 {
			break
		}
		offset = next
	}
	return start, end, ok
}

// isLinkLine 判断一行是否是块内的链接行
func isLinkLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "- [[") && strings.HasSuffix(trimmed, "]]")
}

// DisplayName 把笔记路径转换为链接显示名（去目录去后缀的文件名）
func DisplayName(notePath string) string {
	base := path.Base(notePath)
	if ext := path.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}
