package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkWriterBlock(t *testing.T) {
	w := NewLinkWriter("")

	assert.Equal(t, DefaultMarker, w.Block(nil))
	assert.Equal(t,
		DefaultMarker+"\n- [[A]]\n- [[B]]",
		w.Block([]string{"A", "B"}))
}

func TestLinkWriterMergeAppendsWhenNoMarker(t *testing.T) {
	w := NewLinkWriter("")

	got := w.Merge("# 2024-01-01\n\nsome journal text", []string{"A", "B"})

	assert.True(t, strings.HasSuffix(got,
		"\n\n<!-- Today you worked on: -->\n- [[A]]\n- [[B]]"))
	assert.Equal(t, 1, strings.Count(got, DefaultMarker))
	assert.True(t, strings.HasPrefix(got, "# 2024-01-01\n\nsome journal text"))
}

func TestLinkWriterMergeReplacesStaleBlock(t *testing.T) {
	w := NewLinkWriter("")

	text := "# 2024-01-01\n\n" +
		DefaultMarker + "\n- [[Old One]]\n- [[Old Two]]\n\ntrailing text\n"

	got := w.Merge(text, []string{"C"})

	assert.Equal(t, 1, strings.Count(got, DefaultMarker))
	assert.Contains(t, got, DefaultMarker+"\n- [[C]]\n")
	assert.NotContains(t, got, "Old One")
	assert.NotContains(t, got, "Old Two")
	// 块以外的正文保持原样
	assert.True(t, strings.HasPrefix(got, "# 2024-01-01\n\n"))
	assert.True(t, strings.HasSuffix(got, "\ntrailing text\n"))
}

func TestLinkWriterMergeEmptyLinksKeepsMarker(t *testing.T) {
	w := NewLinkWriter("")

	text := "# day\n\n" + DefaultMarker + "\n- [[A]]\n"
	got := w.Merge(text, nil)

	require.Equal(t, 1, strings.Count(got, DefaultMarker))
	assert.NotContains(t, got, "[[A]]")
	assert.Contains(t, got, DefaultMarker+"\n")
}

func TestLinkWriterMergeBlockAtEndOfFile(t *testing.T) {
	w := NewLinkWriter("")

	// 块在文件末尾且没有结尾换行
	text := "body\n\n" + DefaultMarker + "\n- [[A]]"
	got := w.Merge(text, []string{"B"})

	assert.Equal(t, "body\n\n"+DefaultMarker+"\n- [[B]]\n", got)
}

func TestLinkWriterMergeStopsAtNonLinkLine(t *testing.T) {
	w := NewLinkWriter("")

	text := DefaultMarker + "\n- [[A]]\nplain paragraph\n- [[NotInBlock]]\n"
	got := w.Merge(text, []string{"X"})

	// 链接块在第一个非链接行处截止，其后内容不受影响
	assert.Contains(t, got, "plain paragraph\n- [[NotInBlock]]\n")
	assert.Contains(t, got, DefaultMarker+"\n- [[X]]\n")
	assert.NotContains(t, got, "[[A]]")
}

func TestLinkWriterHasBlock(t *testing.T) {
	w := NewLinkWriter("")

	assert.False(t, w.HasBlock("plain text\n"))
	assert.False(t, w.HasBlock(""))
	assert.True(t, w.HasBlock(DefaultMarker))
	assert.True(t, w.HasBlock("body\n\n"+DefaultMarker+"\n- [[A]]\n"))
}

func TestLinkWriterCustomMarker(t *testing.T) {
	w := NewLinkWriter("<!-- touched -->")

	got := w.Merge("body", []string{"A"})
	assert.True(t, strings.HasSuffix(got, "\n\n<!-- touched -->\n- [[A]]"))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "alpha", DisplayName("notes/alpha.md"))
	assert.Equal(t, "beta", DisplayName("beta.md"))
	assert.Equal(t, "no-ext", DisplayName("dir/no-ext"))
	assert.Equal(t, "v1.2", DisplayName("a/v1.2.md"))
}

// 验证重复合入收敛：第二次合入后结果不再变化
func TestPropertyMergeIdempotent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	w := NewLinkWriter("")

	properties.Property("merge converges after second application", prop.ForAll(
		func(body string, n int) bool {
			links := make([]string, 0, n)
			for i := 0; i < n; i++ {
				links = append(links, fmt.Sprintf("Note_%d", i))
			}

			once := w.Merge(body, links)
			twice := w.Merge(once, links)
			thrice := w.Merge(twice, links)

			return twice == thrice &&
				strings.Count(twice, DefaultMarker) == 1
		},
		gen.AlphaString(),
		gen.IntRange(0, 8),
	))

	properties.Property("all links land in the block exactly once", prop.ForAll(
		func(n int) bool {
			links := make([]string, 0, n)
			for i := 0; i < n; i++ {
				links = append(links, fmt.Sprintf("Note_%d_x", i))
			}

			got := w.Merge("# header\n\nbody text\n", links)
			for _, l := range links {
				if strings.Count(got, "- [["+l+"]]") != 1 {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 16),
	))

	properties.TestingRun(t)
}
