package tracker

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerRecord(t *testing.T) {
	tr := New(".md")

	assert.True(t, tr.Record("notes/alpha.md"))
	assert.True(t, tr.Record("beta.md"))
	assert.False(t, tr.Record("image.png"))
	assert.False(t, tr.Record("data.json"))

	assert.Equal(t, 2, tr.Len())
}

func TestTrackerRecordDeduplicates(t *testing.T) {
	tr := New(".md")

	tr.Record("alpha.md")
	tr.Record("alpha.md")
	tr.Record("alpha.md")

	assert.Equal(t, 1, tr.Len())
}

func TestTrackerExtWithoutDot(t *testing.T) {
	tr := New("md")

	assert.True(t, tr.Record("alpha.md"))
	assert.False(t, tr.Record("alpha.txt"))
}

func TestTrackerDrain(t *testing.T) {
	tr := New(".md")

	tr.Record("zeta.md")
	tr.Record("alpha.md")
	tr.Record("mid/beta.md")

	got := tr.Drain()
	require.Equal(t, []string{"alpha.md", "mid/beta.md", "zeta.md"}, got)

	// 清空后再次 Drain 为空
	assert.Empty(t, tr.Drain())
	assert.Equal(t, 0, tr.Len())
}

func TestTrackerSnapshotKeepsSet(t *testing.T) {
	tr := New(".md")

	tr.Record("alpha.md")
	tr.Record("beta.md")

	got := tr.Snapshot()
	require.Equal(t, []string{"alpha.md", "beta.md"}, got)
	assert.Equal(t, 2, tr.Len())
}

func TestTrackerConcurrentRecord(t *testing.T) {
	tr := New(".md")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tr.Record(fmt.Sprintf("note-%d.md", j))
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 100, tr.Len())
	assert.Len(t, tr.Drain(), 100)
}
