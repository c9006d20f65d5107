package convert

import (
	"testing"
	"time"

	"github.com/haierkeys/daily-note-link-service/pkg/timex"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type runKind string

type runRecord struct {
	Kind      runKind
	Count     int
	CreatedAt time.Time
	Internal  string
}

type runView struct {
	Kind      string
	Count     int
	CreatedAt timex.Time
}

func TestStructAssign(t *testing.T) {
	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.Local)
	src := &runRecord{Kind: "retro", Count: 7, CreatedAt: now, Internal: "skip"}

	dst := StructAssign(src, &runView{}).(*runView)

	// 同名字段复制，可转换类型自动转换，目标上不存在的字段被忽略
	assert.Equal(t, "retro", dst.Kind)
	assert.Equal(t, 7, dst.Count)
	assert.Equal(t, now.Unix(), dst.CreatedAt.Unix())
}

func TestStructToMap(t *testing.T) {
	src := struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}{Name: "alpha", Count: 2}

	data := map[string]interface{}{}
	require.NoError(t, StructToMap(src, data))

	assert.Equal(t, "alpha", data["name"])
	assert.EqualValues(t, 2, data["count"])
}
