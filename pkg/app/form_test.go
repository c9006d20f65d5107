package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidErrors(t *testing.T) {
	errs := ValidErrors{
		{Key: "dailyNoteFolder", Message: "dailyNoteFolder 为必填字段"},
	}

	assert.Equal(t, "dailyNoteFolder 为必填字段", errs.Error())
	assert.Equal(t, []string{"dailyNoteFolder 为必填字段"}, errs.Errors())
	assert.Equal(t, map[string]string{"dailyNoteFolder": "dailyNoteFolder 为必填字段"}, errs.Maps())

	// MapsToString 把字段到消息的映射序列化为 JSON
	assert.JSONEq(t, `{"dailyNoteFolder":"dailyNoteFolder 为必填字段"}`, errs.MapsToString())
}
