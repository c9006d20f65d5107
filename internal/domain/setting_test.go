package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvedDailyNoteFolder(t *testing.T) {
	assert.Equal(t, "journal", (&Setting{DailyNoteFolder: "journal"}).ResolvedDailyNoteFolder())
	assert.Equal(t, DefaultDailyNoteFolder, (&Setting{}).ResolvedDailyNoteFolder())

	var nilSetting *Setting
	assert.Equal(t, DefaultDailyNoteFolder, nilSetting.ResolvedDailyNoteFolder())
}
