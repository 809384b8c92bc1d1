package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/louvorkit/louvor/store"
)

func TestAttachmentsMerge(t *testing.T) {
	music := &MusicAttachment{Songs: []store.Song{{ID: "s1"}}}
	otherMusic := &MusicAttachment{Songs: []store.Song{{ID: "s2"}}}
	schedule := &ScheduleAttachment{Entries: []store.ScheduleEntry{{Service: "culto"}}}

	t.Run("fills unset fields", func(t *testing.T) {
		merged := Attachments{Music: music}.Merge(Attachments{Schedule: schedule})
		assert.Equal(t, music, merged.Music)
		assert.Equal(t, schedule, merged.Schedule)
		assert.Nil(t, merged.User)
	})

	t.Run("first writer wins", func(t *testing.T) {
		merged := Attachments{Music: music}.Merge(Attachments{Music: otherMusic})
		assert.Equal(t, music, merged.Music)
	})
}

func TestAttachmentsEmpty(t *testing.T) {
	assert.True(t, Attachments{}.Empty())
	assert.False(t, Attachments{User: &UserAttachment{}}.Empty())
}

func TestUsageAdd(t *testing.T) {
	u := Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15}
	u.Add(Usage{PromptTokens: 1, CompletionTokens: 2, TotalTokens: 3})
	assert.Equal(t, Usage{PromptTokens: 11, CompletionTokens: 7, TotalTokens: 18}, u)

	assert.True(t, Usage{}.IsZero())
	assert.False(t, u.IsZero())
}
