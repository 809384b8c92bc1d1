package agent

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louvorkit/louvor/core"
	"github.com/louvorkit/louvor/internal/testutil"
	"github.com/louvorkit/louvor/store"
)

func TestMusicResponder(t *testing.T) {
	r := NewMusicResponder(sampleSongStore(), nil)

	t.Run("mention resolves a single song", func(t *testing.T) {
		res, err := r.Process(context.Background(), core.Request{
			Raw:     "fala sobre Benedictus",
			Mention: "Benedictus",
		})
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Contains(t, res.Response, "Benedictus")
		require.NotNil(t, res.Attachments.Music)
		require.Len(t, res.Attachments.Music.Songs, 1)
		assert.Equal(t, "Benedictus", res.Attachments.Music.Songs[0].Title)
	})

	t.Run("no match is still a successful answer", func(t *testing.T) {
		res, err := r.Process(context.Background(), core.Request{Raw: "zzz inexistente"})
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.NotEmpty(t, res.Response)
		assert.Nil(t, res.Attachments.Music)
	})
}

func TestScheduleResponder(t *testing.T) {
	ref := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	schedule := store.NewInMemoryScheduleStore(testutil.SampleSchedule(ref)...)
	r := NewScheduleResponder(schedule, func(o *ScheduleOptions) {
		o.Now = func() time.Time { return ref }
	})

	t.Run("lists upcoming entries only", func(t *testing.T) {
		res, err := r.Process(context.Background(), core.Request{Raw: "quais as próximas escalas?"})
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Contains(t, res.Response, "Culto de domingo")
		assert.Contains(t, res.Response, "Ensaio geral")
		require.NotNil(t, res.Attachments.Schedule)
		assert.Len(t, res.Attachments.Schedule.Entries, 2)
	})

	t.Run("mention filters by member", func(t *testing.T) {
		res, err := r.Process(context.Background(), core.Request{
			Raw:     "quando a Mariana Alves está escalada?",
			Mention: "Mariana Alves",
		})
		require.NoError(t, err)
		assert.True(t, res.Success)
		require.NotNil(t, res.Attachments.Schedule)
		assert.Len(t, res.Attachments.Schedule.Entries, 2)
	})

	t.Run("empty rota is still a successful answer", func(t *testing.T) {
		empty := NewScheduleResponder(store.NewInMemoryScheduleStore())
		res, err := empty.Process(context.Background(), core.Request{Raw: "próximo culto?"})
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.NotEmpty(t, res.Response)
	})
}

func TestMemberResponder(t *testing.T) {
	members := store.NewInMemoryMemberStore(testutil.SampleMembers()...)
	r := NewMemberResponder(members, nil)

	t.Run("mention lookup", func(t *testing.T) {
		res, err := r.Process(context.Background(), core.Request{
			Raw:     "quem é Ana Souza?",
			Mention: "Ana Souza",
		})
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Contains(t, res.Response, "Ana Souza")
		assert.Contains(t, res.Response, "violão")
		require.NotNil(t, res.Attachments.User)
	})

	t.Run("roster scan without mention", func(t *testing.T) {
		res, err := r.Process(context.Background(), core.Request{
			Raw: "qual instrumento o carlos toca?",
		})
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Contains(t, res.Response, "Carlos Lima")
	})

	t.Run("unknown member is still a successful answer", func(t *testing.T) {
		res, err := r.Process(context.Background(), core.Request{
			Raw:     "quem é Zacarias?",
			Mention: "Zacarias",
		})
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.NotEmpty(t, res.Response)
		assert.Nil(t, res.Attachments.User)
	})
}

func TestHistoryResponder(t *testing.T) {
	t.Run("default text", func(t *testing.T) {
		r := NewHistoryResponder()
		res, err := r.Process(context.Background(), core.Request{Raw: "qual a história do ministério?"})
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.NotEmpty(t, res.Response)
	})

	t.Run("custom text", func(t *testing.T) {
		r := NewHistoryResponder(func(o *HistoryOptions) { o.Text = "Fundado em 1998." })
		res, err := r.Process(context.Background(), core.Request{})
		require.NoError(t, err)
		assert.Equal(t, "Fundado em 1998.", res.Response)
	})
}

func TestGeneralResponder(t *testing.T) {
	r := NewGeneralResponder(nil)

	t.Run("greeting", func(t *testing.T) {
		res, err := r.Process(context.Background(), core.Request{Intent: "greeting"})
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Contains(t, res.Response, "Olá")
	})

	t.Run("help lists the commands", func(t *testing.T) {
		res, err := r.Process(context.Background(), core.Request{Intent: "help"})
		require.NoError(t, err)
		assert.Contains(t, res.Response, "/teologia")
		assert.Contains(t, res.Response, "/escala")
	})

	t.Run("general", func(t *testing.T) {
		res, err := r.Process(context.Background(), core.Request{Intent: "general"})
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.NotEmpty(t, res.Response)
	})
}
