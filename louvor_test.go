package louvor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louvorkit/louvor/core"
	"github.com/louvorkit/louvor/internal/testutil"
	"github.com/louvorkit/louvor/model"
	"github.com/louvorkit/louvor/store"
)

func newSeededAssistant(inference model.Inference) *Assistant {
	ref := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	return New(func(o *Options) {
		o.Inference = inference
		o.Songs = store.NewInMemorySongStore(testutil.SampleSongs()...)
		o.Schedule = store.NewInMemoryScheduleStore(testutil.SampleSchedule(ref)...)
		o.Members = store.NewInMemoryMemberStore(testutil.SampleMembers()...)
		o.Now = func() time.Time { return ref }
	})
}

func TestHandleRejectsEmptyQuery(t *testing.T) {
	a := New()

	for _, raw := range []string{"", "   ", "\n\t"} {
		res, err := a.Handle(context.Background(), raw, nil)
		assert.ErrorIs(t, err, core.ErrEmptyQuery)
		assert.Nil(t, res)
	}
}

func TestHandleGreeting(t *testing.T) {
	a := newSeededAssistant(nil)

	res, err := a.Handle(context.Background(), "Oi, tudo bem?", nil)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, core.QueryGeneral, res.QueryType)
	assert.Equal(t, "general", res.AgentUsed)
	assert.NotEmpty(t, res.Response)
	assert.NotEmpty(t, res.RequestID)
}

func TestHandleMusicCommand(t *testing.T) {
	a := newSeededAssistant(nil)

	res, err := a.Handle(context.Background(), "/musica Benedictus", nil)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, core.QueryMusicSearch, res.QueryType)
	assert.Equal(t, "music_search", res.AgentUsed)
	assert.Contains(t, res.Response, "Benedictus")
}

func TestHandleScheduleQuery(t *testing.T) {
	a := newSeededAssistant(nil)

	res, err := a.Handle(context.Background(), "quem está escalado no próximo domingo?", nil)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, core.QuerySchedule, res.QueryType)
	assert.Contains(t, res.Response, "Culto de domingo")
}

func TestHandleHybridQuery(t *testing.T) {
	a := newSeededAssistant(nil)

	res, err := a.Handle(context.Background(), "quem toca bateria no culto de domingo?", nil)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, core.QueryHybrid, res.QueryType)
	assert.Equal(t, "schedule+user_info", res.AgentUsed)
	assert.Contains(t, res.Response, "Carlos Lima")
}

func TestHandleTheologyWithInference(t *testing.T) {
	mock := model.NewMockInference()
	mock.Enqueue("A letra ecoa o Salmo 100.", core.Usage{PromptTokens: 8, CompletionTokens: 4, TotalTokens: 12})
	a := newSeededAssistant(mock)

	res, err := a.Handle(context.Background(), "/teologia @Benedictus explica a letra", nil)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, core.QueryTheological, res.QueryType)
	assert.Equal(t, "theological", res.AgentUsed)
	assert.Equal(t, "A letra ecoa o Salmo 100.", res.Response)
	assert.Equal(t, 12, res.Usage.TotalTokens)
	assert.Equal(t, "Benedictus", res.Classification.MentionedEntity)
}

func TestHandleNeverReturnsEmptyResponse(t *testing.T) {
	// No inference configured: theological queries must still produce a
	// useful answer from the local fallback.
	a := newSeededAssistant(nil)

	res, err := a.Handle(context.Background(), "Qual a base bíblica de @Grande É o Senhor?", nil)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, core.QueryTheological, res.QueryType)
	assert.NotEmpty(t, res.Response)
}

func TestHandleForwardsTrimmedHistory(t *testing.T) {
	mock := model.NewMockInference()
	a := newSeededAssistant(mock)

	history := testutil.AlternatingTurns(12)
	_, err := a.Handle(context.Background(), "/teologia @Benedictus explica a letra", history)
	require.NoError(t, err)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	require.Len(t, calls[0].History, core.DefaultHistoryWindow)
	assert.Equal(t, "turn 9", calls[0].History[0].Content)
	assert.Equal(t, core.RoleAssistant, calls[0].History[3].Role)
}

func TestClassifyPreview(t *testing.T) {
	a := New()

	q := a.Classify("/escala próxima semana")
	assert.Equal(t, core.QuerySchedule, q.Type)
	assert.True(t, q.Type.Valid())
}
