package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/louvorkit/louvor/core"
	"github.com/louvorkit/louvor/logging"
	"github.com/louvorkit/louvor/store"
)

// MusicResponder looks songs up in the repertoire catalog by fuzzy title,
// artist or theme matching.
type MusicResponder struct {
	BaseResponder
	songs store.SongStore
}

// NewMusicResponder creates the responder.
func NewMusicResponder(songs store.SongStore, logger logging.Logger) *MusicResponder {
	return &MusicResponder{
		BaseResponder: NewBaseResponder("music_search", logger),
		songs:         songs,
	}
}

// Process implements core.Responder.
func (r *MusicResponder) Process(_ context.Context, req core.Request) (core.AgentResult, error) {
	found, err := r.find(req)
	if err != nil {
		return core.AgentResult{}, fmt.Errorf("searching songs: %w", err)
	}

	if len(found) == 0 {
		return core.AgentResult{
			Success:  true,
			Response: "Não encontrei nenhuma música com esses termos no repertório.",
		}, nil
	}

	var sb strings.Builder
	if len(found) == 1 {
		sb.WriteString("Encontrei esta música no repertório:\n")
	} else {
		sb.WriteString(fmt.Sprintf("Encontrei %d músicas no repertório:\n", len(found)))
	}
	for _, song := range found {
		sb.WriteString("- " + song.Title)
		if song.Artist != "" {
			sb.WriteString(" — " + song.Artist)
		}
		if len(song.Themes) > 0 {
			sb.WriteString(" (temas: " + strings.Join(song.Themes, ", ") + ")")
		}
		sb.WriteString("\n")
	}

	return core.AgentResult{
		Success:     true,
		Response:    strings.TrimSpace(sb.String()),
		Attachments: core.Attachments{Music: &core.MusicAttachment{Songs: found}},
	}, nil
}

func (r *MusicResponder) find(req core.Request) ([]store.Song, error) {
	if req.Mention != "" {
		if song, err := r.songs.FindByTitle(req.Mention); err == nil {
			return []store.Song{song}, nil
		}
		return r.songs.Search(req.Mention)
	}
	return r.songs.Search(req.Raw)
}
