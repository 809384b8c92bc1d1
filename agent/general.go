package agent

import (
	"context"

	"github.com/louvorkit/louvor/core"
	"github.com/louvorkit/louvor/logging"
)

const (
	greetingResponse = "Olá! Sou o assistente do ministério de louvor. Posso buscar músicas " +
		"no repertório, mostrar as próximas escalas, falar sobre a equipe e analisar a base " +
		"bíblica das letras. Como posso ajudar?"

	helpResponse = "Posso ajudar com:\n" +
		"- Músicas do repertório (ex.: \"qual o tom de Grande É o Senhor?\")\n" +
		"- Escalas e ensaios (ex.: \"quem está escalado domingo?\")\n" +
		"- Equipe do ministério (ex.: \"quem toca bateria?\")\n" +
		"- Base bíblica das letras (ex.: \"qual a base bíblica de @Benedictus?\")\n\n" +
		"Comandos: /teologia força uma análise bíblica, /musica busca no repertório, " +
		"/escala mostra a agenda, /ajuda mostra esta mensagem."

	generalResponse = "Não tenho certeza do que você procura. Pergunte sobre músicas, " +
		"escalas, integrantes da equipe ou a base bíblica de uma letra — ou mande /ajuda " +
		"para ver exemplos."
)

// GeneralResponder covers greetings, help requests and queries that scored
// zero everywhere else.
type GeneralResponder struct {
	BaseResponder
}

// NewGeneralResponder creates the responder.
func NewGeneralResponder(logger logging.Logger) *GeneralResponder {
	return &GeneralResponder{BaseResponder: NewBaseResponder("general", logger)}
}

// Process implements core.Responder.
func (r *GeneralResponder) Process(_ context.Context, req core.Request) (core.AgentResult, error) {
	switch req.Intent {
	case "greeting":
		return core.AgentResult{Success: true, Response: greetingResponse}, nil
	case "help":
		return core.AgentResult{Success: true, Response: helpResponse}, nil
	default:
		return core.AgentResult{Success: true, Response: generalResponse}, nil
	}
}
