package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/geobot/internal/service/session"
)

// statusCommand reports the remembered subject and the last question.
type statusCommand struct {
	store *session.Store
}

func NewStatusCommand(store *session.Store) *statusCommand {
	return &statusCommand{store: store}
}

func (c *statusCommand) Name() string        { return "status" }
func (c *statusCommand) Description() string { return "Mostra o assunto atual e a última pergunta" }

func (c *statusCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	subject := "(nenhum)"
	if s, ok := c.store.GetSubject(sessionID); ok {
		subject = string(s)
	}

	lastQuestion := "(nenhuma)"
	if q, ok := c.store.LastUserMessage(sessionID); ok {
		lastQuestion = q
	}

	return fmt.Sprintf("Assunto atual: %s. Última pergunta: %s.", subject, lastQuestion), nil
}
