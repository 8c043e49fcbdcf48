package command

import (
	"context"

	"github.com/sandevgo/geobot/internal/service/session"
)

const greeting = "Olá! Sou um bot com memória de curto prazo.\n" +
	"Exemplos: - Qual é a capital do Brasil? - E a moeda?\n" +
	"Use /reset para limpar o contexto."

// startCommand greets the user and starts from a clean session.
type startCommand struct {
	store *session.Store
}

func NewStartCommand(store *session.Store) *startCommand {
	return &startCommand{store: store}
}

func (c *startCommand) Name() string        { return "start" }
func (c *startCommand) Description() string { return "Apresenta o bot e limpa a sessão" }

func (c *startCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	c.store.Clear(sessionID)
	return greeting, nil
}

// resetCommand drops all remembered context for the conversation.
type resetCommand struct {
	store *session.Store
}

func NewResetCommand(store *session.Store) *resetCommand {
	return &resetCommand{store: store}
}

func (c *resetCommand) Name() string        { return "reset" }
func (c *resetCommand) Description() string { return "Limpa o contexto da conversa" }

func (c *resetCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	c.store.Clear(sessionID)
	return "Contexto limpo! Podemos recomeçar.", nil
}
