package command

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sandevgo/geobot/internal/core"
)

const defaultLogLimit = 10

// logCommand shows recent archived exchanges for the conversation. Only
// registered when the transcript archive is enabled.
type logCommand struct {
	transcript core.TranscriptRepository
}

func NewLogCommand(transcript core.TranscriptRepository) *logCommand {
	return &logCommand{transcript: transcript}
}

func (c *logCommand) Name() string        { return "log" }
func (c *logCommand) Description() string { return "Mostra as últimas mensagens arquivadas" }

func (c *logCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	limit := defaultLogLimit
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return "", fmt.Errorf("limite inválido: %q", args[0])
		}
		limit = n
	}

	entries, err := c.transcript.Recent(ctx, sessionID, limit)
	if err != nil {
		return "", fmt.Errorf("failed to read transcript: %w", err)
	}
	if len(entries) == 0 {
		return "Nenhuma mensagem arquivada.", nil
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "[%s] %s: %s\n", e.CreatedAt.Format("15:04:05"), e.Role, e.Text)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
