package command

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sandevgo/geobot/internal/core"
)

// helpCommand lists the registered commands. It receives them lazily so the
// list can include helpCommand itself.
type helpCommand struct {
	commands func() []core.Command
}

func NewHelpCommand(commands func() []core.Command) *helpCommand {
	return &helpCommand{commands: commands}
}

func (c *helpCommand) Name() string        { return "help" }
func (c *helpCommand) Description() string { return "Lista os comandos disponíveis" }

func (c *helpCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	cmds := append([]core.Command(nil), c.commands()...)
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })

	var b strings.Builder
	b.WriteString("Comandos disponíveis:\n")
	for _, cmd := range cmds {
		fmt.Fprintf(&b, "/%s - %s\n", cmd.Name(), cmd.Description())
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
