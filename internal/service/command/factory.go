package command

import (
	"github.com/sandevgo/geobot/internal/core"
	"github.com/sandevgo/geobot/internal/service/session"
)

// NewCommands assembles the command set shared by all transports.
// transcript may be nil; /log is only offered when archiving is on.
func NewCommands(store *session.Store, transcript core.TranscriptRepository) []core.Command {
	cmds := []core.Command{
		NewStartCommand(store),
		NewResetCommand(store),
		NewStatusCommand(store),
	}
	if transcript != nil {
		cmds = append(cmds, NewLogCommand(transcript))
	}
	cmds = append(cmds, NewHelpCommand(func() []core.Command { return cmds }))
	return cmds
}
