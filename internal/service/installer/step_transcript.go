package installer

import (
	tea "github.com/charmbracelet/bubbletea"
)

var transcriptChoices = []string{
	"No, keep conversations in memory only",
	"Yes, archive exchanges to sqlite",
}

// TranscriptStep asks whether to keep an append-only conversation archive.
// Either way, short-term memory itself never survives a restart.
type TranscriptStep struct {
	cursor int
}

func NewTranscriptStep() Step {
	return &TranscriptStep{}
}

func (s *TranscriptStep) Init() tea.Cmd {
	return nil
}

func (s *TranscriptStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(transcriptChoices)-1 {
				s.cursor++
			}
		case "enter":
			state.Transcript = s.cursor == 1
			return nil, nil
		}
	}
	return s, nil
}

func (s *TranscriptStep) View(state *InstallState) string {
	view := "Archive conversations to disk?\n\n"
	for i, choice := range transcriptChoices {
		if i == s.cursor {
			view += selStyle.Render("> "+choice) + "\n"
		} else {
			view += itemStyle.Render(choice) + "\n"
		}
	}
	return view + "\n(press enter to confirm)\n"
}
