package installer

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/geobot/internal/config"
	"github.com/sandevgo/geobot/pkg/env"
)

// envFile mirrors the runtime config variables the wizard can set.
type envFile struct {
	Token          string `env:"GEOBOT_TELEGRAM_TOKEN"`
	OwnerID        int64  `env:"GEOBOT_TELEGRAM_OWNER_ID"`
	EnableTelegram bool   `env:"GEOBOT_ENABLE_TELEGRAM"`
	Transcript     bool   `env:"GEOBOT_TRANSCRIPT"`
}

// SaveEnvStep writes the collected configuration to the .env file
type SaveEnvStep struct {
	err   error
	saved bool
}

func NewSaveEnvStep() Step {
	return &SaveEnvStep{}
}

func (s *SaveEnvStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *SaveEnvStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.saved {
		return nil, nil
	}

	path := config.GetRuntimePath()
	if err := os.MkdirAll(path, 0755); err != nil {
		s.err = fmt.Errorf("failed to create runtime directory: %w", err)
		return s, nil
	}

	envPath := filepath.Join(path, ".env")
	if _, err := os.Stat(envPath); err == nil {
		s.err = fmt.Errorf(".env file already exists at %s", envPath)
		return s, nil
	}

	content, err := env.MarshalEnv(&envFile{
		Token:          state.Token,
		OwnerID:        state.OwnerID,
		EnableTelegram: state.Token != "",
		Transcript:     state.Transcript,
	})
	if err != nil {
		s.err = fmt.Errorf("failed to render env file: %w", err)
		return s, nil
	}

	if err := os.WriteFile(envPath, []byte(content), 0600); err != nil {
		s.err = fmt.Errorf("failed to write %s: %w", envPath, err)
		return s, nil
	}

	s.saved = true
	return nil, nil
}

func (s *SaveEnvStep) View(state *InstallState) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", s.err)) + "\n"
	}
	return "Saving configuration...\n"
}
