package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Krunal-Kurkure/ten-days-of-voice-agents-2025/internal/config"
	"github.com/Krunal-Kurkure/ten-days-of-voice-agents-2025/internal/display"
)

// No telemetry setup here: the program owns the terminal and logging to
// stdout would tear the screen.
func main() {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	client := display.NewClient(cfg.Display.APIURL)
	p := tea.NewProgram(display.NewModel(client), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "display error:", err)
		os.Exit(1)
	}
}
