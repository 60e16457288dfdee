package display

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var bannerMessages = []string{
	"Fresh beans roasted this morning",
	"Try the oat milk flat white",
	"Ask about today's single origin",
	"Wellness check-ins welcome any time",
	"Loyalty cards stamped twice before 9am",
}

const bannerInterval = 5 * time.Second

type bannerTickMsg time.Time

// Banner cycles promotional lines on a fixed cadence, independent of the
// rest of the screen. Nothing outside it sees its state.
type Banner struct {
	messages []string
	index    int
}

func NewBanner() Banner {
	return Banner{messages: bannerMessages}
}

func (b Banner) Init() tea.Cmd {
	return b.tick()
}

func (b Banner) tick() tea.Cmd {
	return tea.Tick(bannerInterval, func(t time.Time) tea.Msg {
		return bannerTickMsg(t)
	})
}

func (b Banner) Update(msg tea.Msg) (Banner, tea.Cmd) {
	if _, ok := msg.(bannerTickMsg); ok {
		b.index = (b.index + 1) % len(b.messages)
		return b, b.tick()
	}
	return b, nil
}

func (b Banner) View() string {
	return bannerStyle.Render(b.messages[b.index])
}
