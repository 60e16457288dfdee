// Package display renders the latest barista order in the terminal. One
// enumerated state drives the whole screen: loading, a populated order
// card, an empty store with its diagnostic payload, or a transport error.
package display

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type state int

const (
	stateLoading state = iota
	statePopulated
	stateEmpty
	stateError
)

// Messages for tea updates
type (
	fetchedMsg struct {
		seq  int
		resp *LatestOrderResponse
	}
	fetchFailedMsg struct {
		seq int
		err error
	}
)

// Model drives the order display. Exactly one state holds at a time and
// each state owns its payload; pressing r remounts from loading.
type Model struct {
	client  *Client
	spinner spinner.Model
	banner  Banner
	loc     *time.Location

	state state
	seq   int
	resp  *LatestOrderResponse
	err   error
}

func NewModel(client *Client) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(accentColor)
	return Model{
		client:  client,
		spinner: sp,
		banner:  NewBanner(),
		loc:     time.Local,
		state:   stateLoading,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.banner.Init(), m.fetch())
}

// fetch issues one request tagged with the current sequence number. A
// response arriving after a remount carries a stale tag and is dropped.
func (m Model) fetch() tea.Cmd {
	seq := m.seq
	client := m.client
	return func() tea.Msg {
		resp, err := client.LatestOrder(context.Background())
		if err != nil {
			return fetchFailedMsg{seq: seq, err: err}
		}
		return fetchedMsg{seq: seq, resp: resp}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.seq++
			m.state = stateLoading
			m.resp = nil
			m.err = nil
			return m, tea.Batch(m.spinner.Tick, m.fetch())
		}
		return m, nil

	case fetchedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.resp = msg.resp
		if msg.resp.HasOrder() {
			m.state = statePopulated
		} else {
			m.state = stateEmpty
		}
		return m, nil

	case fetchFailedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.err = msg.err
		m.state = stateError
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case bannerTickMsg:
		var cmd tea.Cmd
		m.banner, cmd = m.banner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	var body string
	switch m.state {
	case stateLoading:
		body = m.spinner.View() + " Contacting the barista..."
	case statePopulated:
		body = renderCard(m.resp.Order, m.resp.File, m.loc)
	case stateEmpty:
		body = headlineStyle.Render("No orders yet.")
		if diag := m.diagnostic(); diag != "" {
			body += "\n\n" + diagnosticStyle.Render(diag)
		}
	case stateError:
		body = headlineStyle.Render("No orders yet.")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Latest Order"),
		m.banner.View(),
		"",
		body,
		"",
		helpStyle.Render("r refresh • q quit"),
	) + "\n"
}

// diagnostic pretty-prints the response body for the empty state. Failure
// visibility beats polish here: operators read this block to learn which
// candidate paths were probed or what the parser rejected.
func (m Model) diagnostic() string {
	if m.resp == nil || len(m.resp.Body) == 0 {
		return ""
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, m.resp.Body, "", "  "); err != nil {
		return string(m.resp.Body)
	}
	return buf.String()
}
