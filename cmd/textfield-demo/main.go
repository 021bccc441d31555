package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/textfield"
	"github.com/iw2rmb/textfield/field"
	"github.com/iw2rmb/textfield/focus"
	"github.com/iw2rmb/textfield/preset"
	"github.com/iw2rmb/textfield/textinput"
)

var (
	labelStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	reportStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

type entry struct {
	name  string
	label string
	field field.Model
}

type model struct {
	reg      *focus.Registry
	entries  []entry
	statuses chan string
	status   string
}

// statusMsg carries callback output back into the update loop.
type statusMsg string

func waitStatus(ch <-chan string) tea.Cmd {
	return func() tea.Msg { return statusMsg(<-ch) }
}

func newModel(set preset.Set, logger *log.Logger) (model, error) {
	m := model{
		reg:      focus.NewRegistry(),
		statuses: make(chan string, 16),
	}
	report := func(s string) {
		// Callbacks run inside Update; drop rather than block it.
		select {
		case m.statuses <- s:
		default:
		}
	}
	for _, name := range set.Names() {
		p := set.Fields[name]
		cfg := p.Config()
		cfg.OnSubmitEditing = func(e *textinput.Event) {
			report(fmt.Sprintf("%s submitted: %q", name, e.Text))
		}
		cfg.OnSelectionChange = func(e *textinput.Event) {
			report(fmt.Sprintf("%s selection %s", name, e.Selection))
		}

		f, err := field.New(m.reg, cfg,
			field.WithLogger(logger),
			field.WithPrompt(set.Prompt),
			field.WithWidth(set.Width),
		)
		if err != nil {
			return model{}, fmt.Errorf("field %s: %w", name, err)
		}
		label := p.Label
		if label == "" {
			label = name
		}
		m.entries = append(m.entries, entry{name: name, label: label, field: f})
	}
	if len(m.entries) > 0 {
		// The blink stays queued until the first Update.
		m.entries[0].field.Focus()
	}
	return m, nil
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitStatus(m.statuses)}
	for _, e := range m.entries {
		cmds = append(cmds, e.field.Init())
	}
	return tea.Batch(cmds...)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusMsg:
		m.status = string(msg)
		return m, waitStatus(m.statuses)
	case tea.WindowSizeMsg:
		for _, e := range m.entries {
			e.field.SetWidth(msg.Width - 2)
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			for _, e := range m.entries {
				e.field.Close()
			}
			return m, tea.Quit
		case "tab":
			return m, m.cycle(1)
		case "shift+tab":
			return m, m.cycle(-1)
		}
	}

	cmds := make([]tea.Cmd, 0, len(m.entries))
	for i := range m.entries {
		var cmd tea.Cmd
		m.entries[i].field, cmd = m.entries[i].field.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// cycle moves focus through the shared registry.
func (m model) cycle(dir int) tea.Cmd {
	if len(m.entries) == 0 {
		return nil
	}
	cur := -1
	for i, e := range m.entries {
		if e.field.IsFocused() {
			cur = i
			break
		}
	}
	next := (cur + dir + len(m.entries)) % len(m.entries)
	if cur < 0 && dir < 0 {
		next = len(m.entries) - 1
	}
	return m.entries[next].field.Focus()
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(statusStyle.Render("textfield " + textfield.VersionTag()))
	b.WriteString("\n\n")
	for _, e := range m.entries {
		b.WriteString(labelStyle.Render(e.label))
		b.WriteString("\n")
		b.WriteString(e.field.View())
		b.WriteString("\n\n")
	}
	b.WriteString(statusStyle.Render("tab/shift+tab: move  enter: submit  esc: quit"))
	form := b.String()
	if m.status == "" {
		return form
	}

	// The latest callback report floats over the top right of the form.
	report := reportStyle.Render(m.status)
	x := max(lipgloss.Width(form)-lipgloss.Width(report), 0)
	return overlay.Composite(report, form, overlay.Left, overlay.Top, x, 0)
}

func main() {
	configPath := flag.String("config", "", "presets TOML file (default $TEXTFIELD_CONFIG or ~/.config/textfield/presets.toml)")
	flag.Parse()

	logger := log.New(io.Discard, "", 0)
	if path := os.Getenv("TEXTFIELD_LOG"); path != "" {
		f, err := tea.LogToFile(path, "textfield")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		logger = log.Default()
	}

	set, err := preset.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	m, err := newModel(set, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
