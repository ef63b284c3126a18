package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"targetkit/target"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Browse known targets interactively",
	Args:  cobra.NoArgs,
	RunE:  runExplore,
}

func runExplore(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdout) {
		return fmt.Errorf("explore needs a terminal; use `targetkit describe --all` for scripted output")
	}
	target.InitializeAllTargets()

	triples := target.KnownTriples()
	sort.Strings(triples)
	items := make([]list.Item, 0, len(triples))
	for _, triple := range triples {
		t, normalized, err := target.LookupTarget("", triple)
		if err != nil {
			continue
		}
		items = append(items, exploreItem{name: t.Name(), triple: normalized, desc: t.Description()})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "code-generation targets"
	l.SetShowStatusBar(false)

	model := exploreModel{list: l}
	program := tea.NewProgram(&model, tea.WithOutput(os.Stdout), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type exploreItem struct {
	name   string
	triple string
	desc   string
}

func (i exploreItem) Title() string       { return i.name }
func (i exploreItem) Description() string { return i.triple + " — " + i.desc }
func (i exploreItem) FilterValue() string { return i.name + " " + i.triple }

var exploreDetailStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

type exploreModel struct {
	list   list.Model
	detail string
	width  int
}

func (m *exploreModel) Init() tea.Cmd {
	return nil
}

func (m *exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.list.SetSize(msg.Width, msg.Height-6)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(exploreItem); ok {
				m.detail = describeForExplore(item.triple)
			}
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *exploreModel) View() string {
	view := m.list.View()
	if m.detail != "" {
		view += "\n" + exploreDetailStyle.Width(max(m.width-2, 20)).Render(m.detail)
	}
	return view
}

// describeForExplore builds a scoped machine just long enough to render the
// detail pane.
func describeForExplore(triple string) string {
	d, err := describeTriple(triple, "", target.Options{}, false)
	if err != nil {
		return "error: " + err.Error()
	}
	return fmt.Sprintf("cpu: %s\nlayout: %s\npointers: %d-bit", d.CPU, d.DataLayout, d.PointerBits)
}
