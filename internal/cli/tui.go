package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/chronoline/chronoline/pkg/chart"
	"github.com/chronoline/chronoline/pkg/timeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// PersonListModel is the bubbletea model for interactive focal-person
// selection, used by the radial and grid commands when --focal is omitted.
type PersonListModel struct {
	People      []timeline.Person
	CurrentYear int
	Cursor      int
	Selected    *timeline.Person
	Height      int
	Offset      int
}

// NewPersonListModel creates a new person list model.
func NewPersonListModel(people []timeline.Person, currentYear int) PersonListModel {
	return PersonListModel{
		People:      people,
		CurrentYear: currentYear,
		Height:      15,
	}
}

func (m PersonListModel) Init() tea.Cmd {
	return nil
}

func (m PersonListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.People)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			p := m.People[m.Cursor]
			m.Selected = &p
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m PersonListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Person"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.People) {
		end = len(m.People)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		p := m.People[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		span := chart.FormatYear(p.BirthYear) + " – "
		if p.DeathYear != nil {
			span += chart.FormatYear(*p.DeathYear)
		} else {
			span += "living"
		}

		category := p.Category
		if category == "" {
			category = "—"
		}

		years := fmt.Sprintf("%d yrs", p.Lifespan(m.CurrentYear))
		rows = append(rows, []string{cursor, p.Name, span, years, category})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Name", "Span", "Years", "Category").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			if col >= 2 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.People))))

	return b.String()
}

// pickPerson runs the interactive picker and returns the chosen person.
func pickPerson(people []timeline.Person, currentYear int) (timeline.Person, error) {
	model := NewPersonListModel(people, currentYear)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return timeline.Person{}, err
	}
	m, ok := final.(PersonListModel)
	if !ok || m.Selected == nil {
		return timeline.Person{}, fmt.Errorf("no person selected")
	}
	return *m.Selected, nil
}
