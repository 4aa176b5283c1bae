package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/moyu-x/files-mover/pkg/logger"
)

// Row 摘要中的一行
type Row struct {
	Label string
	Value string
}

type confirmModel struct {
	rows      []Row
	question  string
	answered  bool
	confirmed bool
}

func newConfirmModel(rows []Row, question string) confirmModel {
	return confirmModel{rows: rows, question: question}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch strings.ToLower(key.String()) {
	case "y":
		m.answered = true
		m.confirmed = true
		return m, tea.Quit
	case "n", "q", "esc", "ctrl+c", "enter":
		m.answered = true
		m.confirmed = false
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.answered {
		return ""
	}

	width := 0
	for _, r := range m.rows {
		width = max(width, len(r.Label))
	}

	var lines []string
	for _, r := range m.rows {
		label := fmt.Sprintf("%-*s", width, r.Label)
		lines = append(lines, labelStyle.Render(label)+"  "+textStyle.Render(r.Value))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("即将整理文件"))
	b.WriteString("\n")
	b.WriteString(statsBoxStyle.Render(strings.Join(lines, "\n")))
	b.WriteString("\n\n")
	b.WriteString(focusedPromptStyle.Render(m.question))
	b.WriteString(" ")
	b.WriteString(hintStyle.Render("[y/N]"))
	b.WriteString("\n")
	return b.String()
}

// Confirm 显示摘要并等待 y/n 按键
func Confirm(rows []Row, question string) (bool, error) {
	p := tea.NewProgram(newConfirmModel(rows, question))

	final, err := p.Run()
	if err != nil {
		logger.Get().Error().Err(err).Msg("TUI 运行错误")
		return false, err
	}

	m, ok := final.(confirmModel)
	if !ok {
		return false, nil
	}
	return m.confirmed, nil
}
