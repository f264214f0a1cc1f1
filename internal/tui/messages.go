package tui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tabsplit/tabsplit/internal/export"
	"github.com/tabsplit/tabsplit/internal/models"
)

// billParsedMsg reports the outcome of a receipt upload. generation is
// the wizard generation the upload was issued under; stale replies are
// dropped by the reducer.
type billParsedMsg struct {
	generation int
	bill       models.ParsedBill
	err        error
}

// splitDoneMsg reports the outcome of a split calculation. generation is
// the wizard generation the request was issued under; stale replies are
// dropped by the reducer.
type splitDoneMsg struct {
	generation int
	result     models.SplitResult
	err        error
}

// exportDoneMsg reports the outcome of a PDF export.
type exportDoneMsg struct {
	path string
	err  error
}

func (m Model) uploadCmd(path string) tea.Cmd {
	generation := m.state.Generation
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return billParsedMsg{generation: generation, err: fmt.Errorf("open %s: %w", path, err)}
		}
		defer f.Close()

		bill, err := m.client.ParseBill(context.Background(), path, f)
		return billParsedMsg{generation: generation, bill: bill, err: err}
	}
}

func (m Model) calcEqualCmd(req models.EqualSplitRequest, generation int) tea.Cmd {
	return func() tea.Msg {
		result, err := m.client.SplitEqual(context.Background(), req)
		return splitDoneMsg{generation: generation, result: result, err: err}
	}
}

func (m Model) calcItemCmd(req models.ItemSplitRequest, generation int) tea.Cmd {
	return func() tea.Msg {
		result, err := m.client.SplitByItem(context.Background(), req)
		return splitDoneMsg{generation: generation, result: result, err: err}
	}
}

func exportCmd(result models.SplitResult, path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		defer f.Close()
		if err := export.PDF(f, result); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path}
	}
}
