// Copyright 2025 The go-soltx Authors
// This file is part of the go-soltx library.

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	soltx "github.com/cielu/go-soltx"
	"github.com/cielu/go-soltx/types"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	frameStyle   = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 1)
	programStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// dumpCfg keeps parsed payload dumps reproducible between frames.
var dumpCfg = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

type model struct {
	tx  *types.Transaction
	err error
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("soltx transaction inspector"))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errStyle.Render(m.err.Error()))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(" Quit <q>"))
		return b.String()
	}
	b.WriteString(fmt.Sprintf("%s transaction, %d signature(s), %d account(s)\n\n",
		m.tx.TxType, len(m.tx.Signatures), len(m.tx.Accounts)))
	for i, ix := range m.tx.Instructions {
		b.WriteString(fmt.Sprintf("%d. Program: %s\n", i+1, programStyle.Render(ix.ProgramID.String())))
		if len(ix.Accounts) > 0 {
			keys := make([]string, len(ix.Accounts))
			for j, acc := range ix.Accounts {
				keys[j] = acc.String()
			}
			b.WriteString(dimStyle.Render(fmt.Sprintf("   > Accounts: %s", strings.Join(keys, ", "))))
			b.WriteString("\n")
		}
		if ix.IsParsed() {
			b.WriteString(fmt.Sprintf("   > Parsed: %s", dumpCfg.Sdump(ix.Parsed)))
		} else {
			b.WriteString(dimStyle.Render(fmt.Sprintf("   > Data: %s", ix.Data)))
			b.WriteString("\n")
		}
	}
	for _, lut := range m.tx.AddressTableLookups {
		b.WriteString(dimStyle.Render(fmt.Sprintf("lut %s w:%v r:%v", lut.AccountKey, lut.WritableIndexes, lut.ReadonlyIndexes)))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(" Quit <q>"))
	return frameStyle.Render(b.String())
}

// Run parses hexTx and renders the inspector until the user quits.
func Run(hexTx string) error {
	parser := soltx.NewParser()
	tx, err := parser.ParseTransaction(hexTx)
	_, runErr := tea.NewProgram(model{tx: tx, err: err}).Run()
	return runErr
}
