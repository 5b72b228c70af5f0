package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wasmkit/interp/store"
	"github.com/wasmkit/interp/values"
	"github.com/wasmkit/interp/wasm"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// printExports renders the export table of a registered module.
func printExports(s *store.Store, inst *store.ModuleInstance) {
	fmt.Println(titleStyle.Render("host module exports"))
	for _, name := range inst.ExportNames() {
		ext, _ := inst.Export(name)
		fmt.Printf("  %s %s\n", funcStyle.Render(name), typeStyle.Render(describeExport(s, ext)))
	}
}

func describeExport(s *store.Store, ext store.ExternVal) string {
	switch ext.Kind() {
	case store.ExternFunc:
		id, _ := ext.Func()
		ft, _ := s.FuncType(id)
		return ft.String()
	case store.ExternGlobal:
		id, _ := ext.Global()
		gt, _ := s.GlobalType(id)
		v, _ := s.GlobalValue(id)
		return fmt.Sprintf("%s = %s", gt, v)
	case store.ExternMemory:
		id, _ := ext.Memory()
		pages, _ := s.MemorySize(id)
		return fmt.Sprintf("memory, %d pages", pages)
	case store.ExternTable:
		id, _ := ext.Table()
		n, _ := s.TableSize(id)
		return fmt.Sprintf("table, %d entries", n)
	default:
		return ext.String()
	}
}

type funcInfo struct {
	name string
	typ  wasm.FunctionType
}

type modelState int

const (
	stateSelectFunc modelState = iota
	stateInputArgs
	stateShowResult
)

type interactiveModel struct {
	err      error
	s        *store.Store
	hostSt   *demoState
	result   string
	funcs    []funcInfo
	inputs   []textinput.Model
	mod      store.ModuleID
	selected int
	focusIdx int
	state    modelState
}

func newInteractiveModel() (*interactiveModel, error) {
	mod, err := buildDemoModule()
	if err != nil {
		return nil, err
	}

	s := store.New()
	id, err := mod.Register(s)
	if err != nil {
		return nil, err
	}

	inst, _ := s.Module(id)
	var funcs []funcInfo
	for _, name := range inst.ExportNames() {
		ext, _ := inst.Export(name)
		fid, ok := ext.Func()
		if !ok {
			continue
		}
		ft, _ := s.FuncType(fid)
		funcs = append(funcs, funcInfo{name: name, typ: ft})
	}

	return &interactiveModel{
		s:      s,
		mod:    id,
		hostSt: &demoState{start: time.Now()},
		funcs:  funcs,
		state:  stateSelectFunc,
	}, nil
}

type callResultMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectFunc && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectFunc && m.selected < len(m.funcs)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectFunc:
				m.prepareInputs()
				if len(m.inputs) == 0 {
					return m, m.callFunction
				}
				m.state = stateInputArgs

			case stateInputArgs:
				return m, m.callFunction

			case stateShowResult:
				m.state = stateSelectFunc
				m.result = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateInputArgs:
				m.state = stateSelectFunc
				m.inputs = nil
			case stateShowResult:
				m.state = stateSelectFunc
				m.result = ""
				m.err = nil
			}
		}

	case callResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputArgs {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	f := m.funcs[m.selected]
	m.inputs = make([]textinput.Model, len(f.typ.Params))
	for i, p := range f.typ.Params {
		ti := textinput.New()
		ti.Placeholder = values.TypeName(p)
		ti.Prompt = fmt.Sprintf("arg%d: ", i)
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func (m *interactiveModel) callFunction() tea.Msg {
	f := m.funcs[m.selected]

	args := make([]values.Value, len(m.inputs))
	for i, input := range m.inputs {
		v, err := parseScalar(strings.TrimSpace(input.Value()), f.typ.Params[i])
		if err != nil {
			return callResultMsg{err: fmt.Errorf("argument %d: %w", i, err)}
		}
		args[i] = v
	}

	ret, err := m.s.Invoke(m.mod, f.name, m.hostSt, args...)
	if err != nil {
		return callResultMsg{err: err}
	}
	return callResultMsg{result: ret.String()}
}

func (m *interactiveModel) View() string {
	if len(m.funcs) == 0 {
		return "No function exports."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Host Module Explorer"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectFunc:
		b.WriteString("Select a function to call:\n\n")
		for i, f := range m.funcs {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + m.formatFunc(f)))
			} else {
				b.WriteString(cursor + m.formatFunc(f))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter call • q quit"))

	case stateInputArgs:
		f := m.funcs[m.selected]
		b.WriteString(fmt.Sprintf("Calling %s\n\n", funcStyle.Render(f.name)))
		for i, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString(" ")
			b.WriteString(typeStyle.Render(values.TypeName(f.typ.Params[i])))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter call • esc back"))

	case stateShowResult:
		f := m.funcs[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", funcStyle.Render(f.name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatFunc(f funcInfo) string {
	return funcStyle.Render(f.name) + typeStyle.Render(f.typ.String())
}

func runInteractive() error {
	model, err := newInteractiveModel()
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
