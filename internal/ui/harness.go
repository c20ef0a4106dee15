package ui

import (
	"reflect"

	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives the UI model programmatically for integration tests.
// Commands are executed synchronously; batches and sequences are expanded in
// order.
type Harness struct {
	model *Model
	quit  bool
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Mount runs the model's Init, as the Bubble Tea program would on start.
func (h *Harness) Mount() {
	if h.model == nil {
		return
	}
	h.processCmd(h.model.Init())
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil || h.quit {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	if cmd == nil || h.quit {
		return
	}
	msg := cmd()
	switch msg.(type) {
	case nil:
		return
	case tea.QuitMsg:
		h.quit = true
		return
	}
	if cmds, ok := commandList(msg); ok {
		for _, c := range cmds {
			h.processCmd(c)
		}
		return
	}
	h.Send(msg)
}

var cmdType = reflect.TypeOf(tea.Cmd(nil))

// commandList unpacks tea.BatchMsg and Bubble Tea's unexported sequence
// message, both of which are slices of commands.
func commandList(msg tea.Msg) ([]tea.Cmd, bool) {
	v := reflect.ValueOf(msg)
	if v.Kind() != reflect.Slice || v.Type().Elem() != cmdType {
		return nil, false
	}
	cmds := make([]tea.Cmd, v.Len())
	for i := range cmds {
		cmds[i], _ = v.Index(i).Interface().(tea.Cmd)
	}
	return cmds, true
}

// Quit reports whether the model asked the program to exit.
func (h *Harness) Quit() bool {
	return h.quit
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
