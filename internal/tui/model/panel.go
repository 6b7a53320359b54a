package model

import (
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"toolbox/internal/catalog"
	"toolbox/internal/lifecycle"
	"toolbox/internal/operation"
	"toolbox/internal/present"
	"toolbox/internal/schema"
)

// ToolPanel is one mounted tool: its input values, editors and request
// state. A panel lives from OpenPanel to ClosePanel.
type ToolPanel struct {
	Tool       catalog.Tool
	Generation uint64
	Controller *lifecycle.Controller
	Values     schema.Values
	Fields     []schema.Field
	FocusIndex int

	// Editors for free-form fields, keyed by field name. Select, checkbox
	// and range fields are edited in place through schema.Field.Advance.
	Inputs map[string]textinput.Model
	Areas  map[string]textarea.Model

	ResultViewport viewport.Model

	// Copied shows the copy confirmation. It is reset by a scoped timer.
	Copied     bool
	copySeq    uint64
	copyCancel chan struct{}
}

// NewToolPanel resolves the operation of t and seeds every field with its
// default.
func NewToolPanel(t catalog.Tool, generation uint64, svc lifecycle.Service, policy lifecycle.Policy) *ToolPanel {
	desc := operation.ResolveTool(t)
	p := &ToolPanel{
		Tool:           t,
		Generation:     generation,
		Controller:     lifecycle.New(desc, svc, lifecycle.WithPolicy(policy)),
		Values:         schema.NewValues(desc.Fields),
		Fields:         desc.Fields,
		Inputs:         make(map[string]textinput.Model),
		Areas:          make(map[string]textarea.Model),
		ResultViewport: viewport.New(60, 8),
	}

	for _, f := range p.Fields {
		switch f.Kind {
		case schema.KindMultilineText:
			ta := textarea.New()
			ta.ShowLineNumbers = false
			ta.Placeholder = f.Placeholder
			ta.CharLimit = 0
			ta.SetHeight(4)
			ta.SetValue(f.Default)
			ta.Blur()
			p.Areas[f.Name] = ta
		case schema.KindText, schema.KindColor, schema.KindNumber:
			ti := textinput.New()
			ti.Placeholder = f.Placeholder
			ti.Prompt = ""
			ti.SetValue(f.Default)
			ti.Blur()
			p.Inputs[f.Name] = ti
		}
	}
	p.FocusField(0)
	return p
}

// FocusedField returns the field under the cursor.
func (p *ToolPanel) FocusedField() (schema.Field, bool) {
	if p.FocusIndex < 0 || p.FocusIndex >= len(p.Fields) {
		return schema.Field{}, false
	}
	return p.Fields[p.FocusIndex], true
}

// FocusField moves the cursor to field i, wrapping around.
func (p *ToolPanel) FocusField(i int) tea.Cmd {
	if len(p.Fields) == 0 {
		p.FocusIndex = 0
		return nil
	}
	if i < 0 {
		i = len(p.Fields) - 1
	}
	if i >= len(p.Fields) {
		i = 0
	}

	for name, ti := range p.Inputs {
		ti.Blur()
		p.Inputs[name] = ti
	}
	for name, ta := range p.Areas {
		ta.Blur()
		p.Areas[name] = ta
	}

	p.FocusIndex = i
	name := p.Fields[i].Name
	if ti, ok := p.Inputs[name]; ok {
		cmd := ti.Focus()
		p.Inputs[name] = ti
		return cmd
	}
	if ta, ok := p.Areas[name]; ok {
		cmd := ta.Focus()
		p.Areas[name] = ta
		return cmd
	}
	return nil
}

// EditsText reports whether the focused field consumes typed characters.
func (p *ToolPanel) EditsText() bool {
	f, ok := p.FocusedField()
	if !ok {
		return false
	}
	_, input := p.Inputs[f.Name]
	_, area := p.Areas[f.Name]
	return input || area
}

// EditsMultiline reports whether the focused field is a text area, where
// enter inserts a newline.
func (p *ToolPanel) EditsMultiline() bool {
	f, ok := p.FocusedField()
	if !ok {
		return false
	}
	_, area := p.Areas[f.Name]
	return area
}

// UpdateEditor forwards msg to the focused editor and stores its value.
func (p *ToolPanel) UpdateEditor(msg tea.Msg) tea.Cmd {
	f, ok := p.FocusedField()
	if !ok {
		return nil
	}
	var cmd tea.Cmd
	if ti, ok := p.Inputs[f.Name]; ok {
		ti, cmd = ti.Update(msg)
		p.Inputs[f.Name] = ti
		_ = p.Values.Set(f.Name, ti.Value())
		return cmd
	}
	if ta, ok := p.Areas[f.Name]; ok {
		ta, cmd = ta.Update(msg)
		p.Areas[f.Name] = ta
		_ = p.Values.Set(f.Name, ta.Value())
		return cmd
	}
	return nil
}

// AdvanceFocused steps a select, checkbox or range field.
func (p *ToolPanel) AdvanceFocused(delta int) bool {
	f, ok := p.FocusedField()
	if !ok {
		return false
	}
	switch f.Kind {
	case schema.KindSelect, schema.KindCheckbox, schema.KindRange:
		_ = p.Values.Set(f.Name, f.Advance(p.Values.Raw(f.Name), delta))
		return true
	}
	return false
}

// Trigger starts a request with the current values.
func (p *ToolPanel) Trigger() lifecycle.Call {
	call := p.Controller.Trigger(p.Values)
	p.refreshResult()
	return call
}

// Apply records an outcome and refreshes the result view.
func (p *ToolPanel) Apply(o lifecycle.Outcome) bool {
	if !p.Controller.Apply(o) {
		return false
	}
	p.refreshResult()
	return true
}

// View returns what the panel currently shows.
func (p *ToolPanel) View() present.View {
	return present.Render(p.Controller.State())
}

// MarkCopied shows the copy confirmation for present.CopyFeedback. A
// second copy restarts the timer.
func (p *ToolPanel) MarkCopied() tea.Cmd {
	p.cancelCopy()
	p.Copied = true
	p.copySeq++
	p.copyCancel = make(chan struct{})

	captured := p.copyCancel
	gen, seq := p.Generation, p.copySeq
	return tea.Tick(present.CopyFeedback, func(time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return CopyFeedbackExpiredMsg{Generation: gen, Seq: seq}
		}
	})
}

// ExpireCopied clears the confirmation set by copy number seq.
func (p *ToolPanel) ExpireCopied(seq uint64) {
	if seq != p.copySeq {
		return
	}
	p.Copied = false
	p.copyCancel = nil
}

// Close cancels the panel's timers.
func (p *ToolPanel) Close() {
	p.cancelCopy()
	p.Copied = false
}

func (p *ToolPanel) cancelCopy() {
	if p.copyCancel != nil {
		close(p.copyCancel)
		p.copyCancel = nil
	}
}

// Resize fits editors and the result view to the terminal.
func (p *ToolPanel) Resize(width, height int) {
	inner := width - 8
	if inner < 20 {
		inner = 20
	}
	for name, ti := range p.Inputs {
		ti.Width = inner
		p.Inputs[name] = ti
	}
	for name, ta := range p.Areas {
		ta.SetWidth(inner)
		p.Areas[name] = ta
	}

	p.ResultViewport.Width = inner
	resultHeight := height / 3
	if resultHeight < 4 {
		resultHeight = 4
	}
	p.ResultViewport.Height = resultHeight
	p.refreshResult()
}

func (p *ToolPanel) refreshResult() {
	v := p.View()
	if v.HasImage() {
		p.ResultViewport.SetContent(present.Summary(v))
	} else {
		p.ResultViewport.SetContent(v.Text)
	}
}
