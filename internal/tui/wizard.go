package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/careercraft/careercraft/internal/draft"
	"github.com/careercraft/careercraft/internal/render"
	"github.com/careercraft/careercraft/internal/wizard"
)

// refreshInterval drives periodic redraws so the autosave indicator and
// notifications stay current.
const refreshInterval = 300 * time.Millisecond

type tickMsg struct{}

type previewDoneMsg struct{ err error }

type downloadDoneMsg struct {
	path string
	err  error
}

type generateDoneMsg struct{ err error }

// Model is the bubbletea model for one builder session. The session owns
// all document state; the model only holds view concerns.
type Model struct {
	session *wizard.Session

	inputs     []textinput.Model
	fieldNames []string
	fieldKinds []draft.Kind
	focused    int

	aiInput textinput.Model

	bar    progress.Model
	busy   bool
	status string

	width  int
	height int
}

// New builds the wizard model over a hydrated session.
func New(session *wizard.Session) Model {
	ai := textinput.New()
	ai.Placeholder = "Describe what you want the AI to write..."
	ai.CharLimit = 500
	ai.Width = 60

	m := Model{
		session: session,
		aiInput: ai,
		bar:     progress.New(progress.WithDefaultGradient()),
	}
	m.rebuildInputs()
	return m
}

// Init starts the refresh ticker.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

// stepFields returns the field names edited on the active step. Sections
// line up one-to-one with the non-preview steps of both shapes.
func (m *Model) stepFields() []string {
	shape := m.session.Shape()
	step := m.session.Step()
	if step >= len(shape.Sections) {
		return nil
	}
	return shape.Sections[step].Fields
}

// rebuildInputs recreates the text inputs for the active step from the
// current draft. List fields edit as comma-separated text.
func (m *Model) rebuildInputs() {
	fields := m.stepFields()
	d := m.session.Draft()

	m.inputs = make([]textinput.Model, len(fields))
	m.fieldNames = make([]string, len(fields))
	m.fieldKinds = make([]draft.Kind, len(fields))
	for i, name := range fields {
		ti := textinput.New()
		ti.CharLimit = 2000
		ti.Width = 60
		kind, _ := m.session.Shape().FieldKind(name)
		if v, ok := d.Value(name); ok {
			if kind == draft.KindList {
				ti.SetValue(strings.Join(v.Items(), ", "))
				ti.Placeholder = "comma, separated, values"
			} else {
				ti.SetValue(v.Str())
			}
		}
		m.inputs[i] = ti
		m.fieldNames[i] = name
		m.fieldKinds[i] = kind
	}
	m.focused = 0
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}
}

// commitFocused writes the focused input's value into the session, which
// persists it and starts the autosave indicator cycle.
func (m *Model) commitFocused() {
	if m.focused < 0 || m.focused >= len(m.inputs) {
		return
	}
	name := m.fieldNames[m.focused]
	raw := m.inputs[m.focused].Value()

	var v draft.Value
	if m.fieldKinds[m.focused] == draft.KindList {
		var items []string
		for _, item := range strings.Split(raw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		v = draft.List(items...)
	} else {
		v = draft.String(raw)
	}
	_ = m.session.SetField(context.Background(), name, v)
}

func (m *Model) focusField(i int) {
	if i < 0 || i >= len(m.inputs) {
		return
	}
	m.inputs[m.focused].Blur()
	m.focused = i
	m.inputs[m.focused].Focus()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m, tick()

	case previewDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Preview failed: %v", msg.err)
		} else {
			m.status = "Preview updated"
			m.rebuildInputs()
		}
		return m, nil

	case downloadDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Download failed: %v", msg.err)
		} else {
			m.status = "Saved " + msg.path
		}
		return m, nil

	case generateDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.status = fmt.Sprintf("AI generation failed: %v", msg.err)
		} else {
			m.status = "Letter body generated"
			m.rebuildInputs()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	onBody := m.editingLetterBody()

	switch msg.String() {
	case "ctrl+c", "esc":
		m.session.Close()
		return m, tea.Quit

	case "tab", "down":
		if onBody && m.aiInput.Focused() {
			m.aiInput.Blur()
			m.focusField(0)
			return m, nil
		}
		if m.focused == len(m.inputs)-1 && onBody {
			m.inputs[m.focused].Blur()
			m.aiInput.Focus()
			return m, nil
		}
		m.focusField((m.focused + 1) % max(len(m.inputs), 1))
		return m, nil

	case "shift+tab", "up":
		if onBody && m.aiInput.Focused() {
			m.aiInput.Blur()
			m.focusField(len(m.inputs) - 1)
			return m, nil
		}
		m.focusField((m.focused - 1 + max(len(m.inputs), 1)) % max(len(m.inputs), 1))
		return m, nil

	case "ctrl+n", "enter":
		if onBody && m.aiInput.Focused() && msg.String() == "enter" {
			return m.startGenerate()
		}
		m.session.Next()
		m.rebuildInputs()
		return m, nil

	case "ctrl+b":
		m.session.Back()
		m.rebuildInputs()
		return m, nil

	case "ctrl+t":
		m.cycleTemplate()
		return m, nil

	case "ctrl+p":
		return m.startPreview()

	case "ctrl+d":
		return m.startDownload()

	case "ctrl+g":
		if onBody {
			return m.startGenerate()
		}
		return m, nil
	}

	// Route remaining keys to the focused input and persist the edit.
	var cmd tea.Cmd
	if onBody && m.aiInput.Focused() {
		m.aiInput, cmd = m.aiInput.Update(msg)
		return m, cmd
	}
	if m.focused >= 0 && m.focused < len(m.inputs) {
		m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
		m.commitFocused()
	}
	return m, cmd
}

func (m *Model) editingLetterBody() bool {
	for _, name := range m.fieldNames {
		if name == "letter_body" {
			return true
		}
	}
	return false
}

func (m *Model) cycleTemplate() {
	templates := m.session.Templates()
	if len(templates) == 0 {
		return
	}
	current := m.session.Template()
	next := 0
	for i, t := range templates {
		if t == current {
			next = (i + 1) % len(templates)
			break
		}
	}
	m.session.SetTemplate(templates[next])
}

func (m Model) startPreview() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.busy = true
	m.status = "Rendering preview..."
	session := m.session
	return m, func() tea.Msg {
		return previewDoneMsg{err: session.GeneratePreview(context.Background())}
	}
}

func (m Model) startDownload() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.busy = true
	m.status = "Generating PDF..."
	session := m.session
	return m, func() tea.Msg {
		pdf, name, err := session.DownloadPDF(context.Background())
		if err != nil {
			// Offline fallback: render the last preview locally.
			if html := session.PreviewHTML(); html != "" {
				if local, lerr := render.HTMLToPDF(context.Background(), html, 0); lerr == nil {
					pdf, name, err = local, session.Shape().DownloadName, nil
				}
			}
		}
		if err != nil {
			return downloadDoneMsg{err: err}
		}
		if werr := os.WriteFile(name, pdf, 0o644); werr != nil {
			return downloadDoneMsg{err: werr}
		}
		return downloadDoneMsg{path: name}
	}
}

func (m Model) startGenerate() (tea.Model, tea.Cmd) {
	instruction := strings.TrimSpace(m.aiInput.Value())
	if instruction == "" || m.busy {
		return m, nil
	}
	m.busy = true
	m.status = "Generating with AI..."
	session := m.session
	return m, func() tea.Msg {
		return generateDoneMsg{err: session.GenerateLetterBody(context.Background(), instruction)}
	}
}

// View renders the wizard.
func (m Model) View() string {
	var sb strings.Builder
	shape := m.session.Shape()

	sb.WriteString(titleStyle.Render("CareerCraft — "+shape.Name) + "\n\n")

	// Stepper
	var steps []string
	for i, label := range shape.Steps {
		if i == m.session.Step() {
			steps = append(steps, stepActiveStyle.Render(fmt.Sprintf("[%d %s]", i+1, label)))
		} else {
			steps = append(steps, stepInactiveStyle.Render(fmt.Sprintf(" %d %s ", i+1, label)))
		}
	}
	sb.WriteString(strings.Join(steps, " ") + "\n\n")

	// Completion bar and autosave indicator
	sb.WriteString(m.bar.ViewAs(float64(m.session.Progress())/100.0) + "\n")
	sb.WriteString(labelStyle.Render(fmt.Sprintf("%d%% complete", m.session.Progress())))
	switch m.session.SaveStatus() {
	case wizard.SaveSaving:
		sb.WriteString("   " + savingStyle.Render("Saving..."))
	case wizard.SaveSaved:
		sb.WriteString("   " + savedStyle.Render("✔ Saved"))
	}
	if t := m.session.Template(); t != "" {
		sb.WriteString("   " + labelStyle.Render("template: "+strings.TrimSuffix(t, ".html")))
	}
	sb.WriteString("\n\n")

	if m.session.Step() == shape.PreviewStep() {
		sb.WriteString(m.previewView())
	} else {
		sb.WriteString(m.formView())
	}

	if m.status != "" {
		sb.WriteString("\n" + errorOrInfo(m.status) + "\n")
	}
	if notifs := m.session.Notifications(); len(notifs) > 0 {
		last := notifs[len(notifs)-1]
		if last.Level == wizard.LevelError {
			sb.WriteString(errorStyle.Render(last.Message) + "\n")
		}
	}

	sb.WriteString("\n" + helpStyle.Render(
		"tab/↑↓ fields · enter/ctrl+n next · ctrl+b back · ctrl+t template · ctrl+p preview · ctrl+d download · esc quit"))
	if m.editingLetterBody() {
		sb.WriteString("\n" + helpStyle.Render("ctrl+g generate letter body with AI"))
	}
	return sb.String()
}

func (m Model) formView() string {
	var sb strings.Builder
	for i, name := range m.fieldNames {
		label := strings.ToUpper(strings.ReplaceAll(name, "_", " "))
		if i == m.focused && !m.aiInput.Focused() {
			sb.WriteString(labelFocusedStyle.Render(label))
		} else {
			sb.WriteString(labelStyle.Render(label))
		}
		sb.WriteString("\n" + m.inputs[i].View() + "\n")
	}
	if m.editingLetterBody() {
		sb.WriteString("\n" + labelStyle.Render("AI INSTRUCTION") + "\n" + m.aiInput.View() + "\n")
	}
	return sb.String()
}

func (m Model) previewView() string {
	html := m.session.PreviewHTML()
	if html == "" {
		return labelStyle.Render("No preview yet. Press ctrl+p to render one.")
	}
	text, err := render.ExtractText(html)
	if err != nil {
		return errorStyle.Render(fmt.Sprintf("Could not display preview: %v", err))
	}
	return previewStyle.Render(text)
}

func errorOrInfo(status string) string {
	if strings.Contains(status, "failed") {
		return errorStyle.Render(status)
	}
	return savedStyle.Render(status)
}
