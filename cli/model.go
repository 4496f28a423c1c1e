package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/santiagomed/politica/core"
	"github.com/santiagomed/politica/llm"
	"github.com/santiagomed/politica/logger"
	"github.com/santiagomed/politica/policy"
)

const (
	maxWidth      = 100
	formHeight    = 34
	minResultRows = 6
)

type generationDoneMsg struct {
	seq  uint64
	text string
	err  error
}

type copyResetMsg struct {
	token uint64
}

type itemKind int

const (
	itemInput itemKind = iota
	itemCondition
	itemRefund
	itemSubmit
)

// formItem is one focusable row of the form.
type formItem struct {
	kind  itemKind
	index int
}

var inputFields = []struct {
	name        string
	label       string
	placeholder string
	numeric     bool
}{
	{policy.FieldStoreName, "Nome da Loja", "Ex: Moda Rápida", false},
	{policy.FieldContactEmail, "E-mail de Contato", "contato@sua-loja.com", false},
	{policy.FieldReturnWindow, "Devolução por Arrependimento (dias)", "7", true},
	{policy.FieldExchangeWindow, "Troca por Defeito ou Outro Produto (dias)", "30", true},
}

type model struct {
	form      *core.Form
	presenter *core.Presenter
	client    llm.LlmClient
	logger    logger.Logger

	inputs     []textinput.Model
	conditions []policy.Condition
	refunds    []policy.RefundOption
	items      []formItem
	focus      int

	spinner  spinner.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap

	notice string
	saved  string
}

func newModel(form *core.Form, presenter *core.Presenter, client llm.LlmClient, l logger.Logger) *model {
	req := form.Request()
	values := []string{req.StoreName, req.ContactEmail, strconv.Itoa(req.ReturnWindow), strconv.Itoa(req.ExchangeWindow)}

	inputs := make([]textinput.Model, len(inputFields))
	for i, f := range inputFields {
		ti := textinput.New()
		ti.Placeholder = f.placeholder
		ti.CharLimit = 120
		ti.Width = 48
		if f.numeric {
			ti.CharLimit = 4
			ti.Width = 6
		}
		ti.SetValue(values[i])
		inputs[i] = ti
	}

	conditions := policy.Conditions()
	refunds := policy.RefundOptions()

	var items []formItem
	for i := range inputs {
		items = append(items, formItem{kind: itemInput, index: i})
	}
	for i := range conditions {
		items = append(items, formItem{kind: itemCondition, index: i})
	}
	for i := range refunds {
		items = append(items, formItem{kind: itemRefund, index: i})
	}
	items = append(items, formItem{kind: itemSubmit})

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("202"))

	m := &model{
		form:       form,
		presenter:  presenter,
		client:     client,
		logger:     l,
		inputs:     inputs,
		conditions: conditions,
		refunds:    refunds,
		items:      items,
		spinner:    s,
		viewport:   viewport.New(maxWidth-4, minResultRows*2),
		help:       help.New(),
		keys:       defaultKeyMap(),
	}
	m.inputs[0].Focus()
	return m
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := msg.Width - 4
		if width > maxWidth-4 {
			width = maxWidth - 4
		}
		height := msg.Height - formHeight
		if height < minResultRows {
			height = minResultRows
		}
		m.viewport.Width = width
		m.viewport.Height = height
		m.help.Width = msg.Width
		m.refreshResult()
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case generationDoneMsg:
		return m.handleGenerationDone(msg)
	case copyResetMsg:
		m.form.ResetCopied(msg.token)
		return m, nil
	case spinner.TickMsg:
		if !m.form.Submitting() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m.updateFocusedInput(msg)
}

// handleKeyPress routes global shortcuts first, then keys for the focused row.
func (m *model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		return m.handleSubmit()
	case key.Matches(msg, m.keys.Copy):
		return m.handleCopy()
	case key.Matches(msg, m.keys.Export):
		return m.handleExport()
	case key.Matches(msg, m.keys.Next):
		return m, m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m, m.moveFocus(-1)
	case key.Matches(msg, m.keys.ScrollUp, m.keys.ScrollDn):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	item := m.items[m.focus]
	switch item.kind {
	case itemCondition, itemRefund:
		if key.Matches(msg, m.keys.Toggle, m.keys.Confirm) {
			m.toggle(item)
		}
		return m, nil
	case itemSubmit:
		if key.Matches(msg, m.keys.Toggle, m.keys.Confirm) {
			return m.handleSubmit()
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Confirm) {
		return m, m.moveFocus(1)
	}
	if inputFields[item.index].numeric && !acceptsNumeric(msg) {
		return m, nil
	}
	return m.updateFocusedInput(msg)
}

func (m *model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	item := m.items[m.focus]
	if item.kind != itemInput {
		return m, nil
	}

	before := m.inputs[item.index].Value()
	var cmd tea.Cmd
	m.inputs[item.index], cmd = m.inputs[item.index].Update(msg)

	if value := m.inputs[item.index].Value(); value != before {
		field := inputFields[item.index].name
		if err := m.form.SetField(field, value); err != nil {
			m.logger.Debug(fmt.Sprintf("Rejected value for %s: %v", field, err))
			m.notice = err.Error()
		} else {
			m.notice = ""
		}
	}
	return m, cmd
}

func (m *model) moveFocus(delta int) tea.Cmd {
	if cur := m.items[m.focus]; cur.kind == itemInput {
		m.inputs[cur.index].Blur()
	}
	m.focus = (m.focus + delta + len(m.items)) % len(m.items)
	if next := m.items[m.focus]; next.kind == itemInput {
		return m.inputs[next.index].Focus()
	}
	return nil
}

func (m *model) toggle(item formItem) {
	var err error
	switch item.kind {
	case itemCondition:
		err = m.form.Toggle(policy.GroupConditions, m.conditions[item.index].String())
	case itemRefund:
		err = m.form.Toggle(policy.GroupRefundOptions, m.refunds[item.index].String())
	}
	if err != nil {
		m.logger.Warn(fmt.Sprintf("Toggle failed: %v", err))
	}
}

func (m *model) handleSubmit() (tea.Model, tea.Cmd) {
	if m.form.Submitting() {
		return m, nil
	}

	sub, err := m.form.Submit()
	if err != nil {
		m.notice = err.Error()
		return m, nil
	}

	m.notice = ""
	m.saved = ""
	m.viewport.SetContent("")
	return m, tea.Batch(m.spinner.Tick, generateCmd(m.client, sub))
}

// generateCmd runs the outbound call off the UI loop. The resulting message
// carries the submission's sequence number so stale answers can be dropped.
func generateCmd(client llm.LlmClient, sub core.Submission) tea.Cmd {
	return func() tea.Msg {
		text, err := llm.GeneratePolicy(context.Background(), client, &sub.Request)
		return generationDoneMsg{seq: sub.Seq, text: text, err: err}
	}
}

func (m *model) handleGenerationDone(msg generationDoneMsg) (tea.Model, tea.Cmd) {
	if !m.form.Resolve(msg.seq, msg.text, msg.err) {
		return m, nil
	}
	m.refreshResult()
	m.viewport.GotoTop()
	return m, nil
}

func (m *model) refreshResult() {
	if m.form.View() != core.ViewText {
		return
	}
	m.viewport.SetContent(lipgloss.NewStyle().Width(m.viewport.Width).Render(m.form.Result()))
}

func (m *model) handleCopy() (tea.Model, tea.Cmd) {
	token, err := m.presenter.Copy(m.form)
	if err != nil {
		return m, nil
	}
	return m, tea.Tick(core.CopyFeedbackDuration, func(time.Time) tea.Msg {
		return copyResetMsg{token: token}
	})
}

func (m *model) handleExport() (tea.Model, tea.Cmd) {
	path, err := m.presenter.Export(m.form)
	if err != nil {
		return m, nil
	}
	m.saved = path
	return m, nil
}

// acceptsNumeric filters keys typed into a day-count field: runes must be ASCII
// digits and spaces are dropped. Editing keys pass through.
func acceptsNumeric(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeySpace:
		return false
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Gerador de Política de Trocas e Devoluções"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Crie uma política profissional para sua loja em segundos com %s.", m.client.ModelName())))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Informações da Loja"))
	b.WriteString("\n")
	m.writeInput(&b, 0)
	m.writeInput(&b, 1)

	b.WriteString(sectionStyle.Render("Prazos"))
	b.WriteString("\n")
	m.writeInput(&b, 2)
	m.writeInput(&b, 3)

	req := m.form.Request()
	b.WriteString(sectionStyle.Render("Condições do Produto"))
	b.WriteString("\n")
	for i, c := range m.conditions {
		b.WriteString(m.checkbox(formItem{kind: itemCondition, index: i}, c.String(), req.HasCondition(c)))
	}

	b.WriteString(sectionStyle.Render("Opções de Reembolso/Troca"))
	b.WriteString("\n")
	for i, o := range m.refunds {
		b.WriteString(m.checkbox(formItem{kind: itemRefund, index: i}, o.String(), req.HasRefundOption(o)))
	}

	b.WriteString("\n")
	b.WriteString(m.submitButton())
	if m.notice != "" {
		b.WriteString("  ")
		b.WriteString(errorStyle.Render(m.notice))
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Política Gerada"))
	if m.form.View() == core.ViewText {
		b.WriteString("  ")
		if m.form.Copied() {
			b.WriteString(copiedStyle.Render(checkStyle.Render("✓") + " Copiado!"))
		} else {
			b.WriteString(faintStyle.Render("ctrl+y copiar · ctrl+e salvar .txt"))
		}
		if m.saved != "" {
			b.WriteString(faintStyle.Render(" · salvo em " + m.saved))
		}
	}
	b.WriteString("\n")
	b.WriteString(m.resultView())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m *model) focused(item formItem) bool {
	return m.items[m.focus] == item
}

func (m *model) writeInput(b *strings.Builder, i int) {
	label := labelStyle.Render(inputFields[i].label)
	if m.focused(formItem{kind: itemInput, index: i}) {
		label = focusedStyle.Render("> " + inputFields[i].label)
	}
	b.WriteString(label)
	b.WriteString("\n")
	b.WriteString(m.inputs[i].View())
	b.WriteString("\n")
}

func (m *model) checkbox(item formItem, label string, checked bool) string {
	box := "[ ]"
	if checked {
		box = "[" + checkStyle.Render("x") + "]"
	}
	line := fmt.Sprintf("%s %s", box, label)
	if m.focused(item) {
		return focusedStyle.Render("> ") + line + "\n"
	}
	return "  " + line + "\n"
}

func (m *model) submitButton() string {
	if m.form.Submitting() {
		return disabledStyle.Render(m.spinner.View() + " Gerando...")
	}
	label := "Gerar Política"
	if m.focused(formItem{kind: itemSubmit}) {
		label = "> " + label + " <"
	}
	return buttonStyle.Render(label)
}

func (m *model) resultView() string {
	switch m.form.View() {
	case core.ViewLoading:
		return fmt.Sprintf("%s Aguarde, a mágica está acontecendo...", m.spinner.View())
	case core.ViewError:
		return errorStyle.Render(m.form.ErrorMessage())
	case core.ViewText:
		return resultBox.Render(m.viewport.View())
	default:
		return faintStyle.Render(`Preencha o formulário e pressione ctrl+s (ou "Gerar Política") para ver o resultado aqui.`)
	}
}
