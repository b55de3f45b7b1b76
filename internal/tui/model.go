package tui

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/agbru/arraykit/internal/arrays"
	"github.com/agbru/arraykit/internal/cli"
	"github.com/agbru/arraykit/internal/config"
	apperrors "github.com/agbru/arraykit/internal/errors"
	"github.com/agbru/arraykit/internal/format"
	"github.com/agbru/arraykit/internal/orchestration"
)

// Layout constants for the dashboard.
const (
	tickInterval  = 500 * time.Millisecond
	maxLogLines   = 8
	barWidth      = 20
	nameWidth     = 28
	minPanelWidth = 40
)

// ExecutionState holds the execution-related fields of a TUI session.
type ExecutionState struct {
	ctx        context.Context
	cancel     context.CancelFunc
	sorters    []arrays.Sorter
	generation uint64
	done       bool
	exitCode   int
}

// Model is the root bubbletea model of the dashboard.
type Model struct {
	header HeaderModel
	keymap KeyMap
	help   help.Model
	target textinput.Model

	ExecutionState

	parentCtx context.Context
	config    config.AppConfig
	exec      orchestration.ExecOptions
	ref       *programRef

	input    arrays.Sequence
	seed     int64
	progress []float64
	results  []orchestration.SortResult
	fastest  orchestration.SortResult
	agreed   bool
	status   string
	history  *RingBuffer
	logs     []string

	width  int
	height int
}

// NewModel creates the dashboard for sorting cfg.Input with sorters.
func NewModel(parentCtx context.Context, sorters []arrays.Sorter, cfg config.AppConfig, version string, exec orchestration.ExecOptions) Model {
	target := textinput.New()
	target.Prompt = "Search> "
	target.Placeholder = "integer target"
	target.CharLimit = 20
	target.Width = 24
	target.PromptStyle = promptStyle
	target.Focus()

	m := Model{
		header:    NewHeaderModel(version),
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		target:    target,
		parentCtx: parentCtx,
		config:    cfg,
		exec:      exec,
		ref:       &programRef{},
		input:     arrays.Some(cfg.Input),
		seed:      cfg.Seed,
		progress:  make([]float64, len(sorters)),
		history:   NewRingBuffer(historySize),
		ExecutionState: ExecutionState{
			sorters:  sorters,
			exitCode: apperrors.ExitSuccess,
		},
	}
	m.newRunContext()
	return m
}

// newRunContext derives the context of the next run, bounded by the
// configured timeout.
func (m *Model) newRunContext() {
	if m.config.Timeout > 0 {
		m.ctx, m.cancel = context.WithTimeout(m.parentCtx, m.config.Timeout)
		return
	}
	m.ctx, m.cancel = context.WithCancel(m.parentCtx)
}

// Init starts the first run.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tickCmd(),
		startSortCmd(m.ref, m.ctx, m.sorters, m.input, m.exec, m.generation),
		watchContextCmd(m.parentCtx),
	)
}

// Update handles all incoming messages. Run messages from an earlier
// generation are dropped.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case ProgressMsg:
		if msg.Generation == m.generation && msg.SorterIndex >= 0 && msg.SorterIndex < len(m.progress) {
			m.progress[msg.SorterIndex] = msg.Value
		}
		return m, nil

	case ComparisonResultsMsg:
		if msg.Generation == m.generation {
			m.results = msg.Results
		}
		return m, nil

	case FinalResultMsg:
		if msg.Generation == m.generation {
			m.fastest = msg.Result
			m.agreed = true
			m.history.Push(float64(msg.Result.Duration))
		}
		return m, nil

	case ErrorMsg:
		if msg.Generation == m.generation {
			m.status = msg.Err.Error()
		}
		return m, nil

	case SortCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.done = true
		m.exitCode = msg.ExitCode
		m.header.SetDone()
		if msg.ExitCode != apperrors.ExitSuccess && m.status == "" {
			m.status = fmt.Sprintf("run failed with exit code %d", msg.ExitCode)
		}
		return m, nil

	case ContextCancelledMsg:
		m.done = true
		m.exitCode = apperrors.ExitErrorCanceled
		m.header.SetDone()
		return m, tea.Quit

	case TickMsg:
		if m.done {
			return m, nil
		}
		return m, tickCmd()
	}

	var cmd tea.Cmd
	m.target, cmd = m.target.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keymap.Regenerate):
		return m.regenerate()

	case key.Matches(msg, m.keymap.Search):
		m.search()
		return m, nil
	}

	if !acceptsTargetKey(msg) {
		return m, nil
	}
	var cmd tea.Cmd
	m.target, cmd = m.target.Update(msg)
	return m, cmd
}

// acceptsTargetKey reports whether msg may edit the target field. Typed
// characters are limited to digits and the minus sign.
func acceptsTargetKey(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes {
		return true
	}
	for _, r := range msg.Runes {
		if (r < '0' || r > '9') && r != '-' {
			return false
		}
	}
	return true
}

// search runs both searches for the typed target and logs the indices.
// The binary search runs on a merge-sorted copy of the input.
func (m *Model) search() {
	text := strings.TrimSpace(m.target.Value())
	if text == "" {
		return
	}
	m.target.Reset()

	target, err := strconv.Atoi(text)
	if err != nil {
		m.appendLog(errorStyle.Render(fmt.Sprintf("invalid target %q", text)))
		return
	}

	linear := arrays.LinearSearch(m.input, target)
	binary := arrays.BinarySearch(arrays.MergeSort(m.input), target)
	if m.exec.Recorder != nil {
		m.exec.Recorder.ObserveSearch("linear", linear)
		m.exec.Recorder.ObserveSearch("binary", binary)
	}
	m.appendLog(fmt.Sprintf("Search %d: linear index=%d, sorted index=%d", target, linear, binary))
}

// regenerate replaces the input with a fresh random sequence and restarts
// the run. It needs a configured size.
func (m Model) regenerate() (tea.Model, tea.Cmd) {
	if m.config.Size <= 0 {
		m.appendLog(warningStyle.Render("regeneration needs a random input (--size)"))
		return m, nil
	}

	if m.cancel != nil {
		m.cancel()
	}
	m.generation++
	m.seed++
	m.newRunContext()

	m.input = arrays.Some(config.GenerateSequence(m.config.Size, m.seed))
	m.progress = make([]float64, len(m.sorters))
	m.results = nil
	m.fastest = orchestration.SortResult{}
	m.agreed = false
	m.status = ""
	m.done = false
	m.exitCode = apperrors.ExitSuccess
	m.header.Reset(m.generation + 1)
	m.appendLog(fmt.Sprintf("New input of %s integers (seed %d)", format.FormatInt(m.config.Size), m.seed))

	return m, tea.Batch(
		tickCmd(),
		startSortCmd(m.ref, m.ctx, m.sorters, m.input, m.exec, m.generation),
	)
}

func (m *Model) appendLog(line string) {
	m.logs = append(m.logs, line)
	if len(m.logs) > maxLogLines {
		m.logs = m.logs[len(m.logs)-maxLogLines:]
	}
}

// View renders the dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	panel := panelStyle.Width(max(m.width-2, minPanelWidth))
	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		panel.Render(m.renderInput()),
		panel.Render(m.renderSorters()),
		panel.Render(m.renderLog()),
		m.target.View(),
		m.help.View(m.keymap),
	)
}

func (m Model) renderInput() string {
	lines := []string{labelStyle.Render("Input   ") + cli.FormatSequence(m.input)}
	if m.agreed {
		lines = append(lines, labelStyle.Render("Sorted  ")+cli.FormatSequence(m.fastest.Result))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderSorters() string {
	lines := make([]string, 0, len(m.sorters)+2)
	for i, s := range m.sorters {
		lines = append(lines, m.renderSorterRow(i, s))
	}

	switch {
	case m.status != "":
		lines = append(lines, errorStyle.Render("Status: "+m.status))
	case m.agreed:
		lines = append(lines, statusDoneStyle.Render(fmt.Sprintf("All sorters agree. Fastest: %s in %s",
			m.fastest.Name, format.FormatExecutionDuration(m.fastest.Duration))))
	case !m.done:
		lines = append(lines, dimStyle.Render("Sorting..."))
	}

	if h := m.history.Slice(); len(h) > 0 {
		lines = append(lines, labelStyle.Render("History ")+sparklineStyle.Render(RenderSparkline(ScaleToPercent(h))))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderSorterRow(idx int, s arrays.Sorter) string {
	name := truncateString(s.Name(), nameWidth)
	name += spaces(nameWidth - lipgloss.Width(name))
	bar := barStyle.Render(format.ProgressBar(m.progress[idx], barWidth))

	res, ok := lo.Find(m.results, func(r orchestration.SortResult) bool { return r.Key == s.Key() })
	switch {
	case !ok:
		return fmt.Sprintf("%s %s", valueStyle.Render(name), bar)
	case res.Err != nil:
		return fmt.Sprintf("%s %s %s", valueStyle.Render(name), bar, errorStyle.Render("FAILED"))
	default:
		return fmt.Sprintf("%s %s %s %s", valueStyle.Render(name), bar,
			format.FormatExecutionDuration(res.Duration), successStyle.Render("OK"))
	}
}

func (m Model) renderLog() string {
	if len(m.logs) == 0 {
		return dimStyle.Render("Type a target and press enter to search.")
	}
	return strings.Join(m.logs, "\n")
}

// truncateString shortens s to maxLen runes, ending with "...".
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// Run starts the dashboard and returns the exit code of the last run.
func Run(ctx context.Context, sorters []arrays.Sorter, cfg config.AppConfig, version string, exec orchestration.ExecOptions) int {
	// Styles follow the theme chosen by the app.
	initTUIStyles()

	model := NewModel(ctx, sorters, cfg, version, exec)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// startSortCmd runs the sorters on input and reports through the bridge.
func startSortCmd(ref *programRef, ctx context.Context, sorters []arrays.Sorter, input arrays.Sequence, exec orchestration.ExecOptions, gen uint64) tea.Cmd {
	return func() tea.Msg {
		reporter := &TUIProgressReporter{ref: ref, generation: gen}
		presenter := &TUIResultPresenter{ref: ref, generation: gen}

		results := orchestration.ExecuteSorts(ctx, sorters, input, exec, reporter, io.Discard)
		exitCode := orchestration.AnalyzeComparisonResults(results,
			orchestration.PresentationOptions{Input: input}, presenter, presenter, io.Discard)

		return SortCompleteMsg{ExitCode: exitCode, Generation: gen}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// watchContextCmd reports the end of the session context.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{}
	}
}
