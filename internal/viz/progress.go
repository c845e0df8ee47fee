package viz

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrInterrupted is returned by RunProgress when the user quits the bar
// before the work finished.
var ErrInterrupted = errors.New("viz: interrupted")

// ProgressMsg reports done out of total units of work.
type ProgressMsg struct {
	Done, Total int
}

// FinishMsg ends the program with the work's result.
type FinishMsg struct {
	Err error
}

type ProgressModel struct {
	title       string
	width       int
	decimals    int
	done, total int
	finished    bool
	interrupted bool
	err         error
}

func NewProgressModel(title string, width, decimals int) ProgressModel {
	return ProgressModel{title: title, width: width, decimals: decimals}
}

func (m ProgressModel) Init() tea.Cmd { return nil }

func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ProgressMsg:
		m.done, m.total = msg.Done, msg.Total
	case FinishMsg:
		m.finished = true
		m.err = msg.Err
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.interrupted = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ProgressModel) View() string {
	line := fmt.Sprintf("%s %s", Title.Render(m.title), StyledProgressBar(m.done, m.total, m.width, m.decimals))
	switch {
	case m.finished && m.err != nil:
		return line + "  " + StatusError.Render(m.err.Error()) + "\n"
	case m.finished:
		return line + "  " + StatusOK.Render("done") + "\n"
	case m.interrupted:
		return line + "  " + StatusError.Render("interrupted") + "\n"
	}
	return line + "\n"
}

func (m ProgressModel) Done() (int, int)  { return m.done, m.total }
func (m ProgressModel) Finished() bool    { return m.finished }
func (m ProgressModel) Interrupted() bool { return m.interrupted }

// RunProgress runs work in the background while a Bubble Tea program draws
// its progress on out. The work's error is returned unchanged; quitting the
// bar cancels work's context and returns ErrInterrupted. opts are passed to
// the program after the output and context options.
func RunProgress(ctx context.Context, out io.Writer, title string, work func(ctx context.Context, report func(done, total int)) error, opts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts = append([]tea.ProgramOption{tea.WithOutput(out), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(NewProgressModel(title, 50, 3), opts...)

	result := make(chan error, 1)
	go func() {
		err := work(ctx, func(done, total int) {
			p.Send(ProgressMsg{Done: done, Total: total})
		})
		result <- err
		p.Send(FinishMsg{Err: err})
	}()

	final, runErr := p.Run()
	cancel()
	workErr := <-result

	if m, ok := final.(ProgressModel); ok && m.Interrupted() {
		return ErrInterrupted
	}
	if workErr != nil {
		return workErr
	}
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return runErr
	}
	return nil
}
