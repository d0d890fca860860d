// Package tui implements the live dashboard behind `cubesolver watch`: a
// bubbletea program that races every available backend against the same
// cube and renders each one's iterative-deepening threshold and node count
// as it climbs, finishing with the comparison table RunAll produces.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/nkasten/cubesolver"
	"github.com/nkasten/cubesolver/internal/solve"
)

type tickMsg time.Time

type progressMsg solve.Progress

type resultsMsg []solve.Result

type backendStatus struct {
	threshold int
	nodes     int64
	done      bool
	result    solve.Result
}

type dashboardModel struct {
	reg        *solve.Registry
	seed       *cube.Cube
	opts       solve.Options
	progressCh chan solve.Progress
	resultsCh  chan []solve.Result
	order      []string
	statuses   map[string]backendStatus
	start      time.Time
	elapsed    time.Duration
	quitting   bool
	finished   bool
}

// NewDashboardModel builds the model for a watch run against seed using
// every backend in reg.
func NewDashboardModel(reg *solve.Registry, seed *cube.Cube, opts solve.Options) *dashboardModel {
	backends := reg.Available()
	order := make([]string, len(backends))
	statuses := make(map[string]backendStatus, len(backends))
	for i, b := range backends {
		order[i] = b.Name()
		statuses[b.Name()] = backendStatus{threshold: seed.Heuristic()}
	}

	progressCh := make(chan solve.Progress, 64)
	opts.Progress = progressCh

	return &dashboardModel{
		reg:        reg,
		seed:       seed,
		opts:       opts,
		progressCh: progressCh,
		resultsCh:  make(chan []solve.Result, 1),
		order:      order,
		statuses:   statuses,
	}
}

func (m *dashboardModel) Init() tea.Cmd {
	m.start = time.Now()
	return tea.Batch(m.runSolve(), m.tickCmd(), m.listenForProgress())
}

func (m *dashboardModel) runSolve() tea.Cmd {
	return func() tea.Msg {
		results := solve.RunAll(context.Background(), m.reg, m.seed, m.opts)
		close(m.progressCh)
		m.resultsCh <- results
		return nil
	}
}

func (m *dashboardModel) listenForProgress() tea.Cmd {
	return func() tea.Msg {
		p, ok := <-m.progressCh
		if !ok {
			results := <-m.resultsCh
			return resultsMsg(results)
		}
		return progressMsg(p)
	}
}

func (m *dashboardModel) tickCmd() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case tickMsg:
		if !m.finished {
			m.elapsed = time.Since(m.start)
			return m, m.tickCmd()
		}

	case progressMsg:
		st := m.statuses[msg.Backend]
		st.threshold = msg.Threshold
		st.nodes = msg.Nodes
		m.statuses[msg.Backend] = st
		return m, m.listenForProgress()

	case resultsMsg:
		m.finished = true
		for _, r := range msg {
			m.statuses[r.Backend] = backendStatus{
				threshold: m.statuses[r.Backend].threshold,
				nodes:     r.Nodes,
				done:      true,
				result:    r,
			}
		}
	}

	return m, nil
}

func (m *dashboardModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("cubesolver watch"))
	b.WriteString("\n\n")

	for _, name := range m.order {
		st := m.statuses[name]
		b.WriteString(backendStyle.Render(fmt.Sprintf("%-10s", name)))
		if st.done {
			if st.result.Success {
				b.WriteString(doneStyle.Render(fmt.Sprintf(" solved in %s, %s nodes, %s",
					cube.FormatMoves(st.result.Moves), humanize.Comma(st.nodes), st.result.Elapsed.Round(time.Millisecond))))
			} else if st.result.TimedOut {
				b.WriteString(failStyle.Render(fmt.Sprintf(" timed out after %s nodes", humanize.Comma(st.nodes))))
			} else {
				b.WriteString(failStyle.Render(fmt.Sprintf(" exhausted max depth, %s nodes", humanize.Comma(st.nodes))))
			}
		} else {
			b.WriteString(nodeStyle.Render(fmt.Sprintf(" threshold=%d  nodes=%s", st.threshold, humanize.Comma(st.nodes))))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.finished {
		b.WriteString(fmt.Sprintf("done in %s\n", m.elapsed.Round(time.Millisecond)))
	} else {
		b.WriteString(fmt.Sprintf("running %s\n", m.elapsed.Round(time.Millisecond)))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("q/esc to quit"))
	b.WriteString("\n")

	return b.String()
}

// Run races every backend in reg against seed and displays the live
// dashboard until every backend reports a result or the user quits.
func Run(reg *solve.Registry, seed *cube.Cube, opts solve.Options) error {
	model := NewDashboardModel(reg, seed, opts)
	p := tea.NewProgram(model)
	_, err := p.Run()
	return err
}
