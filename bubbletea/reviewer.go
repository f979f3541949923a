package bubbletea

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Reviewer runs the review screen as a full-screen program.
type Reviewer struct {
	modelOpts   []SelectModelOption
	programOpts []tea.ProgramOption
}

// ReviewerOption configures a Reviewer.
type ReviewerOption func(*Reviewer)

// WithModelOptions passes options through to every SelectModel.
func WithModelOptions(opts ...SelectModelOption) ReviewerOption {
	return func(r *Reviewer) {
		r.modelOpts = append(r.modelOpts, opts...)
	}
}

// WithProgramOptions replaces the default Bubble Tea program options.
func WithProgramOptions(opts ...tea.ProgramOption) ReviewerOption {
	return func(r *Reviewer) {
		r.programOpts = opts
	}
}

// NewReviewer creates a new Reviewer.
func NewReviewer(opts ...ReviewerOption) *Reviewer {
	r := &Reviewer{
		programOpts: []tea.ProgramOption{tea.WithAltScreen()},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Review displays the candidates and blocks until the user quits.
func (r *Reviewer) Review(ctx context.Context, in ReviewInput) (*Outcome, error) {
	m := NewSelectModel(in, r.modelOpts...)
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, r.programOpts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return nil, fmt.Errorf("review: %w", err)
	}
	sm, ok := final.(SelectModel)
	if !ok {
		return nil, fmt.Errorf("review: unexpected model %T", final)
	}
	return sm.Outcome(), nil
}
