package tui

// Theme captures optional prefixes the reviewer applies when printing
// messages. Keep minimal to avoid coupling review logic to ANSI specifics.
type Theme struct {
	PromptPrefix string
	InfoPrefix   string
}

// Option configures the Reviewer.
type Option func(*Reviewer)

// WithPromptDriver overrides the prompt driver used by the reviewer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Reviewer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithLabels sets human-readable prompt labels keyed by token.
func WithLabels(labels map[string]string) Option {
	return func(r *Reviewer) {
		if len(labels) == 0 {
			return
		}
		if r.labels == nil {
			r.labels = make(map[string]string, len(labels))
		}
		for token, label := range labels {
			r.labels[token] = label
		}
	}
}

// WithReviewAll prompts for every fact, not only the ones that fell back.
func WithReviewAll(all bool) Option {
	return func(r *Reviewer) {
		r.all = all
	}
}

// WithConfirm asks for a final confirmation after listing the answers.
func WithConfirm(confirm bool) Option {
	return func(r *Reviewer) {
		r.confirm = confirm
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Reviewer) {
		r.theme = theme
	}
}
