package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PageSummary is the compact view of a page's affordances produced by the
// fallback extractor. Descriptors are pre-serialized strings so the summary
// can be handed to a downstream consumer as-is.
type PageSummary struct {
	Title               string
	Description         string
	InteractiveElements []string
	FormFields          []string
}

// InteractiveElement describes one clickable control.
type InteractiveElement struct {
	Tag      string
	Text     string
	Selector string
}

func (e InteractiveElement) String() string {
	return fmt.Sprintf("[%s] \"%s\" → %s", e.Tag, e.Text, e.Selector)
}

// FormField describes one fillable field.
type FormField struct {
	Type     string
	Label    string
	Selector string
}

func (f FormField) String() string {
	return fmt.Sprintf("[%s] \"%s\" → %s", f.Type, f.Label, f.Selector)
}

type PageState struct {
	URL       string
	Title     string
	Summary   PageSummary
	Timestamp time.Time
}

type ReplayAction struct {
	Type     ActionType
	Selector string
	Value    string
	URL      string
	Timeout  int
}

type ActionType string

const (
	ActionTypeNavigate ActionType = "navigate"
	ActionTypeClick    ActionType = "click"
	ActionTypeFill     ActionType = "fill"
)

// Run records one extraction pass over a page plus any actions replayed
// against its selectors.
type Run struct {
	ID        uuid.UUID
	URL       string
	StartedAt time.Time
	Summary   PageSummary
	Steps     []Step
}

type Step struct {
	ID        uuid.UUID
	Action    string
	Selector  string
	Timestamp time.Time
	Success   bool
	Error     string
}
