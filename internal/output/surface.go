package output

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/loanlens/emi-calculator/internal/calculation"
	"github.com/loanlens/emi-calculator/internal/domain"
)

// Artifact is a rendered chart instance owned by a Surface.
type Artifact struct {
	ID         uuid.UUID `json:"id"`
	Surface    string    `json:"surface"`
	Generation uint64    `json:"generation"`
	Payload    any       `json:"payload"`

	mu        sync.Mutex
	destroyed bool
}

// Destroy releases the artifact. It is safe to call more than once.
func (a *Artifact) Destroy() {
	a.mu.Lock()
	a.destroyed = true
	a.Payload = nil
	a.mu.Unlock()
}

// Destroyed reports whether the artifact has been released.
func (a *Artifact) Destroyed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.destroyed
}

// MarshalJSON snapshots the artifact under its lock.
func (a *Artifact) MarshalJSON() ([]byte, error) {
	a.mu.Lock()
	snapshot := struct {
		ID         uuid.UUID `json:"id"`
		Surface    string    `json:"surface"`
		Generation uint64    `json:"generation"`
		Destroyed  bool      `json:"destroyed,omitempty"`
		Payload    any       `json:"payload"`
	}{a.ID, a.Surface, a.Generation, a.destroyed, a.Payload}
	a.mu.Unlock()
	return json.Marshal(snapshot)
}

// Surface holds at most one live artifact. Replacing it always destroys the
// previous artifact before the next one is built.
type Surface struct {
	name       string
	mu         sync.Mutex
	current    *Artifact
	generation uint64
}

// NewSurface creates an empty surface.
func NewSurface(name string) *Surface {
	return &Surface{name: name}
}

// Name returns the surface name.
func (s *Surface) Name() string { return s.name }

// Replace tears down the live artifact, then builds and installs a new one.
// If build fails the surface is left empty.
func (s *Surface) Replace(build func() (any, error)) (*Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		s.current.Destroy()
		s.current = nil
	}
	payload, err := build()
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", s.name, err)
	}
	s.generation++
	s.current = &Artifact{
		ID:         uuid.New(),
		Surface:    s.name,
		Generation: s.generation,
		Payload:    payload,
	}
	return s.current, nil
}

// Current returns the live artifact, if any.
func (s *Surface) Current() (*Artifact, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.current != nil
}

// Clear destroys the live artifact.
func (s *Surface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		s.current.Destroy()
		s.current = nil
	}
}

// Presenter owns the bar, pie, gauge and table surfaces of one page and
// rebuilds all four for every calculation. Renders are serialized so the
// four surfaces always show the same loan.
type Presenter struct {
	Bar   *Surface
	Pie   *Surface
	Gauge *Surface
	Table *Surface

	mu         sync.Mutex
	classifier *calculation.Classifier
	labels     LabelStyle
}

// NewPresenter creates a presenter with empty surfaces.
func NewPresenter(c *calculation.Classifier, labels LabelStyle) *Presenter {
	if c == nil {
		c = calculation.DefaultClassifier()
	}
	return &Presenter{
		Bar:        NewSurface("bar"),
		Pie:        NewSurface("pie"),
		Gauge:      NewSurface("gauge"),
		Table:      NewSurface("table"),
		classifier: c,
		labels:     labels,
	}
}

// View is the set of artifacts produced by one Render.
type View struct {
	Bar   *Artifact `json:"bar"`
	Pie   *Artifact `json:"pie"`
	Gauge *Artifact `json:"gauge"`
	Table *Artifact `json:"table"`
}

// Render replaces every surface with artifacts for result.
func (p *Presenter) Render(result *domain.CalculationResult) (*View, error) {
	if result == nil {
		return nil, fmt.Errorf("render: nil result")
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	var (
		view View
		err  error
	)
	if view.Bar, err = p.Bar.Replace(func() (any, error) {
		return BuildChartData(result, p.labels), nil
	}); err != nil {
		return nil, err
	}
	if view.Pie, err = p.Pie.Replace(func() (any, error) {
		return BuildPieData(result.Input.Principal, BuildSummary(result).TotalInterest), nil
	}); err != nil {
		return nil, err
	}
	if view.Gauge, err = p.Gauge.Replace(func() (any, error) {
		return BuildGauge(p.classifier, result.Input.Principal), nil
	}); err != nil {
		return nil, err
	}
	if view.Table, err = p.Table.Replace(func() (any, error) {
		return BuildTable(result.Schedule, nil), nil
	}); err != nil {
		return nil, err
	}
	return &view, nil
}

// Current returns the live artifacts of all four surfaces as taken by one
// Render. ok is false until something has been rendered.
func (p *Presenter) Current() (*View, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var view View
	var ok bool
	if view.Bar, ok = p.Bar.Current(); !ok {
		return nil, false
	}
	view.Pie, _ = p.Pie.Current()
	view.Gauge, _ = p.Gauge.Current()
	view.Table, _ = p.Table.Current()
	return &view, true
}
