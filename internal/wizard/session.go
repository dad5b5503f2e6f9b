package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/careercraft/careercraft/internal/draft"
	"github.com/careercraft/careercraft/internal/store"
)

// SaveStatus is the cosmetic autosave indicator. It carries no durability
// guarantee; the store write has already completed by the time the
// indicator flips to Saved.
type SaveStatus int

const (
	SaveIdle SaveStatus = iota
	SaveSaving
	SaveSaved
)

// String returns the indicator label shown next to the form.
func (s SaveStatus) String() string {
	switch s {
	case SaveSaving:
		return "Saving..."
	case SaveSaved:
		return "Saved"
	default:
		return ""
	}
}

// Level classifies a notification.
type Level int

const (
	LevelInfo Level = iota
	LevelError
)

// Notification is a transient user-facing message produced by session
// operations. Failed remote calls surface here instead of crashing the
// session or touching the draft.
type Notification struct {
	ID      uuid.UUID
	Level   Level
	Message string
	Time    time.Time
}

// Backend is the remote collaborator the session talks to: the rendering
// service plus the profile endpoint. Implemented by api.Client.
type Backend interface {
	FetchProfile(ctx context.Context) (map[string]any, error)
	ListTemplates(ctx context.Context, shape *draft.Shape) ([]string, error)
	Preview(ctx context.Context, shape *draft.Shape, template string, d draft.Draft) (string, error)
	Download(ctx context.Context, shape *draft.Shape, template string, d draft.Draft) ([]byte, error)
	GenerateBody(ctx context.Context, d draft.Draft, instruction string) (string, error)
}

// ErrNoTemplate is returned by preview/download when no template has been
// selected yet.
var ErrNoTemplate = errors.New("wizard: no template selected")

// ErrClosed is returned by mutating operations after Close.
var ErrClosed = errors.New("wizard: session closed")

// Options tunes session behavior. The zero value gives production
// defaults.
type Options struct {
	// SavedDelay overrides the delay before the indicator flips from
	// Saving to Saved.
	SavedDelay time.Duration
	// Timer schedules a one-shot callback; tests inject a manual one.
	Timer func(d time.Duration, fn func())
}

// Session is the ephemeral state of one open builder view: the current
// draft, the active step, the last-rendered preview markup and the
// autosave indicator. It is the single source of truth for the live form
// and the completion estimator. The store survives the session and
// re-hydrates the next one.
type Session struct {
	mu sync.Mutex

	id      uuid.UUID
	shape   *draft.Shape
	store   store.Store
	backend Backend

	draft       draft.Draft
	nav         *Navigator
	template    string
	templates   []string
	previewHTML string

	saveStatus SaveStatus
	saveGen    uint64
	savedDelay time.Duration
	timer      func(d time.Duration, fn func())

	closed        bool
	notifications []Notification
}

// NewSession creates a session for one document shape. Call Hydrate before
// showing the form.
func NewSession(shape *draft.Shape, st store.Store, backend Backend, opts *Options) *Session {
	s := &Session{
		id:      uuid.New(),
		shape:   shape,
		store:   st,
		backend: backend,
		draft:   draft.New(shape),
		nav:     NewNavigator(shape.Steps),
	}
	s.savedDelay = 900 * time.Millisecond
	if shape == draft.CoverLetter {
		s.savedDelay = 800 * time.Millisecond
	}
	s.timer = func(d time.Duration, fn func()) { time.AfterFunc(d, fn) }
	if opts != nil {
		if opts.SavedDelay > 0 {
			s.savedDelay = opts.SavedDelay
		}
		if opts.Timer != nil {
			s.timer = opts.Timer
		}
	}
	return s
}

// ID returns the session identifier, used to tag log lines.
func (s *Session) ID() uuid.UUID { return s.id }

// Shape returns the document shape the session is building.
func (s *Session) Shape() *draft.Shape { return s.shape }

// Hydrate initializes the draft from the store and the remote profile, and
// loads the template list. Stored values win over remote defaults,
// key-by-key; a corrupt stored value falls back to shape defaults instead
// of failing. Remote failures are logged and skipped so the builder always
// opens.
func (s *Session) Hydrate(ctx context.Context) error {
	stored, ok, err := s.store.Get(ctx, s.shape.StorageKey)
	if err != nil {
		s.notify(LevelError, fmt.Sprintf("Could not read saved draft: %v", err))
		ok = false
	}

	var storedMap map[string]any
	if ok {
		if err := json.Unmarshal(stored, &storedMap); err != nil {
			log.Printf("[wizard] %s: corrupt stored draft, using defaults: %v", s.shape.Name, err)
			storedMap = nil
		}
	}

	var (
		gmu       sync.Mutex
		profile   map[string]any
		templates []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.backend.FetchProfile(gctx)
		if err != nil {
			log.Printf("[wizard] %s: profile fetch skipped: %v", s.shape.Name, err)
			return nil
		}
		gmu.Lock()
		profile = p
		gmu.Unlock()
		return nil
	})
	g.Go(func() error {
		t, err := s.backend.ListTemplates(gctx, s.shape)
		if err != nil {
			s.notify(LevelError, fmt.Sprintf("Could not load templates: %v", err))
			return nil
		}
		gmu.Lock()
		templates = t
		gmu.Unlock()
		return nil
	})
	_ = g.Wait()

	s.mu.Lock()
	d := draft.New(s.shape)
	if profile != nil {
		d = d.Overlay(profile)
	}
	if storedMap != nil {
		d = d.Overlay(storedMap)
	}
	s.draft = d
	s.templates = templates
	if s.template == "" && len(templates) > 0 {
		s.template = templates[0]
	}
	s.mu.Unlock()

	return s.persist(ctx)
}

// Draft returns the current draft snapshot.
func (s *Session) Draft() draft.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// SetField replaces one field value, persists the updated draft and starts
// the autosave indicator cycle. The write is synchronous; the later
// Saving→Saved flip is cosmetic only, and a newer edit invalidates any
// pending flip via the generation counter.
func (s *Session) SetField(ctx context.Context, name string, v draft.Value) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	next, err := s.draft.Set(name, v)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.draft = next
	s.saveStatus = SaveSaving
	s.saveGen++
	gen := s.saveGen
	s.mu.Unlock()

	if err := s.persist(ctx); err != nil {
		return err
	}

	s.timer(s.savedDelay, func() { s.flipSaved(gen) })
	return nil
}

// flipSaved completes the indicator cycle started by the matching edit.
// A stale generation means a newer edit superseded this one.
func (s *Session) flipSaved(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || gen != s.saveGen {
		return
	}
	if s.saveStatus == SaveSaving {
		s.saveStatus = SaveSaved
	}
}

// persist serializes the draft and writes it under the shape key.
func (s *Session) persist(ctx context.Context) error {
	s.mu.Lock()
	data, err := json.Marshal(s.draft)
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("wizard: serialize %s draft: %w", s.shape.Name, err)
	}
	if err := s.store.Set(ctx, s.shape.StorageKey, data); err != nil {
		s.notify(LevelError, fmt.Sprintf("Could not save draft: %v", err))
		return err
	}
	return nil
}

// SaveStatus returns the current autosave indicator state.
func (s *Session) SaveStatus() SaveStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveStatus
}

// Step returns the active step index.
func (s *Session) Step() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.Current()
}

// StepName returns the active step label.
func (s *Session) StepName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.CurrentName()
}

// Next advances one step; no-op at the last step.
func (s *Session) Next() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.Next()
}

// Back moves one step back; no-op at step 0.
func (s *Session) Back() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.Back()
}

// JumpTo moves to any valid step index.
func (s *Session) JumpTo(i int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.JumpTo(i)
}

// Templates returns the fetched template list in server order.
func (s *Session) Templates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.templates))
	copy(out, s.templates)
	return out
}

// Template returns the selected template.
func (s *Session) Template() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.template
}

// SetTemplate selects a template.
func (s *Session) SetTemplate(t string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.template = t
}

// PreviewHTML returns the last rendered preview markup, empty until the
// first successful preview.
func (s *Session) PreviewHTML() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.previewHTML
}

// SectionProgress returns the completion percentage for one named section.
func (s *Session) SectionProgress(name string) int {
	sec, ok := s.shape.Section(name)
	if !ok {
		return 0
	}
	return SectionProgress(sec.Fields, s.Draft())
}

// Progress returns the overall completion percentage.
func (s *Session) Progress() int {
	return OverallProgress(s.shape, s.Draft())
}

// GeneratePreview renders the current draft through the remote service and
// moves to the preview step. On failure the prior preview markup and the
// active step are left unchanged and an error notification is recorded.
// A response arriving after Close is discarded.
func (s *Session) GeneratePreview(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	template := s.template
	d := s.draft
	s.mu.Unlock()

	if template == "" {
		return ErrNoTemplate
	}

	if err := s.checkWire(d); err != nil {
		s.notify(LevelError, err.Error())
		return err
	}

	html, err := s.backend.Preview(ctx, s.shape, template, d)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	if err != nil {
		s.notifyLocked(LevelError, fmt.Sprintf("Preview failed: %v", err))
		return err
	}
	s.previewHTML = html
	_, _ = s.nav.JumpTo(s.shape.PreviewStep())
	return nil
}

// DownloadPDF renders the current draft to a PDF via the remote service
// and returns the bytes with the shape's fixed file name. On failure no
// file is produced and an error notification is recorded.
func (s *Session) DownloadPDF(ctx context.Context) ([]byte, string, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, "", ErrClosed
	}
	template := s.template
	d := s.draft
	s.mu.Unlock()

	if template == "" {
		return nil, "", ErrNoTemplate
	}

	if err := s.checkWire(d); err != nil {
		s.notify(LevelError, err.Error())
		return nil, "", err
	}

	pdf, err := s.backend.Download(ctx, s.shape, template, d)
	if err != nil {
		s.notify(LevelError, fmt.Sprintf("Download failed: %v", err))
		return nil, "", err
	}
	return pdf, s.shape.DownloadName, nil
}

// GenerateLetterBody asks the backend to write the letter body from the
// draft context and the user's instruction, then writes the generated text
// into letter_body wholesale, replacing any prior value.
func (s *Session) GenerateLetterBody(ctx context.Context, instruction string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	d := s.draft
	s.mu.Unlock()

	text, err := s.backend.GenerateBody(ctx, d, instruction)
	if err != nil {
		s.notify(LevelError, fmt.Sprintf("AI generation failed: %v", err))
		return err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()
	return s.SetField(ctx, "letter_body", draft.String(text))
}

// checkWire validates the serialized draft against the shape schema before
// it goes on the wire.
func (s *Session) checkWire(d draft.Draft) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("wizard: serialize %s draft: %w", s.shape.Name, err)
	}
	return draft.ValidateWire(s.shape, data)
}

// Close marks the session discarded. Responses from in-flight calls are
// dropped afterwards; the store keeps the draft for the next session.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// Notifications returns the recorded notifications, oldest first.
func (s *Session) Notifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

func (s *Session) notify(level Level, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifyLocked(level, msg)
}

func (s *Session) notifyLocked(level Level, msg string) {
	log.Printf("[wizard] %s: %s", s.shape.Name, msg)
	s.notifications = append(s.notifications, Notification{
		ID:      uuid.New(),
		Level:   level,
		Message: msg,
		Time:    time.Now(),
	})
}
