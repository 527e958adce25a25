// Package explorer implements the character discovery pipeline: debounced
// free-text search, intersection tag filtering and pagination over the
// upstream character search endpoint.
package explorer

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/characterhub/characterhub/client"
	"github.com/characterhub/characterhub/core"
)

var tracer = otel.Tracer("explorer")

const (
	// DefaultDebounce is the input inactivity window before a filter change
	// turns into a request.
	DefaultDebounce = 300 * time.Millisecond

	// PageSize is fixed; the upstream derives page math from it.
	PageSize = 8
)

// Snapshot is an immutable view of the pipeline for rendering.
type Snapshot struct {
	Characters   []core.Character
	Query        string
	SelectedTags []core.CharacterTag
	Page         int
	TotalPages   int
	Loading      bool
	Err          string
}

// HasNext reports whether the next-page control should be enabled.
func (s Snapshot) HasNext() bool {
	return s.Page < s.TotalPages
}

// HasPrev reports whether the previous-page control should be enabled.
func (s Snapshot) HasPrev() bool {
	return s.Page > 1
}

// Option configures an Explorer.
type Option func(*Explorer)

// WithDebounce overrides the debounce window. Tests use a short one.
func WithDebounce(d time.Duration) Option {
	return func(e *Explorer) {
		e.wait = d
	}
}

// WithObserver registers a callback invoked with a fresh Snapshot whenever
// the pipeline state changes.
func WithObserver(fn func(Snapshot)) Option {
	return func(e *Explorer) {
		e.observer = fn
	}
}

// Explorer drives the explore view. All mutating entry points are safe for
// concurrent use; fetches run on their own goroutines and stale responses
// (an earlier request resolving after a later one) are discarded by sequence
// number.
type Explorer struct {
	client   client.Client
	source   client.TokenSource
	wait     time.Duration
	observer func(Snapshot)

	mu         sync.Mutex
	query      string
	selected   []core.CharacterTag
	page       int
	totalPages int
	characters []core.Character
	loading    bool
	errMsg     string
	expanded   bool
	seq        uint64
	timer      *time.Timer
}

// New creates an Explorer over the given upstream client and token source.
func New(cli client.Client, source client.TokenSource, opts ...Option) *Explorer {
	e := &Explorer{
		client:     cli,
		source:     source,
		wait:       DefaultDebounce,
		page:       1,
		totalPages: 1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetQuery updates the free-text search. The fetch is debounced and resets
// pagination to the first page.
func (e *Explorer) SetQuery(ctx context.Context, query string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.query == query {
		return
	}
	e.query = query
	e.scheduleLocked(ctx)
}

// SelectTag adds a tag to the filter set. Filtering is an intersection:
// every selected tag must be carried by a character for it to match. Adding
// a tag collapses the expanded facet window.
func (e *Explorer) SelectTag(ctx context.Context, tag core.CharacterTag) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, t := range e.selected {
		if t.ID == tag.ID {
			return
		}
	}
	e.selected = append(e.selected, tag)
	e.expanded = false
	e.scheduleLocked(ctx)
}

// DeselectTag removes a tag from the filter set.
func (e *Explorer) DeselectTag(ctx context.Context, tagID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	kept := e.selected[:0]
	removed := false
	for _, t := range e.selected {
		if t.ID == tagID {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	if !removed {
		return
	}
	e.selected = kept
	e.scheduleLocked(ctx)
}

// NextPage advances one page and fetches immediately, without debounce.
// Returns false when already on the last page.
func (e *Explorer) NextPage(ctx context.Context) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.page >= e.totalPages {
		return false
	}
	e.page++
	e.dispatchLocked(ctx)
	return true
}

// PrevPage goes back one page and fetches immediately. Returns false when
// already on the first page.
func (e *Explorer) PrevPage(ctx context.Context) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.page <= 1 {
		return false
	}
	e.page--
	e.dispatchLocked(ctx)
	return true
}

// Refresh re-runs the current filter combination immediately.
func (e *Explorer) Refresh(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dispatchLocked(ctx)
}

// Close stops any pending debounce timer. In-flight fetches finish on their
// own and are discarded if stale.
func (e *Explorer) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

// Snapshot returns a copy of the current state.
func (e *Explorer) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Explorer) snapshotLocked() Snapshot {
	characters := make([]core.Character, len(e.characters))
	copy(characters, e.characters)
	selected := make([]core.CharacterTag, len(e.selected))
	copy(selected, e.selected)

	return Snapshot{
		Characters:   characters,
		Query:        e.query,
		SelectedTags: selected,
		Page:         e.page,
		TotalPages:   e.totalPages,
		Loading:      e.loading,
		Err:          e.errMsg,
	}
}

// scheduleLocked (re)arms the debounce timer. Whichever filter change fires
// last wins the window; the eventual fetch always starts from page 1 so a
// narrowed filter can never show an out-of-range page.
func (e *Explorer) scheduleLocked(ctx context.Context) {
	if e.timer != nil {
		e.timer.Stop()
	}
	e.timer = time.AfterFunc(e.wait, func() {
		e.mu.Lock()
		e.page = 1
		e.dispatchLocked(ctx)
		e.mu.Unlock()
	})
}

// dispatchLocked starts a fetch for the current state. The sequence number
// taken here decides later whether the response is still relevant.
func (e *Explorer) dispatchLocked(ctx context.Context) {
	e.seq++
	seq := e.seq
	e.loading = true
	e.errMsg = ""

	query := client.SearchQuery{
		Page:  e.page,
		Limit: PageSize,
		Name:  e.query,
	}
	for _, tag := range e.selected {
		query.TagIDs = append(query.TagIDs, tag.ID)
	}

	go e.fetch(ctx, seq, query)
	go e.notifyObserver()
}

func (e *Explorer) fetch(ctx context.Context, seq uint64, query client.SearchQuery) {
	ctx, span := tracer.Start(ctx, "Explorer.Fetch")
	defer span.End()

	var response core.CharactersResponse
	token, err := e.source.Token(ctx)
	if err == nil {
		response, err = e.client.SearchCharacters(ctx, token, query)
	}

	e.mu.Lock()
	if seq < e.seq {
		// a newer request was dispatched while this one was in flight
		e.mu.Unlock()
		return
	}
	e.loading = false
	if err != nil {
		span.RecordError(err)
		e.errMsg = "Failed to fetch characters"
	} else {
		e.characters = response.Characters
		e.totalPages = totalPages(response.Total)
		if e.page > e.totalPages {
			e.page = e.totalPages
		}
	}
	e.mu.Unlock()

	e.notifyObserver()
}

func (e *Explorer) notifyObserver() {
	if e.observer == nil {
		return
	}
	e.observer(e.Snapshot())
}

// totalPages is ceil(total/PageSize), never below 1 so the pager always has
// a valid current page.
func totalPages(total int) int {
	pages := (total + PageSize - 1) / PageSize
	if pages < 1 {
		return 1
	}
	return pages
}
