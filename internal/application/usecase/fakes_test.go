package usecase

import (
	"context"
	"sync"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
)

// fakeContext is an in-memory RenderingContext.
type fakeContext struct {
	mu sync.Mutex

	id       port.ContextID
	uri      string
	uriErr   error
	title    string
	titleErr error

	zooms       []float64
	zoomErr     error
	visible     bool
	loaded      []string
	reloads     int
	installErrs []error
	installs    int
	observeErr  error

	inputHandler func(port.InputEvent) bool
	onLoad       func()
	onTitle      func(string)

	events []string
}

func (c *fakeContext) record(ev string) {
	c.events = append(c.events, ev)
}

func (c *fakeContext) ID() port.ContextID { return c.id }

func (c *fakeContext) LoadURL(url string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = append(c.loaded, url)
	c.uri = url
	return nil
}

func (c *fakeContext) Reload() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reloads++
	return nil
}

func (c *fakeContext) URI() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.uri, c.uriErr
}

func (c *fakeContext) Title() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.title, c.titleErr
}

func (c *fakeContext) SetZoom(factor float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zooms = append(c.zooms, factor)
	return c.zoomErr
}

func (c *fakeContext) SetVisible(visible bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visible = visible
}

func (c *fakeContext) InstallInterception() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.installs++
	if len(c.installErrs) == 0 {
		return nil
	}
	err := c.installErrs[0]
	c.installErrs = c.installErrs[1:]
	return err
}

func (c *fakeContext) ForwardInput(handler func(port.InputEvent) bool) (func(), error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inputHandler = handler
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.inputHandler = nil
		c.record("input-off")
	}, nil
}

func (c *fakeContext) OnLoadFinished(fn func()) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onLoad = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.onLoad = nil
		c.record("load-off")
	}
}

func (c *fakeContext) ObserveTitle(fn func(string)) (func(), error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.observeErr != nil {
		return nil, c.observeErr
	}
	c.onTitle = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.onTitle = nil
		c.record("observer-off")
	}, nil
}

func (c *fakeContext) Detach() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.record("detach")
}

func (c *fakeContext) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.record("destroy")
}

// finishLoad fires the load-finished callback.
func (c *fakeContext) finishLoad() {
	c.mu.Lock()
	fn := c.onLoad
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// setTitle changes the document title and notifies the observer.
func (c *fakeContext) setTitle(title string, notify bool) {
	c.mu.Lock()
	c.title = title
	fn := c.onTitle
	c.mu.Unlock()
	if notify && fn != nil {
		fn(title)
	}
}

func (c *fakeContext) input(ev port.InputEvent) bool {
	c.mu.Lock()
	fn := c.inputHandler
	c.mu.Unlock()
	if fn == nil {
		return false
	}
	return fn(ev)
}

func (c *fakeContext) lastZoom() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.zooms) == 0 {
		return 0
	}
	return c.zooms[len(c.zooms)-1]
}

func (c *fakeContext) isVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

func (c *fakeContext) eventLog() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.events...)
}

// fakeFactory hands out fakeContexts, keyed by tab.
type fakeFactory struct {
	mu       sync.Mutex
	nextID   port.ContextID
	byTab    map[entity.TabID]*fakeContext
	err      error
	prepare  func(*fakeContext)
	creating []entity.TabID
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{byTab: make(map[entity.TabID]*fakeContext)}
}

func (f *fakeFactory) NewContext(_ context.Context, id entity.TabID) (port.RenderingContext, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creating = append(f.creating, id)
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	c := &fakeContext{id: f.nextID}
	if f.prepare != nil {
		f.prepare(c)
	}
	f.byTab[id] = c
	return c, nil
}

func (f *fakeFactory) context(id entity.TabID) *fakeContext {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byTab[id]
}

// titleRecorder collects UpdateTitle calls.
type titleRecorder struct {
	mu     sync.Mutex
	titles []string
}

func (r *titleRecorder) UpdateTitle(_ context.Context, _ entity.TabID, title string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.titles = append(r.titles, title)
}

func (r *titleRecorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.titles...)
}
