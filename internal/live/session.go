package live

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/page"
	"github.com/Zachkp/portfolio/internal/view"
)

// Conn is the part of a websocket connection a session needs.
// *websocket.Conn satisfies it.
type Conn interface {
	ReadJSON(v any) error
	WriteJSON(v any) error
	Close() error
}

// NewUpgrader returns a websocket upgrader that accepts the given origins.
// An empty list or "*" accepts any origin.
func NewUpgrader(origins []string) *websocket.Upgrader {
	allowed := map[string]bool{}
	for _, o := range origins {
		allowed[strings.TrimRight(o, "/")] = true
	}
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" || len(allowed) == 0 || allowed["*"] {
				return true
			}
			if allowed[origin] {
				return true
			}
			// Same host is always fine.
			return strings.TrimPrefix(strings.TrimPrefix(origin, "https://"), "http://") == r.Host
		},
	}
}

// Session drives one page.Page for one connection. Events from the browser
// and timer callbacks are funnelled onto a single loop goroutine, so the page
// never sees concurrent calls.
type Session struct {
	conn    Conn
	content *content.Content
	storage page.Storage
	page    *page.Page

	loop     chan func()
	done     chan struct{}
	doneOnce sync.Once

	// Owned by the loop goroutine.
	ids          map[string]bool
	observers    map[string]func(bool)
	scrollFns    map[int]func(float64)
	nextScrollID int
	closing      bool
	err          error

	noticeOnMount bool
}

// NewSession builds a session over conn. The theme is read from and written
// to storage. cfg must already carry the content's taglines and sections.
func NewSession(conn Conn, c *content.Content, storage page.Storage, cfg page.Config) *Session {
	s := &Session{
		conn:      conn,
		content:   c,
		storage:   storage,
		loop:      make(chan func()),
		done:      make(chan struct{}),
		ids:       make(map[string]bool, len(content.SectionIDs)),
		observers: map[string]func(bool){},
		scrollFns: map[int]func(float64){},
	}
	for _, id := range content.SectionIDs {
		s.ids[id] = true
	}
	s.page = page.New(s, cfg)
	s.page.OnChange(s.render)
	return s
}

// ShowNoticeOnMount makes the session take over a contact notice the page
// was served with, hiding it once the notice duration elapses. It must be
// called before Run.
func (s *Session) ShowNoticeOnMount() { s.noticeOnMount = true }

// Page returns the session's page. It must only be touched from the loop.
func (s *Session) Page() *page.Page { return s.page }

// Run mounts the page and serves events until the connection closes or ctx
// is cancelled. The page is unmounted and the connection closed on return.
func (s *Session) Run(ctx context.Context) error {
	events := make(chan Event)
	readErr := make(chan error, 1)
	go func() {
		for {
			var ev Event
			if err := s.conn.ReadJSON(&ev); err != nil {
				readErr <- err
				return
			}
			select {
			case events <- ev:
			case <-s.done:
				return
			}
		}
	}()

	defer s.shutdown()
	s.page.Mount()
	if s.noticeOnMount {
		s.page.ShowNotice()
	}

	for s.err == nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("reading event: %w", err)
		case ev := <-events:
			s.Handle(ev)
		case fn := <-s.loop:
			fn()
		}
	}
	return s.err
}

func (s *Session) shutdown() {
	s.doneOnce.Do(func() { close(s.done) })
	s.closing = true
	s.page.Unmount()
	s.conn.Close()
}

// Handle applies one browser event to the page.
func (s *Session) Handle(ev Event) {
	switch ev.Type {
	case EventScroll:
		for _, fn := range s.scrollFns {
			fn(ev.Offset)
		}
	case EventIntersect:
		if fn, ok := s.observers[ev.Target]; ok {
			fn(ev.Intersecting)
		}
	case EventToggleTheme:
		s.page.ToggleTheme()
	case EventToggleLanguage:
		s.page.ToggleLanguage()
	case EventToggleMenu:
		s.page.ToggleMenu()
	case EventNavigate:
		if !s.page.GoToSection(ev.Target) {
			log.Printf("live: navigate to unknown section %q", ev.Target)
		}
	case EventScrollTop:
		s.page.ScrollToTop()
	case EventInput:
		s.page.SetContactField(ev.Target, ev.Value)
	case EventContact:
		s.page.SetContactField(page.FieldName, ev.Name)
		s.page.SetContactField(page.FieldEmail, ev.Email)
		s.page.SetContactField(page.FieldMessage, ev.Message)
		s.page.SubmitContact()
	default:
		log.Printf("live: ignoring unknown event %q", ev.Type)
	}
}

// render turns a page change into DOM operations.
func (s *Session) render(c page.Change) {
	st := s.page.State()
	switch c.Kind {
	case page.ChangeLanguage:
		var b strings.Builder
		if err := view.Render(&b, view.App(s.content, st)); err != nil {
			log.Printf("live: rendering page: %v", err)
			return
		}
		s.send(Op{Op: OpAttr, Target: view.RootID, Name: "lang", Value: string(st.Language)})
		s.send(Op{Op: OpHTML, Target: view.AppID, Value: b.String()})
	case page.ChangeMenu:
		s.toggleClass(view.MenuID, view.HiddenClass, !st.MenuOpen)
	case page.ChangeBackToTop:
		s.toggleClass(view.BackToTopID, view.HiddenClass, !st.ShowBackToTop)
	case page.ChangeSection:
		s.toggleClass(c.Section, view.InViewClass, st.SectionVisible(c.Section))
	case page.ChangeTagline:
		s.send(Op{Op: OpText, Target: view.TaglineID, Value: view.Tagline(s.content, st)})
	case page.ChangeContact:
		if st.NoticeVisible {
			s.send(Op{Op: OpResetForm, Target: view.ContactFormID})
		}
		s.toggleClass(view.NoticeID, view.HiddenClass, !st.NoticeVisible)
	}
}

func (s *Session) toggleClass(target, class string, on bool) {
	op := OpClassRemove
	if on {
		op = OpClassAdd
	}
	s.send(Op{Op: op, Target: target, Class: class})
}

// send writes op to the browser. The first write error stops the loop.
func (s *Session) send(op Op) {
	if s.err != nil || s.closing {
		return
	}
	if err := s.conn.WriteJSON(op); err != nil {
		s.err = fmt.Errorf("writing %s: %w", op.Op, err)
	}
}

// post runs fn on the loop unless t is stopped first.
func (s *Session) post(t *loopTimer, fn func()) {
	select {
	case s.loop <- func() {
		if !t.Stopped() {
			fn()
		}
	}:
	case <-t.stop:
	case <-s.done:
	}
}

func (s *Session) Every(d time.Duration, fn func()) page.Timer {
	t := newLoopTimer()
	go func() {
		tick := time.NewTicker(d)
		defer tick.Stop()
		for {
			select {
			case <-tick.C:
				s.post(t, fn)
			case <-t.stop:
				return
			case <-s.done:
				return
			}
		}
	}()
	return t
}

func (s *Session) After(d time.Duration, fn func()) page.Timer {
	t := newLoopTimer()
	t.timer = time.AfterFunc(d, func() { s.post(t, fn) })
	return t
}

// loopTimer is a page.Timer whose callbacks run on the session loop. Stop
// called from the loop guarantees the callback does not run afterwards.
type loopTimer struct {
	stop  chan struct{}
	once  sync.Once
	timer *time.Timer
}

func newLoopTimer() *loopTimer {
	return &loopTimer{stop: make(chan struct{})}
}

func (t *loopTimer) Stop() {
	t.once.Do(func() {
		close(t.stop)
		if t.timer != nil {
			t.timer.Stop()
		}
	})
}

func (t *loopTimer) Stopped() bool {
	select {
	case <-t.stop:
		return true
	default:
		return false
	}
}
