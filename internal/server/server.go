// Package server serves the portfolio page, its live websocket and the
// admin dashboard over gin.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/live"
	"github.com/Zachkp/portfolio/internal/page"
	"github.com/Zachkp/portfolio/internal/store"
	"github.com/Zachkp/portfolio/internal/view"
)

//go:embed static
var staticFiles embed.FS

const (
	visitorCookie = "visitor_id"
	visitorMaxAge = 365 * 24 * 3600
	livePath      = "/ws"
)

// Server holds everything the handlers share.
type Server struct {
	cfg      *config.Config
	db       *store.DB
	tracker  *store.Tracker
	upgrader *websocket.Upgrader
	content  atomic.Pointer[content.Content]
	sessions sync.WaitGroup

	adminToken string
	track      func(ip, userAgent, path string)
}

// New builds a server over an open database.
func New(cfg *config.Config, db *store.DB, c *content.Content) *Server {
	s := &Server{
		cfg:        cfg,
		db:         db,
		tracker:    store.NewTracker(db),
		upgrader:   live.NewUpgrader(cfg.AllowOrigins),
		adminToken: store.NewToken(),
	}
	s.content.Store(c)
	s.track = func(ip, userAgent, path string) {
		go func() {
			if err := s.tracker.Track(ip, userAgent, path); err != nil {
				log.Printf("server: %v", err)
			}
		}()
	}
	return s
}

// Content returns the content currently served.
func (s *Server) Content() *content.Content { return s.content.Load() }

// SetContent swaps the served content. Open live sessions keep the content
// they started with.
func (s *Server) SetContent(c *content.Content) { s.content.Store(c) }

// Handler returns the gin engine with every route registered.
func (s *Server) Handler() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(cors.New(s.corsConfig()))
	r.Use(s.visitorTracking())

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		log.Fatalf("server: static files: %v", err)
	}
	r.StaticFS("/static", http.FS(static))
	r.Static("/assets", s.cfg.AssetsDir)

	r.GET("/", s.handleIndex)
	r.GET(livePath, s.handleLive)
	r.POST("/contact", s.handleContact)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.setupAdminRoutes(r)
	return r
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(s.cfg.AllowOrigins) == 0 {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = s.cfg.AllowOrigins
	}
	return cfg
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully and waits
// for open live sessions to end. Old visit records are cleaned up in the
// background on start.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	go func() {
		if _, err := s.tracker.Cleanup(s.cfg.VisitorRetention); err != nil {
			log.Printf("server: %v", err)
		}
	}()

	if s.cfg.ContentFile != "" {
		go func() {
			if err := content.Watch(ctx, s.cfg.ContentFile, s.SetContent); err != nil {
				log.Printf("server: content reload disabled: %v", err)
			}
		}()
	}

	// Live sessions run on hijacked connections that Shutdown does not
	// close; they end when their request context, derived from ctx, does.
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	errc := make(chan error, 1)
	go func() {
		log.Printf("server: listening on %s", ln.Addr())
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	done := make(chan struct{})
	go func() {
		s.sessions.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-shutdownCtx.Done():
		return fmt.Errorf("waiting for live sessions: %w", shutdownCtx.Err())
	}
}

// visitorID returns the visitor cookie value. A request without a valid one
// gets a fresh id and the cookie that carries it.
func (s *Server) visitorID(c *gin.Context) (string, *http.Cookie) {
	if id, err := c.Cookie(visitorCookie); err == nil {
		if _, err := uuid.Parse(id); err == nil {
			return id, nil
		}
	}
	id := uuid.NewString()
	return id, &http.Cookie{
		Name:     visitorCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   visitorMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (s *Server) themeStore(visitor string) page.ThemeStore {
	return page.NewStorageThemeStore(s.db.ForVisitor(visitor), s.cfg.StorageKey)
}

func (s *Server) handleIndex(c *gin.Context) {
	visitor, cookie := s.visitorID(c)
	if cookie != nil {
		http.SetCookie(c.Writer, cookie)
	}

	ct := s.Content()
	st := page.InitialState(s.themeStore(visitor), ct.Taglines())
	opts := view.Options{LiveURL: livePath, NoticeDuration: s.cfg.NoticeDuration}
	if c.Query("sent") == "1" {
		st.NoticeVisible = true
		opts.LiveURL += "?sent=1"
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := view.Render(c.Writer, view.Document(ct, st, opts)); err != nil {
		log.Printf("server: rendering page: %v", err)
	}
}

func (s *Server) handleLive(c *gin.Context) {
	s.sessions.Add(1)
	defer s.sessions.Done()

	visitor, cookie := s.visitorID(c)
	header := http.Header{}
	if cookie != nil {
		header.Add("Set-Cookie", cookie.String())
	}

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, header)
	if err != nil {
		log.Printf("server: websocket upgrade: %v", err)
		return
	}

	ct := s.Content()
	cfg := ct.PageConfig(s.cfg.PageConfig(), s.cfg.VisibilityThreshold)
	session := live.NewSession(conn, ct, s.db.ForVisitor(visitor), cfg)
	if c.Query("sent") == "1" {
		session.ShowNoticeOnMount()
	}
	if err := session.Run(c.Request.Context()); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("server: live session %s: %v", visitor[:8], err)
	}
}

// handleContact serves the contact form when scripts are off. The submission
// is logged and the visitor sent back to the page with the notice showing.
func (s *Server) handleContact(c *gin.Context) {
	fields := page.ContactFields{
		Name:    c.PostForm(page.FieldName),
		Email:   c.PostForm(page.FieldEmail),
		Message: c.PostForm(page.FieldMessage),
	}
	log.Printf("server: contact form submitted by %q <%s> (%d chars)", fields.Name, fields.Email, len(fields.Message))

	if strings.Contains(c.GetHeader("Accept"), "application/json") {
		c.JSON(http.StatusOK, gin.H{"status": "sent"})
		return
	}
	c.Redirect(http.StatusSeeOther, "/?sent=1#"+content.SectionContact)
}

// visitorTracking records page views with hashed IPs. Static files, the
// websocket, admin pages and Do Not Track requests are skipped.
func (s *Server) visitorTracking() gin.HandlerFunc {
	skip := []string{"/static/", "/assets/", "/admin/", "/favicon", "/privacy", "/healthz", livePath}
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range skip {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}
		if c.Request.Method != http.MethodGet || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}
		s.track(c.ClientIP(), c.GetHeader("User-Agent"), path)
		c.Next()
	}
}
