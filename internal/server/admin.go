package server

import (
	"crypto/subtle"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"

	"github.com/Zachkp/portfolio/internal/view"
)

const (
	adminCookie        = "admin_token"
	defaultAdminUser   = "admin"
	defaultAdminPass   = "admin123"
	recentVisitorLimit = 50
)

func html(c *gin.Context, status int, n g.Node) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := view.Render(c.Writer, n); err != nil {
		log.Printf("server: rendering: %v", err)
	}
}

// adminCredentials falls back to development defaults, loudly in debug mode.
func (s *Server) adminCredentials() (user, pass string) {
	user, pass = s.cfg.AdminUsername, s.cfg.AdminPassword
	if user == "" {
		user = defaultAdminUser
		if gin.Mode() == gin.DebugMode {
			log.Println("WARNING: Using default admin username. Set PORTFOLIO_ADMIN_USERNAME.")
		}
	}
	if pass == "" {
		pass = defaultAdminPass
		if gin.Mode() == gin.DebugMode {
			log.Println("WARNING: Using default admin password. Set PORTFOLIO_ADMIN_PASSWORD.")
		}
	}
	return user, pass
}

func (s *Server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) setupAdminRoutes(r *gin.Engine) {
	r.GET("/privacy", func(c *gin.Context) {
		html(c, http.StatusOK, view.PrivacyPage())
	})

	r.GET("/admin/login", func(c *gin.Context) {
		html(c, http.StatusOK, view.LoginPage(""))
	})

	r.POST("/admin/login", func(c *gin.Context) {
		user, pass := s.adminCredentials()
		userOK := subtle.ConstantTimeCompare([]byte(c.PostForm("username")), []byte(user)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(c.PostForm("password")), []byte(pass)) == 1
		if !userOK || !passOK {
			log.Printf("server: failed admin login from %s", s.tracker.HashIP(c.ClientIP()))
			html(c, http.StatusUnauthorized, view.LoginPage("Invalid credentials"))
			return
		}
		c.SetCookie(adminCookie, s.adminToken, 3600*24, "/admin", "", false, true)
		log.Printf("server: admin login from %s", s.tracker.HashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin")
	admin.Use(s.adminAuth())

	admin.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.tracker.Stats(s.cfg.StorageKey, recentVisitorLimit)
		if err != nil {
			log.Printf("server: loading admin stats: %v", err)
			html(c, http.StatusInternalServerError, view.ErrorPage("Failed to load statistics"))
			return
		}
		html(c, http.StatusOK, view.DashboardPage(stats))
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.tracker.Stats(s.cfg.StorageKey, recentVisitorLimit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.tracker.Stats(s.cfg.StorageKey, recentVisitorLimit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=portfolio-stats.json")
		log.Printf("server: stats exported by %s", s.tracker.HashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})

	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		removed, err := s.tracker.Cleanup(s.cfg.VisitorRetention)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"removed": removed})
	})
}
