// Package web serves the server-rendered fleet pages. Every page is built
// from a request-scoped struct and rendered through embedded templates.
package web

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"go.uber.org/zap"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/middleware"
	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
	appErrors "github.com/SemykinG/DigitalTwin-DigiSalama/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

// Chrome is the navigation context shared by every page.
type Chrome struct {
	Title string
	Base  string
	User  string
}

type errorPage struct {
	Chrome
	Status     int
	StatusText string
	Message    string
	Back       string
}

type section interface {
	path() string
	register(group *gin.RouterGroup, srv *Server, read, write gin.HandlerFunc)
}

// Server renders the pages of every registered entity section.
type Server struct {
	base     string
	tmpl     *template.Template
	logger   *zap.Logger
	login    loginService
	tokens   middleware.TokenValidator
	authOn   bool
	sections []section
}

// Config wires a Server.
type Config struct {
	// Base is the URL prefix of every page, e.g. /api1.
	Base        string
	AuthEnabled bool
	Tokens      middleware.TokenValidator
	Login       loginService
	Logger      *zap.Logger
}

// NewServer parses the embedded templates.
func NewServer(cfg Config) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		base:     strings.TrimRight(cfg.Base, "/"),
		tmpl:     tmpl,
		logger:   logger,
		login:    cfg.Login,
		tokens:   cfg.Tokens,
		authOn:   cfg.AuthEnabled,
	}, nil
}

// Add mounts entity sections, each under base/<plural>.
func (s *Server) Add(sections ...section) *Server {
	s.sections = append(s.sections, sections...)
	return s
}

// Register mounts every page route on r.
func (s *Server) Register(r gin.IRouter) {
	root := r.Group(s.base)
	if s.login != nil {
		root.GET("/login", s.loginForm)
		root.POST("/login", s.loginSubmit)
		root.POST("/logout", s.logout)
	}

	guarded := root.Group("", middleware.JWTWithFailure(s.tokens, s.authOn, s.fail))
	read := middleware.RequireRolesWithFailure(s.fail, models.AllRoles...)
	write := middleware.RequireRolesWithFailure(s.fail, models.AdminRoles...)
	guarded.GET("", func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, s.base+"/vehicles")
	})
	for _, sec := range s.sections {
		sec.register(guarded.Group("/"+sec.path()), s, read, write)
	}
}

func (s *Server) chrome(c *gin.Context, title string) Chrome {
	chrome := Chrome{Title: title, Base: s.base}
	if claims := middleware.ClaimsFrom(c); claims != nil {
		chrome.User = claims.Email
	}
	return chrome
}

func (s *Server) render(c *gin.Context, status int, name string, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Render(status, render.HTML{Template: s.tmpl, Name: name, Data: data})
}

// fail renders the error page. Unauthenticated page visits go to sign in.
func (s *Server) fail(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	if appErr.Status == http.StatusUnauthorized && s.login != nil {
		c.Redirect(http.StatusSeeOther, s.base+"/login")
		return
	}
	s.failWith(c, appErr.Status, appErr.Message)
}

func (s *Server) failWith(c *gin.Context, status int, message string) {
	back := c.Request.Referer()
	if back == "" {
		back = s.base
	}
	s.render(c, status, "error", errorPage{
		Chrome:     s.chrome(c, http.StatusText(status)),
		Status:     status,
		StatusText: http.StatusText(status),
		Message:    message,
		Back:       back,
	})
}
