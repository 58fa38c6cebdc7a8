package echoapi

import (
	"context"
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/pkg/errors"

	"github.com/trezcool/genmo/core"
	"github.com/trezcool/genmo/core/content"
)

type (
	Options struct {
		Address        string
		Debug          bool
		TestMode       bool
		DisableReqLogs bool
		AppName        string
	}

	Deps struct {
		Store      *content.Store
		Validate   *validator.Validate
		Translator ut.Translator
		Logger     core.Logger
	}

	Server struct {
		opts           *Options
		deps           *Deps
		app            *echo.Echo
		signalShutdown func()
	}
)

// NewServer builds the API. signalShutdown, if set, is called when a handler hits a core.shutdown error.
func NewServer(opts *Options, deps *Deps, signalShutdown func()) *Server {
	s := &Server{
		opts:           opts,
		deps:           deps,
		app:            echo.New(),
		signalShutdown: signalShutdown,
	}
	s.setup()
	return s
}

func (s *Server) setup() {
	s.app.HideBanner = true
	s.app.HidePort = true

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(s.opts.Debug || s.opts.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.signalShutdown)
	s.app.Debug = s.opts.Debug && !s.opts.TestMode

	s.app.GET("/", s.home)

	v1 := s.app.Group("/v1")
	registerClientAPI(v1, s.deps.Store, s.deps.Validate)
	registerSkillAPI(v1, s.deps.Store, s.deps.Validate)
	registerModuleAPI(v1, s.deps.Store, s.deps.Validate)
	registerLessonAPI(v1, s.deps.Store, s.deps.Validate)
	registerQuizAPI(v1, s.deps.Store, s.deps.Validate)
	registerDashboardAPI(v1, s.deps.Store)
}

// Start listens until Stop is called. It returns nil after a clean shutdown.
func (s *Server) Start() error {
	s.deps.Logger.Info("API listening", "address", s.opts.Address)
	if err := s.app.Start(s.opts.Address); err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, "starting server")
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func (s *Server) home(ctx echo.Context) error {
	name := s.opts.AppName
	if name == "" {
		name = "GenMo"
	}
	return ctx.String(http.StatusOK, "Welcome to "+name+" API!")
}
