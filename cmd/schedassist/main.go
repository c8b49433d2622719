package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/schedassist/cli/internal/calendar"
	"github.com/schedassist/cli/internal/gateway"
	"github.com/schedassist/cli/internal/refresh"
	"github.com/schedassist/cli/internal/service"
	"github.com/schedassist/cli/internal/session"
	"github.com/schedassist/cli/internal/view"
	"github.com/schedassist/cli/pkg/config"
	appErrors "github.com/schedassist/cli/pkg/errors"
	"github.com/schedassist/cli/pkg/logger"
)

// termIndicator is the blocking busy indicator for the terminal. It is
// visible for the whole duration of a request and cleared on success and
// failure alike.
type termIndicator struct{}

func (termIndicator) Start() { fmt.Fprint(os.Stderr, "loading...") }
func (termIndicator) Stop()  { fmt.Fprint(os.Stderr, "\r\033[K") }

type app struct {
	cfg         *config.Config
	logger      *zap.Logger
	sessions    *session.Store
	router      *view.Router
	renderer    *view.Renderer
	controller  *view.Controller
	auth        *service.AuthService
	dispatcher  *view.Dispatcher
	prompt      *prompter
	quitRequest bool
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	a := newApp(cfg, logr)
	a.run(context.Background())
}

func newApp(cfg *config.Config, logr *zap.Logger) *app {
	sessions := session.NewStore(cfg.Session.TokenPath, logr)
	sessions.Load()

	renderer := view.NewRenderer(os.Stdout)
	router := view.NewRouter(logr)

	gw := gateway.NewClient(cfg.APIBase, sessions, logr,
		gateway.WithIndicator(termIndicator{}),
		gateway.WithTimeout(cfg.HTTP.Timeout),
		gateway.WithAuthFailureHook(func() {
			sessions.Clear()
			router.ShowLoggedOut()
			renderer.Message("Session expired. Please log in again.")
		}),
	)

	validate := validator.New()
	prompt := &prompter{in: bufio.NewReader(os.Stdin), out: os.Stdout}

	auth := service.NewAuthService(gw, sessions, validate, logr)
	assignments := service.NewAssignmentService(gw, validate, logr)
	classes := service.NewClassService(gw, validate, logr)
	meetings := service.NewMeetingService(gw, validate, logr)
	studyBlocks := service.NewStudyBlockService(gw, logr)
	preferences := service.NewPreferenceService(gw, validate, logr)
	adapter := calendar.NewAdapter(gw, logr)

	coordinator := refresh.NewCoordinator(logr)
	controller := view.NewController(router, coordinator, renderer, prompt,
		assignments, classes, meetings, studyBlocks, preferences, adapter, logr)

	a := &app{
		cfg:        cfg,
		logger:     logr,
		sessions:   sessions,
		router:     router,
		renderer:   renderer,
		controller: controller,
		auth:       auth,
		dispatcher: view.NewDispatcher(),
		prompt:     prompt,
	}
	a.registerCommands()
	return a
}

func (a *app) run(ctx context.Context) {
	if a.sessions.Token() != "" {
		if user, err := a.auth.CheckAuth(ctx); err == nil {
			a.enterDashboard(ctx, user.Username)
		} else {
			a.router.ShowLoggedOut()
		}
	}

	if a.router.Page() == view.PageLoggedOut {
		a.renderer.Message("Welcome to schedassist. Type \"login\", \"register\" or \"help\".")
	}

	for !a.quitRequest {
		line, err := a.prompt.readLine(a.promptLabel())
		if err != nil {
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if err := a.dispatcher.Dispatch(ctx, fields[0], fields[1:]); err != nil {
			a.showError(err)
		}
	}
}

func (a *app) promptLabel() string {
	if a.router.Page() == view.PageDashboard {
		return fmt.Sprintf("[%s] > ", a.router.Active())
	}
	return "> "
}

// enterDashboard is the loggedOut -> dashboard(calendar) transition:
// calendar view activates and loads, preferences load, and the public
// booking link is shown.
func (a *app) enterDashboard(ctx context.Context, username string) {
	a.renderer.Message("Logged in as " + username)
	a.renderer.Message("Booking link: " + view.BookingLink(a.cfg.Booking.Origin, username))
	a.router.ShowDashboard(ctx)
	if err := a.controller.LoadSettings(ctx); err != nil {
		a.logger.Warn("failed to load preferences", zap.Error(err))
	}
}

// showError renders failures by kind: connection errors point at the
// network, validation errors carry the server's detail message inline.
func (a *app) showError(err error) {
	e := appErrors.FromError(err)
	switch {
	case appErrors.IsConnection(err):
		a.renderer.Message("Connection error. Is the backend running?")
	case appErrors.IsAuthFailure(err):
		// Session teardown already happened in the gateway hook.
	default:
		a.renderer.Message("Error: " + e.Message)
	}
}
