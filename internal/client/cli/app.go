package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/avanags/fitpulse/internal/client/api"
	"github.com/avanags/fitpulse/internal/client/config"
	"github.com/avanags/fitpulse/internal/client/metrics"
	"github.com/avanags/fitpulse/internal/client/models"
	"github.com/avanags/fitpulse/internal/client/session"
	"github.com/avanags/fitpulse/internal/client/store"
	"github.com/avanags/fitpulse/internal/client/sync"
	"github.com/avanags/fitpulse/internal/logging"
)

type App struct {
	config  *config.Config
	session *session.Manager
	store   *store.SQLiteStore

	workouts  *sync.Controller[models.Workout]
	dietPlans *sync.Controller[models.DietPlan]
	sleep     *sync.Controller[models.SleepEntry]
	analytics *metrics.Presenter

	reader *bufio.Reader
	log    logging.Logger
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	st, err := store.Open(ctx, c.TokenDBPath)
	if err != nil {
		return nil, err
	}

	sess := session.NewManager(st, log)

	// The transport stays free of navigation concerns: it only fires this
	// callback, and the session plus the REPL decide what "redirect to
	// login" means here.
	onUnauthorized := func() {
		sess.HandleUnauthorized()
		fmt.Println("Session expired. Please log in again.")
	}

	apiClient := api.New(c.ServerBaseURL, sess, onUnauthorized, log)
	sess.Bind(apiClient)

	app := &App{
		config:  c,
		session: sess,
		store:   st,
		reader:  bufio.NewReader(os.Stdin),
		log:     log,
	}

	app.workouts = sync.NewWorkouts(apiClient, app.printNotice, log)
	app.dietPlans = sync.NewDietPlans(apiClient, app.printNotice, log)
	app.sleep = sync.NewSleepEntries(apiClient, app.printNotice, log)
	app.analytics = metrics.NewPresenter(apiClient)

	return app, nil
}

func (a *App) printNotice(n sync.Notice) {
	if n.Kind == sync.NoticeSuccess {
		fmt.Println("OK:", n.Message)
	} else {
		fmt.Println("ERROR:", n.Message)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) status() string {
	if user := a.session.User(); user != nil {
		return user.Email()
	}
	return "anonymous"
}

// Run restores the session (every screen blocks on this settling), then
// hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()

	a.session.Restore(ctx)
	if a.isLoggedIn() {
		fmt.Printf("Welcome back, %s!\n", a.session.User().Name())
	}

	runREPL(ctx, a, a.status, a.reader)
}
