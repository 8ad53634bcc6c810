package sync

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avanags/fitpulse/internal/client/api"
	"github.com/avanags/fitpulse/internal/client/models"
	"github.com/avanags/fitpulse/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type staticCreds struct{ token string }

func (s *staticCreds) Token() string { return s.token }
func (s *staticCreds) ClearToken()   {}

// workoutServer is a minimal in-memory workout API used by controller tests.
type workoutServer struct {
	mu       sync.Mutex
	items    []models.Workout
	nextID   int
	requests []string // "METHOD path"
	failAll  bool
}

func (s *workoutServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/workouts", func(w http.ResponseWriter, r *http.Request) {
		s.record(r)
		if s.failAll {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"boom"}`))
			return
		}
		switch r.Method {
		case http.MethodGet:
			s.mu.Lock()
			defer s.mu.Unlock()
			json.NewEncoder(w).Encode(s.items)
		case http.MethodPost:
			var workout models.Workout
			json.NewDecoder(r.Body).Decode(&workout)
			s.mu.Lock()
			s.nextID++
			workout.ID = "w" + strconv.Itoa(s.nextID)
			s.items = append(s.items, workout)
			s.mu.Unlock()
			json.NewEncoder(w).Encode(workout)
		}
	})
	mux.HandleFunc("/api/workouts/", func(w http.ResponseWriter, r *http.Request) {
		s.record(r)
		if s.failAll {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		id := r.URL.Path[len("/api/workouts/"):]
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, item := range s.items {
			if item.ID != id {
				continue
			}
			switch r.Method {
			case http.MethodPut:
				var workout models.Workout
				json.NewDecoder(r.Body).Decode(&workout)
				workout.ID = id
				s.items[i] = workout
				json.NewEncoder(w).Encode(workout)
			case http.MethodDelete:
				s.items = append(s.items[:i], s.items[i+1:]...)
				w.Write([]byte(`{}`))
			}
			return
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"not found"}`))
	})
	return mux
}

func (s *workoutServer) record(r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, r.Method+" "+r.URL.Path)
}

func (s *workoutServer) recorded() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func newWorkoutController(t *testing.T, backend *workoutServer, notify func(Notice)) *Controller[models.Workout] {
	t.Helper()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	client := api.New(srv.URL, &staticCreds{token: "tok"}, nil, testLogger())
	return NewWorkouts(client, notify, testLogger())
}

func TestRefreshReplacesListAllOrNothing(t *testing.T) {
	backend := &workoutServer{items: []models.Workout{
		{ID: "w1", Name: "Run", Type: "Cardio", Day: "Monday", Time: "07:00", Duration: 30},
	}}
	c := newWorkoutController(t, backend, nil)
	ctx := context.Background()

	require.NoError(t, c.Refresh(ctx))
	assert.Equal(t, ListReady, c.ListState())
	require.Len(t, c.Items(), 1)

	// A failed refresh keeps the previous good list visible.
	backend.failAll = true
	require.Error(t, c.Refresh(ctx))
	assert.Equal(t, ListFailed, c.ListState())
	assert.Equal(t, "Failed to load workouts.", c.ListError())
	assert.Len(t, c.Items(), 1)
}

func TestOpenEditorWithoutEntityUsesDefaultDraft(t *testing.T) {
	c := newWorkoutController(t, &workoutServer{}, nil)

	require.NoError(t, c.OpenEditor(nil))
	draft, open := c.Draft()
	require.True(t, open)
	assert.True(t, c.IsNew())
	assert.Equal(t, "Cardio", draft.Type)
	assert.Equal(t, "Monday", draft.Day)
	assert.Equal(t, 60, draft.Duration)
	assert.Empty(t, draft.ID)
}

func TestSecondOpenEditorIsRejected(t *testing.T) {
	c := newWorkoutController(t, &workoutServer{}, nil)

	require.NoError(t, c.OpenEditor(nil))
	require.NoError(t, c.UpdateDraft(func(w *models.Workout) { w.Name = "Yoga" }))

	existing := models.Workout{ID: "w9", Name: "Other"}
	err := c.OpenEditor(&existing)
	require.ErrorIs(t, err, ErrEditorOpen)

	// The original draft is unaffected.
	draft, _ := c.Draft()
	assert.Equal(t, "Yoga", draft.Name)
	assert.True(t, c.IsNew())
}

func TestSubmitDispatchesCreateForDraftAndUpdateForPersisted(t *testing.T) {
	backend := &workoutServer{items: []models.Workout{
		{ID: "w1", Name: "Run", Type: "Cardio", Day: "Monday", Time: "07:00", Duration: 30},
	}}
	c := newWorkoutController(t, backend, nil)
	ctx := context.Background()
	require.NoError(t, c.Refresh(ctx))

	// No identifier: create.
	require.NoError(t, c.OpenEditor(nil))
	require.NoError(t, c.UpdateDraft(func(w *models.Workout) { w.Name = "Swim" }))
	require.NoError(t, c.Submit(ctx))

	// Identifier present: update to that identifier's path.
	existing := c.Items()[0]
	require.NoError(t, c.OpenEditor(&existing))
	assert.False(t, c.IsNew())
	require.NoError(t, c.UpdateDraft(func(w *models.Workout) { w.Duration = 45 }))
	require.NoError(t, c.Submit(ctx))

	recorded := backend.recorded()
	assert.Contains(t, recorded, "POST /api/workouts")
	assert.Contains(t, recorded, "PUT /api/workouts/"+existing.ID)
}

func TestSubmitSuccessRefreshesListFromServer(t *testing.T) {
	backend := &workoutServer{}
	var notices []Notice
	c := newWorkoutController(t, backend, func(n Notice) { notices = append(notices, n) })
	ctx := context.Background()

	require.NoError(t, c.Refresh(ctx))
	require.NoError(t, c.OpenEditor(nil))
	require.NoError(t, c.UpdateDraft(func(w *models.Workout) { w.Name = "Swim" }))
	require.NoError(t, c.Submit(ctx))

	assert.Equal(t, EditorClosed, c.EditorState())

	// The list equals exactly what a fresh refresh produces, not a local patch.
	afterSubmit := c.Items()
	require.NoError(t, c.Refresh(ctx))
	assert.Equal(t, c.Items(), afterSubmit)
	require.Len(t, afterSubmit, 1)
	assert.NotEmpty(t, afterSubmit[0].ID)

	require.NotEmpty(t, notices)
	assert.Equal(t, NoticeSuccess, notices[0].Kind)
	assert.Equal(t, "Workout added!", notices[0].Message)
}

func TestSubmitFailureReopensEditorWithDraftIntact(t *testing.T) {
	backend := &workoutServer{}
	var notices []Notice
	c := newWorkoutController(t, backend, func(n Notice) { notices = append(notices, n) })
	ctx := context.Background()

	require.NoError(t, c.OpenEditor(nil))
	require.NoError(t, c.UpdateDraft(func(w *models.Workout) { w.Name = "Swim" }))

	backend.failAll = true
	require.Error(t, c.Submit(ctx))

	assert.Equal(t, EditorOpen, c.EditorState())
	draft, open := c.Draft()
	require.True(t, open)
	assert.Equal(t, "Swim", draft.Name)

	require.NotEmpty(t, notices)
	assert.Equal(t, NoticeError, notices[0].Kind)
	assert.Equal(t, "Failed to save workout.", notices[0].Message)
}

func TestSubmitValidatesDraftBeforeAnyRequest(t *testing.T) {
	backend := &workoutServer{}
	c := newWorkoutController(t, backend, nil)

	require.NoError(t, c.OpenEditor(nil)) // default draft has no name

	err := c.Submit(context.Background())
	var valErr *models.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.NotEmpty(t, valErr.Fields["Name"])
	assert.Empty(t, backend.recorded())
	assert.Equal(t, EditorOpen, c.EditorState())
}

func TestRemoveHonorsConfirmGate(t *testing.T) {
	backend := &workoutServer{items: []models.Workout{
		{ID: "w1", Name: "Run", Type: "Cardio", Day: "Monday", Time: "07:00", Duration: 30},
	}}
	var notices []Notice
	c := newWorkoutController(t, backend, func(n Notice) { notices = append(notices, n) })
	ctx := context.Background()
	require.NoError(t, c.Refresh(ctx))
	item := c.Items()[0]

	// Declined: no request issued.
	before := len(backend.recorded())
	require.NoError(t, c.Remove(ctx, item, func() bool { return false }))
	assert.Len(t, backend.recorded(), before)

	// Confirmed: delete, then refresh.
	require.NoError(t, c.Remove(ctx, item, func() bool { return true }))
	assert.Contains(t, backend.recorded(), "DELETE /api/workouts/w1")
	assert.Empty(t, c.Items())
	require.NotEmpty(t, notices)
	assert.Equal(t, "Workout deleted!", notices[0].Message)
}

func TestRemoveRejectsUnsavedDraft(t *testing.T) {
	c := newWorkoutController(t, &workoutServer{}, nil)

	err := c.Remove(context.Background(), models.Workout{Name: "No ID"}, func() bool { return true })
	require.Error(t, err)
}

func TestSecondSubmitWhileSavingIsRejected(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			close(started)
			<-release
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := api.New(srv.URL, &staticCreds{}, nil, testLogger())
	c := NewWorkouts(client, nil, testLogger())
	ctx := context.Background()

	require.NoError(t, c.OpenEditor(nil))
	require.NoError(t, c.UpdateDraft(func(w *models.Workout) { w.Name = "Swim" }))

	done := make(chan error, 1)
	go func() { done <- c.Submit(ctx) }()
	<-started

	assert.Equal(t, EditorSaving, c.EditorState())
	err := c.Submit(ctx)
	require.ErrorIs(t, err, ErrBusy)

	close(release)
	require.NoError(t, <-done)
}

func TestCloseAbsorbsLateCompletion(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
		w.Write([]byte(`[{"_id":"w1","name":"Run"}]`))
	}))
	defer srv.Close()

	client := api.New(srv.URL, &staticCreds{}, nil, testLogger())
	c := NewWorkouts(client, nil, testLogger())

	done := make(chan error, 1)
	go func() { done <- c.Refresh(context.Background()) }()
	<-started

	c.Close()
	close(release)

	// The response arrives into a disposed controller and is dropped.
	require.NoError(t, <-done)
	assert.Empty(t, c.Items())

	err := c.Refresh(context.Background())
	require.ErrorIs(t, err, ErrClosed)
}

func TestControllersForEachKindUseTheirBasePaths(t *testing.T) {
	var paths []string
	var mu sync.Mutex
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := api.New(srv.URL, &staticCreds{}, nil, testLogger())
	ctx := context.Background()

	require.NoError(t, NewWorkouts(client, nil, testLogger()).Refresh(ctx))
	require.NoError(t, NewDietPlans(client, nil, testLogger()).Refresh(ctx))
	require.NoError(t, NewSleepEntries(client, nil, testLogger()).Refresh(ctx))

	assert.Equal(t, []string{"/api/workouts", "/api/diet-plans", "/api/sleep"}, paths)
}
