package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/asharish/portfolio-api/internal/api"
	"github.com/asharish/portfolio-api/internal/auth"
	"github.com/asharish/portfolio-api/internal/notify"
	"github.com/asharish/portfolio-api/internal/store"
	"github.com/asharish/portfolio-api/internal/testutil"
)

const testAdminPassword = "test-password"

type testEnv struct {
	router    http.Handler
	db        *sqlx.DB
	records   *store.RecordStore
	messages  *store.MessageStore
	settings  *store.SettingsStore
	gate      *auth.Gate
	notifyCh  chan notify.ContactMessage
	uploadDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	conn := testutil.NewTestDB(t)
	sessions := auth.NewSessions("test-session-secret", time.Hour)
	gate := auth.NewGate(testAdminPassword, sessions, []string{"admin@example.com"})
	notifyCh := make(chan notify.ContactMessage, 8)
	uploadDir := t.TempDir()

	env := &testEnv{
		db:        conn,
		records:   store.NewRecordStore(conn),
		messages:  store.NewMessageStore(conn),
		settings:  store.NewSettingsStore(conn),
		gate:      gate,
		notifyCh:  notifyCh,
		uploadDir: uploadDir,
	}
	env.router = api.NewRouter(api.Deps{
		DB:            conn,
		Records:       env.records,
		Messages:      env.messages,
		Settings:      env.settings,
		Stats:         store.NewStatsStore(conn, "7.5"),
		Gate:          gate,
		Google:        auth.NewGoogleVerifier("", false),
		Notifications: notifyCh,
		UploadDir:     uploadDir,
	})
	return env
}

// do runs one request through the router and returns the recorder.
func (e *testEnv) do(t *testing.T, method, path string, body any, mutate ...func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, fn := range mutate {
		fn(req)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// asAdmin attaches the admin password header.
func asAdmin(req *http.Request) {
	req.Header.Set(auth.PasswordHeader, testAdminPassword)
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}
