package api_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/asharish/portfolio-api/internal/api"
	"github.com/asharish/portfolio-api/internal/store"
)

func TestAdmin_RequiresCredentials(t *testing.T) {
	env := newTestEnv(t)

	paths := []struct {
		method, path string
	}{
		{"GET", "/api/admin/view/projects"},
		{"POST", "/api/admin/save"},
		{"DELETE", "/api/admin/delete/projects/1"},
		{"POST", "/api/admin/reorder"},
		{"GET", "/api/admin/backup"},
		{"POST", "/api/admin/upload"},
		{"GET", "/api/admin/messages"},
		{"GET", "/api/admin/settings"},
	}
	for _, p := range paths {
		rec := env.do(t, p.method, p.path, nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without credentials = %d, want 401", p.method, p.path, rec.Code)
		}
	}
}

func TestAdmin_ViewTable(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.records.Save(ctx, "projects", 0, map[string]any{"title": "Draft", "is_visible": false}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	rec := env.do(t, "GET", "/api/admin/view/projects", nil, asAdmin)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	// Admin view includes hidden rows.
	if got := decodeJSON[[]map[string]any](t, rec); len(got) != 1 {
		t.Errorf("admin view returned %d rows, want 1", len(got))
	}

	rec = env.do(t, "GET", "/api/admin/view/users", nil, asAdmin)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown table = %d, want 400", rec.Code)
	}
}

func TestAdmin_ViewMessages(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.messages.Insert(context.Background(), "A", "a@example.com", "", "hi"); err != nil {
		t.Fatalf("seed message: %v", err)
	}

	rec := env.do(t, "GET", "/api/admin/view/messages", nil, asAdmin)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := decodeJSON[[]map[string]any](t, rec); len(got) != 1 {
		t.Errorf("returned %d messages, want 1", len(got))
	}
}

func TestAdmin_SaveInsertAndUpdate(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "POST", "/api/admin/save", map[string]any{
		"table": "projects",
		"title": "New Project",
	}, asAdmin)
	if rec.Code != http.StatusOK {
		t.Fatalf("insert status = %d, body = %s", rec.Code, rec.Body.String())
	}
	created := decodeJSON[map[string]any](t, rec)
	id, ok := created["id"].(float64)
	if !ok || id == 0 {
		t.Fatalf("created id = %v", created["id"])
	}

	rec = env.do(t, "POST", "/api/admin/save", map[string]any{
		"table": "projects",
		"id":    id,
		"title": "Renamed",
	}, asAdmin)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if updated := decodeJSON[map[string]any](t, rec); updated["title"] != "Renamed" {
		t.Errorf("title = %v, want Renamed", updated["title"])
	}

	// Admin UIs send the id as a string sometimes; both forms must work.
	rec = env.do(t, "POST", "/api/admin/save", map[string]any{
		"table": "projects",
		"id":    strconv.Itoa(int(id)),
		"title": "Renamed Again",
	}, asAdmin)
	if rec.Code != http.StatusOK {
		t.Errorf("string-id update status = %d, want 200", rec.Code)
	}
}

func TestAdmin_SaveRejectsBadInput(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "POST", "/api/admin/save", map[string]any{"title": "no table"}, asAdmin)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing table = %d, want 400", rec.Code)
	}

	rec = env.do(t, "POST", "/api/admin/save", map[string]any{"table": "users", "title": "x"}, asAdmin)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown table = %d, want 400", rec.Code)
	}

	rec = env.do(t, "POST", "/api/admin/save", map[string]any{"table": "projects", "id": 9999, "title": "x"}, asAdmin)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing row = %d, want 404", rec.Code)
	}
}

func TestAdmin_Delete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	saved, err := env.records.Save(ctx, "projects", 0, map[string]any{"title": "Doomed"})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	id := saved["id"].(int64)

	rec := env.do(t, "DELETE", "/api/admin/delete/projects/"+strconv.FormatInt(id, 10), nil, asAdmin)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = env.do(t, "DELETE", "/api/admin/delete/projects/"+strconv.FormatInt(id, 10), nil, asAdmin)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete = %d, want 404", rec.Code)
	}

	rec = env.do(t, "DELETE", "/api/admin/delete/projects/abc", nil, asAdmin)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("non-numeric id = %d, want 400", rec.Code)
	}
}

func TestAdmin_Reorder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	var ids []int64
	for i, title := range []string{"a", "b", "c"} {
		saved, err := env.records.Save(ctx, "projects", 0, map[string]any{"title": title, "display_order": i + 1})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		ids = append(ids, saved["id"].(int64))
	}

	rec := env.do(t, "POST", "/api/admin/reorder", api.ReorderRequest{
		Table:      "projects",
		OrderedIDs: []int64{ids[2], ids[0], ids[1]},
	}, asAdmin)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	first, err := env.records.Get(ctx, "projects", ids[2])
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if first["display_order"] != int64(1) {
		t.Errorf("display_order = %v, want 1", first["display_order"])
	}

	rec = env.do(t, "POST", "/api/admin/reorder", api.ReorderRequest{
		Table:      "projects",
		OrderedIDs: []int64{ids[0], 9999},
	}, asAdmin)
	if rec.Code != http.StatusNotFound {
		t.Errorf("reorder with unknown id = %d, want 404", rec.Code)
	}
}

func TestAdmin_Backup(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.records.Save(context.Background(), "projects", 0, map[string]any{"title": "P"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	rec := env.do(t, "GET", "/api/admin/backup", nil, asAdmin)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.HasPrefix(cd, "attachment; filename=portfolio_backup_") {
		t.Errorf("Content-Disposition = %q", cd)
	}

	dump := decodeJSON[map[string][]map[string]any](t, rec)
	for _, table := range []string{"skills", "projects", "internships", "certifications", "achievements", "micro_saas", "messages", "site_settings"} {
		if _, ok := dump[table]; !ok {
			t.Errorf("backup missing table %s", table)
		}
	}
	if len(dump["projects"]) != 1 {
		t.Errorf("backup projects = %d rows, want 1", len(dump["projects"]))
	}
}

func TestAdmin_Upload(t *testing.T) {
	env := newTestEnv(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "photo.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("fake image bytes")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest("POST", "/api/admin/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	asAdmin(req)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	resp := decodeJSON[api.UploadResponse](t, rec)
	if !strings.HasPrefix(resp.FilePath, "uploads/file-") || !strings.HasSuffix(resp.FilePath, ".png") {
		t.Errorf("filePath = %q", resp.FilePath)
	}

	onDisk := filepath.Join(env.uploadDir, strings.TrimPrefix(resp.FilePath, "uploads/"))
	data, err := os.ReadFile(onDisk)
	if err != nil {
		t.Fatalf("read uploaded file: %v", err)
	}
	if string(data) != "fake image bytes" {
		t.Errorf("uploaded content = %q", data)
	}
}

func TestAdmin_UploadWithoutFile(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, "POST", "/api/admin/upload", nil, asAdmin)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAdmin_MessagesAndMarkRead(t *testing.T) {
	env := newTestEnv(t)
	msg, err := env.messages.Insert(context.Background(), "A", "a@example.com", "", "hi")
	if err != nil {
		t.Fatalf("seed message: %v", err)
	}

	rec := env.do(t, "GET", "/api/admin/messages", nil, asAdmin)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	msgs := decodeJSON[[]store.Message](t, rec)
	if len(msgs) != 1 || msgs[0].IsRead {
		t.Fatalf("msgs = %+v, want one unread", msgs)
	}

	rec = env.do(t, "PUT", "/api/admin/messages/"+strconv.FormatInt(msg.ID, 10)+"/read", nil, asAdmin)
	if rec.Code != http.StatusOK {
		t.Fatalf("mark read status = %d", rec.Code)
	}

	rec = env.do(t, "GET", "/api/admin/messages", nil, asAdmin)
	msgs = decodeJSON[[]store.Message](t, rec)
	if !msgs[0].IsRead {
		t.Error("message still unread after mark read")
	}

	rec = env.do(t, "PUT", "/api/admin/messages/9999/read", nil, asAdmin)
	if rec.Code != http.StatusNotFound {
		t.Errorf("mark read missing id = %d, want 404", rec.Code)
	}
}

func TestAdmin_Settings(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "PUT", "/api/admin/settings/resume", api.SettingRequest{
		Value: "uploads/resume.pdf", Mime: "application/pdf",
	}, asAdmin)
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = env.do(t, "GET", "/api/admin/settings/resume", nil, asAdmin)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	setting := decodeJSON[store.Setting](t, rec)
	if setting.Value != "uploads/resume.pdf" || setting.Mime != "application/pdf" {
		t.Errorf("setting = %+v", setting)
	}

	rec = env.do(t, "GET", "/api/admin/settings/missing", nil, asAdmin)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing setting = %d, want 404", rec.Code)
	}

	rec = env.do(t, "GET", "/api/admin/settings", nil, asAdmin)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	if all := decodeJSON[[]store.Setting](t, rec); len(all) != 1 {
		t.Errorf("list returned %d settings, want 1", len(all))
	}
}
