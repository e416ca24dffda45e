package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gift-registry/app"
	"gift-registry/database"
	"gift-registry/handlers"
)

// setupTestApp creates a fiber app over a temporary database with the
// full route table registered.
func setupTestApp(t *testing.T) (*fiber.App, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "gift-registry-test-*")
	require.NoError(t, err, "Failed to create temp directory")

	db, err := database.New(filepath.Join(tmpDir, "test.db"))
	require.NoError(t, err, "Failed to initialize test database")

	err = db.Migrate()
	require.NoError(t, err, "Failed to run migrations")

	repo := database.NewRepository(db)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := app.New(repo, logger)

	srv := fiber.New()
	api := srv.Group("/api")
	api.Get("/items", handlers.GetItems(a))
	api.Post("/items", handlers.CreateItem(a))
	api.Put("/items", handlers.UpsertItem(a))
	api.Put("/items/:id", handlers.UpdateItem(a))
	api.Delete("/items/:id", handlers.DeleteItem(a))
	api.Post("/items/:id/notes/:noteID", handlers.LinkNote(a))
	api.Delete("/items/:id/notes/:noteID", handlers.UnlinkNote(a))
	api.Get("/notes", handlers.GetNotes(a))
	api.Post("/notes", handlers.CreateNote(a))
	api.Put("/notes/:id", handlers.UpdateNote(a))
	api.Delete("/notes/:id", handlers.DeleteNote(a))
	api.Post("/import", handlers.ImportItems(a))
	api.Get("/export", handlers.ExportItems(a))

	cleanup := func() {
		db.Close()
		os.RemoveAll(tmpDir)
	}

	return srv, cleanup
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	defer resp.Body.Close()
	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return decoded
}

func TestItemLifecycle(t *testing.T) {
	srv, cleanup := setupTestApp(t)
	defer cleanup()

	// Create
	resp, err := srv.Test(jsonRequest(t, http.MethodPost, "/api/items", map[string]any{
		"id":       "switch",
		"name":     "Switch",
		"quantity": 2,
		"priority": "high",
		"notes":    []string{"gift wrap it"},
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	items := body["items"].([]any)
	require.Len(t, items, 1)

	// Update keeps existing note links
	resp, err = srv.Test(jsonRequest(t, http.MethodPut, "/api/items/switch", map[string]any{
		"name":     "Switch 2",
		"quantity": 1,
		"priority": "highest",
		"notes":    []string{},
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body = decodeBody(t, resp)
	item := body["items"].([]any)[0].(map[string]any)
	assert.Equal(t, "Switch 2", item["name"])
	assert.Equal(t, []any{"gift wrap it"}, item["notes"])

	// Delete cascades links but keeps the note
	resp, err = srv.Test(jsonRequest(t, http.MethodDelete, "/api/items/switch", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = srv.Test(jsonRequest(t, http.MethodGet, "/api/notes", nil))
	require.NoError(t, err)
	body = decodeBody(t, resp)
	assert.Len(t, body["notes"].([]any), 1)
}

func TestUpdateItem_NotFound(t *testing.T) {
	srv, cleanup := setupTestApp(t)
	defer cleanup()

	resp, err := srv.Test(jsonRequest(t, http.MethodPut, "/api/items/ghost", map[string]any{
		"name": "Ghost",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateItem_InvalidPriority(t *testing.T) {
	srv, cleanup := setupTestApp(t)
	defer cleanup()

	resp, err := srv.Test(jsonRequest(t, http.MethodPost, "/api/items", map[string]any{
		"name":     "Socks",
		"priority": "urgent",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpsertItem_CaseInsensitiveID(t *testing.T) {
	srv, cleanup := setupTestApp(t)
	defer cleanup()

	resp, err := srv.Test(jsonRequest(t, http.MethodPost, "/api/items", map[string]any{
		"id":   "abc",
		"name": "Original",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = srv.Test(jsonRequest(t, http.MethodPut, "/api/items", map[string]any{
		"id":   "ABC",
		"name": "Updated",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "Updated", items[0].(map[string]any)["name"])
}

func TestLinkAndUnlinkNote(t *testing.T) {
	srv, cleanup := setupTestApp(t)
	defer cleanup()

	resp, err := srv.Test(jsonRequest(t, http.MethodPost, "/api/items", map[string]any{
		"id":   "switch",
		"name": "Switch",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = srv.Test(jsonRequest(t, http.MethodPost, "/api/notes", map[string]any{
		"content": "gift wrap it",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	notes := body["notes"].([]any)
	require.Len(t, notes, 1)
	noteID := int64(notes[0].(map[string]any)["id"].(float64))

	resp, err = srv.Test(jsonRequest(t, http.MethodPost,
		"/api/items/switch/notes/"+itoa(noteID), nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body = decodeBody(t, resp)
	item := body["items"].([]any)[0].(map[string]any)
	assert.Equal(t, []any{"gift wrap it"}, item["notes"])

	resp, err = srv.Test(jsonRequest(t, http.MethodDelete,
		"/api/items/switch/notes/"+itoa(noteID), nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body = decodeBody(t, resp)
	item = body["items"].([]any)[0].(map[string]any)
	assert.Empty(t, item["notes"])
}

func TestLinkNote_MissingItem(t *testing.T) {
	srv, cleanup := setupTestApp(t)
	defer cleanup()

	resp, err := srv.Test(jsonRequest(t, http.MethodPost, "/api/notes", map[string]any{
		"content": "orphan",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = srv.Test(jsonRequest(t, http.MethodPost, "/api/items/ghost/notes/1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestImportExport(t *testing.T) {
	srv, cleanup := setupTestApp(t)
	defer cleanup()

	payload := `[{"id": "switch", "name": "Switch", "quantity": 2, "priority": "high"}, {"name": "Socks"}]`
	req := httptest.NewRequest(http.MethodPost, "/api/import?format=json", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, float64(2), body["imported"])
	assert.Len(t, body["items"].([]any), 2)

	resp, err = srv.Test(httptest.NewRequest(http.MethodGet, "/api/export?format=tsv", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, string(raw), "switch\tSwitch\t2\thigh\t")

	resp, err = srv.Test(httptest.NewRequest(http.MethodGet, "/api/export?format=xml", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
