package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return NewClient(ts.URL + "/v2/")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestListActive_FiltersArchived(t *testing.T) {
	c := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v2/notes", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{
			"status": "success",
			"data": []map[string]any{
				{"id": "n1", "title": "Notes App", "body": "b", "archived": false, "createdAt": "2024-01-02T03:04:05.000Z"},
				{"id": "n2", "title": "Old", "body": "b", "archived": true, "createdAt": "2024-01-02T03:04:05.000Z"},
			},
		})
	})

	notes, err := c.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "n1", notes[0].ID)
	assert.False(t, notes[0].Archived)
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), notes[0].CreatedAt.UTC())
}

func TestListArchived_EmptyData(t *testing.T) {
	c := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/notes/archived", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{"status": "success", "data": []any{}})
	})

	notes, err := c.ListArchived(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestCreate_SendsJSON(t *testing.T) {
	c := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/notes", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, map[string]string{"title": "Groceries", "body": "Buy milk"}, in)
		writeJSON(w, http.StatusCreated, map[string]any{
			"status":  "success",
			"message": "Note created",
			"data":    map[string]any{"id": "note-x", "title": "Groceries", "body": "Buy milk", "archived": false, "createdAt": time.Now().UTC()},
		})
	})

	note, err := c.Create(context.Background(), "Groceries", "Buy milk")
	require.NoError(t, err)
	assert.Equal(t, "note-x", note.ID)
	assert.Equal(t, "Groceries", note.Title)
	assert.False(t, note.Archived)
}

func TestGet_EscapesID(t *testing.T) {
	c := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/notes/a%2Fb", r.URL.EscapedPath())
		writeJSON(w, http.StatusOK, map[string]any{"status": "success", "data": map[string]any{"id": "a/b", "title": "t"}})
	})

	note, err := c.Get(context.Background(), "a/b")
	require.NoError(t, err)
	assert.Equal(t, "a/b", note.ID)
}

func TestMutations_PathsAndMessages(t *testing.T) {
	var got []string
	c := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Method+" "+r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{"status": "success", "message": "ok:" + r.URL.Path})
	})
	ctx := context.Background()

	msg, err := c.Archive(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, "ok:/v2/notes/n1/archive", msg)

	_, err = c.Unarchive(ctx, "n1")
	require.NoError(t, err)
	_, err = c.Delete(ctx, "n1")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"POST /v2/notes/n1/archive",
		"POST /v2/notes/n1/unarchive",
		"DELETE /v2/notes/n1",
	}, got)
}

func TestServiceError_UsesEnvelopeMessage(t *testing.T) {
	c := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{"status": "fail", "message": "Note is not found"})
	})

	_, err := c.Delete(context.Background(), "gone")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindService))
	assert.Equal(t, "Note is not found", err.Error())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, OpDelete, apiErr.Op)
}

func TestServiceError_StatusFieldNotSuccess(t *testing.T) {
	// 200, но status != success — тоже ошибка сервиса
	c := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "fail"})
	})

	_, err := c.ListActive(context.Background())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindService))
	assert.Equal(t, "Failed to fetch notes", err.Error())
}

func TestDecodeError(t *testing.T) {
	c := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>not json</html>"))
	})

	_, err := c.ListArchived(context.Background())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindDecode))
	assert.Equal(t, "Failed to fetch archived notes", err.Error())
}

func TestNonJSONErrorStatusIsServiceError(t *testing.T) {
	c := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	_, err := c.Create(context.Background(), "t", "b")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindService))
	assert.Equal(t, "Failed to create note", err.Error())
}

func TestNetworkError(t *testing.T) {
	c := NewClient("http://127.0.0.1:1")
	_, err := c.ListActive(context.Background())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNetwork))
	assert.Equal(t, DefaultMessage, err.Error())
}

func TestTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		writeJSON(w, http.StatusOK, map[string]any{"status": "success", "data": []any{}})
	}))
	defer ts.Close()

	c := NewClient(ts.URL, WithTimeout(20*time.Millisecond))
	_, err := c.ListArchived(context.Background())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNetwork))
}

func TestTimeout_SurvivesLaterHTTPClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		writeJSON(w, http.StatusOK, map[string]any{"status": "success", "data": []any{}})
	}))
	defer ts.Close()

	own := &http.Client{}
	c := NewClient(ts.URL, WithTimeout(20*time.Millisecond), WithHTTPClient(own))
	_, err := c.ListArchived(context.Background())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNetwork))
	// переданный клиент не изменяется
	assert.Zero(t, own.Timeout)
}

func TestIsKind_ForeignError(t *testing.T) {
	assert.False(t, IsKind(context.Canceled, KindNetwork))
	assert.Equal(t, "decode", KindDecode.String())
}
