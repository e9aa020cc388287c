package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

type fakeActivity struct {
	name         string
	description  string
	schedule     string
	max          int
	participants []string
}

// fakeAPI — API записи в памяти. Ключи отдаются в порядке вставки, как у настоящего сервера.
type fakeAPI struct {
	mu         sync.Mutex
	activities []*fakeActivity
	lists      atomic.Int32
	down       atomic.Bool
}

func newFakeAPI(t *testing.T, activities ...*fakeActivity) (*fakeAPI, *httptest.Server) {
	t.Helper()
	api := &fakeAPI{activities: activities}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)
	return api, srv
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if f.down.Load() {
		hj, ok := w.(http.Hijacker)
		if ok {
			conn, _, _ := hj.Hijack()
			_ = conn.Close()
			return
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if r.URL.Path == "/activities" && r.Method == http.MethodGet {
		f.lists.Add(1)
		f.writeList(w)
		return
	}

	name, ok := strings.CutPrefix(r.URL.Path, "/activities/")
	name, ok2 := strings.CutSuffix(name, "/signup")
	if !ok || !ok2 {
		http.NotFound(w, r)
		return
	}
	email := r.URL.Query().Get("email")

	var act *fakeActivity
	for _, a := range f.activities {
		if a.name == name {
			act = a
		}
	}
	if act == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Activity not found"})
		return
	}

	switch r.Method {
	case http.MethodPost:
		if len(act.participants) >= act.max {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Activity full"})
			return
		}
		act.participants = append(act.participants, email)
		writeJSON(w, http.StatusOK, map[string]string{"message": "Signed up " + email + " for " + name})
	case http.MethodDelete:
		for i, p := range act.participants {
			if p == email {
				act.participants = append(act.participants[:i], act.participants[i+1:]...)
				writeJSON(w, http.StatusOK, map[string]string{"message": "Removed " + email + " from " + name})
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Participant not found in this activity"})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *fakeAPI) writeList(w http.ResponseWriter) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, a := range f.activities {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(a.name)
		participants := a.participants
		if participants == nil {
			participants = []string{}
		}
		val, _ := json.Marshal(map[string]any{
			"description":      a.description,
			"schedule":         a.schedule,
			"max_participants": a.max,
			"participants":     participants,
		})
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(buf.Bytes())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
