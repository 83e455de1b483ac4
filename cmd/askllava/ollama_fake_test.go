package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"

	"github.com/ollama/ollama/api"
)

// Prompts that make the fake fail instead of echoing.
const (
	promptMissingModel = "fail:missing-model"
	promptCrash        = "fail:crash"
)

// fakeOllama answers /api/generate with the prompt itself, so callers pick
// the model response through the instruction they pass.
type fakeOllama struct {
	*httptest.Server
	requests atomic.Int32
	last     atomic.Pointer[api.GenerateRequest]
}

func newFakeOllama() *fakeOllama {
	f := &fakeOllama{}
	f.Server = httptest.NewServer(http.HandlerFunc(f.handle))
	return f
}

func (f *fakeOllama) handle(w http.ResponseWriter, r *http.Request) {
	f.requests.Add(1)
	if r.URL.Path != "/api/generate" {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
		return
	}
	var req api.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad request"}`, http.StatusBadRequest)
		return
	}
	f.last.Store(&req)

	w.Header().Set("Content-Type", "application/json")
	switch req.Prompt {
	case promptMissingModel:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"model \"` + req.Model + `\" not found, try pulling it first"}` + "\n"))
	case promptCrash:
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"llama runner process has terminated"}` + "\n"))
	default:
		_ = json.NewEncoder(w).Encode(api.GenerateResponse{Model: req.Model, Response: req.Prompt, Done: true})
	}
}
