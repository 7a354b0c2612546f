package actions

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/ugovaretto/s3demo/delegate"
	"github.com/ugovaretto/s3demo/delegate/mocks"
	"github.com/ugovaretto/s3demo/logger"
)

func TestHandlerHealth(t *testing.T) {
	log := logger.NewLogger(serviceName, "error", false)
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health", nil)
	GetHandlerHealth(log)(w, r)
	if w.Code != 200 {
		t.Fatalf("expected 200; got %v", w.Code)
	}
	resp := ResponseSimple{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.ServerStatus != Okay {
		t.Fatalf("expected ok status; got %v", resp.ServerStatus)
	}
}

func TestHandlerLaunch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	log := logger.NewLogger(serviceName, "error", false)
	runs := NewSafeMapRunInfo()
	runner := mocks.NewMockRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	h := GetHandlerLaunch(log, runs, runner, "./s3-rest.py", "DEBUG")
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/launch", strings.NewReader(`{"configFile":"cfg.json","bucket":"my-bucket"}`))
	r.Header.Set("Content-Type", "application/json")
	h(w, r)
	if w.Code != 200 {
		t.Fatalf("expected 200; got %v: %v", w.Code, w.Body.String())
	}
	resp := ResponseLaunch{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.RunId == "" {
		t.Fatal("expected a run id in the response")
	}
	ri := waitForRunFinished(t, runs, resp.RunId)
	if ri.Invocation.Bucket != "my-bucket" || ri.Invocation.Method != "get" {
		t.Fatalf("unexpected invocation launched: %+v", ri.Invocation)
	}
}

func TestHandlerLaunchBadRequests(t *testing.T) {
	log := logger.NewLogger(serviceName, "error", false)
	runs := NewSafeMapRunInfo()
	h := GetHandlerLaunch(log, runs, delegate.NewExecRunner(), "./s3-rest.py", "DEBUG")
	// Test 1 - malformed JSON.
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/launch", strings.NewReader("{not json"))
	h(w, r)
	if w.Code != 400 {
		t.Fatalf("expected 400 for malformed JSON; got %v", w.Code)
	}
	// Test 2 - missing configuration file.
	w = httptest.NewRecorder()
	r = httptest.NewRequest("POST", "/launch", strings.NewReader(`{"bucket":"my-bucket"}`))
	h(w, r)
	if w.Code != 400 {
		t.Fatalf("expected 400 for a missing configuration file; got %v", w.Code)
	}
}

func TestHandlerRunStatus(t *testing.T) {
	log := logger.NewLogger(serviceName, "error", false)
	runs := NewSafeMapRunInfo()
	runs.Store("known-run", RunInfo{
		Invocation: *testInvocation(),
		Status:     RunStatus{Status: StatusComplete},
	})
	r := mux.NewRouter()
	r.Path("/runs/{runId}/status").HandlerFunc(GetHandlerRunStatus(log, runs))
	// Test 1 - known run.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/runs/known-run/status", nil))
	if w.Code != 200 {
		t.Fatalf("expected 200; got %v", w.Code)
	}
	resp := ResponseRunStatus{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.RunStatus.Status != StatusComplete {
		t.Fatalf("expected complete status; got %+v", resp.RunStatus)
	}
	// Test 2 - unknown run.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/runs/unknown-run/status", nil))
	if w.Code != 400 {
		t.Fatalf("expected 400 for an unknown run; got %v", w.Code)
	}
}

func TestHandlerRunList(t *testing.T) {
	log := logger.NewLogger(serviceName, "error", false)
	runs := NewSafeMapRunInfo()
	runs.Store("run-a", RunInfo{Invocation: *testInvocation(), Status: RunStatus{Status: StatusRunning}})
	w := httptest.NewRecorder()
	GetHandlerRunList(log, runs)(w, httptest.NewRequest("GET", "/runs", nil))
	if w.Code != 200 {
		t.Fatalf("expected 200; got %v", w.Code)
	}
	resp := ResponseRunList{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.RunList) != 1 || resp.RunList[0].RunId != "run-a" {
		t.Fatalf("unexpected run list: %+v", resp.RunList)
	}
	if !strings.Contains(resp.RunList[0].CommandLine, "-b my-bucket") {
		t.Fatalf("expected the command line in the listing; got %+v", resp.RunList[0])
	}
}
