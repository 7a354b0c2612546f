package actions

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ugovaretto/s3demo/constants"
	"github.com/ugovaretto/s3demo/delegate"
	"github.com/ugovaretto/s3demo/logger"
)

type WebServerResponse uint32

const (
	Okay WebServerResponse = iota + 1
	Error
)

func (w WebServerResponse) MarshalJSON() ([]byte, error) {
	var retval string
	switch w {
	case Okay:
		retval = "ok"
	case Error:
		retval = "error"
	default:
		return nil, fmt.Errorf("unhandled WebServerResponse value in MarshalJSON() conversion")
	}
	return json.Marshal(retval)
}

func (w *WebServerResponse) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch s {
	case "ok":
		*w = Okay
	case "error":
		*w = Error
	default:
		return fmt.Errorf("unhandled WebServerResponse value %q", s)
	}
	return nil
}

type ResponseSimple struct {
	ServerStatus WebServerResponse `json:"status"`
}

type ResponseRunList struct {
	Status  WebServerResponse `json:"status"`
	RunList []RunListItem     `json:"runs"`
}

type RunListItem struct {
	RunId       string `json:"runId"`
	CommandLine string `json:"commandLine"`
	RunStatus   string `json:"runStatus"`
}

type ResponseRunStatus struct {
	Status    WebServerResponse `json:"status"`
	Message   string            `json:"message"`
	RunStatus RunStatus         `json:"runStatus"`
}

type ResponseLaunch struct {
	Status  WebServerResponse `json:"status"`
	Message string            `json:"message"`
	RunId   string            `json:"runId"`
}

// LaunchRequest is the JSON body accepted by the /launch route.
// Method defaults to "get"; an empty bucket lists all buckets.
type LaunchRequest struct {
	ConfigFile string `json:"configFile"`
	Bucket     string `json:"bucket"`
	Method     string `json:"method"`
}

func GetHandlerHealth(log logger.Logger) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		respond(log, w, ResponseSimple{ServerStatus: Okay})
	}
}

func GetHandlerStopServer(log logger.Logger, chanStop chan string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		chanStop <- "stop"
		log.Info("Stop signal sent")
		respond(log, w, ResponseSimple{ServerStatus: Okay})
	}
}

func GetHandlerLaunch(log logger.Logger, allRunInfo *SafeMapRunInfo, runner delegate.Runner, script string, delegateLogLevel string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		// Ingest the launch request from the body JSON.
		b, _ := ioutil.ReadAll(r.Body)
		req := LaunchRequest{}
		if err := json.Unmarshal(b, &req); err != nil {
			logAndRespond(log, err, w,
				ResponseLaunch{Status: Error, Message: fmt.Sprintf("error unmarshalling JSON: %v", err)})
			return
		}
		if req.Method == "" { // if no method was supplied...
			req.Method = constants.MethodGet
		}
		inv := &delegate.Invocation{
			Script:     script,
			ConfigFile: req.ConfigFile,
			Method:     req.Method,
			Bucket:     req.Bucket,
			LogLevel:   delegateLogLevel,
		}
		// Launch.
		guid, err := LaunchInvocation(log, allRunInfo, runner, inv)
		if err != nil {
			logAndRespond(log, err, w,
				ResponseLaunch{Status: Error, Message: fmt.Sprintf("invalid launch request supplied: %v", err)})
			return
		}
		w.WriteHeader(http.StatusOK)
		respond(log, w, ResponseLaunch{Status: Okay, Message: "delegate launched", RunId: guid})
	}
}

func GetHandlerRunList(log logger.Logger, allRunInfo *SafeMapRunInfo) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		// Get a list of all run IDs.
		runs := make([]RunListItem, 0, len(allRunInfo.Internal))
		allRunInfo.RLock()
		for runId, v := range allRunInfo.Internal { // for each registered run...
			runs = append(runs, RunListItem{
				RunId:       runId,
				CommandLine: v.Invocation.CommandLine(),
				RunStatus:   v.Status.Status,
			})
		}
		allRunInfo.RUnlock()
		w.WriteHeader(http.StatusOK)
		respond(log, w, ResponseRunList{Status: Okay, RunList: runs})
	}
}

func GetHandlerRunStatus(log logger.Logger, allRunInfo *SafeMapRunInfo) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		id := vars["runId"]
		// Get status for the given runId.
		ri, ok := allRunInfo.Load(id)
		if ok { // if the run exists...
			w.WriteHeader(http.StatusOK)
			respond(log, w, ResponseRunStatus{Status: Okay, Message: "", RunStatus: ri.Status})
		} else { // else the run doesn't exist...
			w.WriteHeader(http.StatusBadRequest)
			log.Info("HTTP request status of run ", id, " that doesn't exist.")
			respond(log, w, ResponseRunStatus{Status: Error, Message: fmt.Sprintf("run %v does not exist", id)})
		}
	}
}

// logAndRespond will log the error, write a http.StatusBadRequest and r to w.
func logAndRespond(log logger.Logger, err error, w http.ResponseWriter, r ResponseLaunch) {
	log.Error(err)
	w.WriteHeader(http.StatusBadRequest)
	respond(log, w, r)
}

// respond will marshal i to a string and write it to w.
func respond(log logger.Logger, w http.ResponseWriter, i interface{}) {
	j, err := json.MarshalIndent(i, "", "  ")
	if err != nil {
		log.Panic(err)
	}
	if _, err = fmt.Fprint(w, string(j)); err != nil {
		log.Panic(err)
	}
}
