package actions

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/ugovaretto/s3demo/delegate"
	"github.com/ugovaretto/s3demo/helper"
	"github.com/ugovaretto/s3demo/logger"
)

const urlContext4Launch = "/launch"

// WebServerConfig describes the HTTP surface that exposes delegate launches.
type WebServerConfig struct {
	LogLevel         string `errorTxt:"log level" mandatory:"yes"`
	Scheme           string `errorTxt:"scheme" mandatory:"no"`
	Addr             net.IP `errorTxt:"address" mandatory:"no"`
	Port             int    `errorTxt:"port" mandatory:"no"`
	Script           string `errorTxt:"delegate script" mandatory:"yes"`
	DelegateLogLevel string `errorTxt:"delegate log level" mandatory:"yes"`
	StackDumpOnPanic bool
	Runner           delegate.Runner
}

// RunWebServer starts the web server and blocks until it is stopped via /stop
// or an interrupt.
func RunWebServer(web *WebServerConfig) error {
	// Setup logging.
	if web == nil {
		return errors.New("nil pointer to web server config supplied")
	}
	log := logger.NewLogger(serviceName, web.LogLevel, web.StackDumpOnPanic)
	// Check if we have valid input params.
	if err := helper.ValidateStructIsPopulated(web); err != nil {
		return err
	}
	// Fail early if the delegate can't be launched at all.
	if _, err := helper.CheckEnvironment(web.Script); err != nil {
		return err
	}
	// Start the web server.
	srv, chanStopServer, allRunInfo := runServer(log, web)
	// Block & wait for completion.
	return waitForServer(log, srv, chanStopServer, allRunInfo)
}

// runServer starts a web server and returns:
// 1) the server; and
// 2) a channel that can be used to stop the web server
// 3) a pointer to info on the launched delegate runs
func runServer(log logger.Logger, web *WebServerConfig) (*http.Server, chan string, *SafeMapRunInfo) {
	chanStopServer := make(chan string, 1)
	allRunInfo := NewSafeMapRunInfo()
	// Create routes.
	r := mux.NewRouter()
	r.HandleFunc("/stop", GetHandlerStopServer(log, chanStopServer))
	r.Path("/health").HandlerFunc(GetHandlerHealth(log))
	r.Path("/runs").HandlerFunc(GetHandlerRunList(log, allRunInfo))
	r.Path("/runs/{runId}/status").HandlerFunc(GetHandlerRunStatus(log, allRunInfo))
	r.Path(urlContext4Launch).Headers("Content-Type", "application/json").HandlerFunc(
		GetHandlerLaunch(log, allRunInfo, web.Runner, web.Script, web.DelegateLogLevel))
	// Configure HTTP server.
	srv := &http.Server{ // Good practice to set timeouts to avoid Slowloris attacks.
		Addr:         fmt.Sprintf("%v:%v", web.Addr, web.Port),
		WriteTimeout: time.Second * 15,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      r, // supply our instance of gorilla/mux.
	}
	// Run HTTP server non-blocking.
	go func() {
		if err := srv.ListenAndServe(); err != nil {
			if err == http.ErrServerClosed {
				log.Info(err)
			} else {
				log.Panic(err)
			}
		}
	}()
	log.Info(fmt.Sprintf("Listening on %v://%v:%v", strings.ToLower(web.Scheme), web.Addr, web.Port))
	return srv, chanStopServer, allRunInfo
}

func waitForServer(log logger.Logger, srv *http.Server, chanStopServer chan string, allRunInfo *SafeMapRunInfo) error {
	// Block & wait for shutdown signals.
	// Accept graceful shutdowns when quit via SIGINT (Ctrl+C).
	chanOS := make(chan os.Signal, 1)
	signal.Notify(chanOS, os.Interrupt) // request signals be sent to chanOS.
	select {
	case <-chanStopServer:
	case <-chanOS:
	}
	fmt.Println() // print new line char for clean looking CLI.
	log.Info("Shutting down web server...")
	// Cancel any delegate runs that are still going.
	allRunInfo.RLock()
	for _, ri := range allRunInfo.Internal {
		if !ri.Status.RunIsFinished() { // if the run is not finished already...
			ri.Cancel()
		}
	}
	allRunInfo.RUnlock()
	// Shutdown web server now.
	wait := time.Second * 15                                       // duration
	ctx, cancel := context.WithTimeout(context.Background(), wait) // create a timeout to wait for.
	defer cancel()                                                 // cancel the timeout.
	return srv.Shutdown(ctx)                                       // doesn't block if no connections, but will otherwise wait until the timeout deadline.
}
