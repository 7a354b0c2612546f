package actions

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ugovaretto/s3demo/constants"
	"github.com/ugovaretto/s3demo/delegate"
	"github.com/ugovaretto/s3demo/helper"
	"github.com/ugovaretto/s3demo/logger"
	"golang.org/x/net/context"
)

// ListConfig holds everything needed to launch the delegate in object-listing mode.
type ListConfig struct {
	ConfigFile       string `errorTxt:"json configuration file" mandatory:"yes"`
	Bucket           string `errorTxt:"bucket name" mandatory:"yes"`
	Script           string `errorTxt:"delegate script" mandatory:"yes"`
	DelegateLogLevel string `errorTxt:"delegate log level" mandatory:"yes"`
	LogLevel         string `errorTxt:"log level" mandatory:"yes"`
	DelaySeconds     int
	Output           string
	DryRun           bool
	StackDumpOnPanic bool
	Runner           delegate.Runner
}

// BucketsConfig holds everything needed to launch the delegate with no bucket,
// which makes it list all buckets for the credentials.
type BucketsConfig struct {
	ConfigFile       string `errorTxt:"json configuration file" mandatory:"yes"`
	Script           string `errorTxt:"delegate script" mandatory:"yes"`
	DelegateLogLevel string `errorTxt:"delegate log level" mandatory:"yes"`
	LogLevel         string `errorTxt:"log level" mandatory:"yes"`
	DelaySeconds     int
	Output           string
	DryRun           bool
	StackDumpOnPanic bool
	Runner           delegate.Runner
}

// RunListObjects composes the delegate invocation that lists the objects in a bucket,
// announces it, pauses so the command line can be read, then launches the delegate.
// A non-zero delegate exit status comes back as *delegate.ExitError.
func RunListObjects(cfg *ListConfig) error {
	if err := helper.ValidateStructIsPopulated(cfg); err != nil { // if the basics were not supplied...
		return err
	}
	log := logger.NewLogger(serviceName, cfg.LogLevel, cfg.StackDumpOnPanic)
	inv := &delegate.Invocation{
		Script:     cfg.Script,
		ConfigFile: cfg.ConfigFile,
		Method:     constants.MethodGet,
		Bucket:     cfg.Bucket,
		LogLevel:   cfg.DelegateLogLevel,
	}
	if cfg.Output != "" { // if the user wants the invocation printed as a document...
		return printInvocation(inv, cfg.Output)
	}
	env, err := helper.CheckEnvironment(cfg.Script)
	if err != nil {
		return err
	}
	log.Debug("environment ok: interpreter ", env.Python)
	fmt.Printf("list objects in bucket %v\n", cfg.Bucket)
	return launchDelegate(log, cfg.Runner, inv, cfg.DelaySeconds, cfg.DryRun)
}

// RunListBuckets is RunListObjects without a bucket: the delegate lists all
// buckets reachable with the credentials in the configuration file.
func RunListBuckets(cfg *BucketsConfig) error {
	if err := helper.ValidateStructIsPopulated(cfg); err != nil {
		return err
	}
	log := logger.NewLogger(serviceName, cfg.LogLevel, cfg.StackDumpOnPanic)
	inv := &delegate.Invocation{
		Script:     cfg.Script,
		ConfigFile: cfg.ConfigFile,
		Method:     constants.MethodGet,
		LogLevel:   cfg.DelegateLogLevel,
	}
	if cfg.Output != "" {
		return printInvocation(inv, cfg.Output)
	}
	env, err := helper.CheckEnvironment(cfg.Script)
	if err != nil {
		return err
	}
	log.Debug("environment ok: interpreter ", env.Python)
	fmt.Println("list all buckets")
	return launchDelegate(log, cfg.Runner, inv, cfg.DelaySeconds, cfg.DryRun)
}

// launchDelegate prints the composed command line, pauses for delaySeconds so a
// human can read it, then runs the delegate and waits for it to end.
// SIGINT/SIGTERM cancel the delegate's context.
func launchDelegate(log logger.Logger, runner delegate.Runner, inv *delegate.Invocation, delaySeconds int, dryRun bool) error {
	fmt.Println(inv.CommandLine())
	if dryRun {
		return nil
	}
	if runner == nil {
		return errors.New("nil delegate runner supplied")
	}
	sleepFn(time.Duration(delaySeconds) * time.Second)
	// Create context.
	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()
	// Handle interrupts.
	chanQuit := make(chan os.Signal, 2)
	chanDone := make(chan error, 1)
	signal.Notify(chanQuit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(chanQuit)
	// Start the delegate.
	go func() {
		chanDone <- runner.Run(ctx, log, inv)
	}()
	// Wait for the delegate or an interrupt.
	select {
	case <-chanQuit: // if we were interrupted...
		fmt.Println("\nUser abort. Stopping the delegate...")
		cancelFn()
		select {
		case <-time.After(5 * time.Second): // timeout.
			fmt.Println("Timeout waiting for the delegate to end - aborted")
			return nil
		case err := <-chanDone: // delegate ended.
			return err
		}
	case err := <-chanDone: // delegate ended.
		return err
	}
}
