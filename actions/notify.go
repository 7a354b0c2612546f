package actions

import (
	"errors"
	"fmt"

	"github.com/ugovaretto/s3demo/aws/s3"
	"github.com/ugovaretto/s3demo/helper"
	"github.com/ugovaretto/s3demo/logger"
)

// NotifyConfig describes a bucket event notification update.
type NotifyConfig struct {
	ConfigFile       string `errorTxt:"json configuration file" mandatory:"yes"`
	Bucket           string `errorTxt:"bucket name" mandatory:"yes"`
	LogLevel         string `errorTxt:"log level" mandatory:"yes"`
	Topics           []string
	Queues           []string
	Lambdas          []string
	Events           []string
	StackDumpOnPanic bool
	NewNotifier      func(*s3.Credentials) s3.Notifier // test seam; defaults to s3.NewNotifyClient
}

// RunConfigureNotifications applies the supplied notification targets to the bucket,
// using the endpoint and credentials found in the delegate's JSON configuration file.
func RunConfigureNotifications(cfg *NotifyConfig) error {
	if err := helper.ValidateStructIsPopulated(cfg); err != nil { // if the basics were not supplied...
		return err
	}
	log := logger.NewLogger(serviceName, cfg.LogLevel, cfg.StackDumpOnPanic)
	targets := s3.NotificationTargets{
		Topics:  cfg.Topics,
		Queues:  cfg.Queues,
		Lambdas: cfg.Lambdas,
		Events:  cfg.Events,
	}
	if targets.IsEmpty() { // if there is nothing to notify...
		return errors.New("no bucket notifications were specified: supply a topic, queue or lambda ARN")
	}
	creds, err := s3.LoadCredentials(cfg.ConfigFile)
	if err != nil {
		return err
	}
	log.Debug("configuring notifications against endpoint ", creds.Endpoint())
	newFn := cfg.NewNotifier
	if newFn == nil {
		newFn = s3.NewNotifyClient
	}
	if err := newFn(creds).Configure(cfg.Bucket, targets); err != nil {
		return err
	}
	fmt.Println("Bucket notification updated successfully")
	return nil
}
