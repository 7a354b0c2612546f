package s3

import (
	"testing"

	awss3 "github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// fakeS3API captures the notification configuration request.
type fakeS3API struct {
	s3iface.S3API
	input *awss3.PutBucketNotificationConfigurationInput
	err   error
}

func (f *fakeS3API) PutBucketNotificationConfiguration(in *awss3.PutBucketNotificationConfigurationInput) (*awss3.PutBucketNotificationConfigurationOutput, error) {
	f.input = in
	return &awss3.PutBucketNotificationConfigurationOutput{}, f.err
}

func TestConfigure(t *testing.T) {
	api := &fakeS3API{}
	c := &notifyClient{api: api}
	targets := NotificationTargets{
		Topics:  []string{"arn:aws:sns:us-east-1:1:topic-a", "arn:aws:sns:us-east-1:1:topic-b"},
		Queues:  []string{"arn:aws:sqs:us-east-1:1:queue-a"},
		Lambdas: []string{"arn:aws:lambda:us-east-1:1:function:fn-a"},
		Events:  []string{"s3:ObjectCreated:*"},
	}
	if err := c.Configure("my-bucket", targets); err != nil {
		t.Fatal(err)
	}
	if api.input == nil {
		t.Fatal("expected PutBucketNotificationConfiguration to be called")
	}
	if got := *api.input.Bucket; got != "my-bucket" {
		t.Fatalf("expected bucket %q; got %q", "my-bucket", got)
	}
	cfg := api.input.NotificationConfiguration
	if len(cfg.TopicConfigurations) != 2 {
		t.Fatalf("expected 2 topic configurations; got %v", len(cfg.TopicConfigurations))
	}
	if len(cfg.QueueConfigurations) != 1 {
		t.Fatalf("expected 1 queue configuration; got %v", len(cfg.QueueConfigurations))
	}
	if len(cfg.LambdaFunctionConfigurations) != 1 {
		t.Fatalf("expected 1 lambda configuration; got %v", len(cfg.LambdaFunctionConfigurations))
	}
	if got := *cfg.TopicConfigurations[0].Events[0]; got != "s3:ObjectCreated:*" {
		t.Fatalf("expected event to be forwarded; got %q", got)
	}
}

func TestNotificationTargetsIsEmpty(t *testing.T) {
	empty := NotificationTargets{Events: []string{"s3:ObjectCreated:*"}}
	if !empty.IsEmpty() {
		t.Fatal("expected targets with only events to be empty")
	}
	populated := NotificationTargets{Queues: []string{"arn:aws:sqs:us-east-1:1:queue-a"}}
	if populated.IsEmpty() {
		t.Fatal("expected targets with a queue to be non-empty")
	}
}
