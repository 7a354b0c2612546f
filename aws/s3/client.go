package s3

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/pkg/errors"
)

const defaultRegion = "us-east-1"

// NewNotifyClient builds a Notifier against the endpoint and static credentials
// found in the delegate's JSON configuration file.
func NewNotifyClient(c *Credentials) Notifier {
	region := c.Region
	if region == "" {
		region = defaultRegion
	}
	awsConfig := aws.NewConfig().
		WithEndpoint(c.Endpoint()).
		WithRegion(region).
		WithCredentials(credentials.NewStaticCredentials(c.AccessKey, c.SecretKey, "")).
		WithS3ForcePathStyle(true) // non-AWS endpoints rarely support virtual-hosted addressing
	sess := session.Must(session.NewSession(awsConfig))
	return &notifyClient{api: s3.New(sess)}
}

type notifyClient struct {
	api s3iface.S3API
}

// Configure replaces the bucket's notification configuration with one built
// from the supplied targets. Every target receives the same event list.
func (c *notifyClient) Configure(bucket string, t NotificationTargets) error {
	events := aws.StringSlice(t.Events)
	cfg := &s3.NotificationConfiguration{}
	for _, arn := range t.Topics {
		cfg.TopicConfigurations = append(cfg.TopicConfigurations, &s3.TopicConfiguration{
			TopicArn: aws.String(arn),
			Events:   events,
		})
	}
	for _, arn := range t.Queues {
		cfg.QueueConfigurations = append(cfg.QueueConfigurations, &s3.QueueConfiguration{
			QueueArn: aws.String(arn),
			Events:   events,
		})
	}
	for _, arn := range t.Lambdas {
		cfg.LambdaFunctionConfigurations = append(cfg.LambdaFunctionConfigurations, &s3.LambdaFunctionConfiguration{
			LambdaFunctionArn: aws.String(arn),
			Events:            events,
		})
	}
	_, err := c.api.PutBucketNotificationConfiguration(&s3.PutBucketNotificationConfigurationInput{
		Bucket:                    aws.String(bucket),
		NotificationConfiguration: cfg,
	})
	if err != nil {
		return errors.Wrapf(err, "unable to put notification configuration on bucket %q", bucket)
	}
	return nil
}
