package s3

// Notifier configures bucket event notifications.
type Notifier interface {
	Configure(bucket string, t NotificationTargets) error
}

// NotificationTargets lists the ARNs to notify for a set of bucket events.
type NotificationTargets struct {
	Topics  []string
	Queues  []string
	Lambdas []string
	Events  []string
}

// IsEmpty reports whether no notification destination was supplied at all.
// Events alone are not a destination.
func (t *NotificationTargets) IsEmpty() bool {
	return len(t.Topics)+len(t.Queues)+len(t.Lambdas) == 0
}
