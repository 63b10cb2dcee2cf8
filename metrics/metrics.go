// Package metrics publishes portal counters to CloudWatch.
// file: metrics/metrics.go
package metrics

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/cloudwatch/cloudwatchiface"
	"github.com/pkg/errors"
	"rpe-portal/logger"
	"rpe-portal/services"
)

// Namespace for all portal metrics.
const Namespace = "RPEPortal"

// Units.
const (
	UnitCount = "Count"
)

// Datum is a single metric sample.
type Datum struct {
	Name       string
	Value      float64
	Unit       string
	Dimensions map[string]string
	Timestamp  time.Time
}

// Publisher accepts samples. Publish must not block the caller.
type Publisher interface {
	Publish(d Datum)
}

// Nop drops every sample.
type Nop struct{}

func (Nop) Publish(Datum) {}

// ---------------- cloudwatch ----------------

// CloudWatchPublisher queues samples and ships them from Run.
type CloudWatchPublisher struct {
	client cloudwatchiface.CloudWatchAPI
	queue  chan Datum
}

// NewCloudWatchPublisher builds a publisher with a CloudWatch client for region.
func NewCloudWatchPublisher(region string) (*CloudWatchPublisher, error) {
	sess, err := session.NewSession(&aws.Config{Region: aws.String(region)})
	if err != nil {
		return nil, errors.Wrap(err, "create aws session")
	}
	return NewCloudWatchPublisherWithClient(cloudwatch.New(sess)), nil
}

// NewCloudWatchPublisherWithClient uses client, for tests and custom sessions.
func NewCloudWatchPublisherWithClient(client cloudwatchiface.CloudWatchAPI) *CloudWatchPublisher {
	return &CloudWatchPublisher{client: client, queue: make(chan Datum, 256)}
}

// Publish enqueues d, dropping it when the queue is full.
func (p *CloudWatchPublisher) Publish(d Datum) {
	if d.Timestamp.IsZero() {
		d.Timestamp = time.Now()
	}
	select {
	case p.queue <- d:
	default:
		logger.Warn.Printf("[CloudWatchPublisher] Queue full, dropping %s", d.Name)
	}
}

// Run ships queued samples until ctx is done.
func (p *CloudWatchPublisher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case d := <-p.queue:
			p.putMetric(ctx, d)
		}
	}
}

func (p *CloudWatchPublisher) putMetric(ctx context.Context, d Datum) {
	dims := make([]*cloudwatch.Dimension, 0, len(d.Dimensions))
	for k, v := range d.Dimensions {
		dims = append(dims, &cloudwatch.Dimension{Name: aws.String(k), Value: aws.String(v)})
	}
	_, err := p.client.PutMetricDataWithContext(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(Namespace),
		MetricData: []*cloudwatch.MetricDatum{
			{
				MetricName: aws.String(d.Name),
				Dimensions: dims,
				Timestamp:  aws.Time(d.Timestamp),
				Value:      aws.Float64(d.Value),
				Unit:       aws.String(d.Unit),
			},
		},
	})
	if err != nil {
		logger.Error.Printf("[putMetric] CloudWatch metric failed (%s): %v", d.Name, err)
	}
}

// ---------------- portal counters ----------------

// PublishConnections reports the number of live admin sockets.
func PublishConnections(p Publisher, count int) {
	p.Publish(Datum{Name: "AdminConnections", Value: float64(count), Unit: UnitCount})
}

// TrackMutations counts every change event of the given containers.
// The returned function unsubscribes.
func TrackMutations(p Publisher, observables ...services.Observable) func() {
	unsubs := make([]func(), 0, len(observables))
	for _, o := range observables {
		unsubs = append(unsubs, o.Subscribe(func(e services.Event) {
			p.Publish(Datum{
				Name:       "ContentMutations",
				Value:      1,
				Unit:       UnitCount,
				Dimensions: map[string]string{"Collection": e.Collection, "Op": string(e.Op)},
			})
		}))
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}
