package communications

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

type publishedJob struct {
	queue string
	body  []byte
}

type fakeQueues struct {
	jobs []publishedJob
	err  error
}

func (f *fakeQueues) Publish(_ context.Context, queueName string, body []byte) error {
	if f.err != nil {
		return f.err
	}
	f.jobs = append(f.jobs, publishedJob{queue: queueName, body: body})
	return nil
}

func decodeJob(t *testing.T, body []byte) map[string]json.RawMessage {
	t.Helper()
	var job map[string]json.RawMessage
	if err := json.Unmarshal(body, &job); err != nil {
		t.Fatalf("job body is not json: %v", err)
	}
	return job
}

func TestHandleAssignment(t *testing.T) {
	queues := &fakeQueues{}
	b := NewBridge(queues)

	msg := []byte(`{"event": "load.assigned", "payload": {"id": "FF-ATL-MIA-V-00001"}}`)
	if err := b.Handle(context.Background(), nil, msg); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	if len(queues.jobs) != 1 || queues.jobs[0].queue != SMSQueue {
		t.Fatalf("jobs = %+v, want one sms job", queues.jobs)
	}
	job := decodeJob(t, queues.jobs[0].body)
	if string(job["type"]) != `"assignment_alert"` {
		t.Errorf("job type = %s", job["type"])
	}
}

func TestHandleStatusChangeFansToBothChannels(t *testing.T) {
	queues := &fakeQueues{}
	b := NewBridge(queues)

	msg := []byte(`{"event": "notification.status_changed", "payload": {"loadId": "FF-ATL-MIA-V-00001"}}`)
	if err := b.Handle(context.Background(), nil, msg); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	if len(queues.jobs) != 2 {
		t.Fatalf("got %d jobs, want sms plus email", len(queues.jobs))
	}
	if queues.jobs[0].queue != SMSQueue || queues.jobs[1].queue != EmailQueue {
		t.Errorf("queues = %s, %s", queues.jobs[0].queue, queues.jobs[1].queue)
	}
}

func TestHandleRouting(t *testing.T) {
	tests := []struct {
		event string
		queue string
	}{
		{"notification.driver_event", SMSQueue},
		{"notification.customer_inquiry", EmailQueue},
	}
	for _, tt := range tests {
		t.Run(tt.event, func(t *testing.T) {
			queues := &fakeQueues{}
			b := NewBridge(queues)
			msg := []byte(`{"event": "` + tt.event + `", "payload": {}}`)
			if err := b.Handle(context.Background(), nil, msg); err != nil {
				t.Fatalf("Handle failed: %v", err)
			}
			if len(queues.jobs) != 1 || queues.jobs[0].queue != tt.queue {
				t.Errorf("jobs = %+v", queues.jobs)
			}
		})
	}
}

func TestHandleIgnoresQuietEvents(t *testing.T) {
	queues := &fakeQueues{}
	b := NewBridge(queues)

	for _, msg := range []string{
		`{"event": "load.created", "payload": {}}`,
		`{"event": "load.updated", "payload": {}}`,
		`{broken`,
	} {
		if err := b.Handle(context.Background(), nil, []byte(msg)); err != nil {
			t.Errorf("Handle(%s) = %v, want nil", msg, err)
		}
	}
	if len(queues.jobs) != 0 {
		t.Errorf("quiet events produced jobs: %+v", queues.jobs)
	}
}

func TestHandleReturnsQueueErrors(t *testing.T) {
	queueDown := errors.New("channel closed")
	b := NewBridge(&fakeQueues{err: queueDown})

	msg := []byte(`{"event": "load.assigned", "payload": {}}`)
	if err := b.Handle(context.Background(), nil, msg); !errors.Is(err, queueDown) {
		t.Errorf("err = %v, want the queue error for redelivery", err)
	}
}
