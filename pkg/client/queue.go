/*
Copyright © 2025 AppOptics
See AUTHORS and LICENSE for the license details and contributors.
*/
package client

import (
	specs "github.com/appoptics/appoptics-devkit/pkg/specs"
)

// The API accepts at most this number of measurements per request.
const MaxRequestSize = 300

// Queue buffers measurements and flushes them in chunked POST
// requests. The queue is not safe for concurrent use.
type Queue struct {
	client *Client

	// Chunk size of the auto-flush, MaxRequestSize when zero.
	ChunkSize int
	// AutoSubmit flushes the queue every time the chunk size is
	// reached.
	AutoSubmit bool

	queued []*specs.Measurement
}

type QueueOptions struct {
	ChunkSize  int
	AutoSubmit bool
}

func NewQueue(c *Client, opts *QueueOptions) *Queue {
	ans := &Queue{
		client:     c,
		ChunkSize:  MaxRequestSize,
		AutoSubmit: true,
		queued:     []*specs.Measurement{},
	}

	if opts != nil {
		ans.AutoSubmit = opts.AutoSubmit
		if opts.ChunkSize > 0 && opts.ChunkSize <= MaxRequestSize {
			ans.ChunkSize = opts.ChunkSize
		}
	}

	return ans
}

// Add queues one measurement, resolving tags against the connection
// top-level set the same way of a direct submission.
func (q *Queue) Add(name string, value float64, opts *specs.MeasureOptions) error {
	m := q.client.CreateMeasurement(name, value, opts)
	q.queued = append(q.queued, m)

	if q.AutoSubmit && len(q.queued) >= q.ChunkSize {
		return q.Submit()
	}
	return nil
}

// Length returns the number of queued measurements.
func (q *Queue) Length() int {
	return len(q.queued)
}

// Clear drops the queued measurements without submitting them.
func (q *Queue) Clear() {
	q.queued = []*specs.Measurement{}
}

// Submit flushes the queue in chunks of at most ChunkSize
// measurements. On error the unsent measurements stay queued.
func (q *Queue) Submit() error {
	for len(q.queued) > 0 {
		chunk := q.queued
		if len(chunk) > q.ChunkSize {
			chunk = chunk[:q.ChunkSize]
		}

		err := q.client.SubmitMeasurements(chunk)
		if err != nil {
			return err
		}

		q.queued = q.queued[len(chunk):]
	}

	return nil
}
