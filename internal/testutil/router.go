// Package testutil holds fixtures shared by package tests.
package testutil

import "sync"

// RecordingRouter records every URL it is asked to navigate to.
type RecordingRouter struct {
	mu   sync.Mutex
	urls []string
	Err  error
}

func (r *RecordingRouter) Navigate(target string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.urls = append(r.urls, target)
	return r.Err
}

// URLs returns the recorded URLs in order.
func (r *RecordingRouter) URLs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.urls...)
}

// RecordingCopier records clipboard writes.
type RecordingCopier struct {
	mu     sync.Mutex
	copied []string
	Err    error
}

func (c *RecordingCopier) Copy(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return c.Err
	}
	c.copied = append(c.copied, text)
	return nil
}

// Copied returns the recorded clipboard writes.
func (c *RecordingCopier) Copied() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.copied...)
}
