package history

import (
	"fmt"
	"sync"
)

// recordingRecorder captures recorded messages for assertions.
type recordingRecorder struct {
	mu       sync.Mutex
	messages []string
}

func (r *recordingRecorder) Record(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
}

func (r *recordingRecorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.messages))
	copy(out, r.messages)
	return out
}

// sequentialIDs returns a generator yielding id-1, id-2, ...
func sequentialIDs() func() string {
	var mu sync.Mutex
	next := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		next++
		return fmt.Sprintf("id-%d", next)
	}
}

// failingContainer rejects every node.
type failingContainer struct{}

func (failingContainer) AppendChild(Node) error {
	return fmt.Errorf("detached")
}
