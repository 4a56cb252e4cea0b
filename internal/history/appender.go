package history

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Appender renders question/answer/evaluation records into a container.
// Appends are serialized so entries keep call order.
type Appender struct {
	mu         sync.Mutex
	resolve    func() (Container, error)
	serializer Serializer
	recorder   Recorder
	newID      func() string
	now        func() time.Time
}

// Option configures an Appender.
type Option func(*Appender)

// WithSerializer replaces the JSON serializer.
func WithSerializer(serializer Serializer) Option {
	return func(a *Appender) {
		if serializer != nil {
			a.serializer = serializer
		}
	}
}

// WithRecorder sets the trace recorder.
func WithRecorder(recorder Recorder) Option {
	return func(a *Appender) {
		if recorder != nil {
			a.recorder = recorder
		}
	}
}

// WithIDGenerator overrides entry id generation.
func WithIDGenerator(newID func() string) Option {
	return func(a *Appender) {
		if newID != nil {
			a.newID = newID
		}
	}
}

// WithClock overrides the append timestamp source.
func WithClock(now func() time.Time) Option {
	return func(a *Appender) {
		if now != nil {
			a.now = now
		}
	}
}

// NewAppender appends into container. A nil container makes every Append
// fail with ErrContainerNotFound.
func NewAppender(container Container, opts ...Option) *Appender {
	a := newAppender(opts)
	a.resolve = func() (Container, error) {
		if container == nil {
			return nil, &ContainerNotFoundError{}
		}
		return container, nil
	}
	return a
}

// NewPageAppender looks the container up on page by id at every append.
func NewPageAppender(page *Page, id string, opts ...Option) *Appender {
	a := newAppender(opts)
	a.resolve = func() (Container, error) {
		if page == nil {
			return nil, &ContainerNotFoundError{ID: id}
		}
		return page.Lookup(id)
	}
	return a
}

func newAppender(opts []Option) *Appender {
	a := &Appender{
		serializer: JSONSerializer{},
		recorder:   standardRecorder(),
		newID:      uuid.NewString,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Append renders one record and appends it as the container's last child,
// then records UpdatedMessage. Nothing is recorded on failure.
func (a *Appender) Append(question, answer string, evaluation any) (Entry, error) {
	node, err := a.AppendNode(question, answer, evaluation)
	if err != nil {
		return Entry{}, err
	}
	return node.Entry, nil
}

// AppendNode is Append returning the node exactly as it was placed in the
// container.
func (a *Appender) AppendNode(question, answer string, evaluation any) (Node, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	container, err := a.resolve()
	if err != nil {
		return Node{}, err
	}
	text, err := a.serializer.Serialize(evaluation)
	if err != nil {
		return Node{}, &SerializationError{Err: err}
	}
	entry := Entry{
		ID:             a.newID(),
		Question:       question,
		Answer:         answer,
		Evaluation:     evaluation,
		EvaluationText: text,
		AppendedAt:     a.now(),
	}
	node, err := RenderNode(context.Background(), entry)
	if err != nil {
		return Node{}, fmt.Errorf("render entry: %w", err)
	}
	if err := container.AppendChild(node); err != nil {
		return Node{}, fmt.Errorf("append entry: %w", err)
	}
	a.recorder.Record(UpdatedMessage)
	return node, nil
}
