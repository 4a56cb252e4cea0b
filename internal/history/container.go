package history

import (
	"context"
	"io"
	"sync"
)

// DefaultContainerID is the element id of the conversation history container.
const DefaultContainerID = "conversation-history"

// Container accepts rendered nodes as its last child.
type Container interface {
	AppendChild(node Node) error
}

// List is an in-memory, append-only container.
type List struct {
	mu    sync.RWMutex
	id    string
	nodes []Node
}

// NewList creates an empty container with the given element id.
func NewList(id string) *List {
	if id == "" {
		id = DefaultContainerID
	}
	return &List{id: id}
}

// ID returns the container's element id.
func (l *List) ID() string {
	return l.id
}

// AppendChild adds node after every existing child.
func (l *List) AppendChild(node Node) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nodes = append(l.nodes, node)
	return nil
}

// Children returns a snapshot of the children in append order.
func (l *List) Children() []Node {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Node, len(l.nodes))
	copy(out, l.nodes)
	return out
}

// Len returns the number of children.
func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.nodes)
}

// Render writes the container element and its children as HTML.
func (l *List) Render(ctx context.Context, w io.Writer) error {
	return ListView(l.id, l.Children()).Render(ctx, w)
}

// Page maps element ids to the containers mounted in a view.
type Page struct {
	mu         sync.RWMutex
	containers map[string]Container
}

// NewPage creates a page with no containers.
func NewPage() *Page {
	return &Page{containers: map[string]Container{}}
}

// Mount registers container under id, replacing any previous one.
func (p *Page) Mount(id string, container Container) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.containers[id] = container
}

// Unmount removes the container registered under id.
func (p *Page) Unmount(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.containers, id)
}

// Lookup returns the container registered under id.
func (p *Page) Lookup(id string) (Container, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	container, ok := p.containers[id]
	if !ok || container == nil {
		return nil, &ContainerNotFoundError{ID: id}
	}
	return container, nil
}
