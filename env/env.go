// Package env implements chained scopes as an arena of frames. A frame is
// addressed by its index in the arena and links to its enclosing frame by
// index, so no frame can ever be re-parented.
package env

import (
	"github.com/xiam/mal/ast"
)

// FrameID addresses a frame within an Arena.
type FrameID int

// NoFrame is the parent of the root frame.
const NoFrame FrameID = -1

// Root is the frame created together with the arena.
const Root FrameID = 0

type frame struct {
	parent   FrameID
	bindings map[string]*ast.Node
}

// Arena owns every frame.
type Arena struct {
	frames []frame
}

// NewArena creates an arena holding only the root frame.
func NewArena() *Arena {
	a := &Arena{}
	a.frames = append(a.frames, frame{
		parent:   NoFrame,
		bindings: make(map[string]*ast.Node),
	})
	return a
}

// NewFrame creates a frame enclosed by parent.
func (a *Arena) NewFrame(parent FrameID) FrameID {
	a.frames = append(a.frames, frame{
		parent:   parent,
		bindings: make(map[string]*ast.Node),
	})
	return FrameID(len(a.frames) - 1)
}

// Parent returns the enclosing frame of id, or NoFrame.
func (a *Arena) Parent(id FrameID) FrameID {
	return a.frames[id].parent
}

// Set binds name in frame id only.
func (a *Arena) Set(id FrameID, name string, value *ast.Node) {
	a.frames[id].bindings[name] = value
}

// Find looks name up in frame id and then in its enclosing frames.
func (a *Arena) Find(id FrameID, name string) (*ast.Node, bool) {
	for ; id != NoFrame; id = a.frames[id].parent {
		if value, ok := a.frames[id].bindings[name]; ok {
			return value, true
		}
	}
	return nil, false
}

// Len returns the number of frames in the arena.
func (a *Arena) Len() int {
	return len(a.frames)
}

// Env is a handle on one frame of an arena.
type Env struct {
	arena *Arena
	id    FrameID
}

// New creates a fresh arena and returns a handle on its root frame.
func New() *Env {
	return &Env{arena: NewArena(), id: Root}
}

// Child creates a frame enclosed by e and returns a handle on it.
func (e *Env) Child() *Env {
	return &Env{arena: e.arena, id: e.arena.NewFrame(e.id)}
}

// ID returns the frame this handle points to.
func (e *Env) ID() FrameID {
	return e.id
}

// Set binds name in the innermost frame.
func (e *Env) Set(name string, value *ast.Node) {
	e.arena.Set(e.id, name, value)
}

// Find resolves name through the chain of frames.
func (e *Env) Find(name string) (*ast.Node, bool) {
	return e.arena.Find(e.id, name)
}
