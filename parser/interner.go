package parser

import (
	"fmt"

	"github.com/robinvdvleuten/networth/ast"
)

// Interner maps account and asset names to dense ids and back.
//
// Ids are handed out in first-seen order and never reused: the index of a
// name in names is its id. The built-in names of package ast always occupy
// the first ast.NumBuiltIns ids, in the order ast declares them.
type Interner struct {
	names []string
	ids   map[string]ast.ID
}

// NewInterner creates an interner holding only the built-in names.
func NewInterner() *Interner {
	i := &Interner{
		names: make([]string, 0, 64),
		ids:   make(map[string]ast.ID, 64),
	}
	for _, name := range ast.BuiltInNames() {
		i.Register(name)
	}
	return i
}

// Register returns the id of name, assigning the next free id when the name
// has not been seen before. Names are matched exactly.
func (i *Interner) Register(name string) ast.ID {
	if id, ok := i.ids[name]; ok {
		return id
	}
	id := ast.ID(len(i.names))
	i.names = append(i.names, name)
	i.ids[name] = id
	return id
}

// Lookup returns the id of an already registered name.
func (i *Interner) Lookup(name string) (ast.ID, bool) {
	id, ok := i.ids[name]
	return id, ok
}

// Resolve returns the name registered under id. It panics when id was never
// handed out by Register.
func (i *Interner) Resolve(id ast.ID) string {
	if id < 0 || int(id) >= len(i.names) {
		panic(fmt.Sprintf("parser: unknown name id %d", int(id)))
	}
	return i.names[id]
}

// Len returns the number of registered names, built-ins included.
func (i *Interner) Len() int {
	return len(i.names)
}

// Names returns all registered names indexed by id.
func (i *Interner) Names() []string {
	names := make([]string, len(i.names))
	copy(names, i.names)
	return names
}
