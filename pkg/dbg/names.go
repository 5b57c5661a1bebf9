// Package dbg turns opaque identities (edge handles, ids) into readable names
// for log lines. Names are handed out lazily and memoised per Namer; they are
// random per run, so the same name does not mean the same thing across runs.
package dbg

import (
	"fmt"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"
)

func init() {
	petname.NonDeterministicMode()
}

// Namer hands out names for one owner, usually one mesh. It is safe for
// concurrent use.
type Namer struct {
	mu   sync.Mutex
	memo map[any]string
}

func NewNamer() *Namer {
	return &Namer{memo: make(map[any]string)}
}

// Name returns the name of obj, making one up on first sight. obj must be
// comparable.
func (n *Namer) Name(obj any) string {
	if obj == nil {
		return "Ø"
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if r, ok := n.memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
	n.memo[obj] = r
	return r
}

func (n *Namer) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.memo)
}

// Reset forgets every name handed out so far.
func (n *Namer) Reset() {
	n.mu.Lock()
	clear(n.memo)
	n.mu.Unlock()
}

// Kind tells Colored how to paint a name.
type Kind int

const (
	Finite   Kind = iota // both ends are sites
	Outer                // one end at infinity
	Boundary             // both ends at infinity
)

// Colored is Name painted by kind, in the same colours the log panel shows.
func (n *Namer) Colored(obj any, kind Kind) string {
	name := n.Name(obj)
	switch kind {
	case Boundary:
		return aurora.Cyan(name).String()
	case Outer:
		return aurora.Yellow(name).String()
	default:
		return aurora.Green(name).String()
	}
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
