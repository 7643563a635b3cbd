package suite

import (
	"fmt"
	"sync"

	"redfa/regexlib"
)

// Environment caches compilation results by pattern, failures included,
// so a pattern shared by several cases or files is built once.
type Environment struct {
	opts regexlib.Options

	mu      sync.Mutex
	regexes map[string]compiled
}

type compiled struct {
	re  *regexlib.Regex
	err error
}

func NewEnvironment(opts regexlib.Options) *Environment {
	return &Environment{opts: opts, regexes: make(map[string]compiled)}
}

func (e *Environment) Compile(pattern string) (*regexlib.Regex, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if c, ok := e.regexes[pattern]; ok {
		return c.re, c.err
	}
	re, err := regexlib.CompileWith(pattern, e.opts)
	e.regexes[pattern] = compiled{re: re, err: err}
	return re, err
}

// Len returns the number of cached patterns.
func (e *Environment) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.regexes)
}

func (e *Environment) String() string {
	return fmt.Sprintf("%d patterns", e.Len())
}
