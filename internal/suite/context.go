package suite

import "io"

// Context carries the compile cache and where progress goes.
// A nil Out suppresses per-check output.
type Context struct {
	Env *Environment
	Out io.Writer
}
