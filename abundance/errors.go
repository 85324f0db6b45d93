package abundance

import "errors"

// ErrOutOfMemory is returned by Build when WithRequireDense was given and
// the dense bitset representation would exceed the configured memory
// budget. Without WithRequireDense, Build instead falls back to the
// sparse representation rather than failing.
var ErrOutOfMemory = errors.New("abundance: dense table exceeds memory budget")
