package palette

import "errors"

// ErrBadHex indicates a malformed hex colour string.
var ErrBadHex = errors.New("palette: malformed hex colour")
