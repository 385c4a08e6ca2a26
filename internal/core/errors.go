package core

import "errors"

// ErrBoardTooLarge reports a requested buffer pair that exceeds the
// configured cell budget.
var ErrBoardTooLarge = errors.New("huelife: board exceeds the cell budget")
