// Package dialog asks the user to choose a directory, either through the
// desktop's native folder dialog or through an in-terminal browser.
package dialog

import "context"

// Picker asks the user for a directory. ok is false when the user cancelled
// or no dialog could be shown; a missing dialog is never an error.
type Picker interface {
	PickDirectory(ctx context.Context) (path string, ok bool)
}
