// Package fileops provides the filesystem primitives used by skill file
// operations: atomic single-file copy, recursive tree copy, collision-free
// destination naming and entry-name checks.
//
// # Copying
//
// AtomicCopy writes to a temporary file beside the destination and renames it
// into place, so readers see either the old file or the complete new one.
// CopyTree applies AtomicCopy to every regular file below a directory.
//
//	dst := fileops.UniquePath("/skills/notes.md", fileops.CopySuffix)
//	// "/skills/notes_copy1.md" when notes.md already exists
//	if err := fileops.AtomicCopy("/skills/notes.md", dst); err != nil {
//	    return err
//	}
//
// # Names and paths
//
// ValidateEntryName rejects names that would escape their parent directory.
// ContainedIn checks that a path stays below a base directory after symlinks
// are resolved.
package fileops
