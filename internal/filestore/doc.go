// Package filestore reads and writes the plain-text files linedit edits.
//
// Open returns the raw content of a file, treating a missing file as a new,
// empty one. Save writes through a temporary file in the same directory and
// renames it over the target, so a failed save never truncates the file on
// disk. Compare summarizes how the disk content differs from the buffer
// when the file changes underneath the editor.
package filestore
