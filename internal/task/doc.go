// Package task holds the task model and the file-backed task store.
//
// The task file (~/.taskgo/tasks.json) is a plain JSON array:
//
//	[
//	  {
//	    "id": 1,
//	    "description": "buy milk",
//	    "done": false
//	  }
//	]
//
// Insertion order is preserved on disk; ids are unique and assigned
// monotonically (max existing id + 1), never reused after deletion.
//
// # Validation
//
// Load validates the file against an embedded JSON Schema
// (draft 2020-12) and additionally rejects duplicate ids, which the
// schema cannot express. A file that fails either check is reported
// as a StorageError; a missing file is not an error and loads as an
// empty list.
//
// # File format
//
// Save writes with 2-space indentation and a trailing newline, through
// a temp file renamed into place so a crashed invocation never leaves
// a torn file behind.
package task
