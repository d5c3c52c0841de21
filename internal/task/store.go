package task

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// Permissions for the task directory and file. The list is private
// user data, so keep both closed to other users.
const (
	dirPerm  = 0o750
	filePerm = 0o600
)

//go:embed tasks.schema.json
var schemaSource string

// taskSchema is compiled once at startup; the schema is embedded, so a
// compile failure is a programming error.
var taskSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("tasks.schema.json", strings.NewReader(schemaSource)); err != nil {
		panic(fmt.Sprintf("add task schema resource: %v", err))
	}
	return compiler.MustCompile("tasks.schema.json")
}

// Store reads and writes the task list at a fixed file path.
type Store struct {
	Path string
}

// NewStore returns a store for the given task file path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load reads and parses the task file. A missing file is equivalent to
// an empty list. A file that exists but does not match the task schema
// (or contains duplicate ids) is a StorageError.
func (s *Store) Load() (List, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return List{}, nil
		}
		return nil, &StorageError{Path: s.Path, Err: fmt.Errorf("read: %w", err)}
	}

	if err := validateSchema(data); err != nil {
		return nil, &StorageError{Path: s.Path, Err: err}
	}

	var list List
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, &StorageError{Path: s.Path, Err: fmt.Errorf("parse: %w", err)}
	}

	if err := checkUniqueIDs(list); err != nil {
		return nil, &StorageError{Path: s.Path, Err: err}
	}

	return list, nil
}

// Save serializes the list with 2-space indentation and writes it
// atomically: temp file in the same directory, fsync, then rename.
// The parent directory is created if needed.
func (s *Store) Save(list List) error {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return &StorageError{Path: s.Path, Err: fmt.Errorf("marshal: %w", err)}
	}

	// Add trailing newline
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(s.Path), dirPerm); err != nil {
		return &StorageError{Path: s.Path, Err: fmt.Errorf("create directory: %w", err)}
	}

	if err := atomicWrite(s.Path, data); err != nil {
		return &StorageError{Path: s.Path, Err: err}
	}

	return nil
}

// validateSchema checks the raw file content against the embedded
// JSON Schema before unmarshaling into typed structs.
func validateSchema(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	if err := taskSchema.Validate(doc); err != nil {
		return fmt.Errorf("invalid task file: %w", err)
	}
	return nil
}

// checkUniqueIDs rejects lists with duplicate ids, which the schema
// cannot express.
func checkUniqueIDs(list List) error {
	seen := make(map[uint32]bool, len(list))
	for _, t := range list {
		if seen[t.ID] {
			return fmt.Errorf("duplicate task id %d", t.ID)
		}
		seen[t.ID] = true
	}
	return nil
}

// atomicWrite writes data to path via a temp file and rename so a
// failed write never leaves a partially written task file.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		tmp.Close()
		os.Remove(tmpPath)
	}

	if err := tmp.Chmod(filePerm); err != nil {
		cleanup()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
