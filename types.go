package agent

import (
	"fmt"
	"strings"
)

// AssignmentType is the classified destination for an assignment.
type AssignmentType int

const (
	// TypeCoding routes the assignment to a source repository.
	TypeCoding AssignmentType = iota
	// TypeWriting routes the assignment to a documentation page.
	TypeWriting
)

// String returns the lowercase name of the type.
func (t AssignmentType) String() string {
	switch t {
	case TypeCoding:
		return "coding"
	case TypeWriting:
		return "writing"
	}
	return fmt.Sprintf("AssignmentType(%d)", int(t))
}

// ParseAssignmentType converts a caller-supplied type string.
// Accepts "coding"/"c" and "writing"/"w", case-insensitive.
func ParseAssignmentType(s string) (AssignmentType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "coding", "c":
		return TypeCoding, nil
	case "writing", "w":
		return TypeWriting, nil
	}
	return TypeCoding, fmt.Errorf("%w: %q", ErrInvalidType, s)
}

// Course is one entry from the course-listing service.
type Course struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Assignment is a single assignment record as fetched from Canvas.
// Immutable once fetched; scoped to a single pipeline run.
// DueAt and CreatedAt are raw timestamp strings; either may be empty, and
// DueAt may be unparsable (such records are excluded from "next upcoming"
// selection rather than surfaced as failures).
type Assignment struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"` // raw HTML
	DueAt       string `json:"due_at"`
	CreatedAt   string `json:"created_at"`
}

// DueDisplay returns the due timestamp or a placeholder when absent.
func (a Assignment) DueDisplay() string {
	if a.DueAt == "" {
		return "No due date"
	}
	return a.DueAt
}

// File is one generated file: a relative path and its content.
type File struct {
	Path    string
	Content string
}

// FileSet is an ordered mapping from relative file path to file content.
// Paths are unique; adding an existing path replaces its content in place.
// Built once per run, then handed wholesale to the publishing collaborator.
type FileSet struct {
	files []File
	index map[string]int
}

// NewFileSet returns an empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{index: make(map[string]int)}
}

// Add inserts content at path, preserving first-insertion order.
func (fs *FileSet) Add(path, content string) {
	if i, ok := fs.index[path]; ok {
		fs.files[i].Content = content
		return
	}
	fs.index[path] = len(fs.files)
	fs.files = append(fs.files, File{Path: path, Content: content})
}

// Get returns the content at path and whether it exists.
func (fs *FileSet) Get(path string) (string, bool) {
	i, ok := fs.index[path]
	if !ok {
		return "", false
	}
	return fs.files[i].Content, true
}

// Has reports whether path is present.
func (fs *FileSet) Has(path string) bool {
	_, ok := fs.index[path]
	return ok
}

// Paths returns paths in insertion order.
func (fs *FileSet) Paths() []string {
	paths := make([]string, len(fs.files))
	for i, f := range fs.files {
		paths[i] = f.Path
	}
	return paths
}

// Files returns the entries in insertion order.
func (fs *FileSet) Files() []File {
	out := make([]File, len(fs.files))
	copy(out, fs.files)
	return out
}

// Len returns the number of entries.
func (fs *FileSet) Len() int {
	return len(fs.files)
}

// Repository is the created-repository reference returned by the
// repository-hosting collaborator.
type Repository struct {
	Name  string
	Owner string
	URL   string
}

// Page is the three-block layout published to the page-hosting service.
type Page struct {
	Title       string
	DueDate     string
	Description string
}

// PageRef is the created-page reference.
type PageRef struct {
	ID  string
	URL string
}
