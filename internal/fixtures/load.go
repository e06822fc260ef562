package fixtures

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed fixtures.json
var embedded []byte

//go:embed fixtures.schema.json
var schemaJSON []byte

const schemaURL = "schema://fixtures.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// Load parses and validates the embedded fixture document.
func Load() (*Fixtures, error) {
	return Parse(embedded)
}

// LoadFile parses and validates a fixture document from disk.
func LoadFile(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixtures: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse validates data against the fixture schema and decodes it.
func Parse(data []byte) (*Fixtures, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := fixtureSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var f Fixtures
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding fixtures: %w", err)
	}
	if err := f.check(); err != nil {
		return nil, err
	}
	f.index()
	return &f, nil
}

func fixtureSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal(schemaJSON, &def); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// check enforces the cross-field rules the schema cannot express.
func (f *Fixtures) check() error {
	seen := make(map[string]bool, len(f.Courses))
	for _, c := range f.Courses {
		if seen[c.ID] {
			return fmt.Errorf("duplicate course id %q", c.ID)
		}
		seen[c.ID] = true
	}
	for i, q := range f.Quiz.Questions {
		if q.Correct >= len(q.Options) {
			return fmt.Errorf("quiz question %d: correct option %d out of range", i+1, q.Correct)
		}
	}
	return nil
}

func (f *Fixtures) index() {
	f.courses = make(map[string]*domain.Course, len(f.Courses))
	for _, e := range f.Courses {
		f.courses[e.ID] = e.course()
	}
}

// CourseByID returns the enrolled course with the given ID. The same
// pointer is returned for every call so selection compares by identity.
func (f *Fixtures) CourseByID(id string) (*domain.Course, bool) {
	c, ok := f.courses[id]
	return c, ok
}

// EnrolledCourses returns the enrolled courses in document order.
func (f *Fixtures) EnrolledCourses() []*domain.Course {
	out := make([]*domain.Course, 0, len(f.Courses))
	for _, e := range f.Courses {
		out = append(out, f.courses[e.ID])
	}
	return out
}

// ShareURL returns the public link for a course slug under base.
func ShareURL(base, courseID string) string {
	return strings.TrimRight(base, "/") + "/courses/" + courseID
}
