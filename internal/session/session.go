// Package session keeps the per-file document registry: a single-writer,
// path-keyed map from file path to its *document.Document, per SPEC_FULL.md
// §4's domain-stack addition around the core splitter/document components.
package session

import (
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/pgsql-ls/core/document"
	"github.com/pgsql-ls/core/splitter"
)

// Registry owns every open document, keyed by path. It is not safe for
// concurrent use from more than one goroutine; per spec.md §5 the document
// model is single-writer, and the registry inherits that.
type Registry struct {
	docs map[string]*document.Document
	opts splitter.Options
}

// NewRegistry constructs an empty registry. opts is applied to every
// document opened through it.
func NewRegistry(opts splitter.Options) *Registry {
	return &Registry{docs: make(map[string]*document.Document), opts: opts}
}

// Open registers a new document at path, or a generated session key when
// path is empty (an untitled/scratch buffer), and returns the key used.
func (r *Registry) Open(path, text string, version int) (string, *document.Document) {
	key := path
	if key == "" {
		key = newSessionID()
	}
	doc := document.Open(key, text, version, r.opts)
	r.docs[key] = doc
	return key, doc
}

// Get returns the document registered under key, if any.
func (r *Registry) Get(key string) (*document.Document, bool) {
	d, ok := r.docs[key]
	return d, ok
}

// Apply applies params to the document registered under params.Path.
func (r *Registry) Apply(params document.ChangeFileParams) ([]document.StatementChange, error) {
	d, ok := r.docs[params.Path]
	if !ok {
		return nil, fmt.Errorf("session: no open document for %q", params.Path)
	}
	return d.Apply(params), nil
}

// Close removes key from the registry.
func (r *Registry) Close(key string) {
	if d, ok := r.docs[key]; ok {
		d.Close()
		delete(r.docs, key)
	}
}

// Len reports how many documents are currently open.
func (r *Registry) Len() int { return len(r.docs) }

func newSessionID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return "untitled"
	}
	return "untitled:" + id.String()
}
