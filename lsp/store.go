package lsp

import (
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dhamidi/calc/expr"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Store keeps the latest evaluation of every open document.
type Store struct {
	mu   sync.Mutex
	docs map[protocol.DocumentUri]*expr.Document
}

func NewStore() *Store {
	return &Store{docs: make(map[protocol.DocumentUri]*expr.Document)}
}

// Update evaluates text and replaces the stored document for uri.
func (s *Store) Update(uri protocol.DocumentUri, text string, opts ...expr.Option) *expr.Document {
	opts = append([]expr.Option{expr.WithFile(uriToPath(uri))}, opts...)
	doc := expr.EvaluateDocument([]byte(text), opts...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = doc
	return doc
}

func (s *Store) Get(uri protocol.DocumentUri) *expr.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docs[uri]
}

func (s *Store) Remove(uri protocol.DocumentUri) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

func uriToPath(uri string) string {
	if strings.HasPrefix(uri, "file://") {
		if parsed, err := url.Parse(uri); err == nil {
			return filepath.Clean(parsed.Path)
		}
	}
	return uri
}
