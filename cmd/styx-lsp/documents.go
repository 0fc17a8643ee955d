package main

import (
	"sync"

	"github.com/signadot/styx-format/go-styx/debug"
	"github.com/signadot/styx-format/go-styx/ir"
	"github.com/signadot/styx-format/go-styx/parse"
	"github.com/signadot/styx-format/go-styx/token"
)

// documentStore holds the latest parse of each open document.  Handlers
// use a document only while holding the read lock; replacing or removing
// one releases its arena under the write lock.
type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	pos     *token.PosDoc

	// exactly one of doc and err is set
	doc *ir.Document
	err error
}

func newDocument(uri, content string, version int32) *document {
	d := &document{
		uri:     uri,
		content: content,
		version: version,
		pos:     token.NewPosDoc([]byte(content)),
	}
	d.doc, d.err = parse.ParseString(content)
	if debug.LSP() {
		if d.err != nil {
			debug.Logf("%s v%d: %v\n", uri, version, d.err)
		} else {
			debug.Logf("%s v%d: %d nodes\n", uri, version, d.doc.NodeCount())
		}
	}
	return d
}

func (d *document) release() {
	if d.doc != nil {
		d.doc.Release()
	}
}

// view calls fn with the document at uri, or nil, under the read lock.
func (ds *documentStore) view(uri string, fn func(*document)) {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	fn(ds.docs[uri])
}

func (ds *documentStore) put(uri string, content string, version int32) {
	d := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	if old := ds.docs[uri]; old != nil {
		old.release()
	}
	ds.docs[uri] = d
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	if old := ds.docs[uri]; old != nil {
		old.release()
	}
	delete(ds.docs, uri)
}

func (ds *documentStore) clear() {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	for uri, d := range ds.docs {
		d.release()
		delete(ds.docs, uri)
	}
}
