package storage

import (
	"time"

	"github.com/revelaction/ertrie/model"
	sent "github.com/revelaction/ertrie/sentence"
)

// ExampleReader defines read operations for training example storage.
// Examples are grouped in named sets.
type ExampleReader interface {
	// ReadAll returns the examples of all sets, set after set in name order
	ReadAll() (model.Library, error)

	// Read returns the examples of a single set
	Read(set string) (model.Library, error)

	// Names returns the names of the sets, sorted
	Names() ([]string, error)
}

// ExampleWriter defines write operations for training example storage
type ExampleWriter interface {
	// Write replaces the examples of a set
	Write(set string, lib model.Library) error
}

// ExampleRepository combines read and write operations
type ExampleRepository interface {
	ExampleReader
	ExampleWriter
}

// StoredModel is a consolidated paragraph model with its metadata.
type StoredModel struct {
	Id      string      `json:"id"`
	Title   string      `json:"title"`
	Created time.Time   `json:"created"`
	Model   model.Model `json:"model"`
}

// ModelReader defines read operations for consolidated model storage
type ModelReader interface {
	// ReadModel returns the model with the given id
	ReadModel(id string) (StoredModel, error)

	// ListModels returns id, title and creation time of all models, newest
	// first. Model is not loaded.
	ListModels() ([]StoredModel, error)
}

// ModelWriter defines write operations for consolidated model storage
type ModelWriter interface {
	// WriteModel persists m and returns its new id
	WriteModel(title string, m model.Model) (string, error)
}

// ModelRepository combines read and write operations
type ModelRepository interface {
	ModelReader
	ModelWriter
}

// DocReader defines read operations for tagged paragraph storage
type DocReader interface {
	// List returns the metadata (Id, Title) of the paragraphs. Sentences
	// are not loaded.
	List() ([]sent.Doc, error)

	// Read returns a paragraph by ID
	Read(id int) (sent.Doc, error)
}
