package file

import (
	"intent-chatbot/internal/intent/repository"
	"intent-chatbot/pkg/log"
)

type implRepository struct {
	path string
	l    log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a repository reading the catalog at path (.json, .yaml or .yml).
func New(path string, l log.Logger) *implRepository {
	return &implRepository{
		path: path,
		l:    l,
	}
}
