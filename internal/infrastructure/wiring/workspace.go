// Package wiring assembles repositories, services and the AI provider
// for a workspace root.
package wiring

import (
	"github.com/elmaestro544/sgroadmap-sub001/internal/infrastructure/storage"
)

// Workspace bundles core infrastructure dependencies.
type Workspace struct {
	Repo *storage.FilesystemRepository
}

func NewWorkspace(root string) *Workspace {
	return &Workspace{
		Repo: storage.NewFilesystemRepository(root),
	}
}
