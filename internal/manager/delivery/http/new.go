package http

import (
	"github-manager/internal/manager"
	"github-manager/pkg/log"
)

type handler struct {
	l  log.Logger
	uc manager.UseCase
}

// New creates a new HTTP handler for the manager domain.
func New(l log.Logger, uc manager.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
