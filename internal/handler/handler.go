package handler

import (
	"github.com/leadsite/backend/internal/repository"
)

// Handler serves endpoints that need no service layer.
type Handler struct {
	db      repository.DB
	service string
}

// New creates a Handler. name is reported by the health check.
func New(db repository.DB, name string) *Handler {
	return &Handler{db: db, service: name}
}
