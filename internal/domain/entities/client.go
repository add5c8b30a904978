package entities

import "time"

// Client is a customer registered at the shop (collection "clientes").
//
// Storage model:
//   - id assigned by the document store, immutable
//   - dataCadastro stamped server-side at creation, never updated
type Client struct {
	ID           string
	Name         string
	Phone        string
	Email        string
	Address      string
	RegisteredAt time.Time
	CreatedBy    string
}

// ClientDisplay is the shape handed to the UI layer.
type ClientDisplay struct {
	ID           string `json:"id"`
	Name         string `json:"nome"`
	Phone        string `json:"telefone"`
	Email        string `json:"email"`
	Address      string `json:"endereco"`
	RegisteredAt string `json:"dataCadastro"`
}

type ClientInput struct {
	Name    string `json:"nome" validate:"required,notblank"`
	Phone   string `json:"telefone" validate:"required,notblank"`
	Email   string `json:"email" validate:"required,notblank,email"`
	Address string `json:"endereco"`
}

// ClientPatch carries a partial update; nil fields are left untouched.
type ClientPatch struct {
	Name    *string `json:"nome,omitempty"`
	Phone   *string `json:"telefone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"endereco,omitempty"`
}
