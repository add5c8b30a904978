package entities

import "time"

// ServiceDescription is an entry of the service catalog (collection
// "descricoes"). Duration is expressed in minutes.
type ServiceDescription struct {
	ID          string    `json:"id"`
	Title       string    `json:"titulo"`
	Description string    `json:"descricao"`
	Category    string    `json:"categoria"`
	Price       float64   `json:"preco"`
	Duration    int       `json:"duracao"`
	Active      bool      `json:"ativo"`
	Tags        []string  `json:"tags,omitempty"`
	Notes       string    `json:"observacoes,omitempty"`
	CreatedBy   string    `json:"criadoPor"`
	CreatedAt   time.Time `json:"criadoEm"`
	UpdatedAt   time.Time `json:"atualizadoEm"`
}

type ServiceDescriptionInput struct {
	Title       string   `json:"titulo" validate:"required,notblank"`
	Description string   `json:"descricao" validate:"required,notblank"`
	Category    string   `json:"categoria" validate:"required,notblank"`
	Price       float64  `json:"preco" validate:"gte=0"`
	Duration    int      `json:"duracao" validate:"gte=0"`
	Active      bool     `json:"ativo"`
	Tags        []string `json:"tags"`
	Notes       string   `json:"observacoes"`
	CreatedBy   string   `json:"-"`
}

type ServiceDescriptionPatch struct {
	Title       *string   `json:"titulo,omitempty"`
	Description *string   `json:"descricao,omitempty"`
	Category    *string   `json:"categoria,omitempty"`
	Price       *float64  `json:"preco,omitempty"`
	Duration    *int      `json:"duracao,omitempty"`
	Active      *bool     `json:"ativo,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	Notes       *string   `json:"observacoes,omitempty"`
}
