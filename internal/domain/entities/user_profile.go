package entities

import "time"

type UserKind string

const (
	UserKindCliente UserKind = "cliente"
	UserKindAdmin   UserKind = "admin"
)

// UserProfile is the profile document stored under usuarios/{uid}.
type UserProfile struct {
	UID       string    `json:"uid"`
	Name      string    `json:"nome"`
	Email     string    `json:"email"`
	Phone     string    `json:"telefone"`
	Address   string    `json:"endereco,omitempty"`
	Kind      UserKind  `json:"tipo"`
	Avatar    string    `json:"avatar,omitempty"`
	Notes     string    `json:"observacoes,omitempty"`
	CreatedAt time.Time `json:"criadoEm"`
	UpdatedAt time.Time `json:"atualizadoEm"`
}

type UserProfileInput struct {
	Name    string   `json:"nome" validate:"required,notblank"`
	Email   string   `json:"email" validate:"required,notblank,email"`
	Phone   string   `json:"telefone" validate:"required,notblank"`
	Address string   `json:"endereco"`
	Kind    UserKind `json:"tipo" validate:"omitempty,oneof=cliente admin"`
	Avatar  string   `json:"avatar"`
	Notes   string   `json:"observacoes"`
}

type UserProfilePatch struct {
	Name    *string `json:"nome,omitempty"`
	Phone   *string `json:"telefone,omitempty"`
	Address *string `json:"endereco,omitempty"`
	Avatar  *string `json:"avatar,omitempty"`
	Notes   *string `json:"observacoes,omitempty"`
}
