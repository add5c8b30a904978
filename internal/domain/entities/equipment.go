package entities

import "time"

// Equipment is a device taken in for repair (collection "equipamentos").
//
// ClientName is a snapshot of the owner's name taken when the equipment is
// registered. It is not rewritten when the client is renamed.
type Equipment struct {
	ID         string
	Code       string
	Name       string
	Brand      string
	Model      string
	Category   string
	Notes      string
	ClientID   string
	ClientName string
	IntakeAt   time.Time
	CreatedBy  string
}

type EquipmentDisplay struct {
	ID         string `json:"id"`
	Code       string `json:"codigo"`
	Name       string `json:"nome"`
	Brand      string `json:"marca"`
	Model      string `json:"modelo"`
	Category   string `json:"categoria"`
	Notes      string `json:"observacoes,omitempty"`
	ClientID   string `json:"clienteId"`
	ClientName string `json:"clienteNome"`
	IntakeAt   string `json:"dataEntrada"`
}

// EquipmentInput is the create payload. ClientName is filled by the
// aggregator from its in-memory clients, callers leave it empty.
type EquipmentInput struct {
	Code       string `json:"codigo" validate:"required,notblank"`
	Name       string `json:"nome" validate:"required,notblank"`
	Brand      string `json:"marca" validate:"required,notblank"`
	Model      string `json:"modelo" validate:"required,notblank"`
	Category   string `json:"categoria" validate:"required,notblank"`
	Notes      string `json:"observacoes"`
	ClientID   string `json:"clienteId" validate:"required,notblank"`
	ClientName string `json:"-"`
}

type EquipmentPatch struct {
	Code       *string `json:"codigo,omitempty"`
	Name       *string `json:"nome,omitempty"`
	Brand      *string `json:"marca,omitempty"`
	Model      *string `json:"modelo,omitempty"`
	Category   *string `json:"categoria,omitempty"`
	Notes      *string `json:"observacoes,omitempty"`
	ClientID   *string `json:"clienteId,omitempty"`
	ClientName *string `json:"-"`
}
