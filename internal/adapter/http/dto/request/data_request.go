package request

import (
	"strings"

	"assistencia_tecnica/internal/domain/entities"
)

// Payloads of the client, equipment and ticket screens. Required fields
// are checked by the repositories so that every screen gets the same
// pt-BR validation messages.

type ClientRequest struct {
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
	Email    string `json:"email"`
	Endereco string `json:"endereco"`
}

func (r ClientRequest) ToInput() entities.ClientInput {
	return entities.ClientInput{
		Name:    strings.TrimSpace(r.Nome),
		Phone:   strings.TrimSpace(r.Telefone),
		Email:   strings.TrimSpace(r.Email),
		Address: strings.TrimSpace(r.Endereco),
	}
}

type ClientPatchRequest struct {
	Nome     *string `json:"nome"`
	Telefone *string `json:"telefone"`
	Email    *string `json:"email"`
	Endereco *string `json:"endereco"`
}

func (r ClientPatchRequest) ToPatch() entities.ClientPatch {
	return entities.ClientPatch{
		Name:    trimmed(r.Nome),
		Phone:   trimmed(r.Telefone),
		Email:   trimmed(r.Email),
		Address: trimmed(r.Endereco),
	}
}

type EquipmentRequest struct {
	Codigo      string `json:"codigo"`
	Nome        string `json:"nome"`
	Marca       string `json:"marca"`
	Modelo      string `json:"modelo"`
	Categoria   string `json:"categoria"`
	Observacoes string `json:"observacoes"`
	ClienteID   string `json:"clienteId"`
}

func (r EquipmentRequest) ToInput() entities.EquipmentInput {
	return entities.EquipmentInput{
		Code:     strings.TrimSpace(r.Codigo),
		Name:     strings.TrimSpace(r.Nome),
		Brand:    strings.TrimSpace(r.Marca),
		Model:    strings.TrimSpace(r.Modelo),
		Category: strings.TrimSpace(r.Categoria),
		Notes:    strings.TrimSpace(r.Observacoes),
		ClientID: strings.TrimSpace(r.ClienteID),
	}
}

type EquipmentPatchRequest struct {
	Codigo      *string `json:"codigo"`
	Nome        *string `json:"nome"`
	Marca       *string `json:"marca"`
	Modelo      *string `json:"modelo"`
	Categoria   *string `json:"categoria"`
	Observacoes *string `json:"observacoes"`
	ClienteID   *string `json:"clienteId"`
}

func (r EquipmentPatchRequest) ToPatch() entities.EquipmentPatch {
	return entities.EquipmentPatch{
		Code:     trimmed(r.Codigo),
		Name:     trimmed(r.Nome),
		Brand:    trimmed(r.Marca),
		Model:    trimmed(r.Modelo),
		Category: trimmed(r.Categoria),
		Notes:    trimmed(r.Observacoes),
		ClientID: trimmed(r.ClienteID),
	}
}

type TicketRequest struct {
	ClienteID     string   `json:"clienteId"`
	EquipamentoID string   `json:"equipamentoId"`
	Problema      string   `json:"problema"`
	Tecnico       string   `json:"tecnico"`
	Status        string   `json:"status"`
	ValorServico  *float64 `json:"valorServico"`
	Observacoes   string   `json:"observacoes"`
}

func (r TicketRequest) ToInput() entities.TicketInput {
	return entities.TicketInput{
		ClientID:     strings.TrimSpace(r.ClienteID),
		EquipmentID:  strings.TrimSpace(r.EquipamentoID),
		Problem:      strings.TrimSpace(r.Problema),
		Technician:   strings.TrimSpace(r.Tecnico),
		Status:       entities.TicketStatus(strings.TrimSpace(r.Status)),
		ServiceValue: r.ValorServico,
		Notes:        strings.TrimSpace(r.Observacoes),
	}
}

type TicketPatchRequest struct {
	ClienteID     *string  `json:"clienteId"`
	EquipamentoID *string  `json:"equipamentoId"`
	Problema      *string  `json:"problema"`
	Tecnico       *string  `json:"tecnico"`
	Status        *string  `json:"status"`
	ValorServico  *float64 `json:"valorServico"`
	Observacoes   *string  `json:"observacoes"`
}

func (r TicketPatchRequest) ToPatch() entities.TicketPatch {
	p := entities.TicketPatch{
		ClientID:     trimmed(r.ClienteID),
		EquipmentID:  trimmed(r.EquipamentoID),
		Problem:      trimmed(r.Problema),
		Technician:   trimmed(r.Tecnico),
		ServiceValue: r.ValorServico,
		Notes:        trimmed(r.Observacoes),
	}
	if s := trimmed(r.Status); s != nil {
		status := entities.TicketStatus(*s)
		p.Status = &status
	}
	return p
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
