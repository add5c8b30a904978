package entities

import "time"

// TicketStatus is the lifecycle of a service ticket (atendimento).
type TicketStatus string

const (
	TicketStatusAguardando  TicketStatus = "Aguardando"
	TicketStatusEmAndamento TicketStatus = "Em andamento"
	TicketStatusConcluido   TicketStatus = "Concluído"
	TicketStatusRecusado    TicketStatus = "Recusado"
)

func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusAguardando, TicketStatusEmAndamento, TicketStatusConcluido, TicketStatusRecusado:
		return true
	}
	return false
}

// Ticket is a service ticket (collection "atendimentos").
//
// ClientName and EquipmentName are denormalized copies taken at write time.
// ServiceValue is nil when no price was quoted yet.
type Ticket struct {
	ID            string
	ClientID      string
	ClientName    string
	EquipmentID   string
	EquipmentName string
	Problem       string
	Status        TicketStatus
	OpenedAt      time.Time
	Technician    string
	ServiceValue  *float64
	Notes         string
	CreatedBy     string
}

type TicketDisplay struct {
	ID            string       `json:"id"`
	ClientID      string       `json:"clienteId"`
	ClientName    string       `json:"clienteNome"`
	EquipmentID   string       `json:"equipamentoId"`
	EquipmentName string       `json:"equipamentoNome"`
	Problem       string       `json:"problema"`
	Status        TicketStatus `json:"status"`
	OpenedAt      string       `json:"data"`
	Technician    string       `json:"tecnico"`
	ServiceValue  *float64     `json:"valorServico,omitempty"`
	Notes         string       `json:"observacoes,omitempty"`
}

type TicketInput struct {
	ClientID      string       `json:"clienteId" validate:"required,notblank"`
	EquipmentID   string       `json:"equipamentoId" validate:"required,notblank"`
	Problem       string       `json:"problema" validate:"required,notblank"`
	Technician    string       `json:"tecnico" validate:"required,notblank"`
	Status        TicketStatus `json:"status"`
	ServiceValue  *float64     `json:"valorServico" validate:"omitempty,gte=0"`
	Notes         string       `json:"observacoes"`
	ClientName    string       `json:"-"`
	EquipmentName string       `json:"-"`
}

type TicketPatch struct {
	ClientID      *string       `json:"clienteId,omitempty"`
	EquipmentID   *string       `json:"equipamentoId,omitempty"`
	Problem       *string       `json:"problema,omitempty"`
	Technician    *string       `json:"tecnico,omitempty"`
	Status        *TicketStatus `json:"status,omitempty"`
	ServiceValue  *float64      `json:"valorServico,omitempty"`
	Notes         *string       `json:"observacoes,omitempty"`
	ClientName    *string       `json:"-"`
	EquipmentName *string       `json:"-"`
}
