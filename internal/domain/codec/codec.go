// Package codec converts entities between their wire shape (store
// timestamps, foreign keys) and their display shape (formatted dates).
// All functions are pure.
package codec

import (
	"time"

	"assistencia_tecnica/internal/domain/docstore"
	"assistencia_tecnica/internal/domain/entities"
)

// Placeholder is shown instead of a missing or malformed date.
const Placeholder = "-"

const dateLayout = "02/01/2006"

// Stored field names, shared with the repositories.
const (
	FieldName          = "nome"
	FieldPhone         = "telefone"
	FieldEmail         = "email"
	FieldAddress       = "endereco"
	FieldRegisteredAt  = "dataCadastro"
	FieldCreatedBy     = "criadoPor"
	FieldCode          = "codigo"
	FieldBrand         = "marca"
	FieldModel         = "modelo"
	FieldCategory      = "categoria"
	FieldNotes         = "observacoes"
	FieldClientID      = "clienteId"
	FieldClientName    = "clienteNome"
	FieldIntakeAt      = "dataEntrada"
	FieldEquipmentID   = "equipamentoId"
	FieldEquipmentName = "equipamentoNome"
	FieldProblem       = "problema"
	FieldStatus        = "status"
	FieldOpenedAt      = "data"
	FieldTechnician    = "tecnico"
	FieldServiceValue  = "valorServico"
)

// FormatDate renders t as dd/mm/yyyy in loc. A nil loc means UTC.
func FormatDate(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return Placeholder
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(dateLayout)
}

func ClientToDisplay(c entities.Client, loc *time.Location) entities.ClientDisplay {
	return entities.ClientDisplay{
		ID:           c.ID,
		Name:         c.Name,
		Phone:        c.Phone,
		Email:        c.Email,
		Address:      c.Address,
		RegisteredAt: FormatDate(c.RegisteredAt, loc),
	}
}

func ClientInputToWire(in entities.ClientInput) docstore.Fields {
	return docstore.Fields{
		FieldName:    in.Name,
		FieldPhone:   in.Phone,
		FieldEmail:   in.Email,
		FieldAddress: in.Address,
	}
}

// ClientToWire keeps only the fields set in p. The id and the registration
// stamp are never part of the result.
func ClientToWire(p entities.ClientPatch) docstore.Fields {
	f := docstore.Fields{}
	setString(f, FieldName, p.Name)
	setString(f, FieldPhone, p.Phone)
	setString(f, FieldEmail, p.Email)
	setString(f, FieldAddress, p.Address)
	return f
}

func EquipmentToDisplay(e entities.Equipment, loc *time.Location) entities.EquipmentDisplay {
	return entities.EquipmentDisplay{
		ID:         e.ID,
		Code:       e.Code,
		Name:       e.Name,
		Brand:      e.Brand,
		Model:      e.Model,
		Category:   e.Category,
		Notes:      e.Notes,
		ClientID:   e.ClientID,
		ClientName: e.ClientName,
		IntakeAt:   FormatDate(e.IntakeAt, loc),
	}
}

func EquipmentInputToWire(in entities.EquipmentInput) docstore.Fields {
	return docstore.Fields{
		FieldCode:       in.Code,
		FieldName:       in.Name,
		FieldBrand:      in.Brand,
		FieldModel:      in.Model,
		FieldCategory:   in.Category,
		FieldNotes:      in.Notes,
		FieldClientID:   in.ClientID,
		FieldClientName: in.ClientName,
	}
}

func EquipmentToWire(p entities.EquipmentPatch) docstore.Fields {
	f := docstore.Fields{}
	setString(f, FieldCode, p.Code)
	setString(f, FieldName, p.Name)
	setString(f, FieldBrand, p.Brand)
	setString(f, FieldModel, p.Model)
	setString(f, FieldCategory, p.Category)
	setString(f, FieldNotes, p.Notes)
	setString(f, FieldClientID, p.ClientID)
	setString(f, FieldClientName, p.ClientName)
	return f
}

func TicketToDisplay(t entities.Ticket, loc *time.Location) entities.TicketDisplay {
	return entities.TicketDisplay{
		ID:            t.ID,
		ClientID:      t.ClientID,
		ClientName:    t.ClientName,
		EquipmentID:   t.EquipmentID,
		EquipmentName: t.EquipmentName,
		Problem:       t.Problem,
		Status:        t.Status,
		OpenedAt:      FormatDate(t.OpenedAt, loc),
		Technician:    t.Technician,
		ServiceValue:  t.ServiceValue,
		Notes:         t.Notes,
	}
}

func TicketInputToWire(in entities.TicketInput) docstore.Fields {
	f := docstore.Fields{
		FieldClientID:      in.ClientID,
		FieldClientName:    in.ClientName,
		FieldEquipmentID:   in.EquipmentID,
		FieldEquipmentName: in.EquipmentName,
		FieldProblem:       in.Problem,
		FieldStatus:        string(in.Status),
		FieldTechnician:    in.Technician,
		FieldNotes:         in.Notes,
	}
	if in.ServiceValue != nil {
		f[FieldServiceValue] = *in.ServiceValue
	}
	return f
}

func TicketToWire(p entities.TicketPatch) docstore.Fields {
	f := docstore.Fields{}
	setString(f, FieldClientID, p.ClientID)
	setString(f, FieldClientName, p.ClientName)
	setString(f, FieldEquipmentID, p.EquipmentID)
	setString(f, FieldEquipmentName, p.EquipmentName)
	setString(f, FieldProblem, p.Problem)
	setString(f, FieldTechnician, p.Technician)
	setString(f, FieldNotes, p.Notes)
	if p.Status != nil {
		f[FieldStatus] = string(*p.Status)
	}
	if p.ServiceValue != nil {
		f[FieldServiceValue] = *p.ServiceValue
	}
	return f
}

func setString(f docstore.Fields, key string, v *string) {
	if v != nil {
		f[key] = *v
	}
}
