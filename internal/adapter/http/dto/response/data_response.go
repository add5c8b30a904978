package response

import (
	"time"

	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/domain/views"
	"assistencia_tecnica/internal/usecase"
)

type CreatedResponse struct {
	ID string `json:"id"`
}

// StateResponse summarizes the aggregator without its collections.
type StateResponse struct {
	Estado       string     `json:"estado"`
	Erro         string     `json:"erro,omitempty"`
	CarregadoEm  *time.Time `json:"carregadoEm,omitempty"`
	Clientes     int        `json:"clientes"`
	Equipamentos int        `json:"equipamentos"`
	Atendimentos int        `json:"atendimentos"`
}

func FromSnapshot(s usecase.Snapshot) StateResponse {
	r := StateResponse{
		Estado:       string(s.State),
		Erro:         s.Error,
		Clientes:     len(s.Clients),
		Equipamentos: len(s.Equipment),
		Atendimentos: len(s.Tickets),
	}
	if !s.LoadedAt.IsZero() {
		loaded := s.LoadedAt
		r.CarregadoEm = &loaded
	}
	return r
}

type TicketResponse struct {
	entities.TicketDisplay
	StatusCor      string `json:"statusCor"`
	ValorFormatado string `json:"valorFormatado,omitempty"`
}

func FromTicket(t entities.TicketDisplay) TicketResponse {
	r := TicketResponse{TicketDisplay: t, StatusCor: views.TicketStatusColor(t.Status)}
	if t.ServiceValue != nil {
		r.ValorFormatado = views.FormatBRL(*t.ServiceValue)
	}
	return r
}

func FromTickets(ts []entities.TicketDisplay) []TicketResponse {
	out := make([]TicketResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTicket(t))
	}
	return out
}

type QuoteResponse struct {
	entities.Quote
	StatusCor      string `json:"statusCor"`
	ValorFormatado string `json:"valorFormatado"`
	AltoValor      bool   `json:"altoValor"`
}

func FromQuotes(qs []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, QuoteResponse{
			Quote:          q,
			StatusCor:      views.QuoteStatusColor(q.Status),
			ValorFormatado: views.FormatBRL(q.Value),
			AltoValor:      views.HighValueFlag(q.Value),
		})
	}
	return out
}

type DescriptionResponse struct {
	entities.ServiceDescription
	PrecoFormatado string `json:"precoFormatado"`
}

func FromDescription(d entities.ServiceDescription) DescriptionResponse {
	return DescriptionResponse{ServiceDescription: d, PrecoFormatado: views.FormatBRL(d.Price)}
}

func FromDescriptions(ds []entities.ServiceDescription) []DescriptionResponse {
	out := make([]DescriptionResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, FromDescription(d))
	}
	return out
}
