package entities

// QuoteStatus is the customer-facing status of an orçamento.
type QuoteStatus string

const (
	QuoteStatusPendente QuoteStatus = "Pendente"
	QuoteStatusAprovado QuoteStatus = "Aprovado"
	QuoteStatusRecusado QuoteStatus = "Recusado"
)

// Quote is a read-only projection of a priced Ticket. It is never stored;
// ID is the ticket id.
type Quote struct {
	ID          string      `json:"id"`
	Client      string      `json:"cliente"`
	Equipment   string      `json:"equipamento"`
	Description string      `json:"descricao"`
	Value       float64     `json:"valor"`
	Status      QuoteStatus `json:"status"`
	Date        string      `json:"data"`
	Technician  string      `json:"tecnico"`
}
