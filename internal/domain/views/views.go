// Package views builds read-only projections over snapshots of the
// aggregated collections. Nothing here performs I/O or mutates its input.
package views

import (
	"sort"
	"strings"

	"assistencia_tecnica/internal/domain/entities"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// HighValueThreshold marks quotes that deserve a highlight badge.
const HighValueThreshold = 300.0

// Field extracts one searchable string from an item.
type Field[T any] func(T) string

// FilterBySubstring keeps the items whose fields contain query, ignoring
// case. Any matching field includes the item. An empty query returns items
// as is.
func FilterBySubstring[T any](items []T, query string, fields ...Field[T]) []T {
	if query == "" {
		return items
	}
	folder := cases.Fold()
	needle := folder.String(query)
	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, field := range fields {
			if strings.Contains(folder.String(field(it)), needle) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// QuotesView derives quotes from tickets carrying a positive service value,
// preserving ticket order.
func QuotesView(tickets []entities.TicketDisplay) []entities.Quote {
	out := make([]entities.Quote, 0, len(tickets))
	for _, t := range tickets {
		if t.ServiceValue == nil || *t.ServiceValue <= 0 {
			continue
		}
		out = append(out, entities.Quote{
			ID:          t.ID,
			Client:      t.ClientName,
			Equipment:   t.EquipmentName,
			Description: t.Problem,
			Value:       *t.ServiceValue,
			Status:      QuoteStatusFor(t.Status),
			Date:        t.OpenedAt,
			Technician:  t.Technician,
		})
	}
	return out
}

func QuoteStatusFor(s entities.TicketStatus) entities.QuoteStatus {
	switch s {
	case entities.TicketStatusConcluido:
		return entities.QuoteStatusAprovado
	case entities.TicketStatusRecusado:
		return entities.QuoteStatusRecusado
	default:
		return entities.QuoteStatusPendente
	}
}

func HighValueFlag(value float64) bool {
	return value > HighValueThreshold
}

const colorGray = "#808080"

func TicketStatusColor(s entities.TicketStatus) string {
	switch s {
	case entities.TicketStatusAguardando:
		return "#FFA500"
	case entities.TicketStatusEmAndamento:
		return "#3466F6"
	case entities.TicketStatusConcluido:
		return "#4CAF50"
	}
	return colorGray
}

func QuoteStatusColor(s entities.QuoteStatus) string {
	switch s {
	case entities.QuoteStatusPendente:
		return "#FFA500"
	case entities.QuoteStatusAprovado:
		return "#4CAF50"
	case entities.QuoteStatusRecusado:
		return "#F44336"
	}
	return colorGray
}

// FormatBRL renders value as Brazilian reais, e.g. "R$ 1.234,50".
func FormatBRL(value float64) string {
	return message.NewPrinter(language.BrazilianPortuguese).Sprintf("R$ %.2f", value)
}

// Search field sets used by the list screens.
var (
	ClientFields = []Field[entities.ClientDisplay]{
		func(c entities.ClientDisplay) string { return c.Name },
		func(c entities.ClientDisplay) string { return c.Phone },
		func(c entities.ClientDisplay) string { return c.Email },
	}
	EquipmentFields = []Field[entities.EquipmentDisplay]{
		func(e entities.EquipmentDisplay) string { return e.Name },
		func(e entities.EquipmentDisplay) string { return e.Code },
		func(e entities.EquipmentDisplay) string { return e.ClientName },
		func(e entities.EquipmentDisplay) string { return e.Brand },
		func(e entities.EquipmentDisplay) string { return e.Model },
	}
	TicketFields = []Field[entities.TicketDisplay]{
		func(t entities.TicketDisplay) string { return t.ClientName },
		func(t entities.TicketDisplay) string { return t.EquipmentName },
		func(t entities.TicketDisplay) string { return t.Problem },
	}
	QuoteFields = []Field[entities.Quote]{
		func(q entities.Quote) string { return q.Client },
		func(q entities.Quote) string { return q.Equipment },
		func(q entities.Quote) string { return q.Description },
	}
	DescriptionFields = []Field[entities.ServiceDescription]{
		func(d entities.ServiceDescription) string { return d.Title },
		func(d entities.ServiceDescription) string { return d.Description },
		func(d entities.ServiceDescription) string { return strings.Join(d.Tags, "\x00") },
	}
)

// Categories returns the distinct catalog categories in ascending order.
func Categories(ds []entities.ServiceDescription) []string {
	seen := make(map[string]struct{}, len(ds))
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		if _, ok := seen[d.Category]; ok {
			continue
		}
		seen[d.Category] = struct{}{}
		out = append(out, d.Category)
	}
	sort.Strings(out)
	return out
}

// ActiveDescriptions keeps active entries, sorted by category then title.
func ActiveDescriptions(ds []entities.ServiceDescription) []entities.ServiceDescription {
	out := make([]entities.ServiceDescription, 0, len(ds))
	for _, d := range ds {
		if d.Active {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Title < out[j].Title
	})
	return out
}
