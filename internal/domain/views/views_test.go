package views

import (
	"strings"
	"testing"

	"assistencia_tecnica/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func value(v float64) *float64 { return &v }

func TestFilterBySubstring(t *testing.T) {
	clients := []entities.ClientDisplay{
		{ID: "1", Name: "João Silva", Email: "joao@exemplo.com", Phone: "1199"},
		{ID: "2", Name: "Maria Souza", Email: "maria@exemplo.com", Phone: "2188"},
	}

	t.Run("empty query is identity", func(t *testing.T) {
		got := FilterBySubstring(clients, "", ClientFields...)
		require.Equal(t, clients, got)
		require.Same(t, &clients[0], &got[0])
	})

	t.Run("case insensitive", func(t *testing.T) {
		got := FilterBySubstring(clients, "SILVA", ClientFields[0])
		require.Len(t, got, 1)
		require.Equal(t, "1", got[0].ID)
	})

	t.Run("or across fields", func(t *testing.T) {
		got := FilterBySubstring(clients, "2188", ClientFields...)
		require.Len(t, got, 1)
		require.Equal(t, "2", got[0].ID)

		got = FilterBySubstring(clients, "exemplo", ClientFields...)
		require.Len(t, got, 2)
	})

	t.Run("no match", func(t *testing.T) {
		require.Empty(t, FilterBySubstring(clients, "pedro", ClientFields...))
	})
}

func TestQuotesView(t *testing.T) {
	tickets := []entities.TicketDisplay{
		{ID: "t1", Status: entities.TicketStatusConcluido, ServiceValue: value(120), ClientName: "João", EquipmentName: "TV", Problem: "tela"},
		{ID: "t2", Status: entities.TicketStatusAguardando},
		{ID: "t3", Status: entities.TicketStatusRecusado, ServiceValue: value(80)},
		{ID: "t4", Status: entities.TicketStatusEmAndamento, ServiceValue: value(0)},
		{ID: "t5", Status: entities.TicketStatusEmAndamento, ServiceValue: value(500)},
	}

	quotes := QuotesView(tickets)

	require.Len(t, quotes, 3)
	require.Equal(t, "t1", quotes[0].ID)
	require.Equal(t, entities.QuoteStatusAprovado, quotes[0].Status)
	require.Equal(t, "João", quotes[0].Client)
	require.Equal(t, "tela", quotes[0].Description)
	require.Equal(t, entities.QuoteStatusRecusado, quotes[1].Status)
	require.Equal(t, entities.QuoteStatusPendente, quotes[2].Status)
	require.Equal(t, 500.0, quotes[2].Value)
}

func TestHighValueFlag(t *testing.T) {
	require.True(t, HighValueFlag(301))
	require.False(t, HighValueFlag(300))
	require.False(t, HighValueFlag(0))
}

func TestStatusColors(t *testing.T) {
	require.Equal(t, "#FFA500", TicketStatusColor(entities.TicketStatusAguardando))
	require.Equal(t, "#4CAF50", TicketStatusColor(entities.TicketStatusConcluido))
	require.Equal(t, colorGray, TicketStatusColor(entities.TicketStatusRecusado))
	require.Equal(t, "#F44336", QuoteStatusColor(entities.QuoteStatusRecusado))
}

func TestFormatBRL(t *testing.T) {
	got := FormatBRL(350)
	require.True(t, strings.HasPrefix(got, "R$ "), got)
	require.True(t, strings.HasSuffix(got, ",00"), got)
}

func TestDescriptionHelpers(t *testing.T) {
	ds := []entities.ServiceDescription{
		{ID: "1", Title: "Troca de tela", Category: "Celular", Active: true, Tags: []string{"display"}},
		{ID: "2", Title: "Formatação", Category: "Informática", Active: true},
		{ID: "3", Title: "Bateria", Category: "Celular", Active: true},
		{ID: "4", Title: "Limpeza", Category: "Informática", Active: false},
	}

	require.Equal(t, []string{"Celular", "Informática"}, Categories(ds))

	active := ActiveDescriptions(ds)
	require.Len(t, active, 3)
	require.Equal(t, []string{"3", "1", "2"}, []string{active[0].ID, active[1].ID, active[2].ID})

	found := FilterBySubstring(ds, "DISPLAY", DescriptionFields...)
	require.Len(t, found, 1)
	require.Equal(t, "1", found[0].ID)
}
