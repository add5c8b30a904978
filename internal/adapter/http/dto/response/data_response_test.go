package response

import (
	"strings"
	"testing"
	"time"

	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/usecase"
)

func TestFromTicket(t *testing.T) {
	v := 1234.5
	r := FromTicket(entities.TicketDisplay{ID: "t1", Status: entities.TicketStatusEmAndamento, ServiceValue: &v})
	if r.StatusCor != "#3466F6" {
		t.Fatalf("unexpected color %q", r.StatusCor)
	}
	if !strings.HasPrefix(r.ValorFormatado, "R$ 1") || !strings.HasSuffix(r.ValorFormatado, ",50") {
		t.Fatalf("unexpected value %q", r.ValorFormatado)
	}

	r = FromTicket(entities.TicketDisplay{Status: entities.TicketStatusRecusado})
	if r.ValorFormatado != "" || r.StatusCor != "#808080" {
		t.Fatalf("unexpected response %+v", r)
	}
}

func TestFromQuotes(t *testing.T) {
	qs := FromQuotes([]entities.Quote{
		{ID: "a", Value: 300, Status: entities.QuoteStatusPendente},
		{ID: "b", Value: 300.01, Status: entities.QuoteStatusAprovado},
	})
	if qs[0].AltoValor || !qs[1].AltoValor {
		t.Fatalf("threshold is exclusive: %+v", qs)
	}
	if qs[1].StatusCor != "#4CAF50" {
		t.Fatalf("unexpected color %q", qs[1].StatusCor)
	}
}

func TestFromSnapshot(t *testing.T) {
	r := FromSnapshot(usecase.Snapshot{State: usecase.StateLoading})
	if r.CarregadoEm != nil || r.Estado != "loading" {
		t.Fatalf("unexpected response %+v", r)
	}

	now := time.Now()
	r = FromSnapshot(usecase.Snapshot{
		State:    usecase.StateReady,
		Clients:  []entities.ClientDisplay{{ID: "c1"}},
		LoadedAt: now,
	})
	if r.CarregadoEm == nil || !r.CarregadoEm.Equal(now) || r.Clientes != 1 {
		t.Fatalf("unexpected response %+v", r)
	}
}
