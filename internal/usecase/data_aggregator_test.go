package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"assistencia_tecnica/internal/domain/dataerr"
	"assistencia_tecnica/internal/domain/entities"
	mock_interfaces "assistencia_tecnica/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

type aggregatorMocks struct {
	clients   *mock_interfaces.MockIClientRepository
	equipment *mock_interfaces.MockIEquipmentRepository
	tickets   *mock_interfaces.MockITicketRepository
}

func newTestAggregator(t *testing.T) (*DataAggregator, aggregatorMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := aggregatorMocks{
		clients:   mock_interfaces.NewMockIClientRepository(ctrl),
		equipment: mock_interfaces.NewMockIEquipmentRepository(ctrl),
		tickets:   mock_interfaces.NewMockITicketRepository(ctrl),
	}
	return NewDataAggregator(m.clients, m.equipment, m.tickets, time.UTC, zaptest.NewLogger(t)), m
}

func (m aggregatorMocks) expectLists(clients []entities.Client, equipment []entities.Equipment, tickets []entities.Ticket) {
	m.clients.EXPECT().List(gomock.Any()).Return(clients, nil)
	m.equipment.EXPECT().List(gomock.Any()).Return(equipment, nil)
	m.tickets.EXPECT().List(gomock.Any()).Return(tickets, nil)
}

func value(v float64) *float64 { return &v }

var (
	day        = time.Date(2024, 6, 5, 15, 0, 0, 0, time.UTC)
	clientAna  = entities.Client{ID: "c1", Name: "Ana", RegisteredAt: day}
	notebook   = entities.Equipment{ID: "e1", Name: "Notebook", ClientID: "c1", ClientName: "Ana", IntakeAt: day}
	pricedTask = entities.Ticket{ID: "t1", ClientID: "c1", EquipmentID: "e1", ClientName: "Ana", EquipmentName: "Notebook",
		Problem: "Não liga", Status: entities.TicketStatusAguardando, OpenedAt: day, ServiceValue: value(350)}
)

func TestDataAggregator_ReloadAll(t *testing.T) {
	t.Run("starts loading and becomes ready", func(t *testing.T) {
		a, m := newTestAggregator(t)
		if a.Snapshot().State != StateLoading {
			t.Fatalf("expected loading before the first reload")
		}

		m.expectLists([]entities.Client{clientAna}, []entities.Equipment{notebook}, []entities.Ticket{pricedTask})
		if err := a.ReloadAll(context.Background()); err != nil {
			t.Fatalf("unexpected error %v", err)
		}

		snap := a.Snapshot()
		if snap.State != StateReady || snap.Err != nil {
			t.Fatalf("expected ready, got %+v", snap)
		}
		if len(snap.Clients) != 1 || snap.Clients[0].RegisteredAt != "05/06/2024" {
			t.Fatalf("unexpected clients %+v", snap.Clients)
		}
		if len(snap.Tickets) != 1 || snap.Tickets[0].OpenedAt != "05/06/2024" {
			t.Fatalf("unexpected tickets %+v", snap.Tickets)
		}
	})

	t.Run("failure keeps previous collections and retry recovers", func(t *testing.T) {
		a, m := newTestAggregator(t)
		m.expectLists([]entities.Client{clientAna}, nil, nil)
		if err := a.ReloadAll(context.Background()); err != nil {
			t.Fatalf("unexpected error %v", err)
		}

		unavailable := dataerr.New(dataerr.KindUnavailable, "clientes.list", "")
		m.clients.EXPECT().List(gomock.Any()).Return(nil, unavailable)
		m.equipment.EXPECT().List(gomock.Any()).Return(nil, nil).MaxTimes(1)
		m.tickets.EXPECT().List(gomock.Any()).Return(nil, nil).MaxTimes(1)

		err := a.ReloadAll(context.Background())
		if !errors.Is(err, dataerr.ErrUnavailable) {
			t.Fatalf("expected unavailable, got %v", err)
		}
		snap := a.Snapshot()
		if snap.State != StateError || snap.Error != dataerr.Message(dataerr.KindUnavailable) {
			t.Fatalf("expected error state with message, got %+v", snap)
		}
		if len(snap.Clients) != 1 {
			t.Fatalf("previous clients must survive a failed reload")
		}

		m.expectLists(nil, nil, nil)
		if err := a.ReloadAll(context.Background()); err != nil {
			t.Fatalf("unexpected error on retry %v", err)
		}
		if snap := a.Snapshot(); snap.State != StateReady || snap.Error != "" || len(snap.Clients) != 0 {
			t.Fatalf("expected ready and empty after retry, got %+v", snap)
		}
	})

	t.Run("overlapping reloads publish whole snapshots", func(t *testing.T) {
		a, m := newTestAggregator(t)
		m.clients.EXPECT().List(gomock.Any()).Return([]entities.Client{clientAna}, nil).Times(2)
		m.equipment.EXPECT().List(gomock.Any()).Return([]entities.Equipment{notebook}, nil).Times(2)
		m.tickets.EXPECT().List(gomock.Any()).Return([]entities.Ticket{pricedTask}, nil).Times(2)

		var wg sync.WaitGroup
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = a.ReloadAll(context.Background())
			}()
		}
		wg.Wait()

		snap := a.Snapshot()
		if snap.State != StateReady || len(snap.Clients) != 1 || len(snap.Equipment) != 1 || len(snap.Tickets) != 1 {
			t.Fatalf("unexpected snapshot %+v", snap)
		}
	})
}

func TestDataAggregator_Subscribe(t *testing.T) {
	a, m := newTestAggregator(t)

	var states []State
	unsubscribe := a.Subscribe(func(s Snapshot) { states = append(states, s.State) })

	m.expectLists(nil, nil, nil)
	if err := a.ReloadAll(context.Background()); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	unsubscribe()
	m.expectLists(nil, nil, nil)
	_ = a.ReloadAll(context.Background())

	if len(states) != 2 || states[0] != StateLoading || states[1] != StateReady {
		t.Fatalf("unexpected notifications %v", states)
	}
}

func TestDataAggregator_Denormalization(t *testing.T) {
	t.Run("missing references use placeholders", func(t *testing.T) {
		a, m := newTestAggregator(t)

		m.tickets.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in entities.TicketInput) (string, error) {
				if in.ClientName != ClientNotFoundName || in.EquipmentName != EquipmentNotFoundName {
					t.Fatalf("unexpected names %q / %q", in.ClientName, in.EquipmentName)
				}
				return "t9", nil
			},
		)
		m.expectLists(nil, nil, nil)

		id, err := a.CreateTicket(context.Background(), entities.TicketInput{ClientID: "ghost", EquipmentID: "ghost"})
		if err != nil || id != "t9" {
			t.Fatalf("unexpected result id=%q err=%v", id, err)
		}
	})

	t.Run("names come from the current snapshot", func(t *testing.T) {
		a, m := newTestAggregator(t)
		m.expectLists([]entities.Client{clientAna}, nil, nil)
		_ = a.ReloadAll(context.Background())

		m.equipment.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in entities.EquipmentInput) (string, error) {
				if in.ClientName != "Ana" {
					t.Fatalf("expected client name Ana, got %q", in.ClientName)
				}
				return "e2", nil
			},
		)
		m.expectLists([]entities.Client{clientAna}, nil, nil)

		if _, err := a.CreateEquipment(context.Background(), entities.EquipmentInput{ClientID: "c1"}); err != nil {
			t.Fatalf("unexpected error %v", err)
		}
	})

	t.Run("changing the client of a ticket re-resolves its name", func(t *testing.T) {
		a, m := newTestAggregator(t)
		m.expectLists([]entities.Client{clientAna}, nil, nil)
		_ = a.ReloadAll(context.Background())

		m.tickets.EXPECT().Update(gomock.Any(), "t1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, p entities.TicketPatch) error {
				if p.ClientName == nil || *p.ClientName != "Ana" {
					t.Fatalf("expected client name Ana, got %v", p.ClientName)
				}
				if p.EquipmentName != nil {
					t.Fatalf("equipment name must stay untouched")
				}
				return nil
			},
		)
		m.expectLists([]entities.Client{clientAna}, nil, nil)

		c1 := "c1"
		if err := a.UpdateTicket(context.Background(), "t1", entities.TicketPatch{ClientID: &c1}); err != nil {
			t.Fatalf("unexpected error %v", err)
		}
	})
}

func TestDataAggregator_Mutations(t *testing.T) {
	t.Run("failed mutation does not reload", func(t *testing.T) {
		a, m := newTestAggregator(t)
		m.clients.EXPECT().Delete(gomock.Any(), "c1").Return(dataerr.New(dataerr.KindUnavailable, "clientes.delete", ""))

		err := a.DeleteClient(context.Background(), "c1")
		if !errors.Is(err, dataerr.ErrUnavailable) {
			t.Fatalf("expected unavailable, got %v", err)
		}
	})

	t.Run("reload failure after a write is reported through state", func(t *testing.T) {
		a, m := newTestAggregator(t)
		m.clients.EXPECT().Create(gomock.Any(), gomock.Any()).Return("c2", nil)
		m.clients.EXPECT().List(gomock.Any()).Return(nil, dataerr.New(dataerr.KindDeadlineExceeded, "clientes.list", ""))
		m.equipment.EXPECT().List(gomock.Any()).Return(nil, nil).MaxTimes(1)
		m.tickets.EXPECT().List(gomock.Any()).Return(nil, nil).MaxTimes(1)

		id, err := a.CreateClient(context.Background(), entities.ClientInput{Name: "Bia"})
		if err != nil || id != "c2" {
			t.Fatalf("unexpected result id=%q err=%v", id, err)
		}
		if a.Snapshot().State != StateError {
			t.Fatalf("expected error state")
		}
	})

	t.Run("caller cancelling after the write still refreshes", func(t *testing.T) {
		a, m := newTestAggregator(t)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		m.clients.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, entities.ClientInput) (string, error) {
				cancel()
				return "c1", nil
			},
		)
		listed := func(ctx context.Context) error { return ctx.Err() }
		m.clients.EXPECT().List(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]entities.Client, error) {
			return []entities.Client{clientAna}, listed(ctx)
		})
		m.equipment.EXPECT().List(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]entities.Equipment, error) {
			return nil, listed(ctx)
		})
		m.tickets.EXPECT().List(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]entities.Ticket, error) {
			return nil, listed(ctx)
		})

		id, err := a.CreateClient(ctx, entities.ClientInput{Name: "Ana"})
		if err != nil || id != "c1" {
			t.Fatalf("unexpected result id=%q err=%v", id, err)
		}
		snap := a.Snapshot()
		if snap.State != StateReady || len(snap.Clients) != 1 {
			t.Fatalf("expected a ready snapshot with the new client, got %+v", snap)
		}
	})
}

func TestDataAggregator_Quotes(t *testing.T) {
	a, m := newTestAggregator(t)
	free := entities.Ticket{ID: "t2", ClientName: "Bia", Status: entities.TicketStatusConcluido, OpenedAt: day}
	m.expectLists(nil, nil, []entities.Ticket{pricedTask, free})
	_ = a.ReloadAll(context.Background())

	quotes := a.Quotes("")
	if len(quotes) != 1 || quotes[0].ID != "t1" || quotes[0].Status != entities.QuoteStatusPendente {
		t.Fatalf("unexpected quotes %+v", quotes)
	}
	if got := a.Quotes("notebook"); len(got) != 1 {
		t.Fatalf("expected case-insensitive match, got %+v", got)
	}
	if got := a.Quotes("geladeira"); len(got) != 0 {
		t.Fatalf("expected no match, got %+v", got)
	}

	t.Run("approve unknown quote", func(t *testing.T) {
		err := a.ApproveQuote(context.Background(), "t2")
		if !errors.Is(err, dataerr.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("reject sets Recusado", func(t *testing.T) {
		m.tickets.EXPECT().Update(gomock.Any(), "t1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, p entities.TicketPatch) error {
				if p.Status == nil || *p.Status != entities.TicketStatusRecusado {
					t.Fatalf("unexpected patch %+v", p)
				}
				return nil
			},
		)
		m.expectLists(nil, nil, []entities.Ticket{pricedTask})

		if err := a.RejectQuote(context.Background(), "t1"); err != nil {
			t.Fatalf("unexpected error %v", err)
		}
	})
}

func TestDataAggregator_InMemoryReads(t *testing.T) {
	a, m := newTestAggregator(t)
	other := entities.Equipment{ID: "e2", Name: "TV", ClientID: "c2"}
	m.expectLists([]entities.Client{clientAna}, []entities.Equipment{notebook, other}, nil)
	_ = a.ReloadAll(context.Background())

	if c, ok := a.GetClientByID("c1"); !ok || c.Name != "Ana" {
		t.Fatalf("unexpected client %+v found=%v", c, ok)
	}
	if _, ok := a.GetClientByID("c9"); ok {
		t.Fatalf("expected absent client")
	}
	if eq := a.EquipmentByClient("c1"); len(eq) != 1 || eq[0].ID != "e1" {
		t.Fatalf("unexpected equipment %+v", eq)
	}
}
