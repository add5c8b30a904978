package usecase

import (
	"context"
	"sync"
	"time"

	"assistencia_tecnica/internal/domain/codec"
	"assistencia_tecnica/internal/domain/dataerr"
	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/domain/views"
	"assistencia_tecnica/internal/infrastructure/metrics"
	"assistencia_tecnica/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=data_aggregator.go -destination=../adapter/http/handlers/mocks/data_aggregator_mock.go -package=mocks

// Placeholders written when a referenced entity is not in memory.
const (
	ClientNotFoundName    = "Cliente não encontrado"
	EquipmentNotFoundName = "Equipamento não encontrado"
)

type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// Snapshot is one published view of the three collections. Slices are
// never modified after publication and must not be modified by readers.
type Snapshot struct {
	State     State                       `json:"state"`
	Err       error                       `json:"-"`
	Error     string                      `json:"error,omitempty"`
	Clients   []entities.ClientDisplay    `json:"clientes"`
	Equipment []entities.EquipmentDisplay `json:"equipamentos"`
	Tickets   []entities.TicketDisplay    `json:"atendimentos"`
	LoadedAt  time.Time                   `json:"carregadoEm"`
}

// IDataAggregator owns the in-memory clients, equipment and tickets.
//
// Every successful mutation is followed by a full reload; a reload failure
// after a successful mutation is reported through the snapshot state, not
// through the mutation's return value.
type IDataAggregator interface {
	Snapshot() Snapshot
	ReloadAll(ctx context.Context) error
	Subscribe(fn func(Snapshot)) (unsubscribe func())

	CreateClient(ctx context.Context, in entities.ClientInput) (string, error)
	UpdateClient(ctx context.Context, id string, patch entities.ClientPatch) error
	DeleteClient(ctx context.Context, id string) error

	CreateEquipment(ctx context.Context, in entities.EquipmentInput) (string, error)
	UpdateEquipment(ctx context.Context, id string, patch entities.EquipmentPatch) error
	DeleteEquipment(ctx context.Context, id string) error

	CreateTicket(ctx context.Context, in entities.TicketInput) (string, error)
	UpdateTicket(ctx context.Context, id string, patch entities.TicketPatch) error
	DeleteTicket(ctx context.Context, id string) error

	GetClientByID(id string) (entities.ClientDisplay, bool)
	EquipmentByClient(clientID string) []entities.EquipmentDisplay
	Quotes(query string) []entities.Quote
	ApproveQuote(ctx context.Context, ticketID string) error
	RejectQuote(ctx context.Context, ticketID string) error
}

type DataAggregator struct {
	clients   interfaces.IClientRepository
	equipment interfaces.IEquipmentRepository
	tickets   interfaces.ITicketRepository
	loc       *time.Location
	logger    *zap.Logger

	reloadMu sync.Mutex

	mu      sync.RWMutex
	snap    Snapshot
	nextSub int
	subs    map[int]func(Snapshot)
}

var _ IDataAggregator = (*DataAggregator)(nil)

// NewDataAggregator returns an aggregator in the loading state. Call
// ReloadAll once at startup.
func NewDataAggregator(
	clients interfaces.IClientRepository,
	equipment interfaces.IEquipmentRepository,
	tickets interfaces.ITicketRepository,
	loc *time.Location,
	logger *zap.Logger,
) *DataAggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DataAggregator{
		clients:   clients,
		equipment: equipment,
		tickets:   tickets,
		loc:       loc,
		logger:    logger,
		snap: Snapshot{
			State:     StateLoading,
			Clients:   []entities.ClientDisplay{},
			Equipment: []entities.EquipmentDisplay{},
			Tickets:   []entities.TicketDisplay{},
		},
		subs: map[int]func(Snapshot){},
	}
}

func (a *DataAggregator) Snapshot() Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snap
}

// Subscribe registers fn for every published snapshot.
func (a *DataAggregator) Subscribe(fn func(Snapshot)) func() {
	a.mu.Lock()
	id := a.nextSub
	a.nextSub++
	a.subs[id] = fn
	a.mu.Unlock()

	return func() {
		a.mu.Lock()
		delete(a.subs, id)
		a.mu.Unlock()
	}
}

// ReloadAll lists the three collections and replaces the snapshot in one
// step. Reloads are serialized: overlapping callers each publish a complete
// result in turn. On failure the previous collections are kept and the
// state becomes error.
func (a *DataAggregator) ReloadAll(ctx context.Context) error {
	a.reloadMu.Lock()
	defer a.reloadMu.Unlock()

	start := time.Now()
	a.publish(func(s *Snapshot) {
		s.State = StateLoading
		s.Err, s.Error = nil, ""
	})

	var (
		clients   []entities.Client
		equipment []entities.Equipment
		tickets   []entities.Ticket
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		clients, err = a.clients.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		equipment, err = a.equipment.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		tickets, err = a.tickets.List(gctx)
		return err
	})
	err := g.Wait()
	metrics.ObserveReload(err, time.Since(start))

	if err != nil {
		a.logger.Warn("reload failed", zap.Error(err))
		a.publish(func(s *Snapshot) {
			s.State = StateError
			s.Err = err
			s.Error = err.Error()
		})
		return err
	}

	next := Snapshot{
		State:     StateReady,
		Clients:   make([]entities.ClientDisplay, 0, len(clients)),
		Equipment: make([]entities.EquipmentDisplay, 0, len(equipment)),
		Tickets:   make([]entities.TicketDisplay, 0, len(tickets)),
		LoadedAt:  time.Now(),
	}
	for _, c := range clients {
		next.Clients = append(next.Clients, codec.ClientToDisplay(c, a.loc))
	}
	for _, e := range equipment {
		next.Equipment = append(next.Equipment, codec.EquipmentToDisplay(e, a.loc))
	}
	for _, t := range tickets {
		next.Tickets = append(next.Tickets, codec.TicketToDisplay(t, a.loc))
	}
	a.publish(func(s *Snapshot) {
		*s = next
	})
	return nil
}

// publish applies change to the current snapshot and notifies subscribers
// outside the lock.
func (a *DataAggregator) publish(change func(*Snapshot)) {
	a.mu.Lock()
	change(&a.snap)
	snap := a.snap
	subs := make([]func(Snapshot), 0, len(a.subs))
	for _, fn := range a.subs {
		subs = append(subs, fn)
	}
	a.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// reloadAfterWriteTimeout bounds the refresh that follows a successful
// write.
const reloadAfterWriteTimeout = 30 * time.Second

// afterMutation reloads once a write succeeded. The write already landed,
// so the reload runs even if the caller went away. Reload errors end up in
// the snapshot state.
func (a *DataAggregator) afterMutation(ctx context.Context) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), reloadAfterWriteTimeout)
	defer cancel()
	_ = a.ReloadAll(ctx)
}

func (a *DataAggregator) CreateClient(ctx context.Context, in entities.ClientInput) (string, error) {
	id, err := a.clients.Create(ctx, in)
	if err != nil {
		return "", err
	}
	a.afterMutation(ctx)
	return id, nil
}

func (a *DataAggregator) UpdateClient(ctx context.Context, id string, patch entities.ClientPatch) error {
	if err := a.clients.Update(ctx, id, patch); err != nil {
		return err
	}
	a.afterMutation(ctx)
	return nil
}

func (a *DataAggregator) DeleteClient(ctx context.Context, id string) error {
	if err := a.clients.Delete(ctx, id); err != nil {
		return err
	}
	a.afterMutation(ctx)
	return nil
}

// CreateEquipment copies the owner's current name into the equipment.
func (a *DataAggregator) CreateEquipment(ctx context.Context, in entities.EquipmentInput) (string, error) {
	in.ClientName = a.clientName(in.ClientID)
	id, err := a.equipment.Create(ctx, in)
	if err != nil {
		return "", err
	}
	a.afterMutation(ctx)
	return id, nil
}

// UpdateEquipment re-resolves the owner's name when the owner changes.
func (a *DataAggregator) UpdateEquipment(ctx context.Context, id string, patch entities.EquipmentPatch) error {
	patch.ClientName = nil
	if patch.ClientID != nil {
		name := a.clientName(*patch.ClientID)
		patch.ClientName = &name
	}
	if err := a.equipment.Update(ctx, id, patch); err != nil {
		return err
	}
	a.afterMutation(ctx)
	return nil
}

func (a *DataAggregator) DeleteEquipment(ctx context.Context, id string) error {
	if err := a.equipment.Delete(ctx, id); err != nil {
		return err
	}
	a.afterMutation(ctx)
	return nil
}

// CreateTicket copies the current client and equipment names into the
// ticket.
func (a *DataAggregator) CreateTicket(ctx context.Context, in entities.TicketInput) (string, error) {
	in.ClientName = a.clientName(in.ClientID)
	in.EquipmentName = a.equipmentName(in.EquipmentID)
	id, err := a.tickets.Create(ctx, in)
	if err != nil {
		return "", err
	}
	a.afterMutation(ctx)
	return id, nil
}

func (a *DataAggregator) UpdateTicket(ctx context.Context, id string, patch entities.TicketPatch) error {
	patch.ClientName, patch.EquipmentName = nil, nil
	if patch.ClientID != nil {
		name := a.clientName(*patch.ClientID)
		patch.ClientName = &name
	}
	if patch.EquipmentID != nil {
		name := a.equipmentName(*patch.EquipmentID)
		patch.EquipmentName = &name
	}
	if err := a.tickets.Update(ctx, id, patch); err != nil {
		return err
	}
	a.afterMutation(ctx)
	return nil
}

func (a *DataAggregator) DeleteTicket(ctx context.Context, id string) error {
	if err := a.tickets.Delete(ctx, id); err != nil {
		return err
	}
	a.afterMutation(ctx)
	return nil
}

func (a *DataAggregator) GetClientByID(id string) (entities.ClientDisplay, bool) {
	for _, c := range a.Snapshot().Clients {
		if c.ID == id {
			return c, true
		}
	}
	return entities.ClientDisplay{}, false
}

func (a *DataAggregator) EquipmentByClient(clientID string) []entities.EquipmentDisplay {
	out := []entities.EquipmentDisplay{}
	for _, e := range a.Snapshot().Equipment {
		if e.ClientID == clientID {
			out = append(out, e)
		}
	}
	return out
}

// Quotes projects the current tickets into quotes and filters them by
// query.
func (a *DataAggregator) Quotes(query string) []entities.Quote {
	quotes := views.QuotesView(a.Snapshot().Tickets)
	return views.FilterBySubstring(quotes, query, views.QuoteFields...)
}

// ApproveQuote marks the ticket behind a quote as completed.
func (a *DataAggregator) ApproveQuote(ctx context.Context, ticketID string) error {
	return a.setQuoteStatus(ctx, "orcamentos.approve", ticketID, entities.TicketStatusConcluido)
}

// RejectQuote marks the ticket behind a quote as declined.
func (a *DataAggregator) RejectQuote(ctx context.Context, ticketID string) error {
	return a.setQuoteStatus(ctx, "orcamentos.reject", ticketID, entities.TicketStatusRecusado)
}

func (a *DataAggregator) setQuoteStatus(ctx context.Context, op, ticketID string, status entities.TicketStatus) error {
	found := false
	for _, q := range views.QuotesView(a.Snapshot().Tickets) {
		if q.ID == ticketID {
			found = true
			break
		}
	}
	if !found {
		return dataerr.New(dataerr.KindNotFound, op, "Orçamento não encontrado.")
	}
	return a.UpdateTicket(ctx, ticketID, entities.TicketPatch{Status: &status})
}

func (a *DataAggregator) clientName(id string) string {
	if c, ok := a.GetClientByID(id); ok {
		return c.Name
	}
	return ClientNotFoundName
}

func (a *DataAggregator) equipmentName(id string) string {
	for _, e := range a.Snapshot().Equipment {
		if e.ID == id {
			return e.Name
		}
	}
	return EquipmentNotFoundName
}
