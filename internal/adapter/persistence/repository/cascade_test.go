package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"assistencia_tecnica/internal/adapter/persistence/sqlitestore"
	"assistencia_tecnica/internal/domain/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type repos struct {
	clients   *ClientRepository
	equipment *EquipmentRepository
	tickets   *TicketRepository
}

func newSQLiteRepos(t *testing.T) repos {
	t.Helper()
	return newReposOn(t, newSQLiteStore(t))
}

func newReposOn(t *testing.T, store *sqlitestore.Store) repos {
	t.Helper()
	logger := zaptest.NewLogger(t)
	return repos{
		clients:   NewClientRepository(store, nil, logger, DefaultCascadeParallelism),
		equipment: NewEquipmentRepository(store, nil, logger, DefaultCascadeParallelism),
		tickets:   NewTicketRepository(store, nil, logger),
	}
}

func seed(t *testing.T, r repos, client string) (clientID, equipmentID, ticketID string) {
	t.Helper()
	ctx := context.Background()

	clientID, err := r.clients.Create(ctx, entities.ClientInput{Name: client, Phone: "11 9999-0000", Email: "c@x.com"})
	require.NoError(t, err)
	equipmentID, err = r.equipment.Create(ctx, entities.EquipmentInput{
		Code: "EQ-1", Name: "Notebook", Brand: "Dell", Model: "X", Category: "Informática",
		ClientID: clientID, ClientName: client,
	})
	require.NoError(t, err)
	value := 150.0
	ticketID, err = r.tickets.Create(ctx, entities.TicketInput{
		ClientID: clientID, EquipmentID: equipmentID, Problem: "Não liga", Technician: "Rui",
		ServiceValue: &value, ClientName: client, EquipmentName: "Notebook",
	})
	require.NoError(t, err)
	return clientID, equipmentID, ticketID
}

func TestCascade_DeleteClientRemovesDependents(t *testing.T) {
	r := newSQLiteRepos(t)
	ctx := context.Background()

	c1, e1, t1 := seed(t, r, "Ana")
	c2, e2, t2 := seed(t, r, "Bia")

	require.NoError(t, r.clients.Delete(ctx, c1))

	_, found, err := r.clients.GetByID(ctx, c1)
	require.NoError(t, err)
	require.False(t, found)
	_, found, err = r.equipment.GetByID(ctx, e1)
	require.NoError(t, err)
	require.False(t, found)
	_, found, err = r.tickets.GetByID(ctx, t1)
	require.NoError(t, err)
	require.False(t, found)

	equipment, err := r.equipment.ListByClient(ctx, c2)
	require.NoError(t, err)
	require.Len(t, equipment, 1)
	require.Equal(t, e2, equipment[0].ID)

	tickets, err := r.tickets.List(ctx)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	require.Equal(t, t2, tickets[0].ID)
}

func TestCascade_FileDatabaseWithManyChildren(t *testing.T) {
	r := newReposOn(t, newSQLiteStoreAt(t, filepath.Join(t.TempDir(), "shop.db")))
	ctx := context.Background()

	clientID, equipmentID, _ := seed(t, r, "Ana")
	for i := 0; i < 150; i++ {
		_, err := r.tickets.Create(ctx, entities.TicketInput{
			ClientID: clientID, EquipmentID: equipmentID, Problem: fmt.Sprintf("Chamado %d", i), Technician: "Rui",
			ClientName: "Ana", EquipmentName: "Notebook",
		})
		require.NoError(t, err)
	}

	require.NoError(t, r.clients.Delete(ctx, clientID))

	tickets, err := r.tickets.ListByClient(ctx, clientID)
	require.NoError(t, err)
	require.Empty(t, tickets, "tickets left behind by the cascade")
	equipment, err := r.equipment.ListByClient(ctx, clientID)
	require.NoError(t, err)
	require.Empty(t, equipment)
}

func TestCascade_DeleteEquipmentRemovesTickets(t *testing.T) {
	r := newSQLiteRepos(t)
	ctx := context.Background()

	c1, e1, t1 := seed(t, r, "Ana")

	require.NoError(t, r.equipment.Delete(ctx, e1))

	_, found, err := r.tickets.GetByID(ctx, t1)
	require.NoError(t, err)
	require.False(t, found)

	_, found, err = r.clients.GetByID(ctx, c1)
	require.NoError(t, err)
	require.True(t, found, "deleting equipment keeps its client")
}

func TestTicketRepository_RoundTrip(t *testing.T) {
	r := newSQLiteRepos(t)
	ctx := context.Background()

	_, _, t1 := seed(t, r, "Ana")

	ticket, found, err := r.tickets.GetByID(ctx, t1)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, entities.TicketStatusAguardando, ticket.Status)
	require.NotNil(t, ticket.ServiceValue)
	require.Equal(t, 150.0, *ticket.ServiceValue)
	require.False(t, ticket.OpenedAt.IsZero())

	status := entities.TicketStatusConcluido
	require.NoError(t, r.tickets.Update(ctx, t1, entities.TicketPatch{Status: &status}))

	ticket, _, err = r.tickets.GetByID(ctx, t1)
	require.NoError(t, err)
	require.Equal(t, entities.TicketStatusConcluido, ticket.Status)
	require.Equal(t, "Não liga", ticket.Problem, "update leaves omitted fields untouched")
}
