package metrics

import (
	"context"
	"errors"
	"testing"

	"assistencia_tecnica/internal/domain/docstore"
	mock_interfaces "assistencia_tecnica/internal/usecase/interfaces/mocks"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInstrumentedStore_CountsResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock_interfaces.NewMockIDocumentStore(ctrl)
	s := NewInstrumentedStore(next, "test")

	ok := s.m.storeOps.WithLabelValues("test", "clientes", "add", "success")
	failed := s.m.storeOps.WithLabelValues("test", "clientes", "delete", "failure")
	okBefore := testutil.ToFloat64(ok)
	failedBefore := testutil.ToFloat64(failed)

	next.EXPECT().Add(gomock.Any(), "clientes", gomock.Any()).Return("c1", nil)
	next.EXPECT().Delete(gomock.Any(), "clientes", "c1").Return(errors.New("boom"))

	id, err := s.Add(context.Background(), "clientes", docstore.Fields{"nome": "Ana"})
	require.NoError(t, err)
	require.Equal(t, "c1", id)
	require.Error(t, s.Delete(context.Background(), "clientes", "c1"))

	require.Equal(t, okBefore+1, testutil.ToFloat64(ok))
	require.Equal(t, failedBefore+1, testutil.ToFloat64(failed))
}

func TestCascadeChildFailures(t *testing.T) {
	c := global().cascadeFailed.WithLabelValues("clientes", "atendimentos")
	before := testutil.ToFloat64(c)

	CascadeChildFailures("clientes", "atendimentos", 2)
	CascadeChildFailures("clientes", "atendimentos", 0)

	require.Equal(t, before+2, testutil.ToFloat64(c))
}
