package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"assistencia_tecnica/internal/adapter/http/handlers/mocks"
	"assistencia_tecnica/internal/domain/dataerr"
	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/usecase"
	"assistencia_tecnica/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newClientRouter(t *testing.T) (*gin.Engine, *mocks.MockIDataAggregator) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	data := mocks.NewMockIDataAggregator(ctrl)
	h := NewClientHandler(data)

	r := gin.New()
	r.GET("/v1/clients", h.ListClients)
	r.POST("/v1/clients", h.CreateClient)
	r.GET("/v1/clients/:id", h.GetClient)
	r.PATCH("/v1/clients/:id", h.UpdateClient)
	r.DELETE("/v1/clients/:id", h.DeleteClient)
	r.GET("/v1/clients/:id/equipment", h.ListClientEquipment)
	return r, data
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestClientHandler_ListClients(t *testing.T) {
	r, data := newClientRouter(t)
	data.EXPECT().Snapshot().Return(usecase.Snapshot{
		State: usecase.StateReady,
		Clients: []entities.ClientDisplay{
			{ID: "c1", Name: "Ana Lima", Email: "ana@x.com"},
			{ID: "c2", Name: "Bruno", Email: "bruno@y.com"},
		},
	})

	w := serve(r, http.MethodGet, "/v1/clients?q=ANA", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []entities.ClientDisplay
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(got) != 1 || got[0].ID != "c1" {
		t.Fatalf("unexpected clients %+v", got)
	}
}

func TestClientHandler_GetClient(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		r, data := newClientRouter(t)
		data.EXPECT().GetClientByID("c1").Return(entities.ClientDisplay{ID: "c1", Name: "Ana"}, true)

		w := serve(r, http.MethodGet, "/v1/clients/c1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing", func(t *testing.T) {
		r, data := newClientRouter(t)
		data.EXPECT().GetClientByID("c9").Return(entities.ClientDisplay{}, false)

		w := serve(r, http.MethodGet, "/v1/clients/c9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestClientHandler_CreateClient(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newClientRouter(t)
		w := serve(r, http.MethodPost, "/v1/clients", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error keeps the pt-BR message", func(t *testing.T) {
		r, data := newClientRouter(t)
		data.EXPECT().CreateClient(gomock.Any(), gomock.Any()).
			Return("", dataerr.New(dataerr.KindValidation, "clientes.create", ""))

		w := serve(r, http.MethodPost, "/v1/clients", `{"nome":""}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeError(t, w)
		if body.Code != "VALIDATION" || body.Message != dataerr.Message(dataerr.KindValidation) {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("created", func(t *testing.T) {
		r, data := newClientRouter(t)
		data.EXPECT().CreateClient(gomock.Any(), entities.ClientInput{Name: "Ana", Phone: "11", Email: "a@x.com"}).
			Return("c1", nil)

		w := serve(r, http.MethodPost, "/v1/clients", `{"nome":" Ana ","telefone":"11","email":"a@x.com"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if w.Body.String() != `{"id":"c1"}` {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestClientHandler_UpdateAndDelete(t *testing.T) {
	t.Run("update sends only present fields", func(t *testing.T) {
		r, data := newClientRouter(t)
		data.EXPECT().UpdateClient(gomock.Any(), "c1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, p entities.ClientPatch) error {
				if p.Phone == nil || *p.Phone != "22" || p.Name != nil || p.Email != nil {
					t.Fatalf("unexpected patch %+v", p)
				}
				return nil
			},
		)

		w := serve(r, http.MethodPatch, "/v1/clients/c1", `{"telefone":"22"}`)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("delete maps unavailable", func(t *testing.T) {
		r, data := newClientRouter(t)
		data.EXPECT().DeleteClient(gomock.Any(), "c1").
			Return(dataerr.New(dataerr.KindUnavailable, "clientes.delete", ""))

		w := serve(r, http.MethodDelete, "/v1/clients/c1", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestClientHandler_ListClientEquipment(t *testing.T) {
	r, data := newClientRouter(t)
	data.EXPECT().EquipmentByClient("c1").Return([]entities.EquipmentDisplay{{ID: "e1", ClientID: "c1"}})

	w := serve(r, http.MethodGet, "/v1/clients/c1/equipment", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
