package codec

import (
	"testing"
	"time"

	"assistencia_tecnica/internal/domain/entities"
)

func ptr[T any](v T) *T { return &v }

func TestFormatDate(t *testing.T) {
	sp := time.FixedZone("BRT", -3*3600)

	if got := FormatDate(time.Time{}, sp); got != "-" {
		t.Fatalf("expected placeholder, got %q", got)
	}
	// 02:00 UTC on the 6th is still the 5th in São Paulo.
	ts := time.Date(2024, 6, 6, 2, 0, 0, 0, time.UTC)
	if got := FormatDate(ts, sp); got != "05/06/2024" {
		t.Fatalf("expected 05/06/2024, got %q", got)
	}
	if got := FormatDate(ts, nil); got != "06/06/2024" {
		t.Fatalf("expected 06/06/2024 in UTC, got %q", got)
	}
}

func TestClientToDisplay_RoundTripsFields(t *testing.T) {
	c := entities.Client{
		ID:           "c1",
		Name:         "João Silva",
		Phone:        "11999990000",
		Email:        "joao@exemplo.com",
		Address:      "Rua A, 10",
		RegisteredAt: time.Date(2024, 6, 5, 12, 0, 0, 0, time.UTC),
	}

	d := ClientToDisplay(c, time.UTC)
	if d.ID != c.ID || d.Name != c.Name || d.Phone != c.Phone || d.Email != c.Email || d.Address != c.Address {
		t.Fatalf("fields not passed through: %+v", d)
	}
	if d.RegisteredAt != "05/06/2024" {
		t.Fatalf("unexpected date %q", d.RegisteredAt)
	}

	c.RegisteredAt = time.Time{}
	if got := ClientToDisplay(c, time.UTC).RegisteredAt; got != "-" {
		t.Fatalf("expected placeholder for missing stamp, got %q", got)
	}
}

func TestEquipmentAndTicketToDisplay(t *testing.T) {
	e := entities.Equipment{ID: "e1", Code: "X1", Name: "Notebook", Brand: "Dell", Model: "5420", Category: "Informática", Notes: "sem carregador", ClientID: "c1", ClientName: "João"}
	ed := EquipmentToDisplay(e, time.UTC)
	if ed.Code != "X1" || ed.ClientName != "João" || ed.Notes != "sem carregador" || ed.IntakeAt != "-" {
		t.Fatalf("unexpected equipment display: %+v", ed)
	}

	v := 350.0
	tk := entities.Ticket{ID: "t1", ClientID: "c1", ClientName: "João", EquipmentID: "e1", EquipmentName: "Notebook", Problem: "não liga", Status: entities.TicketStatusEmAndamento, Technician: "Ana", ServiceValue: &v}
	td := TicketToDisplay(tk, time.UTC)
	if td.Status != entities.TicketStatusEmAndamento || td.ServiceValue == nil || *td.ServiceValue != 350 || td.OpenedAt != "-" {
		t.Fatalf("unexpected ticket display: %+v", td)
	}
}

func TestToWire_OnlySetFields(t *testing.T) {
	f := ClientToWire(entities.ClientPatch{Name: ptr("Maria")})
	if len(f) != 1 || f[FieldName] != "Maria" {
		t.Fatalf("unexpected client wire: %v", f)
	}

	st := entities.TicketStatusConcluido
	tf := TicketToWire(entities.TicketPatch{Status: &st, ServiceValue: ptr(0.0)})
	if len(tf) != 2 || tf[FieldStatus] != "Concluído" || tf[FieldServiceValue] != 0.0 {
		t.Fatalf("unexpected ticket wire: %v", tf)
	}
	for _, k := range []string{"id", FieldOpenedAt, FieldRegisteredAt} {
		if _, ok := tf[k]; ok {
			t.Fatalf("wire must not carry %s", k)
		}
	}

	if ef := EquipmentToWire(entities.EquipmentPatch{}); len(ef) != 0 {
		t.Fatalf("empty patch should produce empty wire, got %v", ef)
	}
}

func TestInputToWire(t *testing.T) {
	f := TicketInputToWire(entities.TicketInput{ClientID: "c1", EquipmentID: "e1", Problem: "tela", Technician: "Ana", Status: entities.TicketStatusAguardando, ClientName: "João", EquipmentName: "Celular"})
	if _, ok := f[FieldServiceValue]; ok {
		t.Fatalf("absent service value must not be written")
	}
	if f[FieldClientName] != "João" || f[FieldEquipmentName] != "Celular" || f[FieldStatus] != "Aguardando" {
		t.Fatalf("unexpected wire: %v", f)
	}

	ef := EquipmentInputToWire(entities.EquipmentInput{Code: "A", Name: "B", ClientID: "c1", ClientName: "João"})
	if _, ok := ef[FieldIntakeAt]; ok {
		t.Fatalf("intake stamp is set by the repository")
	}
	cf := ClientInputToWire(entities.ClientInput{Name: "João", Phone: "1", Email: "a@b.co"})
	if cf[FieldName] != "João" || len(cf) != 4 {
		t.Fatalf("unexpected client wire: %v", cf)
	}
}
