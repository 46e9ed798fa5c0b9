package matches

import (
	"context"
	"testing"
)

func TestService_Statistics_NoProfilesAllZero(t *testing.T) {
	svc, _ := newTestService()

	st, err := svc.StatisticsForUser(context.Background(), "user-9")
	if err != nil {
		t.Fatalf("StatisticsForUser: %v", err)
	}
	if st != (Statistics{}) {
		t.Fatalf("stats = %+v, want all zero", st)
	}
}

func TestService_Statistics_CountsByDirectionAndState(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	// user-1 es dueño de dog-1 y dog-3.
	// Enviado pendiente: dog-1 -> dog-2.
	if _, err := svc.Create(ctx, "dog-1", "dog-2"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	// Recibido pendiente: dog-2 -> dog-3.
	if _, err := svc.Create(ctx, "dog-2", "dog-3"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	// Aceptado: dog-1 -> dog-4 (sin inverso, acepta solo esa dirección).
	accepted, err := svc.Create(ctx, "dog-1", "dog-4")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Accept(ctx, accepted.ID); err != nil {
		t.Fatalf("Accept: %v", err)
	}
	// Rechazado: dog-2 -> dog-1.
	declined, err := svc.Create(ctx, "dog-2", "dog-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Decline(ctx, declined.ID); err != nil {
		t.Fatalf("Decline: %v", err)
	}

	st, err := svc.StatisticsForUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("StatisticsForUser: %v", err)
	}

	want := Statistics{
		PendingSent:     1,
		PendingReceived: 1,
		Accepted:        1,
		Declined:        1,
		Total:           4,
	}
	if st != want {
		t.Fatalf("stats = %+v, want %+v", st, want)
	}
}

func TestService_Statistics_OtherUserSeesOwnSide(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, "dog-1", "dog-2"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	st, err := svc.StatisticsForUser(ctx, "user-2")
	if err != nil {
		t.Fatalf("StatisticsForUser: %v", err)
	}
	if st.PendingSent != 0 || st.PendingReceived != 1 || st.Total != 1 {
		t.Fatalf("stats = %+v, want one pending received", st)
	}
}
