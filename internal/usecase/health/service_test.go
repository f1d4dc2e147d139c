package health

import (
	"context"
	"errors"
	"testing"
)

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(context.Context) error { return m.err }

func TestCheck_Healthy(t *testing.T) {
	svc := New(&mockPinger{})

	report := svc.Check(context.Background())

	if report.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, report.Status)
	}
	if report.Checks["storage"] != CheckOK {
		t.Errorf("expected storage ok, got %q", report.Checks["storage"])
	}
}

func TestCheck_Degraded(t *testing.T) {
	svc := New(&mockPinger{err: errors.New("connection refused")})

	report := svc.Check(context.Background())

	if report.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, report.Status)
	}
	if report.Checks["storage"] != CheckError {
		t.Errorf("expected storage error, got %q", report.Checks["storage"])
	}
}
