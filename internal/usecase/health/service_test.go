package health

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/prodsearch/internal/engine"
)

type mockProber struct {
	status engine.Status
}

func (m *mockProber) Status(_ context.Context) engine.Status {
	return m.status
}

type mockChecker struct {
	err error
}

func (m *mockChecker) HealthCheck(_ context.Context) error {
	return m.err
}

func TestCheck_NoCollaborators(t *testing.T) {
	report := New(nil, nil).Check(context.Background())

	if report.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, report.Status)
	}
	if len(report.Checks) != 1 {
		t.Fatalf("expected 1 check, got %d", len(report.Checks))
	}
	if report.Checks["catalog"] != CheckOK {
		t.Errorf("catalog check: expected %q, got %q", CheckOK, report.Checks["catalog"])
	}
}

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(
		&mockProber{status: engine.Status{Connected: true}},
		&mockChecker{},
	)
	report := svc.Check(context.Background())

	if report.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, report.Status)
	}
	for _, name := range []string{"catalog", "engine", "embedding"} {
		if report.Checks[name] != CheckOK {
			t.Errorf("%s check: expected %q, got %q", name, CheckOK, report.Checks[name])
		}
	}
}

func TestCheck_EngineDown(t *testing.T) {
	svc := New(
		&mockProber{status: engine.Status{Connected: false, Detail: "connection refused"}},
		&mockChecker{},
	)
	report := svc.Check(context.Background())

	if report.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, report.Status)
	}
	if report.Checks["engine"] != CheckError {
		t.Errorf("engine check: expected %q, got %q", CheckError, report.Checks["engine"])
	}
	if report.Checks["catalog"] != CheckOK {
		t.Errorf("catalog check must stay ok, got %q", report.Checks["catalog"])
	}
}

func TestCheck_EmbeddingDown(t *testing.T) {
	svc := New(
		&mockProber{status: engine.Status{Connected: true}},
		&mockChecker{err: errors.New("unauthorized")},
	)
	report := svc.Check(context.Background())

	if report.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, report.Status)
	}
	if report.Checks["embedding"] != CheckError {
		t.Errorf("embedding check: expected %q, got %q", CheckError, report.Checks["embedding"])
	}
}
