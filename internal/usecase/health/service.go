package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates an optional collaborator is down; search still works.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks. The catalog is in-process and cannot
// fail; the engine and embedding provider are optional collaborators whose
// failure only degrades the report.
type Service struct {
	engine    EngineProber
	embedding EmbeddingChecker
}

// New creates a Service. Both dependencies can be nil.
func New(engine EngineProber, embedding EmbeddingChecker) *Service {
	return &Service{engine: engine, embedding: embedding}
}

// Check runs health checks against all configured components.
func (s *Service) Check(ctx context.Context) Report {
	checks := map[string]CheckResult{
		"catalog": CheckOK,
	}

	if s.engine != nil {
		if st := s.engine.Status(ctx); st.Connected {
			checks["engine"] = CheckOK
		} else {
			checks["engine"] = CheckError
		}
	}

	if s.embedding != nil {
		if err := s.embedding.HealthCheck(ctx); err != nil {
			checks["embedding"] = CheckError
		} else {
			checks["embedding"] = CheckOK
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}
