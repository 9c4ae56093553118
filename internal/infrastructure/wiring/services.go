package wiring

import (
	"fmt"

	"github.com/elmaestro544/sgroadmap-sub001/internal/application"
	domainai "github.com/elmaestro544/sgroadmap-sub001/internal/domain/ai"
	infraai "github.com/elmaestro544/sgroadmap-sub001/internal/infrastructure/ai"
)

// AppServices exposes the application layer services wired together with
// a workspace.
type AppServices struct {
	Workspace *Workspace
	Curve     *application.CurveService
	Analyst   *application.AnalystService
	Report    *application.ReportService
	Provider  domainai.Provider
}

// BuildAppServices constructs the services and AI provider wiring for a
// workspace root. A provider config failure is non-fatal: the curve
// commands still work, and the returned error explains why report
// generation fell back to the default provider.
func BuildAppServices(root string) (*AppServices, error) {
	workspace := NewWorkspace(root)

	provider, err := LoadAIProvider(root)
	var loadErr error
	if err != nil {
		loadErr = fmt.Errorf("AI provider config fallback: %w", err)
		fallback, fallbackErr := infraai.GetDefaultProvider("", "")
		if fallbackErr != nil {
			return nil, fmt.Errorf("fallback AI provider failed: %w", fallbackErr)
		}
		provider = infraai.NewResilientProvider(fallback)
	}

	analystSvc := application.NewAnalystService(provider)

	return &AppServices{
		Workspace: workspace,
		Curve:     application.NewCurveService(workspace.Repo),
		Analyst:   analystSvc,
		Report:    application.NewReportService(analystSvc),
		Provider:  provider,
	}, loadErr
}
