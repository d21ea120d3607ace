package handler

import (
	"net/http"
	"sort"
	"time"

	"github.com/enviroreport/enviroreport/internal/api/models"
	"github.com/enviroreport/enviroreport/internal/api/response"
	"github.com/enviroreport/enviroreport/internal/provider/resilience"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
	providers *resilience.Registry
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(version, buildTime string, providers *resilience.Registry) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
		providers: providers,
	}
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]interface{}{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check. The service
// holds no local state, so readiness follows liveness.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
	}
	response.JSON(w, r, http.StatusOK, health)
}

// SystemStatus handles GET /v1/ops/status - per-provider circuit breaker
// status. Overall status is the worst provider status.
func (h *OpsHandler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	all := h.providers.GetAllHealth()
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	overall := models.HealthStatusOK
	providers := make([]models.ProviderStatus, 0, len(all))
	for _, p := range all {
		status := providerStatus(p)
		if status == models.HealthStatusFail {
			overall = models.HealthStatusFail
		} else if status == models.HealthStatusDegraded && overall == models.HealthStatusOK {
			overall = models.HealthStatusDegraded
		}

		ps := models.ProviderStatus{
			Provider:  p.Name,
			Status:    status,
			LastError: p.LastError,
		}
		if p.LastSuccessAt != nil {
			t := models.Timestamp(*p.LastSuccessAt)
			ps.LastSuccessAt = &t
		}
		if p.LastFailureAt != nil {
			t := models.Timestamp(*p.LastFailureAt)
			ps.LastFailureAt = &t
		}
		providers = append(providers, ps)
	}

	response.JSON(w, r, http.StatusOK, models.SystemStatus{
		Status:    overall,
		Time:      models.Timestamp(time.Now()),
		Providers: providers,
	})
}

func providerStatus(p *resilience.ProviderHealth) models.HealthStatus {
	switch {
	case p.IsHealthy():
		return models.HealthStatusOK
	case p.IsDegraded():
		return models.HealthStatusDegraded
	default:
		return models.HealthStatusFail
	}
}
