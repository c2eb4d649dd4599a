// Package http provides http transport for correction ingestion
package http

import (
	stdhttp "net/http"

	"mondegreen/internal/modkit/httpkit"
	"mondegreen/internal/services/api/corrections/domain"
	svc "mondegreen/internal/services/api/corrections/service"
)

// Register mounts correction endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON(r, "/sync", h.sync)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /corrections/sync Corrections correctionsSync
// @Summary Ingest a batch of voice transcription corrections
// @Tags Corrections
// @Accept json
// @Produce json
// @Param payload body domain.SyncInput true "correction batch"
// @Success 200 {object} domain.SyncAck "ok"
// @Router /corrections/sync [post]
func (h *handlers) sync(r *stdhttp.Request, in domain.SyncInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Sync(r.Context(), uid, in)
}
