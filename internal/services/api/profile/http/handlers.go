// Package http provides http transport for the profile read side
package http

import (
	stdhttp "net/http"

	"mondegreen/internal/modkit/httpkit"
	svc "mondegreen/internal/services/api/profile/service"
)

// Register mounts profile endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.get)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /profile Profile profileGet
// @Summary Learned voice profile for the authenticated user
// @Tags Profile
// @Produce json
// @Success 200 {object} domain.UserVoiceProfile "ok"
// @Router /profile [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), uid)
}
