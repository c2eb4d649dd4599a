// Package module wires correction ingestion into the API using modkit
package module

import (
	"net/http"

	"mondegreen/internal/core/quota"
	modkit "mondegreen/internal/modkit"
	"mondegreen/internal/modkit/httpkit"
	str "mondegreen/internal/platform/strings"
	"mondegreen/internal/services/api/corrections/domain"
	correctionshttp "mondegreen/internal/services/api/corrections/http"
	correctionsrepo "mondegreen/internal/services/api/corrections/repo"
	correctionssvc "mondegreen/internal/services/api/corrections/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc correctionssvc.Service
}

// New constructs a corrections module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("corrections"), modkit.WithPrefix("/corrections")}, opts...)...)

	o := FromConfig(deps.Cfg)

	var audit domain.AuditPort = correctionsrepo.NopAudit{}
	if deps.CH != nil {
		audit = correctionsrepo.NewCHAudit(deps.CH)
	}

	repo := correctionsrepo.NewPG()
	limiter := quota.New(o.RateLimit, o.RateWindow)
	svc := correctionssvc.New(deps.PG, repo, audit, limiter)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptSyncerPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		correctionshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
