// Package api provides the HTTP API for the application
package api

import (
	"mondegreen/internal/platform/config"
	"mondegreen/internal/platform/logger"
	phttp "mondegreen/internal/platform/net/http"
	"mondegreen/internal/platform/store"

	"mondegreen/internal/modkit"
	"mondegreen/internal/modkit/httpkit"
	"mondegreen/internal/modkit/module"
	"mondegreen/internal/modkit/swaggerkit"

	correctionsmod "mondegreen/internal/services/api/corrections/module"
	metamod "mondegreen/internal/services/api/meta/module"
	profilemod "mondegreen/internal/services/api/profile/module"
	"mondegreen/internal/services/api/token"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	AuthSecret     string
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}

	verifier := token.NewVerifier(opt.AuthSecret)
	auth := httpkit.Auth(httpkit.NewPortFunc(verifier.Parse))

	mods := []module.Module{
		metamod.New(deps),
		profilemod.New(deps, modkit.WithMiddlewares(auth)),
		correctionsmod.New(deps, modkit.WithMiddlewares(auth)),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
