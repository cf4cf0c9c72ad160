// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	"link-resolver/services/resolver/internal/handler/evict"
	"link-resolver/services/resolver/internal/handler/redirect"
	"link-resolver/services/resolver/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/healthz",
				Handler: HealthHandler(),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/internal/cache/:code",
				Handler: evict.EvictCacheHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/:code",
				Handler: redirect.RedirectHandler(serverCtx),
			},
		},
	)
}
