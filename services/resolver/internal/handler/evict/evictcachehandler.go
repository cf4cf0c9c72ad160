// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package evict

import (
	"net/http"

	"link-resolver/services/resolver/internal/logic/evict"
	"link-resolver/services/resolver/internal/svc"
	"link-resolver/services/resolver/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// Evict a short code from the lookup cache
func EvictCacheHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.EvictCacheRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := evict.NewEvictCacheLogic(r.Context(), svcCtx)
		if err := l.EvictCache(&req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
