// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package redirect

import (
	"net/http"

	"link-resolver/services/resolver/internal/logic/redirect"
	"link-resolver/services/resolver/internal/svc"
	"link-resolver/services/resolver/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// Redirect to original URL
func RedirectHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.RedirectRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := redirect.NewRedirectLogic(r.Context(), svcCtx)
		originalUrl, err := l.Redirect(&req, r)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		http.Redirect(w, r, originalUrl, types.RedirectStatus)
	}
}
