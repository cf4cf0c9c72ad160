// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

import "net/http"

// RedirectStatus is the one redirect policy for the whole system.
// Temporary, so intermediaries never cache a destination the link owner
// may later change or deactivate. Every place that emits or documents
// the redirect consults this constant.
const RedirectStatus = http.StatusTemporaryRedirect

type RedirectRequest struct {
	Code string `path:"code"`
}

type EvictCacheRequest struct {
	Code string `path:"code"`
}
