// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import "net/http"

// Liveness probe
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}
}
