package problemdetails

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

const (
	TypeNotFound        = "not-found"
	TypeInternalError   = "internal-error"
	TypeValidationError = "validation-error"
)

// ProblemDetail is an RFC 7807 problem document. It doubles as the error
// type returned by logic layers; the transport boundary unwraps it to
// pick the response status.
type ProblemDetail struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

func New(status int, problemType, title, detail string) *ProblemDetail {
	return &ProblemDetail{
		Type:   fmt.Sprintf("https://api.example.com/problems/%s", problemType),
		Title:  title,
		Status: status,
		Detail: detail,
	}
}

func (p *ProblemDetail) Error() string {
	return fmt.Sprintf("%s: %s", p.Title, p.Detail)
}

// ErrorHandler maps errors to problem documents for httpx. Problem
// details keep their own status; anything else is a request parsing
// failure and becomes a 400. Internal detail never leaks past the
// Detail strings the logic layer chose for the client.
func ErrorHandler(_ context.Context, err error) (int, any) {
	var problem *ProblemDetail
	if errors.As(err, &problem) {
		return problem.Status, problem
	}
	problem = New(http.StatusBadRequest, TypeValidationError, "Bad Request", err.Error())
	return problem.Status, problem
}
