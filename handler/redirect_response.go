package handler

import (
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

type redirectResponse struct {
	url  string
	code int
}

// Render performs the redirect, handling both DataStar and regular requests
func (r redirectResponse) Render(w http.ResponseWriter, req *http.Request) error {
	if IsDataStar(req) {
		sse := datastar.NewSSE(w, req)
		return sse.Redirect(r.url)
	}
	http.Redirect(w, req, r.url, r.code)
	return nil
}

// Redirect creates a redirect response with status 303 (See Other).
// For DataStar requests, it uses Server-Sent Events to trigger a client-side redirect.
//
// Example:
//
//	return handler.Redirect("/login")
func Redirect(url string) Response {
	return redirectResponse{url: url, code: http.StatusSeeOther}
}
