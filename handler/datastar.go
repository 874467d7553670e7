package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

// DataStar detection constants
const (
	// DataStarAcceptHeader is the Accept header value that indicates a DataStar request
	DataStarAcceptHeader = "text/event-stream"

	// DataStarQueryParam is the query parameter used by DataStar for signals
	DataStarQueryParam = "datastar"
)

// Patch mode aliases for convenience
const (
	PatchOuter   = datastar.ElementPatchModeOuter   // Morphs element (default)
	PatchInner   = datastar.ElementPatchModeInner   // Replace inner HTML
	PatchRemove  = datastar.ElementPatchModeRemove  // Remove element
	PatchAppend  = datastar.ElementPatchModeAppend  // Append inside element
	PatchPrepend = datastar.ElementPatchModePrepend // Prepend inside element
)

// IsDataStar checks if the request is a DataStar request.
// DataStar requests accept Server-Sent Events or carry signals in the query string.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	if r.URL.Query().Has(DataStarQueryParam) {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar")
}

// NewSSE creates a Server-Sent Event generator for DataStar responses.
func NewSSE(w http.ResponseWriter, r *http.Request) *datastar.ServerSentEventGenerator {
	return datastar.NewSSE(w, r)
}
