package handler

import (
	"encoding/json"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

type signalsResponse struct {
	signals map[string]any
}

// Render patches the signals over SSE for DataStar requests and writes them as JSON otherwise.
func (s signalsResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return JSON(s.signals).Render(w, r)
	}

	data, err := json.Marshal(s.signals)
	if err != nil {
		return err
	}
	sse := datastar.NewSSE(w, r)
	return sse.PatchSignals(data)
}

// Signals creates a response that merges values into the frontend signals.
// Non-DataStar clients receive the same values as a JSON document.
//
// Example:
//
//	return handler.Signals(map[string]any{"menuOpen": false})
func Signals(signals map[string]any) Response {
	return signalsResponse{signals: signals}
}
