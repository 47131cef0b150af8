// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// ToolsHandler handles assessment tool requests.
type ToolsHandler struct {
	deps Dependencies
}

// NewToolsHandler creates a new tools handler.
func NewToolsHandler(deps Dependencies) *ToolsHandler {
	return &ToolsHandler{deps: deps}
}

// HandlePostTool handles POST /tools/{tool} requests. The authority tool
// takes a channel reference and runs the full pipeline; every other tool
// scores the request fields directly.
func (h *ToolsHandler) HandlePostTool(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	name := strings.Trim(strings.TrimPrefix(r.URL.Path, "/tools/"), "/")
	if name == "" || strings.Contains(name, "/") {
		http.NotFound(w, r)
		return
	}

	nums, strs, err := decodeFields(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if name == "authority" {
		h.handleAuthority(w, r, strs["channelUrl"])
		return
	}

	rep, err := h.deps.EvaluateTool(r.Context(), name, nums, strs)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, resultResponse{Result: rep})
}

func (h *ToolsHandler) handleAuthority(w http.ResponseWriter, r *http.Request, channelURL string) {
	if strings.TrimSpace(channelURL) == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("%w: missing channelUrl", ErrBadRequest))
		return
	}
	rep, err := h.deps.EvaluateAuthority(r.Context(), channelURL)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, resultResponse{Result: rep})
}

// decodeFields reads a flat JSON object of scalar fields and splits it
// into numeric and string maps. Nested values are rejected up front.
func decodeFields(r *http.Request) (map[string]float64, map[string]string, error) {
	var raw map[string]any
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&raw); err != nil {
		return nil, nil, fmt.Errorf("%w: invalid JSON body", ErrBadRequest)
	}

	nums := make(map[string]float64, len(raw))
	strs := make(map[string]string, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case float64:
			nums[k] = val
		case string:
			strs[k] = val
		case nil:
			// Treat explicit null as absent.
		default:
			return nil, nil, fmt.Errorf("%w: field %s must be a number or string", ErrBadRequest, k)
		}
	}
	return nums, strs, nil
}
