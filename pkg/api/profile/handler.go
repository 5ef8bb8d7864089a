package profile

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"company_profiler/pkg/core/cache"
	"company_profiler/pkg/core/pipeline"
	"company_profiler/pkg/models"
)

type Request struct {
	Company      string `json:"company"`
	Identifier   string `json:"identifier,omitempty"`
	AnalysisText string `json:"analysis_text,omitempty"`
}

type ClearCacheRequest struct {
	Namespaces []string `json:"namespaces,omitempty"`
}

// Handler holds dependencies for profile endpoints
type Handler struct {
	Orchestrator *pipeline.Orchestrator
	Cache        *cache.Cache
}

func NewHandler(orch *pipeline.Orchestrator, c *cache.Cache) *Handler {
	return &Handler{Orchestrator: orch, Cache: c}
}

// HandleProfile serves POST /api/profile.
func (h *Handler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Company == "" && req.Identifier == "" {
		http.Error(w, "company or identifier is required", http.StatusBadRequest)
		return
	}

	requestID := uuid.New().String()
	start := time.Now()
	fmt.Printf("[API] %s profile request: company=%q identifier=%q\n", requestID, req.Company, req.Identifier)

	profile := h.Orchestrator.Run(r.Context(), models.CompanyQuery{
		RawName:            req.Company,
		ExplicitIdentifier: req.Identifier,
		AnalysisText:       req.AnalysisText,
	})

	fmt.Printf("[API] %s done in %v (status=%s)\n", requestID, time.Since(start), profile.Status)

	w.Header().Set("Content-Type", "application/json")
	switch profile.Status {
	case models.StatusNotFound:
		w.WriteHeader(http.StatusNotFound)
	case models.StatusError:
		w.WriteHeader(http.StatusBadGateway)
	}
	json.NewEncoder(w).Encode(profile)
}

// HandleClearCache serves POST /api/cache/clear. An empty namespace list
// clears everything.
func (h *Handler) HandleClearCache(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ClearCacheRequest
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	h.Cache.Clear(req.Namespaces...)
	fmt.Printf("[API] Cache cleared (namespaces=%v)\n", req.Namespaces)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "cleared"})
}
