package catalog

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"go.uber.org/zap"

	"MiniCatalog/pkg/kit"
)

const readyTimeout = 1 * time.Second

type RouteDoc struct {
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Description string   `json:"description"`
	QueryParams []string `json:"queryParams,omitempty"`
}

var routeDocs = []RouteDoc{
	{Path: "/", Method: http.MethodGet, Description: "Service information"},
	{Path: "/health", Method: http.MethodGet, Description: "Health check with runtime details"},
	{Path: "/api/docs", Method: http.MethodGet, Description: "This listing"},
	{Path: "/api/stats", Method: http.MethodGet, Description: "Catalog statistics"},
	{Path: "/api/users", Method: http.MethodGet, Description: "List users", QueryParams: []string{"role", "limit"}},
	{Path: "/api/users/{id}", Method: http.MethodGet, Description: "Get user by id"},
	{Path: "/api/products", Method: http.MethodGet, Description: "List products", QueryParams: []string{"category", "inStock"}},
	{Path: "/api/products/{id}", Method: http.MethodGet, Description: "Get product by id"},
}

type homeResponse struct {
	Message     string            `json:"message"`
	Version     string            `json:"version"`
	Description string            `json:"description"`
	Timestamp   string            `json:"timestamp"`
	Endpoints   map[string]string `json:"endpoints"`
}

func (s *Server) home(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, homeResponse{
		Message:     "Welcome to the catalog API",
		Version:     s.Version,
		Description: "Read-only users and products catalog",
		Timestamp:   s.now().UTC().Format(time.RFC3339),
		Endpoints: map[string]string{
			"health":   "/health",
			"users":    "/api/users",
			"products": "/api/products",
			"stats":    "/api/stats",
			"docs":     "/api/docs",
		},
	})
}

type systemInfo struct {
	GoVersion     string  `json:"goVersion"`
	NumGoroutines int     `json:"numGoroutines"`
	MemAllocMB    uint64  `json:"memAllocMB"`
	UptimeSeconds float64 `json:"uptimeSeconds"`
}

func (s *Server) systemInfo() systemInfo {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return systemInfo{
		GoVersion:     runtime.Version(),
		NumGoroutines: runtime.NumGoroutine(),
		MemAllocMB:    m.Alloc / 1024 / 1024,
		UptimeSeconds: s.now().Sub(s.StartedAt).Seconds(),
	}
}

type healthResponse struct {
	Status    string     `json:"status"`
	Service   string     `json:"service"`
	Version   string     `json:"version"`
	Instance  string     `json:"instance"`
	Timestamp string     `json:"timestamp"`
	System    systemInfo `json:"system"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Service:   s.Service,
		Version:   s.Version,
		Instance:  s.InstanceID,
		Timestamp: s.now().UTC().Format(time.RFC3339),
		System:    s.systemInfo(),
	})
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := s.Store.Ping(ctx); err != nil {
		s.Log.Warn("readyz failed", zap.Error(err))
		kit.WriteFail(w, http.StatusServiceUnavailable, "Not ready", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
}

type statsResponse struct {
	Stats
	System systemInfo `json:"system"`
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	users, err := s.Store.ListUsers(r.Context())
	if err != nil {
		s.storeFailed(w, r, "stats: list users failed", err)
		return
	}
	products, err := s.Store.ListProducts(r.Context())
	if err != nil {
		s.storeFailed(w, r, "stats: list products failed", err)
		return
	}

	kit.WriteData(w, statsResponse{
		Stats:  Summarize(users, products),
		System: s.systemInfo(),
	})
}

func (s *Server) docs(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, map[string]any{
		"title":     "Catalog API",
		"version":   s.Version,
		"endpoints": routeDocs,
	})
}

func availablePaths() []string {
	out := make([]string, 0, len(routeDocs))
	for _, d := range routeDocs {
		out = append(out, d.Path)
	}
	return out
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	kit.WriteFail(w, http.StatusNotFound, "Endpoint not found", map[string]any{
		"availableEndpoints": availablePaths(),
	})
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	kit.WriteFail(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
}
