package catalog

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"MiniCatalog/pkg/kit"
)

const (
	msgUserNotFound    = "User not found"
	msgProductNotFound = "Product not found"
	msgInvalidLimit    = "Invalid limit"
	msgInvalidInStock  = "Invalid inStock"
	msgServerError     = "Internal server error"
)

type Server struct {
	Store   Store
	Log     *zap.Logger
	Metrics *QueryMetrics

	Service    string
	Version    string
	InstanceID string
	StartedAt  time.Time

	// Now is the wall clock used for response timestamps.
	Now func() time.Time
}

func NewServer(store Store, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		Store:      store,
		Log:        log,
		Service:    "catalog",
		Version:    "1.0.0",
		InstanceID: uuid.NewString(),
		StartedAt:  time.Now(),
		Now:        time.Now,
	}
}

// Routes registers the public catalog API. apiMW wraps only the /api group.
func (s *Server) Routes(r chi.Router, apiMW ...func(http.Handler) http.Handler) {
	r.Get("/", s.home)
	r.Get("/health", s.health)
	r.Get("/healthz", healthz)
	r.Get("/readyz", s.readyz)

	r.Route("/api", func(api chi.Router) {
		api.Use(apiMW...)

		api.Get("/docs", s.docs)
		api.Get("/stats", s.stats)

		api.Get("/users", s.listUsers)
		api.Get("/users/{id:[0-9]+}", s.getUser)

		api.Get("/products", s.listProducts)
		api.Get("/products/{id:[0-9]+}", s.getProduct)
	})
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := UserFilter{Role: q.Get("role")}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			kit.WriteFail(w, http.StatusBadRequest, msgInvalidLimit, nil)
			return
		}
		f.Limit = n
	}

	users, err := s.Store.ListUsers(r.Context())
	if err != nil {
		s.storeFailed(w, r, "list users failed", err)
		return
	}

	out := FilterUsers(users, f)
	s.Metrics.observe("users", len(out))
	kit.WriteList(w, out, len(out))
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		kit.WriteFail(w, http.StatusNotFound, msgUserNotFound, nil)
		return
	}

	users, err := s.Store.ListUsers(r.Context())
	if err != nil {
		s.storeFailed(w, r, "get user failed", err)
		return
	}

	u, err := FindUser(users, id)
	if errors.Is(err, ErrUserNotFound) {
		kit.WriteFail(w, http.StatusNotFound, msgUserNotFound, nil)
		return
	}
	kit.WriteData(w, u)
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := ProductFilter{Category: q.Get("category")}
	if raw := q.Get("inStock"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			kit.WriteFail(w, http.StatusBadRequest, msgInvalidInStock, nil)
			return
		}
		f.InStock = &b
	}

	products, err := s.Store.ListProducts(r.Context())
	if err != nil {
		s.storeFailed(w, r, "list products failed", err)
		return
	}

	out := FilterProducts(products, f)
	s.Metrics.observe("products", len(out))
	kit.WriteList(w, out, len(out))
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		kit.WriteFail(w, http.StatusNotFound, msgProductNotFound, nil)
		return
	}

	products, err := s.Store.ListProducts(r.Context())
	if err != nil {
		s.storeFailed(w, r, "get product failed", err)
		return
	}

	p, err := FindProduct(products, id)
	if errors.Is(err, ErrProductNotFound) {
		kit.WriteFail(w, http.StatusNotFound, msgProductNotFound, nil)
		return
	}
	kit.WriteData(w, p)
}

// pathID parses the {id} route param. Digits too large for an int cannot
// name any record, so callers answer not-found.
func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil
}

func (s *Server) storeFailed(w http.ResponseWriter, r *http.Request, msg string, err error) {
	s.Log.Error(msg, zap.Error(err), zap.String("path", r.URL.Path))
	kit.WriteFail(w, http.StatusInternalServerError, msgServerError, nil)
}

func (s *Server) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
