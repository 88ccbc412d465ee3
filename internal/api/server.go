package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/quincysky/nameChecker/internal/check"
	"github.com/quincysky/nameChecker/internal/decl"
	"github.com/quincysky/nameChecker/internal/storage"
)

// UserStore is the auth/audit contract the API uses.
type UserStore interface {
	GetUserByUsername(string) (storage.User, string, error)
	CreateSession(int64, string, time.Time) error
	GetSession(string) (storage.User, error)
	DeleteSession(string) error
	LogAudit(username, action, resource string, meta map[string]any) error
	ListAudit(limit int) ([]storage.AuditRow, error)
}

type Server struct {
	UserStore       UserStore
	Logger          *slog.Logger
	AllowedOrigins  []string
	SessionDuration time.Duration
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	withCORS := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if origin := s.pickCORSOrigin(r); origin != "" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
			}
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET, HEAD, OPTIONS, POST")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			h(w, r)
		}
	}

	// Health
	mux.HandleFunc("GET /api/v1/health", withCORS(s.handleHealth))

	// Auth
	mux.HandleFunc("POST /api/v1/auth/login", withCORS(s.handleLogin))
	mux.HandleFunc("POST /api/v1/auth/logout", withCORS(withAuth(s, s.handleLogout, "auth:logout")))

	// Me
	mux.HandleFunc("GET /api/v1/me", withCORS(withAuth(s, s.handleMe, "me")))

	// Checking (ad hoc; nothing is stored)
	mux.HandleFunc("POST /api/v1/check", withCORS(s.handleCheck))

	// Convention inventory
	mux.HandleFunc("GET /api/v1/conventions", withCORS(s.handleConventions))

	// Audit trail
	mux.HandleFunc("GET /api/v1/audit", withCORS(withAuth(s, s.handleAudit, "audit:list")))

	// Fallback 404
	mux.HandleFunc("/", withCORS(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	return mux
}

// pickCORSOrigin decides which origin, if any, a response may be
// granted to. An empty allowlist keeps the open default.
func (s *Server) pickCORSOrigin(r *http.Request) string {
	if len(s.AllowedOrigins) == 0 {
		return "*"
	}
	origin := r.Header.Get("Origin")
	for _, ao := range s.AllowedOrigins {
		if ao == "*" {
			return "*"
		}
		if origin != "" && strings.EqualFold(origin, ao) {
			return origin
		}
	}
	// Not allowed → no CORS header
	return ""
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":        true,
		"timestamp": time.Now().UTC(),
	})
}

type checkReq struct {
	Source       string       `json:"source"`
	Declarations []*decl.Node `json:"declarations"`
}

// POST /api/v1/check — run the scanner over a submitted declaration
// forest and answer with the advisories, in traversal order.
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var in checkReq
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.err(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}
	decl.Link(in.Declarations)

	run := decl.Run{
		ID:        "adhoc-" + strconv.FormatInt(time.Now().UnixNano(), 10),
		StartedAt: time.Now().UTC(),
		Source:    in.Source,
		IRVersion: decl.Version,
		Roots:     in.Declarations,
	}
	run.Advisories = check.Evaluate(&run)

	writeJSON(w, http.StatusOK, map[string]any{
		"id":         run.ID,
		"source":     run.Source,
		"count":      len(run.Advisories),
		"advisories": run.Advisories,
	})
}

// GET /api/v1/conventions (no auth needed for read-only)
func (s *Server) handleConventions(w http.ResponseWriter, r *http.Request) {
	type C struct {
		ID        string   `json:"id"`
		Summary   string   `json:"summary"`
		AppliesTo []string `json:"applies_to"`
	}
	var out []C
	for _, ci := range check.Conventions() {
		c := C{ID: string(ci.ID), Summary: ci.Summary}
		for _, k := range ci.AppliesTo {
			c.AppliesTo = append(c.AppliesTo, string(k))
		}
		out = append(out, c)
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out, "count": len(out)})
}

func (s *Server) handleAudit(w http.ResponseWriter, r *http.Request) {
	limit := clamp(parseInt(r.URL.Query().Get("limit"), 50), 1, 500)
	rows, err := s.UserStore.ListAudit(limit)
	if err != nil {
		s.err(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": rows, "limit": limit})
}

func (s *Server) err(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

func clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
