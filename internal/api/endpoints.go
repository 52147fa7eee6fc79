// Package api - HTTP интерфейс к сессиям калькулятора
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"utility-calculator/internal/auth"
	"utility-calculator/internal/calculator"
	"utility-calculator/internal/chart"
	"utility-calculator/internal/logger"
)

// SessionResponse - ответ защищенных эндпоинтов
type SessionResponse struct {
	State calculator.State    `json:"state"`
	Error *calculator.Failure `json:"error,omitempty"`
}

type KeyRequest struct {
	Key string `json:"key"`
}

// Server обслуживает HTTP запросы к сессиям пользователей
type Server struct {
	registry    *calculator.Registry
	chartWidth  int
	chartHeight int
}

func NewServer(registry *calculator.Registry, chartWidth, chartHeight int) *Server {
	return &Server{registry: registry, chartWidth: chartWidth, chartHeight: chartHeight}
}

// Router собирает маршруты: публичные для регистрации и входа,
// остальные за AuthMiddleware
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/v1/register", auth.Register).Methods("POST")
	r.HandleFunc("/api/v1/login", auth.Login).Methods("POST")

	protected := r.PathPrefix("/api/v1/session").Subrouter()
	protected.Use(auth.AuthMiddleware)
	protected.HandleFunc("", s.HandleGetSession).Methods("GET")
	protected.HandleFunc("", s.HandleDeleteSession).Methods("DELETE")
	protected.HandleFunc("/fields", s.HandleSetFields).Methods("PUT")
	protected.HandleFunc("/keys", s.HandleKey).Methods("POST")
	protected.HandleFunc("/actions/{action}", s.HandleAction).Methods("POST")
	protected.HandleFunc("/chart", s.HandleChart).Methods("GET")
	protected.HandleFunc("/logs", s.HandleLogs).Methods("GET")

	return r
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.LogERROR(fmt.Sprintf("Failed to encode response: %v", err))
	}
}

// run выполняет fn над сессией пользователя и отвечает ее состоянием
func (s *Server) run(w http.ResponseWriter, r *http.Request, fn func(*calculator.Session) error) {
	userID, err := auth.RequireAuth(r.Context())
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var state calculator.State
	err = s.registry.With(userID, func(sess *calculator.Session) error {
		defer func() { state = sess.State() }()
		return fn(sess)
	})

	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, SessionResponse{State: state})
	case errors.Is(err, calculator.ErrUnknownField):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case calculator.FailureFrom(err) != nil:
		writeJSON(w, http.StatusUnprocessableEntity, SessionResponse{State: state, Error: calculator.FailureFrom(err)})
	default:
		logger.LogERROR(fmt.Sprintf("Session request failed for user %d: %v", userID, err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// decodeFields читает необязательное тело вида {"field": "value"}
func decodeFields(r *http.Request) (map[string]string, error) {
	var fields map[string]string
	err := json.NewDecoder(r.Body).Decode(&fields)
	if err == io.EOF {
		return nil, nil
	}
	return fields, err
}

func (s *Server) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	s.run(w, r, func(*calculator.Session) error { return nil })
}

func (s *Server) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.RequireAuth(r.Context())
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	logger.LogINFO(fmt.Sprintf("Resetting session of user %d", userID))
	s.registry.Reset(userID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) HandleSetFields(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil || fields == nil {
		http.Error(w, "Failed to parse JSON: expected an object of field values", http.StatusBadRequest)
		return
	}
	s.run(w, r, func(sess *calculator.Session) error {
		return sess.SetFields(fields)
	})
}

func (s *Server) HandleKey(w http.ResponseWriter, r *http.Request) {
	var req KeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Key == "" {
		http.Error(w, "Failed to parse JSON: expected {\"key\": ...}", http.StatusBadRequest)
		return
	}
	s.run(w, r, func(sess *calculator.Session) error {
		return sess.Press(req.Key)
	})
}

func (s *Server) HandleAction(w http.ResponseWriter, r *http.Request) {
	action := mux.Vars(r)["action"]
	if !calculator.KnownAction(action) {
		http.Error(w, "Unknown action: "+action, http.StatusNotFound)
		return
	}

	fields, err := decodeFields(r)
	if err != nil {
		http.Error(w, "Failed to parse JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	logger.LogINFO(fmt.Sprintf("Received action request: %s", action))
	s.run(w, r, func(sess *calculator.Session) error {
		if err := sess.SetFields(fields); err != nil {
			return err
		}
		return sess.Do(calculator.Action(action))
	})
}

func (s *Server) HandleChart(w http.ResponseWriter, r *http.Request) {
	mode, err := chart.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	userID, err := auth.RequireAuth(r.Context())
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	surface, err := chart.NewRasterSurface(s.chartWidth, s.chartHeight)
	if err != nil {
		logger.LogERROR(fmt.Sprintf("Failed to create chart surface: %v", err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var state calculator.State
	err = s.registry.With(userID, func(sess *calculator.Session) error {
		defer func() { state = sess.State() }()
		return sess.Render(mode, surface)
	})
	if body := calculator.FailureFrom(err); body != nil {
		writeJSON(w, http.StatusUnprocessableEntity, SessionResponse{State: state, Error: body})
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := surface.EncodePNG(w); err != nil {
		logger.LogERROR(fmt.Sprintf("Failed to encode chart: %v", err))
	}
}

func (s *Server) HandleLogs(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "xlsx" {
		http.Error(w, "Unknown log format: "+format, http.StatusBadRequest)
		return
	}
	userID, err := auth.RequireAuth(r.Context())
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var data []byte
	var name string
	err = s.registry.With(userID, func(sess *calculator.Session) error {
		var err error
		if format == "xlsx" {
			data, name, err = sess.Log().ExportXLSX()
		} else {
			data, name, err = sess.Log().ExportJSON()
		}
		return err
	})
	if err != nil {
		logger.LogERROR(fmt.Sprintf("Failed to export error log of user %d: %v", userID, err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	contentType := "application/json"
	if format == "xlsx" {
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
