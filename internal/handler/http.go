package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/hngprojects/devops-stage1/internal/config"
	log "github.com/sirupsen/logrus"
)

const (
	// AppName is the human-readable application name shown on the status page.
	AppName = "HNG13 DevOps Stage 1"
	// ServiceName identifies the service in health check responses.
	ServiceName = "hng13-devops-stage1"
	// Version is the application version.
	Version = "1.0.0"

	contentTypeJSON = "application/json"
	contentTypeHTML = "text/html; charset=utf-8"

	pageTimeFormat = "2006-01-02 15:04:05"
)

// ResponseError is the JSON envelope for 404, 405 and 500 responses.
type ResponseError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// HealthResponse is the body of /api/health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Version   string `json:"version"`
}

// InfoResponse is the body of /api/info.
type InfoResponse struct {
	Application    string `json:"application"`
	Hostname       string `json:"hostname"`
	Timestamp      string `json:"timestamp"`
	Port           string `json:"port"`
	Environment    string `json:"environment"`
	RuntimeVersion string `json:"runtime_version"`
	Status         string `json:"status"`
}

// StatusResponse is the body of /api/status.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HTTPHandler contains all HTTP handlers.
type HTTPHandler struct {
	cfg  *config.Config
	page *StatusPage
}

func NewHTTPHandler(cfg *config.Config, page *StatusPage) *HTTPHandler {
	return &HTTPHandler{
		cfg:  cfg,
		page: page,
	}
}

func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", h.handleHome)
	mux.HandleFunc("/api/health", h.handleHealth)
	mux.HandleFunc("/api/info", h.handleInfo)
	mux.HandleFunc("/api/status", h.handleStatus)
}

// handleHome renders the HTML status page. The "/" pattern matches every
// path not claimed by another route, so anything but "/" itself is a 404.
func (h *HTTPHandler) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeNotFound(w)
		return
	}
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}

	data := PageData{
		Hostname:    hostname(),
		CurrentTime: time.Now().Format(pageTimeFormat),
		Port:        h.cfg.Port,
		Environment: h.cfg.Environment,
	}

	body, err := h.page.Render(data)
	if err != nil {
		log.WithField("error", err).Error("failed to render status page")
		writeErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred")
		return
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.WithField("error", err).Error("failed to write status page response")
	}
}

func (h *HTTPHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}

	writeJSONResponse(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   ServiceName,
		Version:   Version,
	})
}

func (h *HTTPHandler) handleInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}

	writeJSONResponse(w, http.StatusOK, InfoResponse{
		Application:    AppName,
		Hostname:       hostname(),
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		Port:           h.cfg.Port,
		Environment:    h.cfg.Environment,
		RuntimeVersion: runtime.Version(),
		Status:         "running",
	})
}

func (h *HTTPHandler) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}

	writeJSONResponse(w, http.StatusOK, StatusResponse{
		Status:  "ok",
		Message: "Application is running successfully",
	})
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return name
}

func writeJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	// Encode first so a marshalling failure cannot leave a half-written body
	// behind a 200 header.
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		log.WithField("error", err).Error("failed to encode json response")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.WithField("error", err).Error("failed to write json response")
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, message, details string) {
	writeJSONResponse(w, status, ResponseError{
		Error:   message,
		Message: details,
		Status:  status,
	})
}

func writeNotFound(w http.ResponseWriter) {
	writeErrorResponse(w, http.StatusNotFound, "Not Found", "The requested endpoint does not exist")
}

func writeMethodNotAllowed(w http.ResponseWriter) {
	writeErrorResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed", "Only GET requests are allowed")
}
