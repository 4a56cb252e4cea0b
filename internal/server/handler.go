package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/sirupsen/logrus"

	"qahistory/internal/eval"
	"qahistory/internal/history"
	"qahistory/internal/scoring"
)

const maxBodyBytes = 1 << 20

// Appender appends records to the conversation history and returns the
// node that was placed in the container.
type Appender interface {
	AppendNode(question, answer string, evaluation any) (history.Node, error)
}

// View renders the conversation history container.
type View interface {
	Render(ctx context.Context, w io.Writer) error
}

// Scorer grades an answer against an ideal answer.
type Scorer interface {
	Score(ctx context.Context, question, ideal, actual string) (scoring.Evaluation, error)
}

// Config wires dependencies for the HTTP handler.
type Config struct {
	Addr     string
	Appender Appender
	View     View
	Scorer   Scorer
	Log      *logrus.Entry
}

type handler struct {
	appender Appender
	view     View
	scorer   Scorer
	log      *logrus.Entry
}

// NewHandler builds the HTTP handler for the practice page and history API.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Appender == nil {
		return nil, errors.New("server: appender is required")
	}
	if cfg.View == nil {
		return nil, errors.New("server: history view is required")
	}
	log := cfg.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	h := &handler{
		appender: cfg.Appender,
		view:     cfg.View,
		scorer:   cfg.Scorer,
		log:      log.WithField("component", "server"),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/", h.handleIndex)
	mux.HandleFunc("/history", h.handleHistory)
	mux.HandleFunc("/evaluate", h.handleEvaluate)
	return mux, nil
}

func (h *handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	templ.Handler(indexPage(h.view)).ServeHTTP(w, r)
}

func (h *handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		var b strings.Builder
		if err := h.view.Render(r.Context(), &b); err != nil {
			h.log.WithError(err).Error("render history")
			writeError(w, http.StatusInternalServerError, "render_failed")
			return
		}
		writeHTML(w, http.StatusOK, b.String())
	case http.MethodPost:
		h.handleAppend(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

type appendRequest struct {
	Question   string         `json:"question"`
	Answer     string         `json:"answer"`
	Evaluation eval.JSONValue `json:"evaluation"`
}

func (h *handler) handleAppend(w http.ResponseWriter, r *http.Request) {
	var req appendRequest
	if !decodeBody(w, r, &req) {
		return
	}
	node, ok := h.appendEntry(w, req.Question, req.Answer, req.Evaluation)
	if !ok {
		return
	}
	writeHTML(w, http.StatusCreated, node.HTML)
}

type evaluateRequest struct {
	Question    string `json:"question"`
	IdealAnswer string `json:"ideal_answer"`
	Answer      string `json:"answer"`
}

type evaluateResponse struct {
	Text       string             `json:"text"`
	EntryID    string             `json:"entry_id"`
	Evaluation scoring.Evaluation `json:"evaluation"`
}

func (h *handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if h.scorer == nil {
		writeError(w, http.StatusServiceUnavailable, "scorer_unavailable")
		return
	}
	var req evaluateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeError(w, http.StatusBadRequest, "missing_question")
		return
	}
	evaluation, err := h.scorer.Score(r.Context(), req.Question, req.IdealAnswer, req.Answer)
	if err != nil {
		h.log.WithError(err).Error("score answer")
		writeError(w, http.StatusBadGateway, "evaluation_failed")
		return
	}
	node, ok := h.appendEntry(w, req.Question, req.Answer, evaluation)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, evaluateResponse{
		Text:       req.Answer,
		EntryID:    node.Entry.ID,
		Evaluation: evaluation,
	})
}

// appendEntry appends and writes the error response on failure.
func (h *handler) appendEntry(w http.ResponseWriter, question, answer string, evaluation any) (history.Node, bool) {
	node, err := h.appender.AppendNode(question, answer, evaluation)
	if err == nil {
		return node, true
	}
	var serr *history.SerializationError
	switch {
	case errors.Is(err, history.ErrContainerNotFound):
		h.log.WithError(err).Error("history container missing")
		writeError(w, http.StatusInternalServerError, "container_not_found")
	case errors.As(err, &serr):
		h.log.WithError(err).Warn("evaluation not serializable")
		writeError(w, http.StatusUnprocessableEntity, "serialization_failed")
	default:
		h.log.WithError(err).Error("append history entry")
		writeError(w, http.StatusInternalServerError, "append_failed")
	}
	return history.Node{}, false
}

func decodeBody(w http.ResponseWriter, r *http.Request, target any) bool {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return false
	}
	return true
}
