package roster

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/roster/backend/internal/model/activity"
	"github.com/zhouzirui/roster/backend/internal/model/person"
	"github.com/zhouzirui/roster/backend/internal/view"
	"github.com/zhouzirui/roster/backend/pkg/utils"
)

const defaultActivityPage = 20

// Service is the slice of the roster service the HTTP layer depends on.
type Service interface {
	List(ctx context.Context) []person.Person
	Get(ctx context.Context, id int) (person.Person, error)
	Create(ctx context.Context, fields person.Fields) (person.Person, error)
	Update(ctx context.Context, id int, fields person.Fields) (person.Person, error)
	Delete(ctx context.Context, id int) error
	Activity(ctx context.Context, limit int) []activity.Event
}

// Handler serves the roster page, its form actions and the JSON API.
type Handler struct {
	svc      Service
	renderer *view.Renderer
}

// New 创建roster处理器
func New(svc Service, renderer *view.Renderer) *Handler {
	return &Handler{
		svc:      svc,
		renderer: renderer,
	}
}

// RegisterRoutes registers the page and its form endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handlePage)
	r.Post("/add", h.mutation(h.add))
	r.Post("/update", h.mutation(h.update))
	r.Post("/delete", h.mutation(h.delete))
}

// RegisterAPIRoutes registers the read-only JSON endpoints.
func (h *Handler) RegisterAPIRoutes(r chi.Router) {
	r.Get("/records", h.handleListRecords)
	r.Get("/records/{id}", h.handleGetRecord)
	r.Get("/activity", h.handleActivity)
}

// handlePage renders the full roster page.
func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	data := view.PageData{Records: h.svc.List(r.Context())}
	if notice, ok := view.NoticeFor(r.URL.Query().Get("status")); ok {
		data.Notice = &notice
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.RenderPage(w, data); err != nil {
		log.Printf("[roster] render page failed: %v", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}

// mutation adapts a form action that decides where to redirect.
func (h *Handler) mutation(action func(r *http.Request) utils.Redirect) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		action(r).Write(w, r)
	}
}

func (h *Handler) add(r *http.Request) utils.Redirect {
	fields, err := parseFields(r)
	if err != nil {
		log.Printf("[roster] add rejected: %v", err)
		return pageRedirect(view.StatusBadInput)
	}

	if _, err := h.svc.Create(r.Context(), fields); err != nil {
		return pageRedirect(statusFor(err))
	}
	return pageRedirect(view.StatusCreated)
}

func (h *Handler) update(r *http.Request) utils.Redirect {
	id, err := parseID(r)
	if err != nil {
		log.Printf("[roster] update rejected: %v", err)
		return pageRedirect(view.StatusBadInput)
	}
	fields, err := parseFields(r)
	if err != nil {
		log.Printf("[roster] update rejected: %v", err)
		return pageRedirect(view.StatusBadInput)
	}

	if _, err := h.svc.Update(r.Context(), id, fields); err != nil {
		return pageRedirect(statusFor(err))
	}
	return pageRedirect(view.StatusUpdated)
}

func (h *Handler) delete(r *http.Request) utils.Redirect {
	id, err := parseID(r)
	if err != nil {
		log.Printf("[roster] delete rejected: %v", err)
		return pageRedirect(view.StatusBadInput)
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		return pageRedirect(statusFor(err))
	}
	return pageRedirect(view.StatusDeleted)
}

// handleListRecords 列出所有记录
func (h *Handler) handleListRecords(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.svc.List(r.Context()))
}

func (h *Handler) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	item, err := h.svc.Get(r.Context(), id)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, person.ErrPersonNotFound.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, item)
}

func (h *Handler) handleActivity(w http.ResponseWriter, r *http.Request) {
	limit := defaultActivityPage
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.RespondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}
	utils.RespondJSON(w, http.StatusOK, h.svc.Activity(r.Context(), limit))
}

func pageRedirect(status string) utils.Redirect {
	return utils.SeeOther("/", url.Values{"status": {status}})
}

func statusFor(err error) string {
	switch {
	case errors.Is(err, person.ErrInvalidPerson):
		return view.StatusInvalid
	case errors.Is(err, person.ErrPersonNotFound):
		return view.StatusNotFound
	default:
		return view.StatusBadInput
	}
}
