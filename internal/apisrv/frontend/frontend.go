// Package frontend serves the public order form: submitting an order and
// reading the master dictionary that drives its dropdowns.
package frontend

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/printline/printline-manager/internal/apisrv/respond"
	"github.com/printline/printline-manager/internal/dependency"
	"github.com/printline/printline-manager/internal/dto"
	"github.com/printline/printline-manager/internal/entity"
	"github.com/printline/printline-manager/internal/intake"
)

// maxSubmissionBytes bounds a single order submission payload.
const maxSubmissionBytes = 1 << 20

// Server implements handlers for public requests.
type Server struct {
	pipeline *intake.Pipeline
	dict     dependency.Dictionary
}

// New creates a new server with public handlers.
func New(pipeline *intake.Pipeline, dict dependency.Dictionary) *Server {
	return &Server{
		pipeline: pipeline,
		dict:     dict,
	}
}

// Routes mounts the public endpoints.
func (s *Server) Routes(r chi.Router) {
	r.Post("/orders", s.handleSubmitOrder)
	r.Get("/masters", s.handleGetMasters)
}

type submitResponse struct {
	*entity.SubmitResult
}

func (sr *submitResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if sr.Warning != "" {
		render.Status(r, http.StatusMultiStatus)
		return nil
	}
	render.Status(r, http.StatusCreated)
	return nil
}

func (s *Server) handleSubmitOrder(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxSubmissionBytes))
	if err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}

	result, err := s.pipeline.Submit(r.Context(), raw)
	if err != nil {
		render.Render(w, r, respond.Error(err))
		return
	}
	render.Render(w, r, &submitResponse{SubmitResult: result})
}

type mastersResponse struct {
	Items map[entity.MasterCategory][]dto.MasterItemView `json:"items"`
}

func (mr *mastersResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func (s *Server) handleGetMasters(w http.ResponseWriter, r *http.Request) {
	di := s.dict.GetDict()
	if di == nil {
		render.Render(w, r, respond.ErrInternalServerError(fmt.Errorf("dictionary not loaded")))
		return
	}

	// The public form only needs active entries.
	items := make(map[entity.MasterCategory][]dto.MasterItemView, len(di.Items))
	for category, all := range di.Items {
		active := make([]entity.MasterItem, 0, len(all))
		for _, item := range all {
			if item.Active {
				active = append(active, item)
			}
		}
		items[category] = dto.ConvertMasterItems(active)
	}
	render.Render(w, r, &mastersResponse{Items: items})
}
