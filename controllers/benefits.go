package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blogem/welfare-admin/middleware"
	"github.com/blogem/welfare-admin/models"
	"github.com/blogem/welfare-admin/services"
)

// BenefitController handles the claims of one benefit kind
type BenefitController struct {
	services *services.Services
	kind     models.BenefitKind
	path     string
}

// NewBenefitController creates a controller for kind, served under /api/<path>
func NewBenefitController(services *services.Services, kind models.BenefitKind, path string) *BenefitController {
	return &BenefitController{
		services: services,
		kind:     kind,
		path:     path,
	}
}

// Kind returns the benefit kind this controller serves
func (c *BenefitController) Kind() models.BenefitKind {
	return c.kind
}

// Path returns the URL segment this controller is mounted under
func (c *BenefitController) Path() string {
	return c.path
}

// Event names the audit event for an action on this kind, e.g. "medical.create"
func (c *BenefitController) Event(action string) string {
	return string(c.kind) + "." + action
}

// benefitCreated is the response body of a successful create
type benefitCreated struct {
	Message string          `json:"message"`
	Benefit *models.Benefit `json:"benefit"`
}

func (c *BenefitController) data(benefit *models.Benefit) map[string]any {
	return map[string]any{
		"benefit":   string(c.kind),
		"benefitId": benefit.ID,
		"memberId":  benefit.MemberID,
		"amount":    benefit.Amount.String(),
	}
}

// List handles GET /api/<path>
func (c *BenefitController) List(w http.ResponseWriter, r *http.Request) (*middleware.Result, error) {
	benefits, err := c.services.Benefits.GetAll(r.Context(), c.kind)
	if err != nil {
		return nil, err
	}
	return &middleware.Result{Body: benefits}, nil
}

// Get handles GET /api/<path>/{id}
func (c *BenefitController) Get(w http.ResponseWriter, r *http.Request) (*middleware.Result, error) {
	benefit, err := c.services.Benefits.GetByID(r.Context(), c.kind, chi.URLParam(r, "id"))
	if err != nil {
		return nil, err
	}
	return &middleware.Result{Body: benefit}, nil
}

// ByMember handles GET /api/<path>/benefits/{userId}
func (c *BenefitController) ByMember(w http.ResponseWriter, r *http.Request) (*middleware.Result, error) {
	benefits, err := c.services.Benefits.GetByMember(r.Context(), c.kind, chi.URLParam(r, "userId"))
	if err != nil {
		return nil, err
	}
	return &middleware.Result{Body: benefits}, nil
}

// Create handles POST /api/<path>
func (c *BenefitController) Create(w http.ResponseWriter, r *http.Request) (*middleware.Result, error) {
	var form models.BenefitForm
	if err := decodeJSON(r, &form); err != nil {
		return nil, err
	}

	benefit, err := c.services.Benefits.Create(r.Context(), actorID(r), c.kind, &form)
	if err != nil {
		return nil, err
	}
	return &middleware.Result{
		Status: http.StatusCreated,
		Body: benefitCreated{
			Message: "Benefit created successfully",
			Benefit: benefit,
		},
		Message: string(c.kind) + " claim created",
		Data:    c.data(benefit),
	}, nil
}

// Update handles PUT /api/<path>/{id}
func (c *BenefitController) Update(w http.ResponseWriter, r *http.Request) (*middleware.Result, error) {
	var form models.BenefitForm
	if err := decodeJSON(r, &form); err != nil {
		return nil, err
	}

	benefit, err := c.services.Benefits.Update(r.Context(), actorID(r), c.kind, chi.URLParam(r, "id"), &form)
	if err != nil {
		return nil, err
	}
	return &middleware.Result{
		Body:    benefit,
		Message: string(c.kind) + " claim updated",
		Data:    c.data(benefit),
	}, nil
}

// Delete handles DELETE /api/<path>/{id}
func (c *BenefitController) Delete(w http.ResponseWriter, r *http.Request) (*middleware.Result, error) {
	id := chi.URLParam(r, "id")

	if err := c.services.Benefits.Delete(r.Context(), c.kind, id); err != nil {
		return nil, err
	}
	return &middleware.Result{
		Body:    messageBody{Message: "Benefit deleted successfully"},
		Message: string(c.kind) + " claim deleted",
		Data:    map[string]any{"benefit": string(c.kind), "benefitId": id},
	}, nil
}
