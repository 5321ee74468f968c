package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blogem/welfare-admin/middleware"
	"github.com/blogem/welfare-admin/models"
	"github.com/blogem/welfare-admin/services"
)

// MemberController handles member profile requests
type MemberController struct {
	services *services.Services
}

// NewMemberController creates a new member controller
func NewMemberController(services *services.Services) *MemberController {
	return &MemberController{services: services}
}

// Profile handles GET /api/members/profile
func (c *MemberController) Profile(w http.ResponseWriter, r *http.Request) (*middleware.Result, error) {
	member, err := c.services.Members.GetProfile(r.Context(), actorID(r))
	if err != nil {
		return nil, err
	}
	return &middleware.Result{Body: member}, nil
}

// List handles GET /api/members
func (c *MemberController) List(w http.ResponseWriter, r *http.Request) (*middleware.Result, error) {
	members, err := c.services.Members.GetAll(r.Context())
	if err != nil {
		return nil, err
	}
	return &middleware.Result{Body: members}, nil
}

// Update handles PUT /api/members/{id}
func (c *MemberController) Update(w http.ResponseWriter, r *http.Request) (*middleware.Result, error) {
	id := chi.URLParam(r, "id")

	var form models.MemberForm
	if err := decodeJSON(r, &form); err != nil {
		return nil, err
	}

	member, err := c.services.Members.Update(r.Context(), id, &form)
	if err != nil {
		return nil, err
	}
	return &middleware.Result{
		Body:    member,
		Message: "member profile updated",
		Data:    map[string]any{"memberId": member.ID},
	}, nil
}

// Delete handles DELETE /api/members/{id}
func (c *MemberController) Delete(w http.ResponseWriter, r *http.Request) (*middleware.Result, error) {
	id := chi.URLParam(r, "id")

	if err := c.services.Members.Delete(r.Context(), id); err != nil {
		return nil, err
	}
	return &middleware.Result{
		Body:    messageBody{Message: "Member deleted successfully"},
		Message: "member deleted",
		Data:    map[string]any{"memberId": id},
	}, nil
}
