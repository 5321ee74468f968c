package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blogem/welfare-admin/middleware"
	"github.com/blogem/welfare-admin/models"
	"github.com/blogem/welfare-admin/services"
)

// LoanController handles loan application requests
type LoanController struct {
	services *services.Services
}

// NewLoanController creates a new loan controller
func NewLoanController(services *services.Services) *LoanController {
	return &LoanController{services: services}
}

func loanData(loan *models.Loan) map[string]any {
	return map[string]any{
		"loanId":     loan.ID,
		"loanNumber": loan.LoanNumber,
		"memberId":   loan.MemberID,
		"amount":     loan.Amount.String(),
	}
}

// List handles GET /api/loans
func (c *LoanController) List(w http.ResponseWriter, r *http.Request) (*middleware.Result, error) {
	loans, err := c.services.Loans.GetAll(r.Context())
	if err != nil {
		return nil, err
	}
	return &middleware.Result{Body: loans}, nil
}

// Get handles GET /api/loans/{id}
func (c *LoanController) Get(w http.ResponseWriter, r *http.Request) (*middleware.Result, error) {
	loan, err := c.services.Loans.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return nil, err
	}
	return &middleware.Result{Body: loan}, nil
}

// ByMember handles GET /api/loans/user/{userId}
func (c *LoanController) ByMember(w http.ResponseWriter, r *http.Request) (*middleware.Result, error) {
	loans, err := c.services.Loans.GetByMember(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		return nil, err
	}
	return &middleware.Result{Body: loans}, nil
}

// ByStatus handles GET /api/loans/util/loans-by-status?status=
func (c *LoanController) ByStatus(w http.ResponseWriter, r *http.Request) (*middleware.Result, error) {
	loans, err := c.services.Loans.GetByStatus(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		return nil, err
	}
	return &middleware.Result{Body: loans}, nil
}

// GenerateNumber handles GET /api/loans/util/generate-loan-number
func (c *LoanController) GenerateNumber(w http.ResponseWriter, r *http.Request) (*middleware.Result, error) {
	number, err := c.services.Loans.GenerateLoanNumber(r.Context())
	if err != nil {
		return nil, err
	}
	return &middleware.Result{
		Body:    map[string]string{"loanNumber": number},
		Message: "loan number proposed",
		Data:    map[string]any{"loanNumber": number},
	}, nil
}

// Create handles POST /api/loans
func (c *LoanController) Create(w http.ResponseWriter, r *http.Request) (*middleware.Result, error) {
	var form models.LoanForm
	if err := decodeJSON(r, &form); err != nil {
		return nil, err
	}

	loan, err := c.services.Loans.Create(r.Context(), actorID(r), &form)
	if err != nil {
		return nil, err
	}
	return &middleware.Result{
		Status:  http.StatusCreated,
		Body:    loan,
		Message: "loan " + loan.LoanNumber + " created",
		Data:    loanData(loan),
	}, nil
}

// Update handles PUT /api/loans/{id}
func (c *LoanController) Update(w http.ResponseWriter, r *http.Request) (*middleware.Result, error) {
	var form models.LoanForm
	if err := decodeJSON(r, &form); err != nil {
		return nil, err
	}

	loan, err := c.services.Loans.Update(r.Context(), actorID(r), chi.URLParam(r, "id"), &form)
	if err != nil {
		return nil, err
	}
	return &middleware.Result{
		Body:    loan,
		Message: "loan " + loan.LoanNumber + " updated",
		Data:    loanData(loan),
	}, nil
}

// UpdateStatus handles PUT /api/loans/{id}/status
func (c *LoanController) UpdateStatus(w http.ResponseWriter, r *http.Request) (*middleware.Result, error) {
	var form models.LoanStatusForm
	if err := decodeJSON(r, &form); err != nil {
		return nil, err
	}

	loan, err := c.services.Loans.UpdateStatus(r.Context(), actorID(r), chi.URLParam(r, "id"), &form)
	if err != nil {
		return nil, err
	}

	data := loanData(loan)
	data["loanStatus"] = string(loan.Status)
	return &middleware.Result{
		Body:    loan,
		Message: "loan " + loan.LoanNumber + " marked " + string(loan.Status),
		Data:    data,
	}, nil
}

// Delete handles DELETE /api/loans/{id}
func (c *LoanController) Delete(w http.ResponseWriter, r *http.Request) (*middleware.Result, error) {
	id := chi.URLParam(r, "id")

	if err := c.services.Loans.Delete(r.Context(), id); err != nil {
		return nil, err
	}
	return &middleware.Result{
		Body:    messageBody{Message: "Loan deleted successfully"},
		Message: "loan deleted",
		Data:    map[string]any{"loanId": id},
	}, nil
}
