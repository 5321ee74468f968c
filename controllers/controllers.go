package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/blogem/welfare-admin/apperrors"
	"github.com/blogem/welfare-admin/models"
	"github.com/blogem/welfare-admin/services"
	"github.com/blogem/welfare-admin/userctx"
)

// maxBodyBytes bounds the size of a JSON request body
const maxBodyBytes = 1 << 20

// decodeJSON reads a JSON request body into v
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apperrors.NewInvalidRequest("request body is required")
		}
		return apperrors.NewInvalidRequest("request body is not valid JSON")
	}
	return nil
}

// actorID returns the ID of the request's principal
func actorID(r *http.Request) string {
	return userctx.GetUserID(r.Context())
}

// principal returns the request's principal
func principal(r *http.Request) *models.Principal {
	return userctx.PrincipalFrom(r.Context())
}

// messageBody is the JSON shape of plain acknowledgements
type messageBody struct {
	Message string `json:"message"`
}

// Options configures controller behaviour that depends on deployment
type Options struct {
	SecureCookies bool
}

// Controllers holds all controller instances
type Controllers struct {
	Auth     *AuthController
	Members  *MemberController
	Loans    *LoanController
	Benefits []*BenefitController
	Logs     *LogController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, opts Options) *Controllers {
	benefits := make([]*BenefitController, 0, len(models.BenefitKinds))
	for _, k := range models.BenefitKinds {
		benefits = append(benefits, NewBenefitController(services, k.Kind, k.Path))
	}

	return &Controllers{
		Auth:     NewAuthController(services, opts),
		Members:  NewMemberController(services),
		Loans:    NewLoanController(services),
		Benefits: benefits,
		Logs:     NewLogController(services),
	}
}
