package controllers

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/blogem/welfare-admin/apperrors"
	"github.com/blogem/welfare-admin/authenticator"
	"github.com/blogem/welfare-admin/middleware"
	"github.com/blogem/welfare-admin/models"
	"github.com/blogem/welfare-admin/services"
)

// AuthController handles sign-in, sign-out and account registration
type AuthController struct {
	services *services.Services
	secure   bool
}

// NewAuthController creates a new auth controller
func NewAuthController(services *services.Services, opts Options) *AuthController {
	return &AuthController{
		services: services,
		secure:   opts.SecureCookies,
	}
}

// loginBody is returned by every successful sign-in
type loginBody struct {
	ID    string      `json:"_id"`
	Name  string      `json:"name"`
	Role  models.Role `json:"role"`
	Token string      `json:"token"`
}

// userBody wraps a newly registered account
type userBody struct {
	Data struct {
		User *models.Member `json:"user"`
	} `json:"data"`
	Token string `json:"token,omitempty"`
}

func (c *AuthController) signedIn(w http.ResponseWriter, signed *services.Session, status int) *middleware.Result {
	middleware.SetTokenCookie(w, signed.Token, signed.ExpiresAt, c.secure)
	return &middleware.Result{
		Status: status,
		Body: loginBody{
			ID:    signed.Member.ID,
			Name:  signed.Member.Name,
			Role:  signed.Member.Role,
			Token: signed.Token,
		},
		Actor:   signed.Member.ID,
		Message: "signed in as " + string(signed.Member.Role),
		Data:    map[string]any{"memberId": signed.Member.ID},
	}
}

// Login handles POST /api/members/auth
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) (*middleware.Result, error) {
	var form models.LoginForm
	if err := decodeJSON(r, &form); err != nil {
		return nil, err
	}

	signed, err := c.services.Auth.Login(r.Context(), &form)
	if err != nil {
		return nil, err
	}
	return c.signedIn(w, signed, http.StatusOK), nil
}

// StaffLogin handles POST /api/admins/auth
func (c *AuthController) StaffLogin(w http.ResponseWriter, r *http.Request) (*middleware.Result, error) {
	var form models.LoginForm
	if err := decodeJSON(r, &form); err != nil {
		return nil, err
	}

	signed, err := c.services.Auth.StaffLogin(r.Context(), &form)
	if err != nil {
		return nil, err
	}
	return c.signedIn(w, signed, http.StatusOK), nil
}

// Register handles POST /api/members
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) (*middleware.Result, error) {
	var form models.MemberForm
	if err := decodeJSON(r, &form); err != nil {
		return nil, err
	}

	signed, err := c.services.Auth.Register(r.Context(), &form)
	if err != nil {
		return nil, err
	}

	middleware.SetTokenCookie(w, signed.Token, signed.ExpiresAt, c.secure)

	var body userBody
	body.Data.User = signed.Member
	body.Token = signed.Token
	return &middleware.Result{
		Status:  http.StatusCreated,
		Body:    body,
		Actor:   signed.Member.ID,
		Message: "member registered",
		Data:    map[string]any{"memberId": signed.Member.ID, "epf": signed.Member.EPF},
	}, nil
}

// RegisterStaff handles POST /api/admins
func (c *AuthController) RegisterStaff(w http.ResponseWriter, r *http.Request) (*middleware.Result, error) {
	var form models.StaffForm
	if err := decodeJSON(r, &form); err != nil {
		return nil, err
	}

	member, err := c.services.Auth.RegisterStaff(r.Context(), principal(r), &form)
	if err != nil {
		return nil, err
	}

	var body userBody
	body.Data.User = member
	return &middleware.Result{
		Status:  http.StatusCreated,
		Body:    body,
		Message: "staff account registered with role " + string(member.Role),
		Data:    map[string]any{"memberId": member.ID, "role": string(member.Role)},
	}, nil
}

// Logout handles POST /api/members/logout
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) (*middleware.Result, error) {
	middleware.ClearTokenCookie(w, c.secure)
	return &middleware.Result{
		Body:    messageBody{Message: "Logged out successfully"},
		Message: "signed out",
	}, nil
}

// OIDCLogin handles GET /api/auth/oidc/login by redirecting to the identity provider
func (c *AuthController) OIDCLogin(auth authenticator.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Generate random state
		state, err := generateRandomState()
		if err != nil {
			middleware.WriteError(w, apperrors.New(apperrors.ErrInternal, "failed to start sign-in", err))
			return
		}

		// Save the state in the session to validate in callback
		sess := session.GetSession(r)
		if err := sess.Set("state", state); err != nil {
			middleware.WriteError(w, apperrors.New(apperrors.ErrInternal, "failed to start sign-in", err))
			return
		}

		http.Redirect(w, r, auth.GetAuthURL(state), http.StatusTemporaryRedirect)
	}
}

// OIDCCallback handles GET /api/auth/oidc/callback and signs in the matching staff member
func (c *AuthController) OIDCCallback(auth authenticator.Provider) middleware.Operation {
	return func(w http.ResponseWriter, r *http.Request) (*middleware.Result, error) {
		sess := session.GetSession(r)

		// Verify state
		storedState, _ := sess.Get("state").(string)
		if storedState == "" {
			return nil, apperrors.NewInvalidRequest("sign-in state not found in session")
		}
		if r.URL.Query().Get("state") != storedState {
			return nil, apperrors.NewInvalidRequest("invalid state parameter")
		}
		// Clear the state from session
		_ = sess.Delete("state")

		token, err := auth.ExchangeCode(r.Context(), r.URL.Query().Get("code"))
		if err != nil {
			return nil, apperrors.New(apperrors.ErrUnauthenticated, "failed to exchange authorization code", err)
		}

		claims, err := auth.GetClaims(r.Context(), token)
		if err != nil {
			return nil, apperrors.New(apperrors.ErrUnauthenticated, "failed to verify id_token", err)
		}

		email, err := claims.VerifiedEmail()
		if err != nil {
			return nil, apperrors.New(apperrors.ErrUnauthenticated, "identity provider did not supply a verified email", err)
		}

		signed, err := c.services.Auth.LoginWithEmail(r.Context(), email)
		if err != nil {
			return nil, err
		}
		return c.signedIn(w, signed, http.StatusOK), nil
	}
}

// generateRandomState generates a random state value for CSRF protection
func generateRandomState() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
