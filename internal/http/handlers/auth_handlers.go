package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rifkifakhrudin2004/campus-portal/domain"
)

// AuthHandlers drives the login and registration screens and the logout
// actions. All session transitions go through the session service; the
// handlers only translate forms and render errors.
type AuthHandlers struct {
	sessions domain.SessionService
	appName  string
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(sessions domain.SessionService, appName string) *AuthHandlers {
	return &AuthHandlers{sessions: sessions, appName: appName}
}

// formView is the template payload for both auth forms. Errors maps field
// names to the first server message for that field; Banner carries general
// failures.
type formView struct {
	AppName string
	Banner  string
	Errors  map[string]string
	Values  map[string]string
}

// ShowLogin renders the login form.
func (h *AuthHandlers) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", formView{AppName: h.appName})
}

// Login handles the login form submission.
func (h *AuthHandlers) Login(c *gin.Context) {
	creds := domain.Credentials{
		Login:    c.PostForm("login"),
		Password: c.PostForm("password"),
	}

	redirect, err := h.sessions.Login(c.Request.Context(), c.Writer, creds)
	if err != nil {
		h.renderError(c, "login.html", err, map[string]string{"login": creds.Login})
		return
	}

	c.Redirect(http.StatusSeeOther, redirect)
}

// ShowRegister renders the registration form.
func (h *AuthHandlers) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", formView{
		AppName: h.appName,
		Values:  map[string]string{"role": domain.RoleMahasiswa},
	})
}

// Register handles the registration form submission. Which of NIM/NIP is
// required depends on the selected role; the remote API validates that and
// the resulting field errors render inline.
func (h *AuthHandlers) Register(c *gin.Context) {
	data := domain.Registration{
		Name:                 c.PostForm("name"),
		Email:                c.PostForm("email"),
		Phone:                c.PostForm("phone"),
		Password:             c.PostForm("password"),
		PasswordConfirmation: c.PostForm("password_confirmation"),
		Role:                 c.PostForm("role"),
		NIM:                  c.PostForm("nim"),
		NIP:                  c.PostForm("nip"),
	}

	redirect, err := h.sessions.Register(c.Request.Context(), c.Writer, data)
	if err != nil {
		h.renderError(c, "register.html", err, map[string]string{
			"name": data.Name, "email": data.Email, "phone": data.Phone,
			"role": data.Role, "nim": data.NIM, "nip": data.NIP,
		})
		return
	}

	c.Redirect(http.StatusSeeOther, redirect)
}

// Logout ends the current session. The session service clears the store no
// matter what the remote endpoint said, so this always lands on /login.
func (h *AuthHandlers) Logout(c *gin.Context) {
	redirect := h.sessions.Logout(c.Request.Context(), c.Writer, c.Request)
	c.Redirect(http.StatusSeeOther, redirect)
}

// LogoutAll ends every session for the user across devices.
func (h *AuthHandlers) LogoutAll(c *gin.Context) {
	redirect := h.sessions.LogoutAll(c.Request.Context(), c.Writer, c.Request)
	c.Redirect(http.StatusSeeOther, redirect)
}

// renderError re-renders a form after a failed submission. Server field
// errors attach to their fields; everything else becomes a single banner.
func (h *AuthHandlers) renderError(c *gin.Context, page string, err error, values map[string]string) {
	view := formView{AppName: h.appName, Values: values}

	apiErr, ok := domain.AsAPIError(err)
	switch {
	case ok && apiErr.HasFieldErrors():
		view.Errors = make(map[string]string, len(apiErr.Fields))
		for field := range apiErr.Fields {
			view.Errors[field] = apiErr.FieldError(field)
		}
		c.HTML(http.StatusUnprocessableEntity, page, view)
	case ok:
		view.Banner = apiErr.Message
		status := apiErr.StatusCode
		if status < 400 {
			status = http.StatusBadRequest
		}
		c.HTML(status, page, view)
	default:
		view.Banner = "Terjadi kesalahan pada server. Silakan coba lagi."
		c.HTML(http.StatusBadGateway, page, view)
	}
}
