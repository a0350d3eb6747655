package web

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/middleware"
	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
	appErrors "github.com/SemykinG/DigitalTwin-DigiSalama/pkg/errors"
)

type loginService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
}

type loginPage struct {
	Chrome
	Email string
	Error string
}

func (s *Server) loginForm(c *gin.Context) {
	s.render(c, http.StatusOK, "login", loginPage{Chrome: s.chrome(c, "Sign in")})
}

func (s *Server) loginSubmit(c *gin.Context) {
	req := models.LoginRequest{Email: c.PostForm("email"), Password: c.PostForm("password")}
	res, err := s.login.Login(c.Request.Context(), req)
	if err != nil {
		appErr := appErrors.FromError(err)
		s.render(c, appErr.Status, "login", loginPage{
			Chrome: s.chrome(c, "Sign in"),
			Email:  req.Email,
			Error:  appErr.Message,
		})
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, res.AccessToken, int(res.ExpiresIn), "/", "", c.Request.TLS != nil, true)
	c.Redirect(http.StatusSeeOther, s.base+"/vehicles")
}

func (s *Server) logout(c *gin.Context) {
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", c.Request.TLS != nil, true)
	c.Redirect(http.StatusSeeOther, s.base+"/login")
}
