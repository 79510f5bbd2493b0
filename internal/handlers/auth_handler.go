package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/upb-facilities/cleaning-records/internal/dto"
	"github.com/upb-facilities/cleaning-records/internal/httperr"
	"github.com/upb-facilities/cleaning-records/internal/httpresp"
	"github.com/upb-facilities/cleaning-records/internal/middleware"
	"github.com/upb-facilities/cleaning-records/internal/usecase/account"
)

type AuthHandler struct {
	register *account.Register
	login    *account.Login
	getUser  *account.GetUser
}

func NewAuthHandler(
	register *account.Register,
	login *account.Login,
	getUser *account.GetUser,
) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		getUser:  getUser,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, bindError(err))
		return
	}

	user, token, err := h.register.Execute(c.Request.Context(), account.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, "Usuario registrado exitosamente", gin.H{
		"user":  dto.NewUserView(user),
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, bindError(err))
		return
	}

	user, token, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Login exitoso", gin.H{
		"user":  dto.NewUserView(user),
		"token": token,
	})
}

// Logout is stateless: the client drops its token.
func (h *AuthHandler) Logout(c *gin.Context) {
	httpresp.Message(c, "Logout exitoso", nil)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.getUser.Execute(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{"user": dto.NewUserView(user)})
}
