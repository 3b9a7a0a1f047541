package auth

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dmartinezc/canchas-api/config"
	"github.com/dmartinezc/canchas-api/internal/booking"
	"github.com/dmartinezc/canchas-api/internal/middleware"
	"github.com/dmartinezc/canchas-api/internal/policy"
	"github.com/dmartinezc/canchas-api/internal/user"
	"github.com/dmartinezc/canchas-api/pkg/token"
	"github.com/dmartinezc/canchas-api/pkg/utils"
	"github.com/dmartinezc/canchas-api/pkg/validator"
)

type AuthController struct {
	repo   AuthRepository
	config *config.Config
}

func NewAuthController(repo AuthRepository, cfg *config.Config) *AuthController {
	return &AuthController{
		repo:   repo,
		config: cfg,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create an account with nombre, email and password. The role defaults to jugador.
// @Tags auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Registration details"
// @Success 201 {object} utils.APIResponse{data=AuthResponse} "User registered"
// @Failure 400 {object} utils.APIResponse "Validation errors"
// @Failure 409 {object} utils.APIResponse "Email or username already taken"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestJSON(c, err.Error())
		return
	}

	req.Nombre = strings.TrimSpace(req.Nombre)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if errs := ValidarRegistro(&req); len(errs) > 0 {
		utils.ValidationErrorJSON(c, booking.Messages(errs))
		return
	}

	existing, err := ac.repo.GetUserByEmail(req.Email)
	if err != nil {
		log.Printf("email lookup failed: %v", err)
		utils.ServerErrorJSON(c)
		return
	}
	if existing != nil {
		utils.ConflictJSON(c, "El email ya está registrado")
		return
	}

	if req.Username != nil && *req.Username != "" {
		taken, err := ac.repo.GetUserByUsername(*req.Username)
		if err != nil {
			log.Printf("username lookup failed: %v", err)
			utils.ServerErrorJSON(c)
			return
		}
		if taken != nil {
			utils.ConflictJSON(c, "El nombre de usuario ya está en uso")
			return
		}
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("hash password failed: %v", err)
		utils.ServerErrorJSON(c)
		return
	}

	role := req.Role
	if role == "" {
		role = policy.RoleJugador
	}

	nuevo := &user.User{
		Nombre:   req.Nombre,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     role,
		Estado:   policy.EstadoActivo,
	}
	if req.Username != nil && *req.Username != "" {
		nuevo.Username = req.Username
	}

	if err := ac.repo.CreateUser(nuevo); err != nil {
		log.Printf("create user failed: %v", err)
		utils.ServerErrorJSON(c)
		return
	}

	jwt, err := token.GenerateJWT(nuevo.ID, nuevo.Role, ac.config.JWT.Secret, ac.config.JWT.ExpiryHours)
	if err != nil {
		log.Printf("token generation failed: %v", err)
		utils.ServerErrorJSON(c)
		return
	}

	utils.CreatedJSON(c, "Usuario registrado exitosamente", AuthResponse{
		Token:   jwt,
		Usuario: user.ToPerfilResponse(nuevo),
	})
}

// Login godoc
// @Summary Log in
// @Description Authenticate with email and password. Deactivated accounts cannot log in.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} utils.APIResponse{data=AuthResponse} "Login successful"
// @Failure 400 {object} utils.APIResponse "Invalid input"
// @Failure 401 {object} utils.APIResponse "Invalid credentials or deactivated account"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorJSON(c, validator.ParseError(err))
		return
	}

	found, err := ac.repo.GetUserByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		log.Printf("email lookup failed: %v", err)
		utils.ServerErrorJSON(c)
		return
	}
	// Same message whether the email is unknown or the password is wrong.
	if found == nil || !utils.CheckPassword(found.Password, req.Password) {
		utils.UnauthorizedJSON(c, "Credenciales inválidas")
		return
	}

	if found.Estado == policy.EstadoInactivo {
		utils.UnauthorizedJSON(c, "Cuenta desactivada. Contacta al administrador")
		return
	}

	jwt, err := token.GenerateJWT(found.ID, found.Role, ac.config.JWT.Secret, ac.config.JWT.ExpiryHours)
	if err != nil {
		log.Printf("token generation failed: %v", err)
		utils.ServerErrorJSON(c)
		return
	}

	utils.SuccessJSON(c, "Inicio de sesión exitoso", AuthResponse{
		Token:   jwt,
		Usuario: user.ToPerfilResponse(found),
	})
}

// Verify godoc
// @Summary Verify a token
// @Description Confirm the bearer token is valid and return its user.
// @Tags auth
// @Produce json
// @Success 200 {object} utils.APIResponse{data=user.PerfilResponse} "Token is valid"
// @Failure 401 {object} utils.APIResponse "Invalid or expired token"
// @Router /auth/verify [get]
// @Security Bearer
func (ac *AuthController) Verify(c *gin.Context) {
	actor, err := middleware.GetCurrentUser(c)
	if err != nil {
		utils.UnauthorizedJSON(c, "")
		return
	}
	utils.SuccessJSON(c, "Token válido", user.ToPerfilResponse(actor))
}

// Me godoc
// @Summary Current user
// @Description Return the profile of the authenticated user.
// @Tags auth
// @Produce json
// @Success 200 {object} utils.APIResponse{data=user.PerfilResponse} "Current user"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Router /auth/me [get]
// @Security Bearer
func (ac *AuthController) Me(c *gin.Context) {
	actor, err := middleware.GetCurrentUser(c)
	if err != nil {
		utils.UnauthorizedJSON(c, "")
		return
	}
	utils.SuccessJSON(c, "Usuario obtenido", user.ToPerfilResponse(actor))
}

// Logout godoc
// @Summary Log out
// @Description Stateless logout. Clients discard the token; nothing is stored server side.
// @Tags auth
// @Produce json
// @Success 200 {object} utils.APIResponse "Logged out"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Router /auth/logout [post]
// @Security Bearer
func (ac *AuthController) Logout(c *gin.Context) {
	if _, err := middleware.GetCurrentUser(c); err != nil {
		utils.UnauthorizedJSON(c, "")
		return
	}
	utils.SuccessJSON(c, "Sesión cerrada exitosamente", nil)
}
