package user

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmartinezc/canchas-api/config"
	"github.com/dmartinezc/canchas-api/internal/policy"
	"github.com/dmartinezc/canchas-api/pkg/utils"
	"github.com/dmartinezc/canchas-api/pkg/validator"
)

// UserController handles profile management for the authenticated user.
type UserController struct {
	repo   UserRepository
	config *config.Config
}

// NewUserController creates a new user controller.
func NewUserController(repo UserRepository, cfg *config.Config) *UserController {
	return &UserController{
		repo:   repo,
		config: cfg,
	}
}

// currentUser resolves the user the auth middleware loaded. Controllers in
// this package reload by id so the row reflects concurrent changes.
func (uc *UserController) currentUser(c *gin.Context) (*User, bool) {
	raw, exists := c.Get("auth_user")
	if !exists {
		utils.UnauthorizedJSON(c, "")
		return nil, false
	}
	actor, ok := raw.(*User)
	if !ok {
		utils.UnauthorizedJSON(c, "")
		return nil, false
	}
	u, err := uc.repo.GetByID(actor.ID)
	if err != nil {
		log.Printf("get user failed: %v", err)
		utils.ServerErrorJSON(c)
		return nil, false
	}
	if u == nil {
		utils.NotFoundJSON(c, "Usuario no encontrado")
		return nil, false
	}
	return u, true
}

// Perfil godoc
// @Summary Get own profile
// @Tags usuarios
// @Produce json
// @Success 200 {object} utils.APIResponse{data=PerfilResponse} "Profile"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Router /usuarios/perfil [get]
// @Security Bearer
func (uc *UserController) Perfil(c *gin.Context) {
	u, ok := uc.currentUser(c)
	if !ok {
		return
	}
	utils.SuccessJSON(c, "Perfil obtenido", ToPerfilResponse(u))
}

// ActualizarPerfil godoc
// @Summary Update own profile
// @Description Update nombre, username or password. The username must stay unique.
// @Tags usuarios
// @Accept json
// @Produce json
// @Param perfil body UpdatePerfilRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse{data=PerfilResponse} "Updated profile"
// @Failure 400 {object} utils.APIResponse "Invalid input"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 409 {object} utils.APIResponse "Username already taken"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /usuarios/perfil [put]
// @Security Bearer
func (uc *UserController) ActualizarPerfil(c *gin.Context) {
	u, ok := uc.currentUser(c)
	if !ok {
		return
	}

	var req UpdatePerfilRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorJSON(c, validator.ParseError(err))
		return
	}

	if req.Nombre != nil {
		nombre := strings.TrimSpace(*req.Nombre)
		if nombre == "" {
			utils.BadRequestJSON(c, "El nombre no puede estar vacío")
			return
		}
		u.Nombre = nombre
	}

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if username == "" {
			u.Username = nil
		} else {
			taken, err := uc.repo.GetByUsernameExcept(username, u.ID)
			if err != nil {
				log.Printf("username lookup failed: %v", err)
				utils.ServerErrorJSON(c)
				return
			}
			if taken != nil {
				utils.ConflictJSON(c, "El nombre de usuario ya está en uso")
				return
			}
			u.Username = &username
		}
	}

	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			log.Printf("hash password failed: %v", err)
			utils.ServerErrorJSON(c)
			return
		}
		u.Password = hashed
	}

	if err := uc.repo.Update(u); err != nil {
		log.Printf("update user failed: %v", err)
		utils.ServerErrorJSON(c)
		return
	}

	utils.SuccessJSON(c, "Perfil actualizado exitosamente", ToPerfilResponse(u))
}

// SubirAvatar godoc
// @Summary Upload avatar
// @Description Store the uploaded image under the configured upload directory and replace the previous avatar.
// @Tags usuarios
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Avatar image file"
// @Success 200 {object} utils.APIResponse{data=PerfilResponse} "Avatar updated"
// @Failure 400 {object} utils.APIResponse "Missing or invalid file"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /usuarios/avatar [put]
// @Security Bearer
func (uc *UserController) SubirAvatar(c *gin.Context) {
	u, ok := uc.currentUser(c)
	if !ok {
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		utils.BadRequestJSON(c, "El archivo de imagen es obligatorio")
		return
	}

	filename := fmt.Sprintf("usuario_%d_%d%s", u.ID, time.Now().UnixNano(), filepath.Ext(file.Filename))
	uploadPath := filepath.Join(uc.config.App.UploadDir, "avatars", filename)

	if err := os.MkdirAll(filepath.Dir(uploadPath), 0o755); err != nil {
		log.Printf("create upload dir failed: %v", err)
		utils.ServerErrorJSON(c)
		return
	}
	if err := c.SaveUploadedFile(file, uploadPath); err != nil {
		log.Printf("save avatar failed: %v", err)
		utils.ServerErrorJSON(c)
		return
	}

	// Removing the replaced file is best effort.
	if u.AvatarPath != "" {
		if err := os.Remove(u.AvatarPath); err != nil && !os.IsNotExist(err) {
			log.Printf("remove old avatar %s failed: %v", u.AvatarPath, err)
		}
	}

	u.AvatarURL = "/uploads/avatars/" + filename
	u.AvatarPath = uploadPath

	if err := uc.repo.Update(u); err != nil {
		log.Printf("update user failed: %v", err)
		utils.ServerErrorJSON(c)
		return
	}

	utils.SuccessJSON(c, "Avatar actualizado exitosamente", ToPerfilResponse(u))
}

// EliminarAvatar godoc
// @Summary Remove avatar
// @Tags usuarios
// @Produce json
// @Success 200 {object} utils.APIResponse{data=PerfilResponse} "Avatar removed"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /usuarios/avatar [delete]
// @Security Bearer
func (uc *UserController) EliminarAvatar(c *gin.Context) {
	u, ok := uc.currentUser(c)
	if !ok {
		return
	}

	if u.AvatarPath != "" {
		if err := os.Remove(u.AvatarPath); err != nil && !os.IsNotExist(err) {
			log.Printf("remove avatar %s failed: %v", u.AvatarPath, err)
		}
	}

	u.AvatarURL = ""
	u.AvatarPath = ""

	if err := uc.repo.Update(u); err != nil {
		log.Printf("update user failed: %v", err)
		utils.ServerErrorJSON(c)
		return
	}

	utils.SuccessJSON(c, "Avatar eliminado exitosamente", ToPerfilResponse(u))
}

// CambiarPassword godoc
// @Summary Change password
// @Description Replace the password after checking the current one.
// @Tags usuarios
// @Accept json
// @Produce json
// @Param passwords body CambiarPasswordRequest true "Current and new password"
// @Success 200 {object} utils.APIResponse "Password changed"
// @Failure 400 {object} utils.APIResponse "Invalid input"
// @Failure 401 {object} utils.APIResponse "Unauthorized or wrong current password"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /usuarios/password [put]
// @Security Bearer
func (uc *UserController) CambiarPassword(c *gin.Context) {
	u, ok := uc.currentUser(c)
	if !ok {
		return
	}

	var req CambiarPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorJSON(c, validator.ParseError(err))
		return
	}

	if !utils.CheckPassword(u.Password, req.PasswordActual) {
		utils.UnauthorizedJSON(c, "La contraseña actual es incorrecta")
		return
	}

	hashed, err := utils.HashPassword(req.PasswordNueva)
	if err != nil {
		log.Printf("hash password failed: %v", err)
		utils.ServerErrorJSON(c)
		return
	}
	u.Password = hashed

	if err := uc.repo.Update(u); err != nil {
		log.Printf("update user failed: %v", err)
		utils.ServerErrorJSON(c)
		return
	}

	utils.SuccessJSON(c, "Contraseña actualizada exitosamente", nil)
}

// EliminarCuenta godoc
// @Summary Deactivate account
// @Description One-way transition to estado inactivo. Existing reservas keep resolving to this user.
// @Tags usuarios
// @Produce json
// @Success 200 {object} utils.APIResponse "Account deactivated"
// @Failure 400 {object} utils.APIResponse "Already deactivated"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /usuarios/cuenta [delete]
// @Security Bearer
func (uc *UserController) EliminarCuenta(c *gin.Context) {
	u, ok := uc.currentUser(c)
	if !ok {
		return
	}

	if u.Estado == policy.EstadoInactivo {
		utils.BadRequestJSON(c, "La cuenta ya está desactivada")
		return
	}

	if u.AvatarPath != "" {
		if err := os.Remove(u.AvatarPath); err != nil && !os.IsNotExist(err) {
			log.Printf("remove avatar %s failed: %v", u.AvatarPath, err)
		}
	}

	u.Estado = policy.EstadoInactivo
	u.AvatarURL = ""
	u.AvatarPath = ""

	if err := uc.repo.Update(u); err != nil {
		log.Printf("update user failed: %v", err)
		utils.ServerErrorJSON(c)
		return
	}

	utils.SuccessJSON(c, "Cuenta desactivada exitosamente", nil)
}
