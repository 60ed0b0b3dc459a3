package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/foodiesbnb/foodiesbnb-api/internal/application/dto"
	"github.com/foodiesbnb/foodiesbnb-api/internal/domain"
	"github.com/foodiesbnb/foodiesbnb-api/internal/domain/entity"
	"github.com/foodiesbnb/foodiesbnb-api/internal/domain/repository"
	"github.com/foodiesbnb/foodiesbnb-api/pkg/jwt"
)

// bcryptCost factor de trabajo del hash de contraseñas.
const bcryptCost = 12

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// UseCase casos de uso de autenticación: registro, login, verificación de
// sesión y cambio de rol. La identidad del caller no vive en estado global:
// viaja en el token y llega aquí como userID explícito.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario con rol "usuario": hashea el password con bcrypt,
// persiste y emite el token de sesión. Devuelve domain.ErrEmailAlreadyExists
// si el email (case-insensitive) ya está registrado.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := NormalizeEmail(in.Email)

	existing, err := uc.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.Usuario{
		ID:             uuid.New().String(),
		NombreCompleto: strings.TrimSpace(in.NombreCompleto),
		Email:          email,
		PasswordHash:   string(hash),
		Rol:            entity.RolUsuario,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	// El índice único del store cubre la carrera entre el chequeo de arriba
	// y este insert.
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Success: true,
		Message: "Usuario registrado exitosamente",
		Token:   token,
		Usuario: ToUsuarioResponse(user),
	}, nil
}

// Login verifica email/password y emite un token nuevo de 24 horas.
// Devuelve domain.ErrUserNotFound si el email no existe y
// domain.ErrInvalidCredentials si el hash no coincide.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.FindByEmail(NormalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Success: true,
		Message: "Inicio de sesión exitoso",
		Token:   token,
		Usuario: ToUsuarioResponse(user),
	}, nil
}

// GetUser resuelve la vista segura del usuario del token ya verificado.
// Devuelve domain.ErrUserNotFound si la cuenta ya no existe (el token deja
// de ser válido aunque la firma siga siendo correcta).
func (uc *UseCase) GetUser(userID string) (*dto.UsuarioResponse, error) {
	user, err := uc.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return ToUsuarioResponse(user), nil
}

// UpdateRol cambia el rol del usuario autenticado y devuelve la vista
// refrescada. Devuelve domain.ErrInvalidRole para roles fuera de
// {usuario, foodie, restaurante} y domain.ErrUserNotFound si no existe.
func (uc *UseCase) UpdateRol(userID, rol string) (*dto.AuthResponse, error) {
	if !entity.ValidRol(rol) {
		return nil, domain.ErrInvalidRole
	}
	user, err := uc.userRepo.UpdateRol(userID, rol)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.AuthResponse{
		Success: true,
		Message: "Rol actualizado a " + rol + " exitosamente",
		Usuario: ToUsuarioResponse(user),
	}, nil
}

// NormalizeEmail deja el email en la forma canónica que persiste el store.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ToUsuarioResponse proyecta la vista segura: nunca expone el hash.
func ToUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:             u.ID,
		NombreCompleto: u.NombreCompleto,
		Email:          u.Email,
		Rol:            u.Rol,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
