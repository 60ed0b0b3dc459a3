package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/foodiesbnb/foodiesbnb-api/internal/application/auth"
	"github.com/foodiesbnb/foodiesbnb-api/internal/application/dto"
	"github.com/foodiesbnb/foodiesbnb-api/internal/domain"
	"github.com/foodiesbnb/foodiesbnb-api/internal/domain/entity"
	pkgjwt "github.com/foodiesbnb/foodiesbnb-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "foodiesbnb-test"
)

// fakeUserRepo repositorio en memoria con el mismo contrato que el de PostgreSQL.
type fakeUserRepo struct {
	byID map[string]*entity.Usuario
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*entity.Usuario)}
}

func (r *fakeUserRepo) Create(user *entity.Usuario) error {
	for _, u := range r.byID {
		if strings.EqualFold(u.Email, user.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *user
	r.byID[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.Usuario, error) {
	for _, u := range r.byID {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(id string) (*entity.Usuario, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) UpdateRol(id, rol string) (*entity.Usuario, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	u.Rol = rol
	cp := *u
	return &cp, nil
}

func newUseCase(repo *fakeUserRepo) *auth.UseCase {
	return auth.NewUseCase(repo, auth.JWTConfig{
		Secret:   testSecret,
		ExpHours: 24,
		Issuer:   testIssuer,
	})
}

func registrar(t *testing.T, uc *auth.UseCase) *dto.AuthResponse {
	t.Helper()
	out, err := uc.Register(dto.RegisterRequest{
		NombreCompleto: "Ana Morales",
		Email:          "ana@example.com",
		Password:       "secreto123",
	})
	require.NoError(t, err)
	return out
}

func TestRegister_EmiteTokenYRolUsuario(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)

	out := registrar(t, uc)

	require.True(t, out.Success)
	require.NotNil(t, out.Usuario)
	assert.Equal(t, entity.RolUsuario, out.Usuario.Rol, "el rol inicial siempre es usuario")
	assert.Equal(t, "ana@example.com", out.Usuario.Email)
	require.NotEmpty(t, out.Token)

	// El token emitido identifica al usuario recién creado.
	userID, rol, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.Usuario.ID, userID)
	assert.Equal(t, entity.RolUsuario, rol)

	// Registrar seguido de verificar devuelve el mismo usuario.
	visto, err := uc.GetUser(userID)
	require.NoError(t, err)
	assert.Equal(t, out.Usuario.ID, visto.ID)
	assert.Equal(t, entity.RolUsuario, visto.Rol)
}

func TestRegister_GuardaHashYNoElPlano(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)

	out := registrar(t, uc)

	stored, err := repo.FindByID(out.Usuario.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secreto123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))
}

func TestRegister_EmailDuplicadoCaseInsensitive(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())
	registrar(t, uc)

	_, err := uc.Register(dto.RegisterRequest{
		NombreCompleto: "Otra Persona",
		Email:          "ANA@Example.com",
		Password:       "otrosecreto",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_PasswordIncorrectoNoEmiteToken(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())
	registrar(t, uc)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Nil(t, out, "un login fallido nunca devuelve token")
}

func TestLogin_EmailDesconocido(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "loquesea"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_Correcto(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())
	reg := registrar(t, uc)

	out, err := uc.Login(dto.LoginRequest{Email: "Ana@Example.com", Password: "secreto123"})
	require.NoError(t, err)
	require.True(t, out.Success)

	userID, _, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.Usuario.ID, userID)
}

func TestUpdateRol_RolInvalido(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())
	reg := registrar(t, uc)

	_, err := uc.UpdateRol(reg.Usuario.ID, "superadmin")
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestUpdateRol_PromocionAFoodie(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())
	reg := registrar(t, uc)

	out, err := uc.UpdateRol(reg.Usuario.ID, entity.RolFoodie)
	require.NoError(t, err)
	assert.Equal(t, entity.RolFoodie, out.Usuario.Rol)
	assert.Contains(t, out.Message, "foodie")

	visto, err := uc.GetUser(reg.Usuario.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RolFoodie, visto.Rol)
}

func TestUpdateRol_UsuarioInexistente(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())

	_, err := uc.UpdateRol("00000000-0000-0000-0000-000000000099", entity.RolFoodie)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestGetUser_CuentaEliminada(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())

	_, err := uc.GetUser("00000000-0000-0000-0000-000000000099")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
