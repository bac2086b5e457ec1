package handlers_test

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"hpq.in/rondas/models"
	"hpq.in/rondas/routes"
)

func TestRegister(t *testing.T) {
	mock := setupMockDB(t)
	router := routes.RegisterRoutes()

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"is_active"}).AddRow(true))

	rec := doJSON(t, router, "POST", "/api/v1/register", "", map[string]string{
		"name":     "Laura Pérez",
		"email":    "Laura.Perez@hpq.in",
		"password": "correcto-caballo-bateria",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Same email hits the unique index.
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "idx_users_email"})

	rec = doJSON(t, router, "POST", "/api/v1/register", "", map[string]string{
		"name":     "Laura Pérez",
		"email":    "laura.perez@hpq.in",
		"password": "otra-clave",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterRejectsIncompleteBody(t *testing.T) {
	mock := setupMockDB(t)
	router := routes.RegisterRoutes()

	rec := doJSON(t, router, "POST", "/api/v1/register", "", map[string]string{
		"name": "Sin Correo",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func userRows(t *testing.T, password string, active bool) *sqlmock.Rows {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role", "is_active"}).
		AddRow(uuid.New().String(), "Laura Pérez", "laura.perez@hpq.in", string(hash), models.RoleStaff, active)
}

func TestLogin(t *testing.T) {
	mock := setupMockDB(t)
	router := routes.RegisterRoutes()

	mock.ExpectQuery(`SELECT .* FROM "users" WHERE email = `).
		WithArgs("laura.perez@hpq.in", 1).
		WillReturnRows(userRows(t, "correcto-caballo-bateria", true))

	rec := doJSON(t, router, "POST", "/api/v1/login", "", map[string]string{
		"email":    "Laura.Perez@hpq.in",
		"password": "correcto-caballo-bateria",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token"`)

	// Wrong password.
	mock.ExpectQuery(`SELECT .* FROM "users" WHERE email = `).
		WillReturnRows(userRows(t, "correcto-caballo-bateria", true))
	rec = doJSON(t, router, "POST", "/api/v1/login", "", map[string]string{
		"email":    "laura.perez@hpq.in",
		"password": "incorrecta",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Disabled account.
	mock.ExpectQuery(`SELECT .* FROM "users" WHERE email = `).
		WillReturnRows(userRows(t, "correcto-caballo-bateria", false))
	rec = doJSON(t, router, "POST", "/api/v1/login", "", map[string]string{
		"email":    "laura.perez@hpq.in",
		"password": "correcto-caballo-bateria",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}
