package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vnkhanh/file-tracking-backend/models"
)

func TestLogin(t *testing.T) {
	db, r := setupTest(t)

	require.NoError(t, db.Create(&models.User{
		Username:   "student1",
		Password:   "pass123",
		Role:       models.RoleUser,
		Name:       "Juan Dela Cruz",
		Department: "Computer Science",
	}).Error)

	t.Run("valid credentials", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/login", map[string]string{
			"username": "student1",
			"password": "pass123",
		})
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])

		user := body["user"].(map[string]interface{})
		assert.Equal(t, "student1", user["username"])
		assert.Equal(t, "user", user["role"])
		assert.Equal(t, "Computer Science", user["department"])
		_, hasPassword := user["password"]
		assert.False(t, hasPassword)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/login", map[string]string{
			"username": "student1",
			"password": "wrong",
		})
		require.Equal(t, http.StatusUnauthorized, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Invalid credentials", body["message"])
	})

	t.Run("unknown username", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/login", map[string]string{
			"username": "nobody",
			"password": "pass123",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/login", map[string]string{
			"username": "student1",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLoginBcryptAccount(t *testing.T) {
	db, r := setupTest(t)

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		Username: "hashed1",
		Password: string(hashed),
		Role:     models.RoleUser,
		Name:     "Hashed Account",
	}).Error)

	w := doJSON(t, r, http.MethodPost, "/login", map[string]string{
		"username": "hashed1",
		"password": "secret",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/login", map[string]string{
		"username": "hashed1",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
