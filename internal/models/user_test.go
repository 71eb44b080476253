package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tokobaju/internal/models"
)

func TestHasAnyRole(t *testing.T) {
	plain := &models.User{Roles: []string{models.RoleUser}}
	admin := &models.User{Roles: []string{models.RoleAdmin, models.RoleUser}}

	// Empty required set admits any authenticated user.
	assert.True(t, plain.HasAnyRole())
	assert.True(t, admin.HasAnyRole())

	assert.False(t, plain.HasAnyRole(models.RoleAdmin))
	assert.True(t, admin.HasAnyRole(models.RoleAdmin))
	assert.True(t, admin.HasAnyRole(models.RoleAdmin, models.RoleSuperUser))
	assert.False(t, plain.HasAnyRole(models.RoleAdmin, models.RoleSuperUser))
}

func TestSanitizedStripsHash(t *testing.T) {
	user := models.User{ID: "u1", Email: "a@b.c", Password: "$2a$10$hash"}
	sanitized := user.Sanitized()
	assert.Empty(t, sanitized.Password)
	assert.Equal(t, "$2a$10$hash", user.Password, "original must be untouched")
}
