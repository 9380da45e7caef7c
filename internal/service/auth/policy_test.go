package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/you-humble/autoparts-inventory/internal/model"
)

func TestPolicy(t *testing.T) {
	t.Parallel()

	t.Run("default grants everything to both roles", func(t *testing.T) {
		t.Parallel()

		p := NewPolicy(false)
		for _, c := range model.AllCapabilities {
			assert.True(t, p.Allows(model.RoleAdmin, c), c)
			assert.True(t, p.Allows(model.RoleUser, c), c)
		}
	})

	t.Run("enforced keeps user management for admins", func(t *testing.T) {
		t.Parallel()

		p := NewPolicy(true)
		assert.True(t, p.Allows(model.RoleAdmin, model.CapUsersWrite))
		assert.False(t, p.Allows(model.RoleUser, model.CapUsersWrite))
		assert.False(t, p.Allows(model.RoleUser, model.CapUsersRead))
		assert.True(t, p.Allows(model.RoleUser, model.CapOrdersWrite))
		assert.True(t, p.Allows(model.RoleUser, model.CapAccountWrite))
	})

	t.Run("unknown role is treated as user", func(t *testing.T) {
		t.Parallel()

		manager := model.Role("manager")

		open := NewPolicy(false)
		for _, c := range model.AllCapabilities {
			assert.True(t, open.Allows(manager, c), c)
		}

		enforced := NewPolicy(true)
		assert.True(t, enforced.Allows(manager, model.CapCatalogRead))
		assert.True(t, enforced.Allows(manager, model.CapOrdersWrite))
		assert.False(t, enforced.Allows(manager, model.CapUsersRead))
	})
}
