package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setupStore(t *testing.T) *Store {
	store, err := NewStore(":memory:")
	assert.NoError(t, err)
	return store
}

func TestStoreSetAndGet(t *testing.T) {
	store := setupStore(t)

	identity := Identity{Name: "Admin", Email: "a@x.com"}
	err := store.Set(RoleAdmin, "t1", identity)
	assert.NoError(t, err)

	sess, ok, err := store.Get(RoleAdmin)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "t1", sess.Token)
	assert.Equal(t, "Admin", sess.Identity.Name)
	assert.Equal(t, RoleAdmin, sess.Role)
}

func TestStoreGetAbsent(t *testing.T) {
	store := setupStore(t)

	_, ok, err := store.Get(RoleAdmin)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreSetOverwrites(t *testing.T) {
	store := setupStore(t)

	assert.NoError(t, store.Set(RoleAdmin, "old", Identity{Name: "A"}))
	assert.NoError(t, store.Set(RoleAdmin, "new", Identity{Name: "B"}))

	sess, ok, err := store.Get(RoleAdmin)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "new", sess.Token)
	assert.Equal(t, "B", sess.Identity.Name)
}

func TestStoreRolesAreIndependent(t *testing.T) {
	store := setupStore(t)

	assert.NoError(t, store.Set(RoleAdmin, "admin-token", Identity{Name: "Admin"}))
	assert.NoError(t, store.Set(RoleTenant, "tenant-token", Identity{Name: "Ravi", RoomNo: "101"}))

	// Clearing one role leaves the other untouched.
	assert.NoError(t, store.Clear(RoleTenant))

	_, ok, err := store.Get(RoleTenant)
	assert.NoError(t, err)
	assert.False(t, ok)

	sess, ok, err := store.Get(RoleAdmin)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "admin-token", sess.Token)
}

func TestStoreClearIsIdempotent(t *testing.T) {
	store := setupStore(t)

	assert.NoError(t, store.Set(RoleTenant, "t", Identity{Name: "Ravi"}))
	assert.NoError(t, store.Clear(RoleTenant))
	assert.NoError(t, store.Clear(RoleTenant))

	_, ok, err := store.Get(RoleTenant)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreCorruptIdentityReadsAsAbsent(t *testing.T) {
	store := setupStore(t)

	assert.NoError(t, store.Set(RoleTenant, "t", Identity{Name: "Ravi"}))

	// Simulate an entry corrupted outside our control.
	err := store.db.Model(&sessionRecord{}).
		Where("role = ?", string(RoleTenant)).
		Update("identity", "{not json").Error
	assert.NoError(t, err)

	_, ok, err := store.Get(RoleTenant)
	assert.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = store.Token(RoleTenant)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreToken(t *testing.T) {
	store := setupStore(t)

	_, ok, err := store.Token(RoleAdmin)
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, store.Set(RoleAdmin, "t1", Identity{Name: "Admin"}))

	token, ok, err := store.Token(RoleAdmin)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "t1", token)
}
