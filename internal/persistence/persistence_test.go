package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medical-appointment-service/internal/adapters/kvstore"
	"medical-appointment-service/internal/domain/entities"
)

func TestNamespacedKey(t *testing.T) {
	assert.Equal(t, "tempUser", NamespacedKey("", KeyTempUser))
	assert.Equal(t, "session:abc:loggedInUser", NamespacedKey("abc", KeyLoggedInUser))
}

func TestUserRepository_AppendAndFind(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := NewUserRepository(store)

	users, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.NotNil(t, users)

	require.NoError(t, repo.Append(ctx, entities.User{Username: "Jane", Email: "jane@x.com", Password: "pw"}))
	require.NoError(t, repo.Append(ctx, entities.User{Username: "Bob", Email: "bob@x.com", Password: "pw"}))

	found, err := repo.FindByEmail(ctx, "bob@x.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Bob", found.Username)

	missing, err := repo.FindByEmail(ctx, "BOB@x.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	raw, err := store.Get(ctx, KeyUsers)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"username":"Jane","email":"jane@x.com","phone":"","password":"pw"},
		{"username":"Bob","email":"bob@x.com","phone":"","password":"pw"}]`, string(raw))
}

func TestUserRepository_CorruptValue(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set(ctx, KeyUsers, []byte("not json")))

	_, err := NewUserRepository(store).ListAll(ctx)
	assert.ErrorContains(t, err, "decode users")
}

func TestPendingSignupRepository_Namespaces(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := NewPendingSignupRepository(store)

	got, err := repo.Get(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Save(ctx, "", entities.PendingSignup{Email: "a@x.com", OTP: 111111}))
	require.NoError(t, repo.Save(ctx, "s1", entities.PendingSignup{Email: "b@x.com", OTP: 222222}))

	def, err := repo.Get(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 111111, def.OTP)

	s1, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "b@x.com", s1.Email)

	_, err = store.Get(ctx, "tempUser")
	assert.NoError(t, err)

	require.NoError(t, repo.Clear(ctx, "s1"))
	require.NoError(t, repo.Clear(ctx, "s1"))
	s1, err = repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, s1)

	def, err = repo.Get(ctx, "")
	require.NoError(t, err)
	assert.NotNil(t, def)
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(kvstore.NewMemoryStore())

	user, err := repo.GetLoggedIn(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, user)

	require.NoError(t, repo.SetLoggedIn(ctx, "", entities.User{Username: "Jane", Email: "jane@x.com"}))
	user, err = repo.GetLoggedIn(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "Jane", user.Username)

	other, err := repo.GetLoggedIn(ctx, "other")
	require.NoError(t, err)
	assert.Nil(t, other)

	require.NoError(t, repo.ClearLoggedIn(ctx, ""))
	user, err = repo.GetLoggedIn(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestAppointmentRepository(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := NewAppointmentRepository(store)

	require.NoError(t, repo.Append(ctx, entities.Appointment{DoctorID: 1, PatientEmail: "a@x.com", BookedAt: "t1"}))
	require.NoError(t, repo.Append(ctx, entities.Appointment{DoctorID: 3, PatientEmail: "b@x.com", BookedAt: "t2"}))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 1, all[0].DoctorID)
	assert.Equal(t, 3, all[1].DoctorID)

	require.NoError(t, repo.ReplaceAll(ctx, nil))
	raw, err := store.Get(ctx, KeyAppointments)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestBuiltinDoctorRepository(t *testing.T) {
	ctx := context.Background()
	repo, err := NewBuiltinDoctorRepository()
	require.NoError(t, err)

	doctors, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, doctors, 12)

	d, err := repo.GetByID(ctx, 3)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "Dr. Ayesha Khan", d.Name)
	assert.Equal(t, "Neurologist", d.Specialty)
	assert.True(t, d.Bookable())

	busy, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, entities.AvailabilityBusy, busy.Availability)

	none, err := repo.GetByID(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, none)

	doctors[0].Name = "changed"
	again, _ := repo.GetByID(ctx, 1)
	assert.Equal(t, "Dr. Sarah Ahmed", again.Name)
}

func TestParseDoctorCatalogue_Rejects(t *testing.T) {
	cases := map[string]string{
		"zero id":      `[{"id":0,"name":"x","availability":"Available"}]`,
		"duplicate id": `[{"id":1,"availability":"Available"},{"id":1,"availability":"Busy"}]`,
		"rating":       `[{"id":1,"rating":7,"availability":"Available"}]`,
		"fee":          `[{"id":1,"consultationFee":-1,"availability":"Available"}]`,
		"availability": `[{"id":1,"availability":"Away"}]`,
		"not json":     `{`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseDoctorCatalogue([]byte(raw))
			assert.Error(t, err)
		})
	}
}

func TestFileDoctorRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doctors.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":7,"name":"Dr. Test","specialty":"Dermatologist","availability":"Available"}]`), 0o600))

	repo, err := NewFileDoctorRepository(path)
	require.NoError(t, err)
	d, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Dermatologist", d.Specialty)

	_, err = NewFileDoctorRepository(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
