package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activity-board/internal/model"
)

func TestSessionStore_Get(t *testing.T) {
	st := NewSessionStore(time.Minute, time.Second)

	s1, created := st.Get("")
	require.True(t, created)
	require.NotEmpty(t, s1.ID)

	s2, created := st.Get(s1.ID)
	assert.False(t, created)
	assert.Same(t, s1, s2)

	s3, created := st.Get("unknown")
	assert.True(t, created)
	assert.NotEqual(t, "unknown", s3.ID)
	assert.Equal(t, 2, st.Len())
}

func TestSessionStore_Sweep(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	st := NewSessionStore(10*time.Minute, time.Hour)
	st.now = func() time.Time { return now }

	idle, _ := st.Get("")
	idle.Banner.Success("pending")
	now = now.Add(5 * time.Minute)
	active, _ := st.Get("")

	now = now.Add(6 * time.Minute)
	assert.Equal(t, 1, st.Sweep())
	assert.Equal(t, 1, st.Len())

	got, created := st.Get(active.ID)
	assert.False(t, created)
	assert.Same(t, active, got)

	_, created = st.Get(idle.ID)
	assert.True(t, created)
}

func TestSessionStore_SweepDisabled(t *testing.T) {
	st := NewSessionStore(0, 0)
	st.Get("")
	assert.Zero(t, st.Sweep())
	assert.Equal(t, 1, st.Len())
}

func TestSession_View(t *testing.T) {
	st := NewSessionStore(0, time.Hour)
	s, _ := st.Get("")

	s.setCatalog(model.Catalog{{Name: "Drama Club", MaxParticipants: 20, Participants: []string{}}})
	s.setForm(model.SignupForm{Email: "a@b.c", Activity: "Drama Club"})
	s.Banner.Error("Activity full")

	v := s.View()
	assert.Equal(t, []string{"Drama Club"}, v.Activities.Names())
	assert.Equal(t, "a@b.c", v.Form.Email)
	assert.Equal(t, model.BannerError, v.Banner.Kind)

	s.ResetForm()
	s.markLoadFailed()
	v = s.View()
	assert.Equal(t, model.SignupForm{}, v.Form)
	assert.True(t, v.LoadFailed)
}
