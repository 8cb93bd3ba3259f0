package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_PreservesOrderAndIgnoresDuplicates(t *testing.T) {
	catalog := NewCatalog([]Service{
		{ID: "b", Name: "Barba", Price: 15, DurationMinutes: 30},
		{ID: "a", Name: "Corte", Price: 20, DurationMinutes: 30},
		{ID: "b", Name: "Duplicate", Price: 99, DurationMinutes: 90},
	})

	services := catalog.Services()
	require.Len(t, services, 2)
	assert.Equal(t, "b", services[0].ID)
	assert.Equal(t, "Barba", services[0].Name)
	assert.Equal(t, "a", services[1].ID)
}

func TestCatalog_ServicesReturnsCopy(t *testing.T) {
	catalog := NewCatalog(DefaultServices())

	services := catalog.Services()
	services[0].Name = "changed"

	assert.Equal(t, "Corte Social/Infantil/Tesoura/Militar", catalog.Services()[0].Name)
}

func TestCatalog_DurationOf(t *testing.T) {
	catalog := NewCatalog(DefaultServices())

	assert.Equal(t, 60*time.Minute, catalog.DurationOf("5"))
	assert.Equal(t, 15*time.Minute, catalog.DurationOf("6"))
	assert.Equal(t, 30*time.Minute, catalog.DurationOf("unknown"))
	assert.Equal(t, 30*time.Minute, catalog.DurationOf(""))
}

func TestCatalog_NameOf(t *testing.T) {
	catalog := NewCatalog(DefaultServices())

	assert.Equal(t, "Barba", catalog.NameOf("4"))
	assert.Equal(t, UnknownServiceName, catalog.NameOf("42"))
}

func TestDefaultServices_AreValid(t *testing.T) {
	for _, s := range DefaultServices() {
		assert.True(t, s.IsValid(), s.ID)
	}
	assert.False(t, Service{ID: "x", Name: "x", Price: 10}.IsValid())
	assert.False(t, Service{ID: "x", Name: "x", Price: -1, DurationMinutes: 30}.IsValid())
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "5587999846754", NormalizePhone("+55 (87) 99984-6754"))
	assert.Equal(t, "", NormalizePhone("abc"))
}

func TestAppointment_BelongsTo(t *testing.T) {
	appt := &Appointment{Phone: "5587999990000"}

	assert.True(t, appt.BelongsTo("+55 87 99999-0000"))
	assert.False(t, appt.BelongsTo("5587999990001"))
}

func TestAppointment_IsUpcoming(t *testing.T) {
	now := time.Date(2026, 10, 24, 10, 0, 0, 0, time.UTC)

	assert.True(t, (&Appointment{StartsAt: now}).IsUpcoming(now))
	assert.False(t, (&Appointment{StartsAt: now.Add(-time.Minute)}).IsUpcoming(now))
	assert.False(t, (&Appointment{}).IsPersisted())
}
