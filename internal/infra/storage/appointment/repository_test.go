package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

func TestBuildListQuery_DateRange(t *testing.T) {
	from := time.Date(2026, 10, 24, 0, 0, 0, 0, time.UTC)
	to := domain.EndOfDay(from)

	query, args, err := buildListQuery(domain.AppointmentsFilter{From: &from, To: &to}).ToSql()

	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id, name, phone, service_id, starts_at, created_at FROM appointments "+
			"WHERE starts_at >= $1 AND starts_at <= $2 ORDER BY starts_at ASC, id ASC",
		query)
	assert.Equal(t, []interface{}{from, to}, args)
}

func TestBuildListQuery_UpcomingByPhone(t *testing.T) {
	now := time.Date(2026, 10, 24, 9, 0, 0, 0, time.UTC)
	phone := "5587999990000"

	query, args, err := buildListQuery(domain.AppointmentsFilter{From: &now, Phone: &phone}).ToSql()

	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id, name, phone, service_id, starts_at, created_at FROM appointments "+
			"WHERE starts_at >= $1 AND phone = $2 ORDER BY starts_at ASC, id ASC",
		query)
	assert.Equal(t, []interface{}{now, phone}, args)
}

func TestBuildListQuery_Limit(t *testing.T) {
	query, args, err := buildListQuery(domain.AppointmentsFilter{Limit: domain.AdminListLimit}).ToSql()

	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id, name, phone, service_id, starts_at, created_at FROM appointments "+
			"ORDER BY starts_at ASC, id ASC LIMIT 50",
		query)
	assert.Empty(t, args)
}

func TestUnconfiguredRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUnconfiguredRepository()
	now := time.Now()

	created, err := repo.Create(ctx, &domain.Appointment{Name: "João"})
	assert.Nil(t, created)
	assert.ErrorIs(t, err, ErrNotPersisted)

	byDate, err := repo.GetByDateRange(ctx, now, now)
	require.NoError(t, err)
	assert.Empty(t, byDate)

	byPhone, err := repo.GetUpcomingByPhone(ctx, "5587", now)
	require.NoError(t, err)
	assert.Empty(t, byPhone)

	listed, err := repo.List(ctx, domain.AppointmentsFilter{})
	require.NoError(t, err)
	assert.Empty(t, listed)

	_, err = repo.GetByID(ctx, 1)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	assert.NoError(t, repo.Delete(ctx, 1))
}
