package controllers

import (
	"errors"
	"testing"

	"deeprealties/backend/models"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestSQLBuilderNumbersPlaceholders(t *testing.T) {
	b := &sqlBuilder{}
	b.where("city ILIKE ?", "%pune%")
	b.where("price BETWEEN ? AND ?", 10, 20)
	page := b.page(5, 10)

	assert.Equal(t, " WHERE city ILIKE $1 AND price BETWEEN $2 AND $3", b.whereSQL())
	assert.Equal(t, " OFFSET $4 LIMIT $5", page)
	assert.Equal(t, []any{"%pune%", 10, 20, 5, 10}, b.args)
}

func TestSQLBuilderSetsAndArg(t *testing.T) {
	b := &sqlBuilder{}
	b.set("title", "Villa")
	b.set("price", 4500000.0)
	id := b.arg(int64(7))

	assert.Equal(t, "title = $1, price = $2", b.setSQL())
	assert.Equal(t, "$3", id)
	assert.Empty(t, (&sqlBuilder{}).whereSQL())
}

func TestContainsEscapesWildcards(t *testing.T) {
	assert.Equal(t, "%pune%", contains("pune"))
	assert.Equal(t, `%50\%\_off\\%`, contains(`50%_off\`))
}

func TestPropertyFilter(t *testing.T) {
	b := &sqlBuilder{}
	propertyFilter(b, models.PropertyFilter{
		City:         "Hyd",
		PropertyType: "villa",
		MinPrice:     ptr(100000.0),
		MaxAreaSqft:  ptr(2400.0),
		Bedrooms:     ptr(0),
		Bathrooms:    ptr(2),
		Parking:      ptr(false),
		Facing:       "east",
	})

	assert.Equal(t, " WHERE city ILIKE $1 AND property_type = $2 AND price >= $3 AND area_sqft <= $4"+
		" AND bathrooms = $5 AND parking = $6 AND facing ILIKE $7", b.whereSQL())
	assert.Equal(t, []any{"%Hyd%", "villa", 100000.0, 2400.0, 2, false, "%east%"}, b.args)
}

func TestPropertyFilterEmpty(t *testing.T) {
	b := &sqlBuilder{}
	propertyFilter(b, models.PropertyFilter{})
	assert.Empty(t, b.conds)
	assert.Empty(t, b.args)
}

func TestPropertyUpdatesOnlySetsProvidedFields(t *testing.T) {
	b := &sqlBuilder{}
	imgs := []string{"a.jpg"}
	propertyUpdates(b, models.PropertyUpdate{Title: ptr("New"), Parking: ptr(true), Images: &imgs})

	assert.Equal(t, "title = $1, parking = $2, images = $3", b.setSQL())
	assert.Equal(t, []any{"New", true, imgs}, b.args)
}

func TestRequirementMatch(t *testing.T) {
	b := requirementMatch(models.RequirementCreate{PropertyType: "plot", City: "Vizag", MinBudget: 1e5, MaxBudget: 5e5})
	assert.Equal(t, " WHERE is_active = $1 AND property_type = $2 AND city ILIKE $3 AND price BETWEEN $4 AND $5", b.whereSQL())
	assert.Equal(t, []any{true, "plot", "%Vizag%", 1e5, 5e5}, b.args)
}

func TestRentalFilter(t *testing.T) {
	b := &sqlBuilder{}
	rentalFilter(b, models.RentalFilter{State: "Telangana", RentType: "furnished", MaxRent: ptr(25000.0)})
	assert.Equal(t, " WHERE state ILIKE $1 AND rent_type = $2 AND monthly_rent <= $3", b.whereSQL())
}

func TestEventUpdates(t *testing.T) {
	b := &sqlBuilder{}
	eventUpdates(b, models.EventUpdate{IsPast: ptr(true), MaxAttendees: ptr(40)})
	assert.Equal(t, "is_past = $1, max_attendees = $2", b.setSQL())
}

func TestProjectUpdates(t *testing.T) {
	b := &sqlBuilder{}
	projectUpdates(b, models.ProjectUpdate{Status: ptr("completed"), AvailableUnits: ptr(0)})
	assert.Equal(t, "status = $1, available_units = $2", b.setSQL())
}

// fakeRows yields ids and then reports streamErr from Err.
type fakeRows struct {
	pgx.Rows
	ids       []int64
	pos       int
	streamErr error
	closed    bool
}

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.ids) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	*dest[0].(*int64) = r.ids[r.pos-1]
	return nil
}

func (r *fakeRows) Err() error { return r.streamErr }

func (r *fakeRows) Close() { r.closed = true }

func scanID(row scanner) (int64, error) {
	var id int64
	err := row.Scan(&id)
	return id, err
}

func TestCollectRows(t *testing.T) {
	rows := &fakeRows{ids: []int64{3, 5}}
	got, err := collectRows(rows, scanID)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 5}, got)
	assert.True(t, rows.closed)
}

func TestCollectRowsEmptyIsNotNil(t *testing.T) {
	got, err := collectRows(&fakeRows{}, scanID)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCollectRowsStreamError(t *testing.T) {
	rows := &fakeRows{ids: []int64{3}, streamErr: errors.New("conn reset")}
	got, err := collectRows(rows, scanID)
	assert.EqualError(t, err, "conn reset")
	assert.Nil(t, got)
	assert.True(t, rows.closed)
}
