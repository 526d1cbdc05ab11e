package controllers

import (
	"context"
	"errors"
	"net/http"

	"deeprealties/backend/database"
	"deeprealties/backend/models"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

const eventColumns = `id, title, description, location, city, event_date, event_time, is_past, registration_link,
	max_attendees, images, videos, registered_count, is_active, created_at`

func scanEvent(row scanner) (models.Event, error) {
	var e models.Event
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Location, &e.City, &e.EventDate, &e.EventTime, &e.IsPast,
		&e.RegistrationLink, &e.MaxAttendees, &e.Images, &e.Videos, &e.RegisteredCount, &e.IsActive, &e.CreatedAt)
	return e, err
}

func queryEvents(c *gin.Context, sql string, args ...any) ([]models.Event, bool) {
	ctx, cancel := dbCtx(c)
	defer cancel()
	rows, err := database.Pool.Query(ctx, sql, args...)
	if err != nil {
		dbFail(c, err, "")
		return nil, false
	}
	defer rows.Close()
	out := []models.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			dbFail(c, err, "")
			return nil, false
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		dbFail(c, err, "")
		return nil, false
	}
	return out, true
}

// ListEvents sorts past events newest first and everything else soonest first.
func ListEvents() gin.HandlerFunc {
	return func(c *gin.Context) {
		past, ok := optionalBool(c, "is_past")
		if !ok {
			return
		}
		skip, limit, ok := page(c, 50, 100)
		if !ok {
			return
		}
		b := &sqlBuilder{}
		b.where("is_active = ?", true)
		if past != nil {
			b.where("is_past = ?", *past)
		}
		if city := c.Query("city"); city != "" {
			b.where("city ILIKE ?", contains(city))
		}
		order := " ORDER BY event_date ASC"
		if past != nil && *past {
			order = " ORDER BY event_date DESC"
		}
		sql := `SELECT ` + eventColumns + ` FROM events` + b.whereSQL() + order + b.page(skip, limit)
		out, ok := queryEvents(c, sql, b.args...)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func UpcomingEvents() gin.HandlerFunc {
	return func(c *gin.Context) {
		out, ok := queryEvents(c, `SELECT `+eventColumns+` FROM events
			WHERE is_active AND NOT is_past AND event_date >= now() ORDER BY event_date ASC LIMIT 50`)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func PastEvents() gin.HandlerFunc {
	return func(c *gin.Context) {
		out, ok := queryEvents(c, `SELECT `+eventColumns+` FROM events
			WHERE is_active AND is_past ORDER BY event_date DESC LIMIT 50`)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func GetEvent() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id", "event")
		if !ok {
			return
		}
		ctx, cancel := dbCtx(c)
		defer cancel()
		e, err := scanEvent(database.Pool.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id=$1 AND is_active`, id))
		if err != nil {
			dbFail(c, err, "Event not found")
			return
		}
		c.JSON(http.StatusOK, e)
	}
}

var (
	errEventClosed = errors.New("event not found or already past")
	errEventFull   = errors.New("event is full")

	errDuplicateRegistration = errors.New("already registered")
)

// registerForEvent locks the event row so the capacity check and the
// counter bump see the same registered_count.
func registerForEvent(ctx context.Context, tx pgx.Tx, eventID int64, req models.EventRegistrationCreate) (models.EventRegistration, error) {
	reg := models.EventRegistration{EventID: eventID, FullName: req.FullName, Email: req.Email, Phone: req.Phone}
	var count int
	var max *int
	err := tx.QueryRow(ctx, `SELECT registered_count, max_attendees FROM events
		WHERE id=$1 AND is_active AND NOT is_past FOR UPDATE`, eventID).Scan(&count, &max)
	if errors.Is(err, pgx.ErrNoRows) {
		return reg, errEventClosed
	}
	if err != nil {
		return reg, err
	}
	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM event_registrations WHERE event_id=$1 AND email=$2)`,
		eventID, req.Email).Scan(&exists); err != nil {
		return reg, err
	}
	if exists {
		return reg, errDuplicateRegistration
	}
	if max != nil && *max > 0 && count >= *max {
		return reg, errEventFull
	}
	if err := tx.QueryRow(ctx, `INSERT INTO event_registrations(event_id, full_name, email, phone)
		VALUES($1,$2,$3,$4) RETURNING id, created_at`, eventID, req.FullName, req.Email, req.Phone).
		Scan(&reg.ID, &reg.CreatedAt); err != nil {
		return reg, err
	}
	_, err = tx.Exec(ctx, `UPDATE events SET registered_count = registered_count + 1 WHERE id=$1`, eventID)
	return reg, err
}

func RegisterForEvent() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id", "event")
		if !ok {
			return
		}
		var req models.EventRegistrationCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
		ctx, cancel := dbCtx(c)
		defer cancel()
		var reg models.EventRegistration
		err := pgx.BeginFunc(ctx, database.Pool, func(tx pgx.Tx) error {
			var err error
			reg, err = registerForEvent(ctx, tx, id, req)
			return err
		})
		switch {
		case errors.Is(err, errEventClosed):
			fail(c, http.StatusNotFound, "Event not found or already past")
		case errors.Is(err, errDuplicateRegistration), isUniqueViolation(err):
			fail(c, http.StatusBadRequest, "Already registered for this event")
		case errors.Is(err, errEventFull):
			fail(c, http.StatusBadRequest, "Event is full")
		case err != nil:
			dbFail(c, err, "")
		default:
			c.JSON(http.StatusOK, reg)
		}
	}
}

func CreateEvent() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.EventCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
		ctx, cancel := dbCtx(c)
		defer cancel()
		e, err := scanEvent(database.Pool.QueryRow(ctx, `INSERT INTO events(title, description, location, city,
			event_date, event_time, is_past, registration_link, max_attendees, images, videos)
			VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11) RETURNING `+eventColumns,
			req.Title, req.Description, req.Location, req.City, req.EventDate, req.EventTime, req.IsPast,
			req.RegistrationLink, req.MaxAttendees, orEmpty(req.Images), orEmpty(req.Videos)))
		if err != nil {
			dbFail(c, err, "")
			return
		}
		c.JSON(http.StatusCreated, e)
	}
}

func eventUpdates(b *sqlBuilder, req models.EventUpdate) {
	if req.Title != nil {
		b.set("title", *req.Title)
	}
	if req.Description != nil {
		b.set("description", *req.Description)
	}
	if req.Location != nil {
		b.set("location", *req.Location)
	}
	if req.City != nil {
		b.set("city", *req.City)
	}
	if req.EventDate != nil {
		b.set("event_date", *req.EventDate)
	}
	if req.EventTime != nil {
		b.set("event_time", *req.EventTime)
	}
	if req.IsPast != nil {
		b.set("is_past", *req.IsPast)
	}
	if req.RegistrationLink != nil {
		b.set("registration_link", *req.RegistrationLink)
	}
	if req.MaxAttendees != nil {
		b.set("max_attendees", *req.MaxAttendees)
	}
	if req.Images != nil {
		b.set("images", *req.Images)
	}
	if req.Videos != nil {
		b.set("videos", *req.Videos)
	}
}

func UpdateEvent() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id", "event")
		if !ok {
			return
		}
		var req models.EventUpdate
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
		b := &sqlBuilder{}
		eventUpdates(b, req)
		sql := `UPDATE events SET ` + b.setSQL() + ` WHERE id=` + b.arg(id) + ` RETURNING ` + eventColumns
		if len(b.sets) == 0 {
			sql = `SELECT ` + eventColumns + ` FROM events WHERE id=$1`
		}
		ctx, cancel := dbCtx(c)
		defer cancel()
		e, err := scanEvent(database.Pool.QueryRow(ctx, sql, b.args...))
		if err != nil {
			dbFail(c, err, "Event not found")
			return
		}
		c.JSON(http.StatusOK, e)
	}
}

func DeleteEvent() gin.HandlerFunc {
	return softDelete("events", "event")
}
