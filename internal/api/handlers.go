package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/mayacal-api/internal/calendar"
	"github.com/zapponejosh/mayacal-api/internal/config"
	"github.com/zapponejosh/mayacal-api/internal/logger"
)

// maxSearchResults caps the recurrence lists returned by the search
// endpoints.
const maxSearchResults = 500

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	cfg    *config.Config
	logger *slog.Logger
	now    func() time.Time // injectable clock for tests
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// DayInfo describes one calendar system's reading of a Gregorian date.
type DayInfo struct {
	Day        string `json:"day"`         // rendered, e.g. "13 Chikchan"
	Number     int    `json:"number"`      // day number component
	Name       string `json:"name"`        // day or month name
	NameNumber int    `json:"name_number"` // index of the name in its table
	CycleDay   int    `json:"cycle_day"`   // 1-based day within the round
}

// Conversion is the payload of the convert endpoints.
type Conversion struct {
	Gregorian string  `json:"gregorian"`
	Tzolkin   DayInfo `json:"tzolkin"`
	Haab      DayInfo `json:"haab"`
}

// SearchResult is the payload of the next/last search endpoints.
type SearchResult struct {
	Day       string   `json:"day"`
	Start     string   `json:"start"`
	Direction string   `json:"direction"`
	Dates     []string `json:"dates"`
}

// DiffResult is the payload of the diff endpoints.
type DiffResult struct {
	From string `json:"from"`
	To   string `json:"to"`
	Days int    `json:"days"`
}

func conversionFor(date time.Time) Conversion {
	tz := calendar.TzolkinFromDate(date)
	haab := calendar.HaabFromDate(date)

	return Conversion{
		Gregorian: calendar.FormatDate(date),
		Tzolkin: DayInfo{
			Day:        tz.String(),
			Number:     tz.Number(),
			Name:       tz.Name(),
			NameNumber: tz.NameNumber(),
			CycleDay:   tz.CycleDay(),
		},
		Haab: DayInfo{
			Day:        haab.String(),
			Number:     haab.Number(),
			Name:       haab.Name(),
			NameNumber: haab.NameNumber(),
			CycleDay:   haab.CycleDay(),
		},
	}
}

// writeCalendarError maps calendar error kinds to 400 responses with a
// stable code; anything else is a 500.
func writeCalendarError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, calendar.ErrInvalidNumber):
		WriteError(w, http.StatusBadRequest, err.Error(), "INVALID_NUMBER")
	case errors.Is(err, calendar.ErrInvalidName):
		WriteError(w, http.StatusBadRequest, err.Error(), "INVALID_NAME")
	case errors.Is(err, calendar.ErrInvalidDate):
		WriteError(w, http.StatusBadRequest, err.Error(), "INVALID_DATE")
	default:
		logger.Error(ctx, "unexpected calendar error", err)
		WriteInternalError(w, "Internal server error")
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	// Both lookup tables must build to their full cycle length.
	if len(calendar.TzolkinCalendar()) != calendar.TzolkinDays ||
		len(calendar.HaabCalendar()) != calendar.HaabDays {
		h.logger.Error("lookup tables incomplete")
		WriteError(w, http.StatusServiceUnavailable, "Lookup tables incomplete", "HEALTH_CHECK_FAILED")
		return
	}

	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// ConvertToday handles GET /api/v1/convert/today
func (h *Handlers) ConvertToday(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, conversionFor(h.now()))
}

// ConvertDate handles GET /api/v1/convert/{YYYY-MM-DD}
func (h *Handlers) ConvertDate(w http.ResponseWriter, r *http.Request) {
	dateStr := chi.URLParam(r, "date")

	date, err := calendar.ParseDateString(dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
		return
	}

	WriteSuccess(w, conversionFor(date))
}

// TzolkinCalendarList handles GET /api/v1/tzolkin/calendar
func (h *Handlers) TzolkinCalendarList(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]interface{}{
		"length": calendar.TzolkinDays,
		"days":   calendar.TzolkinCalendar(),
	})
}

// HaabCalendarList handles GET /api/v1/haab/calendar
func (h *Handlers) HaabCalendarList(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]interface{}{
		"length": calendar.HaabDays,
		"days":   calendar.HaabCalendar(),
	})
}

// TzolkinNext handles GET /api/v1/tzolkin/next
func (h *Handlers) TzolkinNext(w http.ResponseWriter, r *http.Request) {
	h.searchTzolkin(w, r, true)
}

// TzolkinLast handles GET /api/v1/tzolkin/last
func (h *Handlers) TzolkinLast(w http.ResponseWriter, r *http.Request) {
	h.searchTzolkin(w, r, false)
}

// HaabNext handles GET /api/v1/haab/next
func (h *Handlers) HaabNext(w http.ResponseWriter, r *http.Request) {
	h.searchHaab(w, r, true)
}

// HaabLast handles GET /api/v1/haab/last
func (h *Handlers) HaabLast(w http.ResponseWriter, r *http.Request) {
	h.searchHaab(w, r, false)
}

func (h *Handlers) searchTzolkin(w http.ResponseWriter, r *http.Request, forward bool) {
	day, start, count, ok := h.searchParams(w, r)
	if !ok {
		return
	}

	target, err := calendar.ParseTzolkinDay(day)
	if err != nil {
		writeCalendarError(r.Context(), w, err)
		return
	}

	dates := calendar.TzolkinDates(target, start, count, forward)
	WriteSuccess(w, searchResult(target.String(), start, forward, dates))
}

func (h *Handlers) searchHaab(w http.ResponseWriter, r *http.Request, forward bool) {
	day, start, count, ok := h.searchParams(w, r)
	if !ok {
		return
	}

	target, err := calendar.ParseHaabDay(day)
	if err != nil {
		writeCalendarError(r.Context(), w, err)
		return
	}

	dates := calendar.HaabDates(target, start, count, forward)
	WriteSuccess(w, searchResult(target.String(), start, forward, dates))
}

// searchParams reads the common query parameters of the search endpoints:
// day (required), start (optional, defaults to today) and count (optional,
// defaults to 1). Writes the error response itself when ok is false.
func (h *Handlers) searchParams(w http.ResponseWriter, r *http.Request) (day string, start time.Time, count int, ok bool) {
	day = r.URL.Query().Get("day")
	if day == "" {
		WriteBadRequest(w, "Query parameter day is required, e.g. day=7 Kʼan")
		return "", time.Time{}, 0, false
	}

	start = h.now()
	if startStr := r.URL.Query().Get("start"); startStr != "" {
		parsed, err := calendar.ParseDateString(startStr)
		if err != nil {
			WriteBadRequest(w, fmt.Sprintf("Invalid start date: %s. Use YYYY-MM-DD", startStr))
			return "", time.Time{}, 0, false
		}
		start = parsed
	}

	count = 1
	if countStr := r.URL.Query().Get("count"); countStr != "" {
		parsed, err := strconv.Atoi(countStr)
		if err != nil || parsed < 1 {
			WriteBadRequest(w, fmt.Sprintf("Invalid count: %s", countStr))
			return "", time.Time{}, 0, false
		}
		if parsed > maxSearchResults {
			WriteBadRequest(w, fmt.Sprintf("Count cannot exceed %d", maxSearchResults))
			return "", time.Time{}, 0, false
		}
		count = parsed
	}

	return day, start, count, true
}

func searchResult(day string, start time.Time, forward bool, dates []time.Time) SearchResult {
	direction := "next"
	if !forward {
		direction = "last"
	}

	rendered := make([]string, len(dates))
	for i, d := range dates {
		rendered[i] = calendar.FormatDate(d)
	}

	return SearchResult{
		Day:       day,
		Start:     calendar.FormatDate(start),
		Direction: direction,
		Dates:     rendered,
	}
}

// TzolkinDiff handles GET /api/v1/tzolkin/diff?from=...&to=...
func (h *Handlers) TzolkinDiff(w http.ResponseWriter, r *http.Request) {
	fromStr, toStr, ok := diffParams(w, r)
	if !ok {
		return
	}

	from, err := calendar.ParseTzolkinDay(fromStr)
	if err != nil {
		writeCalendarError(r.Context(), w, err)
		return
	}
	to, err := calendar.ParseTzolkinDay(toStr)
	if err != nil {
		writeCalendarError(r.Context(), w, err)
		return
	}

	WriteSuccess(w, DiffResult{
		From: from.String(),
		To:   to.String(),
		Days: calendar.TzolkinDiff(from, to),
	})
}

// HaabDiff handles GET /api/v1/haab/diff?from=...&to=...
func (h *Handlers) HaabDiff(w http.ResponseWriter, r *http.Request) {
	fromStr, toStr, ok := diffParams(w, r)
	if !ok {
		return
	}

	from, err := calendar.ParseHaabDay(fromStr)
	if err != nil {
		writeCalendarError(r.Context(), w, err)
		return
	}
	to, err := calendar.ParseHaabDay(toStr)
	if err != nil {
		writeCalendarError(r.Context(), w, err)
		return
	}

	WriteSuccess(w, DiffResult{
		From: from.String(),
		To:   to.String(),
		Days: calendar.HaabDiff(from, to),
	})
}

func diffParams(w http.ResponseWriter, r *http.Request) (from, to string, ok bool) {
	from = r.URL.Query().Get("from")
	to = r.URL.Query().Get("to")
	if from == "" || to == "" {
		WriteBadRequest(w, "Both from and to day parameters are required")
		return "", "", false
	}
	return from, to, true
}
