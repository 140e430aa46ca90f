package handler // handler defines http handlers

import (
    "errors"
    "strconv"
    "strings"
    "time"

    "github.com/labstack/echo/v4"
)

// dateLayout is the wire format for all calendar dates.
const dateLayout = "2006-01-02"

// getUserID extracts the user_id from echo.Context and converts it to uint64
func getUserID(c echo.Context) (uint64, error) {
    v := c.Get("user_id")
    switch t := v.(type) {
    case uint64:
        return t, nil
    case int:
        return uint64(t), nil
    case int64:
        return uint64(t), nil
    case float64:
        return uint64(t), nil
    case string:
        if n, err := strconv.ParseUint(t, 10, 64); err == nil {
            return n, nil
        }
    }
    return 0, errors.New("invalid user_id in context")
}

// pathID parses a numeric path parameter and rejects zero values.
func pathID(c echo.Context, name string) (uint64, error) {
    id, err := strconv.ParseUint(c.Param(name), 10, 64)
    if err != nil || id == 0 {
        return 0, errors.New("invalid " + name)
    }
    return id, nil
}

// parseDate parses a YYYY-MM-DD string into a UTC midnight timestamp.
// All date arithmetic in the engine assumes midnight-normalized times,
// so parsing is the only place string dates enter the system.
func parseDate(raw string) (time.Time, error) {
    s := strings.TrimSpace(raw)
    if s == "" {
        return time.Time{}, errors.New("date is required")
    }
    t, err := time.ParseInLocation(dateLayout, s, time.UTC)
    if err != nil {
        return time.Time{}, errors.New("date must be formatted as YYYY-MM-DD")
    }
    return t, nil
}
