package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
	"time"

	deliverycontext "lifeos/internal/delivery/context"
	domainerrors "lifeos/internal/domain/errors"
	"lifeos/internal/errors"
	"lifeos/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Date accepts a YYYY-MM-DD calendar day or an RFC 3339 timestamp.
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "date must be a string")
	}

	parsed, err := util.ParseTime(raw)
	if err != nil {
		return err
	}
	d.Time = parsed

	return nil
}

// Ptr returns the instant, or nil when d is nil.
func (d *Date) Ptr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time

	return &t
}

// Value returns the instant, or the zero time when d is nil.
func (d *Date) Value() time.Time {
	if d == nil {
		return time.Time{}
	}

	return d.Time
}

// currentUser returns the authenticated owner set by the auth middleware.
func currentUser(c echo.Context) (uuid.UUID, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized.WithDetails("missing authenticated user")
	}

	return userID, nil
}

func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.Validationf("%s must be a valid id", name)
	}

	return id, nil
}

func pathDay(c echo.Context, name string) (time.Time, error) {
	day, err := util.ParseDay(c.Param(name))
	if err != nil {
		return time.Time{}, domainerrors.Validationf("%s: %s", name, err.Error())
	}

	return day, nil
}

// queryDay parses an optional calendar-day query parameter.
func queryDay(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	day, err := util.ParseDay(raw)
	if err != nil {
		return nil, domainerrors.Validationf("%s: %s", name, err.Error())
	}

	return &day, nil
}

// queryInt parses an optional integer query parameter, 0 when absent.
func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.Validationf("%s must be an integer", name)
	}

	return value, nil
}

// bindCreate decodes a JSON body with echo's binder and validates it.
func bindCreate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.Validationf("malformed request body")
	}

	return c.Validate(req)
}

// bindPatch decodes a JSON body rejecting fields the patch does not know,
// then validates it.
func bindPatch(c echo.Context, req any) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return errors.Wrap(err, "failed to read request body")
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(req); err != nil {
		if errors.Is(err, io.EOF) {
			return domainerrors.Validationf("request body is empty")
		}

		return domainerrors.Validationf("malformed request body: %s", err.Error())
	}

	return c.Validate(req)
}
