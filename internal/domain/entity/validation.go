package entity

import (
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	domainerrors "lifeos/internal/domain/errors"
)

func requireText(field, value string, maxLen int) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", domainerrors.Validationf("%s is required", field)
	}

	return limitText(field, value, maxLen)
}

func limitText(field, value string, maxLen int) (string, error) {
	value = strings.TrimSpace(value)
	if maxLen > 0 && utf8.RuneCountInString(value) > maxLen {
		return "", domainerrors.Validationf("%s cannot be more than %d characters", field, maxLen)
	}

	return value, nil
}

func checkPercent(field string, value int) error {
	if value < 0 || value > 100 {
		return domainerrors.Validationf("%s must be between 0 and 100", field)
	}

	return nil
}

func checkOneOf[T ~string](field string, value T, allowed ...T) error {
	if !slices.Contains(allowed, value) {
		return domainerrors.Validationf("%s must be one of %v", field, allowed)
	}

	return nil
}

func checkDateOrder(startField string, start *time.Time, endField string, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return domainerrors.Validationf("%s cannot be before %s", endField, startField)
	}

	return nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()

	return &u
}
