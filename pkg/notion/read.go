// Package notion translates between Notion page properties and plain Go values.
// Readers report absence through a second bool result, the OrFail variants
// turn absence into an error.
package notion

import (
	"time"

	notionerrors "github.com/diwise/notion-properties/pkg/notion/errors"
	"github.com/diwise/notion-properties/pkg/notion/types"
	"github.com/diwise/notion-properties/pkg/notion/types/properties"
)

// ReadProperty returns the raw property stored under name, without looking at its shape
func ReadProperty(e types.Entity, name string) (*properties.Property, bool) {
	if e == nil {
		return nil, false
	}
	return e.Property(name)
}

func orFail[T any](name string, value T, ok bool) (T, error) {
	if !ok {
		var zero T
		return zero, notionerrors.NewUndefinedPropertyError(name)
	}
	return value, nil
}

func ReadTitle(e types.Entity, name string) (string, bool) {
	p, ok := ReadProperty(e, name)
	if !ok || len(p.Title) == 0 || p.Title[0].Text == nil {
		return "", false
	}
	return p.Title[0].Text.Content, true
}

func ReadTitleOrFail(e types.Entity, name string) (string, error) {
	value, ok := ReadTitle(e, name)
	return orFail(name, value, ok)
}

func ReadRichText(e types.Entity, name string) (string, bool) {
	p, ok := ReadProperty(e, name)
	if !ok || len(p.RichText) == 0 || p.RichText[0].PlainText == nil {
		return "", false
	}
	return *p.RichText[0].PlainText, true
}

func ReadRichTextOrFail(e types.Entity, name string) (string, error) {
	value, ok := ReadRichText(e, name)
	return orFail(name, value, ok)
}

func ReadNumber(e types.Entity, name string) (float64, bool) {
	p, ok := ReadProperty(e, name)
	if !ok || p.Number == nil {
		return 0, false
	}
	return *p.Number, true
}

func ReadNumberOrFail(e types.Entity, name string) (float64, error) {
	value, ok := ReadNumber(e, name)
	return orFail(name, value, ok)
}

func ReadBoolean(e types.Entity, name string) (bool, bool) {
	p, ok := ReadProperty(e, name)
	if !ok || p.Checkbox == nil {
		return false, false
	}
	return *p.Checkbox, true
}

func ReadBooleanOrFail(e types.Entity, name string) (bool, error) {
	value, ok := ReadBoolean(e, name)
	return orFail(name, value, ok)
}

// ReadDateTimeStart returns the start of a date property. A start that is
// neither an RFC 3339 timestamp nor a plain date counts as absent.
func ReadDateTimeStart(e types.Entity, name string) (time.Time, bool) {
	p, ok := ReadProperty(e, name)
	if !ok || p.Date == nil || p.Date.Start == nil {
		return time.Time{}, false
	}
	return parseDateTime(*p.Date.Start)
}

func ReadDateTimeStartOrFail(e types.Entity, name string) (time.Time, error) {
	value, ok := ReadDateTimeStart(e, name)
	return orFail(name, value, ok)
}

const dateOnly string = "2006-01-02"

func parseDateTime(value string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, dateOnly} {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func ReadPhoneNumber(e types.Entity, name string) (string, bool) {
	p, ok := ReadProperty(e, name)
	if !ok || p.PhoneNumber == nil {
		return "", false
	}
	return *p.PhoneNumber, true
}

func ReadPhoneNumberOrFail(e types.Entity, name string) (string, error) {
	value, ok := ReadPhoneNumber(e, name)
	return orFail(name, value, ok)
}

func ReadEMail(e types.Entity, name string) (string, bool) {
	p, ok := ReadProperty(e, name)
	if !ok || p.Email == nil {
		return "", false
	}
	return *p.Email, true
}

func ReadEMailOrFail(e types.Entity, name string) (string, error) {
	value, ok := ReadEMail(e, name)
	return orFail(name, value, ok)
}

func ReadSingleRelation(e types.Entity, name string) (string, bool) {
	p, ok := ReadProperty(e, name)
	if !ok || len(p.Relation) == 0 {
		return "", false
	}
	return p.Relation[0].ID, true
}

func ReadSingleRelationOrFail(e types.Entity, name string) (string, error) {
	value, ok := ReadSingleRelation(e, name)
	return orFail(name, value, ok)
}

// ReadRelationIDList returns the ids of all related pages in order. Unlike the
// other readers an existing property with an empty relation is not absent, it
// yields an empty (non nil) list.
func ReadRelationIDList(e types.Entity, name string) ([]string, bool) {
	p, ok := ReadProperty(e, name)
	if !ok {
		return nil, false
	}

	ids := make([]string, 0, len(p.Relation))
	for _, r := range p.Relation {
		ids = append(ids, r.ID)
	}

	return ids, true
}

func ReadRelationIDListOrFail(e types.Entity, name string) ([]string, error) {
	value, ok := ReadRelationIDList(e, name)
	return orFail(name, value, ok)
}
