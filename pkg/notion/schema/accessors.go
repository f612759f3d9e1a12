package schema

import (
	"fmt"
	"time"

	"github.com/diwise/notion-properties/pkg/notion"
	notionerrors "github.com/diwise/notion-properties/pkg/notion/errors"
	"github.com/diwise/notion-properties/pkg/notion/types"
	"github.com/diwise/notion-properties/pkg/notion/types/updates"
)

// Accessor reads and writes a single declared field with its native Go type.
// Accessors are only handed out for fields whose declared kind matches.
type Accessor[T any] struct {
	field Field
	read  func(types.Entity, string) (T, bool)
	write func(T) updates.PropertyUpdate
}

func newAccessor[T any](s *Schema, name string, kind Kind, read func(types.Entity, string) (T, bool), write func(T) updates.PropertyUpdate) (Accessor[T], error) {
	f, ok := s.Field(name)
	if !ok {
		return Accessor[T]{}, notionerrors.NewUnknownFieldError(name)
	}

	if f.Kind != kind {
		return Accessor[T]{}, notionerrors.NewKindMismatchError(name, string(f.Kind), string(kind))
	}

	return Accessor[T]{field: f, read: read, write: write}, nil
}

func (a Accessor[T]) Field() Field {
	return a.field
}

func (a Accessor[T]) Read(e types.Entity) (T, bool) {
	return a.read(e, a.field.Name)
}

func (a Accessor[T]) ReadOrFail(e types.Entity) (T, error) {
	value, ok := a.read(e, a.field.Name)
	if !ok {
		return value, notionerrors.NewUndefinedPropertyError(a.field.Name)
	}
	return value, nil
}

func (a Accessor[T]) Write(value T) updates.PropertyUpdate {
	return a.write(value)
}

// Clear returns an update that empties the field, for the kinds that allow it
func (a Accessor[T]) Clear() (updates.PropertyUpdate, error) {
	info := kinds[a.field.Kind]
	if info.clear == nil {
		return nil, fmt.Errorf("field \"%s\" of kind %s can not be cleared: %w", a.field.Name, a.field.Kind, notionerrors.ErrKindMismatch)
	}
	return info.clear(), nil
}

func TitleField(s *Schema, name string) (Accessor[string], error) {
	return newAccessor(s, name, KindTitle, notion.ReadTitle,
		func(v string) updates.PropertyUpdate { return notion.WriteTitle(v) })
}

func RichTextField(s *Schema, name string) (Accessor[string], error) {
	return newAccessor(s, name, KindRichText, notion.ReadRichText,
		func(v string) updates.PropertyUpdate { return notion.WriteRichText(v) })
}

func NumberField(s *Schema, name string) (Accessor[float64], error) {
	return newAccessor(s, name, KindNumber, notion.ReadNumber,
		func(v float64) updates.PropertyUpdate { return notion.WriteNumber(&v) })
}

func CheckboxField(s *Schema, name string) (Accessor[bool], error) {
	return newAccessor(s, name, KindCheckbox, notion.ReadBoolean,
		func(v bool) updates.PropertyUpdate { return notion.WriteBoolean(v) })
}

func DateField(s *Schema, name string) (Accessor[time.Time], error) {
	return newAccessor(s, name, KindDate, notion.ReadDateTimeStart,
		func(v time.Time) updates.PropertyUpdate { return notion.WriteDateTimeStart(v) })
}

func PhoneNumberField(s *Schema, name string) (Accessor[string], error) {
	return newAccessor(s, name, KindPhoneNumber, notion.ReadPhoneNumber,
		func(v string) updates.PropertyUpdate { return notion.WritePhoneNumber(&v) })
}

func EmailField(s *Schema, name string) (Accessor[string], error) {
	return newAccessor(s, name, KindEmail, notion.ReadEMail,
		func(v string) updates.PropertyUpdate { return notion.WriteEMail(&v) })
}

func RelationField(s *Schema, name string) (Accessor[string], error) {
	return newAccessor(s, name, KindRelation, notion.ReadSingleRelation,
		func(v string) updates.PropertyUpdate { return notion.WriteSingleRelation(v) })
}

func RelationListField(s *Schema, name string) (Accessor[[]string], error) {
	return newAccessor(s, name, KindRelationList, notion.ReadRelationIDList,
		func(v []string) updates.PropertyUpdate { return notion.WriteRelationIDList(v) })
}
