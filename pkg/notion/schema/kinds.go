package schema

import (
	"fmt"
	"time"

	"github.com/diwise/notion-properties/pkg/notion"
	notionerrors "github.com/diwise/notion-properties/pkg/notion/errors"
	"github.com/diwise/notion-properties/pkg/notion/types"
	"github.com/diwise/notion-properties/pkg/notion/types/properties"
	"github.com/diwise/notion-properties/pkg/notion/types/updates"
)

// Kind tells how a field of a simplified entity maps onto a page property
type Kind string

const (
	KindTitle        Kind = "title"
	KindRichText     Kind = "rich_text"
	KindNumber       Kind = "number"
	KindCheckbox     Kind = "checkbox"
	KindDate         Kind = "date"
	KindPhoneNumber  Kind = "phone_number"
	KindEmail        Kind = "email"
	KindRelation     Kind = "relation"
	KindRelationList Kind = "relation_list"
)

type reader func(e types.Entity, name string) (any, bool)
type writer func(name string, value any) (updates.PropertyUpdate, error)

type kindInfo struct {
	propertyType string
	read         reader
	write        writer
	clear        func() updates.PropertyUpdate
}

var kinds = map[Kind]kindInfo{
	KindTitle: {
		propertyType: properties.TypeTitle,
		read:         anyOf(notion.ReadTitle),
		write:        writeAs(func(v string) updates.PropertyUpdate { return notion.WriteTitle(v) }),
	},
	KindRichText: {
		propertyType: properties.TypeRichText,
		read:         anyOf(notion.ReadRichText),
		write:        writeAs(func(v string) updates.PropertyUpdate { return notion.WriteRichText(v) }),
	},
	KindNumber: {
		propertyType: properties.TypeNumber,
		read:         anyOf(notion.ReadNumber),
		write:        writeNumber,
		clear:        func() updates.PropertyUpdate { return notion.WriteNumber(nil) },
	},
	KindCheckbox: {
		propertyType: properties.TypeCheckbox,
		read:         anyOf(notion.ReadBoolean),
		write:        writeAs(func(v bool) updates.PropertyUpdate { return notion.WriteBoolean(v) }),
	},
	KindDate: {
		propertyType: properties.TypeDate,
		read:         anyOf(notion.ReadDateTimeStart),
		write:        writeAs(func(v time.Time) updates.PropertyUpdate { return notion.WriteDateTimeStart(v) }),
	},
	KindPhoneNumber: {
		propertyType: properties.TypePhoneNumber,
		read:         anyOf(notion.ReadPhoneNumber),
		write:        writeAs(func(v string) updates.PropertyUpdate { return notion.WritePhoneNumber(&v) }),
		clear:        func() updates.PropertyUpdate { return notion.WritePhoneNumber(nil) },
	},
	KindEmail: {
		propertyType: properties.TypeEmail,
		read:         anyOf(notion.ReadEMail),
		write:        writeAs(func(v string) updates.PropertyUpdate { return notion.WriteEMail(&v) }),
		clear:        func() updates.PropertyUpdate { return notion.WriteEMail(nil) },
	},
	KindRelation: {
		propertyType: properties.TypeRelation,
		read:         anyOf(notion.ReadSingleRelation),
		write:        writeAs(func(v string) updates.PropertyUpdate { return notion.WriteSingleRelation(v) }),
	},
	KindRelationList: {
		propertyType: properties.TypeRelation,
		read:         anyOf(notion.ReadRelationIDList),
		write:        writeAs(func(v []string) updates.PropertyUpdate { return notion.WriteRelationIDList(v) }),
	},
}

func (k Kind) IsValid() bool {
	_, ok := kinds[k]
	return ok
}

// PropertyType returns the type discriminator used by pages for this kind
func (k Kind) PropertyType() string {
	return kinds[k].propertyType
}

// Clearable reports whether a field of this kind can be reset to an empty value
func (k Kind) Clearable() bool {
	return kinds[k].clear != nil
}

func anyOf[T any](read func(types.Entity, string) (T, bool)) reader {
	return func(e types.Entity, name string) (any, bool) {
		return read(e, name)
	}
}

func writeAs[T any](write func(T) updates.PropertyUpdate) writer {
	return func(name string, value any) (updates.PropertyUpdate, error) {
		v, ok := value.(T)
		if !ok {
			var zero T
			return nil, notionerrors.NewTypeMismatchError(name, fmt.Sprintf("%T", zero), value)
		}
		return write(v), nil
	}
}

func writeNumber(name string, value any) (updates.PropertyUpdate, error) {
	var n float64

	switch v := value.(type) {
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int64:
		n = float64(v)
	default:
		return nil, notionerrors.NewTypeMismatchError(name, "float64", value)
	}

	return notion.WriteNumber(&n), nil
}
