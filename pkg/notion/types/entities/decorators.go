package entities

import (
	"github.com/diwise/notion-properties/pkg/notion/types/properties"
)

func Title(name, value string) EntityDecoratorFunc {
	return P(name, properties.NewTitleProperty(value))
}

func RichText(name, value string) EntityDecoratorFunc {
	return P(name, properties.NewRichTextProperty(value))
}

func Number(name string, value float64) EntityDecoratorFunc {
	return P(name, properties.NewNumberProperty(&value))
}

func Checkbox(name string, value bool) EntityDecoratorFunc {
	return P(name, properties.NewCheckboxProperty(value))
}

// DateTime stores value as the start of a date property, as is
func DateTime(name, value string) EntityDecoratorFunc {
	return P(name, properties.NewDateProperty(&value))
}

func PhoneNumber(name, value string) EntityDecoratorFunc {
	return P(name, properties.NewPhoneNumberProperty(&value))
}

func Email(name, value string) EntityDecoratorFunc {
	return P(name, properties.NewEmailProperty(&value))
}

func Relation(name string, ids ...string) EntityDecoratorFunc {
	return P(name, properties.NewRelationProperty(ids))
}
