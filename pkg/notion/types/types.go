package types

import (
	"github.com/diwise/notion-properties/pkg/notion/types/properties"
)

type Entity interface {
	ID() string
	Object() string

	Property(name string) (*properties.Property, bool)
	ForEachProperty(func(name string, property *properties.Property))
}
