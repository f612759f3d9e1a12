package entities

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/diwise/notion-properties/pkg/notion/types"
	"github.com/diwise/notion-properties/pkg/notion/types/properties"
	"github.com/google/uuid"
)

const ObjectPage string = "page"

type EntityDecoratorFunc func(e *PageImpl)

// New creates a page entity. A random id is assigned unless one is decorated.
func New(decorators ...EntityDecoratorFunc) (types.Entity, error) {
	e := &PageImpl{
		object:     ObjectPage,
		properties: map[string]*properties.Property{},
	}

	for _, decorator := range decorators {
		decorator(e)
	}

	if e.id == "" {
		e.id = uuid.NewString()
	}

	return e, nil
}

func NewFromJSON(body []byte) (types.Entity, error) {
	e := &PageImpl{}
	err := json.Unmarshal(body, e)

	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal entity: %w", err)
	}

	if e.ID() == "" {
		return nil, fmt.Errorf("failed to parse entity")
	}

	return e, nil
}

// NewFromSlice accepts either a bare array of pages or a list response with
// the pages in its results attribute
func NewFromSlice(body []byte) ([]types.Entity, error) {
	impls := []*PageImpl{}

	err := json.Unmarshal(body, &impls)
	if err != nil {
		list := struct {
			Object  string      `json:"object"`
			Results []*PageImpl `json:"results"`
		}{}

		if listErr := json.Unmarshal(body, &list); listErr != nil || list.Object != "list" {
			return nil, fmt.Errorf("failed to unmarshal entities: %w", err)
		}

		impls = list.Results
	}

	arr := make([]types.Entity, 0, len(impls))

	for _, e := range impls {
		arr = append(arr, e)
	}

	return arr, nil
}

type PageImpl struct {
	id     string
	object string

	createdTime    time.Time
	lastEditedTime time.Time
	archived       bool
	url            string

	properties map[string]*properties.Property
}

func (e *PageImpl) ID() string {
	return e.id
}

func (e *PageImpl) Object() string {
	return e.object
}

func (e *PageImpl) CreatedTime() time.Time {
	return e.createdTime
}

func (e *PageImpl) LastEditedTime() time.Time {
	return e.lastEditedTime
}

func (e *PageImpl) Archived() bool {
	return e.archived
}

func (e *PageImpl) URL() string {
	return e.url
}

// Property returns the raw property stored under name. Partial pages without
// a properties object have no properties at all.
func (e *PageImpl) Property(name string) (*properties.Property, bool) {
	if e == nil || e.properties == nil {
		return nil, false
	}

	p, ok := e.properties[name]
	if !ok || p == nil {
		return nil, false
	}

	return p, true
}

func (e *PageImpl) ForEachProperty(callback func(name string, property *properties.Property)) {
	for k, v := range e.properties {
		callback(k, v)
	}
}

type pageContents struct {
	Object         string                          `json:"object"`
	ID             string                          `json:"id"`
	CreatedTime    *time.Time                      `json:"created_time,omitempty"`
	LastEditedTime *time.Time                      `json:"last_edited_time,omitempty"`
	Archived       bool                            `json:"archived"`
	URL            string                          `json:"url,omitempty"`
	Properties     map[string]*properties.Property `json:"properties,omitempty"`
}

func (e *PageImpl) MarshalJSON() ([]byte, error) {
	contents := pageContents{
		Object:     e.object,
		ID:         e.id,
		Archived:   e.archived,
		URL:        e.url,
		Properties: e.properties,
	}

	if !e.createdTime.IsZero() {
		contents.CreatedTime = &e.createdTime
	}

	if !e.lastEditedTime.IsZero() {
		contents.LastEditedTime = &e.lastEditedTime
	}

	return json.Marshal(&contents)
}

func (e *PageImpl) UnmarshalJSON(data []byte) error {
	contents := pageContents{}

	err := json.Unmarshal(data, &contents)
	if err != nil {
		return fmt.Errorf("failed to unmarshal entity: %w", err)
	}

	e.id = contents.ID
	e.object = contents.Object
	e.archived = contents.Archived
	e.url = contents.URL
	e.properties = contents.Properties

	if contents.CreatedTime != nil {
		e.createdTime = *contents.CreatedTime
	}

	if contents.LastEditedTime != nil {
		e.lastEditedTime = *contents.LastEditedTime
	}

	return nil
}

func ID(id string) EntityDecoratorFunc {
	return func(e *PageImpl) { e.id = id }
}

func Archived() EntityDecoratorFunc {
	return func(e *PageImpl) { e.archived = true }
}

func P(name string, value *properties.Property) EntityDecoratorFunc {
	return func(e *PageImpl) { e.properties[name] = value }
}
