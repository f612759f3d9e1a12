package schema

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	notionerrors "github.com/diwise/notion-properties/pkg/notion/errors"
	"github.com/diwise/notion-properties/pkg/notion/types"
	"github.com/diwise/notion-properties/pkg/notion/types/updates"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	yaml "gopkg.in/yaml.v2"
)

// Field declares a single field of a simplified entity and the page property backing it
type Field struct {
	Name     string `yaml:"name"`
	Kind     Kind   `yaml:"kind"`
	Required bool   `yaml:"required"`
}

func Required(name string, kind Kind) Field {
	return Field{Name: name, Kind: kind, Required: true}
}

func Optional(name string, kind Kind) Field {
	return Field{Name: name, Kind: kind}
}

// Simplified maps field names to plain values: string, float64, bool,
// time.Time or []string depending on the field kind
type Simplified map[string]any

// Schema is immutable once created and safe for concurrent use
type Schema struct {
	name   string
	fields []Field
	index  map[string]int
}

func New(name string, fields ...Field) (*Schema, error) {
	s := &Schema{
		name:   name,
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}

	for _, f := range fields {
		if f.Name == "" {
			return nil, notionerrors.NewInvalidSchemaError(fmt.Sprintf("schema %s: field name must not be empty", name))
		}

		if !f.Kind.IsValid() {
			return nil, notionerrors.NewInvalidSchemaError(fmt.Sprintf("schema %s: field \"%s\" has unknown kind \"%s\"", name, f.Name, f.Kind))
		}

		if _, exists := s.index[f.Name]; exists {
			return nil, notionerrors.NewInvalidSchemaError(fmt.Sprintf("schema %s: field \"%s\" is declared more than once", name, f.Name))
		}

		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}

	return s, nil
}

// Load reads a schema declaration in yaml format
func Load(data io.Reader) (*Schema, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	decl := struct {
		Name   string  `yaml:"name"`
		Fields []Field `yaml:"fields"`
	}{}

	err = yaml.Unmarshal(buf, &decl)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema: %w", err)
	}

	return New(decl.Name, decl.Fields...)
}

func (s *Schema) Name() string {
	return s.name
}

// Fields returns the declared fields in declaration order
func (s *Schema) Fields() []Field {
	fields := make([]Field, len(s.fields))
	copy(fields, s.fields)
	return fields
}

func (s *Schema) Field(name string) (Field, bool) {
	idx, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[idx], true
}

// read returns the value of f in e. A property whose type does not match the
// declared kind is an error, an absent required field is an error.
func (s *Schema) read(e types.Entity, f Field) (any, bool, error) {
	p, ok := e.Property(f.Name)
	if ok && p.Type != "" && p.Type != f.Kind.PropertyType() {
		return nil, false, notionerrors.NewKindMismatchError(f.Name, string(f.Kind), p.Type)
	}

	value, ok := kinds[f.Kind].read(e, f.Name)
	if !ok {
		if f.Required {
			return nil, false, notionerrors.NewUndefinedPropertyError(f.Name)
		}
		return nil, false, nil
	}

	return value, true, nil
}

// Validate checks that every declared property in e has the declared kind and
// that every required field has a value
func (s *Schema) Validate(e types.Entity) error {
	if e == nil {
		return fmt.Errorf("schema %s: no entity to validate", s.name)
	}

	for _, f := range s.fields {
		if _, _, err := s.read(e, f); err != nil {
			return err
		}
	}

	return nil
}

const (
	TraceAttributeSchema   string = "notion-schema"
	TraceAttributeEntityID string = "entity-id"
)

var tracer = otel.Tracer("notion-properties/schema")

// Project reads every declared field of e into a simplified entity. Absent
// optional fields are left out of the result.
func (s *Schema) Project(ctx context.Context, e types.Entity) (Simplified, error) {
	var err error

	if e == nil {
		return nil, fmt.Errorf("schema %s: no entity to project", s.name)
	}

	ctx, span := tracer.Start(ctx, "project-entity",
		trace.WithAttributes(attribute.String(TraceAttributeSchema, s.name)),
		trace.WithAttributes(attribute.String(TraceAttributeEntityID, e.ID())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx).With(slog.String("schema", s.name), slog.String("entity_id", e.ID()))

	result := make(Simplified, len(s.fields))

	for _, f := range s.fields {
		var value any
		var ok bool

		value, ok, err = s.read(e, f)
		if err != nil {
			log.Warn("failed to project entity", "field", f.Name, "err", err.Error())
			return nil, err
		}

		if !ok {
			log.Debug("optional field has no value", "field", f.Name)
			continue
		}

		result[f.Name] = value
	}

	return result, nil
}

// Updates converts a simplified entity into a page update. A nil value clears
// fields of a clearable kind.
func (s *Schema) Updates(ctx context.Context, values Simplified) (*updates.PageUpdate, error) {
	var err error

	ctx, span := tracer.Start(ctx, "build-page-update",
		trace.WithAttributes(attribute.String(TraceAttributeSchema, s.name)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx).With(slog.String("schema", s.name))

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	pu := updates.NewPageUpdate()

	for _, name := range names {
		var u updates.PropertyUpdate

		u, err = s.update(name, values[name])
		if err != nil {
			log.Warn("failed to build page update", "field", name, "err", err.Error())
			return nil, err
		}

		pu.Set(name, u)
	}

	log.Debug("page update built", "count", pu.Len())

	return pu, nil
}

func (s *Schema) update(name string, value any) (updates.PropertyUpdate, error) {
	f, ok := s.Field(name)
	if !ok {
		return nil, notionerrors.NewUnknownFieldError(name)
	}

	info := kinds[f.Kind]

	if value == nil && info.clear != nil {
		return info.clear(), nil
	}

	return info.write(name, value)
}
