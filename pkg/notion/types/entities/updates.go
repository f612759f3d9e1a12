package entities

import (
	"fmt"

	"github.com/diwise/notion-properties/pkg/notion/types"
	"github.com/diwise/notion-properties/pkg/notion/types/properties"
	"github.com/diwise/notion-properties/pkg/notion/types/updates"
)

// FromUpdates creates a page holding the properties a page update would leave
// behind, shaped the way the Notion API returns them on a subsequent read.
func FromUpdates(pu *updates.PageUpdate, decorators ...EntityDecoratorFunc) (types.Entity, error) {
	var err error

	pu.ForEach(func(name string, update updates.PropertyUpdate) {
		if err != nil {
			return
		}

		var p *properties.Property
		p, err = PropertyFromUpdate(update)
		if err != nil {
			err = fmt.Errorf("property %s: %w", name, err)
			return
		}

		decorators = append(decorators, P(name, p))
	})

	if err != nil {
		return nil, err
	}

	return New(decorators...)
}

func PropertyFromUpdate(update updates.PropertyUpdate) (*properties.Property, error) {
	switch u := update.(type) {
	case updates.TitleUpdate:
		p := &properties.Property{Type: properties.TypeTitle, Title: []properties.RichText{}}
		for _, run := range u.Title {
			p.Title = append(p.Title, properties.NewTextRun(run.Text.Content))
		}
		return p, nil
	case updates.RichTextUpdate:
		p := &properties.Property{Type: properties.TypeRichText, RichText: []properties.RichText{}}
		for _, run := range u.RichText {
			p.RichText = append(p.RichText, properties.NewTextRun(run.Text.Content))
		}
		return p, nil
	case updates.NumberUpdate:
		return properties.NewNumberProperty(u.Number), nil
	case updates.CheckboxUpdate:
		return properties.NewCheckboxProperty(u.Checkbox), nil
	case updates.DateUpdate:
		if u.Date.Start == nil {
			return &properties.Property{Type: properties.TypeDate}, nil
		}
		return properties.NewDateProperty(u.Date.Start), nil
	case updates.PhoneNumberUpdate:
		return properties.NewPhoneNumberProperty(u.PhoneNumber), nil
	case updates.EmailUpdate:
		return properties.NewEmailProperty(u.Email), nil
	case updates.RelationUpdate:
		return properties.NewRelationProperty(u.IDs()), nil
	default:
		return nil, fmt.Errorf("support for update type %T not implemented", update)
	}
}
