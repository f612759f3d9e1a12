package notion

import (
	"time"

	"github.com/diwise/notion-properties/pkg/notion/types/updates"
)

// DateTimeLayout is the timestamp encoding expected by the Notion API for date starts
const DateTimeLayout string = "2006-01-02T15:04:05.000Z"

func WriteTitle(value string) updates.TitleUpdate {
	return updates.NewTitleUpdate(value)
}

func WriteRichText(value string) updates.RichTextUpdate {
	return updates.NewRichTextUpdate(value)
}

// WriteNumber clears the property when value is nil
func WriteNumber(value *float64) updates.NumberUpdate {
	return updates.NewNumberUpdate(value)
}

func WriteBoolean(value bool) updates.CheckboxUpdate {
	return updates.NewCheckboxUpdate(value)
}

func WriteDateTimeStart(value time.Time) updates.DateUpdate {
	start := value.UTC().Format(DateTimeLayout)
	return updates.NewDateUpdate(&start)
}

// WritePhoneNumber clears the property when value is nil
func WritePhoneNumber(value *string) updates.PhoneNumberUpdate {
	return updates.NewPhoneNumberUpdate(value)
}

// WriteEMail clears the property when value is nil
func WriteEMail(value *string) updates.EmailUpdate {
	return updates.NewEmailUpdate(value)
}

func WriteSingleRelation(id string) updates.RelationUpdate {
	return updates.NewRelationUpdate([]string{id})
}

func WriteRelationIDList(ids []string) updates.RelationUpdate {
	return updates.NewRelationUpdate(ids)
}
