package properties

const (
	TypeTitle       string = "title"
	TypeRichText    string = "rich_text"
	TypeNumber      string = "number"
	TypeCheckbox    string = "checkbox"
	TypeDate        string = "date"
	TypePhoneNumber string = "phone_number"
	TypeEmail       string = "email"
	TypeRelation    string = "relation"
)

// Property holds the payload of a single page property as returned by the
// Notion API. Only the payload field matching Type is expected to be set.
type Property struct {
	ID   string `json:"id,omitempty"`
	Type string `json:"type,omitempty"`

	Title       []RichText  `json:"title,omitempty"`
	RichText    []RichText  `json:"rich_text,omitempty"`
	Number      *float64    `json:"number,omitempty"`
	Checkbox    *bool       `json:"checkbox,omitempty"`
	Date        *DateValue  `json:"date,omitempty"`
	PhoneNumber *string     `json:"phone_number,omitempty"`
	Email       *string     `json:"email,omitempty"`
	Relation    []Reference `json:"relation,omitempty"`
}

// RichText is a single run of a title or rich text sequence
type RichText struct {
	Type      string  `json:"type,omitempty"`
	Text      *Text   `json:"text,omitempty"`
	PlainText *string `json:"plain_text,omitempty"`
	Href      *string `json:"href,omitempty"`
}

type Text struct {
	Content string `json:"content"`
	Link    *struct {
		URL string `json:"url"`
	} `json:"link,omitempty"`
}

type DateValue struct {
	Start    *string `json:"start,omitempty"`
	End      *string `json:"end,omitempty"`
	TimeZone *string `json:"time_zone,omitempty"`
}

// Reference points at another page through its id
type Reference struct {
	ID string `json:"id"`
}

// NewTextRun is a convenience function for creating a text run where the
// plain text equals the content, the way the Notion API echoes written text.
func NewTextRun(content string) RichText {
	plain := content
	return RichText{
		Type:      "text",
		Text:      &Text{Content: content},
		PlainText: &plain,
	}
}

// NewTitleProperty accepts a string and returns a title property holding a single run
func NewTitleProperty(value string) *Property {
	return &Property{
		Type:  TypeTitle,
		Title: []RichText{NewTextRun(value)},
	}
}

// NewRichTextProperty accepts a string and returns a rich text property holding a single run
func NewRichTextProperty(value string) *Property {
	return &Property{
		Type:     TypeRichText,
		RichText: []RichText{NewTextRun(value)},
	}
}

func NewNumberProperty(value *float64) *Property {
	return &Property{
		Type:   TypeNumber,
		Number: value,
	}
}

func NewCheckboxProperty(value bool) *Property {
	return &Property{
		Type:     TypeCheckbox,
		Checkbox: &value,
	}
}

// NewDateProperty creates a date property from a start timestamp in text form
func NewDateProperty(start *string) *Property {
	return &Property{
		Type: TypeDate,
		Date: &DateValue{Start: start},
	}
}

func NewPhoneNumberProperty(value *string) *Property {
	return &Property{
		Type:        TypePhoneNumber,
		PhoneNumber: value,
	}
}

func NewEmailProperty(value *string) *Property {
	return &Property{
		Type:  TypeEmail,
		Email: value,
	}
}

// NewRelationProperty accepts a list of page ids and returns a relation property.
// The relation sequence is never nil, so an empty list stays an empty relation.
func NewRelationProperty(ids []string) *Property {
	p := &Property{
		Type:     TypeRelation,
		Relation: make([]Reference, 0, len(ids)),
	}

	for _, id := range ids {
		p.Relation = append(p.Relation, Reference{ID: id})
	}

	return p
}
