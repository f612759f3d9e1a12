package updates

import (
	"encoding/json"
	"sort"
)

// PropertyUpdate is a single entry in the properties object of a page update request
type PropertyUpdate interface {
	Type() string
}

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

type TextRun struct {
	Text struct {
		Content string `json:"content"`
	} `json:"text"`
}

func newTextRun(content string) TextRun {
	run := TextRun{}
	run.Text.Content = content
	return run
}

type Reference struct {
	ID string `json:"id"`
}

type TitleUpdate struct {
	Title []TextRun `json:"title"`
	Type_ string    `json:"type"`
}

func (u TitleUpdate) Type() string {
	return u.Type_
}

// NewTitleUpdate wraps value into a title holding a single text run
func NewTitleUpdate(value string) TitleUpdate {
	return TitleUpdate{
		Title: []TextRun{newTextRun(value)},
		Type_: TypeTitle,
	}
}

type RichTextUpdate struct {
	RichText []TextRun `json:"rich_text"`
	Type_    string    `json:"type"`
}

func (u RichTextUpdate) Type() string {
	return u.Type_
}

// NewRichTextUpdate wraps value into a rich text holding a single text run
func NewRichTextUpdate(value string) RichTextUpdate {
	return RichTextUpdate{
		RichText: []TextRun{newTextRun(value)},
		Type_:    TypeRichText,
	}
}

// NumberUpdate clears the property when Number is nil
type NumberUpdate struct {
	Number *float64 `json:"number"`
	Type_  string   `json:"type"`
}

func (u NumberUpdate) Type() string {
	return u.Type_
}

func NewNumberUpdate(value *float64) NumberUpdate {
	return NumberUpdate{Number: value, Type_: TypeNumber}
}

type CheckboxUpdate struct {
	Checkbox bool   `json:"checkbox"`
	Type_    string `json:"type"`
}

func (u CheckboxUpdate) Type() string {
	return u.Type_
}

func NewCheckboxUpdate(value bool) CheckboxUpdate {
	return CheckboxUpdate{Checkbox: value, Type_: TypeCheckbox}
}

type DateUpdate struct {
	Date struct {
		Start *string `json:"start"`
	} `json:"date"`
	Type_ string `json:"type"`
}

func (u DateUpdate) Type() string {
	return u.Type_
}

// NewDateUpdate accepts an already encoded start timestamp, or nil to clear the date
func NewDateUpdate(start *string) DateUpdate {
	u := DateUpdate{Type_: TypeDate}
	u.Date.Start = start
	return u
}

type PhoneNumberUpdate struct {
	PhoneNumber *string `json:"phone_number"`
	Type_       string  `json:"type"`
}

func (u PhoneNumberUpdate) Type() string {
	return u.Type_
}

func NewPhoneNumberUpdate(value *string) PhoneNumberUpdate {
	return PhoneNumberUpdate{PhoneNumber: value, Type_: TypePhoneNumber}
}

type EmailUpdate struct {
	Email *string `json:"email"`
	Type_ string  `json:"type"`
}

func (u EmailUpdate) Type() string {
	return u.Type_
}

func NewEmailUpdate(value *string) EmailUpdate {
	return EmailUpdate{Email: value, Type_: TypeEmail}
}

// RelationUpdate replaces the full list of related pages
type RelationUpdate struct {
	Relation []Reference `json:"relation"`
	Type_    string      `json:"type"`
}

func (u RelationUpdate) Type() string {
	return u.Type_
}

// IDs returns the related page ids in order
func (u RelationUpdate) IDs() []string {
	ids := make([]string, 0, len(u.Relation))
	for _, r := range u.Relation {
		ids = append(ids, r.ID)
	}
	return ids
}

// NewRelationUpdate maps each id to a reference, keeping order and length.
// A nil or empty list produces an empty relation, never a null one.
func NewRelationUpdate(ids []string) RelationUpdate {
	u := RelationUpdate{
		Relation: make([]Reference, 0, len(ids)),
		Type_:    TypeRelation,
	}

	for _, id := range ids {
		u.Relation = append(u.Relation, Reference{ID: id})
	}

	return u
}

// PageUpdate is the body of a page update request
type PageUpdate struct {
	properties map[string]PropertyUpdate
}

type PageUpdateDecoratorFunc func(pu *PageUpdate)

func NewPageUpdate(decorators ...PageUpdateDecoratorFunc) *PageUpdate {
	pu := &PageUpdate{
		properties: map[string]PropertyUpdate{},
	}

	for _, decorator := range decorators {
		decorator(pu)
	}

	return pu
}

func Set(name string, update PropertyUpdate) PageUpdateDecoratorFunc {
	return func(pu *PageUpdate) {
		pu.properties[name] = update
	}
}

func (pu *PageUpdate) Set(name string, update PropertyUpdate) {
	pu.properties[name] = update
}

func (pu *PageUpdate) Get(name string) (PropertyUpdate, bool) {
	u, ok := pu.properties[name]
	return u, ok
}

func (pu *PageUpdate) Len() int {
	return len(pu.properties)
}

// ForEach visits the updates ordered by property name
func (pu *PageUpdate) ForEach(callback func(name string, update PropertyUpdate)) {
	names := make([]string, 0, len(pu.properties))
	for name := range pu.properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		callback(name, pu.properties[name])
	}
}

func (pu *PageUpdate) MarshalJSON() ([]byte, error) {
	contents := map[string]any{
		"properties": pu.properties,
	}

	return json.Marshal(&contents)
}
