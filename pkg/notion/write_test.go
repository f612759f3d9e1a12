package notion

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/diwise/notion-properties/pkg/notion/types"
	"github.com/diwise/notion-properties/pkg/notion/types/entities"
	"github.com/diwise/notion-properties/pkg/notion/types/updates"
	"github.com/google/uuid"
	"github.com/matryer/is"
)

func TestWriteTitle(t *testing.T) {
	is := is.New(t)
	is.Equal(marshal(is, WriteTitle("Test Title")), `{"title":[{"text":{"content":"Test Title"}}],"type":"title"}`)
}

func TestWriteRichText(t *testing.T) {
	is := is.New(t)
	is.Equal(marshal(is, WriteRichText("Test Rich Text")), `{"rich_text":[{"text":{"content":"Test Rich Text"}}],"type":"rich_text"}`)
}

func TestWriteNumber(t *testing.T) {
	is := is.New(t)
	n := 42.5
	is.Equal(marshal(is, WriteNumber(&n)), `{"number":42.5,"type":"number"}`)
}

func TestWriteNumberCanClearTheProperty(t *testing.T) {
	is := is.New(t)
	is.Equal(marshal(is, WriteNumber(nil)), `{"number":null,"type":"number"}`)
}

func TestWriteBoolean(t *testing.T) {
	is := is.New(t)
	is.Equal(marshal(is, WriteBoolean(true)), `{"checkbox":true,"type":"checkbox"}`)
	is.Equal(marshal(is, WriteBoolean(false)), `{"checkbox":false,"type":"checkbox"}`)
}

func TestWriteDateTimeStart(t *testing.T) {
	is := is.New(t)
	d := time.Date(2023, 1, 1, 12, 30, 15, 250000000, time.UTC)
	is.Equal(marshal(is, WriteDateTimeStart(d)), `{"date":{"start":"2023-01-01T12:30:15.250Z"},"type":"date"}`)
}

func TestWriteDateTimeStartConvertsToUTC(t *testing.T) {
	is := is.New(t)
	cet := time.FixedZone("CET", 60*60)
	d := time.Date(2023, 1, 1, 0, 0, 0, 0, cet)

	u := WriteDateTimeStart(d)
	is.Equal(*u.Date.Start, "2022-12-31T23:00:00.000Z")

	decoded, err := time.Parse(time.RFC3339Nano, *u.Date.Start)
	is.NoErr(err)
	is.True(decoded.Equal(d)) // decoding should give back the same instant
}

func TestWritePhoneNumber(t *testing.T) {
	is := is.New(t)
	phone := "+46 60 19 10 00"
	is.Equal(marshal(is, WritePhoneNumber(&phone)), `{"phone_number":"+46 60 19 10 00","type":"phone_number"}`)
	is.Equal(marshal(is, WritePhoneNumber(nil)), `{"phone_number":null,"type":"phone_number"}`)
}

func TestWriteEMail(t *testing.T) {
	is := is.New(t)
	email := "test@example.com"
	is.Equal(marshal(is, WriteEMail(&email)), `{"email":"test@example.com","type":"email"}`)
	is.Equal(marshal(is, WriteEMail(nil)), `{"email":null,"type":"email"}`)
}

func TestWriteSingleRelation(t *testing.T) {
	is := is.New(t)
	is.Equal(marshal(is, WriteSingleRelation("a")), `{"relation":[{"id":"a"}],"type":"relation"}`)
}

func TestWriteRelationIDList(t *testing.T) {
	is := is.New(t)
	is.Equal(marshal(is, WriteRelationIDList([]string{"a", "b"})), `{"relation":[{"id":"a"},{"id":"b"}],"type":"relation"}`)
}

func TestWriteEmptyRelationIDList(t *testing.T) {
	is := is.New(t)

	u := WriteRelationIDList([]string{})
	is.True(u.Relation != nil)
	is.Equal(len(u.Relation), 0)
	is.Equal(marshal(is, u), `{"relation":[],"type":"relation"}`)

	is.Equal(marshal(is, WriteRelationIDList(nil)), `{"relation":[],"type":"relation"}`)
}

func TestWritersReportTheirType(t *testing.T) {
	is := is.New(t)
	n := 1.0

	is.Equal(WriteTitle("x").Type(), "title")
	is.Equal(WriteRichText("x").Type(), "rich_text")
	is.Equal(WriteNumber(&n).Type(), "number")
	is.Equal(WriteBoolean(true).Type(), "checkbox")
	is.Equal(WriteDateTimeStart(time.Now()).Type(), "date")
	is.Equal(WritePhoneNumber(nil).Type(), "phone_number")
	is.Equal(WriteEMail(nil).Type(), "email")
	is.Equal(WriteSingleRelation("x").Type(), "relation")
	is.Equal(WriteRelationIDList(nil).Type(), "relation")
}

func TestRoundTrip(t *testing.T) {
	is := is.New(t)

	number := 17.2
	phone := "+46 70 000 00 00"
	email := "someone@example.com"
	start := time.Date(2022, 2, 13, 21, 33, 42, 123000000, time.UTC)
	owner := uuid.NewString()
	blockers := []string{uuid.NewString(), uuid.NewString(), uuid.NewString()}

	e := fromUpdates(is,
		updates.Set("title", WriteTitle("Test Title")),
		updates.Set("richText", WriteRichText("Test Rich Text")),
		updates.Set("number", WriteNumber(&number)),
		updates.Set("boolean", WriteBoolean(true)),
		updates.Set("dateTimeStart", WriteDateTimeStart(start)),
		updates.Set("phoneNumber", WritePhoneNumber(&phone)),
		updates.Set("email", WriteEMail(&email)),
		updates.Set("singleRelation", WriteSingleRelation(owner)),
		updates.Set("relationIdList", WriteRelationIDList(blockers)),
		updates.Set("noRelations", WriteRelationIDList([]string{})),
	)

	title, err := ReadTitleOrFail(e, "title")
	is.NoErr(err)
	is.Equal(title, "Test Title")

	text, err := ReadRichTextOrFail(e, "richText")
	is.NoErr(err)
	is.Equal(text, "Test Rich Text")

	n, err := ReadNumberOrFail(e, "number")
	is.NoErr(err)
	is.Equal(n, number)

	checked, err := ReadBooleanOrFail(e, "boolean")
	is.NoErr(err)
	is.True(checked)

	d, err := ReadDateTimeStartOrFail(e, "dateTimeStart")
	is.NoErr(err)
	is.True(d.Equal(start))

	p, err := ReadPhoneNumberOrFail(e, "phoneNumber")
	is.NoErr(err)
	is.Equal(p, phone)

	m, err := ReadEMailOrFail(e, "email")
	is.NoErr(err)
	is.Equal(m, email)

	id, err := ReadSingleRelationOrFail(e, "singleRelation")
	is.NoErr(err)
	is.Equal(id, owner)

	ids, err := ReadRelationIDListOrFail(e, "relationIdList")
	is.NoErr(err)
	is.Equal(ids, blockers)

	ids, err = ReadRelationIDListOrFail(e, "noRelations")
	is.NoErr(err)
	is.Equal(len(ids), 0)
}

func TestRoundTripOfClearedValues(t *testing.T) {
	is := is.New(t)

	e := fromUpdates(is,
		updates.Set("number", WriteNumber(nil)),
		updates.Set("phoneNumber", WritePhoneNumber(nil)),
		updates.Set("email", WriteEMail(nil)),
	)

	_, ok := ReadNumber(e, "number")
	is.True(!ok)
	_, ok = ReadPhoneNumber(e, "phoneNumber")
	is.True(!ok)
	_, ok = ReadEMail(e, "email")
	is.True(!ok)
}

func TestRoundTripThroughJSON(t *testing.T) {
	is := is.New(t)

	e := fromUpdates(is,
		updates.Set("title", WriteTitle("Hartungviken")),
		updates.Set("relationIdList", WriteRelationIDList([]string{"a", "b"})),
	)

	b, err := json.Marshal(e)
	is.NoErr(err)

	decoded, err := entities.NewFromJSON(b)
	is.NoErr(err)
	is.Equal(decoded.ID(), e.ID())

	title, ok := ReadTitle(decoded, "title")
	is.True(ok)
	is.Equal(title, "Hartungviken")

	ids, ok := ReadRelationIDList(decoded, "relationIdList")
	is.True(ok)
	is.Equal(ids, []string{"a", "b"})
}

func fromUpdates(is *is.I, decorators ...updates.PageUpdateDecoratorFunc) types.Entity {
	e, err := entities.FromUpdates(updates.NewPageUpdate(decorators...))
	is.NoErr(err)
	return e
}

func marshal(is *is.I, u updates.PropertyUpdate) string {
	b, err := json.Marshal(u)
	is.NoErr(err)
	return string(b)
}
