package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/diwise/notion-properties/pkg/notion/schema"
	"github.com/diwise/notion-properties/pkg/notion/types"
	"github.com/diwise/notion-properties/pkg/notion/types/updates"
)

const (
	NameProperty      string = "Name"
	NotesProperty     string = "Notes"
	EstimateProperty  string = "Estimate"
	DoneProperty      string = "Done"
	DueProperty       string = "Due"
	AssigneeProperty  string = "Assignee"
	ProjectProperty   string = "Project"
	BlockedByProperty string = "Blocked by"
)

// Schema describes the properties of a task database
var Schema *schema.Schema

var (
	name      schema.Accessor[string]
	notes     schema.Accessor[string]
	estimate  schema.Accessor[float64]
	done      schema.Accessor[bool]
	due       schema.Accessor[time.Time]
	assignee  schema.Accessor[string]
	project   schema.Accessor[string]
	blockedBy schema.Accessor[[]string]
)

func init() {
	var err error

	Schema, err = schema.New("Task",
		schema.Required(NameProperty, schema.KindTitle),
		schema.Optional(NotesProperty, schema.KindRichText),
		schema.Optional(EstimateProperty, schema.KindNumber),
		schema.Required(DoneProperty, schema.KindCheckbox),
		schema.Optional(DueProperty, schema.KindDate),
		schema.Optional(AssigneeProperty, schema.KindEmail),
		schema.Optional(ProjectProperty, schema.KindRelation),
		schema.Optional(BlockedByProperty, schema.KindRelationList),
	)
	must(err)

	name, err = schema.TitleField(Schema, NameProperty)
	must(err)
	notes, err = schema.RichTextField(Schema, NotesProperty)
	must(err)
	estimate, err = schema.NumberField(Schema, EstimateProperty)
	must(err)
	done, err = schema.CheckboxField(Schema, DoneProperty)
	must(err)
	due, err = schema.DateField(Schema, DueProperty)
	must(err)
	assignee, err = schema.EmailField(Schema, AssigneeProperty)
	must(err)
	project, err = schema.RelationField(Schema, ProjectProperty)
	must(err)
	blockedBy, err = schema.RelationListField(Schema, BlockedByProperty)
	must(err)
}

func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("invalid task schema: %s", err.Error()))
	}
}

// Task is the simplified form of a page in a task database. Optional
// properties without a value are nil.
type Task struct {
	ID        string
	Name      string
	Notes     *string
	Estimate  *float64
	Done      bool
	Due       *time.Time
	Assignee  *string
	Project   *string
	BlockedBy []string
}

type TaskDecoratorFunc func(t *Task)

func NewTask(taskName string, decorators ...TaskDecoratorFunc) Task {
	t := Task{Name: taskName}

	for _, decorator := range decorators {
		decorator(&t)
	}

	return t
}

func Notes(text string) TaskDecoratorFunc {
	return func(t *Task) { t.Notes = &text }
}

func Estimate(hours float64) TaskDecoratorFunc {
	return func(t *Task) { t.Estimate = &hours }
}

func Done() TaskDecoratorFunc {
	return func(t *Task) { t.Done = true }
}

func Due(when time.Time) TaskDecoratorFunc {
	return func(t *Task) { t.Due = &when }
}

func AssignedTo(email string) TaskDecoratorFunc {
	return func(t *Task) { t.Assignee = &email }
}

func PartOf(projectID string) TaskDecoratorFunc {
	return func(t *Task) { t.Project = &projectID }
}

func BlockedBy(taskIDs ...string) TaskDecoratorFunc {
	return func(t *Task) { t.BlockedBy = taskIDs }
}

// FromEntity validates e against the task schema and reads it into a Task
func FromEntity(ctx context.Context, e types.Entity) (Task, error) {
	if _, err := Schema.Project(ctx, e); err != nil {
		return Task{}, fmt.Errorf("failed to read task: %w", err)
	}

	t := Task{ID: e.ID()}

	t.Name, _ = name.Read(e)
	t.Done, _ = done.Read(e)
	t.Notes = optional(notes.Read(e))
	t.Estimate = optional(estimate.Read(e))
	t.Due = optional(due.Read(e))
	t.Assignee = optional(assignee.Read(e))
	t.Project = optional(project.Read(e))
	t.BlockedBy, _ = blockedBy.Read(e)

	return t, nil
}

func optional[T any](value T, ok bool) *T {
	if !ok {
		return nil
	}
	return &value
}

// Update returns the page update that stores every field of t. Nil optional
// fields clear the properties that can be cleared and are left out otherwise.
func (t Task) Update() *updates.PageUpdate {
	pu := updates.NewPageUpdate(
		updates.Set(NameProperty, name.Write(t.Name)),
		updates.Set(DoneProperty, done.Write(t.Done)),
		updates.Set(BlockedByProperty, blockedBy.Write(t.BlockedBy)),
	)

	if t.Notes != nil {
		pu.Set(NotesProperty, notes.Write(*t.Notes))
	}

	if t.Estimate != nil {
		pu.Set(EstimateProperty, estimate.Write(*t.Estimate))
	} else {
		cleared, _ := estimate.Clear()
		pu.Set(EstimateProperty, cleared)
	}

	if t.Due != nil {
		pu.Set(DueProperty, due.Write(*t.Due))
	}

	if t.Assignee != nil {
		pu.Set(AssigneeProperty, assignee.Write(*t.Assignee))
	} else {
		cleared, _ := assignee.Clear()
		pu.Set(AssigneeProperty, cleared)
	}

	if t.Project != nil {
		pu.Set(ProjectProperty, project.Write(*t.Project))
	}

	return pu
}
