package store

import (
	"context"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	entschema "github.com/abhisek/mathplay/ent/schema"
)

// Table names.
const (
	playResultsTable  = "play_results"
	answerEventsTable = "answer_events"
)

// tables derives the SQL tables from the ent schema definitions, so the
// schema package stays the single source of column names and types.
func tables() []*schema.Table {
	return []*schema.Table{
		tableFor(playResultsTable, entschema.PlayResult{}),
		tableFor(answerEventsTable, entschema.AnswerEvent{}),
	}
}

// tableFor builds a table with an auto-increment id followed by the
// mixin fields and then the schema's own fields.
func tableFor(name string, s ent.Interface) *schema.Table {
	id := &schema.Column{Name: "id", Type: field.TypeInt, Increment: true}
	t := &schema.Table{
		Name:       name,
		Columns:    []*schema.Column{id},
		PrimaryKey: []*schema.Column{id},
	}

	var fields []ent.Field
	var indexes []ent.Index
	for _, m := range s.Mixin() {
		fields = append(fields, m.Fields()...)
		indexes = append(indexes, m.Indexes()...)
	}
	fields = append(fields, s.Fields()...)
	indexes = append(indexes, s.Indexes()...)

	byName := make(map[string]*schema.Column, len(fields))
	for _, f := range fields {
		d := f.Descriptor()
		c := &schema.Column{
			Name:     d.Name,
			Type:     d.Info.Type,
			Unique:   d.Unique,
			Nullable: d.Optional || d.Nillable,
		}
		t.Columns = append(t.Columns, c)
		byName[d.Name] = c
	}

	for _, i := range indexes {
		d := i.Descriptor()
		idx := &schema.Index{
			Name:   name + "_" + strings.Join(d.Fields, "_"),
			Unique: d.Unique,
		}
		for _, f := range d.Fields {
			idx.Columns = append(idx.Columns, byName[f])
		}
		t.Indexes = append(t.Indexes, idx)
	}
	return t
}

// migrate creates or upgrades the tables.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return err
	}
	return m.Create(ctx, tables()...)
}
