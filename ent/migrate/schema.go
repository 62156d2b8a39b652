// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ResultEventsColumns holds the columns for the "result_events" table.
	ResultEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "record_id", Type: field.TypeString, Unique: true},
		{Name: "game_id", Type: field.TypeString},
		{Name: "game_name", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt, Nullable: true},
		{Name: "max_attempts", Type: field.TypeInt},
		{Name: "completed", Type: field.TypeBool},
		{Name: "raw_text", Type: field.TypeString, Size: 2147483647},
		{Name: "extras", Type: field.TypeJSON},
	}
	// ResultEventsTable holds the schema information for the "result_events" table.
	ResultEventsTable = &schema.Table{
		Name:       "result_events",
		Columns:    ResultEventsColumns,
		PrimaryKey: []*schema.Column{ResultEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "resultevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ResultEventsColumns[1]},
			},
			{
				Name:    "resultevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ResultEventsColumns[2]},
			},
			{
				Name:    "resultevent_game_id",
				Unique:  false,
				Columns: []*schema.Column{ResultEventsColumns[4]},
			},
			{
				Name:    "resultevent_game_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ResultEventsColumns[4], ResultEventsColumns[2]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ResultEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
