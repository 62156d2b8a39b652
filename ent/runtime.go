// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/dchen/streaklog/ent/resultevent"
	"github.com/dchen/streaklog/ent/schema"
	"github.com/dchen/streaklog/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	resulteventMixin := schema.ResultEvent{}.Mixin()
	resulteventMixinFields0 := resulteventMixin[0].Fields()
	_ = resulteventMixinFields0
	resulteventFields := schema.ResultEvent{}.Fields()
	_ = resulteventFields
	// resulteventDescTimestamp is the schema descriptor for timestamp field.
	resulteventDescTimestamp := resulteventMixinFields0[1].Descriptor()
	// resultevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	resultevent.DefaultTimestamp = resulteventDescTimestamp.Default.(func() time.Time)
	// resulteventDescRecordID is the schema descriptor for record_id field.
	resulteventDescRecordID := resulteventFields[0].Descriptor()
	// resultevent.RecordIDValidator is a validator for the "record_id" field. It is called by the builders before save.
	resultevent.RecordIDValidator = resulteventDescRecordID.Validators[0].(func(string) error)
	// resulteventDescGameID is the schema descriptor for game_id field.
	resulteventDescGameID := resulteventFields[1].Descriptor()
	// resultevent.GameIDValidator is a validator for the "game_id" field. It is called by the builders before save.
	resultevent.GameIDValidator = resulteventDescGameID.Validators[0].(func(string) error)
	// resulteventDescGameName is the schema descriptor for game_name field.
	resulteventDescGameName := resulteventFields[2].Descriptor()
	// resultevent.GameNameValidator is a validator for the "game_name" field. It is called by the builders before save.
	resultevent.GameNameValidator = resulteventDescGameName.Validators[0].(func(string) error)
	// resulteventDescRawText is the schema descriptor for raw_text field.
	resulteventDescRawText := resulteventFields[6].Descriptor()
	// resultevent.RawTextValidator is a validator for the "raw_text" field. It is called by the builders before save.
	resultevent.RawTextValidator = resulteventDescRawText.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
