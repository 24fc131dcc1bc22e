// Package activity is a local journal of dashboard actions. Every generate,
// publish, create, and delete records its outcome here so the dashboard can
// show what happened recently even though the backend owns the actual data.
package activity

import "time"

// Action names recorded in the journal.
const (
	ActionGenerate      = "generate"
	ActionPublish       = "publish"
	ActionCreateWebsite = "create_website"
	ActionDeleteWebsite = "delete_website"
	ActionDeletePost    = "delete_post"
)

// Entry is one journaled action outcome.
type Entry struct {
	ID        int64
	Action    string
	Target    string // human-readable subject, e.g. a post title or website name
	OK        bool
	Message   string
	Timestamp time.Time
}
