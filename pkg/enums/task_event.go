package enums

// TaskEventType identifies task lifecycle events published on Pub/Sub.
type TaskEventType string

const (
	TaskEventCompleted TaskEventType = "task.completed"
)

func (t TaskEventType) IsValid() bool {
	return t == TaskEventCompleted
}
