package models

import "time"

// TaskStatus represents the workflow state of a task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskCancelled  TaskStatus = "cancelled"
)

// TaskPriority represents task urgency.
type TaskPriority string

const (
	TaskLow    TaskPriority = "low"
	TaskMedium TaskPriority = "medium"
	TaskHigh   TaskPriority = "high"
	TaskUrgent TaskPriority = "urgent"
)

// TaskModel represents a revenue-management work item.
type TaskModel struct {
	Base
	Title       string       `json:"title"        gorm:"not null"`
	Description string       `json:"description"  gorm:"type:text"`
	Status      TaskStatus   `json:"status"       gorm:"default:pending;index"`
	Priority    TaskPriority `json:"priority"     gorm:"default:medium;index"`
	DueDate     *time.Time   `json:"due_date"     gorm:"index"`
	AssignedTo  *string      `json:"assigned_to"  gorm:"index"`
	HotelID     *string      `json:"hotel_id"     gorm:"index"`
	EventID     *string      `json:"event_id"     gorm:"index"`
	CompletedAt *time.Time   `json:"completed_at"`
}

func (TaskModel) TableName() string { return "tasks" }
