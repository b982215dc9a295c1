package task

import "github.com/revpilot/core/internal/models"

type CreateTaskDTO struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	Priority    models.TaskPriority `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DueDate     *string             `json:"due_date"`
	AssignedTo  *string             `json:"assigned_to"`
	HotelID     *string             `json:"hotel_id"`
	EventID     *string             `json:"event_id"`
}

type UpdateTaskDTO struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Status      *models.TaskStatus   `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	Priority    *models.TaskPriority `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DueDate     *string              `json:"due_date"`
	AssignedTo  *string              `json:"assigned_to"`
	HotelID     *string              `json:"hotel_id"`
	EventID     *string              `json:"event_id"`
}

type ListFilter struct {
	Status     models.TaskStatus
	Priority   models.TaskPriority
	AssignedTo string
	HotelID    string
}
