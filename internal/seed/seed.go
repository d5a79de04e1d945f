package seed

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"task-manager-api.com/task-manager-api/internal/constants"
	model "task-manager-api.com/task-manager-api/internal/models"
)

func ptr[T any](v T) *T { return &v }

// Run loads the sample dataset exactly once; it is a no-op as soon as any
// user row exists.
func Run(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("check existing users: %w", err)
	}
	if count > 0 {
		return nil
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		john := &model.User{
			Username: "john_doe",
			Email:    "john@example.com",
			FullName: ptr("John Doe"),
			IsActive: true,
		}
		jane := &model.User{
			Username: "jane_smith",
			Email:    "jane@example.com",
			FullName: ptr("Jane Smith"),
			IsActive: true,
		}
		if err := tx.Create(john).Error; err != nil {
			return err
		}
		if err := tx.Create(jane).Error; err != nil {
			return err
		}

		webApp := &model.Project{
			Name:        "Web Application",
			Description: ptr("Building a modern web application"),
			IsActive:    true,
			OwnerID:     &john.ID,
		}
		mobileApp := &model.Project{
			Name:        "Mobile App",
			Description: ptr("Creating a mobile application"),
			IsActive:    true,
			OwnerID:     &jane.ID,
		}
		if err := tx.Create(webApp).Error; err != nil {
			return err
		}
		if err := tx.Create(mobileApp).Error; err != nil {
			return err
		}

		frontend := &model.Tag{Name: "Frontend", Color: "#3498db"}
		backend := &model.Tag{Name: "Backend", Color: "#e74c3c"}
		database := &model.Tag{Name: "Database", Color: "#2ecc71"}
		bugfix := &model.Tag{Name: "Bug Fix", Color: "#f39c12"}
		for _, tag := range []*model.Tag{frontend, backend, database, bugfix} {
			if err := tx.Create(tag).Error; err != nil {
				return err
			}
		}

		auth := &model.Task{
			Title:          "Create user authentication",
			Description:    ptr("Implement JWT authentication for the application"),
			Status:         constants.StatusInProgress,
			Priority:       constants.PriorityHigh,
			ProjectID:      &webApp.ID,
			AssigneeID:     &john.ID,
			EstimatedHours: ptr(8.0),
			Tags:           []model.Tag{*backend, *database},
		}
		if err := tx.Create(auth).Error; err != nil {
			return err
		}

		schema := &model.Task{
			Title:          "Design database schema",
			Description:    ptr("Create the database schema for the application"),
			Status:         constants.StatusCompleted,
			Priority:       constants.PriorityMedium,
			IsCompleted:    true,
			ProjectID:      &webApp.ID,
			AssigneeID:     &jane.ID,
			EstimatedHours: ptr(4.0),
			ActualHours:    ptr(3.5),
			Tags:           []model.Tag{*database},
		}
		if err := tx.Create(schema).Error; err != nil {
			return err
		}

		components := &model.Task{
			Title:          "Build React components",
			Description:    ptr("Create reusable React components for the UI"),
			Status:         constants.StatusPending,
			Priority:       constants.PriorityMedium,
			ProjectID:      &webApp.ID,
			AssigneeID:     &john.ID,
			ParentTaskID:   &auth.ID,
			EstimatedHours: ptr(12.0),
			Tags:           []model.Tag{*frontend},
		}
		if err := tx.Create(components).Error; err != nil {
			return err
		}

		comments := []*model.Comment{
			{
				Content:  "Great progress on this task!",
				TaskID:   &auth.ID,
				AuthorID: &jane.ID,
			},
			{
				Content:  "Schema looks good, ready for implementation",
				TaskID:   &schema.ID,
				AuthorID: &john.ID,
			},
		}
		for _, comment := range comments {
			if err := tx.Create(comment).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("seed sample data: %w", err)
	}

	log.Println("database initialized with sample data")
	return nil
}
