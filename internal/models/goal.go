package models

import (
	"time"
)

// GoalStatus is the lifecycle state of a savings goal. The only automatic
// transition is active/paused -> completed once current reaches target;
// completed never reverts, even if current is later edited below target.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalPaused    GoalStatus = "paused"
)

type Goal struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"index:idx_goals_user_status" json:"user_id"`
	User          User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Name          string     `gorm:"size:200" json:"name"`
	Description   string     `json:"description"`
	TargetAmount  float64    `gorm:"type:decimal(10,2)" json:"target_amount"`
	CurrentAmount float64    `gorm:"type:decimal(10,2);default:0" json:"current_amount"`
	TargetDate    *string    `gorm:"size:10" json:"target_date,omitempty"`
	Status        GoalStatus `gorm:"size:20;default:active;index:idx_goals_user_status" json:"status"`
	Icon          string     `gorm:"size:50;default:🎯" json:"icon"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
