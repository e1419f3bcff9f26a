package model

import "time"

type Layout struct {
	LayoutID    string `gorm:"primaryKey;column:layout_id"`
	Name        string
	GridSize    int32
	CollectionX int32
	CollectionY int32
	Shelves     []byte `gorm:"type:jsonb"`
	Obstacles   []byte `gorm:"type:jsonb"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Layout) TableName() string { return "layouts" }

type PlanExecution struct {
	ExecutionID string `gorm:"primaryKey;column:execution_id"`
	LayoutID    string `gorm:"index;column:layout_id"`
	GoalItems   []byte `gorm:"type:jsonb"`
	ResultCode  string
	Iterations  int32
	TotalCost   int32
	PlannedAt   time.Time
}

func (PlanExecution) TableName() string { return "plan_executions" }
