package ports

type PlannerMetrics interface {
	RecordPlanned()
	RecordNoPlan()
	RecordExhausted()
	RecordFailure()
}
