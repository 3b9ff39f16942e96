package constants

// NATS Subjects
const (
	// Order lifecycle
	SubjectOrderStatusChanged = "order.status.changed"
	SubjectOrderETAUpdated    = "order.eta.updated"
	SubjectOrderPosition      = "order.position.updated"

	// Dispatch
	SubjectAssignmentRequested = "order.assignment.requested"
	SubjectOperatorAlert       = "dispatch.operator.alert"

	// Driver pool
	SubjectDriverRelease = "driver.release.requested"

	// Loyalty
	SubjectLoyaltyAccrual = "loyalty.accrual.requested"

	// Location tracker
	SubjectLocationUpdate = "location.update"
)
