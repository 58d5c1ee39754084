// Package services contains domain services that coordinate business
// logic across several order aggregates.
//
// ConsolidationPlanner batches same-zone pending orders into a
// consolidation set; AssignmentDispatcher binds a supplier to a
// consolidated batch and releases assigned batches for dispatch. Both
// validate the whole set before mutating any aggregate, so a failed
// precondition never leaves a batch half-advanced; the surrounding unit
// of work extends the same guarantee to the persisted rows.
package services
