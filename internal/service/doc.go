// Package service contains the task assignment engine: creating tasks,
// filtering them for the daily view, changing priority, commenting and
// reassigning work by customer reference.
//
// Every mutation and the audit entry describing it are applied in one call
// to store.TaskStore.Update, so readers see both or neither. Activity events
// are published only after the change is stored.
//
// Error Handling:
//   - Expected conditions are sentinel errors (ErrTaskNotFound,
//     ErrNoActiveTask, ErrStaffNotFound) checked with errors.Is
//   - Invalid input is returned as *domain.ValidationError
//   - Anything else is wrapped in *TaskServiceError
package service
