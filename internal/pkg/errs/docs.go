// Package errs provides the error kinds shared by every layer of the parcel service.
//
// Each kind is a sentinel plus a struct carrying details:
//   - ValueIsInvalidError, ValueIsOutOfRangeError: malformed or out-of-range input
//   - ValueIsRequiredError: a required field is absent
//   - ObjectNotFoundError: a referenced entity does not exist
//   - ForbiddenError: the actor lacks the role or ownership for a mutation
//   - InvalidStateError, InvalidTransitionError: the lifecycle state rejects the operation
//   - DuplicateError: a natural key is already taken
//   - DependencyError: an external collaborator failed or timed out
//   - VersionIsInvalidError: a concurrent writer got there first
//
// Every struct implements Unwrap returning its sentinel, so callers classify with errors.Is
// and the HTTP adapter maps kinds to status codes in one place.
package errs
