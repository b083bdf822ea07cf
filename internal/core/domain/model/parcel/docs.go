// Package parcel contains the Parcel aggregate and its lifecycle.
//
// A parcel is booked Pending, assigned to a driver (On The Way) and ends
// Delivered, Returned or Cancelled. Legal moves live in one transition table
// (see Status); the aggregate adds the state guards that sit around it:
// edits only while Pending, no assignment once terminal, owner-only cancel.
//
// Role checks are not made here. Callers consult the access policy first,
// which keeps the aggregate reusable from any entry point.
package parcel
