// Package kernel holds the value objects shared across parcel, rating and payment aggregates:
// UUID identifiers, the GeoPoint delivery pin, and the Actor/Role pair that every
// mutating operation receives from the identity layer.
package kernel
