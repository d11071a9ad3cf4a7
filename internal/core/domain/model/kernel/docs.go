// Package kernel contains the shared building blocks of the domain model:
// the UUID identifier value object, the Money value object with its
// non-negative two-decimal invariant, and the ConstructorGuard used to
// enforce constructor-only creation of domain objects.
//
// Everything in this package is immutable and safe for concurrent use.
package kernel
