// Package domain contains shared building blocks used across entity
// sub-packages: sentinel errors, validation types, identity contracts,
// key generation, and domain event recording. Entity-family specifics
// (concrete categories, transition rules) live with the owning aggregate;
// the status lifecycle lives in the status package.
package domain
