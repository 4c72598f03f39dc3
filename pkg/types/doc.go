// Package types defines the entity model, the Store interface, and the
// standard errors for the storyboard tracker.
// See docs/ARCHITECTURE.md § Entity Model.
package types
