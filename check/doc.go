// Package check contains the internal acceptability rules for formrelay.
// Each type implements the rule interface defined in filter.go.
// These types can be used directly, but the recommended approach is
// to use the builder API from the github.com/optimode/formrelay package.
package check
