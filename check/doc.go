// Package check validates resolved metadata entries against their declared
// schema. Cardinality problems and dangling references accumulate into a
// Report rather than aborting the build; callers decide how strict to be.
package check
