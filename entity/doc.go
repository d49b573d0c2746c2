// Package entity provides metadata entries and the forward-reference
// resolver that flattens nested, possibly cyclic instance graphs into one
// entry per distinct identity.
//
// Instance objects reach the resolver through the Object contract: a stable
// identity, a class id, and an ordered field list. While an object is being
// extracted it is represented by a transient placeholder id so cyclic
// neighbors can reference it; once extraction completes, the placeholder is
// rewritten to the final id everywhere and discarded. Final output never
// contains placeholder ids.
package entity
