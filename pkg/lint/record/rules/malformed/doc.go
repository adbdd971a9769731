// Package malformed provides the RC (Record Completeness) rules for
// structurally broken records. A record the other rules cannot even evaluate
// is reported here instead of aborting the batch; every naming rule guards
// on blank names so these are the only violations such a record produces.
package malformed
