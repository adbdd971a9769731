// Package rules provides the batch-scope governance rules: checks that only
// make sense over the complete record set.
//
// Rules in this package:
//   - BD01: Descriptions are unique across differently named columns
//   - BN01: Every CDE column has a NAM or TXT counterpart
//   - BK01: Foreign keys sharing a numeric suffix reference distinct targets
//   - BR01: Table names are unique within the batch
package rules
