// Package table provides record-scope rules for table naming.
// These rules cover the TN (Table Naming) governance category.
//
// Rules in this package:
//   - TN01: Table names start with the T_ prefix
//   - TN02: Table names stay within the length limit
//   - TN03: Table names end with an approved suffix category
//   - TN04: Table name subjects are singular
//   - TN05: English names map onto table name segments in order
package table
