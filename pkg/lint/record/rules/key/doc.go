// Package key provides record-scope rules for key column naming.
// These rules cover the KN (Key Naming) governance category.
//
// Rules in this package:
//   - KN01: Primary and foreign key columns start with IDN_
//   - KN02: Foreign key columns name the specific table they reference
package key
