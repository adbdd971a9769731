// Package column provides record-scope rules for column naming.
// These rules cover the CN (Column Naming) governance category.
//
// Rules in this package:
//   - CN01: Column names stay within the length limit
//   - CN02: Column names start with an approved classword
//   - CN03: Long English words appear as their approved abbreviation
//   - CN04: Column name subjects are singular
//   - CN05: Every column name segment traces to the vocabulary
package column
