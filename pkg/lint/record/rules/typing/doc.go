// Package typing provides record-scope rules for column data types.
// These rules cover the TP (Type & Precision) governance category.
//
// Rules in this package:
//   - TP01: NUMBER and VARCHAR columns declare a precision
//   - TP02: Columns declare their nullability
//   - TP03: Data types match what the classword promises
package typing
