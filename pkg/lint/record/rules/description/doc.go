// Package description provides record-scope rules for descriptions and
// English names. These rules cover the DS (Description) governance category.
//
// Rules in this package:
//   - DS01: Description spelling, checked through the spelling collaborator
//   - DS02: Columns carry a description
//   - DS03: English names use title case with lowercase stopwords
package description
