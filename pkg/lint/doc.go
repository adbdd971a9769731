// Package lint is the rule framework behind the dictionary validators: run
// configuration (disabling rules, overriding severities, rule options),
// rule metadata, and report assembly.
//
// Rules themselves live in two scopes beneath this package:
//
//   - lint/record: rules that see one table record and its columns
//   - lint/batch: rules that see the whole batch after record work finishes
//
// Both scopes register their rules in package-level registries from init()
// functions; importing a rules package is what puts its rules in the
// catalog.
package lint
