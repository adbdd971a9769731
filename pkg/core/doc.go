// Package core defines the shared language of the DictLint system.
//
// This package contains:
//   - Domain entities (TableRecord, ColumnRecord, Violation, Report)
//   - Enumerations (Severity, DataType, Nullability, SuffixCategory)
//   - Configuration types (LintConfig, RuleOptions)
//   - Rule metadata DTOs (RuleInfo)
//
// The Golden Rule: pkg/core imports ONLY the stdlib.
// All other packages depend on core, not the reverse.
package core
