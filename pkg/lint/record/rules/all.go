package rules

// Import all rule subpackages to register them with the global registry.
// This file triggers all init() functions in the rule packages.
import (
	// Import rule categories - each registers its rules via init()
	_ "github.com/leapstack-labs/dictlint/pkg/lint/record/rules/column"
	_ "github.com/leapstack-labs/dictlint/pkg/lint/record/rules/description"
	_ "github.com/leapstack-labs/dictlint/pkg/lint/record/rules/key"
	_ "github.com/leapstack-labs/dictlint/pkg/lint/record/rules/malformed"
	_ "github.com/leapstack-labs/dictlint/pkg/lint/record/rules/table"
	_ "github.com/leapstack-labs/dictlint/pkg/lint/record/rules/typing"
)
