package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/dictlint/pkg/core"
)

func resetCatalog() {
	catalog.mu.Lock()
	defer catalog.mu.Unlock()
	catalog.infos = make(map[string]core.RuleInfo)
}

func TestCatalog_RegisterAndGet(t *testing.T) {
	resetCatalog()
	RegisterInfo(core.RuleInfo{ID: "CAT01", Name: "first", Group: "table", Type: "record"})

	info, ok := GetRuleInfo("CAT01")
	require.True(t, ok)
	assert.Equal(t, "first", info.Name)
	assert.Equal(t, "record", info.Type)

	_, ok = GetRuleInfo("NOPE")
	assert.False(t, ok)
}

func TestCatalog_AllRulesSorted(t *testing.T) {
	resetCatalog()
	RegisterInfo(core.RuleInfo{ID: "CAT03", Group: "key", Type: "record"})
	RegisterInfo(core.RuleInfo{ID: "CAT01", Group: "table", Type: "record"})
	RegisterInfo(core.RuleInfo{ID: "CAT02", Group: "table", Type: "batch"})

	all := AllRules()

	require.Len(t, all, 3)
	assert.Equal(t, "CAT01", all[0].ID)
	assert.Equal(t, "CAT02", all[1].ID)
	assert.Equal(t, "CAT03", all[2].ID)
}

func TestCatalog_RulesByGroup(t *testing.T) {
	resetCatalog()
	RegisterInfo(core.RuleInfo{ID: "CAT02", Group: "table", Type: "batch"})
	RegisterInfo(core.RuleInfo{ID: "CAT01", Group: "table", Type: "record"})
	RegisterInfo(core.RuleInfo{ID: "CAT03", Group: "key", Type: "record"})

	table := RulesByGroup("table")

	require.Len(t, table, 2)
	assert.Equal(t, "CAT01", table[0].ID)
	assert.Equal(t, "CAT02", table[1].ID)
	assert.Empty(t, RulesByGroup("missing"))
}

func TestCatalog_ReRegisterReplaces(t *testing.T) {
	resetCatalog()
	RegisterInfo(core.RuleInfo{ID: "CAT01", Name: "old"})
	RegisterInfo(core.RuleInfo{ID: "CAT01", Name: "new"})

	info, ok := GetRuleInfo("CAT01")
	require.True(t, ok)
	assert.Equal(t, "new", info.Name)
	assert.Len(t, AllRules(), 1)
}
