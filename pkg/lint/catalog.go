package lint

import (
	"sort"
	"sync"

	"github.com/leapstack-labs/dictlint/pkg/core"
)

// catalog is the unified registry of every rule across both scopes. The
// scope registries push their definitions here at Register time, so catalog
// consumers (the rules command, the HTTP API) never import the scope
// packages.
var catalog = &Catalog{infos: make(map[string]core.RuleInfo)}

// Catalog provides unified read access to all registered rules.
type Catalog struct {
	mu    sync.RWMutex
	infos map[string]core.RuleInfo
}

// RegisterInfo adds a rule's catalog entry. Called by the scope registries,
// not by rule files directly.
func RegisterInfo(info core.RuleInfo) {
	catalog.mu.Lock()
	defer catalog.mu.Unlock()
	catalog.infos[info.ID] = info
}

// AllRules returns every registered rule sorted by ID.
func AllRules() []core.RuleInfo {
	catalog.mu.RLock()
	defer catalog.mu.RUnlock()

	infos := make([]core.RuleInfo, 0, len(catalog.infos))
	for _, info := range catalog.infos {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// GetRuleInfo returns one rule's catalog entry by ID.
func GetRuleInfo(id string) (core.RuleInfo, bool) {
	catalog.mu.RLock()
	defer catalog.mu.RUnlock()
	info, ok := catalog.infos[id]
	return info, ok
}

// RulesByGroup returns the catalog entries of one group sorted by ID.
func RulesByGroup(group string) []core.RuleInfo {
	catalog.mu.RLock()
	defer catalog.mu.RUnlock()

	var infos []core.RuleInfo
	for _, info := range catalog.infos {
		if info.Group == group {
			infos = append(infos, info)
		}
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}
