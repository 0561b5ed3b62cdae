// Package cache keeps the master dictionary in memory so request handlers
// never hit the database for code lookups.
package cache

import (
	"sync"

	"github.com/printline/printline-manager/internal/dependency"
	"github.com/printline/printline-manager/internal/entity"
)

type DictionaryCache struct {
	mu    sync.RWMutex
	dict  *entity.DictionaryInfo
	index map[entity.MasterCategory]map[string]entity.MasterItem
}

func New(di *entity.DictionaryInfo) dependency.Dictionary {
	c := &DictionaryCache{}
	c.Refresh(di)
	return c
}

func (c *DictionaryCache) GetDict() *entity.DictionaryInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dict
}

func (c *DictionaryCache) GetMasterItem(category entity.MasterCategory, code string) (entity.MasterItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	byCode, ok := c.index[category]
	if !ok {
		return entity.MasterItem{}, false
	}
	item, found := byCode[code]
	return item, found
}

// Refresh swaps the cached dictionary wholesale. Admin master edits call
// this after writing through to the store.
func (c *DictionaryCache) Refresh(di *entity.DictionaryInfo) {
	index := make(map[entity.MasterCategory]map[string]entity.MasterItem, len(di.Items))
	for category, items := range di.Items {
		byCode := make(map[string]entity.MasterItem, len(items))
		for _, item := range items {
			byCode[item.Code] = item
		}
		index[category] = byCode
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.dict = di
	c.index = index
}
