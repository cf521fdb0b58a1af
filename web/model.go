package web

import "sync"

type IndexModel struct {
	Languages []LanguageModel
}

type LanguageModel struct {
	Tag       string
	Label     string
	Root      bool
	PageCount int
}

// SiteModel holds the view model served by the index page. It is
// replaced as a whole by the refresh task and read by the handlers.
type SiteModel struct {
	mu    sync.RWMutex
	index IndexModel
}

func NewSiteModel() *SiteModel {
	return &SiteModel{}
}

func (m *SiteModel) Set(index IndexModel) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.index = index
}

func (m *SiteModel) Get() IndexModel {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.index
}
