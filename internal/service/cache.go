// cache.go: LRU-кэш пресетов с TTL для fetchOne.
// Обёртка над hashicorp/golang-lru/v2/expirable.
package service

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/bigkaa/preset-catalog/internal/domain/model"
)

// Prometheus-метрики кэша.
var (
	cacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pc_cache_hits_total",
		Help: "Общее количество попаданий в кэш пресетов.",
	})
	cacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pc_cache_misses_total",
		Help: "Общее количество промахов кэша пресетов.",
	})
)

// CacheService: in-memory кэш пресетов по ID.
// Записи инвалидируются при удалении пресета и при изменении счётчиков.
//
// Каждая инвалидация увеличивает поколение кэша. Чтение из БД запоминает
// поколение до запроса и кладёт результат через SetIfFresh: если за время
// запроса была инвалидация, прочитанная строка могла устареть и не кэшируется.
type CacheService struct {
	cache *expirable.LRU[string, model.Preset]

	mu  sync.Mutex
	gen uint64
}

// NewCacheService создаёт LRU-кэш с указанным размером и TTL.
func NewCacheService(maxSize int, ttl time.Duration) *CacheService {
	return &CacheService{cache: expirable.NewLRU[string, model.Preset](maxSize, nil, ttl)}
}

// Get возвращает копию пресета из кэша.
// Копия не даёт вызывающему коду изменить закэшированную запись.
func (c *CacheService) Get(id string) (*model.Preset, bool) {
	val, ok := c.cache.Get(id)
	if !ok {
		cacheMissesTotal.Inc()
		return nil, false
	}
	cacheHitsTotal.Inc()
	return &val, true
}

// Generation возвращает текущее поколение кэша.
// Вызывается до чтения из БД, результат передаётся в SetIfFresh.
func (c *CacheService) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// SetIfFresh добавляет запись, если с момента gen не было инвалидаций.
// Возвращает false, если запись отброшена.
func (c *CacheService) SetIfFresh(p *model.Preset, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return false
	}
	c.cache.Add(p.ID, *p)
	return true
}

// Delete удаляет запись из кэша и начинает новое поколение.
func (c *CacheService) Delete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.cache.Remove(id)
}

// Len возвращает количество записей в кэше.
func (c *CacheService) Len() int {
	return c.cache.Len()
}
