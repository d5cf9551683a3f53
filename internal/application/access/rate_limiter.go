package access

import (
	"sync"
	"time"
)

// RateLimiter controla a janela mínima entre chamadas de IA por usuário.
// Estado injetado explicitamente (nada de globals) para permitir teste isolado.
type RateLimiter interface {
	// TooSoon indica se ainda não passou a janela desde a última chamada aceita.
	TooSoon(key string, now time.Time) bool
	// Record registra o instante de uma chamada aceita.
	Record(key string, now time.Time)
}

// MemoryRateLimiter implementação em memória, por processo.
// Limite consultivo: requisições concorrentes disputam o mesmo mapa, por isso o mutex.
type MemoryRateLimiter struct {
	mu     sync.Mutex
	window time.Duration
	last   map[string]time.Time
}

// NewMemoryRateLimiter cria o limitador com a janela dada.
func NewMemoryRateLimiter(window time.Duration) *MemoryRateLimiter {
	return &MemoryRateLimiter{
		window: window,
		last:   make(map[string]time.Time),
	}
}

func (r *MemoryRateLimiter) TooSoon(key string, now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	last, ok := r.last[key]
	if !ok {
		return false
	}
	return now.Sub(last) < r.window
}

func (r *MemoryRateLimiter) Record(key string, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last[key] = now
}
