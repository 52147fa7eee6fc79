package calculator

import "sync"

type registryEntry struct {
	mu      sync.Mutex
	session *Session
}

// Registry хранит по одной сессии на пользователя и сериализует доступ к каждой
type Registry struct {
	sessions   sync.Map // map[int64]*registryEntry
	newSession func(userID int64) *Session
}

// NewRegistry создает реестр. factory вызывается при первом обращении пользователя.
func NewRegistry(factory func(userID int64) *Session) *Registry {
	if factory == nil {
		factory = func(int64) *Session { return NewSession() }
	}
	return &Registry{newSession: factory}
}

func (r *Registry) entry(userID int64) *registryEntry {
	if v, ok := r.sessions.Load(userID); ok {
		return v.(*registryEntry)
	}
	v, _ := r.sessions.LoadOrStore(userID, &registryEntry{session: r.newSession(userID)})
	return v.(*registryEntry)
}

// With выполняет fn над сессией пользователя под ее блокировкой
func (r *Registry) With(userID int64, fn func(*Session) error) error {
	e := r.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.session)
}

// Reset удаляет сессию пользователя. Следующее обращение создаст новую.
func (r *Registry) Reset(userID int64) {
	r.sessions.Delete(userID)
}

// Len возвращает количество сессий
func (r *Registry) Len() int {
	n := 0
	r.sessions.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return n
}
