package engine

import "sync"

// Registry — единственная общая таблица активных сессий, ключ — id игрока.
// Все составные операции (создание, подбор выбора, удаление) выполняются
// под одним мьютексом: два одновременных события одного игрока не могут
// ни создать две сессии, ни запустить два возобновления.
type Registry struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

// NewRegistry создаёт пустой реестр.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[int64]*Session)}
}

// CreateIfAbsent возвращает сессию игрока, создавая её через build только
// если записи ещё нет. Второе возвращаемое значение — признак создания.
func (r *Registry) CreateIfAbsent(userID int64, build func() *Session) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if sess, ok := r.sessions[userID]; ok {
		return sess, false
	}
	sess := build()
	r.sessions[userID] = sess
	return sess, true
}

// TakeChoice ищет сессию игрока и сопоставляет текст с её ожидаемыми
// вариантами. Совпадение атомарно снимает ожидание (см. Session.takeChoice),
// так что из N одинаковых событий возобновление получит ровно одно.
func (r *Registry) TakeChoice(userID int64, text string) (sess *Session, target string, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sess, found := r.sessions[userID]
	if !found {
		return nil, "", false
	}
	target, ok = sess.takeChoice(text)
	if !ok {
		return nil, "", false
	}
	return sess, target, true
}

// Get возвращает сессию игрока, если она зарегистрирована.
func (r *Registry) Get(userID int64) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sess, ok := r.sessions[userID]
	return sess, ok
}

// Remove удаляет сессию игрока; возвращает, была ли запись.
func (r *Registry) Remove(userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[userID]; !ok {
		return false
	}
	delete(r.sessions, userID)
	return true
}

// Len возвращает число активных сессий.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
