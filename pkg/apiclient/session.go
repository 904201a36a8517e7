package apiclient

import "sync"

// Session mantiene el token y el usuario actuales en memoria, con un
// mecanismo plano de notificación para los consumidores (sin reactividad de
// framework: un callback por suscriptor al terminar la sesión).
type Session struct {
	mu    sync.RWMutex
	token string
	user  *User
	subs  []func()
}

// NewSession construye un session store vacío.
func NewSession() *Session {
	return &Session{}
}

// Authenticated informa si hay sesión activa; gatea la navegación:
// sin sesión → login, con sesión → fuera del login.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Token devuelve el token actual ("" si no hay sesión).
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User devuelve el usuario actual (nil si no se cargó el perfil).
func (s *Session) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Set reemplaza token y usuario (login o restauración desde cookie).
func (s *Session) Set(token string, user *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
}

// SetUser actualiza solo el usuario (refresh de perfil).
func (s *Session) SetUser(user *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

// Clear borra la sesión y notifica a los suscriptores fuera del lock.
func (s *Session) Clear() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// OnSessionEnded registra un callback que corre cuando la sesión se limpia
// (logout explícito o 401 del servidor).
func (s *Session) OnSessionEnded(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}
