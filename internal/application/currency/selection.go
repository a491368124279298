package currency

import (
	"strings"
	"sync"

	domaincurrency "github.com/jhoicas/invoice-studio/internal/domain/currency"
)

// Selection guarda el código de moneda activo del editor.
// Se suscribe al registro: si la moneda seleccionada se elimina (aquí o desde otro
// proceso), la selección vuelve a DefaultCode en lugar de quedar colgando.
type Selection struct {
	reg    *Registry
	mu     sync.RWMutex
	code   string
	cancel func()
}

// NewSelection crea la selección con el código inicial (vacío = DefaultCode).
func NewSelection(reg *Registry, initial string) *Selection {
	initial = strings.ToUpper(strings.TrimSpace(initial))
	if initial == "" {
		initial = DefaultCode
	}
	s := &Selection{reg: reg, code: initial}
	s.cancel = reg.Subscribe(s.onEvent)
	return s
}

// Code devuelve el código seleccionado.
func (s *Selection) Code() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.code
}

// Set cambia la selección. Un código desconocido se acepta (se mostrará como fallback).
func (s *Selection) Set(code string) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = DefaultCode
	}
	s.mu.Lock()
	s.code = code
	s.mu.Unlock()
}

// Close da de baja la suscripción.
func (s *Selection) Close() {
	s.cancel()
}

func (s *Selection) onEvent(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch ev.Kind {
	case EventRemoved:
		if ev.Code == s.code {
			s.code = DefaultCode
		}
	case EventReloaded:
		// otro proceso pudo borrar la moneda seleccionada
		if _, fallback := s.reg.Resolve(s.code).(domaincurrency.Fallback); fallback {
			s.code = DefaultCode
		}
	}
}
