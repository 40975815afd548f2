package memory

// Acceso uniforme de los repos al estado: fuera de transacción toman el lock
// del almacén; dentro de una transacción el runner ya lo tiene, así que operan
// directo sobre los datos.

func (s *Store) write(tx bool, fn func(d *data) error) error {
	if tx {
		return fn(s.d)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.d)
}

func (s *Store) read(tx bool, fn func(d *data) error) error {
	if tx {
		return fn(s.d)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.d)
}
