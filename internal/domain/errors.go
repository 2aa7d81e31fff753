package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los mensajes llegan a la interfaz, por eso van en alemán.
var (
	ErrNotFound           = errors.New("Datensatz nicht gefunden")
	ErrInvalidInput       = errors.New("ungültige Eingabe")
	ErrConflict           = errors.New("Konflikt mit bestehenden Daten")
	ErrBackendUnavailable = errors.New("Backend nicht erreichbar")
)
