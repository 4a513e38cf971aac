package breeds

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotReady: add/remove sólo tienen sentido con el catálogo cargado.
	ErrNotReady = errors.New("catalog not ready")

	// ErrLoadSuperseded: otra carga empezó después; el resultado de ésta se descarta.
	ErrLoadSuperseded = errors.New("catalog load superseded")
)

// RemoteFetchError: la fuente primaria falló. Es fatal para Load.
type RemoteFetchError struct {
	Op  string
	Err error
}

func (e *RemoteFetchError) Error() string {
	return fmt.Sprintf("remote fetch %s: %v", e.Op, e.Err)
}

func (e *RemoteFetchError) Unwrap() error { return e.Err }

// ImageResolutionError: la fuente de imágenes falló para una raza. Nunca sale de Load.
type ImageResolutionError struct {
	Slug string
	Err  error
}

func (e *ImageResolutionError) Error() string {
	return fmt.Sprintf("resolve image %q: %v", e.Slug, e.Err)
}

func (e *ImageResolutionError) Unwrap() error { return e.Err }

// StorageReadError: el slot local no se pudo leer.
// En Load se recupera como lista vacía; en add/remove se reporta (no pisamos lo que no leímos).
type StorageReadError struct {
	Err error
}

func (e *StorageReadError) Error() string {
	return fmt.Sprintf("storage read: %v", e.Err)
}

func (e *StorageReadError) Unwrap() error { return e.Err }

// StorageWriteError: no se pudo escribir el slot local. La memoria se revierte.
type StorageWriteError struct {
	Op  string
	Err error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("storage write (%s): %v", e.Op, e.Err)
}

func (e *StorageWriteError) Unwrap() error { return e.Err }
