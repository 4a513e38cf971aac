package breeds

import "context"

// MetadataSource es la fuente primaria de razas (TheDogAPI).
type MetadataSource interface {
	FetchBreeds(ctx context.Context, limit int) ([]RemoteBreed, error)
}

// ImageSource devuelve una imagen random para un slug de raza (Dog CEO).
type ImageSource interface {
	RandomImage(ctx context.Context, slug string) (string, error)
}

// UserStore es el slot local con las razas que cargó el usuario.
// WriteAll siempre reemplaza la lista completa.
type UserStore interface {
	ReadAll(ctx context.Context) ([]Record, error)
	WriteAll(ctx context.Context, records []Record) error
}
