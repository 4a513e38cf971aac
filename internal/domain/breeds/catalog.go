package breeds

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"pet-care-scheduler/internal/platform/logger"
)

const (
	DefaultRemoteTimeout    = 8 * time.Second
	DefaultImageConcurrency = 8
)

type Config struct {
	PageSize         int
	RemoteTimeout    time.Duration // por llamada remota
	ImageConcurrency int
}

func (c Config) withDefaults() Config {
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	if c.RemoteTimeout <= 0 {
		c.RemoteTimeout = DefaultRemoteTimeout
	}
	if c.ImageConcurrency <= 0 {
		c.ImageConcurrency = DefaultImageConcurrency
	}
	return c
}

// Catalog arma la lista de razas: API primaria + imágenes de respaldo + slot local.
// Es el único que escribe el slot local.
type Catalog struct {
	meta   MetadataSource
	images ImageSource
	store  UserStore
	log    logger.Logger
	cfg    Config
	now    func() time.Time

	mu         sync.Mutex
	state      State
	items      []Record
	lastErr    error
	gen        uint64 // token de la carga vigente
	inflight   int
	lastUserMs int64
}

func NewCatalog(meta MetadataSource, images ImageSource, store UserStore, log logger.Logger, cfg Config) *Catalog {
	if log == nil {
		log = logger.Nop()
	}
	return &Catalog{
		meta:   meta,
		images: images,
		store:  store,
		log:    log.With(map[string]any{"component": "breeds.catalog"}),
		cfg:    cfg.withDefaults(),
		now:    time.Now,
		state:  StateLoading,
	}
}

// Load vuelve a pedir todo (red + slot local) y reemplaza la lista en memoria.
// Si falla la fuente primaria devuelve *RemoteFetchError y el estado queda Failed.
func (c *Catalog) Load(ctx context.Context) ([]Record, error) {
	c.mu.Lock()
	c.gen++
	token := c.gen
	c.inflight++
	c.state = StateLoading
	c.items = nil
	c.lastErr = nil
	c.mu.Unlock()

	started := c.now()
	records, err := c.assemble(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--

	if token != c.gen {
		c.log.Debug("discarding stale catalog load", map[string]any{"token": token, "current": c.gen})
		return nil, ErrLoadSuperseded
	}

	if err != nil {
		c.state = StateFailed
		c.lastErr = err
		c.log.Error("catalog load failed", map[string]any{"err": err})
		return nil, err
	}

	c.state = StateReady
	c.items = records
	c.log.Info("catalog loaded", map[string]any{
		"records":     len(records),
		"duration_ms": c.now().Sub(started).Milliseconds(),
	})
	return cloneRecords(records), nil
}

// EnsureLoaded dispara Load sólo si nunca se cargó y no hay una carga en curso.
// Failed no se reintenta solo: eso lo decide el usuario.
func (c *Catalog) EnsureLoaded(ctx context.Context) View {
	c.mu.Lock()
	needsLoad := c.state == StateLoading && c.inflight == 0
	c.mu.Unlock()

	if needsLoad {
		_, _ = c.Load(ctx)
	}
	return c.Snapshot()
}

// Add crea una raza del usuario y la agrega a memoria y al slot local.
func (c *Catalog) Add(ctx context.Context, d Draft) (Record, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return Record{}, ErrInvalidInput
	}
	image, err := draftImage(d.Image)
	if err != nil {
		return Record{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateReady {
		return Record{}, ErrNotReady
	}

	rec := Record{
		ID:          c.nextUserID(),
		Name:        name,
		Temperament: normalizeOptional(d.Temperament, DefaultTemperament),
		LifeSpan:    normalizeOptional(d.LifeSpan, DefaultLifeSpan),
		Origin:      OriginUser,
	}
	rec.Image.URL = image

	prev := c.items
	c.items = append(cloneRecords(prev), rec)

	// read-modify-write del slot completo
	stored, err := c.store.ReadAll(ctx)
	if err != nil {
		c.items = prev
		c.log.Error("add: read user breeds failed, rolled back", map[string]any{"id": rec.ID, "err": err})
		return Record{}, &StorageReadError{Err: err}
	}
	if err := c.store.WriteAll(ctx, append(stored, rec)); err != nil {
		c.items = prev
		c.log.Error("add: write user breeds failed, rolled back", map[string]any{"id": rec.ID, "err": err})
		return Record{}, &StorageWriteError{Op: "add", Err: err}
	}

	c.log.Info("user breed added", map[string]any{"id": rec.ID, "name": rec.Name})
	return rec, nil
}

// Remove saca la raza de memoria; si es del usuario también del slot local.
// Un id desconocido no es error.
func (c *Catalog) Remove(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateReady {
		return ErrNotReady
	}

	target, ok := c.find(id)
	if !ok {
		return nil
	}

	prev := c.items
	c.items = filterOut(prev, id, target.Origin)

	if target.Origin != OriginUser {
		c.log.Debug("remote breed hidden", map[string]any{"id": id})
		return nil
	}

	stored, err := c.store.ReadAll(ctx)
	if err != nil {
		c.items = prev
		c.log.Error("remove: read user breeds failed, rolled back", map[string]any{"id": id, "err": err})
		return &StorageReadError{Err: err}
	}
	if err := c.store.WriteAll(ctx, filterOut(stored, id, OriginUser)); err != nil {
		c.items = prev
		c.log.Error("remove: write user breeds failed, rolled back", map[string]any{"id": id, "err": err})
		return &StorageWriteError{Op: "remove", Err: err}
	}

	c.log.Info("user breed removed", map[string]any{"id": id})
	return nil
}

// Snapshot devuelve estado + copia de la lista.
func (c *Catalog) Snapshot() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := View{
		State:  c.state,
		Breeds: cloneRecords(c.items),
	}
	if c.lastErr != nil {
		v.Error = c.lastErr.Error()
	}
	return v
}

func (c *Catalog) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LastError es el error de la última carga fallida (nil si no falló).
func (c *Catalog) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// -------------------------
// Load internals
// -------------------------

func (c *Catalog) assemble(ctx context.Context) ([]Record, error) {
	remote, err := c.fetchRemote(ctx)
	if err != nil {
		return nil, err
	}

	records := c.resolveImages(ctx, remote)
	user := c.readUserRecords(ctx)

	out := make([]Record, 0, len(records)+len(user))
	out = append(out, records...)
	out = append(out, user...)
	return out, nil
}

func (c *Catalog) fetchRemote(ctx context.Context) ([]RemoteBreed, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.cfg.RemoteTimeout)
	defer cancel()

	remote, err := c.meta.FetchBreeds(callCtx, c.cfg.PageSize)
	if err != nil {
		var rfe *RemoteFetchError
		if errors.As(err, &rfe) {
			return nil, err
		}
		return nil, &RemoteFetchError{Op: "breeds", Err: err}
	}

	if len(remote) > c.cfg.PageSize {
		remote = remote[:c.cfg.PageSize]
	}

	kept := remote[:0:0]
	for _, b := range remote {
		if strings.TrimSpace(b.Name) == "" {
			c.log.Warn("skipping remote breed without name", map[string]any{"id": b.ID})
			continue
		}
		kept = append(kept, b)
	}
	return kept, nil
}

type imageResult struct {
	url *string
	err error
}

// orNone pliega el error a "sin imagen".
func (r imageResult) orNone() *string {
	if r.err != nil {
		return nil
	}
	return r.url
}

// resolveImages resuelve la imagen de cada raza en paralelo (acotado).
// El orden del resultado es el de la fuente, no el de finalización.
func (c *Catalog) resolveImages(ctx context.Context, remote []RemoteBreed) []Record {
	results := make([]imageResult, len(remote))

	var g errgroup.Group
	g.SetLimit(c.cfg.ImageConcurrency)

	for i, b := range remote {
		if u := strings.TrimSpace(b.ImageURL); u != "" {
			results[i] = imageResult{url: strPtr(u)}
			continue
		}
		g.Go(func() error {
			results[i] = c.lookupImage(ctx, b.Name)
			return nil
		})
	}
	_ = g.Wait() // nunca devuelve error: las fallas quedan en results

	out := make([]Record, 0, len(remote))
	for i, b := range remote {
		res := results[i]
		if res.err != nil {
			c.log.Debug("image resolution failed", map[string]any{"breed": b.Name, "err": res.err})
		}
		out = append(out, Record{
			ID:          RemoteID(b),
			Name:        strings.TrimSpace(b.Name),
			Temperament: normalizeOptional(b.Temperament, DefaultTemperament),
			LifeSpan:    normalizeOptional(b.LifeSpan, DefaultLifeSpan),
			Image:       ImageRef{URL: res.orNone()},
			Origin:      OriginRemote,
		})
	}
	return out
}

func (c *Catalog) lookupImage(ctx context.Context, name string) imageResult {
	slug := ImageSlug(name)
	if slug == "" {
		return imageResult{err: &ImageResolutionError{Slug: slug, Err: errors.New("empty breed slug")}}
	}

	callCtx, cancel := context.WithTimeout(ctx, c.cfg.RemoteTimeout)
	defer cancel()

	u, err := c.images.RandomImage(callCtx, slug)
	if err != nil {
		return imageResult{err: &ImageResolutionError{Slug: slug, Err: err}}
	}
	if strings.TrimSpace(u) == "" {
		return imageResult{err: &ImageResolutionError{Slug: slug, Err: errors.New("empty image url")}}
	}
	return imageResult{url: strPtr(u)}
}

// readUserRecords: cualquier falla del slot local => lista vacía.
func (c *Catalog) readUserRecords(ctx context.Context) []Record {
	stored, err := c.store.ReadAll(ctx)
	if err != nil {
		c.log.Warn("reading user breeds failed, using empty list", map[string]any{"err": &StorageReadError{Err: err}})
		return []Record{}
	}

	out := make([]Record, 0, len(stored))
	for _, r := range stored {
		r.Origin = OriginUser
		out = append(out, r)
	}
	return out
}

// -------------------------
// helpers (llamar con mu tomado)
// -------------------------

func (c *Catalog) find(id string) (Record, bool) {
	for _, r := range c.items {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// draftImage sólo acepta la imagen inline (data:image/...); vacío = sin imagen.
func draftImage(img *string) (*string, error) {
	if img == nil || strings.TrimSpace(*img) == "" {
		return nil, nil
	}
	v := strings.TrimSpace(*img)
	if !strings.HasPrefix(strings.ToLower(v), "data:image/") {
		return nil, fmt.Errorf("%w: image must be an inline data:image/ URI", ErrInvalidInput)
	}
	return &v, nil
}

// nextUserID arma user-<millis>, corrido al siguiente milisegundo libre si hace falta.
func (c *Catalog) nextUserID() string {
	ms := c.now().UnixMilli()
	if ms <= c.lastUserMs {
		ms = c.lastUserMs + 1
	}
	for {
		id := UserIDPrefix + strconv.FormatInt(ms, 10)
		if _, taken := c.find(id); !taken {
			c.lastUserMs = ms
			return id
		}
		ms++
	}
}

// filterOut saca los registros con ese id y ese origen; un id numérico del slot
// puede coincidir con el de una raza remota.
func filterOut(records []Record, id string, origin Origin) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.ID == id && r.Origin == origin {
			continue
		}
		out = append(out, r)
	}
	return out
}

func cloneRecords(in []Record) []Record {
	out := make([]Record, len(in))
	copy(out, in)
	return out
}
