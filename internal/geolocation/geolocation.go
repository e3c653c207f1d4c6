// Package geolocation resolves the user's current position: the live device
// fix first, then the last known fix, then IP based lookup.
package geolocation

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/shenikar/crisis_map_sync/internal/geo"
	"github.com/sirupsen/logrus"
)

// ErrorCode - стандартные коды ошибок геолокации
type ErrorCode int

const (
	PermissionDenied    ErrorCode = 1
	PositionUnavailable ErrorCode = 2
	Timeout             ErrorCode = 3
)

// PositionError - ошибка получения позиции с кодом
type PositionError struct {
	Code ErrorCode
	Err  error
}

func (e *PositionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("geolocation: code %d: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("geolocation: code %d", e.Code)
}

func (e *PositionError) Unwrap() error {
	return e.Err
}

// ErrUnavailable - все источники позиции отказали
var ErrUnavailable = errors.New("Kunne ikke hente posisjonen din. Du har ikke godtatt deling av posisjon.")

// ErrorMessage переводит ошибку геолокации в сообщение для пользователя
func ErrorMessage(err error) string {
	var posErr *PositionError
	if err == nil || !errors.As(err, &posErr) {
		return "Ukjent feil ved henting av posisjon."
	}
	switch posErr.Code {
	case PermissionDenied:
		return "Du må gi tillatelse til å dele din posisjon."
	case PositionUnavailable:
		return "Posisjonen din er ikke tilgjengelig."
	case Timeout:
		return "Det tok for lang tid å hente posisjonen din."
	default:
		return "Det oppstod en feil ved henting av posisjon."
	}
}

// Source - источник позиции
type Source interface {
	Current(ctx context.Context) (geo.LatLng, error)
}

// Fix - фиксация позиции устройства
type Fix struct {
	Position geo.LatLng `json:"position"`
	Accuracy float64    `json:"accuracy,omitempty"` // метры
	At       time.Time  `json:"at"`
}

// FixSource - живая позиция устройства. Оболочка интерфейса передаёт
// фиксации через Push; без разрешения Current отвечает PermissionDenied.
type FixSource struct {
	maxAge time.Duration
	now    func() time.Time

	mu      sync.RWMutex
	allowed bool
	last    *Fix
}

// NewFixSource создает источник; фиксации старше maxAge считаются недоступными
func NewFixSource(maxAge time.Duration) *FixSource {
	return &FixSource{maxAge: maxAge, now: time.Now, allowed: true}
}

// Push сохраняет новую фиксацию
func (s *FixSource) Push(fix Fix) error {
	if !fix.Position.Valid() {
		return &PositionError{Code: PositionUnavailable, Err: fmt.Errorf("invalid coordinates %v", fix.Position)}
	}
	if fix.At.IsZero() {
		fix.At = s.now()
	}
	s.mu.Lock()
	s.last = &fix
	s.mu.Unlock()
	return nil
}

// SetPermission включает или отзывает разрешение на геолокацию
func (s *FixSource) SetPermission(allowed bool) {
	s.mu.Lock()
	s.allowed = allowed
	s.mu.Unlock()
}

// Current возвращает свежую фиксацию
func (s *FixSource) Current(ctx context.Context) (geo.LatLng, error) {
	if err := ctx.Err(); err != nil {
		return geo.LatLng{}, &PositionError{Code: Timeout, Err: err}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.allowed {
		return geo.LatLng{}, &PositionError{Code: PermissionDenied}
	}
	if s.last == nil {
		return geo.LatLng{}, &PositionError{Code: PositionUnavailable}
	}
	if s.maxAge > 0 && s.now().Sub(s.last.At) > s.maxAge {
		return geo.LatLng{}, &PositionError{Code: Timeout, Err: errors.New("last fix is too old")}
	}
	return s.last.Position, nil
}

// Fetcher - GET запрос через restclient
type Fetcher interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
}

// IPSource - позиция по IP адресу (ipapi.co)
type IPSource struct {
	client Fetcher
}

// NewIPSource создает источник; client настроен на URL сервиса
func NewIPSource(client Fetcher) *IPSource {
	return &IPSource{client: client}
}

func (s *IPSource) Current(ctx context.Context) (geo.LatLng, error) {
	var body struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}
	if err := s.client.Get(ctx, "", nil, &body); err != nil {
		return geo.LatLng{}, fmt.Errorf("geolocation: ip lookup: %w", err)
	}
	if body.Latitude == 0 || body.Longitude == 0 {
		return geo.LatLng{}, &PositionError{Code: PositionUnavailable, Err: errors.New("Kunne ikke hente posisjonen din fra IP-adresse.")}
	}
	return geo.LatLng{Lat: body.Latitude, Lng: body.Longitude}, nil
}

// Resolver проходит цепочку: живая позиция, последняя известная, IP.
// Каждый следующий шаг пробуется только при отказе предыдущего.
type Resolver struct {
	live   Source
	ip     Source
	logger *logrus.Logger

	mu     sync.RWMutex
	cached *geo.LatLng
}

// NewResolver создает резолвер; ip может быть nil
func NewResolver(live, ip Source, logger *logrus.Logger) *Resolver {
	return &Resolver{live: live, ip: ip, logger: logger}
}

// Locate возвращает позицию пользователя
func (r *Resolver) Locate(ctx context.Context) (geo.LatLng, error) {
	log := r.logger.WithField("component", "geolocation")

	pos, err := r.Live(ctx)
	if err == nil {
		return pos, nil
	}
	log.WithError(err).Warn("Live geolocation failed, falling back")

	if cached, ok := r.Cached(); ok {
		return cached, nil
	}

	if r.ip != nil {
		pos, ipErr := r.ip.Current(ctx)
		if ipErr == nil {
			return pos, nil
		}
		log.WithError(ipErr).Error("IP geolocation also failed")
	}
	return geo.LatLng{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
}

// Live спрашивает только живой источник и запоминает удачный результат.
// Ошибка возвращается как есть, чтобы её можно было показать через ErrorMessage.
func (r *Resolver) Live(ctx context.Context) (geo.LatLng, error) {
	if r.live == nil {
		return geo.LatLng{}, &PositionError{Code: PositionUnavailable}
	}
	pos, err := r.live.Current(ctx)
	if err != nil {
		return geo.LatLng{}, err
	}
	r.mu.Lock()
	r.cached = &pos
	r.mu.Unlock()
	return pos, nil
}

// Cached возвращает последнюю известную позицию
func (r *Resolver) Cached() (geo.LatLng, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.cached == nil {
		return geo.LatLng{}, false
	}
	return *r.cached, true
}
