package domain

import "time"

// Service is an entry of the barbershop price list
type Service struct {
	ID              string
	Name            string
	Price           float64
	DurationMinutes int
}

// Duration returns the time the service occupies in the agenda
func (s Service) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}

// IsValid returns true if the service can be offered for booking
func (s Service) IsValid() bool {
	return s.ID != "" && s.Name != "" && s.Price >= 0 && s.DurationMinutes > 0
}

// Catalog is the immutable, ordered list of services offered by the shop.
// It is built once at startup and only read afterwards.
type Catalog struct {
	services []Service
	byID     map[string]Service
}

// NewCatalog builds a catalog preserving the given order. Later duplicates of an ID are ignored.
func NewCatalog(services []Service) *Catalog {
	c := &Catalog{
		services: make([]Service, 0, len(services)),
		byID:     make(map[string]Service, len(services)),
	}
	for _, s := range services {
		if _, exists := c.byID[s.ID]; exists {
			continue
		}
		c.services = append(c.services, s)
		c.byID[s.ID] = s
	}
	return c
}

// DefaultServices returns the shop price list
func DefaultServices() []Service {
	return []Service{
		{ID: "1", Name: "Corte Social/Infantil/Tesoura/Militar", Price: 20, DurationMinutes: 30},
		{ID: "2", Name: "Corte Degradê/Low Fade/Americano", Price: 23, DurationMinutes: 40},
		{ID: "3", Name: "Degradê Navalhado", Price: 30, DurationMinutes: 40},
		{ID: "4", Name: "Barba", Price: 15, DurationMinutes: 30},
		{ID: "5", Name: "Combo (Corte+Barba)", Price: 40, DurationMinutes: 60},
		{ID: "6", Name: "Sobrancelha", Price: 5, DurationMinutes: 15},
	}
}

// Services returns a copy of the catalog in its original order
func (c *Catalog) Services() []Service {
	out := make([]Service, len(c.services))
	copy(out, c.services)
	return out
}

// Get returns the service with the given ID
func (c *Catalog) Get(id string) (Service, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// DurationOf returns the duration of the service with the given ID.
// Unknown IDs resolve to DefaultServiceDurationMinutes so stale references never break availability.
func (c *Catalog) DurationOf(id string) time.Duration {
	if s, ok := c.byID[id]; ok {
		return s.Duration()
	}
	return DefaultServiceDurationMinutes * time.Minute
}

// NameOf returns the service name or UnknownServiceName
func (c *Catalog) NameOf(id string) string {
	if s, ok := c.byID[id]; ok {
		return s.Name
	}
	return UnknownServiceName
}
