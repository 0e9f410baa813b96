package car

import "context"

// demoRepository serves the static showcase catalog. Writes follow the
// demo-site contract: merged or created records are returned to the caller
// while the catalog itself stays immutable, so every lookup starts from the
// original data.
type demoRepository struct {
	cars []*Car
}

// NewDemoRepository creates the in-memory car repository seeded with the
// showcase catalog.
func NewDemoRepository() Repository {
	return &demoRepository{
		cars: demoCatalog(),
	}
}

func demoCatalog() []*Car {
	return []*Car{
		{
			ID:          "vf3",
			Name:        "VF 3",
			Type:        "Mini SUV",
			Range:       "210 km",
			Seats:       "4 seats",
			Storage:     "285 L",
			Price:       "590k",
			Href:        "/cars/vf3",
			Description: "A compact city EV that fits anywhere and charges everywhere.",
			Features:    []string{"Keyless entry", "Touchscreen display", "Rear camera"},
			Specifications: map[string]string{
				"motor":   "32 kW",
				"battery": "18.64 kWh LFP",
				"charge":  "36 min (10-70%)",
			},
			Images: []string{"/images/cars/vf3-front.webp", "/images/cars/vf3-side.webp"},
		},
		{
			ID:          "vf5",
			Name:        "VF 5 Plus",
			Type:        "A-SUV",
			Range:       "326 km",
			Seats:       "5 seats",
			Storage:     "330 L",
			Price:       "790k",
			Href:        "/cars/vf5",
			Description: "An agile crossover for daily commutes and weekend escapes.",
			Features:    []string{"ADAS", "8-inch display", "Wireless charging"},
			Specifications: map[string]string{
				"motor":   "70 kW",
				"battery": "37.23 kWh",
				"charge":  "33 min (10-70%)",
			},
			Images: []string{"/images/cars/vf5-front.webp"},
		},
		{
			ID:          "vf6",
			Name:        "VF 6",
			Type:        "B-SUV",
			Range:       "399 km",
			Seats:       "5 seats",
			Storage:     "423 L",
			Price:       "990k",
			Href:        "/cars/vf6",
			Description: "Balanced range and space for small families.",
			Features:    []string{"ADAS", "12.9-inch display", "Panoramic roof"},
			Specifications: map[string]string{
				"motor":   "130 kW",
				"battery": "59.6 kWh",
			},
			Images: []string{"/images/cars/vf6-front.webp"},
		},
		{
			ID:          "vf7",
			Name:        "VF 7",
			Type:        "C-SUV",
			Range:       "431 km",
			Seats:       "5 seats",
			Storage:     "537 L",
			Price:       "1290k",
			Href:        "/cars/vf7",
			Description: "A sporty crossover with long-distance comfort.",
			Features:    []string{"ADAS", "Head-up display", "Premium audio"},
			Specifications: map[string]string{
				"motor":   "150 kW",
				"battery": "75.3 kWh",
			},
			Images: []string{"/images/cars/vf7-front.webp"},
		},
		{
			ID:          "vf8",
			Name:        "VF 8",
			Type:        "D-SUV",
			Range:       "471 km",
			Seats:       "5 seats",
			Storage:     "594 L",
			Price:       "1590k",
			Href:        "/cars/vf8",
			Description: "A mid-size SUV for the whole family, fully loaded.",
			Features:    []string{"ADAS", "15.6-inch display", "Ventilated seats"},
			Specifications: map[string]string{
				"motor":   "260 kW dual",
				"battery": "87.7 kWh",
			},
			Images: []string{"/images/cars/vf8-front.webp"},
		},
		{
			ID:          "vf9",
			Name:        "VF 9",
			Type:        "E-SUV",
			Range:       "580 km",
			Seats:       "7 seats",
			Storage:     "712 L",
			Price:       "1990k",
			Href:        "/cars/vf9",
			Description: "Three rows, captain seats, and flagship range.",
			Features:    []string{"ADAS", "Captain seats", "Tri-zone climate"},
			Specifications: map[string]string{
				"motor":   "300 kW dual",
				"battery": "123 kWh",
			},
			Images: []string{"/images/cars/vf9-front.webp"},
		},
	}
}

func (r *demoRepository) Create(ctx context.Context, c *Car) error {
	// Demo contract: acknowledged but not appended to the catalog.
	return nil
}

func (r *demoRepository) GetByID(ctx context.Context, id string) (*Car, error) {
	for _, c := range r.cars {
		if c.ID == id {
			return c.Clone(), nil
		}
	}
	return nil, ErrNotFound
}

func (r *demoRepository) List(ctx context.Context) ([]*Car, int, error) {
	out := make([]*Car, len(r.cars))
	for i, c := range r.cars {
		out[i] = c.Clone()
	}
	return out, len(out), nil
}

func (r *demoRepository) Update(ctx context.Context, c *Car) error {
	// Existence check only; the catalog entry is left as-is.
	for _, existing := range r.cars {
		if existing.ID == c.ID {
			return nil
		}
	}
	return ErrNotFound
}

func (r *demoRepository) Delete(ctx context.Context, id string) error {
	for _, existing := range r.cars {
		if existing.ID == id {
			return nil
		}
	}
	return ErrNotFound
}
