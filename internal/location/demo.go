package location

import "context"

type demoRepository struct {
	locations []*Location
}

// NewDemoRepository creates the in-memory pickup location repository.
func NewDemoRepository() Repository {
	return &demoRepository{
		locations: []*Location{
			{
				ID:           "q1",
				Name:         "District 1 Showroom",
				Address:      "72 Le Thanh Ton",
				City:         "Ho Chi Minh City",
				Phone:        "0283822xxxx",
				OpeningHours: "08:00-21:00",
			},
			{
				ID:           "q7",
				Name:         "District 7 Showroom",
				Address:      "101 Nguyen Van Linh",
				City:         "Ho Chi Minh City",
				Phone:        "0283775xxxx",
				OpeningHours: "08:00-21:00",
			},
			{
				ID:           "hn",
				Name:         "Hanoi Showroom",
				Address:      "7 Bang Lang 1, Vinhomes Riverside",
				City:         "Hanoi",
				Phone:        "0243974xxxx",
				OpeningHours: "08:00-20:00",
			},
			{
				ID:           "dn",
				Name:         "Da Nang Showroom",
				Address:      "68 Vo Van Kiet",
				City:         "Da Nang",
				Phone:        "0236389xxxx",
				OpeningHours: "08:00-20:00",
			},
		},
	}
}

func (r *demoRepository) GetByID(ctx context.Context, id string) (*Location, error) {
	for _, l := range r.locations {
		if l.ID == id {
			clone := *l
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *demoRepository) List(ctx context.Context) ([]*Location, int, error) {
	out := make([]*Location, len(r.locations))
	for i, l := range r.locations {
		clone := *l
		out[i] = &clone
	}
	return out, len(out), nil
}
