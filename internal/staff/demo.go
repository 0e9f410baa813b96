package staff

import (
	"context"
	"fmt"

	"github.com/greenwheel/ev-rental-backend/internal/auth"
)

// Demo credentials for the back-office screens. Hashes are computed at
// startup with the configured hasher so the cost follows BCRYPT_COST.
var demoAccounts = []struct {
	id          string
	username    string
	password    string
	displayName string
	role        string
}{
	{"staff_1", "admin", "admin123", "Demo Admin", RoleAdmin},
	{"staff_2", "staff", "staff123", "Demo Staff", RoleStaff},
}

type demoRepository struct {
	byUsername map[string]*Staff
}

// NewDemoRepository builds the in-memory demo credential table.
func NewDemoRepository(hasher auth.PasswordHasher) (Repository, error) {
	byUsername := make(map[string]*Staff, len(demoAccounts))
	for _, a := range demoAccounts {
		hash, err := hasher.Hash(a.password)
		if err != nil {
			return nil, fmt.Errorf("hash demo credential for %s failed: %w", a.username, err)
		}
		byUsername[a.username] = &Staff{
			ID:           a.id,
			Username:     a.username,
			PasswordHash: hash,
			DisplayName:  a.displayName,
			Role:         a.role,
		}
	}
	return &demoRepository{byUsername: byUsername}, nil
}

func (r *demoRepository) GetByUsername(ctx context.Context, username string) (*Staff, error) {
	acct, ok := r.byUsername[username]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *acct
	return &clone, nil
}
