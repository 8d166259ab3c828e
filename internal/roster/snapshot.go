package roster

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/csg33k/employee-roster/internal/domain"
	"github.com/csg33k/employee-roster/internal/ports"
)

// DefaultKey is the key the roster is stored under.
const DefaultKey = "employees"

//go:embed seed.json
var seedJSON []byte

// Seed returns the bundled starter roster used when nothing has been saved.
func Seed() []domain.Employee {
	var out []domain.Employee
	if err := json.Unmarshal(seedJSON, &out); err != nil {
		panic(fmt.Sprintf("roster: bundled seed data is invalid: %v", err))
	}
	return out
}

// Snapshotter stores the full roster as one JSON document in a key-value
// store. It is the store's Persister.
type Snapshotter struct {
	kv   ports.KeyValueStore
	key  string
	seed []domain.Employee
}

// NewSnapshotter binds kv and key. An empty key means DefaultKey; a nil seed
// means Seed().
func NewSnapshotter(kv ports.KeyValueStore, key string, seed []domain.Employee) *Snapshotter {
	if key == "" {
		key = DefaultKey
	}
	if seed == nil {
		seed = Seed()
	}
	return &Snapshotter{kv: kv, key: key, seed: seed}
}

// Load reads the saved roster. A missing key yields the seed data; a stored
// value that is not valid JSON is an error.
func (s *Snapshotter) Load(ctx context.Context) ([]domain.Employee, error) {
	raw, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, ports.ErrNotFound) {
		return clone(s.seed), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", s.key, err)
	}
	var out []domain.Employee
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode %q: %w", s.key, err)
	}
	if out == nil {
		out = []domain.Employee{}
	}
	return out, nil
}

// Save overwrites the stored roster with employees.
func (s *Snapshotter) Save(ctx context.Context, employees []domain.Employee) error {
	if employees == nil {
		employees = []domain.Employee{}
	}
	raw, err := json.Marshal(employees)
	if err != nil {
		return err
	}
	return s.kv.Put(ctx, s.key, raw)
}
