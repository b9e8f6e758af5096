// Package store persists the host-side state that survives between runs:
// user-declared bills, pending commissions, and transaction overrides.
// The engine core never touches storage; commands load state here, hand
// plain values to the core, and save results back.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/holdback-dev/holdback/internal/model"
	"github.com/holdback-dev/holdback/internal/overrides"
)

const (
	billsFile       = "bills.yaml"
	commissionsFile = "commissions.yaml"
	overridesFile   = "overrides.yaml"

	dateFormat = "2006-01-02"
)

// Store reads and writes state files under a data directory.
type Store struct {
	dir string
}

// New creates a Store rooted at dir.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// billRecord is the YAML shape of a bill. Amounts travel as strings so
// they round-trip exactly.
type billRecord struct {
	ID       string `yaml:"id"`
	Vendor   string `yaml:"vendor"`
	Amount   string `yaml:"amount"`
	DueDay   int    `yaml:"due_day"`
	Category string `yaml:"category,omitempty"`
	Active   bool   `yaml:"active"`
	Type     string `yaml:"type"`
}

type commissionRecord struct {
	Amount       string `yaml:"amount"`
	ExpectedDate string `yaml:"expected_date"`
	CutoffLabel  string `yaml:"cutoff_label,omitempty"`
}

// LoadBills reads bills.yaml. A missing file is an empty bill set.
func (s *Store) LoadBills() ([]model.Bill, error) {
	var records []billRecord
	if err := s.loadYAML(billsFile, &records); err != nil {
		return nil, err
	}

	bills := make([]model.Bill, 0, len(records))
	for i, rec := range records {
		amount, err := decimal.NewFromString(rec.Amount)
		if err != nil {
			return nil, fmt.Errorf("bill %d: parsing amount %q: %w", i, rec.Amount, err)
		}
		bills = append(bills, model.Bill{
			ID:       rec.ID,
			Vendor:   rec.Vendor,
			Amount:   amount,
			DueDay:   rec.DueDay,
			Category: model.Category(rec.Category),
			Active:   rec.Active,
			Type:     model.BillType(rec.Type),
		})
	}
	return bills, nil
}

// SaveBills writes bills.yaml.
func (s *Store) SaveBills(bills []model.Bill) error {
	records := make([]billRecord, len(bills))
	for i, b := range bills {
		records[i] = billRecord{
			ID:       b.ID,
			Vendor:   b.Vendor,
			Amount:   b.Amount.StringFixed(2),
			DueDay:   b.DueDay,
			Category: string(b.Category),
			Active:   b.Active,
			Type:     string(b.Type),
		}
	}
	return s.saveYAML(billsFile, records)
}

// LoadCommissions reads commissions.yaml. A missing file is an empty list.
func (s *Store) LoadCommissions() ([]model.PendingCommission, error) {
	var records []commissionRecord
	if err := s.loadYAML(commissionsFile, &records); err != nil {
		return nil, err
	}

	commissions := make([]model.PendingCommission, 0, len(records))
	for i, rec := range records {
		amount, err := decimal.NewFromString(rec.Amount)
		if err != nil {
			return nil, fmt.Errorf("commission %d: parsing amount %q: %w", i, rec.Amount, err)
		}
		expected, err := time.Parse(dateFormat, rec.ExpectedDate)
		if err != nil {
			return nil, fmt.Errorf("commission %d: parsing expected_date %q: %w", i, rec.ExpectedDate, err)
		}
		commissions = append(commissions, model.PendingCommission{
			Amount:       amount,
			ExpectedDate: expected,
			CutoffLabel:  rec.CutoffLabel,
		})
	}
	return commissions, nil
}

// SaveCommissions writes commissions.yaml.
func (s *Store) SaveCommissions(commissions []model.PendingCommission) error {
	records := make([]commissionRecord, len(commissions))
	for i, c := range commissions {
		records[i] = commissionRecord{
			Amount:       c.Amount.StringFixed(2),
			ExpectedDate: c.ExpectedDate.Format(dateFormat),
			CutoffLabel:  c.CutoffLabel,
		}
	}
	return s.saveYAML(commissionsFile, records)
}

// LoadOverrides reads overrides.yaml. A missing file is an empty set.
func (s *Store) LoadOverrides() (overrides.Set, error) {
	set := overrides.Set{}
	if err := s.loadYAML(overridesFile, &set); err != nil {
		return nil, err
	}
	return set, nil
}

// SaveOverrides writes overrides.yaml, dropping empty patches.
func (s *Store) SaveOverrides(set overrides.Set) error {
	pruned := overrides.Set{}
	for id, patch := range set {
		if patch.Empty() {
			continue
		}
		pruned[id] = patch
	}
	return s.saveYAML(overridesFile, pruned)
}

func (s *Store) loadYAML(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

func (s *Store) saveYAML(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
