package accounts

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/dmitrijs2005/bookstore/internal/common"
	"github.com/dmitrijs2005/bookstore/internal/models"
	"github.com/dmitrijs2005/bookstore/internal/tsv"
)

// Record layout: id, password, privilege, name.
const recordArity = 4

// TSVRepository keeps all accounts in memory, mirrored to a tab-separated
// file. The file is rewritten in full after each mutation.
type TSVRepository struct {
	path string
	byID map[string]models.Account
}

// NewTSVRepository loads the account file at path and guarantees the root
// bootstrap account exists, creating and persisting it if needed.
func NewTSVRepository(path string) (*TSVRepository, error) {
	r := &TSVRepository{path: path, byID: make(map[string]models.Account)}
	if err := r.load(); err != nil {
		return nil, err
	}
	if _, ok := r.byID["root"]; !ok {
		r.byID["root"] = models.Account{
			UserID:    "root",
			Password:  "sjtu",
			Privilege: models.PrivilegeOwner,
			Name:      "root",
		}
		if err := r.flush(); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *TSVRepository) load() error {
	lines, err := tsv.ReadLines(r.path)
	if err != nil {
		return fmt.Errorf("load accounts: %w", err)
	}
	for _, line := range lines {
		f := tsv.Split(line)
		if len(f) != recordArity {
			continue
		}
		priv, err := strconv.Atoi(f[2])
		if err != nil {
			continue
		}
		r.byID[f[0]] = models.Account{UserID: f[0], Password: f[1], Privilege: priv, Name: f[3]}
	}
	return nil
}

func (r *TSVRepository) flush() error {
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	lines := make([]string, 0, len(ids))
	for _, id := range ids {
		a := r.byID[id]
		lines = append(lines, tsv.Join(a.UserID, a.Password, strconv.Itoa(a.Privilege), a.Name))
	}
	if err := tsv.WriteFile(r.path, lines); err != nil {
		return fmt.Errorf("flush accounts: %w", err)
	}
	return nil
}

func (r *TSVRepository) Get(id string) (*models.Account, bool) {
	a, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	return &a, true
}

func (r *TSVRepository) Add(a models.Account) error {
	if _, ok := r.byID[a.UserID]; ok {
		return common.ErrDuplicate
	}
	r.byID[a.UserID] = a
	return r.flush()
}

func (r *TSVRepository) Remove(id string) error {
	if _, ok := r.byID[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.byID, id)
	return r.flush()
}

func (r *TSVRepository) UpdatePassword(id, password string) error {
	a, ok := r.byID[id]
	if !ok {
		return common.ErrNotFound
	}
	a.Password = password
	r.byID[id] = a
	return r.flush()
}
