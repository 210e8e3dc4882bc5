package datastores

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/oaiiae/address-book/contacts"
)

// ContactsFile is a [ContactsInmem] persisted to a YAML file.
// Concurrent processes sharing one file are not coordinated: the last Save wins.
type ContactsFile struct {
	*ContactsInmem
	path string
}

var _ ContactsStore = (*ContactsFile)(nil)

type (
	contactsDocument struct {
		Contacts []contactModel `yaml:"contacts"`
	}
	contactModel struct {
		Name     string   `yaml:"name"`
		Phones   []string `yaml:"phones,flow"`
		Birthday string   `yaml:"birthday,omitempty"`
	}
)

// OpenContactsFile loads the records stored at path. A missing or empty file
// yields an empty store; undecodable content reports [ErrStorageCorrupt].
func OpenContactsFile(path string) (*ContactsFile, error) {
	s := &ContactsFile{ContactsInmem: NewContactsInmem(), path: path}

	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("store: read %s: %w", path, err)
	case len(b) == 0:
		return s, nil
	}

	var doc contactsDocument
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrStorageCorrupt, path, err)
	}
	for i, m := range doc.Contacts {
		r, err := m.record()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: contact #%d: %w", ErrStorageCorrupt, path, i+1, err)
		}
		if _, ok := s.records.Get(r.Name()); ok {
			return nil, fmt.Errorf("%w: %s: duplicate contact %q", ErrStorageCorrupt, path, r.Name())
		}
		s.records.Set(r.Name(), r)
	}
	return s, nil
}

func (m *contactModel) record() (*contacts.Record, error) {
	if m.Name == "" {
		return nil, errors.New("empty name")
	}

	phones := make([]contacts.Phone, len(m.Phones))
	for i, p := range m.Phones {
		phones[i] = contacts.Phone(p)
	}

	var birthday *contacts.Birthday
	if m.Birthday != "" {
		b, err := contacts.ParseBirthday(m.Birthday)
		if err != nil {
			return nil, err
		}
		birthday = &b
	}
	return contacts.Restore(m.Name, phones, birthday), nil
}

func newContactModel(r *contacts.Record) contactModel {
	m := contactModel{Name: r.Name(), Phones: make([]string, 0)}
	for _, p := range r.Phones() {
		m.Phones = append(m.Phones, string(p))
	}
	if b, ok := r.Birthday(); ok {
		m.Birthday = b.String()
	}
	return m
}

func (s *ContactsFile) Path() string { return s.path }

// Save rewrites the whole file through a temporary sibling and a rename.
func (s *ContactsFile) Save(ctx context.Context) error {
	records, err := s.List(ctx)
	if err != nil {
		return err
	}
	doc := contactsDocument{Contacts: make([]contactModel, 0, len(records))}
	for _, r := range records {
		doc.Contacts = append(doc.Contacts, newContactModel(r))
	}

	b, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}

	tmp := filepath.Join(filepath.Dir(s.path), "."+filepath.Base(s.path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, b, 0o600); err != nil { //nolint: mnd // owner only
		return fmt.Errorf("store: write: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("store: replace %s: %w", s.path, err)
	}
	return nil
}
