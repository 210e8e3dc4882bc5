package datastores

import (
	"context"

	"github.com/elliotchance/orderedmap/v3"

	"github.com/oaiiae/address-book/contacts"
)

// ContactsInmem implements [ContactsStore] without persistence.
type ContactsInmem struct {
	records *orderedmap.OrderedMap[string, *contacts.Record]
}

var _ ContactsStore = (*ContactsInmem)(nil)

func NewContactsInmem(rs ...*contacts.Record) *ContactsInmem {
	s := &ContactsInmem{records: orderedmap.NewOrderedMap[string, *contacts.Record]()}
	for _, r := range rs {
		s.records.Set(r.Name(), r)
	}
	return s
}

func (s *ContactsInmem) Add(_ context.Context, r *contacts.Record) (AddStatus, error) {
	existing, ok := s.records.Get(r.Name())
	if !ok {
		s.records.Set(r.Name(), r)
		return AddCreated, nil
	}

	phones := r.Phones()
	if len(phones) == 0 {
		return AddUnchanged, nil
	}
	status, err := existing.AddPhone(string(phones[0]))
	switch {
	case err != nil:
		return 0, err
	case status == contacts.PhoneDuplicate:
		return AddDuplicatePhone, nil
	default:
		return AddMerged, nil
	}
}

func (s *ContactsInmem) Get(_ context.Context, name string) (*contacts.Record, error) {
	r, ok := s.records.Get(name)
	if !ok {
		return nil, ErrContactNotFound
	}
	return r, nil
}

func (s *ContactsInmem) List(_ context.Context) ([]*contacts.Record, error) {
	rs := make([]*contacts.Record, 0, s.records.Len())
	for el := s.records.Front(); el != nil; el = el.Next() {
		rs = append(rs, el.Value)
	}
	return rs, nil
}

func (s *ContactsInmem) Delete(_ context.Context, name string) error {
	if !s.records.Delete(name) {
		return ErrContactNotFound
	}
	return nil
}

func (s *ContactsInmem) Save(context.Context) error { return nil }
