package datastores

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oaiiae/address-book/contacts"
)

func newRecord(t *testing.T, name string, phones ...string) *contacts.Record {
	t.Helper()
	r := contacts.NewRecord(name)
	for _, p := range phones {
		_, err := r.AddPhone(p)
		require.NoError(t, err)
	}
	return r
}

func TestContactsInmem_AddCreates(t *testing.T) {
	ctx := context.Background()
	s := NewContactsInmem()

	status, err := s.Add(ctx, newRecord(t, "alice", "0123456789", "1111111111"))
	require.NoError(t, err)
	assert.Equal(t, AddCreated, status)

	rs, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.Equal(t, []contacts.Phone{"0123456789", "1111111111"}, rs[0].Phones())
}

func TestContactsInmem_AddMergesFirstPhoneOnly(t *testing.T) {
	ctx := context.Background()
	s := NewContactsInmem(newRecord(t, "alice", "0123456789"))

	status, err := s.Add(ctx, newRecord(t, "alice", "2222222222", "3333333333"))
	require.NoError(t, err)
	assert.Equal(t, AddMerged, status)

	r, err := s.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []contacts.Phone{"0123456789", "2222222222"}, r.Phones())

	status, err = s.Add(ctx, newRecord(t, "alice", "0123456789"))
	require.NoError(t, err)
	assert.Equal(t, AddDuplicatePhone, status)

	status, err = s.Add(ctx, contacts.NewRecord("alice"))
	require.NoError(t, err)
	assert.Equal(t, AddUnchanged, status)

	r, err = s.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, r.Phones(), 2)
}

func TestContactsInmem_GetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewContactsInmem(newRecord(t, "alice", "0123456789"))

	_, err := s.Get(ctx, "Ghost")
	require.ErrorIs(t, err, ErrContactNotFound)
	require.ErrorIs(t, s.Delete(ctx, "Ghost"), ErrContactNotFound)

	require.NoError(t, s.Delete(ctx, "alice"))
	_, err = s.Get(ctx, "alice")
	require.ErrorIs(t, err, ErrContactNotFound)
}

func TestContactsInmem_ListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewContactsInmem()
	for _, name := range []string{"zoe", "adam", "mike"} {
		_, err := s.Add(ctx, newRecord(t, name, "0123456789"))
		require.NoError(t, err)
	}
	require.NoError(t, s.Delete(ctx, "adam"))
	_, err := s.Add(ctx, newRecord(t, "adam", "0123456789"))
	require.NoError(t, err)

	rs, err := s.List(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(rs))
	for _, r := range rs {
		names = append(names, r.Name())
	}
	assert.Equal(t, []string{"zoe", "mike", "adam"}, names)
}
