package contacts

import (
	"slices"
	"strings"
)

type PhoneStatus int

const (
	PhoneAdded PhoneStatus = iota + 1
	PhoneDuplicate
	PhoneRemoved
	PhoneUpdated
	PhoneNotFound
)

var phoneStatusText = [...]string{ //nolint: gochecknoglobals,nolintlint
	PhoneAdded:     "Phone number added.",
	PhoneDuplicate: "You already have this phone number.",
	PhoneRemoved:   "Phone number removed.",
	PhoneUpdated:   "Phone number updated.",
	PhoneNotFound:  "Phone number not found.",
}

func (s PhoneStatus) String() string {
	if s <= 0 || int(s) >= len(phoneStatusText) {
		return ""
	}
	return phoneStatusText[s]
}

// BirthdayNotSet is returned by [Record.DescribeBirthday] when no birthday is stored.
const BirthdayNotSet = "Birthday info not found."

// Record holds one contact. Its phones are unique by value and keep their
// insertion order.
type Record struct {
	name     string
	phones   []Phone
	birthday *Birthday
}

func NewRecord(name string) *Record { return &Record{name: name} }

// Restore rebuilds a record from persisted values without validating them.
func Restore(name string, phones []Phone, birthday *Birthday) *Record {
	return &Record{name: name, phones: slices.Clone(phones), birthday: birthday}
}

func (r *Record) Name() string { return r.name }

// Phones returns a copy of the record phones.
func (r *Record) Phones() []Phone { return slices.Clone(r.phones) }

// Birthday returns the stored birthday, if any.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

func (r *Record) AddPhone(s string) (PhoneStatus, error) {
	phone, err := ParsePhone(s)
	if err != nil {
		return 0, err
	}
	if slices.Contains(r.phones, phone) {
		return PhoneDuplicate, nil
	}
	r.phones = append(r.phones, phone)
	return PhoneAdded, nil
}

func (r *Record) RemovePhone(s string) (PhoneStatus, error) {
	phone, err := ParsePhone(s)
	if err != nil {
		return 0, err
	}
	i := slices.Index(r.phones, phone)
	if i < 0 {
		return PhoneNotFound, nil
	}
	r.phones = slices.Delete(r.phones, i, i+1)
	return PhoneRemoved, nil
}

// EditPhone replaces the first phone equal to from with to. Neither value is
// validated, callers wanting a well-formed result must check to themselves.
func (r *Record) EditPhone(from, to string) PhoneStatus {
	i := slices.Index(r.phones, Phone(from))
	if i < 0 {
		return PhoneNotFound
	}
	r.phones[i] = Phone(to)
	return PhoneUpdated
}

func (r *Record) FindPhone(s string) (Phone, error) {
	phone, err := ParsePhone(s)
	if err != nil {
		return "", err
	}
	if !slices.Contains(r.phones, phone) {
		return "", ErrPhoneNotFound
	}
	return phone, nil
}

// SetBirthday parses s and overwrites any stored birthday.
func (r *Record) SetBirthday(s string) error {
	birthday, err := ParseBirthday(s)
	if err != nil {
		return err
	}
	r.birthday = &birthday
	return nil
}

func (r *Record) DescribeBirthday() string {
	if r.birthday == nil {
		return BirthdayNotSet
	}
	return r.birthday.Format(BirthdayDisplayLayout)
}

// JoinPhones is [strings.Join] over the record phones.
func (r *Record) JoinPhones(sep string) string {
	elems := make([]string, len(r.phones))
	for i, p := range r.phones {
		elems[i] = string(p)
	}
	return strings.Join(elems, sep)
}

func (r *Record) String() string {
	return "Contact name: " + r.name + ", phones: " + r.JoinPhones("; ")
}
