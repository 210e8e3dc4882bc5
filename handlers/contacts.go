package handlers

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/VictoriaMetrics/metrics"

	"github.com/oaiiae/address-book/birthdays"
	"github.com/oaiiae/address-book/contacts"
	ds "github.com/oaiiae/address-book/datastores"
)

// Reply is the outcome of one command.
type Reply struct {
	Text string
	Quit bool
}

const (
	usageNamePhone    = "Give me name and phone please."
	usageName         = "Give me name please."
	usageNameBirthday = "You need to give name and birthday #dd.mm.yyyy"
)

type command struct {
	handle handler
	usage  string
	quit   bool
}

// Contacts dispatches address book commands to [ds.ContactsStore].
// Commands that modify a contact save the store before replying.
type Contacts struct {
	Store        ds.ContactsStore
	ErrorHandler func(context.Context, error)
	Metrics      *metrics.Set
	Now          func() time.Time

	commands map[string]command
}

func (h *Contacts) register() {
	h.commands = make(map[string]command)
	add := func(name, usage string, handle handler) {
		handle = handlerWithErrorHandler(handle, h.ErrorHandler)
		handle = handlerWithMetrics(handle, h.Metrics, name)
		h.commands[name] = command{handle: handle, usage: usage}
	}

	add("hello", "", h.hello)
	add("add", usageNamePhone, h.add)
	add("change", usageNamePhone, h.change)
	add("phone", usageName, h.phone)
	add("all", "", h.all)
	add("add-birthday", usageNameBirthday, h.addBirthday)
	add("show-birthday", usageName, h.showBirthday)
	add("birthdays", "", h.birthdays)
	add("remove-phone", usageNamePhone, h.removePhone)
	add("find-phone", usageNamePhone, h.findPhone)
	add("delete", usageName, h.delete)
	add("stats", "", h.stats)

	bye := func(context.Context, []string) (string, error) { return "Good bye!", nil }
	h.commands["close"] = command{handle: bye, quit: true}
	h.commands["exit"] = command{handle: bye, quit: true}
}

// Commands lists the names accepted by [Contacts.Handle].
func (h *Contacts) Commands() []string {
	if h.commands == nil {
		h.register()
	}
	names := make([]string, 0, len(h.commands))
	for name := range h.commands {
		names = append(names, name)
	}
	return names
}

// Handle runs one command. Errors never escape: they are reported to
// ErrorHandler and turned into a user message.
func (h *Contacts) Handle(ctx context.Context, name string, args []string) Reply {
	if h.commands == nil {
		h.register()
	}

	cmd, ok := h.commands[name]
	if !ok {
		return Reply{Text: "Invalid command."}
	}
	text, err := cmd.handle(ctx, args)
	if err != nil {
		return Reply{Text: cmd.message(err)}
	}
	return Reply{Text: text, Quit: cmd.quit}
}

func (c command) message(err error) string {
	var saveErr *saveError
	switch {
	case errors.Is(err, ErrMissingArguments):
		return c.usage
	case errors.Is(err, ds.ErrContactNotFound):
		return "Contact not found!"
	case errors.Is(err, contacts.ErrInvalidPhoneFormat):
		return "Phone number must have 10 numbers and must contain just numbers!"
	case errors.Is(err, contacts.ErrInvalidBirthdayFormat):
		return "Birthday format must be DD.MM.YYYY!"
	case errors.Is(err, contacts.ErrInvalidDate):
		return "Birthday is not a valid date!"
	case errors.As(err, &saveErr):
		return "Could not save contacts: " + saveErr.err.Error()
	default:
		return "Could not complete the command: " + err.Error()
	}
}

// saveError reports a failed [ds.ContactsStore.Save]. The in-memory change
// stays and is written by the next successful save.
type saveError struct{ err error }

func (e *saveError) Error() string { return "handlers: save: " + e.err.Error() }
func (e *saveError) Unwrap() error { return e.err }

func (h *Contacts) save(ctx context.Context) error {
	if err := h.Store.Save(ctx); err != nil {
		return &saveError{err}
	}
	return nil
}

func (h *Contacts) now() time.Time {
	if h.Now == nil {
		return time.Now()
	}
	return h.Now()
}

func (h *Contacts) hello(context.Context, []string) (string, error) {
	return "How can I help you?", nil
}

func (h *Contacts) add(ctx context.Context, args []string) (string, error) {
	if err := exactly(args, 2); err != nil { //nolint: mnd // name, phone
		return "", err
	}

	record := contacts.NewRecord(args[0])
	if _, err := record.AddPhone(args[1]); err != nil {
		return "", err
	}
	status, err := h.Store.Add(ctx, record)
	if err != nil {
		return "", err
	}
	if err := h.save(ctx); err != nil {
		return "", err
	}

	switch status {
	case ds.AddCreated:
		return "New contact with number added.", nil
	case ds.AddDuplicatePhone:
		return contacts.PhoneDuplicate.String(), nil
	default:
		return contacts.PhoneAdded.String(), nil
	}
}

// change validates both numbers, although [contacts.Record.EditPhone] itself
// accepts any replacement.
func (h *Contacts) change(ctx context.Context, args []string) (string, error) {
	if err := exactly(args, 3); err != nil { //nolint: mnd // name, old, new
		return "", err
	}

	record, err := h.Store.Get(ctx, args[0])
	if err != nil {
		return "", err
	}
	if err := contacts.ValidatePhone(args[1]); err != nil {
		return "", err
	}
	if err := contacts.ValidatePhone(args[2]); err != nil {
		return "", err
	}

	status := record.EditPhone(args[1], args[2])
	if status == contacts.PhoneUpdated {
		if err := h.save(ctx); err != nil {
			return "", err
		}
	}
	return status.String(), nil
}

func (h *Contacts) phone(ctx context.Context, args []string) (string, error) {
	if err := exactly(args, 1); err != nil {
		return "", err
	}

	record, err := h.Store.Get(ctx, args[0])
	if err != nil {
		return "", err
	}
	return record.Name() + ": " + record.JoinPhones(", "), nil
}

func (h *Contacts) all(ctx context.Context, _ []string) (string, error) {
	records, err := h.Store.List(ctx)
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(records))
	for _, record := range records {
		birthday := "No Birthday"
		if b, ok := record.Birthday(); ok {
			birthday = b.String()
		}
		lines = append(lines, record.Name()+" ("+birthday+"): "+record.JoinPhones(", "))
	}
	return strings.Join(lines, "\n"), nil
}

func (h *Contacts) addBirthday(ctx context.Context, args []string) (string, error) {
	if err := exactly(args, 2); err != nil { //nolint: mnd // name, date
		return "", err
	}

	record, err := h.Store.Get(ctx, args[0])
	if err != nil {
		return "", err
	}
	if err := record.SetBirthday(args[1]); err != nil {
		return "", err
	}
	if err := h.save(ctx); err != nil {
		return "", err
	}
	return "Birthday added.", nil
}

func (h *Contacts) showBirthday(ctx context.Context, args []string) (string, error) {
	if err := exactly(args, 1); err != nil {
		return "", err
	}

	record, err := h.Store.Get(ctx, args[0])
	if err != nil {
		return "", err
	}
	return record.DescribeBirthday(), nil
}

func (h *Contacts) birthdays(ctx context.Context, _ []string) (string, error) {
	records, err := h.Store.List(ctx)
	if err != nil {
		return "", err
	}
	return birthdays.Weekly(records, h.now()).String(), nil
}

func (h *Contacts) removePhone(ctx context.Context, args []string) (string, error) {
	if err := exactly(args, 2); err != nil { //nolint: mnd // name, phone
		return "", err
	}

	record, err := h.Store.Get(ctx, args[0])
	if err != nil {
		return "", err
	}
	status, err := record.RemovePhone(args[1])
	if err != nil {
		return "", err
	}
	if status == contacts.PhoneRemoved {
		if err := h.save(ctx); err != nil {
			return "", err
		}
	}
	return status.String(), nil
}

func (h *Contacts) findPhone(ctx context.Context, args []string) (string, error) {
	if err := exactly(args, 2); err != nil { //nolint: mnd // name, phone
		return "", err
	}

	record, err := h.Store.Get(ctx, args[0])
	if err != nil {
		return "", err
	}
	phone, err := record.FindPhone(args[1])
	switch {
	case errors.Is(err, contacts.ErrPhoneNotFound):
		return contacts.PhoneNotFound.String(), nil
	case err != nil:
		return "", err
	}
	return string(phone), nil
}

func (h *Contacts) delete(ctx context.Context, args []string) (string, error) {
	if err := exactly(args, 1); err != nil {
		return "", err
	}

	if err := h.Store.Delete(ctx, args[0]); err != nil {
		return "", err
	}
	if err := h.save(ctx); err != nil {
		return "", err
	}
	return "Contact deleted.", nil
}

func (h *Contacts) stats(context.Context, []string) (string, error) {
	if h.Metrics == nil {
		return "", nil
	}
	var buf bytes.Buffer
	h.Metrics.WritePrometheus(&buf)
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
