package booking

import (
	"errors"
	"strings"
	"unicode"
)

var (
	ErrNameRequired    = errors.New("client name is required")
	ErrPhoneRequired   = errors.New("client phone is required")
	ErrPhoneTooShort   = errors.New("client phone must have at least 10 digits")
	ErrAddressRequired = errors.New("client address is required")
)

// ClientInfo is the contact block captured by the booking form. Phone is the
// canonical contact channel; email is optional.
type ClientInfo struct {
	name    string
	phone   string
	email   string
	address string
}

func NewClientInfo(name, phone, email, address string) (ClientInfo, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	address = strings.TrimSpace(address)

	if name == "" {
		return ClientInfo{}, ErrNameRequired
	}
	if phone == "" {
		return ClientInfo{}, ErrPhoneRequired
	}
	if len(PhoneDigits(phone)) < 10 {
		return ClientInfo{}, ErrPhoneTooShort
	}
	if address == "" {
		return ClientInfo{}, ErrAddressRequired
	}

	return ClientInfo{
		name:    name,
		phone:   phone,
		email:   strings.TrimSpace(email),
		address: address,
	}, nil
}

func ReconstructClientInfo(name, phone, email, address string) ClientInfo {
	return ClientInfo{name: name, phone: phone, email: email, address: address}
}

func (c ClientInfo) Name() string    { return c.name }
func (c ClientInfo) Phone() string   { return c.phone }
func (c ClientInfo) Email() string   { return c.email }
func (c ClientInfo) Address() string { return c.address }

// PhoneDigits strips everything but digits, the form wa.me links expect.
func PhoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
