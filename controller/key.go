package controller

import "fmt"

type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyEnter
	KeyBackspace
	KeyEsc
	KeyTab
	KeySpace
	KeyOther
)

type KeyKind int

const (
	KindPress KeyKind = iota
	KindRelease
)

// Key is one discrete input event. Rune is only meaningful for KeyRune.
type Key struct {
	Code KeyCode
	Rune rune
	Kind KeyKind
}

func Char(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

func Press(code KeyCode) Key {
	if code == KeySpace {
		return Key{Code: KeySpace, Rune: ' '}
	}
	return Key{Code: code}
}

// Released turns a key into its release event.
func (k Key) Released() Key {
	k.Kind = KindRelease
	return k
}

// Is reports whether k is the character r.
func (k Key) Is(r rune) bool {
	return k.Code == KeyRune && k.Rune == r
}

// Text returns the character a text field should receive for k. Space
// counts as text.
func (k Key) Text() (rune, bool) {
	switch k.Code {
	case KeyRune:
		return k.Rune, true
	case KeySpace:
		return ' ', true
	default:
		return 0, false
	}
}

func (k Key) String() string {
	switch k.Code {
	case KeyRune:
		return string(k.Rune)
	case KeyEnter:
		return "enter"
	case KeyBackspace:
		return "backspace"
	case KeyEsc:
		return "esc"
	case KeyTab:
		return "tab"
	case KeySpace:
		return "space"
	default:
		return fmt.Sprintf("key(%d)", k.Code)
	}
}
