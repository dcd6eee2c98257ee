// Package translate formats user facing messages in the caller's locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DEFAULT_LOCALE = "en-US" // Used when the host reports no locale.
)

var (
	lock    sync.RWMutex
	tag     language.Tag
	printer *message.Printer
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("wvm: locale: %v", err)
	}

	SetLocale(locales...)
}

// SetLocale selects the message language from a preference list of BCP 47
// tags. An empty list selects DEFAULT_LOCALE.
func SetLocale(locales ...string) {
	if len(locales) == 0 {
		locales = []string{DEFAULT_LOCALE}
	}

	lock.Lock()
	defer lock.Unlock()

	tag = message.MatchLanguage(locales...)
	printer = message.NewPrinter(tag)
}

// Locale returns the selected message language.
func Locale() language.Tag {
	lock.RLock()
	defer lock.RUnlock()

	return tag
}

// From formats an en-US Sprintf() style key in the selected locale.
func From(key message.Reference, args ...any) string {
	lock.RLock()
	defer lock.RUnlock()

	return printer.Sprintf(key, args...)
}

// lazyError is an error whose text is formatted in the locale selected at
// the time Error is called.
type lazyError struct {
	key string
}

func (msg *lazyError) Error() string {
	return From(msg.key)
}

// NewError returns a sentinel error keyed by an en-US message. Each call
// returns a distinct error.
func NewError(key string) error {
	return &lazyError{key: key}
}
