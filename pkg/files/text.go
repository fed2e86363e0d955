package files

import (
	"context"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var newTextDecoder = func() transform.Transformer {
	return unicode.BOMOverride(unicode.UTF8.NewDecoder())
}

// ReadText loads the whole file and decodes it to UTF-8 on a best-effort
// basis: a byte order mark selects UTF-8 or UTF-16 and invalid UTF-8 bytes
// are replaced with U+FFFD. Every failure is returned as *ReadError.
func ReadText(ctx context.Context, store Store, name string) (string, error) {
	data, err := store.ReadFile(ctx, name)
	if err != nil {
		return "", &ReadError{Path: name, Err: err}
	}
	decoded, _, err := transform.Bytes(newTextDecoder(), data)
	if err != nil {
		return "", &ReadError{Path: name, Err: err}
	}
	return string(decoded), nil
}
