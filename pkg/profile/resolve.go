package profile

import (
	"github.com/dotrs/dotrs/pkg/cipher"
	"github.com/dotrs/dotrs/pkg/errors"
)

// Resolve returns a copy of v with every encrypted leaf decrypted to a
// string. An empty key means no key was supplied, which is only an error
// when v holds encrypted leaves. Nothing is returned on failure.
func Resolve(v Value, key string) (Value, error) {
	switch v.Kind {
	case KindEncrypted:
		if key == "" {
			return Null, errors.New(errors.ErrNoEncryptionKey, "encryption key must be provided")
		}
		plain, err := cipher.Decrypt(v.Str, key)
		if err != nil {
			return Null, err
		}
		return String(plain), nil
	case KindList:
		items := make([]Value, len(v.List))
		for i, item := range v.List {
			r, err := Resolve(item, key)
			if err != nil {
				return Null, err
			}
			items[i] = r
		}
		return List(items...), nil
	case KindMap:
		entries := make([]Entry, len(v.Map))
		for i, e := range v.Map {
			r, err := Resolve(e.Value, key)
			if err != nil {
				return Null, errors.Wrapf(err, errors.GetErrorCode(err), "resolving %q", e.Key)
			}
			entries[i] = Entry{Key: e.Key, Value: r}
		}
		return Map(entries...), nil
	}
	return v, nil
}
