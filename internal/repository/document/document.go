// Package document implements the repositories over the whole-document
// store: every mutation is a read-entire-document, modify-in-memory,
// write-entire-document cycle. Each repository serializes its own
// cycles with a mutex so concurrent in-process writers cannot clobber
// one another.
package document

import (
	"context"
	"encoding/json"
	"reflect"

	"github.com/electromart/storefront/internal/pkg/logger"
	"github.com/electromart/storefront/internal/store"
)

// readDoc loads and decodes a document into dest. An absent document
// leaves dest at its zero value. A document that fails to parse is
// treated as absent rather than crashing the caller; the defect is
// logged so the operator can see the corruption. Decoding goes through
// a scratch value so a partial parse never leaks into dest.
func readDoc(ctx context.Context, st store.Store, log *logger.Logger, key string, dest interface{}) error {
	value, found, err := st.Get(ctx, key)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	scratch := reflect.New(reflect.TypeOf(dest).Elem())
	if err := json.Unmarshal(value, scratch.Interface()); err != nil {
		log.WithFields(map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		}).Warn("Stored document is malformed, treating as empty")
		return nil
	}
	reflect.ValueOf(dest).Elem().Set(scratch.Elem())
	return nil
}

// writeDoc encodes and fully overwrites a document
func writeDoc(ctx context.Context, st store.Store, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return st.Set(ctx, key, data)
}
