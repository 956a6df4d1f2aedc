package richtext_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/richtext"
	"github.com/fwojciec/richtext/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// valueHasher hashes string values by length so tests can control collisions.
func valueHasher() *mock.Hasher {
	return &mock.Hasher{
		HashFn: func(f richtext.LocalizedField) (uint64, error) {
			s, _ := f.Value.(string)
			return uint64(len(s)), nil
		},
	}
}

func field(name, value string) richtext.EntryField {
	return richtext.EntryField{Name: name, Field: richtext.LocalizedField{Locale: richtext.DefaultLocale, Value: value}}
}

func TestDiff(t *testing.T) {
	t.Parallel()

	t.Run("reports no changes for equal entries", func(t *testing.T) {
		t.Parallel()

		entry := richtext.FormattedEntry{field("title", "a"), field("body", "bb")}

		changes, err := richtext.Diff(entry, entry, valueHasher())

		require.NoError(t, err)
		assert.Empty(t, changes)
	})

	t.Run("reports added, modified and removed fields", func(t *testing.T) {
		t.Parallel()

		prev := richtext.FormattedEntry{field("title", "a"), field("body", "bb"), field("old", "x")}
		next := richtext.FormattedEntry{field("body", "ccc"), field("new", "y"), field("title", "a")}

		changes, err := richtext.Diff(prev, next, valueHasher())

		require.NoError(t, err)
		assert.Equal(t, []richtext.FieldChange{
			{Field: "body", Kind: richtext.ChangeModified},
			{Field: "new", Kind: richtext.ChangeAdded},
			{Field: "old", Kind: richtext.ChangeRemoved},
		}, changes)
	})

	t.Run("returns hasher errors as invalid", func(t *testing.T) {
		t.Parallel()

		h := &mock.Hasher{
			HashFn: func(richtext.LocalizedField) (uint64, error) {
				return 0, errors.New("unsupported value")
			},
		}

		_, err := richtext.Diff(richtext.FormattedEntry{field("title", "a")}, nil, h)

		require.Error(t, err)
		assert.Equal(t, richtext.EINVALID, richtext.ErrorCode(err))
	})
}
