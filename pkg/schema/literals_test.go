package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLiterals_Validate(t *testing.T) {
	assert.NoError(t, DefaultLiterals().Validate())
}

func TestLiterals_Validate(t *testing.T) {
	t.Run("empty table is valid", func(t *testing.T) {
		assert.NoError(t, Literals{}.Validate())
	})

	t.Run("reports every bad literal", func(t *testing.T) {
		lit := Literals{
			UUID:  "not-a-uuid",
			Email: "nobody",
			URL:   "/relative",
		}
		err := lit.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "uuid literal")
		assert.Contains(t, err.Error(), "email literal")
		assert.Contains(t, err.Error(), "url literal")
		assert.Contains(t, err.Error(), "3 errors occurred")
	})

	t.Run("bad date", func(t *testing.T) {
		err := Literals{Date: "someday"}.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "date literal")
	})
}

func TestLiterals_Merge(t *testing.T) {
	base := DefaultLiterals()

	t.Run("nil overrides", func(t *testing.T) {
		assert.Equal(t, base, base.Merge(nil))
	})

	t.Run("only non-empty fields apply", func(t *testing.T) {
		merged := base.Merge(&Literals{Phone: "+44 20 7946 0000"})
		assert.Equal(t, "+44 20 7946 0000", merged.Phone)
		assert.Equal(t, base.Email, merged.Email)
		assert.Equal(t, base.DateTime, merged.DateTime)
	})

	t.Run("receiver is not modified", func(t *testing.T) {
		_ = base.Merge(&Literals{Email: "other@example.com"})
		assert.Equal(t, "user@example.com", base.Email)
	})
}
