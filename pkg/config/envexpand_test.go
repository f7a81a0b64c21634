package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("EMPTY_VAR", "")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "braced variable",
			in:   "host: ${DB_HOST}",
			want: "host: db.internal",
		},
		{
			name: "default used when unset",
			in:   "url: ${UNSET_VAR_XYZ:-http://localhost}",
			want: "url: http://localhost",
		},
		{
			name: "default used when empty",
			in:   "url: ${EMPTY_VAR:-fallback}",
			want: "url: fallback",
		},
		{
			name: "unset without default expands empty",
			in:   "key: ${UNSET_VAR_XYZ}",
			want: "key: ",
		},
		{
			name: "bare dollar untouched",
			in:   "pattern: ^user_$DB_HOST$",
			want: "pattern: ^user_$DB_HOST$",
		},
		{
			name: "unterminated brace left alone",
			in:   "weird: ${DB_HOST",
			want: "weird: ${DB_HOST",
		},
		{
			name: "multiple references",
			in:   "${DB_HOST}:${PORT:-5432}",
			want: "db.internal:5432",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(ExpandEnv([]byte(tt.in))))
		})
	}
}
