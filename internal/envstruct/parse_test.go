package envstruct_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/fitlog/internal/envstruct"
)

func TestPopulate(t *testing.T) {
	tests := []struct {
		name      string
		v         any
		lookupEnv func(string) (string, bool)
		want      any
		wantErr   error
	}{
		{
			name:      "nil",
			v:         nil,
			lookupEnv: func(_ string) (string, bool) { return "", false },
			want:      nil,
			wantErr:   envstruct.ErrInvalidValue,
		},
		{
			name:      "not pointer",
			v:         struct{}{},
			lookupEnv: func(_ string) (string, bool) { return "", false },
			want:      nil,
			wantErr:   envstruct.ErrInvalidValue,
		},
		{
			name:      "empty struct",
			v:         &struct{}{},
			lookupEnv: func(_ string) (string, bool) { return "", false },
			want:      &struct{}{},
			wantErr:   nil,
		},
		{
			name: "unset without default",
			v: &struct {
				Addr string `env:"FITLOG_ADDR"`
			}{},
			lookupEnv: func(_ string) (string, bool) { return "", false },
			want:      nil,
			wantErr:   envstruct.ErrEnvNotSet,
		},
		{
			name: "set in environment",
			v: &struct {
				Addr string `env:"FITLOG_ADDR"`
			}{},
			lookupEnv: func(_ string) (string, bool) { return "localhost:0", true },
			want: &struct {
				Addr string `env:"FITLOG_ADDR"`
			}{Addr: "localhost:0"},
			wantErr: nil,
		},
		{
			name: "unset with default",
			v: &struct {
				SqliteURL string `env:"FITLOG_SQLITE_URL" envDefault:":memory:"`
			}{},
			lookupEnv: func(_ string) (string, bool) { return "", false },
			want: &struct {
				SqliteURL string `env:"FITLOG_SQLITE_URL" envDefault:":memory:"`
			}{SqliteURL: ":memory:"},
			wantErr: nil,
		},
		{
			name: "untagged fields are skipped",
			v: &struct {
				Ignored string
			}{},
			lookupEnv: func(_ string) (string, bool) { return "value", true },
			want: &struct {
				Ignored string
			}{},
			wantErr: nil,
		},
		{
			name: "non-string field",
			v: &struct {
				Count int `env:"FITLOG_COUNT"`
			}{},
			lookupEnv: func(_ string) (string, bool) { return "3", true },
			want:      nil,
			wantErr:   envstruct.ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := envstruct.Populate(tt.v, tt.lookupEnv)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Populate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Populate() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, tt.v); diff != "" {
				t.Errorf("Populate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPopulateJoinsErrors(t *testing.T) {
	v := &struct {
		A string `env:"FITLOG_A"`
		B string `env:"FITLOG_B"`
	}{}
	err := envstruct.Populate(v, func(_ string) (string, bool) { return "", false })
	if err == nil {
		t.Fatal("expected error")
	}
	for _, name := range []string{"FITLOG_A", "FITLOG_B"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("expected error %q to mention %s", err, name)
		}
	}
}
