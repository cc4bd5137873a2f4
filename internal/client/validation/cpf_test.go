package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCPF(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"valid formatted", "529.982.247-25", true},
		{"valid digits only", "52998224725", true},
		{"first check digit wrong", "52998224715", false},
		{"second check digit wrong", "52998224724", false},
		{"all digits identical", "111.111.111-11", false},
		{"too short", "5299822472", false},
		{"too long", "529982247251", false},
		{"empty", "", false},
		{"letters only", "abc.def.ghi-jk", false},
		{"another valid", "168.995.350-09", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidCPF(tt.value))
		})
	}
}

func TestEmailShape(t *testing.T) {
	assert.True(t, EmailShape("joao@example.com"))
	assert.True(t, EmailShape("a@b.co"))
	assert.False(t, EmailShape("joao@example"))
	assert.False(t, EmailShape("joao example@x.com"))
	assert.False(t, EmailShape("@example.com"))
	assert.False(t, EmailShape(""))
}

func TestNonBlank(t *testing.T) {
	assert.True(t, NonBlank("x"))
	assert.False(t, NonBlank("   "))
	assert.False(t, NonBlank(""))
}
