package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_ResolvesLocale(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"pt-BR", "pt-BR"},
		{"en-US", "en-US"},
		{"en", "en-US"},
		{"", DefaultLocale},
		{"xx-invalid", DefaultLocale},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.in).Locale())
		})
	}
}

func TestT_DefaultBanner(t *testing.T) {
	c := New("")
	assert.Equal(t, "Erro ao carregar métricas", c.T(KeyLoadError))
	assert.Equal(t, "Vendas Mensais", c.T(KeySalesChart))
	assert.Equal(t, "Métricas de Usuários", c.T(KeyUsersChart))
}

func TestT_English(t *testing.T) {
	c := New("en-US")
	assert.Equal(t, "Failed to load metrics", c.T(KeyLoadError))
	assert.Equal(t, "Logged in as ana@example.com", c.T(KeyLoginSuccess, "ana@example.com"))
}

func TestMessages_EveryKeyTranslated(t *testing.T) {
	pt := messages[supported[0]]
	for _, tag := range supported {
		assert.Len(t, messages[tag], len(pt), "locale %s", tag)
		for key := range pt {
			_, ok := messages[tag][key]
			assert.True(t, ok, "locale %s misses %s", tag, key)
		}
	}
}

func TestNumber_LocaleSeparators(t *testing.T) {
	assert.Equal(t, "12,345.5", New("en-US").Number(12345.5))
	assert.Equal(t, "12.345,5", New("pt-BR").Number(12345.5))
	assert.Equal(t, "42", New("en-US").Number(42))
}
