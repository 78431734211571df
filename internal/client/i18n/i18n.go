// Package i18n holds the user-facing strings of the dashboard in Brazilian
// Portuguese (the default) and American English, served through
// golang.org/x/text/message.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"golang.org/x/text/number"
)

// Key identifies a translatable message.
type Key string

const (
	KeyDashboardTitle  Key = "dashboard.title"
	KeyLoading         Key = "dashboard.loading"
	KeyLoadError       Key = "dashboard.load_error"
	KeyLogout          Key = "dashboard.logout"
	KeyCardTotal       Key = "dashboard.card.total"
	KeyCardSales       Key = "dashboard.card.sales"
	KeyCardUsers       Key = "dashboard.card.users"
	KeySalesChart      Key = "dashboard.chart.sales"
	KeyUsersChart      Key = "dashboard.chart.users"
	KeyNoData          Key = "dashboard.chart.empty"
	KeySessionExpired  Key = "auth.session_expired"
	KeyLoginSuccess    Key = "auth.login_success"
	KeyRegisterSuccess Key = "auth.register_success"
	KeyLoggedOut       Key = "auth.logged_out"
)

// DefaultLocale is used when the requested locale is unknown.
const DefaultLocale = "pt-BR"

var supported = []language.Tag{
	language.BrazilianPortuguese,
	language.AmericanEnglish,
}

var messages = map[language.Tag]map[Key]string{
	language.BrazilianPortuguese: {
		KeyDashboardTitle:  "Dashboard",
		KeyLoading:         "Carregando...",
		KeyLoadError:       "Erro ao carregar métricas",
		KeyLogout:          "Sair",
		KeyCardTotal:       "Total de Métricas",
		KeyCardSales:       "Vendas",
		KeyCardUsers:       "Usuários",
		KeySalesChart:      "Vendas Mensais",
		KeyUsersChart:      "Métricas de Usuários",
		KeyNoData:          "Sem dados",
		KeySessionExpired:  "Sessão expirada, faça login novamente",
		KeyLoginSuccess:    "Login realizado como %s",
		KeyRegisterSuccess: "Conta criada para %s",
		KeyLoggedOut:       "Sessão encerrada",
	},
	language.AmericanEnglish: {
		KeyDashboardTitle:  "Dashboard",
		KeyLoading:         "Loading...",
		KeyLoadError:       "Failed to load metrics",
		KeyLogout:          "Log out",
		KeyCardTotal:       "Total metrics",
		KeyCardSales:       "Sales",
		KeyCardUsers:       "Users",
		KeySalesChart:      "Monthly sales",
		KeyUsersChart:      "User metrics",
		KeyNoData:          "No data",
		KeySessionExpired:  "Session expired, please log in again",
		KeyLoginSuccess:    "Logged in as %s",
		KeyRegisterSuccess: "Account created for %s",
		KeyLoggedOut:       "Logged out",
	},
}

var (
	builder = newBuilder()
	matcher = language.NewMatcher(supported)
)

func newBuilder() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.BrazilianPortuguese))
	for tag, msgs := range messages {
		for key, msg := range msgs {
			if err := b.SetString(tag, string(key), msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// Catalog renders messages for one locale.
type Catalog struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns the catalog best matching locale (a BCP 47 tag such as
// "en-US" or "pt"); unknown locales fall back to DefaultLocale.
func New(locale string) *Catalog {
	_, idx, _ := matcher.Match(language.Make(locale))
	tag := supported[idx]
	return &Catalog{tag: tag, printer: message.NewPrinter(tag, message.Catalog(builder))}
}

// Locale returns the resolved BCP 47 tag.
func (c *Catalog) Locale() string {
	return c.tag.String()
}

// T formats the message for key with args.
func (c *Catalog) T(key Key, args ...any) string {
	return c.printer.Sprintf(string(key), args...)
}

// Number formats v with the locale's separators and at most two fraction
// digits.
func (c *Catalog) Number(v float64) string {
	return c.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}
