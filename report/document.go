package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fintaskReza/opzer-dash/internal/profitability"
)

//go:embed templates/*.html
var templateFS embed.FS

// DashboardDocument is the data behind the printable dashboard.
type DashboardDocument struct {
	Title       string
	Period      string
	GeneratedAt time.Time
	Summary     profitability.Summary
	Clients     []profitability.ClientProfitabilityRow
	Services    []profitability.ServiceProfitabilityRow
	Team        []profitability.TeamMemberUtilizationRow
}

var dashboardTemplate = template.Must(template.New("dashboard.html").Funcs(formatFuncs(language.AmericanEnglish)).ParseFS(templateFS, "templates/dashboard.html"))

// RenderDashboard produces the HTML handed to Gotenberg.
func RenderDashboard(doc DashboardDocument) (string, error) {
	view := struct {
		DashboardDocument
		GeneratedAt string
	}{DashboardDocument: doc, GeneratedAt: doc.GeneratedAt.UTC().Format("2006-01-02 15:04 MST")}

	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("report: render dashboard: %w", err)
	}
	return buf.String(), nil
}

func formatFuncs(tag language.Tag) template.FuncMap {
	p := message.NewPrinter(tag)
	return template.FuncMap{
		"money": func(v float64) string { return p.Sprintf("$%.2f", v) },
		"hours": func(v float64) string { return p.Sprintf("%.1f", v) },
		"pct":   func(v float64) string { return p.Sprintf("%.1f%%", v*100) },
		"deref": func(v *float64) float64 {
			if v == nil {
				return 0
			}
			return *v
		},
	}
}
