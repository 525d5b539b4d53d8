package usecase

import (
	"bytes"
	"context"
	"embed"
	"html/template"

	"github.com/shandysiswandi/storefront/internal/notification/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/clock"
	"github.com/shandysiswandi/storefront/internal/pkg/config"
	"github.com/shandysiswandi/storefront/internal/pkg/instrument"
	"github.com/shandysiswandi/storefront/internal/pkg/mail"
	"github.com/shandysiswandi/storefront/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").Option("missingkey=zero").ParseFS(templateFS, "templates/*.html"))

type repoMail interface {
	Send(ctx context.Context, msg mail.Message) error
}

type Usecase struct {
	repoMail  repoMail
	validator validator.Validator
	cfg       config.Config
	clock     clock.Clocker
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoMail   repoMail
	Validator  validator.Validator
	Config     config.Config
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoMail:  dep.RepoMail,
		validator: dep.Validator,
		cfg:       dep.Config,
		clock:     dep.Clock,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("notification.usecase").Start(ctx, name)
}

func (s *Usecase) baseTemplateData() map[string]any {
	return map[string]any{
		"company_name":  s.cfg.GetString("app.name"),
		"support_email": s.cfg.GetString("modules.notification.support_email"),
		"web_url":       s.cfg.GetString("app.web"),
		"year":          s.clock.Now().Format("2006"),
	}
}

func (s *Usecase) render(key entity.TemplateKey, data map[string]any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, key.String()+".html", data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *Usecase) send(ctx context.Context, e entity.Email) error {
	return s.repoMail.Send(ctx, mail.Message{
		To:       []string{e.To},
		Subject:  e.Subject,
		HTMLBody: e.HTMLBody,
	})
}
