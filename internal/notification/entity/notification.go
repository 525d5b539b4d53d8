package entity

// TemplateKey names an email layout under usecase/templates.
type TemplateKey string

const (
	TemplateWelcome      TemplateKey = "welcome"
	TemplateOrderCreated TemplateKey = "order_created"
)

func (t TemplateKey) String() string {
	return string(t)
}

// Email is a rendered message ready to hand to the mail provider.
type Email struct {
	Template TemplateKey
	To       string
	Subject  string
	HTMLBody string
}
