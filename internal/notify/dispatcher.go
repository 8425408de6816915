package notify

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"
)

const AdminPrefix = "[ADMIN] "

var (
	nonDigits  = regexp.MustCompile(`\D`)
	validPhone = regexp.MustCompile(`^\+\d{10,15}$`)
)

// Message is what gets handed to an SMS provider
type Message struct {
	From string `json:"from"`
	To   string `json:"to"`
	Body string `json:"body"`
}

// Provider delivers one SMS
type Provider interface {
	Send(ctx context.Context, msg Message) error
}

type Config struct {
	AccountSID         string
	AuthToken          string
	FromNumber         string
	DefaultCountryCode string
}

func (c Config) configured() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.FromNumber != ""
}

type Dispatcher struct {
	cfg      Config
	provider Provider
	logger   *slog.Logger
}

func NewDispatcher(cfg Config, provider Provider, logger *slog.Logger) *Dispatcher {
	if cfg.DefaultCountryCode == "" {
		cfg.DefaultCountryCode = "+91"
	}
	return &Dispatcher{cfg: cfg, provider: provider, logger: logger.With("component", "sms")}
}

// NormalizePhone leaves numbers starting with + alone; anything else is
// stripped to digits and prefixed with the default country code.
func NormalizePhone(raw, defaultCountryCode string) string {
	p := strings.TrimSpace(raw)
	if strings.HasPrefix(p, "+") {
		return p
	}
	return defaultCountryCode + nonDigits.ReplaceAllString(p, "")
}

// ValidPhone reports whether p is + followed by 10 to 15 digits
func ValidPhone(p string) bool {
	return validPhone.MatchString(p)
}

// SendSMS is a no-op (nil error) when the provider is not configured or the
// number does not normalize to a valid one.
func (d *Dispatcher) SendSMS(ctx context.Context, to, body string) error {
	if !d.cfg.configured() || d.provider == nil {
		d.logger.Warn("SMS provider not configured, skipping send")
		return nil
	}

	normalized := NormalizePhone(to, d.cfg.DefaultCountryCode)
	if !ValidPhone(normalized) {
		d.logger.Warn("invalid phone number, skipping send", "to", to, "normalized", normalized)
		return nil
	}

	err := d.provider.Send(ctx, Message{From: d.cfg.FromNumber, To: normalized, Body: body})
	if err != nil {
		return err
	}
	d.logger.Info("SMS sent", "to", normalized)
	return nil
}

// NotifyBoth sends body to the customer and "[ADMIN] "+body to the admin,
// concurrently, skipping whichever phone is empty. It waits for both and
// returns the first error.
func (d *Dispatcher) NotifyBoth(ctx context.Context, customerPhone, adminPhone, body string) error {
	type task struct{ to, body string }

	var tasks []task
	if strings.TrimSpace(customerPhone) != "" {
		tasks = append(tasks, task{customerPhone, body})
	}
	if strings.TrimSpace(adminPhone) != "" {
		tasks = append(tasks, task{adminPhone, AdminPrefix + body})
	}
	if len(tasks) == 0 {
		d.logger.Warn("no customer or admin phone, nothing to notify")
		return nil
	}

	var g errgroup.Group
	for _, t := range tasks {
		g.Go(func() error {
			return d.SendSMS(ctx, t.to, t.body)
		})
	}
	return g.Wait()
}
