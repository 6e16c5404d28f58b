package notify

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/BruksfildServices01/booktable/internal/domain/booking"
	"github.com/BruksfildServices01/booktable/internal/models"
)

const sendEndpoint = "/v3/mail/send"

type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
	// Host overrides https://api.sendgrid.com.
	Host    string
	Timeout time.Duration

	// AppName signs the mail; ManageURL, when set, is linked as the place
	// to review bookings.
	AppName   string
	ManageURL string
}

// SendGridNotifier sends booking mails. Failures are logged and reported
// as false; they never reach the booking flow as errors.
type SendGridNotifier struct {
	cfg SendGridConfig
	log zerolog.Logger
}

func NewSendGridNotifier(cfg SendGridConfig, log zerolog.Logger) *SendGridNotifier {
	if cfg.FromName == "" {
		cfg.FromName = "BookTable"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &SendGridNotifier{
		cfg: cfg,
		log: log.With().Str("component", "sendgrid").Logger(),
	}
}

func (n *SendGridNotifier) SendBookingConfirmation(ctx context.Context, b *models.Booking) bool {
	subject := fmt.Sprintf("Your table at %s is confirmed", b.RestaurantName)
	text := fmt.Sprintf(
		"Your booking #%d at %s for %d on %s at %s is confirmed.",
		b.ID, b.RestaurantName, b.PartySize, b.BookingDate, b.BookingTime,
	)
	return n.send(ctx, b, "confirmation", subject, n.footer(text))
}

func (n *SendGridNotifier) SendBookingCancellation(ctx context.Context, b *models.Booking) bool {
	subject := fmt.Sprintf("Your booking at %s was cancelled", b.RestaurantName)
	text := fmt.Sprintf(
		"Your booking #%d at %s on %s at %s has been cancelled.",
		b.ID, b.RestaurantName, b.BookingDate, b.BookingTime,
	)
	return n.send(ctx, b, "cancellation", subject, n.footer(text))
}

func (n *SendGridNotifier) footer(text string) string {
	if n.cfg.ManageURL != "" {
		text += "\n\nManage your bookings: " + n.cfg.ManageURL
	}
	if n.cfg.AppName != "" {
		text += "\n\n" + n.cfg.AppName
	}
	return text
}

func (n *SendGridNotifier) send(
	ctx context.Context,
	b *models.Booking,
	kind string,
	subject string,
	text string,
) bool {

	ev := n.log.With().
		Uint("booking_id", b.ID).
		Str("kind", kind).
		Logger()

	if b.Email == "" {
		ev.Warn().Msg("booking has no recipient e-mail")
		return false
	}

	from := mail.NewEmail(n.cfg.FromName, n.cfg.FromEmail)
	to := mail.NewEmail("", b.Email)
	message := mail.NewSingleEmail(from, subject, to, text, "<p>"+strings.ReplaceAll(html.EscapeString(text), "\n", "<br>")+"</p>")

	request := sendgrid.GetRequest(n.cfg.APIKey, sendEndpoint, n.cfg.Host)
	request.Method = "POST"
	request.Body = mail.GetRequestBody(message)

	ctx, cancel := context.WithTimeout(ctx, n.cfg.Timeout)
	defer cancel()

	resp, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		ev.Error().Err(err).Msg("sendgrid request failed")
		return false
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		ev.Error().
			Int("status", resp.StatusCode).
			Str("body", resp.Body).
			Msg("sendgrid rejected message")
		return false
	}

	ev.Info().Int("status", resp.StatusCode).Msg("booking mail sent")
	return true
}

// LogNotifier is used when no SendGrid key is configured.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log.With().Str("component", "notify").Logger()}
}

func (n *LogNotifier) SendBookingConfirmation(_ context.Context, b *models.Booking) bool {
	n.log.Warn().Uint("booking_id", b.ID).Msg("mail disabled, confirmation not sent")
	return false
}

func (n *LogNotifier) SendBookingCancellation(_ context.Context, b *models.Booking) bool {
	n.log.Warn().Uint("booking_id", b.ID).Msg("mail disabled, cancellation not sent")
	return false
}

var (
	_ booking.Notifier = (*SendGridNotifier)(nil)
	_ booking.Notifier = (*LogNotifier)(nil)
)
