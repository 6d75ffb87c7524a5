// Package mail delivers notification email for the website: contact form
// submissions, Quran requests, membership applications, and announcement
// blasts to the subscriber list. Delivery is fire-and-forget; failures
// are logged, never surfaced to the HTTP caller.
package mail

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

var (
	host     = "https://api.sendgrid.com"
	endpoint = "/v3/mail/send"
)

type Message struct {
	To       []string
	Subject  string
	TextBody string
	HTMLBody string
	ReplyTo  string
}

type Service interface {
	SendMessages(messages ...*Message)
}

type sendgridService struct {
	key      string
	from     *sgmail.Email
	adminTo  string
	subjPref string
}

var _ Service = (*sendgridService)(nil)

// NewService returns the SendGrid-backed service when an API key is
// configured, otherwise a console service that logs the messages.
func NewService(apiKey, fromName, fromAddress, adminTo string) Service {
	if apiKey == "" {
		log.Warn().Msg("SENDGRID_API_KEY not set, email output goes to the log")
		return &consoleService{adminTo: adminTo}
	}
	return &sendgridService{
		key:      apiKey,
		from:     sgmail.NewEmail(fromName, fromAddress),
		adminTo:  adminTo,
		subjPref: "[ISE] ",
	}
}

func (svc *sendgridService) SendMessages(messages ...*Message) {
	for _, msg := range messages {
		msg := msg
		go svc.send(msg)
	}
}

func (svc *sendgridService) send(msg *Message) {
	if len(msg.To) == 0 || (msg.TextBody == "" && msg.HTMLBody == "") {
		return
	}

	m := sgmail.NewV3Mail()
	m.SetFrom(svc.from)
	if msg.ReplyTo != "" {
		m.SetReplyTo(sgmail.NewEmail("", msg.ReplyTo))
	}

	p := sgmail.NewPersonalization()
	p.Subject = svc.subjPref + msg.Subject
	for _, to := range msg.To {
		p.AddTos(sgmail.NewEmail("", to))
	}
	m.AddPersonalizations(p)

	if msg.TextBody != "" {
		m.AddContent(sgmail.NewContent("text/plain", msg.TextBody))
	}
	if msg.HTMLBody != "" {
		m.AddContent(sgmail.NewContent("text/html", msg.HTMLBody))
	}

	req := sendgrid.GetRequest(svc.key, endpoint, host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(m)

	res, err := sendgrid.API(req)
	if err != nil {
		log.Error().Err(err).Str("subject", msg.Subject).Msg("sending email failed")
	} else if res.StatusCode >= http.StatusBadRequest {
		log.Error().Int("status", res.StatusCode).Str("body", res.Body).
			Str("subject", msg.Subject).Msg("sendgrid rejected email")
	}
}

type consoleService struct {
	adminTo string
}

var _ Service = (*consoleService)(nil)

func (svc *consoleService) SendMessages(messages ...*Message) {
	for _, msg := range messages {
		log.Info().
			Strs("to", msg.To).
			Str("subject", msg.Subject).
			Str("body", msg.TextBody).
			Msg("email (console)")
	}
}

// AdminNotification builds a message addressed to the office inbox.
func AdminNotification(adminTo, subject, body, replyTo string) *Message {
	return &Message{
		To:       []string{adminTo},
		Subject:  subject,
		TextBody: body,
		ReplyTo:  replyTo,
	}
}

// ContactFormMessage formats a website contact submission.
func ContactFormMessage(adminTo, name, email, phone, body string) *Message {
	text := fmt.Sprintf("From: %s <%s>\nPhone: %s\n\n%s", name, email, phone, body)
	return AdminNotification(adminTo, "Website contact from "+name, text, email)
}

// QuranRequestMessage formats a free-Quran request.
func QuranRequestMessage(adminTo, name, email, address string) *Message {
	text := fmt.Sprintf("Name: %s\nEmail: %s\nMailing address:\n%s", name, email, address)
	return AdminNotification(adminTo, "Quran request from "+name, text, email)
}

// MembershipMessage formats a membership application.
func MembershipMessage(adminTo, name, email, phone string, familyMembers int) *Message {
	text := fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nFamily members: %d",
		name, email, phone, familyMembers)
	return AdminNotification(adminTo, "Membership application from "+name, text, email)
}

// AnnouncementBlast builds one message per subscriber so addresses are
// never exposed to each other.
func AnnouncementBlast(subscribers []string, title, description string) []*Message {
	out := make([]*Message, 0, len(subscribers))
	body := title
	if strings.TrimSpace(description) != "" {
		body += "\n\n" + description
	}
	for _, addr := range subscribers {
		out = append(out, &Message{
			To:       []string{addr},
			Subject:  title,
			TextBody: body,
		})
	}
	return out
}
