package services

import (
	"errors"
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"sync"
	"time"

	"tanuki/internal/config"
)

const (
	queueSize       = 64
	maxSendAttempts = 3
	retryBackoff    = 200 * time.Millisecond
)

var (
	ErrMailNotConfigured = errors.New("mail service is not configured")
	ErrMailQueueFull     = errors.New("mail queue is full")
)

// Sender delivers one composed message. The default sender speaks SMTP;
// tests inject a recorder instead.
type Sender func(to []string, subject, body string) error

type mailJob struct {
	to      []string
	subject string
	body    string
}

// MailService dispatches outbound notifications. Dispatch is best-effort
// asynchronous: a nil return means the message is definitively queued and a
// worker will retry delivery up to maxSendAttempts times. Callers must not
// report "sent" on a non-nil return.
type MailService struct {
	from         string
	moderationTo string
	send         Sender
	enabled      bool
	queue        chan mailJob
	wg           sync.WaitGroup
	closeOnce    sync.Once
}

// NewMailService wires the service from config. Pass a nil sender for real
// SMTP delivery; a non-nil sender overrides transport and marks the service
// enabled regardless of SMTP settings.
func NewMailService(cfg config.Config, send Sender) *MailService {
	s := &MailService{
		from:         cfg.SMTPFrom,
		moderationTo: cfg.ModerationEmail,
		send:         send,
		queue:        make(chan mailJob, queueSize),
	}

	if send != nil {
		s.enabled = true
	} else {
		s.enabled = cfg.SMTPHost != "" && cfg.SMTPPort != "" && cfg.SMTPFrom != ""
		if !s.enabled {
			log.Println("MailService disabled: missing SMTP configuration")
		}
		addr := fmt.Sprintf("%s:%s", cfg.SMTPHost, cfg.SMTPPort)
		auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
		s.send = func(to []string, subject, body string) error {
			msg := []byte(fmt.Sprintf(
				"To: %s\r\nFrom: Tanuki <%s>\r\nSubject: %s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
				strings.Join(to, ", "), cfg.SMTPFrom, subject, body))
			return smtp.SendMail(addr, auth, cfg.SMTPFrom, to, msg)
		}
	}

	s.wg.Add(1)
	go s.worker()
	return s
}

func (s *MailService) Enabled() bool {
	return s.enabled
}

// Dispatch queues a message. It fails fast when the service is disabled or
// the queue is full; it never blocks the request that called it.
func (s *MailService) Dispatch(to []string, subject, body string) error {
	if !s.enabled {
		return ErrMailNotConfigured
	}
	select {
	case s.queue <- mailJob{to: to, subject: subject, body: body}:
		return nil
	default:
		return ErrMailQueueFull
	}
}

// SendModerationRequest composes and queues the correction-request
// notification for one post.
func (s *MailService) SendModerationRequest(postID uint, email, subject, request, postURL string) error {
	// TODO: vary the subject when the optional username field was filled in.
	subj := fmt.Sprintf("Request for post %d (%s: %s)", postID, email, subject)
	body := fmt.Sprintf("Request text: %s\n\nPost link: %s", request, postURL)
	return s.Dispatch([]string{s.moderationTo}, subj, body)
}

// Close stops accepting work and drains the queue.
func (s *MailService) Close() {
	s.closeOnce.Do(func() {
		close(s.queue)
	})
	s.wg.Wait()
}

func (s *MailService) worker() {
	defer s.wg.Done()
	for job := range s.queue {
		var err error
		for attempt := 1; attempt <= maxSendAttempts; attempt++ {
			if err = s.send(job.to, job.subject, job.body); err == nil {
				break
			}
			if attempt < maxSendAttempts {
				time.Sleep(retryBackoff * time.Duration(attempt))
			}
		}
		if err != nil {
			log.Printf("Failed to send email to %v after %d attempts: %v", job.to, maxSendAttempts, err)
		} else {
			log.Printf("Email sent to %v: %s", job.to, job.subject)
		}
	}
}
