package worker

import (
	"errors"
	"testing"

	"newgen_backend/internal/app/service"

	"github.com/stretchr/testify/assert"
)

type fakeMailer struct {
	to, subject, body string
	err               error
}

func (f *fakeMailer) Send(to, subject, htmlBody string) error {
	f.to, f.subject, f.body = to, subject, htmlBody
	return f.err
}

func TestDeliverRendersWelcomeMail(t *testing.T) {
	mailer := &fakeMailer{}
	w := NewMailWorker(nil, "welcome_mail_queue", mailer)

	err := w.deliver(service.WelcomeTask{Email: "a@x.com", Name: "Ann"})
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", mailer.to)
	assert.Equal(t, welcomeSubject, mailer.subject)
	assert.Contains(t, mailer.body, "Hello Ann")
	assert.Contains(t, mailer.body, "Newgen")
}

func TestDeliverPropagatesSendFailure(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("smtp unreachable")}
	w := NewMailWorker(nil, "welcome_mail_queue", mailer)

	err := w.deliver(service.WelcomeTask{Email: "a@x.com", Name: "Ann"})
	assert.Error(t, err)
}
