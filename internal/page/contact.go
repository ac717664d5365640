package page

import (
	"log"
	"strings"
	"time"
)

// DefaultNoticeDuration is how long the contact confirmation stays up.
const DefaultNoticeDuration = 2 * time.Second

// Contact form field names.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// ContactFields are the three values of the contact form.
type ContactFields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Empty reports whether every field is blank.
func (f ContactFields) Empty() bool {
	return strings.TrimSpace(f.Name) == "" &&
		strings.TrimSpace(f.Email) == "" &&
		strings.TrimSpace(f.Message) == ""
}

// ContactForm collects the form fields and shows a short-lived confirmation
// on submit. Nothing is delivered anywhere; submissions are only logged.
type ContactForm struct {
	sched    Scheduler
	duration time.Duration
	onChange func()

	fields ContactFields
	notice bool
	timer  Timer
}

func NewContactForm(sched Scheduler, duration time.Duration, onChange func()) *ContactForm {
	if duration <= 0 {
		duration = DefaultNoticeDuration
	}
	return &ContactForm{sched: sched, duration: duration, onChange: onChange}
}

// SetField stores one field value; unknown names are ignored.
func (f *ContactForm) SetField(name, value string) {
	switch name {
	case FieldName:
		f.fields.Name = value
	case FieldEmail:
		f.fields.Email = value
	case FieldMessage:
		f.fields.Message = value
	}
}

func (f *ContactForm) Fields() ContactFields { return f.fields }

func (f *ContactForm) NoticeVisible() bool { return f.notice }

// Submit logs the fields, clears them and shows the confirmation notice until
// the notice duration elapses. It returns what was submitted.
func (f *ContactForm) Submit() ContactFields {
	sent := f.fields
	log.Printf("page: contact form submitted by %q <%s> (%d chars)", sent.Name, sent.Email, len(sent.Message))

	f.fields = ContactFields{}
	f.ShowNotice()
	return sent
}

// ShowNotice shows the confirmation and (re)starts its dismissal timer.
func (f *ContactForm) ShowNotice() {
	f.notice = true
	if f.timer != nil {
		f.timer.Stop()
	}
	f.timer = f.sched.After(f.duration, f.dismiss)
	f.changed()
}

func (f *ContactForm) dismiss() {
	f.timer = nil
	if !f.notice {
		return
	}
	f.notice = false
	f.changed()
}

// Stop cancels a pending dismissal.
func (f *ContactForm) Stop() {
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}

func (f *ContactForm) changed() {
	if f.onChange != nil {
		f.onChange()
	}
}
