// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package email

import (
	"net/mail"
	"strconv"

	"github.com/absmach/samos-exporter/pkg/errors"
	"gopkg.in/gomail.v2"
)

var (
	errBadPort  = errors.New("invalid e-mail server port")
	errSendMail = errors.New("sending e-mail failed")
)

// Config email agent configuration.
type Config struct {
	Host        string `env:"HOST"         envDefault:"localhost"`
	Port        string `env:"PORT"         envDefault:"25"`
	Username    string `env:"USERNAME"     envDefault:""`
	Password    string `env:"PASSWORD"     envDefault:""`
	FromAddress string `env:"FROM_ADDRESS" envDefault:""`
	FromName    string `env:"FROM_NAME"    envDefault:""`
}

// Agent for mailing.
type Agent struct {
	conf *Config
	dial *gomail.Dialer
}

// New creates new email agent.
func New(c *Config) (*Agent, error) {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return nil, errors.Wrap(errBadPort, err)
	}

	return &Agent{
		conf: c,
		dial: gomail.NewDialer(c.Host, port, c.Username, c.Password),
	}, nil
}

// Send sends an e-mail with a plain-text body and optional file attachments.
func (a *Agent) Send(to, cc []string, subject, content string, attachments ...string) error {
	from := mail.Address{Name: a.conf.FromName, Address: a.conf.FromAddress}

	m := gomail.NewMessage()
	m.SetHeader("From", from.String())
	m.SetHeader("To", to...)
	if len(cc) > 0 {
		m.SetHeader("Cc", cc...)
	}
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", content)
	for _, attachment := range attachments {
		m.Attach(attachment)
	}

	if err := a.dial.DialAndSend(m); err != nil {
		return errors.Wrap(errSendMail, err)
	}

	return nil
}
