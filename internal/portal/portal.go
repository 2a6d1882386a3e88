// Package portal is the route table and guard for one portal binary.
// Navigation to a protected route fails unless the session is authenticated,
// which for the admin portal also means the identity holds the admin role.
package portal

import (
	"context"
	"errors"
	"fmt"

	"medibook-portals/internal/session"

	"github.com/sirupsen/logrus"
)

var (
	ErrLoginRequired = errors.New("login required")
	ErrUnknownRoute  = errors.New("unknown route")
)

// ShowFunc renders one screen; the delivery layer supplies it.
type ShowFunc func(ctx context.Context) error

type route struct {
	public bool
	show   ShowFunc
}

type Portal struct {
	name    string
	log     *logrus.Logger
	session *session.Session
	routes  map[string]route
	current string
}

func New(name string, log *logrus.Logger, sess *session.Session) *Portal {
	return &Portal{
		name:    name,
		log:     log,
		session: sess,
		routes:  make(map[string]route),
	}
}

// Handle registers a route. Public routes are reachable while logged out.
func (p *Portal) Handle(name string, public bool, show ShowFunc) {
	p.routes[name] = route{public: public, show: show}
}

// Current is the route the user is on, "" before the first navigation.
func (p *Portal) Current() string {
	return p.current
}

// Navigate runs the guard and, if it passes, shows the screen.
func (p *Portal) Navigate(ctx context.Context, name string) error {
	r, ok := p.routes[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownRoute, name)
	}

	if !r.public && !p.session.IsAuthenticated() {
		p.log.WithFields(logrus.Fields{
			"portal": p.name,
			"route":  name,
		}).Info("Blocked navigation to protected route")
		return ErrLoginRequired
	}

	p.current = name
	return r.show(ctx)
}

// Routes lists the registered route names the current session may reach.
func (p *Portal) Routes() []string {
	names := make([]string, 0, len(p.routes))
	for name, r := range p.routes {
		if r.public || p.session.IsAuthenticated() {
			names = append(names, name)
		}
	}
	return names
}
