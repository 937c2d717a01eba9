package console

import (
	"context"
	"errors"

	"github.com/samber/lo"
)

var (
	// errExit ends the whole session
	errExit = errors.New("exit")
	// errBack leaves the current submenu
	errBack = errors.New("back")
)

type route struct {
	key    string
	label  string
	handle func(ctx context.Context) error
}

type menu []route

func (m menu) show(c *Console) {
	for _, r := range m {
		c.printf("%s. %s\n", r.key, r.label)
	}
}

func (m menu) find(key string) (route, bool) {
	return lo.Find(m, func(r route) bool { return r.key == key })
}

// serve shows m and dispatches choices until a handler returns errBack or an error
func (c *Console) serve(ctx context.Context, m menu) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.show(c)
		if err := c.dispatch(ctx, m); err != nil {
			if errors.Is(err, errBack) {
				return nil
			}
			return err
		}
	}
}

// choose shows m once and runs a single choice
func (c *Console) choose(ctx context.Context, m menu) error {
	m.show(c)
	return c.dispatch(ctx, m)
}

func (c *Console) dispatch(ctx context.Context, m menu) error {
	choice, err := c.readLine()
	if err != nil {
		return err
	}
	r, ok := m.find(choice)
	if !ok {
		c.println("Invalid input")
		return nil
	}
	return r.handle(ctx)
}

func exit(context.Context) error { return errExit }

func back(context.Context) error { return errBack }
