package console

import (
	"context"

	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/shared/models"
)

func (c *Console) appMenu() menu {
	return menu{
		{key: "1", label: "Login", handle: c.login},
		{key: "2", label: "Register", handle: c.register},
		{key: "3", label: "Exit", handle: exit},
	}
}

func (c *Console) login(ctx context.Context) error {
	c.println("Login")
	email, err := c.prompt("Enter your email\n")
	if err != nil {
		return err
	}
	password, err := c.prompt("Enter your password\n")
	if err != nil {
		return err
	}

	user, err := c.auth.Login(ctx, email, password)
	if err != nil {
		c.printError(err)
		return nil
	}
	c.log.WithField("user_id", user.ID).Info("user logged in")

	if user.Role == models.RoleManager {
		return c.serve(ctx, c.managerMenu())
	}
	return c.serve(ctx, c.passengerMenu(user))
}

func (c *Console) register(ctx context.Context) error {
	c.println("Register")
	name, err := c.prompt("Enter your name\n")
	if err != nil {
		return err
	}
	email, err := c.prompt("Enter your email\n")
	if err != nil {
		return err
	}
	password, err := c.prompt("Enter your password\n")
	if err != nil {
		return err
	}
	choice, err := c.prompt("Select your role\n1. Passenger\n2. Manager\n")
	if err != nil {
		return err
	}

	var role models.Role
	switch choice {
	case "1":
		role = models.RolePassenger
	case "2":
		role = models.RoleManager
	default:
		c.println("Invalid role selection")
		return nil
	}

	if _, err := c.auth.Register(ctx, name, email, password, role); err != nil {
		c.printError(err)
		return nil
	}
	c.println("Registration successful")
	return nil
}
