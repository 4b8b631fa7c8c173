package handlers

import (
	accountRepo "helpnest/database/repository/account"
)

// HandlerBundle carries the assembled handlers and the repository the auth
// middleware resolves accounts against.
type HandlerBundle struct {
	AccountRepo accountRepo.AccountRepository

	Auth     *AuthHandler
	Bookings *BookingHandler
	Users    *UsersHandler
}
