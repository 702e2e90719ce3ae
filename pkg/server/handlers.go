package server

import (
	"Tipbox/handler"
)

type Handlers struct {
	Auth *handler.Auth
	Tip  *handler.Tip
}
